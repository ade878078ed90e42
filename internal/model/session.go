package model

import "time"

type SessionStatus string

const (
	SessionScheduled SessionStatus = "scheduled"
	SessionHeld      SessionStatus = "held"
	SessionPostponed SessionStatus = "postponed"
)

// Session is a scheduled court hearing for a case
type Session struct {
	Record
	CaseID    uint       `gorm:"not null;index" json:"case_id" validate:"required"`
	Case      *LegalCase `gorm:"foreignKey:CaseID" json:"case,omitempty" validate:"-"`
	Date      time.Time  `gorm:"type:date;not null;index" json:"date" validate:"required"`
	Time      string     `gorm:"type:varchar(5)" json:"time"` // HH:MM
	CourtName string     `gorm:"type:varchar(255)" json:"court_name"`

	Status SessionStatus `gorm:"type:varchar(20);default:'scheduled'" json:"status"`
	Notes  string        `gorm:"type:text" json:"notes"`
}
