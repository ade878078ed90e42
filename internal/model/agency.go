package model

import "time"

type AgencyStatus string

const (
	AgencyActive  AgencyStatus = "active"
	AgencyExpired AgencyStatus = "expired"
	AgencyRevoked AgencyStatus = "revoked"
)

// Agency is a power-of-attorney document granted by a customer to the office.
type Agency struct {
	Record
	Number     string       `gorm:"type:varchar(50);uniqueIndex;not null" json:"number" validate:"required"`
	CustomerID uint         `gorm:"not null;index" json:"customer_id" validate:"required"`
	Customer   *Customer    `gorm:"foreignKey:CustomerID" json:"customer,omitempty" validate:"-"`
	AgentName  string       `gorm:"type:varchar(255)" json:"agent_name"`
	IssueDate  time.Time    `gorm:"type:date" json:"issue_date"`
	ExpiryDate *time.Time   `gorm:"type:date" json:"expiry_date,omitempty"`
	Status     AgencyStatus `gorm:"type:varchar(20);default:'active'" json:"status"`
	Notes      string       `gorm:"type:text" json:"notes"`
}

// TableName specifies the table name for GORM
func (Agency) TableName() string {
	return "agencies"
}
