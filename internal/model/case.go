package model

type CaseStatus string

const (
	CaseOpen   CaseStatus = "open"
	CaseClosed CaseStatus = "closed"
	CaseOnHold CaseStatus = "on_hold"
)

// LegalCase is a court case managed by the office. Amount is the case's
// total value and is the base for percentage-based transactions.
type LegalCase struct {
	Record
	Title      string     `gorm:"type:varchar(255);not null" json:"title" validate:"required"`
	Number     string     `gorm:"type:varchar(50);uniqueIndex;not null" json:"number" validate:"required"`
	CustomerID uint       `gorm:"not null;index" json:"customer_id" validate:"required"`
	Customer   *Customer  `gorm:"foreignKey:CustomerID" json:"customer,omitempty" validate:"-"`
	CourtName  string     `gorm:"type:varchar(255)" json:"court_name"`
	CaseType   string     `gorm:"type:varchar(100)" json:"case_type"`
	Status     CaseStatus `gorm:"type:varchar(20);default:'open'" json:"status"`
	Amount     float64    `gorm:"default:0" json:"amount"`
	Notes      string     `gorm:"type:text" json:"notes"`

	// Relasi
	Sessions []Session `json:"sessions,omitempty"`
}

// TableName specifies the table name for GORM
func (LegalCase) TableName() string {
	return "cases"
}
