package model

import "time"

// TransactionType uses the Arabic labels the office works with.
type TransactionType string

const (
	TxPayment TransactionType = "دفعة"
	TxInvoice TransactionType = "فاتورة"
	TxRefund  TransactionType = "استرداد"
	TxClaim   TransactionType = "مطالبة"
)

type TransactionStatus string

const (
	StatusPaid      TransactionStatus = "paid"
	StatusPending   TransactionStatus = "pending"
	StatusCancelled TransactionStatus = "cancelled"
)

// SourceType tags which external entity a transaction is linked to.
type SourceType string

const (
	SourceCase     SourceType = "case"
	SourceEmployee SourceType = "employee"
)

type Transaction struct {
	Record
	// Amount is the final value in the office currency. For percentage
	// entries it is derived from the linked case value at write time and
	// never recomputed afterwards (snapshot-at-write).
	Amount float64           `gorm:"not null" json:"amount"`
	Type   TransactionType   `gorm:"type:varchar(20);not null" json:"type" validate:"required,oneof=دفعة فاتورة استرداد مطالبة"`
	Status TransactionStatus `gorm:"type:varchar(20);not null" json:"status" validate:"required,oneof=paid pending cancelled"`
	Date   time.Time         `gorm:"type:date;not null;index" json:"date" validate:"required"`

	// Percentage entries: amount = case value * percentage / 100
	IsPercentage     bool    `gorm:"default:false" json:"is_percentage"`
	PercentageAmount float64 `json:"percentage_amount,omitempty"`

	// Linked entity. Exactly one of CaseID/EmployeeID is set per SourceType.
	SourceType   SourceType `gorm:"type:varchar(10)" json:"source_type,omitempty"`
	CaseID       *uint      `gorm:"index" json:"case_id,omitempty"`
	CaseTitle    string     `gorm:"type:varchar(255)" json:"case_title,omitempty"`
	EmployeeID   *uint      `gorm:"index" json:"employee_id,omitempty"`
	EmployeeName string     `gorm:"type:varchar(255)" json:"employee_name,omitempty"`

	CustomerID uint      `gorm:"not null;index" json:"customer_id" validate:"required"`
	Customer   *Customer `gorm:"foreignKey:CustomerID" json:"customer,omitempty" validate:"-"`

	// Opaque metadata, displayed but never computed on
	Description string   `gorm:"type:text" json:"description"`
	Notes       string   `gorm:"type:text" json:"notes"`
	Attachments []string `gorm:"serializer:json" json:"attachments,omitempty"`

	// User tracking
	CreatedByUserID *string `gorm:"type:varchar(255)" json:"created_by_user_id,omitempty"`
	CreatedByUser   *User   `gorm:"foreignKey:CreatedByUserID;references:ID" json:"created_by_user,omitempty"`
}
