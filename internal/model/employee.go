package model

// Employee is an office staff member. Employee-linked transactions are
// treated as claims by the finance engine regardless of their type field.
type Employee struct {
	Record
	Name     string  `gorm:"type:varchar(255);not null" json:"name" validate:"required"`
	Position string  `gorm:"type:varchar(100)" json:"position"`
	Phone    string  `gorm:"type:varchar(20)" json:"phone"`
	Email    string  `gorm:"type:varchar(255)" json:"email" validate:"omitempty,email"`
	Salary   float64 `gorm:"default:0" json:"salary"`
}
