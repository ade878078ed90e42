package model

type Customer struct {
	Record
	Name    string `gorm:"type:varchar(255);not null" json:"name" validate:"required"`
	Phone   string `gorm:"type:varchar(20)" json:"phone"`
	Email   string `gorm:"type:varchar(255)" json:"email" validate:"omitempty,email"`
	Address string `gorm:"type:varchar(255)" json:"address"`
	Notes   string `gorm:"type:text" json:"notes"`

	// Relasi
	Cases        []LegalCase   `json:"cases,omitempty"`
	Transactions []Transaction `json:"transactions,omitempty"`
}
