package repository

import (
	"go-lawoffice-ws/internal/finance"
	"go-lawoffice-ws/internal/model"

	"gorm.io/gorm"
)

type CaseRepository interface {
	Create(legalCase *model.LegalCase) error
	FindAll() ([]model.LegalCase, error)
	FindByID(id uint) (*model.LegalCase, error)
	FindByNumber(number string) (*model.LegalCase, error)
	Update(legalCase *model.LegalCase) error
	Delete(id uint) error
	Valuations() ([]finance.CaseValuation, error)
}

type caseRepo struct {
	db *gorm.DB
}

func NewCaseRepo(db *gorm.DB) CaseRepository {
	return &caseRepo{db}
}

func (r *caseRepo) Create(legalCase *model.LegalCase) error {
	return r.db.Create(legalCase).Error
}

func (r *caseRepo) FindAll() ([]model.LegalCase, error) {
	var cases []model.LegalCase
	err := r.db.Preload("Customer").Order("created_at DESC").Find(&cases).Error
	return cases, err
}

func (r *caseRepo) FindByID(id uint) (*model.LegalCase, error) {
	var legalCase model.LegalCase
	err := r.db.Preload("Customer").Preload("Sessions").First(&legalCase, "id = ?", id).Error
	return &legalCase, err
}

func (r *caseRepo) FindByNumber(number string) (*model.LegalCase, error) {
	var legalCase model.LegalCase
	err := r.db.First(&legalCase, "number = ?", number).Error
	return &legalCase, err
}

func (r *caseRepo) Update(legalCase *model.LegalCase) error {
	return r.db.Save(legalCase).Error
}

func (r *caseRepo) Delete(id uint) error {
	return r.db.Delete(&model.LegalCase{}, "id = ?", id).Error
}

// Valuations returns the read-only {id, title, amount} snapshot the finance
// engine resolves percentage amounts against.
func (r *caseRepo) Valuations() ([]finance.CaseValuation, error) {
	var valuations []finance.CaseValuation
	err := r.db.Model(&model.LegalCase{}).
		Select("id, title, amount").
		Scan(&valuations).Error
	return valuations, err
}
