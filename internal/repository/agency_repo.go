package repository

import (
	"go-lawoffice-ws/internal/model"

	"gorm.io/gorm"
)

type AgencyRepository interface {
	Create(agency *model.Agency) error
	FindAll() ([]model.Agency, error)
	FindByID(id uint) (*model.Agency, error)
	FindByNumber(number string) (*model.Agency, error)
	Update(agency *model.Agency) error
	Delete(id uint) error
}

type agencyRepo struct {
	db *gorm.DB
}

func NewAgencyRepo(db *gorm.DB) AgencyRepository {
	return &agencyRepo{db}
}

func (r *agencyRepo) Create(agency *model.Agency) error {
	return r.db.Create(agency).Error
}

func (r *agencyRepo) FindAll() ([]model.Agency, error) {
	var agencies []model.Agency
	err := r.db.Preload("Customer").Order("issue_date DESC").Find(&agencies).Error
	return agencies, err
}

func (r *agencyRepo) FindByID(id uint) (*model.Agency, error) {
	var agency model.Agency
	err := r.db.Preload("Customer").First(&agency, "id = ?", id).Error
	return &agency, err
}

func (r *agencyRepo) FindByNumber(number string) (*model.Agency, error) {
	var agency model.Agency
	err := r.db.First(&agency, "number = ?", number).Error
	return &agency, err
}

func (r *agencyRepo) Update(agency *model.Agency) error {
	return r.db.Save(agency).Error
}

func (r *agencyRepo) Delete(id uint) error {
	return r.db.Delete(&model.Agency{}, "id = ?", id).Error
}
