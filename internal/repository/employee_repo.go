package repository

import (
	"go-lawoffice-ws/internal/model"

	"gorm.io/gorm"
)

type EmployeeRepository interface {
	Create(employee *model.Employee) error
	FindAll() ([]model.Employee, error)
	FindByID(id uint) (*model.Employee, error)
	Update(employee *model.Employee) error
	Delete(id uint) error
}

type employeeRepo struct {
	db *gorm.DB
}

func NewEmployeeRepo(db *gorm.DB) EmployeeRepository {
	return &employeeRepo{db}
}

func (r *employeeRepo) Create(employee *model.Employee) error {
	return r.db.Create(employee).Error
}

func (r *employeeRepo) FindAll() ([]model.Employee, error) {
	var employees []model.Employee
	err := r.db.Order("name ASC").Find(&employees).Error
	return employees, err
}

func (r *employeeRepo) FindByID(id uint) (*model.Employee, error) {
	var employee model.Employee
	err := r.db.First(&employee, "id = ?", id).Error
	return &employee, err
}

func (r *employeeRepo) Update(employee *model.Employee) error {
	return r.db.Save(employee).Error
}

func (r *employeeRepo) Delete(id uint) error {
	return r.db.Delete(&model.Employee{}, "id = ?", id).Error
}
