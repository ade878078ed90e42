package repository

import (
	"go-lawoffice-ws/internal/model"

	"gorm.io/gorm"
)

type TaskRepository interface {
	Create(task *model.Task) error
	FindAll() ([]model.Task, error)
	FindByID(id uint) (*model.Task, error)
	FindByAssignee(employeeID uint) ([]model.Task, error)
	Update(task *model.Task) error
	Delete(id uint) error
}

type taskRepo struct {
	db *gorm.DB
}

func NewTaskRepo(db *gorm.DB) TaskRepository {
	return &taskRepo{db}
}

func (r *taskRepo) Create(task *model.Task) error {
	return r.db.Create(task).Error
}

func (r *taskRepo) FindAll() ([]model.Task, error) {
	var tasks []model.Task
	err := r.db.Preload("AssignedTo").Order("due_date ASC").Find(&tasks).Error
	return tasks, err
}

func (r *taskRepo) FindByID(id uint) (*model.Task, error) {
	var task model.Task
	err := r.db.Preload("AssignedTo").First(&task, "id = ?", id).Error
	return &task, err
}

func (r *taskRepo) FindByAssignee(employeeID uint) ([]model.Task, error) {
	var tasks []model.Task
	err := r.db.Where("assigned_to_id = ?", employeeID).Order("due_date ASC").Find(&tasks).Error
	return tasks, err
}

func (r *taskRepo) Update(task *model.Task) error {
	return r.db.Save(task).Error
}

func (r *taskRepo) Delete(id uint) error {
	return r.db.Delete(&model.Task{}, "id = ?", id).Error
}
