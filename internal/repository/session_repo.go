package repository

import (
	"time"

	"go-lawoffice-ws/internal/model"

	"gorm.io/gorm"
)

type SessionRepository interface {
	Create(session *model.Session) error
	FindAll() ([]model.Session, error)
	FindByID(id uint) (*model.Session, error)
	FindByCase(caseID uint) ([]model.Session, error)
	FindUpcoming(from time.Time, limit int) ([]model.Session, error)
	Update(session *model.Session) error
	Delete(id uint) error
}

type sessionRepo struct {
	db *gorm.DB
}

func NewSessionRepo(db *gorm.DB) SessionRepository {
	return &sessionRepo{db}
}

func (r *sessionRepo) Create(session *model.Session) error {
	return r.db.Create(session).Error
}

func (r *sessionRepo) FindAll() ([]model.Session, error) {
	var sessions []model.Session
	err := r.db.Preload("Case").Order("date DESC").Find(&sessions).Error
	return sessions, err
}

func (r *sessionRepo) FindByID(id uint) (*model.Session, error) {
	var session model.Session
	err := r.db.Preload("Case").First(&session, "id = ?", id).Error
	return &session, err
}

func (r *sessionRepo) FindByCase(caseID uint) ([]model.Session, error) {
	var sessions []model.Session
	err := r.db.Where("case_id = ?", caseID).Order("date DESC").Find(&sessions).Error
	return sessions, err
}

func (r *sessionRepo) FindUpcoming(from time.Time, limit int) ([]model.Session, error) {
	var sessions []model.Session
	err := r.db.Preload("Case").
		Where("date >= ? AND status = ?", from, model.SessionScheduled).
		Order("date ASC").
		Limit(limit).
		Find(&sessions).Error
	return sessions, err
}

func (r *sessionRepo) Update(session *model.Session) error {
	return r.db.Save(session).Error
}

func (r *sessionRepo) Delete(id uint) error {
	return r.db.Delete(&model.Session{}, "id = ?", id).Error
}
