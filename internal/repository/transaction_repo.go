package repository

import (
	"time"

	"go-lawoffice-ws/internal/model"

	"gorm.io/gorm"
)

type TransactionRepository interface {
	Create(tx *model.Transaction) error
	FindAll() ([]model.Transaction, error)
	FindByID(id uint) (*model.Transaction, error)
	Update(tx *model.Transaction) error
	Delete(id uint) error
	GetCashFlow(startDate, endDate time.Time) ([]CashFlowData, error)
	GetOfficeStats() (*OfficeStats, error)
}

// CashFlowData untuk chart data
type CashFlowData struct {
	Date     string  `json:"date"`
	Incoming float64 `json:"incoming"`
	Outgoing float64 `json:"outgoing"`
}

// OfficeStats untuk overview stats
type OfficeStats struct {
	TotalCases     int64 `json:"total_cases"`
	OpenCases      int64 `json:"open_cases"`
	TotalCustomers int64 `json:"total_customers"`
	TotalEmployees int64 `json:"total_employees"`
}

type transactionRepo struct {
	db *gorm.DB
}

func NewTransactionRepo(db *gorm.DB) TransactionRepository {
	return &transactionRepo{db}
}

func (r *transactionRepo) Create(tx *model.Transaction) error {
	return r.db.Create(tx).Error
}

func (r *transactionRepo) FindAll() ([]model.Transaction, error) {
	var transactions []model.Transaction
	// Preload Customer dan CreatedByUser
	err := r.db.Preload("Customer").Preload("CreatedByUser").Order("date DESC").Find(&transactions).Error
	return transactions, err
}

func (r *transactionRepo) FindByID(id uint) (*model.Transaction, error) {
	var transaction model.Transaction
	err := r.db.Preload("Customer").Preload("CreatedByUser").First(&transaction, "id = ?", id).Error
	return &transaction, err
}

func (r *transactionRepo) Update(tx *model.Transaction) error {
	return r.db.Save(tx).Error
}

// Delete removes the row entirely. Transactions have no soft delete.
func (r *transactionRepo) Delete(id uint) error {
	return r.db.Delete(&model.Transaction{}, "id = ?", id).Error
}

func (r *transactionRepo) GetOfficeStats() (*OfficeStats, error) {
	var stats OfficeStats

	// Total Cases
	r.db.Model(&model.LegalCase{}).Count(&stats.TotalCases)

	// Open Cases
	r.db.Model(&model.LegalCase{}).Where("status = ?", model.CaseOpen).Count(&stats.OpenCases)

	// Customers & Employees
	r.db.Model(&model.Customer{}).Count(&stats.TotalCustomers)
	r.db.Model(&model.Employee{}).Count(&stats.TotalEmployees)

	return &stats, nil
}

func (r *transactionRepo) GetCashFlow(startDate, endDate time.Time) ([]CashFlowData, error) {
	var results []CashFlowData

	// Query untuk aggregate paid transactions per hari.
	// Refunds count as outgoing, everything else paid counts as incoming.
	rows, err := r.db.Model(&model.Transaction{}).
		Select(`
			DATE(date) as date,
			COALESCE(SUM(CASE WHEN type <> ? THEN amount ELSE 0 END), 0) as incoming,
			COALESCE(SUM(CASE WHEN type = ? THEN amount ELSE 0 END), 0) as outgoing
		`, model.TxRefund, model.TxRefund).
		Where("status = ? AND date BETWEEN ? AND ?", model.StatusPaid, startDate, endDate).
		Group("DATE(date)").
		Order("date ASC").
		Rows()

	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var data CashFlowData
		if err := rows.Scan(&data.Date, &data.Incoming, &data.Outgoing); err != nil {
			return nil, err
		}
		results = append(results, data)
	}

	return results, nil
}
