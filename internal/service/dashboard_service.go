package service

import (
	"time"

	"go-lawoffice-ws/internal/finance"
	"go-lawoffice-ws/internal/repository"
)

type DashboardService interface {
	GetCashFlow(days int) ([]repository.CashFlowData, error)
	GetDashboardStats() (*DashboardStats, error)
}

// DashboardStats combines entity counts with the financial summary over the
// full transaction collection.
type DashboardStats struct {
	repository.OfficeStats
	Finance finance.Summary `json:"finance"`
}

type dashboardService struct {
	txRepo repository.TransactionRepository
}

func NewDashboardService(txRepo repository.TransactionRepository) DashboardService {
	return &dashboardService{txRepo: txRepo}
}

func (s *dashboardService) GetCashFlow(days int) ([]repository.CashFlowData, error) {
	endDate := time.Now()
	startDate := endDate.AddDate(0, 0, -days)

	return s.txRepo.GetCashFlow(startDate, endDate)
}

func (s *dashboardService) GetDashboardStats() (*DashboardStats, error) {
	counts, err := s.txRepo.GetOfficeStats()
	if err != nil {
		return nil, err
	}

	all, err := s.txRepo.FindAll()
	if err != nil {
		return nil, err
	}

	return &DashboardStats{
		OfficeStats: *counts,
		Finance:     finance.Aggregate(all),
	}, nil
}
