package service

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"go-lawoffice-ws/internal/finance"
	"go-lawoffice-ws/internal/model"
	"go-lawoffice-ws/internal/repository"
	"go-lawoffice-ws/internal/ws"
	"go-lawoffice-ws/pkg/validator"
)

// Error definitions
var (
	ErrTransactionNotFound  = errors.New("transaction not found")
	ErrInvalidDateFormat    = errors.New("invalid date format, use YYYY-MM-DD")
	ErrCaseLinkRequired     = errors.New("case_id is required when source_type is case")
	ErrEmployeeLinkRequired = errors.New("employee_id is required when source_type is employee")
	ErrConflictingLinks     = errors.New("case_id and employee_id cannot both be set")
	ErrPercentageOnEmployee = errors.New("percentage amounts require a case link, not an employee")
	ErrEmployeeNotFound     = errors.New("employee not found")
)

type TransactionService interface {
	CreateTransaction(req *TransactionRequest, userID, userName, userEmail string) (*model.Transaction, error)
	UpdateTransaction(id uint, req *TransactionRequest, userID, userName, userEmail string) (*model.Transaction, error)
	DeleteTransaction(id uint, userID, userName, userEmail string) error
	GetTransactionByID(id uint) (*model.Transaction, error)
	ListTransactions(tab finance.Tab, adv finance.Filters) (*TransactionListResponse, error)
}

// TransactionRequest is the create/update payload. On update the amount is
// re-resolved and frozen again; there is no live binding to the case value.
type TransactionRequest struct {
	Amount           float64                 `json:"amount"`
	Type             model.TransactionType   `json:"type" validate:"required,oneof=دفعة فاتورة استرداد مطالبة"`
	Status           model.TransactionStatus `json:"status" validate:"required,oneof=paid pending cancelled"`
	Date             string                  `json:"date" validate:"required"` // YYYY-MM-DD
	IsPercentage     bool                    `json:"is_percentage"`
	PercentageAmount float64                 `json:"percentage_amount"`
	SourceType       model.SourceType        `json:"source_type" validate:"omitempty,oneof=case employee"`
	CaseID           *uint                   `json:"case_id"`
	EmployeeID       *uint                   `json:"employee_id"`
	CustomerID       uint                    `json:"customer_id" validate:"required"`
	Description      string                  `json:"description"`
	Notes            string                  `json:"notes"`
	Attachments      []string                `json:"attachments"`
}

// TransactionListResponse carries the table rows plus the summary cards
// computed over the same filtered snapshot.
type TransactionListResponse struct {
	Transactions []model.Transaction `json:"transactions"`
	Summary      finance.Summary     `json:"summary"`
}

type transactionService struct {
	transactionRepo repository.TransactionRepository
	caseRepo        repository.CaseRepository
	employeeRepo    repository.EmployeeRepository
	wsHub           *ws.Hub
}

func NewTransactionService(tRepo repository.TransactionRepository, cRepo repository.CaseRepository, eRepo repository.EmployeeRepository, hub *ws.Hub) TransactionService {
	return &transactionService{
		transactionRepo: tRepo,
		caseRepo:        cRepo,
		employeeRepo:    eRepo,
		wsHub:           hub,
	}
}

func (s *transactionService) CreateTransaction(req *TransactionRequest, userID, userName, userEmail string) (*model.Transaction, error) {
	tx := &model.Transaction{}
	if err := s.applyRequest(tx, req); err != nil {
		return nil, err
	}

	tx.CreatedBy = userID
	tx.UpdatedBy = userID
	tx.CreatedByUserID = &userID

	if err := s.transactionRepo.Create(tx); err != nil {
		return nil, err
	}

	s.broadcast("transaction_created", tx, userID, userName, userEmail,
		fmt.Sprintf("%s recorded a %s of %.2f", userName, tx.Type, tx.Amount))

	return tx, nil
}

func (s *transactionService) UpdateTransaction(id uint, req *TransactionRequest, userID, userName, userEmail string) (*model.Transaction, error) {
	existing, err := s.transactionRepo.FindByID(id)
	if err != nil {
		return nil, ErrTransactionNotFound
	}

	// Re-resolve against the current case values; the result is frozen anew
	if err := s.applyRequest(existing, req); err != nil {
		return nil, err
	}
	existing.UpdatedBy = userID

	if err := s.transactionRepo.Update(existing); err != nil {
		return nil, err
	}

	s.broadcast("transaction_updated", existing, userID, userName, userEmail,
		fmt.Sprintf("%s updated transaction #%d", userName, existing.ID))

	return existing, nil
}

func (s *transactionService) DeleteTransaction(id uint, userID, userName, userEmail string) error {
	existing, err := s.transactionRepo.FindByID(id)
	if err != nil {
		return ErrTransactionNotFound
	}

	if err := s.transactionRepo.Delete(id); err != nil {
		return err
	}

	s.broadcast("transaction_deleted", existing, userID, userName, userEmail,
		fmt.Sprintf("%s deleted transaction #%d", userName, existing.ID))

	return nil
}

func (s *transactionService) GetTransactionByID(id uint) (*model.Transaction, error) {
	return s.transactionRepo.FindByID(id)
}

// ListTransactions loads the full collection and runs it through the filter
// pipeline, then aggregates the filtered snapshot for the summary cards.
func (s *transactionService) ListTransactions(tab finance.Tab, adv finance.Filters) (*TransactionListResponse, error) {
	all, err := s.transactionRepo.FindAll()
	if err != nil {
		return nil, err
	}

	filtered := finance.Filter(all, tab, adv)
	return &TransactionListResponse{
		Transactions: filtered,
		Summary:      finance.Aggregate(filtered),
	}, nil
}

// applyRequest validates the payload, resolves the final amount and copies
// everything onto the model. Nothing is persisted here.
func (s *transactionService) applyRequest(tx *model.Transaction, req *TransactionRequest) error {
	// 1. Validasi Struct Dasar
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		firstErr := errs[0]
		return fmt.Errorf("Validation failed: Field '%s' failed on tag '%s'", firstErr.FailedField, firstErr.Tag)
	}

	// 2. Parse date
	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return ErrInvalidDateFormat
	}

	// 3. Link consistency: exactly one link per source type
	if req.CaseID != nil && req.EmployeeID != nil {
		return ErrConflictingLinks
	}
	switch req.SourceType {
	case model.SourceCase:
		if req.CaseID == nil {
			return ErrCaseLinkRequired
		}
	case model.SourceEmployee:
		if req.EmployeeID == nil {
			return ErrEmployeeLinkRequired
		}
		if req.IsPercentage {
			return ErrPercentageOnEmployee
		}
	}

	// 4. Resolve the final amount against the current case valuations
	valuations, err := s.caseRepo.Valuations()
	if err != nil {
		return err
	}
	draft := finance.Draft{
		Amount:           req.Amount,
		IsPercentage:     req.IsPercentage,
		PercentageAmount: req.PercentageAmount,
		CaseID:           req.CaseID,
	}
	amount, err := draft.ResolveAmount(valuations)
	if err != nil {
		return err
	}

	// 5. Denormalize link display names
	caseTitle := ""
	if req.CaseID != nil {
		for _, v := range valuations {
			if v.ID == *req.CaseID {
				caseTitle = v.Title
				break
			}
		}
	}
	employeeName := ""
	if req.SourceType == model.SourceEmployee {
		employee, err := s.employeeRepo.FindByID(*req.EmployeeID)
		if err != nil {
			return ErrEmployeeNotFound
		}
		employeeName = employee.Name
	}

	// 6. Copy onto the model
	tx.Amount = amount
	tx.Type = req.Type
	tx.Status = req.Status
	tx.Date = date
	tx.IsPercentage = req.IsPercentage
	tx.PercentageAmount = req.PercentageAmount
	tx.SourceType = req.SourceType
	tx.CaseID = req.CaseID
	tx.CaseTitle = caseTitle
	tx.EmployeeID = req.EmployeeID
	tx.EmployeeName = employeeName
	tx.CustomerID = req.CustomerID
	tx.Description = req.Description
	tx.Notes = req.Notes
	tx.Attachments = req.Attachments

	if req.SourceType != model.SourceEmployee {
		tx.EmployeeID = nil
		tx.EmployeeName = ""
	}
	if req.SourceType == model.SourceEmployee || (req.SourceType == "" && !req.IsPercentage) {
		tx.CaseID = nil
		tx.CaseTitle = ""
	}
	if !req.IsPercentage {
		tx.PercentageAmount = 0
	}

	return nil
}

func (s *transactionService) broadcast(action string, tx *model.Transaction, userID, userName, userEmail, message string) {
	go func() {
		payload := map[string]interface{}{
			"type":   "finance_update",
			"action": action,
			"transaction": map[string]interface{}{
				"id":     tx.ID,
				"type":   tx.Type,
				"status": tx.Status,
				"amount": tx.Amount,
			},
			"user": map[string]interface{}{
				"id":    userID,
				"name":  userName,
				"email": userEmail,
			},
			"message": message,
		}
		msg, _ := json.Marshal(payload)
		s.wsHub.Broadcast <- msg
	}()
}
