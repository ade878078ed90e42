package service

import (
	"encoding/json"
	"errors"
	"fmt"

	"go-lawoffice-ws/internal/model"
	"go-lawoffice-ws/internal/repository"
	"go-lawoffice-ws/internal/ws"
	"go-lawoffice-ws/pkg/validator"
)

var (
	ErrCaseNotFound     = errors.New("case not found")
	ErrCaseNumberExists = errors.New("case number already exists")
)

type CaseService interface {
	CreateCase(req *model.LegalCase, userID, userName, userEmail string) error
	UpdateCase(id uint, req *model.LegalCase, userID, userName, userEmail string) (*model.LegalCase, error)
	DeleteCase(id uint) error
	GetAllCases() ([]model.LegalCase, error)
	GetCaseByID(id uint) (*model.LegalCase, error)
}

type caseService struct {
	caseRepo repository.CaseRepository
	wsHub    *ws.Hub
}

func NewCaseService(caseRepo repository.CaseRepository, hub *ws.Hub) CaseService {
	return &caseService{caseRepo: caseRepo, wsHub: hub}
}

func (s *caseService) CreateCase(req *model.LegalCase, userID, userName, userEmail string) error {
	// 1. Validasi Struct Dasar
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		firstErr := errs[0]
		return fmt.Errorf("Validation failed: Field '%s' failed on tag '%s'", firstErr.FailedField, firstErr.Tag)
	}

	// 2. Cek Duplikasi Number (Business Logic Validation)
	existing, _ := s.caseRepo.FindByNumber(req.Number)
	if existing != nil && existing.ID != 0 {
		return ErrCaseNumberExists
	}

	// 3. Set Audit Fields
	req.CreatedBy = userID
	req.UpdatedBy = userID

	// 4. Simpan ke Database
	if err := s.caseRepo.Create(req); err != nil {
		return err
	}

	s.broadcast("case_created", req, userID, userName, userEmail,
		fmt.Sprintf("%s opened case '%s'", userName, req.Title))

	return nil
}

// UpdateCase edits the case record. Existing percentage transactions keep
// the amount that was frozen when they were written; a changed case value
// only affects transactions resolved after this point.
func (s *caseService) UpdateCase(id uint, req *model.LegalCase, userID, userName, userEmail string) (*model.LegalCase, error) {
	existing, err := s.caseRepo.FindByID(id)
	if err != nil {
		return nil, ErrCaseNotFound
	}

	existing.Title = req.Title
	existing.Number = req.Number
	existing.CustomerID = req.CustomerID
	existing.CourtName = req.CourtName
	existing.CaseType = req.CaseType
	existing.Status = req.Status
	existing.Amount = req.Amount
	existing.Notes = req.Notes
	existing.UpdatedBy = userID

	if err := s.caseRepo.Update(existing); err != nil {
		return nil, err
	}

	s.broadcast("case_updated", existing, userID, userName, userEmail,
		fmt.Sprintf("%s updated case '%s'", userName, existing.Title))

	return existing, nil
}

func (s *caseService) DeleteCase(id uint) error {
	if _, err := s.caseRepo.FindByID(id); err != nil {
		return ErrCaseNotFound
	}
	return s.caseRepo.Delete(id)
}

func (s *caseService) GetAllCases() ([]model.LegalCase, error) {
	return s.caseRepo.FindAll()
}

func (s *caseService) GetCaseByID(id uint) (*model.LegalCase, error) {
	return s.caseRepo.FindByID(id)
}

func (s *caseService) broadcast(action string, legalCase *model.LegalCase, userID, userName, userEmail, message string) {
	go func() {
		payload := map[string]interface{}{
			"type":   "case_update",
			"action": action,
			"case": map[string]interface{}{
				"id":     legalCase.ID,
				"number": legalCase.Number,
				"title":  legalCase.Title,
				"status": legalCase.Status,
				"amount": legalCase.Amount,
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
