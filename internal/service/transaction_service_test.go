package service

import (
	"testing"
	"time"

	"go-lawoffice-ws/internal/finance"
	"go-lawoffice-ws/internal/model"
	"go-lawoffice-ws/internal/repository"
	"go-lawoffice-ws/internal/ws"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeTxRepo struct {
	rows   []model.Transaction
	nextID uint
}

func (f *fakeTxRepo) Create(tx *model.Transaction) error {
	f.nextID++
	tx.ID = f.nextID
	f.rows = append(f.rows, *tx)
	return nil
}

func (f *fakeTxRepo) FindAll() ([]model.Transaction, error) {
	out := make([]model.Transaction, len(f.rows))
	copy(out, f.rows)
	return out, nil
}

func (f *fakeTxRepo) FindByID(id uint) (*model.Transaction, error) {
	for _, tx := range f.rows {
		if tx.ID == id {
			found := tx
			return &found, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeTxRepo) Update(tx *model.Transaction) error {
	for i := range f.rows {
		if f.rows[i].ID == tx.ID {
			f.rows[i] = *tx
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (f *fakeTxRepo) Delete(id uint) error {
	for i := range f.rows {
		if f.rows[i].ID == id {
			f.rows = append(f.rows[:i], f.rows[i+1:]...)
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (f *fakeTxRepo) GetCashFlow(_, _ time.Time) ([]repository.CashFlowData, error) {
	return nil, nil
}

func (f *fakeTxRepo) GetOfficeStats() (*repository.OfficeStats, error) {
	return &repository.OfficeStats{}, nil
}

type fakeCaseRepo struct {
	valuations []finance.CaseValuation
}

func (f *fakeCaseRepo) Create(*model.LegalCase) error             { return nil }
func (f *fakeCaseRepo) FindAll() ([]model.LegalCase, error)       { return nil, nil }
func (f *fakeCaseRepo) FindByID(uint) (*model.LegalCase, error)   { return nil, gorm.ErrRecordNotFound }
func (f *fakeCaseRepo) FindByNumber(string) (*model.LegalCase, error) {
	return nil, gorm.ErrRecordNotFound
}
func (f *fakeCaseRepo) Update(*model.LegalCase) error { return nil }
func (f *fakeCaseRepo) Delete(uint) error             { return nil }
func (f *fakeCaseRepo) Valuations() ([]finance.CaseValuation, error) {
	return f.valuations, nil
}

type fakeEmployeeRepo struct {
	employees map[uint]model.Employee
}

func (f *fakeEmployeeRepo) Create(*model.Employee) error       { return nil }
func (f *fakeEmployeeRepo) FindAll() ([]model.Employee, error) { return nil, nil }
func (f *fakeEmployeeRepo) FindByID(id uint) (*model.Employee, error) {
	if e, ok := f.employees[id]; ok {
		return &e, nil
	}
	return nil, gorm.ErrRecordNotFound
}
func (f *fakeEmployeeRepo) Update(*model.Employee) error { return nil }
func (f *fakeEmployeeRepo) Delete(uint) error            { return nil }

func newTestService() (TransactionService, *fakeTxRepo, *fakeCaseRepo) {
	txRepo := &fakeTxRepo{}
	caseRepo := &fakeCaseRepo{valuations: []finance.CaseValuation{
		{ID: 1, Title: "قضية عقارية", Amount: 1000},
	}}
	empRepo := &fakeEmployeeRepo{employees: map[uint]model.Employee{
		7: {Record: model.Record{ID: 7}, Name: "أحمد"},
	}}
	hub := ws.NewHub()
	go hub.Run()

	return NewTransactionService(txRepo, caseRepo, empRepo, hub), txRepo, caseRepo
}

func fixedRequest(amount float64) *TransactionRequest {
	return &TransactionRequest{
		Amount:     amount,
		Type:       model.TxPayment,
		Status:     model.StatusPaid,
		Date:       "2024-05-10",
		CustomerID: 1,
	}
}

func TestCreateTransactionFixedAmount(t *testing.T) {
	svc, _, _ := newTestService()

	tx, err := svc.CreateTransaction(fixedRequest(150), "u1", "Admin", "a@x")
	require.NoError(t, err)
	assert.Equal(t, 150.0, tx.Amount)
	assert.Equal(t, uint(1), tx.ID)
}

func TestCreateTransactionRejectsZeroAmount(t *testing.T) {
	svc, txRepo, _ := newTestService()

	_, err := svc.CreateTransaction(fixedRequest(0), "u1", "Admin", "a@x")
	var verr *finance.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Empty(t, txRepo.rows, "nothing may be committed on validation failure")
}

func TestCreateTransactionPercentage(t *testing.T) {
	svc, _, _ := newTestService()

	caseID := uint(1)
	req := fixedRequest(0)
	req.IsPercentage = true
	req.PercentageAmount = 12.5
	req.SourceType = model.SourceCase
	req.CaseID = &caseID

	tx, err := svc.CreateTransaction(req, "u1", "Admin", "a@x")
	require.NoError(t, err)
	assert.Equal(t, 125.0, tx.Amount)
	assert.Equal(t, "قضية عقارية", tx.CaseTitle)
}

// Percentage amounts are frozen at write time. Raising the case value
// afterwards must not change what was already stored; only a re-submitted
// edit re-resolves against the new value.
func TestPercentageAmountFrozenAfterCaseEdit(t *testing.T) {
	svc, _, caseRepo := newTestService()

	caseID := uint(1)
	req := fixedRequest(0)
	req.IsPercentage = true
	req.PercentageAmount = 12.5
	req.SourceType = model.SourceCase
	req.CaseID = &caseID

	tx, err := svc.CreateTransaction(req, "u1", "Admin", "a@x")
	require.NoError(t, err)
	require.Equal(t, 125.0, tx.Amount)

	// Case value doubles
	caseRepo.valuations[0].Amount = 2000

	stored, err := svc.GetTransactionByID(tx.ID)
	require.NoError(t, err)
	assert.Equal(t, 125.0, stored.Amount, "stored amount must stay frozen")

	list, err := svc.ListTransactions(finance.TabAll, finance.Filters{})
	require.NoError(t, err)
	require.Len(t, list.Transactions, 1)
	assert.Equal(t, 125.0, list.Transactions[0].Amount)

	// An explicit edit freezes a new snapshot
	updated, err := svc.UpdateTransaction(tx.ID, req, "u1", "Admin", "a@x")
	require.NoError(t, err)
	assert.Equal(t, 250.0, updated.Amount)
}

func TestCreateTransactionEmployeeClaim(t *testing.T) {
	svc, _, _ := newTestService()

	empID := uint(7)
	req := fixedRequest(80)
	req.Type = model.TxPayment
	req.SourceType = model.SourceEmployee
	req.EmployeeID = &empID

	tx, err := svc.CreateTransaction(req, "u1", "Admin", "a@x")
	require.NoError(t, err)
	assert.Equal(t, "أحمد", tx.EmployeeName)
	assert.Equal(t, finance.TagClaim, finance.Classify(*tx).TypeTag)
}

func TestCreateTransactionPercentageOnEmployeeRejected(t *testing.T) {
	svc, _, _ := newTestService()

	empID := uint(7)
	req := fixedRequest(0)
	req.IsPercentage = true
	req.PercentageAmount = 10
	req.SourceType = model.SourceEmployee
	req.EmployeeID = &empID

	_, err := svc.CreateTransaction(req, "u1", "Admin", "a@x")
	assert.ErrorIs(t, err, ErrPercentageOnEmployee)
}

func TestCreateTransactionConflictingLinks(t *testing.T) {
	svc, _, _ := newTestService()

	caseID := uint(1)
	empID := uint(7)
	req := fixedRequest(80)
	req.SourceType = model.SourceCase
	req.CaseID = &caseID
	req.EmployeeID = &empID

	_, err := svc.CreateTransaction(req, "u1", "Admin", "a@x")
	assert.ErrorIs(t, err, ErrConflictingLinks)
}

func TestDeleteTransactionRemovesRow(t *testing.T) {
	svc, txRepo, _ := newTestService()

	tx, err := svc.CreateTransaction(fixedRequest(50), "u1", "Admin", "a@x")
	require.NoError(t, err)

	require.NoError(t, svc.DeleteTransaction(tx.ID, "u1", "Admin", "a@x"))
	assert.Empty(t, txRepo.rows)

	err = svc.DeleteTransaction(tx.ID, "u1", "Admin", "a@x")
	assert.ErrorIs(t, err, ErrTransactionNotFound)
}

func TestListTransactionsFiltersAndAggregates(t *testing.T) {
	svc, _, _ := newTestService()

	paid := fixedRequest(100)
	_, err := svc.CreateTransaction(paid, "u1", "Admin", "a@x")
	require.NoError(t, err)

	pending := fixedRequest(40)
	pending.Status = model.StatusPending
	_, err = svc.CreateTransaction(pending, "u1", "Admin", "a@x")
	require.NoError(t, err)

	refund := fixedRequest(30)
	refund.Type = model.TxRefund
	_, err = svc.CreateTransaction(refund, "u1", "Admin", "a@x")
	require.NoError(t, err)

	list, err := svc.ListTransactions(finance.TabPaid, finance.Filters{})
	require.NoError(t, err)
	assert.Len(t, list.Transactions, 2)
	assert.Equal(t, 70.0, list.Summary.TotalPaid)
	assert.Equal(t, 0.0, list.Summary.TotalPending)
}
