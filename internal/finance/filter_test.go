package finance

import (
	"testing"
	"time"

	"go-lawoffice-ws/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func fixtureTransactions() []model.Transaction {
	return []model.Transaction{
		{Record: model.Record{ID: 1}, Type: model.TxPayment, Status: model.StatusPaid, Amount: 100, Date: day(2024, time.January, 10)},
		{Record: model.Record{ID: 2}, Type: model.TxPayment, Status: model.StatusPending, Amount: 80, Date: day(2024, time.February, 5)},
		{Record: model.Record{ID: 3}, Type: model.TxInvoice, Status: model.StatusPaid, Amount: 40, Date: day(2024, time.March, 1)},
		{Record: model.Record{ID: 4}, Type: model.TxRefund, Status: model.StatusPaid, Amount: 60, Date: day(2024, time.March, 15)},
		{Record: model.Record{ID: 5}, Type: model.TxPayment, Status: model.StatusPaid, Amount: 30, Date: day(2024, time.April, 20), IsPercentage: true},
	}
}

func ids(txs []model.Transaction) []uint {
	out := make([]uint, len(txs))
	for i, tx := range txs {
		out[i] = tx.ID
	}
	return out
}

func f64(v float64) *float64 { return &v }
func intp(v int) *int        { return &v }

func TestFilterTabOnly(t *testing.T) {
	all := fixtureTransactions()

	assert.Equal(t, []uint{5, 4, 3, 2, 1}, ids(Filter(all, TabAll, Filters{})))
	assert.Equal(t, []uint{5, 4, 3, 1}, ids(Filter(all, TabPaid, Filters{})))
	assert.Equal(t, []uint{2}, ids(Filter(all, TabPending, Filters{})))
	assert.Equal(t, []uint{5}, ids(Filter(all, TabPercentage, Filters{})))
	assert.Equal(t, []uint{4}, ids(Filter(all, TabRefunds, Filters{})))
	assert.Equal(t, []uint{3}, ids(Filter(all, TabInvoices, Filters{})))
}

func TestFilterUnknownTabFallsThroughToAll(t *testing.T) {
	all := fixtureTransactions()
	assert.Len(t, Filter(all, Tab("garbage"), Filters{}), len(all))
}

// Tab and advanced filters must AND together. With tab=paid and min=50 the
// paid-but-small and large-but-pending rows both drop out; an OR composition
// would keep them.
func TestFilterAndComposition(t *testing.T) {
	all := fixtureTransactions()

	got := Filter(all, TabPaid, Filters{MinAmount: f64(50)})
	require.Equal(t, []uint{4, 1}, ids(got))
	for _, tx := range got {
		assert.Equal(t, model.StatusPaid, tx.Status)
		assert.GreaterOrEqual(t, tx.Amount, 50.0)
	}
}

func TestFilterAmountBoundsInclusive(t *testing.T) {
	all := fixtureTransactions()

	got := Filter(all, TabAll, Filters{MinAmount: f64(40), MaxAmount: f64(80)})
	assert.Equal(t, []uint{4, 3, 2}, ids(got))
}

func TestFilterByClaimTab(t *testing.T) {
	empID := uint(7)
	all := []model.Transaction{
		{Record: model.Record{ID: 1}, Type: model.TxClaim, Amount: 10, Date: day(2024, time.May, 1)},
		{Record: model.Record{ID: 2}, Type: model.TxPayment, SourceType: model.SourceEmployee, EmployeeID: &empID, Amount: 20, Date: day(2024, time.May, 2)},
		{Record: model.Record{ID: 3}, Type: model.TxPayment, Amount: 30, Date: day(2024, time.May, 3)},
	}

	// Claim type and employee-linked payment both count as claims
	assert.Equal(t, []uint{2, 1}, ids(Filter(all, TabClaims, Filters{})))
}

func TestFilterByLinkedEntity(t *testing.T) {
	caseID := uint(1)
	empID := uint(2)
	all := []model.Transaction{
		{Record: model.Record{ID: 1}, SourceType: model.SourceCase, CaseID: &caseID, Date: day(2024, time.June, 1)},
		{Record: model.Record{ID: 2}, SourceType: model.SourceEmployee, EmployeeID: &empID, Date: day(2024, time.June, 2)},
		{Record: model.Record{ID: 3}, Date: day(2024, time.June, 3)},
	}

	assert.Equal(t, []uint{1}, ids(Filter(all, TabAll, Filters{LinkedEntity: LinkedCase})))
	assert.Equal(t, []uint{2}, ids(Filter(all, TabAll, Filters{LinkedEntity: LinkedEmployee})))
	assert.Equal(t, []uint{3}, ids(Filter(all, TabAll, Filters{LinkedEntity: LinkedNone})))
}

func TestFilterByMonthYear(t *testing.T) {
	all := []model.Transaction{
		{Record: model.Record{ID: 1}, Date: day(2023, time.March, 5)},
		{Record: model.Record{ID: 2}, Date: day(2024, time.March, 5)},
		{Record: model.Record{ID: 3}, Date: day(2024, time.April, 5)},
	}

	// Month alone matches across years
	assert.Equal(t, []uint{2, 1}, ids(Filter(all, TabAll, Filters{Month: intp(3)})))
	// Year alone
	assert.Equal(t, []uint{3, 2}, ids(Filter(all, TabAll, Filters{Year: intp(2024)})))
	// Month AND year together
	assert.Equal(t, []uint{2}, ids(Filter(all, TabAll, Filters{Month: intp(3), Year: intp(2024)})))
}

func TestFilterByTypeAndStatus(t *testing.T) {
	all := fixtureTransactions()

	got := Filter(all, TabAll, Filters{Type: model.TxPayment, Status: model.StatusPaid})
	assert.Equal(t, []uint{5, 1}, ids(got))
}

func TestFilterSortsDateDescending(t *testing.T) {
	all := fixtureTransactions()
	got := Filter(all, TabAll, Filters{})
	for i := 1; i < len(got); i++ {
		assert.False(t, got[i].Date.After(got[i-1].Date))
	}
}

func TestFilterStableOnEqualDates(t *testing.T) {
	d := day(2024, time.July, 1)
	all := []model.Transaction{
		{Record: model.Record{ID: 1}, Date: d},
		{Record: model.Record{ID: 2}, Date: d},
		{Record: model.Record{ID: 3}, Date: d},
	}
	assert.Equal(t, []uint{1, 2, 3}, ids(Filter(all, TabAll, Filters{})))
}

func TestFilterIdempotentAndNonMutating(t *testing.T) {
	all := fixtureTransactions()
	snapshot := ids(all)

	first := Filter(all, TabPaid, Filters{MinAmount: f64(40)})
	second := Filter(all, TabPaid, Filters{MinAmount: f64(40)})

	assert.Equal(t, ids(first), ids(second))
	assert.Equal(t, snapshot, ids(all), "input collection must not be reordered")
}

func TestFilterEmptyInput(t *testing.T) {
	got := Filter(nil, TabAll, Filters{})
	assert.NotNil(t, got)
	assert.Empty(t, got)
}
