package finance

import (
	"testing"

	"go-lawoffice-ws/internal/model"

	"github.com/stretchr/testify/assert"
)

func TestAggregateRefundSubtractsFromPaid(t *testing.T) {
	txs := []model.Transaction{
		{Status: model.StatusPaid, Type: model.TxPayment, Amount: 100},
		{Status: model.StatusPaid, Type: model.TxRefund, Amount: 30},
	}

	got := Aggregate(txs)
	assert.Equal(t, 70.0, got.TotalPaid)
}

func TestAggregateTotals(t *testing.T) {
	txs := []model.Transaction{
		{Status: model.StatusPaid, Type: model.TxPayment, Amount: 200},
		{Status: model.StatusPaid, Type: model.TxInvoice, Amount: 50},
		{Status: model.StatusPending, Type: model.TxInvoice, Amount: 75},
		{Status: model.StatusPending, Type: model.TxPayment, Amount: 25},
		{Status: model.StatusCancelled, Type: model.TxPayment, Amount: 999},
		{Status: model.StatusPaid, Type: model.TxRefund, Amount: 40},
	}

	got := Aggregate(txs)
	// Invoices count regardless of status; pending counts regardless of type;
	// cancelled rows touch neither figure.
	assert.Equal(t, 210.0, got.TotalPaid)
	assert.Equal(t, 125.0, got.TotalInvoices)
	assert.Equal(t, 100.0, got.TotalPending)
}

func TestAggregatePendingRefundDoesNotReducePaid(t *testing.T) {
	txs := []model.Transaction{
		{Status: model.StatusPaid, Type: model.TxPayment, Amount: 100},
		{Status: model.StatusPending, Type: model.TxRefund, Amount: 30},
	}

	got := Aggregate(txs)
	assert.Equal(t, 100.0, got.TotalPaid)
	assert.Equal(t, 30.0, got.TotalPending)
}

func TestAggregateEmpty(t *testing.T) {
	assert.Equal(t, Summary{}, Aggregate(nil))
	assert.Equal(t, Summary{}, Aggregate([]model.Transaction{}))
}
