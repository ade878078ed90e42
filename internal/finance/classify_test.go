package finance

import (
	"testing"

	"go-lawoffice-ws/internal/model"

	"github.com/stretchr/testify/assert"
)

func TestClassifyTypeTag(t *testing.T) {
	tests := []struct {
		name string
		tx   model.Transaction
		want TypeTag
	}{
		{"payment", model.Transaction{Type: model.TxPayment}, TagPayment},
		{"invoice", model.Transaction{Type: model.TxInvoice}, TagInvoice},
		{"refund", model.Transaction{Type: model.TxRefund}, TagRefund},
		{"claim by type", model.Transaction{Type: model.TxClaim}, TagClaim},
		{"percentage wins over type", model.Transaction{Type: model.TxPayment, IsPercentage: true}, TagPercentage},
		{"unknown type is fixed", model.Transaction{Type: ""}, TagFixed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.tx).TypeTag)
		})
	}
}

// An employee-linked transaction is a claim even when its type field says
// payment. The employee link decides, not the type.
func TestClassifyEmployeePaymentIsClaim(t *testing.T) {
	tx := model.Transaction{
		Type:       model.TxPayment,
		SourceType: model.SourceEmployee,
	}
	got := Classify(tx)
	assert.Equal(t, TagClaim, got.TypeTag)
	assert.Equal(t, LinkedEmployee, got.LinkedEntity)
}

func TestClassifyLinkedEntity(t *testing.T) {
	assert.Equal(t, LinkedCase, Classify(model.Transaction{SourceType: model.SourceCase}).LinkedEntity)
	assert.Equal(t, LinkedEmployee, Classify(model.Transaction{SourceType: model.SourceEmployee}).LinkedEntity)
	assert.Equal(t, LinkedNone, Classify(model.Transaction{}).LinkedEntity)
}
