package finance

import "go-lawoffice-ws/internal/model"

// Aggregate reduces a transaction collection (usually a filtered snapshot)
// into the three summary figures. Refunds carry a non-negative amount but
// subtract from total paid; everything else adds.
func Aggregate(txs []model.Transaction) Summary {
	var s Summary
	for _, tx := range txs {
		if tx.Status == model.StatusPaid {
			if tx.Type == model.TxRefund {
				s.TotalPaid -= tx.Amount
			} else {
				s.TotalPaid += tx.Amount
			}
		}
		if tx.Type == model.TxInvoice {
			s.TotalInvoices += tx.Amount
		}
		if tx.Status == model.StatusPending {
			s.TotalPending += tx.Amount
		}
	}
	return s
}
