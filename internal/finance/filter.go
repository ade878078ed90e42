package finance

import (
	"sort"

	"go-lawoffice-ws/internal/model"
)

// Tab is the quick filter above the transactions table.
type Tab string

const (
	TabAll        Tab = "all"
	TabPaid       Tab = "paid"
	TabPending    Tab = "pending"
	TabPercentage Tab = "percentage"
	TabClaims     Tab = "claims"
	TabRefunds    Tab = "refunds"
	TabInvoices   Tab = "invoices"
	TabPayments   Tab = "payments"
)

// Filters is the advanced filter form. Zero values impose no constraint:
// empty strings and nil pointers are wildcards.
type Filters struct {
	Type         model.TransactionType   `json:"type"`
	Status       model.TransactionStatus `json:"status"`
	MinAmount    *float64                `json:"min_amount"`
	MaxAmount    *float64                `json:"max_amount"`
	LinkedEntity LinkedEntityTag         `json:"linked_entity"`
	Month        *int                    `json:"month"` // 1-12
	Year         *int                    `json:"year"`
}

// Filter returns the transactions matching the tab AND every set advanced
// filter, most recent first. The input slice is never mutated; an unknown
// tab falls through to "all".
func Filter(all []model.Transaction, tab Tab, adv Filters) []model.Transaction {
	out := make([]model.Transaction, 0, len(all))
	for _, tx := range all {
		if matchTab(tx, tab) && matchFilters(tx, adv) {
			out = append(out, tx)
		}
	}

	// Date descending; ties keep insertion order
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.After(out[j].Date)
	})
	return out
}

func matchTab(tx model.Transaction, tab Tab) bool {
	switch tab {
	case TabPaid:
		return tx.Status == model.StatusPaid
	case TabPending:
		return tx.Status == model.StatusPending
	case TabPercentage:
		return tx.IsPercentage
	case TabClaims:
		return isClaim(tx)
	case TabRefunds:
		return tx.Type == model.TxRefund
	case TabInvoices:
		return tx.Type == model.TxInvoice
	case TabPayments:
		return tx.Type == model.TxPayment
	}
	return true
}

func matchFilters(tx model.Transaction, adv Filters) bool {
	if adv.Type != "" && tx.Type != adv.Type {
		return false
	}
	if adv.Status != "" && tx.Status != adv.Status {
		return false
	}
	if adv.MinAmount != nil && tx.Amount < *adv.MinAmount {
		return false
	}
	if adv.MaxAmount != nil && tx.Amount > *adv.MaxAmount {
		return false
	}
	if adv.LinkedEntity != "" && linkedEntity(tx) != adv.LinkedEntity {
		return false
	}
	if adv.Month != nil && int(tx.Date.Month()) != *adv.Month {
		return false
	}
	if adv.Year != nil && tx.Date.Year() != *adv.Year {
		return false
	}
	return true
}
