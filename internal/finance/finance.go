// Package finance is the transaction computation engine: amount resolution,
// classification, filtering and summary aggregation. Every function here is a
// pure function over snapshots of the transaction and case collections; the
// service layer owns reads and writes and hands read-only slices in.
package finance

import "errors"

// ErrCaseNotFound is returned by CaseValue when the referenced case id is not
// present in the supplied valuation snapshot.
var ErrCaseNotFound = errors.New("case not found")

// ValidationError reports a draft transaction that cannot be resolved to an
// amount. It is always recoverable: the caller surfaces it to the form and
// commits nothing.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

// CaseValuation is the read-only projection of a case used for
// percentage-based amounts.
type CaseValuation struct {
	ID     uint    `json:"id"`
	Title  string  `json:"title"`
	Amount float64 `json:"amount"`
}

// Summary holds the figures behind the transaction screen's summary cards.
type Summary struct {
	TotalPaid     float64 `json:"total_paid"`
	TotalInvoices float64 `json:"total_invoices"`
	TotalPending  float64 `json:"total_pending"`
}
