package finance

import "math"

// Draft is the payload of a transaction form submission, reduced to the
// fields that drive amount resolution.
type Draft struct {
	Amount           float64 `json:"amount"`
	IsPercentage     bool    `json:"is_percentage"`
	PercentageAmount float64 `json:"percentage_amount"`
	CaseID           *uint   `json:"case_id"`
}

// CaseValue resolves a case id against the valuation snapshot. Callers must
// treat ErrCaseNotFound as a validation failure, never as zero.
func CaseValue(cases []CaseValuation, id uint) (float64, error) {
	for _, c := range cases {
		if c.ID == id {
			return c.Amount, nil
		}
	}
	return 0, ErrCaseNotFound
}

// ResolveAmount computes the final amount for a draft transaction: either the
// fixed amount as supplied, or percentage * linked case value. The result for
// percentage entries is frozen at write time; later edits to the case value
// never rewrite amounts already persisted.
func (d Draft) ResolveAmount(cases []CaseValuation) (float64, error) {
	if !d.IsPercentage {
		if d.Amount <= 0 {
			return 0, &ValidationError{Field: "amount", Message: "amount required"}
		}
		return d.Amount, nil
	}

	if d.CaseID == nil {
		return 0, &ValidationError{Field: "case_id", Message: "case required"}
	}
	caseValue, err := CaseValue(cases, *d.CaseID)
	if err != nil {
		return 0, &ValidationError{Field: "case_id", Message: "case required"}
	}
	if d.PercentageAmount <= 0 || d.PercentageAmount > 100 {
		return 0, &ValidationError{Field: "percentage_amount", Message: "invalid percentage"}
	}

	return roundCurrency(caseValue * d.PercentageAmount / 100), nil
}

// roundCurrency rounds half-up to the currency's two minor-unit digits.
// Amounts are never negative, so floor(x+0.5) is half-up.
func roundCurrency(v float64) float64 {
	return math.Floor(v*100+0.5) / 100
}
