package finance

import "go-lawoffice-ws/internal/model"

// TypeTag is the category a transaction falls into for filtering and the
// summary tabs.
type TypeTag string

const (
	TagPercentage TypeTag = "percentage"
	TagClaim      TypeTag = "claim"
	TagInvoice    TypeTag = "invoice"
	TagPayment    TypeTag = "payment"
	TagRefund     TypeTag = "refund"
	TagFixed      TypeTag = "fixed"
)

// LinkedEntityTag names the external entity a transaction is linked to.
type LinkedEntityTag string

const (
	LinkedCase     LinkedEntityTag = "case"
	LinkedEmployee LinkedEntityTag = "employee"
	LinkedNone     LinkedEntityTag = "none"
)

type Classification struct {
	TypeTag      TypeTag         `json:"type_tag"`
	LinkedEntity LinkedEntityTag `json:"linked_entity_tag"`
}

// isClaim: a transaction is a claim when its type says so OR when it is
// linked to an employee. Employee-linked transactions count as claims for
// filtering no matter what their type field holds.
func isClaim(tx model.Transaction) bool {
	return tx.Type == model.TxClaim || tx.SourceType == model.SourceEmployee
}

// Classify tags a transaction for the filter pipeline and the summary view.
// The percentage tag wins over the raw type; the claim tag follows the
// type-or-employee rule above.
func Classify(tx model.Transaction) Classification {
	return Classification{
		TypeTag:      typeTag(tx),
		LinkedEntity: linkedEntity(tx),
	}
}

func typeTag(tx model.Transaction) TypeTag {
	if tx.IsPercentage {
		return TagPercentage
	}
	if isClaim(tx) {
		return TagClaim
	}
	switch tx.Type {
	case model.TxInvoice:
		return TagInvoice
	case model.TxPayment:
		return TagPayment
	case model.TxRefund:
		return TagRefund
	}
	return TagFixed
}

func linkedEntity(tx model.Transaction) LinkedEntityTag {
	switch tx.SourceType {
	case model.SourceCase:
		return LinkedCase
	case model.SourceEmployee:
		return LinkedEmployee
	}
	return LinkedNone
}
