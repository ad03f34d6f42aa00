package model

import (
	"time"

	"github.com/nicoegiaian/finanzas-hogar-backend/internal/finance"
)

// Transaction kinds. Income and expense records share the same shape; the
// sign semantics live in the aggregation layer.
const (
	KindIncome  = "income"
	KindExpense = "expense"
)

// Transaction represents a single income or expense movement of the
// household ledger.
//
// AmountLocal keeps the raw value exactly as it was received from the form
// or the external store ("1.234,56" included); normalization happens through
// the finance package on every aggregation pass, never at rest.
type Transaction struct {
	ID                string    `json:"id"`
	Kind              string    `json:"kind"`
	Date              time.Time `json:"date"`
	Concept           string    `json:"concept"`
	Owner             string    `json:"owner"`
	MovementType      string    `json:"movementType"`
	ExchangeRateLabel string    `json:"exchangeRateLabel,omitempty"`
	AmountLocal       string    `json:"amountLocal"`
	CreatedAt         time.Time `json:"createdAt,omitempty"`
}

// Period returns the canonical calendar period this transaction falls in.
func (t Transaction) Period() string {
	return finance.NormalizePeriodValue(t.Date)
}

// AmountValue resolves the local-currency amount. ok=false means the record
// contributes nothing to any aggregate.
func (t Transaction) AmountValue() (float64, bool) {
	return finance.ParseAmountString(t.AmountLocal)
}

// AsRecord converts the transaction into the loose record shape consumed by
// the breakdown builder.
func (t Transaction) AsRecord() finance.RawRecord {
	return finance.RawRecord{
		"id":              t.ID,
		"fecha":           t.Date,
		"concepto":        t.Concept,
		"usuario":         t.Owner,
		"tipo_movimiento": t.MovementType,
		"monto_ars":       t.AmountLocal,
	}
}
