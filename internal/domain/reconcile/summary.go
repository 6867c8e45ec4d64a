// Package reconcile derives the financial position of a project from its
// cost and payment ledgers.
package reconcile

import (
	"github.com/pgorczak/eventum/internal/domain/costs"
	"github.com/pgorczak/eventum/internal/domain/payments"
	"github.com/shopspring/decimal"
)

// BalanceState distinguishes overpayment from a zero or open balance.
// Overpayment is a valid state, not an error, and renderers must show it
// differently from an outstanding balance.
type BalanceState string

const (
	StateSettled     BalanceState = "settled"
	StateOutstanding BalanceState = "outstanding"
	StateOverpaid    BalanceState = "overpaid"
)

// Summary is the derived financial position of one project. It is never
// stored; callers recompute it from the current ledgers.
type Summary struct {
	ProjectID  string          `json:"project_id"`
	TotalNet   decimal.Decimal `json:"total_net"`
	TotalGross decimal.Decimal `json:"total_gross"`
	TotalPaid  decimal.Decimal `json:"total_paid"`
	Balance    decimal.Decimal `json:"balance"`
	State      BalanceState    `json:"state"`
}

// Summarize folds the ledgers into a summary. Balance is gross total
// minus payments and may be negative.
func Summarize(projectID string, lines []costs.Line, pays []payments.Payment) Summary {
	totals := costs.Sum(lines)
	paid := payments.Sum(pays)
	balance := totals.Gross.Sub(paid)

	state := StateSettled
	switch {
	case balance.IsPositive():
		state = StateOutstanding
	case balance.IsNegative():
		state = StateOverpaid
	}

	return Summary{
		ProjectID:  projectID,
		TotalNet:   totals.Net,
		TotalGross: totals.Gross,
		TotalPaid:  paid,
		Balance:    balance,
		State:      state,
	}
}
