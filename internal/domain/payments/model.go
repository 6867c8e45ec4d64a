package payments

import (
	"time"

	"github.com/shopspring/decimal"
)

// Method enumerates accepted payment methods.
type Method string

const (
	MethodCash     Method = "cash"
	MethodTransfer Method = "transfer"
	MethodCard     Method = "card"
	MethodCheque   Method = "cheque"
)

// ValidMethod reports whether m is a known payment method.
func ValidMethod(m Method) bool {
	switch m {
	case MethodCash, MethodTransfer, MethodCard, MethodCheque:
		return true
	}
	return false
}

// Payment is one recorded deposit or settlement against a project.
type Payment struct {
	ID            string          `json:"id"`
	TenantID      string          `json:"tenant_id"`
	ProjectID     string          `json:"project_id"`
	Date          time.Time       `json:"date"`
	Amount        decimal.Decimal `json:"amount"`
	Payer         string          `json:"payer"`
	Method        Method          `json:"method"`
	HasInvoice    bool            `json:"has_invoice"`
	InvoiceNumber string          `json:"invoice_number,omitempty"`
	Notes         string          `json:"notes,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
}

// Sum folds payment amounts.
func Sum(list []Payment) decimal.Decimal {
	total := decimal.Zero
	for _, p := range list {
		total = total.Add(p.Amount)
	}
	return total
}
