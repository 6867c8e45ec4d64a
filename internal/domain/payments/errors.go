package payments

import "errors"

var (
	// ErrPaymentNotFound indicates the payment doesn't exist.
	ErrPaymentNotFound = errors.New("payment not found")
	// ErrInvalidAmount indicates a non-positive payment amount.
	ErrInvalidAmount = errors.New("payment amount must be positive")
	// ErrMissingPayer indicates an empty payer name.
	ErrMissingPayer = errors.New("payer name is required")
	// ErrInvalidMethod indicates an unknown payment method.
	ErrInvalidMethod = errors.New("unknown payment method")
	// ErrMissingInvoiceNumber indicates has_invoice without a number.
	ErrMissingInvoiceNumber = errors.New("invoice number required when payment has an invoice")
)
