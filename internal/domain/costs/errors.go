package costs

import "errors"

var (
	// ErrLineNotFound indicates the cost line doesn't exist.
	ErrLineNotFound = errors.New("cost line not found")
	// ErrCostTypeNotFound indicates the referenced cost type doesn't exist.
	ErrCostTypeNotFound = errors.New("cost type not found")
	// ErrInvalidQuantity indicates a negative quantity.
	ErrInvalidQuantity = errors.New("quantity must not be negative")
	// ErrInvalidPrice indicates missing or non-positive unit prices.
	ErrInvalidPrice = errors.New("a positive unit price is required")
	// ErrMissingCostType indicates the cost type reference is empty.
	ErrMissingCostType = errors.New("cost type reference is required")
	// ErrMissingInvoiceNumber indicates has_invoice without a number.
	ErrMissingInvoiceNumber = errors.New("invoice number required when line has an invoice")
	// ErrInvalidLinkedKind indicates an unknown linked-entity kind.
	ErrInvalidLinkedKind = errors.New("unknown linked entity kind")
)
