package mcp

import (
	"errors"
	"fmt"

	"github.com/pgorczak/eventum/internal/domain/costs"
	"github.com/pgorczak/eventum/internal/domain/payments"
	"github.com/pgorczak/eventum/internal/domain/project"
	"github.com/pgorczak/eventum/internal/repository"
)

// APIError represents an MCP error response.
type APIError struct {
	Code         string `json:"code"`
	Message      string `json:"message"`
	Details      any    `json:"details,omitempty"`
	RecoveryHint string `json:"recovery_hint,omitempty"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// CodeValue exposes the stable code to transports without a package
// dependency on this one.
func (e *APIError) CodeValue() string {
	return e.Code
}

// MapError maps domain errors to MCP error codes.
func MapError(err error) *APIError {
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(err, project.ErrProjectNotFound):
		return &APIError{Code: "PROJECT_NOT_FOUND", Message: "project not found", RecoveryHint: "Check the project ID or list_projects"}
	case errors.Is(err, project.ErrDuplicateNumber):
		return &APIError{Code: "DUPLICATE_NUMBER", Message: "project number already in use", RecoveryHint: "Pick a different number"}
	case errors.Is(err, project.ErrInvalidSchedule):
		return &APIError{Code: "INVALID_SCHEDULE", Message: "schedule range is reversed or malformed", RecoveryHint: "Assembly 'from' must not be after 'to'"}
	case errors.Is(err, project.ErrInvalidInput):
		return &APIError{Code: "INVALID_INPUT", Message: "missing or invalid project fields"}
	case errors.Is(err, costs.ErrLineNotFound):
		return &APIError{Code: "COST_LINE_NOT_FOUND", Message: "cost line not found", RecoveryHint: "It may already have been removed"}
	case errors.Is(err, costs.ErrCostTypeNotFound):
		return &APIError{Code: "COST_TYPE_NOT_FOUND", Message: "cost type not found", RecoveryHint: "Call list_cost_types for valid IDs"}
	case errors.Is(err, costs.ErrMissingCostType):
		return &APIError{Code: "MISSING_COST_TYPE", Message: "cost line requires a cost type"}
	case errors.Is(err, costs.ErrInvalidQuantity):
		return &APIError{Code: "INVALID_QUANTITY", Message: "quantity must not be negative"}
	case errors.Is(err, costs.ErrInvalidPrice):
		return &APIError{Code: "INVALID_PRICE", Message: "supply a positive unit net or unit gross price"}
	case errors.Is(err, costs.ErrMissingInvoiceNumber):
		return &APIError{Code: "MISSING_INVOICE_NUMBER", Message: "invoiced entries require an invoice number"}
	case errors.Is(err, costs.ErrInvalidLinkedKind):
		return &APIError{Code: "INVALID_LINKED_KIND", Message: "unknown linked entity kind", RecoveryHint: "Use vehicle, employee, contact or rentalCompany"}
	case errors.Is(err, payments.ErrPaymentNotFound):
		return &APIError{Code: "PAYMENT_NOT_FOUND", Message: "payment not found", RecoveryHint: "It may already have been removed"}
	case errors.Is(err, payments.ErrInvalidAmount):
		return &APIError{Code: "INVALID_AMOUNT", Message: "payment amount must be positive"}
	case errors.Is(err, payments.ErrMissingPayer):
		return &APIError{Code: "MISSING_PAYER", Message: "payment requires a payer"}
	case errors.Is(err, payments.ErrInvalidMethod):
		return &APIError{Code: "INVALID_METHOD", Message: "unknown payment method", RecoveryHint: "Use cash, transfer, card or cheque"}
	case errors.Is(err, payments.ErrMissingInvoiceNumber):
		return &APIError{Code: "MISSING_INVOICE_NUMBER", Message: "invoiced payments require an invoice number"}
	case errors.Is(err, repository.ErrForeignKeyViolation):
		// Cost type refs are checked before insert, so the broken
		// reference is the project itself.
		return &APIError{Code: "PROJECT_NOT_FOUND", Message: "referenced project does not exist", RecoveryHint: "Check the project ID or list_projects"}
	case errors.Is(err, repository.ErrInvalidInput):
		return &APIError{Code: "INVALID_INPUT", Message: "missing or invalid request fields"}
	default:
		return nil
	}
}
