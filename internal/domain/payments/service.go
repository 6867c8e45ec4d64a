package payments

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pgorczak/eventum/internal/repository"
	"github.com/shopspring/decimal"
)

// Service is the payment ledger for project deposits and settlements.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

// NewService creates a new payment ledger service.
func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// AddRequest defines payment creation inputs.
type AddRequest struct {
	ProjectID     string
	Date          time.Time
	Amount        decimal.Decimal
	Payer         string
	Method        Method
	HasInvoice    bool
	InvoiceNumber string
	Notes         string
}

// Add records a payment against a project.
func (s *Service) Add(ctx context.Context, tenantID string, req AddRequest) (*Payment, error) {
	if strings.TrimSpace(req.ProjectID) == "" {
		return nil, repository.ErrInvalidInput
	}
	if !req.Amount.IsPositive() {
		return nil, ErrInvalidAmount
	}
	if strings.TrimSpace(req.Payer) == "" {
		return nil, ErrMissingPayer
	}
	if !ValidMethod(req.Method) {
		return nil, ErrInvalidMethod
	}
	if req.HasInvoice && strings.TrimSpace(req.InvoiceNumber) == "" {
		return nil, ErrMissingInvoiceNumber
	}

	date := req.Date
	if date.IsZero() {
		date = time.Now()
	}

	payment := &Payment{
		ID:            uuid.NewString(),
		TenantID:      tenantID,
		ProjectID:     req.ProjectID,
		Date:          date,
		Amount:        req.Amount,
		Payer:         req.Payer,
		Method:        req.Method,
		HasInvoice:    req.HasInvoice,
		InvoiceNumber: req.InvoiceNumber,
		Notes:         req.Notes,
		CreatedAt:     time.Now(),
	}

	if err := s.repo.Create(ctx, tenantID, payment); err != nil {
		return nil, fmt.Errorf("creating payment: %w", err)
	}

	return payment, nil
}

// Remove deletes a payment by id.
func (s *Service) Remove(ctx context.Context, tenantID, id string) error {
	if err := s.repo.Delete(ctx, tenantID, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrPaymentNotFound
		}
		return fmt.Errorf("deleting payment: %w", err)
	}
	return nil
}

// PaymentsFor returns the payments recorded for a project.
func (s *Service) PaymentsFor(ctx context.Context, tenantID, projectID string) ([]Payment, error) {
	list, err := s.repo.ListForProject(ctx, tenantID, projectID)
	if err != nil {
		return nil, fmt.Errorf("listing payments: %w", err)
	}
	return list, nil
}

// TotalPaid folds the payment amounts for a project.
func (s *Service) TotalPaid(ctx context.Context, tenantID, projectID string) (decimal.Decimal, error) {
	list, err := s.PaymentsFor(ctx, tenantID, projectID)
	if err != nil {
		return decimal.Zero, err
	}
	return Sum(list), nil
}
