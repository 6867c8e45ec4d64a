package costs

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

// Service is the cost ledger: it validates, derives and stores the cost
// lines of a project and folds them into totals.
type Service struct {
	lines  LineRepository
	types  CostTypeRepository
	linked LinkedEntityRepository
	logger *slog.Logger
}

// NewService creates a new cost ledger service.
func NewService(lines LineRepository, types CostTypeRepository, linked LinkedEntityRepository, logger *slog.Logger) *Service {
	return &Service{lines: lines, types: types, linked: linked, logger: logger}
}

// AddLineRequest defines cost line creation inputs. Zero UnitNet or
// UnitGross means the price was not supplied and will be derived.
type AddLineRequest struct {
	ProjectID     string
	CostTypeID    string
	Quantity      decimal.Decimal
	UnitNet       decimal.Decimal
	UnitGross     decimal.Decimal
	HasInvoice    bool
	InvoiceNumber string
	Linked        *LinkedRef
}

// AddLine validates the request, derives the missing unit price and
// appends the line to the project's ledger.
func (s *Service) AddLine(ctx context.Context, tenantID string, req AddLineRequest) (*Line, error) {
	if strings.TrimSpace(req.ProjectID) == "" {
		return nil, repository.ErrInvalidInput
	}
	if strings.TrimSpace(req.CostTypeID) == "" {
		return nil, ErrMissingCostType
	}
	if req.Quantity.IsNegative() {
		return nil, ErrInvalidQuantity
	}
	if req.HasInvoice && strings.TrimSpace(req.InvoiceNumber) == "" {
		return nil, ErrMissingInvoiceNumber
	}
	if req.Linked != nil && !ValidKind(req.Linked.Kind) {
		return nil, ErrInvalidLinkedKind
	}

	unitNet, unitGross, err := DeriveUnitPrices(req.UnitNet, req.UnitGross)
	if err != nil {
		return nil, err
	}

	if _, err := s.types.Get(ctx, tenantID, req.CostTypeID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrCostTypeNotFound
		}
		return nil, fmt.Errorf("loading cost type: %w", err)
	}

	line := &Line{
		ID:            uuid.NewString(),
		TenantID:      tenantID,
		ProjectID:     req.ProjectID,
		CostTypeID:    req.CostTypeID,
		Quantity:      req.Quantity,
		UnitNet:       unitNet,
		UnitGross:     unitGross,
		HasInvoice:    req.HasInvoice,
		InvoiceNumber: req.InvoiceNumber,
		Linked:        req.Linked,
		CreatedAt:     time.Now(),
	}

	if err := s.lines.Create(ctx, tenantID, line); err != nil {
		return nil, fmt.Errorf("creating cost line: %w", err)
	}

	return line, nil
}

// RemoveLine deletes a line by id.
func (s *Service) RemoveLine(ctx context.Context, tenantID, id string) error {
	if err := s.lines.Delete(ctx, tenantID, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrLineNotFound
		}
		return fmt.Errorf("deleting cost line: %w", err)
	}
	return nil
}

// LinesFor returns the current lines of a project.
func (s *Service) LinesFor(ctx context.Context, tenantID, projectID string) ([]Line, error) {
	lines, err := s.lines.ListForProject(ctx, tenantID, projectID)
	if err != nil {
		return nil, fmt.Errorf("listing cost lines: %w", err)
	}
	return lines, nil
}

// Totals folds the project's current lines. Always recomputed, never
// cached, so it cannot drift from the line set.
func (s *Service) Totals(ctx context.Context, tenantID, projectID string) (Totals, error) {
	lines, err := s.LinesFor(ctx, tenantID, projectID)
	if err != nil {
		return Totals{}, err
	}
	return Sum(lines), nil
}

// ListCostTypes returns the cost-type reference collection.
func (s *Service) ListCostTypes(ctx context.Context, tenantID string) ([]CostType, error) {
	return s.types.List(ctx, tenantID)
}

// ListLinkedEntities returns the entities available for association under
// the given kind.
func (s *Service) ListLinkedEntities(ctx context.Context, tenantID string, kind LinkedKind) ([]LinkedEntity, error) {
	if !ValidKind(kind) || kind == KindNone {
		return nil, ErrInvalidLinkedKind
	}
	return s.linked.ListByKind(ctx, tenantID, kind)
}
