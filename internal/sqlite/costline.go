package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/pgorczak/eventum/internal/domain/costs"
	"github.com/pgorczak/eventum/internal/repository"
	"github.com/shopspring/decimal"
)

// CostLineRepository implements costs.LineRepository for SQLite
type CostLineRepository struct {
	db *DB
}

// NewCostLineRepository creates a new CostLineRepository
func NewCostLineRepository(db *DB) *CostLineRepository {
	return &CostLineRepository{db: db}
}

// Create appends a cost line
func (r *CostLineRepository) Create(ctx context.Context, tenantID string, line *costs.Line) error {
	query := `
		INSERT INTO cost_lines (id, tenant_id, project_id, cost_type_id, quantity, unit_net, unit_gross,
			has_invoice, invoice_number, linked_kind, linked_id, linked_name, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	var linkedKind, linkedID, linkedName any
	if line.Linked != nil {
		linkedKind = string(line.Linked.Kind)
		linkedID = line.Linked.ID
		linkedName = line.Linked.Name
	}

	_, err := r.db.ExecContext(ctx, query,
		line.ID,
		tenantID,
		line.ProjectID,
		line.CostTypeID,
		line.Quantity.String(),
		line.UnitNet.String(),
		line.UnitGross.String(),
		line.HasInvoice,
		line.InvoiceNumber,
		linkedKind,
		linkedID,
		linkedName,
		line.CreatedAt,
	)

	if err != nil {
		if isForeignKeyViolation(err) {
			return repository.ErrForeignKeyViolation
		}
		return fmt.Errorf("failed to create cost line: %w", err)
	}

	return nil
}

// Delete removes a cost line by id
func (r *CostLineRepository) Delete(ctx context.Context, tenantID, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM cost_lines WHERE id = ? AND tenant_id = ?`, id, tenantID)
	if err != nil {
		return fmt.Errorf("failed to delete cost line: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if affected == 0 {
		return repository.ErrNotFound
	}

	return nil
}

// ListForProject returns a project's cost lines in insertion order
func (r *CostLineRepository) ListForProject(ctx context.Context, tenantID, projectID string) ([]costs.Line, error) {
	query := `
		SELECT id, tenant_id, project_id, cost_type_id, quantity, unit_net, unit_gross,
			has_invoice, invoice_number, linked_kind, linked_id, linked_name, created_at
		FROM cost_lines
		WHERE project_id = ? AND tenant_id = ?
		ORDER BY created_at ASC, id ASC
	`

	rows, err := r.db.QueryContext(ctx, query, projectID, tenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to list cost lines: %w", err)
	}
	defer rows.Close()

	var lines []costs.Line
	for rows.Next() {
		var line costs.Line
		var quantity, unitNet, unitGross string
		var invoiceNumber, linkedKind, linkedID, linkedName sql.NullString

		err := rows.Scan(
			&line.ID,
			&line.TenantID,
			&line.ProjectID,
			&line.CostTypeID,
			&quantity,
			&unitNet,
			&unitGross,
			&line.HasInvoice,
			&invoiceNumber,
			&linkedKind,
			&linkedID,
			&linkedName,
			&line.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan cost line: %w", err)
		}

		if line.Quantity, err = decimal.NewFromString(quantity); err != nil {
			return nil, fmt.Errorf("bad quantity %q: %w", quantity, err)
		}
		if line.UnitNet, err = decimal.NewFromString(unitNet); err != nil {
			return nil, fmt.Errorf("bad unit_net %q: %w", unitNet, err)
		}
		if line.UnitGross, err = decimal.NewFromString(unitGross); err != nil {
			return nil, fmt.Errorf("bad unit_gross %q: %w", unitGross, err)
		}
		line.InvoiceNumber = invoiceNumber.String
		if linkedKind.Valid {
			line.Linked = &costs.LinkedRef{
				Kind: costs.LinkedKind(linkedKind.String),
				ID:   linkedID.String,
				Name: linkedName.String,
			}
		}

		lines = append(lines, line)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating cost line rows: %w", err)
	}

	return lines, nil
}
