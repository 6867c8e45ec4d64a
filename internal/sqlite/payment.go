package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/pgorczak/eventum/internal/domain/payments"
	"github.com/pgorczak/eventum/internal/repository"
	"github.com/shopspring/decimal"
)

// PaymentRepository implements payments.Repository for SQLite
type PaymentRepository struct {
	db *DB
}

// NewPaymentRepository creates a new PaymentRepository
func NewPaymentRepository(db *DB) *PaymentRepository {
	return &PaymentRepository{db: db}
}

// Create records a payment
func (r *PaymentRepository) Create(ctx context.Context, tenantID string, payment *payments.Payment) error {
	query := `
		INSERT INTO payments (id, tenant_id, project_id, paid_on, amount, payer, method,
			has_invoice, invoice_number, notes, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := r.db.ExecContext(ctx, query,
		payment.ID,
		tenantID,
		payment.ProjectID,
		payment.Date,
		payment.Amount.String(),
		payment.Payer,
		string(payment.Method),
		payment.HasInvoice,
		payment.InvoiceNumber,
		payment.Notes,
		payment.CreatedAt,
	)

	if err != nil {
		if isForeignKeyViolation(err) {
			return repository.ErrForeignKeyViolation
		}
		return fmt.Errorf("failed to create payment: %w", err)
	}

	return nil
}

// Delete removes a payment by id
func (r *PaymentRepository) Delete(ctx context.Context, tenantID, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM payments WHERE id = ? AND tenant_id = ?`, id, tenantID)
	if err != nil {
		return fmt.Errorf("failed to delete payment: %w", err)
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

// ListForProject returns a project's payments ordered by payment date
func (r *PaymentRepository) ListForProject(ctx context.Context, tenantID, projectID string) ([]payments.Payment, error) {
	query := `
		SELECT id, tenant_id, project_id, paid_on, amount, payer, method,
			has_invoice, invoice_number, notes, created_at
		FROM payments
		WHERE project_id = ? AND tenant_id = ?
		ORDER BY paid_on ASC, created_at ASC
	`

	rows, err := r.db.QueryContext(ctx, query, projectID, tenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to list payments: %w", err)
	}
	defer rows.Close()

	var list []payments.Payment
	for rows.Next() {
		var payment payments.Payment
		var amount, method string
		var invoiceNumber, notes sql.NullString

		err := rows.Scan(
			&payment.ID,
			&payment.TenantID,
			&payment.ProjectID,
			&payment.Date,
			&amount,
			&payment.Payer,
			&method,
			&payment.HasInvoice,
			&invoiceNumber,
			&notes,
			&payment.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan payment: %w", err)
		}

		if payment.Amount, err = decimal.NewFromString(amount); err != nil {
			return nil, fmt.Errorf("bad amount %q: %w", amount, err)
		}
		payment.Method = payments.Method(method)
		payment.InvoiceNumber = invoiceNumber.String
		payment.Notes = notes.String

		list = append(list, payment)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating payment rows: %w", err)
	}

	return list, nil
}
