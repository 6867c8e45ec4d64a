package payments

import "context"

// Repository provides persistence for payments.
type Repository interface {
	Create(ctx context.Context, tenantID string, payment *Payment) error
	Delete(ctx context.Context, tenantID, id string) error
	ListForProject(ctx context.Context, tenantID, projectID string) ([]Payment, error)
}
