package project

import "context"

// Repository provides persistence for projects.
type Repository interface {
	Create(ctx context.Context, tenantID string, proj *Project) error
	Get(ctx context.Context, tenantID, id string) (*Project, error)
	GetByNumber(ctx context.Context, tenantID, number string) (*Project, error)
	Update(ctx context.Context, tenantID string, proj *Project) error
	Delete(ctx context.Context, tenantID, id string) error
	List(ctx context.Context, tenantID string) ([]Summary, error)
	ListAll(ctx context.Context, tenantID string) ([]Project, error)
}
