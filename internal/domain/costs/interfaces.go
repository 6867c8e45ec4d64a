package costs

import "context"

// LineRepository provides persistence for cost lines.
type LineRepository interface {
	Create(ctx context.Context, tenantID string, line *Line) error
	Delete(ctx context.Context, tenantID, id string) error
	ListForProject(ctx context.Context, tenantID, projectID string) ([]Line, error)
}

// CostTypeRepository provides the cost-type reference collection.
type CostTypeRepository interface {
	Get(ctx context.Context, tenantID, id string) (*CostType, error)
	List(ctx context.Context, tenantID string) ([]CostType, error)
}

// LinkedEntityRepository lists entities a cost line may reference.
type LinkedEntityRepository interface {
	ListByKind(ctx context.Context, tenantID string, kind LinkedKind) ([]LinkedEntity, error)
}
