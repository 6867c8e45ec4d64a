package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/pgorczak/eventum/internal/domain/costs"
	"github.com/pgorczak/eventum/internal/repository"
)

// CostTypeRepository implements costs.CostTypeRepository for SQLite
type CostTypeRepository struct {
	db *DB
}

// NewCostTypeRepository creates a new CostTypeRepository
func NewCostTypeRepository(db *DB) *CostTypeRepository {
	return &CostTypeRepository{db: db}
}

// Create inserts a cost type reference record
func (r *CostTypeRepository) Create(ctx context.Context, tenantID string, ct *costs.CostType) error {
	query := `INSERT INTO cost_types (id, tenant_id, name, unit, linked_kind) VALUES (?, ?, ?, ?, ?)`

	_, err := r.db.ExecContext(ctx, query, ct.ID, tenantID, ct.Name, ct.Unit, string(ct.LinkedKind))
	if err != nil {
		return fmt.Errorf("failed to create cost type: %w", err)
	}

	return nil
}

// Get retrieves a cost type by ID
func (r *CostTypeRepository) Get(ctx context.Context, tenantID, id string) (*costs.CostType, error) {
	query := `SELECT id, tenant_id, name, unit, linked_kind FROM cost_types WHERE id = ? AND tenant_id = ?`

	var ct costs.CostType
	var unit sql.NullString
	var kind string
	err := r.db.QueryRowContext(ctx, query, id, tenantID).Scan(&ct.ID, &ct.TenantID, &ct.Name, &unit, &kind)

	if err == sql.ErrNoRows {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get cost type: %w", err)
	}

	ct.Unit = unit.String
	ct.LinkedKind = costs.LinkedKind(kind)
	return &ct, nil
}

// List returns the tenant's cost types
func (r *CostTypeRepository) List(ctx context.Context, tenantID string) ([]costs.CostType, error) {
	query := `SELECT id, tenant_id, name, unit, linked_kind FROM cost_types WHERE tenant_id = ? ORDER BY name ASC`

	rows, err := r.db.QueryContext(ctx, query, tenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to list cost types: %w", err)
	}
	defer rows.Close()

	var types []costs.CostType
	for rows.Next() {
		var ct costs.CostType
		var unit sql.NullString
		var kind string
		if err := rows.Scan(&ct.ID, &ct.TenantID, &ct.Name, &unit, &kind); err != nil {
			return nil, fmt.Errorf("failed to scan cost type: %w", err)
		}
		ct.Unit = unit.String
		ct.LinkedKind = costs.LinkedKind(kind)
		types = append(types, ct)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating cost type rows: %w", err)
	}

	return types, nil
}

// LinkedEntityRepository implements costs.LinkedEntityRepository for SQLite
type LinkedEntityRepository struct {
	db *DB
}

// NewLinkedEntityRepository creates a new LinkedEntityRepository
func NewLinkedEntityRepository(db *DB) *LinkedEntityRepository {
	return &LinkedEntityRepository{db: db}
}

// Create inserts a linked entity reference record
func (r *LinkedEntityRepository) Create(ctx context.Context, tenantID string, entity *costs.LinkedEntity) error {
	query := `INSERT INTO linked_entities (id, tenant_id, kind, name) VALUES (?, ?, ?, ?)`

	_, err := r.db.ExecContext(ctx, query, entity.ID, tenantID, string(entity.Kind), entity.Name)
	if err != nil {
		return fmt.Errorf("failed to create linked entity: %w", err)
	}

	return nil
}

// ListByKind returns the tenant's linked entities of one kind
func (r *LinkedEntityRepository) ListByKind(ctx context.Context, tenantID string, kind costs.LinkedKind) ([]costs.LinkedEntity, error) {
	query := `SELECT id, kind, name FROM linked_entities WHERE tenant_id = ? AND kind = ? ORDER BY name ASC`

	rows, err := r.db.QueryContext(ctx, query, tenantID, string(kind))
	if err != nil {
		return nil, fmt.Errorf("failed to list linked entities: %w", err)
	}
	defer rows.Close()

	var entities []costs.LinkedEntity
	for rows.Next() {
		var entity costs.LinkedEntity
		var k string
		if err := rows.Scan(&entity.ID, &k, &entity.Name); err != nil {
			return nil, fmt.Errorf("failed to scan linked entity: %w", err)
		}
		entity.Kind = costs.LinkedKind(k)
		entities = append(entities, entity)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating linked entity rows: %w", err)
	}

	return entities, nil
}
