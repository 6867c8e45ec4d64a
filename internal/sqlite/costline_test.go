package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/pgorczak/eventum/internal/domain/costs"
	"github.com/pgorczak/eventum/internal/repository"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestCostLineRepository_CreateList(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()

	insertProject(t, db, "p1", "tenant1")
	insertCostType(t, db, "ct1", "tenant1")

	repo := NewCostLineRepository(db)
	line := &costs.Line{
		ID:            "l1",
		TenantID:      "tenant1",
		ProjectID:     "p1",
		CostTypeID:    "ct1",
		Quantity:      decimal.RequireFromString("2.5"),
		UnitNet:       decimal.RequireFromString("100.00"),
		UnitGross:     decimal.RequireFromString("123.00"),
		HasInvoice:    true,
		InvoiceNumber: "FV/2024/07/01",
		Linked: &costs.LinkedRef{
			Kind: costs.KindVehicle,
			ID:   "veh-1",
			Name: "Box truck",
		},
		CreatedAt: time.Now(),
	}
	require.NoError(t, repo.Create(ctx, "tenant1", line))

	lines, err := repo.ListForProject(ctx, "tenant1", "p1")
	require.NoError(t, err)
	require.Len(t, lines, 1)

	got := lines[0]
	require.Equal(t, "ct1", got.CostTypeID)
	require.True(t, got.Quantity.Equal(decimal.RequireFromString("2.5")))
	require.True(t, got.UnitNet.Equal(decimal.RequireFromString("100.00")))
	require.True(t, got.UnitGross.Equal(decimal.RequireFromString("123.00")))
	require.True(t, got.HasInvoice)
	require.Equal(t, "FV/2024/07/01", got.InvoiceNumber)
	require.NotNil(t, got.Linked)
	require.Equal(t, costs.KindVehicle, got.Linked.Kind)
	require.Equal(t, "Box truck", got.Linked.Name)
}

func TestCostLineRepository_NoLinkedRef(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()

	insertProject(t, db, "p1", "tenant1")
	insertCostType(t, db, "ct1", "tenant1")
	insertCostLine(t, db, "l1", "tenant1", "p1", "ct1")

	repo := NewCostLineRepository(db)
	lines, err := repo.ListForProject(ctx, "tenant1", "p1")
	require.NoError(t, err)
	require.Len(t, lines, 1)
	require.Nil(t, lines[0].Linked)
}

func TestCostLineRepository_ForeignKeys(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()

	insertProject(t, db, "p1", "tenant1")
	insertCostType(t, db, "ct1", "tenant1")

	repo := NewCostLineRepository(db)

	err := repo.Create(ctx, "tenant1", &costs.Line{
		ID:         "l1",
		TenantID:   "tenant1",
		ProjectID:  "missing",
		CostTypeID: "ct1",
		Quantity:   decimal.NewFromInt(1),
		UnitNet:    decimal.NewFromInt(10),
		UnitGross:  decimal.RequireFromString("12.30"),
		CreatedAt:  time.Now(),
	})
	require.ErrorIs(t, err, repository.ErrForeignKeyViolation)

	err = repo.Create(ctx, "tenant1", &costs.Line{
		ID:         "l2",
		TenantID:   "tenant1",
		ProjectID:  "p1",
		CostTypeID: "missing",
		Quantity:   decimal.NewFromInt(1),
		UnitNet:    decimal.NewFromInt(10),
		UnitGross:  decimal.RequireFromString("12.30"),
		CreatedAt:  time.Now(),
	})
	require.ErrorIs(t, err, repository.ErrForeignKeyViolation)
}

func TestCostLineRepository_Delete(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()

	insertProject(t, db, "p1", "tenant1")
	insertCostType(t, db, "ct1", "tenant1")
	insertCostLine(t, db, "l1", "tenant1", "p1", "ct1")

	repo := NewCostLineRepository(db)
	require.NoError(t, repo.Delete(ctx, "tenant1", "l1"))

	lines, err := repo.ListForProject(ctx, "tenant1", "p1")
	require.NoError(t, err)
	require.Empty(t, lines)

	require.ErrorIs(t, repo.Delete(ctx, "tenant1", "l1"), repository.ErrNotFound)
}

func TestCostLineRepository_TenantIsolation(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()

	insertProject(t, db, "p1", "tenant1")
	insertCostType(t, db, "ct1", "tenant1")
	insertCostLine(t, db, "l1", "tenant1", "p1", "ct1")

	repo := NewCostLineRepository(db)

	lines, err := repo.ListForProject(ctx, "tenant2", "p1")
	require.NoError(t, err)
	require.Empty(t, lines)

	require.ErrorIs(t, repo.Delete(ctx, "tenant2", "l1"), repository.ErrNotFound)
}
