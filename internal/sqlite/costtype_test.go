package sqlite

import (
	"context"
	"testing"

	"github.com/pgorczak/eventum/internal/domain/costs"
	"github.com/pgorczak/eventum/internal/repository"
	"github.com/stretchr/testify/require"
)

func TestCostTypeRepository_CreateGet(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()

	repo := NewCostTypeRepository(db)
	require.NoError(t, repo.Create(ctx, "tenant1", &costs.CostType{
		ID:         "ct1",
		TenantID:   "tenant1",
		Name:       "Truck rental",
		Unit:       "day",
		LinkedKind: costs.KindVehicle,
	}))

	got, err := repo.Get(ctx, "tenant1", "ct1")
	require.NoError(t, err)
	require.Equal(t, "Truck rental", got.Name)
	require.Equal(t, "day", got.Unit)
	require.Equal(t, costs.KindVehicle, got.LinkedKind)

	_, err = repo.Get(ctx, "tenant2", "ct1")
	require.ErrorIs(t, err, repository.ErrNotFound)
}

func TestCostTypeRepository_ListSorted(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()

	repo := NewCostTypeRepository(db)
	for _, name := range []string{"Zebra tent", "Catering", "Lighting"} {
		require.NoError(t, repo.Create(ctx, "tenant1", &costs.CostType{
			ID:         "ct-" + name,
			TenantID:   "tenant1",
			Name:       name,
			LinkedKind: costs.KindNone,
		}))
	}

	types, err := repo.List(ctx, "tenant1")
	require.NoError(t, err)
	require.Len(t, types, 3)
	require.Equal(t, "Catering", types[0].Name)
	require.Equal(t, "Lighting", types[1].Name)
	require.Equal(t, "Zebra tent", types[2].Name)
}

func TestLinkedEntityRepository_ListByKind(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()

	repo := NewLinkedEntityRepository(db)
	require.NoError(t, repo.Create(ctx, "tenant1", &costs.LinkedEntity{ID: "v1", Kind: costs.KindVehicle, Name: "Box truck"}))
	require.NoError(t, repo.Create(ctx, "tenant1", &costs.LinkedEntity{ID: "v2", Kind: costs.KindVehicle, Name: "Armatrailer"}))
	require.NoError(t, repo.Create(ctx, "tenant1", &costs.LinkedEntity{ID: "e1", Kind: costs.KindEmployee, Name: "Rigger"}))

	vehicles, err := repo.ListByKind(ctx, "tenant1", costs.KindVehicle)
	require.NoError(t, err)
	require.Len(t, vehicles, 2)
	require.Equal(t, "Armatrailer", vehicles[0].Name)

	employees, err := repo.ListByKind(ctx, "tenant1", costs.KindEmployee)
	require.NoError(t, err)
	require.Len(t, employees, 1)

	none, err := repo.ListByKind(ctx, "tenant2", costs.KindVehicle)
	require.NoError(t, err)
	require.Empty(t, none)
}
