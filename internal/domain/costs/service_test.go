package costs_test

import (
	"context"
	"testing"

	"github.com/pgorczak/eventum/internal/domain/costs"
	"github.com/pgorczak/eventum/internal/repository"
	"github.com/pgorczak/eventum/internal/repository/mocks"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newService(lines *mocks.CostLineRepository, types *mocks.CostTypeRepository) *costs.Service {
	if lines == nil {
		lines = &mocks.CostLineRepository{}
	}
	if types == nil {
		types = &mocks.CostTypeRepository{}
	}
	return costs.NewService(lines, types, &mocks.LinkedEntityRepository{}, nil)
}

func rentalType() *costs.CostType {
	return &costs.CostType{ID: "ct1", TenantID: "tenant1", Name: "Truck rental", Unit: "day", LinkedKind: costs.KindVehicle}
}

func TestAddLine_DerivesGross(t *testing.T) {
	ctx := context.Background()

	lines := &mocks.CostLineRepository{}
	lines.On("Create", ctx, "tenant1", mock.Anything).Return(nil)
	types := &mocks.CostTypeRepository{}
	types.On("Get", ctx, "tenant1", "ct1").Return(rentalType(), nil)

	svc := newService(lines, types)
	line, err := svc.AddLine(ctx, "tenant1", costs.AddLineRequest{
		ProjectID:  "p1",
		CostTypeID: "ct1",
		Quantity:   dec("2"),
		UnitNet:    dec("100.00"),
	})
	require.NoError(t, err)
	require.NotEmpty(t, line.ID)
	require.True(t, line.UnitGross.Equal(dec("123.00")), "unit gross %s", line.UnitGross)
	require.True(t, line.LineNet().Equal(dec("200.00")))
	require.True(t, line.LineGross().Equal(dec("246.00")))
}

func TestAddLine_Validation(t *testing.T) {
	ctx := context.Background()
	svc := newService(nil, nil)

	_, err := svc.AddLine(ctx, "tenant1", costs.AddLineRequest{
		ProjectID: "p1", CostTypeID: "ct1", Quantity: dec("-1"), UnitNet: dec("10"),
	})
	require.ErrorIs(t, err, costs.ErrInvalidQuantity)

	_, err = svc.AddLine(ctx, "tenant1", costs.AddLineRequest{
		ProjectID: "p1", CostTypeID: "ct1", Quantity: dec("1"),
	})
	require.ErrorIs(t, err, costs.ErrInvalidPrice)

	_, err = svc.AddLine(ctx, "tenant1", costs.AddLineRequest{
		ProjectID: "p1", Quantity: dec("1"), UnitNet: dec("10"),
	})
	require.ErrorIs(t, err, costs.ErrMissingCostType)

	_, err = svc.AddLine(ctx, "tenant1", costs.AddLineRequest{
		ProjectID: "p1", CostTypeID: "ct1", Quantity: dec("1"), UnitNet: dec("10"),
		HasInvoice: true,
	})
	require.ErrorIs(t, err, costs.ErrMissingInvoiceNumber)

	_, err = svc.AddLine(ctx, "tenant1", costs.AddLineRequest{
		ProjectID: "p1", CostTypeID: "ct1", Quantity: dec("1"), UnitNet: dec("10"),
		Linked: &costs.LinkedRef{Kind: "spaceship", ID: "x"},
	})
	require.ErrorIs(t, err, costs.ErrInvalidLinkedKind)
}

func TestAddLine_UnknownCostType(t *testing.T) {
	ctx := context.Background()

	types := &mocks.CostTypeRepository{}
	types.On("Get", ctx, "tenant1", "missing").Return((*costs.CostType)(nil), repository.ErrNotFound)

	svc := newService(nil, types)
	_, err := svc.AddLine(ctx, "tenant1", costs.AddLineRequest{
		ProjectID: "p1", CostTypeID: "missing", Quantity: dec("1"), UnitNet: dec("10"),
	})
	require.ErrorIs(t, err, costs.ErrCostTypeNotFound)
}

func TestRemoveLine_Missing(t *testing.T) {
	ctx := context.Background()

	lines := &mocks.CostLineRepository{}
	lines.On("Delete", ctx, "tenant1", "missing").Return(repository.ErrNotFound)

	svc := newService(lines, nil)
	err := svc.RemoveLine(ctx, "tenant1", "missing")
	require.ErrorIs(t, err, costs.ErrLineNotFound)
}

func TestTotals_FoldOverCurrentLines(t *testing.T) {
	ctx := context.Background()

	stored := []costs.Line{
		{ID: "l1", ProjectID: "p1", Quantity: dec("2"), UnitNet: dec("100.00"), UnitGross: dec("123.00")},
		{ID: "l2", ProjectID: "p1", Quantity: dec("3"), UnitNet: dec("10.00"), UnitGross: dec("12.30")},
	}
	lines := &mocks.CostLineRepository{}
	lines.On("ListForProject", ctx, "tenant1", "p1").Return(stored, nil)

	svc := newService(lines, nil)
	totals, err := svc.Totals(ctx, "tenant1", "p1")
	require.NoError(t, err)
	require.True(t, totals.Net.Equal(dec("230.00")), "net %s", totals.Net)
	require.True(t, totals.Gross.Equal(dec("282.90")), "gross %s", totals.Gross)
}

func TestListLinkedEntities_KindChecked(t *testing.T) {
	ctx := context.Background()
	svc := newService(nil, nil)

	_, err := svc.ListLinkedEntities(ctx, "tenant1", "spaceship")
	require.ErrorIs(t, err, costs.ErrInvalidLinkedKind)

	_, err = svc.ListLinkedEntities(ctx, "tenant1", costs.KindNone)
	require.ErrorIs(t, err, costs.ErrInvalidLinkedKind)
}

func TestListLinkedEntities(t *testing.T) {
	ctx := context.Background()

	linked := &mocks.LinkedEntityRepository{}
	linked.On("ListByKind", ctx, "tenant1", costs.KindVehicle).Return([]costs.LinkedEntity{
		{ID: "v1", Kind: costs.KindVehicle, Name: "Box truck"},
	}, nil)

	svc := costs.NewService(&mocks.CostLineRepository{}, &mocks.CostTypeRepository{}, linked, nil)
	entities, err := svc.ListLinkedEntities(ctx, "tenant1", costs.KindVehicle)
	require.NoError(t, err)
	require.Len(t, entities, 1)
	require.Equal(t, "Box truck", entities[0].Name)
}
