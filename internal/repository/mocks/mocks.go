package mocks

import (
	"context"

	"github.com/pgorczak/eventum/internal/domain/costs"
	"github.com/pgorczak/eventum/internal/domain/payments"
	"github.com/pgorczak/eventum/internal/domain/project"
	"github.com/stretchr/testify/mock"
)

// ProjectRepository is a mock for project.Repository.
type ProjectRepository struct {
	mock.Mock
}

func (m *ProjectRepository) Create(ctx context.Context, tenantID string, proj *project.Project) error {
	args := m.Called(ctx, tenantID, proj)
	return args.Error(0)
}

func (m *ProjectRepository) Get(ctx context.Context, tenantID, id string) (*project.Project, error) {
	args := m.Called(ctx, tenantID, id)
	if proj, ok := args.Get(0).(*project.Project); ok {
		return proj, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *ProjectRepository) GetByNumber(ctx context.Context, tenantID, number string) (*project.Project, error) {
	args := m.Called(ctx, tenantID, number)
	if proj, ok := args.Get(0).(*project.Project); ok {
		return proj, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *ProjectRepository) Update(ctx context.Context, tenantID string, proj *project.Project) error {
	args := m.Called(ctx, tenantID, proj)
	return args.Error(0)
}

func (m *ProjectRepository) Delete(ctx context.Context, tenantID, id string) error {
	args := m.Called(ctx, tenantID, id)
	return args.Error(0)
}

func (m *ProjectRepository) List(ctx context.Context, tenantID string) ([]project.Summary, error) {
	args := m.Called(ctx, tenantID)
	if list, ok := args.Get(0).([]project.Summary); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *ProjectRepository) ListAll(ctx context.Context, tenantID string) ([]project.Project, error) {
	args := m.Called(ctx, tenantID)
	if list, ok := args.Get(0).([]project.Project); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

// CostLineRepository is a mock for costs.LineRepository.
type CostLineRepository struct {
	mock.Mock
}

func (m *CostLineRepository) Create(ctx context.Context, tenantID string, line *costs.Line) error {
	args := m.Called(ctx, tenantID, line)
	return args.Error(0)
}

func (m *CostLineRepository) Delete(ctx context.Context, tenantID, id string) error {
	args := m.Called(ctx, tenantID, id)
	return args.Error(0)
}

func (m *CostLineRepository) ListForProject(ctx context.Context, tenantID, projectID string) ([]costs.Line, error) {
	args := m.Called(ctx, tenantID, projectID)
	if list, ok := args.Get(0).([]costs.Line); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

// CostTypeRepository is a mock for costs.CostTypeRepository.
type CostTypeRepository struct {
	mock.Mock
}

func (m *CostTypeRepository) Create(ctx context.Context, tenantID string, ct *costs.CostType) error {
	args := m.Called(ctx, tenantID, ct)
	return args.Error(0)
}

func (m *CostTypeRepository) Get(ctx context.Context, tenantID, id string) (*costs.CostType, error) {
	args := m.Called(ctx, tenantID, id)
	if ct, ok := args.Get(0).(*costs.CostType); ok {
		return ct, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *CostTypeRepository) List(ctx context.Context, tenantID string) ([]costs.CostType, error) {
	args := m.Called(ctx, tenantID)
	if list, ok := args.Get(0).([]costs.CostType); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

// LinkedEntityRepository is a mock for costs.LinkedEntityRepository.
type LinkedEntityRepository struct {
	mock.Mock
}

func (m *LinkedEntityRepository) Create(ctx context.Context, tenantID string, entity *costs.LinkedEntity) error {
	args := m.Called(ctx, tenantID, entity)
	return args.Error(0)
}

func (m *LinkedEntityRepository) ListByKind(ctx context.Context, tenantID string, kind costs.LinkedKind) ([]costs.LinkedEntity, error) {
	args := m.Called(ctx, tenantID, kind)
	if list, ok := args.Get(0).([]costs.LinkedEntity); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

// PaymentRepository is a mock for payments.Repository.
type PaymentRepository struct {
	mock.Mock
}

func (m *PaymentRepository) Create(ctx context.Context, tenantID string, payment *payments.Payment) error {
	args := m.Called(ctx, tenantID, payment)
	return args.Error(0)
}

func (m *PaymentRepository) Delete(ctx context.Context, tenantID, id string) error {
	args := m.Called(ctx, tenantID, id)
	return args.Error(0)
}

func (m *PaymentRepository) ListForProject(ctx context.Context, tenantID, projectID string) ([]payments.Payment, error) {
	args := m.Called(ctx, tenantID, projectID)
	if list, ok := args.Get(0).([]payments.Payment); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}
