package project

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pgorczak/eventum/internal/repository"
)

// Service handles project operations.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

// NewService creates a new project service.
func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// CreateRequest defines project creation inputs.
type CreateRequest struct {
	ID       string
	Number   string
	Name     string
	MainDate time.Time
	Location string
	Notes    string
	Schedule Schedule
}

// Create creates a new project.
func (s *Service) Create(ctx context.Context, tenantID string, req CreateRequest) (*Project, error) {
	if err := ValidateCreateInput(req); err != nil {
		return nil, err
	}

	id := req.ID
	if strings.TrimSpace(id) == "" {
		id = uuid.NewString()
	}

	proj := &Project{
		ID:        id,
		TenantID:  tenantID,
		Number:    req.Number,
		Name:      req.Name,
		MainDate:  DateOf(req.MainDate),
		Location:  req.Location,
		Notes:     req.Notes,
		Schedule:  normalizeSchedule(req.Schedule),
		CreatedAt: time.Now(),
	}

	if err := s.repo.Create(ctx, tenantID, proj); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrDuplicateNumber
		}
		return nil, fmt.Errorf("creating project: %w", err)
	}

	return proj, nil
}

// UpdateRequest defines mutable project fields. Nil pointers leave the
// current value untouched.
type UpdateRequest struct {
	ID       string
	Name     *string
	MainDate *time.Time
	Location *string
	Notes    *string
	Schedule *Schedule
}

// Update applies partial changes to a project.
func (s *Service) Update(ctx context.Context, tenantID string, req UpdateRequest) (*Project, error) {
	proj, err := s.Get(ctx, tenantID, req.ID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		if strings.TrimSpace(*req.Name) == "" {
			return nil, ErrInvalidInput
		}
		proj.Name = *req.Name
	}
	if req.MainDate != nil {
		proj.MainDate = DateOf(*req.MainDate)
	}
	if req.Location != nil {
		proj.Location = *req.Location
	}
	if req.Notes != nil {
		proj.Notes = *req.Notes
	}
	if req.Schedule != nil {
		if err := ValidateSchedule(*req.Schedule); err != nil {
			return nil, err
		}
		proj.Schedule = normalizeSchedule(*req.Schedule)
	}

	if err := s.repo.Update(ctx, tenantID, proj); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("updating project: %w", err)
	}

	return proj, nil
}

// Get fetches a project by ID.
func (s *Service) Get(ctx context.Context, tenantID, id string) (*Project, error) {
	proj, err := s.repo.Get(ctx, tenantID, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("getting project: %w", err)
	}
	return proj, nil
}

// GetByNumber fetches a project by its business number.
func (s *Service) GetByNumber(ctx context.Context, tenantID, number string) (*Project, error) {
	proj, err := s.repo.GetByNumber(ctx, tenantID, number)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("getting project by number: %w", err)
	}
	return proj, nil
}

// List returns project summaries.
func (s *Service) List(ctx context.Context, tenantID string) ([]Summary, error) {
	return s.repo.List(ctx, tenantID)
}

// ListAll returns full project records for calendar rendering.
func (s *Service) ListAll(ctx context.Context, tenantID string) ([]Project, error) {
	return s.repo.ListAll(ctx, tenantID)
}

// Delete removes a project. Cost lines and payments cascade in the store.
func (s *Service) Delete(ctx context.Context, tenantID, id string) error {
	if err := s.repo.Delete(ctx, tenantID, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrProjectNotFound
		}
		return fmt.Errorf("deleting project: %w", err)
	}
	return nil
}

// normalizeSchedule truncates all schedule dates to calendar days.
func normalizeSchedule(sched Schedule) Schedule {
	out := Schedule{}
	if sched.Packing != nil {
		out.Packing = &PhaseDay{Date: DateOf(sched.Packing.Date), Time: sched.Packing.Time}
	}
	if sched.Assembly != nil {
		out.Assembly = &PhaseRange{From: DateOf(sched.Assembly.From), To: DateOf(sched.Assembly.To)}
	}
	if sched.Disassembly != nil {
		out.Disassembly = &PhaseDay{Date: DateOf(sched.Disassembly.Date), Time: sched.Disassembly.Time}
	}
	return out
}
