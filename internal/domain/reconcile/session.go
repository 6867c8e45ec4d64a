package reconcile

import (
	"context"
	"log/slog"
	"sync"

	"github.com/pgorczak/eventum/internal/domain/costs"
	"github.com/pgorczak/eventum/internal/domain/payments"
)

// Loader fetches a project's ledgers from the store collaborator.
type Loader interface {
	LoadCostLines(ctx context.Context, tenantID, projectID string) ([]costs.Line, error)
	LoadPayments(ctx context.Context, tenantID, projectID string) ([]payments.Payment, error)
}

// Session is the per-user reconciliation state container. Selecting a
// project issues both ledger loads in parallel; each load is tagged with
// the selection generation it was issued for, and results arriving after
// the selection moved on are discarded instead of overwriting the ledgers
// of the newly selected project.
type Session struct {
	loader   Loader
	tenantID string
	logger   *slog.Logger

	mu         sync.Mutex
	generation uint64
	projectID  string
	lines      []costs.Line
	payments   []payments.Payment
	lineErr    error
	paymentErr error
}

// NewSession creates a session bound to one tenant.
func NewSession(loader Loader, tenantID string, logger *slog.Logger) *Session {
	return &Session{loader: loader, tenantID: tenantID, logger: logger}
}

// Snapshot is a consistent view of the session state. A failed load
// leaves its ledger empty and carries the error; the caller decides
// whether and when to retry.
type Snapshot struct {
	ProjectID        string
	Lines            []costs.Line
	Payments         []payments.Payment
	Summary          Summary
	CostLoadError    error
	PaymentLoadError error
}

// Select switches the active project and starts both ledger loads. The
// returned channel closes once both loads have settled, whether their
// results were applied or discarded as stale.
func (s *Session) Select(ctx context.Context, projectID string) <-chan struct{} {
	s.mu.Lock()
	s.generation++
	gen := s.generation
	s.projectID = projectID
	s.lines = nil
	s.payments = nil
	s.lineErr = nil
	s.paymentErr = nil
	s.mu.Unlock()

	done := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		lines, err := s.loader.LoadCostLines(ctx, s.tenantID, projectID)
		s.applyLines(gen, projectID, lines, err)
	}()
	go func() {
		defer wg.Done()
		pays, err := s.loader.LoadPayments(ctx, s.tenantID, projectID)
		s.applyPayments(gen, projectID, pays, err)
	}()
	go func() {
		wg.Wait()
		close(done)
	}()

	return done
}

// Refresh re-issues the loads for the current selection.
func (s *Session) Refresh(ctx context.Context) <-chan struct{} {
	s.mu.Lock()
	projectID := s.projectID
	s.mu.Unlock()
	return s.Select(ctx, projectID)
}

// Snapshot returns the current ledgers and their derived summary.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	lines := make([]costs.Line, len(s.lines))
	copy(lines, s.lines)
	pays := make([]payments.Payment, len(s.payments))
	copy(pays, s.payments)

	return Snapshot{
		ProjectID:        s.projectID,
		Lines:            lines,
		Payments:         pays,
		Summary:          Summarize(s.projectID, lines, pays),
		CostLoadError:    s.lineErr,
		PaymentLoadError: s.paymentErr,
	}
}

func (s *Session) applyLines(gen uint64, projectID string, lines []costs.Line, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if gen != s.generation {
		s.logDiscard("cost lines", projectID)
		return
	}
	if err != nil {
		s.lineErr = err
		s.lines = nil
		return
	}
	s.lines = lines
}

func (s *Session) applyPayments(gen uint64, projectID string, pays []payments.Payment, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if gen != s.generation {
		s.logDiscard("payments", projectID)
		return
	}
	if err != nil {
		s.paymentErr = err
		s.payments = nil
		return
	}
	s.payments = pays
}

func (s *Session) logDiscard(what, projectID string) {
	if s.logger != nil {
		s.logger.Debug("discarding stale load", "resource", what, "project_id", projectID, "current_project_id", s.projectID)
	}
}
