package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/pgorczak/eventum/internal/domain/calendar"
	"github.com/pgorczak/eventum/internal/domain/costs"
	"github.com/pgorczak/eventum/internal/domain/payments"
	"github.com/pgorczak/eventum/internal/domain/project"
	"github.com/pgorczak/eventum/internal/domain/reconcile"
	"github.com/pgorczak/eventum/internal/repository"
)

// ProjectService defines project operations needed by MCP.
type ProjectService interface {
	Create(ctx context.Context, tenantID string, req project.CreateRequest) (*project.Project, error)
	Update(ctx context.Context, tenantID string, req project.UpdateRequest) (*project.Project, error)
	Get(ctx context.Context, tenantID, id string) (*project.Project, error)
	GetByNumber(ctx context.Context, tenantID, number string) (*project.Project, error)
	List(ctx context.Context, tenantID string) ([]project.Summary, error)
	ListAll(ctx context.Context, tenantID string) ([]project.Project, error)
	Delete(ctx context.Context, tenantID, id string) error
}

// CostService defines cost ledger operations needed by MCP.
type CostService interface {
	AddLine(ctx context.Context, tenantID string, req costs.AddLineRequest) (*costs.Line, error)
	RemoveLine(ctx context.Context, tenantID, id string) error
	LinesFor(ctx context.Context, tenantID, projectID string) ([]costs.Line, error)
	Totals(ctx context.Context, tenantID, projectID string) (costs.Totals, error)
	ListCostTypes(ctx context.Context, tenantID string) ([]costs.CostType, error)
	ListLinkedEntities(ctx context.Context, tenantID string, kind costs.LinkedKind) ([]costs.LinkedEntity, error)
}

// PaymentService defines payment ledger operations needed by MCP.
type PaymentService interface {
	Add(ctx context.Context, tenantID string, req payments.AddRequest) (*payments.Payment, error)
	Remove(ctx context.Context, tenantID, id string) error
	PaymentsFor(ctx context.Context, tenantID, projectID string) ([]payments.Payment, error)
}

// ledgerLoader adapts the cost and payment services to the reconcile
// session's loader contract.
type ledgerLoader struct {
	costs    CostService
	payments PaymentService
}

func (l ledgerLoader) LoadCostLines(ctx context.Context, tenantID, projectID string) ([]costs.Line, error) {
	return l.costs.LinesFor(ctx, tenantID, projectID)
}

func (l ledgerLoader) LoadPayments(ctx context.Context, tenantID, projectID string) ([]payments.Payment, error) {
	return l.payments.PaymentsFor(ctx, tenantID, projectID)
}

// Handler dispatches MCP commands.
type Handler struct {
	projects ProjectService
	costs    CostService
	payments PaymentService
	logger   *slog.Logger

	mu       sync.Mutex
	sessions map[string]*reconcile.Session
}

// NewHandler creates a new MCP handler.
func NewHandler(projects ProjectService, costSvc CostService, paymentSvc PaymentService, logger *slog.Logger) *Handler {
	return &Handler{
		projects: projects,
		costs:    costSvc,
		payments: paymentSvc,
		logger:   logger,
		sessions: make(map[string]*reconcile.Session),
	}
}

const protocolVersion = "2025-03-26"

// Handle dispatches MCP requests to domain services. Protocol-level
// methods (initialize, tools/list, tools/call) are answered here so the
// plain JSON-RPC transport can speak the same dialect as the SDK server.
func (h *Handler) Handle(ctx context.Context, tenantID, sessionID, method string, params json.RawMessage) (any, error) {
	switch method {
	case "initialize":
		var req InitializeParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		return InitializeResult{
			ProtocolVersion: protocolVersion,
			Capabilities: ServerCapabilities{
				Tools:     &ToolsCapability{},
				Resources: &ResourcesCapability{},
			},
			ServerInfo:   ImplementationInfo{Name: "eventum", Version: "0.1.0"},
			Instructions: serverInstructions,
		}, nil
	case "notifications/initialized", "ping":
		return map[string]any{}, nil
	case "tools/list":
		return ToolsListResult{Tools: buildToolCatalog()}, nil
	case "tools/call":
		var req ToolCallParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		raw, err := json.Marshal(req.Arguments)
		if err != nil {
			return nil, fmt.Errorf("encoding tool arguments: %w", err)
		}
		result, err := h.Handle(ctx, tenantID, sessionID, req.Name, raw)
		if err != nil {
			var apiErr *APIError
			if errors.As(err, &apiErr) {
				payload, _ := json.Marshal(apiErr)
				return ToolCallResult{
					IsError: true,
					Content: []ContentItem{{Type: "text", Text: string(payload)}},
				}, nil
			}
			return nil, err
		}
		payload, err := json.Marshal(result)
		if err != nil {
			return nil, fmt.Errorf("encoding %s result: %w", req.Name, err)
		}
		return ToolCallResult{
			Content: []ContentItem{{Type: "text", Text: string(payload)}},
		}, nil
	case "create_project":
		var req CreateProjectParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		mainDate, err := parseDate(req.MainDate)
		if err != nil {
			return nil, err
		}
		schedule, err := parseSchedule(req.Schedule)
		if err != nil {
			return nil, err
		}
		proj, err := h.projects.Create(ctx, tenantID, project.CreateRequest{
			ID:       req.ID,
			Number:   req.Number,
			Name:     req.Name,
			MainDate: mainDate,
			Location: req.Location,
			Notes:    req.Notes,
			Schedule: schedule,
		})
		if err != nil {
			return nil, mapError(err)
		}
		return proj, nil
	case "update_project":
		var req UpdateProjectParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		update := project.UpdateRequest{
			ID:       req.ID,
			Name:     req.Name,
			Location: req.Location,
			Notes:    req.Notes,
		}
		if req.MainDate != nil {
			mainDate, err := parseDate(*req.MainDate)
			if err != nil {
				return nil, err
			}
			update.MainDate = &mainDate
		}
		if req.Schedule != nil {
			schedule, err := parseSchedule(req.Schedule)
			if err != nil {
				return nil, err
			}
			update.Schedule = &schedule
		}
		proj, err := h.projects.Update(ctx, tenantID, update)
		if err != nil {
			return nil, mapError(err)
		}
		return proj, nil
	case "get_project":
		var req GetProjectParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		var proj *project.Project
		var err error
		switch {
		case req.ID != "":
			proj, err = h.projects.Get(ctx, tenantID, req.ID)
		case req.Number != "":
			proj, err = h.projects.GetByNumber(ctx, tenantID, req.Number)
		default:
			return nil, mapError(repository.ErrInvalidInput)
		}
		if err != nil {
			return nil, mapError(err)
		}
		return proj, nil
	case "list_projects":
		summaries, err := h.projects.List(ctx, tenantID)
		if err != nil {
			return nil, mapError(err)
		}
		return ListProjectsResponse{Projects: summaries}, nil
	case "delete_project":
		var req DeleteProjectParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		if err := h.projects.Delete(ctx, tenantID, req.ID); err != nil {
			return nil, mapError(err)
		}
		return map[string]string{"status": "deleted"}, nil
	case "build_month":
		var req BuildMonthParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		if req.Year < 1 || req.Month < 1 || req.Month > 12 {
			return nil, mapError(repository.ErrInvalidInput)
		}
		projects, err := h.projects.ListAll(ctx, tenantID)
		if err != nil {
			return nil, mapError(err)
		}
		cells := calendar.BuildMonth(projects, req.Year, time.Month(req.Month))
		return BuildMonthResponse{Year: req.Year, Month: req.Month, Cells: cells}, nil
	case "export_calendar":
		projects, err := h.projects.ListAll(ctx, tenantID)
		if err != nil {
			return nil, mapError(err)
		}
		return ExportCalendarResponse{ICS: calendar.ExportICS(projects)}, nil
	case "add_cost_line":
		var req AddCostLineParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		line, err := h.costs.AddLine(ctx, tenantID, costs.AddLineRequest{
			ProjectID:     req.ProjectID,
			CostTypeID:    req.CostTypeID,
			Quantity:      req.Quantity,
			UnitNet:       req.UnitNet,
			UnitGross:     req.UnitGross,
			HasInvoice:    req.HasInvoice,
			InvoiceNumber: req.InvoiceNumber,
			Linked:        req.Linked,
		})
		if err != nil {
			return nil, mapError(err)
		}
		return line, nil
	case "remove_cost_line":
		var req RemoveCostLineParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		if err := h.costs.RemoveLine(ctx, tenantID, req.ID); err != nil {
			return nil, mapError(err)
		}
		return map[string]string{"status": "removed"}, nil
	case "list_cost_lines":
		var req ProjectScopedParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		lines, err := h.costs.LinesFor(ctx, tenantID, req.ProjectID)
		if err != nil {
			return nil, mapError(err)
		}
		return ListCostLinesResponse{Lines: lines}, nil
	case "cost_totals":
		var req ProjectScopedParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		totals, err := h.costs.Totals(ctx, tenantID, req.ProjectID)
		if err != nil {
			return nil, mapError(err)
		}
		return CostTotalsResponse{ProjectID: req.ProjectID, Totals: totals}, nil
	case "list_cost_types":
		types, err := h.costs.ListCostTypes(ctx, tenantID)
		if err != nil {
			return nil, mapError(err)
		}
		return ListCostTypesResponse{CostTypes: types}, nil
	case "list_linked_entities":
		var req ListLinkedEntitiesParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		entities, err := h.costs.ListLinkedEntities(ctx, tenantID, req.Kind)
		if err != nil {
			return nil, mapError(err)
		}
		return ListLinkedEntitiesResponse{Entities: entities}, nil
	case "add_payment":
		var req AddPaymentParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		var paidOn time.Time
		if req.Date != "" {
			var err error
			paidOn, err = parseDate(req.Date)
			if err != nil {
				return nil, err
			}
		}
		payment, err := h.payments.Add(ctx, tenantID, payments.AddRequest{
			ProjectID:     req.ProjectID,
			Date:          paidOn,
			Amount:        req.Amount,
			Payer:         req.Payer,
			Method:        req.Method,
			HasInvoice:    req.HasInvoice,
			InvoiceNumber: req.InvoiceNumber,
			Notes:         req.Notes,
		})
		if err != nil {
			return nil, mapError(err)
		}
		return payment, nil
	case "remove_payment":
		var req RemovePaymentParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		if err := h.payments.Remove(ctx, tenantID, req.ID); err != nil {
			return nil, mapError(err)
		}
		return map[string]string{"status": "removed"}, nil
	case "list_payments":
		var req ProjectScopedParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		list, err := h.payments.PaymentsFor(ctx, tenantID, req.ProjectID)
		if err != nil {
			return nil, mapError(err)
		}
		return ListPaymentsResponse{Payments: list}, nil
	case "reconcile_project":
		var req ProjectScopedParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		if _, err := h.projects.Get(ctx, tenantID, req.ProjectID); err != nil {
			return nil, mapError(err)
		}
		sess := h.reconcileSession(tenantID, sessionID)
		<-sess.Select(ctx, req.ProjectID)
		snap := sess.Snapshot()
		resp := ReconcileResponse{
			Summary:  snap.Summary,
			Lines:    snap.Lines,
			Payments: snap.Payments,
		}
		if snap.CostLoadError != nil {
			resp.Degraded = true
			resp.CostLoadError = snap.CostLoadError.Error()
		}
		if snap.PaymentLoadError != nil {
			resp.Degraded = true
			resp.PaymentLoadError = snap.PaymentLoadError.Error()
		}
		return resp, nil
	default:
		return nil, fmt.Errorf("unknown method: %s", method)
	}
}

// CalendarFeed renders every project's phases as an ICS document. Used
// by the HTTP transport's calendar subscription route.
func (h *Handler) CalendarFeed(ctx context.Context, tenantID string) (string, error) {
	projects, err := h.projects.ListAll(ctx, tenantID)
	if err != nil {
		return "", err
	}
	return calendar.ExportICS(projects), nil
}

// reconcileSession returns the reconciliation session for one MCP
// session, creating it on first use. Stdio clients carry no session id
// and share the tenant-scoped default.
func (h *Handler) reconcileSession(tenantID, sessionID string) *reconcile.Session {
	key := tenantID + "/" + sessionID
	h.mu.Lock()
	defer h.mu.Unlock()
	sess, ok := h.sessions[key]
	if !ok {
		sess = reconcile.NewSession(ledgerLoader{costs: h.costs, payments: h.payments}, tenantID, h.logger)
		h.sessions[key] = sess
	}
	return sess
}

func decodeParams(params json.RawMessage, out any) error {
	if len(params) == 0 {
		return nil
	}
	return json.Unmarshal(params, out)
}

func parseDate(value string) (time.Time, error) {
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		return time.Time{}, &APIError{Code: "INVALID_DATE", Message: fmt.Sprintf("invalid date %q, expected YYYY-MM-DD", value)}
	}
	return t, nil
}

func parseSchedule(params *ScheduleParams) (project.Schedule, error) {
	var schedule project.Schedule
	if params == nil {
		return schedule, nil
	}
	if params.Packing != nil {
		date, err := parseDate(params.Packing.Date)
		if err != nil {
			return schedule, err
		}
		schedule.Packing = &project.PhaseDay{Date: date, Time: params.Packing.Time}
	}
	if params.Assembly != nil {
		from, err := parseDate(params.Assembly.From)
		if err != nil {
			return schedule, err
		}
		to, err := parseDate(params.Assembly.To)
		if err != nil {
			return schedule, err
		}
		schedule.Assembly = &project.PhaseRange{From: from, To: to}
	}
	if params.Disassembly != nil {
		date, err := parseDate(params.Disassembly.Date)
		if err != nil {
			return schedule, err
		}
		schedule.Disassembly = &project.PhaseDay{Date: date, Time: params.Disassembly.Time}
	}
	return schedule, nil
}

func mapError(err error) error {
	if apiErr := MapError(err); apiErr != nil {
		return apiErr
	}
	return err
}
