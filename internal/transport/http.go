package transport

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// MCPHandler handles MCP method dispatch.
type MCPHandler interface {
	Handle(ctx context.Context, tenantID, sessionID, method string, params json.RawMessage) (any, error)
}

// CalendarFeed renders the tenant's project phases as an iCalendar
// document, for calendar apps subscribing over plain HTTP.
type CalendarFeed interface {
	CalendarFeed(ctx context.Context, tenantID string) (string, error)
}

// codedError is a structured application error carrying a stable code.
type codedError interface {
	error
	CodeValue() string
}

// Server wires HTTP handlers.
type Server struct {
	handler  MCPHandler
	calendar CalendarFeed
}

// NewServer creates an HTTP server router with middleware. calendar may
// be nil, in which case the feed route is not mounted.
func NewServer(handler MCPHandler, calendar CalendarFeed, authMiddleware func(http.Handler) http.Handler) *chi.Mux {
	r := chi.NewRouter()

	if authMiddleware != nil {
		r.Use(authMiddleware)
	}
	r.Use(SessionMiddleware)

	srv := &Server{handler: handler, calendar: calendar}

	r.Post("/mcp", srv.handleMCP)
	r.Get("/health", srv.handleHealth)
	if calendar != nil {
		r.Get("/calendar.ics", srv.handleCalendarFeed)
	}

	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func (s *Server) handleMCP(w http.ResponseWriter, r *http.Request) {
	req, err := ParseRequest(r.Body)
	if err != nil {
		WriteError(w, nil, ErrInvalidReq, "invalid request", nil)
		return
	}

	tenantID, ok := TenantFromContext(r.Context())
	if !ok || tenantID == "" {
		http.Error(w, "missing tenant", http.StatusUnauthorized)
		return
	}

	sessionID, _ := SessionIDFromContext(r.Context())

	result, err := s.handler.Handle(r.Context(), tenantID, sessionID, req.Method, req.Params)
	if err != nil {
		if errors.Is(err, ErrUnauthorized) {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		if req.IsNotification() {
			w.WriteHeader(http.StatusAccepted)
			return
		}
		var coded codedError
		if errors.As(err, &coded) {
			WriteError(w, req.ID, ErrInvalidParams, coded.Error(), coded)
			return
		}
		WriteError(w, req.ID, ErrInternal, err.Error(), nil)
		return
	}

	if req.IsNotification() {
		w.WriteHeader(http.StatusAccepted)
		return
	}
	WriteResult(w, req.ID, result)
}

func (s *Server) handleCalendarFeed(w http.ResponseWriter, r *http.Request) {
	tenantID, ok := TenantFromContext(r.Context())
	if !ok || tenantID == "" {
		http.Error(w, "missing tenant", http.StatusUnauthorized)
		return
	}

	ics, err := s.calendar.CalendarFeed(r.Context(), tenantID)
	if err != nil {
		http.Error(w, "calendar export failed", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/calendar; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="eventum.ics"`)
	_, _ = w.Write([]byte(ics))
}
