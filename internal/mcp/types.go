package mcp

import (
	"github.com/shopspring/decimal"

	"github.com/pgorczak/eventum/internal/domain/calendar"
	"github.com/pgorczak/eventum/internal/domain/costs"
	"github.com/pgorczak/eventum/internal/domain/payments"
	"github.com/pgorczak/eventum/internal/domain/project"
	"github.com/pgorczak/eventum/internal/domain/reconcile"
)

// Dates cross the wire as "YYYY-MM-DD" strings; times of day as "HH:MM".

type PhaseDayParams struct {
	Date string `json:"date"`
	Time string `json:"time,omitempty"`
}

type PhaseRangeParams struct {
	From string `json:"from"`
	To   string `json:"to"`
}

type ScheduleParams struct {
	Packing     *PhaseDayParams   `json:"packing,omitempty"`
	Assembly    *PhaseRangeParams `json:"assembly,omitempty"`
	Disassembly *PhaseDayParams   `json:"disassembly,omitempty"`
}

type CreateProjectParams struct {
	ID       string          `json:"id,omitempty"`
	Number   string          `json:"number"`
	Name     string          `json:"name"`
	MainDate string          `json:"main_date"`
	Location string          `json:"location,omitempty"`
	Notes    string          `json:"notes,omitempty"`
	Schedule *ScheduleParams `json:"schedule,omitempty"`
}

type UpdateProjectParams struct {
	ID       string          `json:"id"`
	Name     *string         `json:"name,omitempty"`
	MainDate *string         `json:"main_date,omitempty"`
	Location *string         `json:"location,omitempty"`
	Notes    *string         `json:"notes,omitempty"`
	Schedule *ScheduleParams `json:"schedule,omitempty"`
}

type GetProjectParams struct {
	ID     string `json:"id,omitempty"`
	Number string `json:"number,omitempty"`
}

type DeleteProjectParams struct {
	ID string `json:"id"`
}

type BuildMonthParams struct {
	Year  int `json:"year"`
	Month int `json:"month"`
}

type AddCostLineParams struct {
	ProjectID     string           `json:"project_id"`
	CostTypeID    string           `json:"cost_type_id"`
	Quantity      decimal.Decimal  `json:"quantity"`
	UnitNet       decimal.Decimal  `json:"unit_net,omitempty"`
	UnitGross     decimal.Decimal  `json:"unit_gross,omitempty"`
	HasInvoice    bool             `json:"has_invoice,omitempty"`
	InvoiceNumber string           `json:"invoice_number,omitempty"`
	Linked        *costs.LinkedRef `json:"linked,omitempty"`
}

type RemoveCostLineParams struct {
	ID string `json:"id"`
}

type ProjectScopedParams struct {
	ProjectID string `json:"project_id"`
}

type ListLinkedEntitiesParams struct {
	Kind costs.LinkedKind `json:"kind"`
}

type AddPaymentParams struct {
	ProjectID     string          `json:"project_id"`
	Date          string          `json:"date,omitempty"`
	Amount        decimal.Decimal `json:"amount"`
	Payer         string          `json:"payer"`
	Method        payments.Method `json:"method"`
	HasInvoice    bool            `json:"has_invoice,omitempty"`
	InvoiceNumber string          `json:"invoice_number,omitempty"`
	Notes         string          `json:"notes,omitempty"`
}

type RemovePaymentParams struct {
	ID string `json:"id"`
}

type ListProjectsResponse struct {
	Projects []project.Summary `json:"projects"`
}

type BuildMonthResponse struct {
	Year  int                `json:"year"`
	Month int                `json:"month"`
	Cells []calendar.DayCell `json:"cells"`
}

type ExportCalendarResponse struct {
	ICS string `json:"ics"`
}

type ListCostLinesResponse struct {
	Lines []costs.Line `json:"lines"`
}

type CostTotalsResponse struct {
	ProjectID string       `json:"project_id"`
	Totals    costs.Totals `json:"totals"`
}

type ListCostTypesResponse struct {
	CostTypes []costs.CostType `json:"cost_types"`
}

type ListLinkedEntitiesResponse struct {
	Entities []costs.LinkedEntity `json:"entities"`
}

type ListPaymentsResponse struct {
	Payments []payments.Payment `json:"payments"`
}

// ReconcileResponse reports the financial position of the selected
// project. A load that failed leaves its ledger empty and is surfaced
// through the corresponding error field; Degraded flags that state so
// callers do not mistake an empty ledger for a settled one.
type ReconcileResponse struct {
	Summary          reconcile.Summary  `json:"summary"`
	Lines            []costs.Line       `json:"lines"`
	Payments         []payments.Payment `json:"payments"`
	Degraded         bool               `json:"degraded,omitempty"`
	CostLoadError    string             `json:"cost_load_error,omitempty"`
	PaymentLoadError string             `json:"payment_load_error,omitempty"`
}
