package mcp

import (
	"context"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

const serverInstructions = `eventum manages event-rental projects: their phase timeline and their money.

Core concepts (keep this mental model small):
- Project: one event, identified by a number, anchored on its main date.
- Phases: packing, assembly (a day range), main, disassembly. A day can carry several phases of the same project.
- Cost line: quantity × unit price billed against a project. Supply net or gross; the other is derived at the fixed VAT rate.
- Payment: money received against a project.
- Balance: gross cost total minus payments. Positive means outstanding, negative means overpaid.

Rules of engagement (default workflow):
1) Orient: list_projects, or build_month for a calendar view of a month.
2) Edit the timeline: create_project / update_project with a phase schedule.
3) Track money: add_cost_line / add_payment; list_cost_types and list_linked_entities feed the pickers.
4) Reconcile: reconcile_project returns the ledgers and the balance summary in one call.
5) Share: export_calendar emits an ICS document of all project phases.

Conventions:
- Dates are YYYY-MM-DD strings; times of day are HH:MM.
- Money crosses the wire as decimal strings ("123.45"), never floats.
- HTTP: pass session id via Mcp-Session-Id header.

Docs (progressive disclosure):
- eventum://docs/concepts (glossary + invariants)
- eventum://docs/money (pricing, VAT and reconciliation rules)
`

type docResource struct {
	URI         string
	Name        string
	Title       string
	Description string
	Content     string
}

var docResources = []docResource{
	{
		URI:         "eventum://docs/concepts",
		Name:        "docs_concepts",
		Title:       "eventum concepts",
		Description: "Glossary and invariants for projects, phases and the calendar.",
		Content: `# eventum: Concepts

## Project

One event. The ` + "`number`" + ` is the human-facing identifier and is unique per tenant.
The ` + "`main_date`" + ` is the event day itself and always appears on the calendar.

## Phases

- **packing** — a single day, optionally with a start time.
- **assembly** — an inclusive day range (` + "`from`" + ` .. ` + "`to`" + `).
- **main** — the event day, always present.
- **disassembly** — a single day, optionally with a start time.

Phases are independent tags: a project whose assembly range covers its main date
shows up in both buckets that day. Omitted phases simply do not appear.

## Calendar grid

` + "`build_month`" + ` returns a flat cell list whose length is always a multiple of 7.
Weeks start on Monday; leading and trailing cells from neighbouring months are
flagged ` + "`is_current_month: false`" + `. Each cell buckets project references by phase.
`,
	},
	{
		URI:         "eventum://docs/money",
		Name:        "docs_money",
		Title:       "eventum money rules",
		Description: "How unit prices, VAT, totals and the balance are computed.",
		Content: `# eventum: Money Rules

## Unit prices

Every cost line stores both a net and a gross unit price. Supply either one;
the other is derived at the fixed VAT rate (23%) and rounded to 2 decimal
places. If you supply both, they are trusted as-is and never re-derived.

## Totals

Line values are always ` + "`quantity × unit price`" + `, recomputed from the stored
fields on every read. Project totals fold the current lines; removing a line
removes its contribution entirely.

## Reconciliation

` + "`reconcile_project`" + ` loads both ledgers and reports:

- ` + "`balance = total_gross − total_paid`" + `
- ` + "`state`" + `: ` + "`settled`" + ` (zero), ` + "`outstanding`" + ` (positive), ` + "`overpaid`" + ` (negative).

A failed ledger load leaves that ledger empty and sets ` + "`degraded: true`" + ` with
the error message; do not treat a degraded response as a settled project.
`,
	},
}

func registerDocResources(server *sdkmcp.Server) {
	for _, doc := range docResources {
		doc := doc

		server.AddResource(&sdkmcp.Resource{
			URI:         doc.URI,
			Name:        doc.Name,
			Title:       doc.Title,
			Description: doc.Description,
			MIMEType:    "text/markdown",
			Size:        int64(len(doc.Content)),
		}, func(_ context.Context, req *sdkmcp.ReadResourceRequest) (*sdkmcp.ReadResourceResult, error) {
			uri := doc.URI
			if req != nil && req.Params != nil && req.Params.URI != "" {
				uri = req.Params.URI
			}
			return &sdkmcp.ReadResourceResult{
				Contents: []*sdkmcp.ResourceContents{{
					URI:      uri,
					MIMEType: "text/markdown",
					Text:     doc.Content,
				}},
			}, nil
		})
	}
}
