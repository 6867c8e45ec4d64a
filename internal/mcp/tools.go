package mcp

var scheduleSchema = map[string]any{
	"type":        "object",
	"description": "Phase schedule. Omitted phases do not appear on the calendar.",
	"properties": map[string]any{
		"packing": map[string]any{
			"type": "object",
			"properties": map[string]any{
				"date": map[string]any{"type": "string", "description": "Packing day (YYYY-MM-DD)"},
				"time": map[string]any{"type": "string", "description": "Start time (HH:MM)"},
			},
			"required": []string{"date"},
		},
		"assembly": map[string]any{
			"type": "object",
			"properties": map[string]any{
				"from": map[string]any{"type": "string", "description": "First assembly day (YYYY-MM-DD)"},
				"to":   map[string]any{"type": "string", "description": "Last assembly day, inclusive (YYYY-MM-DD)"},
			},
			"required": []string{"from", "to"},
		},
		"disassembly": map[string]any{
			"type": "object",
			"properties": map[string]any{
				"date": map[string]any{"type": "string", "description": "Disassembly day (YYYY-MM-DD)"},
				"time": map[string]any{"type": "string", "description": "Start time (HH:MM)"},
			},
			"required": []string{"date"},
		},
	},
}

// buildToolCatalog returns all available MCP tools
func buildToolCatalog() []ToolDefinition {
	return []ToolDefinition{
		// Projects
		{
			Name:        "create_project",
			Description: "Create a new event project with its main date and optional phase schedule",
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"id": map[string]any{
						"type":        "string",
						"description": "Unique project identifier (optional, will be generated if not provided)",
					},
					"number": map[string]any{
						"type":        "string",
						"description": "Human-facing project number, unique per tenant",
					},
					"name": map[string]any{
						"type":        "string",
						"description": "Project display name",
					},
					"main_date": map[string]any{
						"type":        "string",
						"description": "Main event day (YYYY-MM-DD)",
					},
					"location": map[string]any{
						"type":        "string",
						"description": "Venue or site",
					},
					"notes": map[string]any{
						"type":        "string",
						"description": "Free-form notes",
					},
					"schedule": scheduleSchema,
				},
				"required": []string{"number", "name", "main_date"},
			},
		},
		{
			Name:        "update_project",
			Description: "Update a project's fields or phase schedule; omitted fields are left unchanged",
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"id": map[string]any{
						"type":        "string",
						"description": "Project ID",
					},
					"name": map[string]any{
						"type":        "string",
						"description": "New display name",
					},
					"main_date": map[string]any{
						"type":        "string",
						"description": "New main event day (YYYY-MM-DD)",
					},
					"location": map[string]any{
						"type":        "string",
						"description": "New venue or site",
					},
					"notes": map[string]any{
						"type":        "string",
						"description": "New notes",
					},
					"schedule": scheduleSchema,
				},
				"required": []string{"id"},
			},
		},
		{
			Name:        "get_project",
			Description: "Get a project by ID or by project number",
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"id": map[string]any{
						"type":        "string",
						"description": "Project ID",
					},
					"number": map[string]any{
						"type":        "string",
						"description": "Project number (used when id is omitted)",
					},
				},
			},
		},
		{
			Name:        "list_projects",
			Description: "List all projects for the current tenant with cost line and payment counts",
			InputSchema: map[string]any{
				"type":       "object",
				"properties": map[string]any{},
			},
		},
		{
			Name:        "delete_project",
			Description: "Delete a project and its cost lines and payments",
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"id": map[string]any{
						"type":        "string",
						"description": "Project ID",
					},
				},
				"required": []string{"id"},
			},
		},

		// Calendar
		{
			Name:        "build_month",
			Description: "Build the month calendar grid with per-day project phase buckets (packing, assembly, main, disassembly)",
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"year": map[string]any{
						"type":        "integer",
						"description": "Calendar year",
					},
					"month": map[string]any{
						"type":        "integer",
						"description": "Calendar month (1-12)",
					},
				},
				"required": []string{"year", "month"},
			},
		},
		{
			Name:        "export_calendar",
			Description: "Export all project phases as an iCalendar (ICS) document",
			InputSchema: map[string]any{
				"type":       "object",
				"properties": map[string]any{},
			},
		},

		// Cost ledger
		{
			Name:        "add_cost_line",
			Description: "Add a cost line to a project; the missing unit price is derived from the other at the fixed VAT rate",
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"project_id": map[string]any{
						"type":        "string",
						"description": "Project ID",
					},
					"cost_type_id": map[string]any{
						"type":        "string",
						"description": "Cost type ID (see list_cost_types)",
					},
					"quantity": map[string]any{
						"type":        "string",
						"description": "Quantity as a decimal string, e.g. \"2.5\"",
					},
					"unit_net": map[string]any{
						"type":        "string",
						"description": "Unit net price as a decimal string (omit to derive from unit_gross)",
					},
					"unit_gross": map[string]any{
						"type":        "string",
						"description": "Unit gross price as a decimal string (omit to derive from unit_net)",
					},
					"has_invoice": map[string]any{
						"type":        "boolean",
						"description": "Whether an invoice exists for this line",
					},
					"invoice_number": map[string]any{
						"type":        "string",
						"description": "Invoice number (required when has_invoice is true)",
					},
					"linked": map[string]any{
						"type":        "object",
						"description": "Optional linked entity association",
						"properties": map[string]any{
							"kind": map[string]any{
								"type": "string",
								"enum": []string{"vehicle", "employee", "contact", "rentalCompany"},
							},
							"id":   map[string]any{"type": "string"},
							"name": map[string]any{"type": "string"},
						},
						"required": []string{"kind", "id"},
					},
				},
				"required": []string{"project_id", "cost_type_id", "quantity"},
			},
		},
		{
			Name:        "remove_cost_line",
			Description: "Remove a cost line from its project's ledger",
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"id": map[string]any{
						"type":        "string",
						"description": "Cost line ID",
					},
				},
				"required": []string{"id"},
			},
		},
		{
			Name:        "list_cost_lines",
			Description: "List a project's cost lines with derived extended net and gross values",
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"project_id": map[string]any{
						"type":        "string",
						"description": "Project ID",
					},
				},
				"required": []string{"project_id"},
			},
		},
		{
			Name:        "cost_totals",
			Description: "Compute a project's net and gross cost totals from its current lines",
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"project_id": map[string]any{
						"type":        "string",
						"description": "Project ID",
					},
				},
				"required": []string{"project_id"},
			},
		},
		{
			Name:        "list_cost_types",
			Description: "List the cost type reference collection",
			InputSchema: map[string]any{
				"type":       "object",
				"properties": map[string]any{},
			},
		},
		{
			Name:        "list_linked_entities",
			Description: "List entities of one kind that cost lines can be associated with",
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"kind": map[string]any{
						"type":        "string",
						"description": "Entity kind",
						"enum":        []string{"vehicle", "employee", "contact", "rentalCompany"},
					},
				},
				"required": []string{"kind"},
			},
		},

		// Payments
		{
			Name:        "add_payment",
			Description: "Record a payment against a project",
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"project_id": map[string]any{
						"type":        "string",
						"description": "Project ID",
					},
					"date": map[string]any{
						"type":        "string",
						"description": "Payment date (YYYY-MM-DD, defaults to today)",
					},
					"amount": map[string]any{
						"type":        "string",
						"description": "Amount as a decimal string, e.g. \"350.50\"",
					},
					"payer": map[string]any{
						"type":        "string",
						"description": "Who paid",
					},
					"method": map[string]any{
						"type":        "string",
						"description": "Payment method",
						"enum":        []string{"cash", "transfer", "card", "cheque"},
					},
					"has_invoice": map[string]any{
						"type":        "boolean",
						"description": "Whether an invoice exists for this payment",
					},
					"invoice_number": map[string]any{
						"type":        "string",
						"description": "Invoice number (required when has_invoice is true)",
					},
					"notes": map[string]any{
						"type":        "string",
						"description": "Free-form notes",
					},
				},
				"required": []string{"project_id", "amount", "payer", "method"},
			},
		},
		{
			Name:        "remove_payment",
			Description: "Remove a recorded payment",
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"id": map[string]any{
						"type":        "string",
						"description": "Payment ID",
					},
				},
				"required": []string{"id"},
			},
		},
		{
			Name:        "list_payments",
			Description: "List a project's recorded payments",
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"project_id": map[string]any{
						"type":        "string",
						"description": "Project ID",
					},
				},
				"required": []string{"project_id"},
			},
		},

		// Reconciliation
		{
			Name:        "reconcile_project",
			Description: "Select a project and reconcile its cost and payment ledgers into a balance summary",
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"project_id": map[string]any{
						"type":        "string",
						"description": "Project ID",
					},
				},
				"required": []string{"project_id"},
			},
		},
	}
}
