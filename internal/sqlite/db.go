package sqlite

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// DB wraps a SQLite database connection
type DB struct {
	*sql.DB
}

// New creates a new SQLite database connection
func New(dataSourceName string) (*DB, error) {
	db, err := sql.Open("sqlite", dataSourceName)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Enable foreign keys
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	return &DB{db}, nil
}

// RunMigrations creates the schema. Runs on every startup, so each
// statement must be safe against an already-migrated database.
func (db *DB) RunMigrations() error {
	migration := `
-- Projects table
CREATE TABLE IF NOT EXISTS projects (
    id TEXT PRIMARY KEY,
    tenant_id TEXT NOT NULL,
    number TEXT NOT NULL,
    name TEXT NOT NULL,
    main_date TIMESTAMP NOT NULL,
    location TEXT,
    notes TEXT,
    packing_date TIMESTAMP,
    packing_time TEXT,
    assembly_from TIMESTAMP,
    assembly_to TIMESTAMP,
    disassembly_date TIMESTAMP,
    disassembly_time TEXT,
    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
    UNIQUE (tenant_id, number)
);
CREATE INDEX IF NOT EXISTS idx_tenant_projects ON projects(tenant_id);
CREATE INDEX IF NOT EXISTS idx_project_main_date ON projects(main_date);

-- Cost type reference data
CREATE TABLE IF NOT EXISTS cost_types (
    id TEXT PRIMARY KEY,
    tenant_id TEXT NOT NULL,
    name TEXT NOT NULL,
    unit TEXT,
    linked_kind TEXT NOT NULL DEFAULT 'none'
        CHECK(linked_kind IN ('vehicle', 'employee', 'contact', 'rentalCompany', 'none'))
);
CREATE INDEX IF NOT EXISTS idx_tenant_cost_types ON cost_types(tenant_id);

-- Linked entity reference data (vehicles, employees, contacts, rental companies)
CREATE TABLE IF NOT EXISTS linked_entities (
    id TEXT PRIMARY KEY,
    tenant_id TEXT NOT NULL,
    kind TEXT NOT NULL
        CHECK(kind IN ('vehicle', 'employee', 'contact', 'rentalCompany')),
    name TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_tenant_linked ON linked_entities(tenant_id, kind);

-- Cost lines; monetary columns stored as exact decimal text
CREATE TABLE IF NOT EXISTS cost_lines (
    id TEXT PRIMARY KEY,
    tenant_id TEXT NOT NULL,
    project_id TEXT NOT NULL,
    cost_type_id TEXT NOT NULL,
    quantity TEXT NOT NULL,
    unit_net TEXT NOT NULL,
    unit_gross TEXT NOT NULL,
    has_invoice INTEGER NOT NULL DEFAULT 0,
    invoice_number TEXT,
    linked_kind TEXT,
    linked_id TEXT,
    linked_name TEXT,
    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
    FOREIGN KEY (project_id) REFERENCES projects(id) ON DELETE CASCADE,
    FOREIGN KEY (cost_type_id) REFERENCES cost_types(id)
);
CREATE INDEX IF NOT EXISTS idx_tenant_cost_lines ON cost_lines(tenant_id);
CREATE INDEX IF NOT EXISTS idx_project_cost_lines ON cost_lines(project_id);

-- Payments
CREATE TABLE IF NOT EXISTS payments (
    id TEXT PRIMARY KEY,
    tenant_id TEXT NOT NULL,
    project_id TEXT NOT NULL,
    paid_on TIMESTAMP NOT NULL,
    amount TEXT NOT NULL,
    payer TEXT NOT NULL,
    method TEXT NOT NULL CHECK(method IN ('cash', 'transfer', 'card', 'cheque')),
    has_invoice INTEGER NOT NULL DEFAULT 0,
    invoice_number TEXT,
    notes TEXT,
    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
    FOREIGN KEY (project_id) REFERENCES projects(id) ON DELETE CASCADE
);
CREATE INDEX IF NOT EXISTS idx_tenant_payments ON payments(tenant_id);
CREATE INDEX IF NOT EXISTS idx_project_payments ON payments(project_id);

-- API keys for authentication
CREATE TABLE IF NOT EXISTS api_keys (
    key_hash TEXT PRIMARY KEY,
    tenant_id TEXT NOT NULL,
    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
    last_used TIMESTAMP,
    description TEXT
);
CREATE INDEX IF NOT EXISTS idx_tenant_keys ON api_keys(tenant_id);
`

	_, err := db.Exec(migration)
	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	return nil
}
