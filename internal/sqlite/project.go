package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/pgorczak/eventum/internal/domain/project"
	"github.com/pgorczak/eventum/internal/repository"
)

// ProjectRepository implements project.Repository for SQLite
type ProjectRepository struct {
	db *DB
}

// NewProjectRepository creates a new ProjectRepository
func NewProjectRepository(db *DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

const projectColumns = `id, tenant_id, number, name, main_date, location, notes,
	packing_date, packing_time, assembly_from, assembly_to, disassembly_date, disassembly_time, created_at`

// Create creates a new project
func (r *ProjectRepository) Create(ctx context.Context, tenantID string, proj *project.Project) error {
	query := `
		INSERT INTO projects (` + projectColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	packingDate, packingTime, assemblyFrom, assemblyTo, disassemblyDate, disassemblyTime := flattenSchedule(proj.Schedule)

	_, err := r.db.ExecContext(ctx, query,
		proj.ID,
		tenantID,
		proj.Number,
		proj.Name,
		proj.MainDate,
		proj.Location,
		proj.Notes,
		packingDate,
		packingTime,
		assemblyFrom,
		assemblyTo,
		disassemblyDate,
		disassemblyTime,
		proj.CreatedAt,
	)

	if err != nil {
		if isUniqueViolation(err) {
			return repository.ErrDuplicate
		}
		return fmt.Errorf("failed to create project: %w", err)
	}

	return nil
}

// Get retrieves a project by ID
func (r *ProjectRepository) Get(ctx context.Context, tenantID, id string) (*project.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects WHERE id = ? AND tenant_id = ?`
	return r.scanOne(r.db.QueryRowContext(ctx, query, id, tenantID), "get project")
}

// GetByNumber retrieves a project by its business number
func (r *ProjectRepository) GetByNumber(ctx context.Context, tenantID, number string) (*project.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects WHERE number = ? AND tenant_id = ?`
	return r.scanOne(r.db.QueryRowContext(ctx, query, number, tenantID), "get project by number")
}

// Update rewrites all mutable project fields
func (r *ProjectRepository) Update(ctx context.Context, tenantID string, proj *project.Project) error {
	query := `
		UPDATE projects
		SET name = ?, main_date = ?, location = ?, notes = ?,
			packing_date = ?, packing_time = ?, assembly_from = ?, assembly_to = ?,
			disassembly_date = ?, disassembly_time = ?
		WHERE id = ? AND tenant_id = ?
	`

	packingDate, packingTime, assemblyFrom, assemblyTo, disassemblyDate, disassemblyTime := flattenSchedule(proj.Schedule)

	result, err := r.db.ExecContext(ctx, query,
		proj.Name,
		proj.MainDate,
		proj.Location,
		proj.Notes,
		packingDate,
		packingTime,
		assemblyFrom,
		assemblyTo,
		disassemblyDate,
		disassemblyTime,
		proj.ID,
		tenantID,
	)
	if err != nil {
		return fmt.Errorf("failed to update project: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if affected == 0 {
		return repository.ErrNotFound
	}

	return nil
}

// Delete removes a project; cost lines and payments cascade
func (r *ProjectRepository) Delete(ctx context.Context, tenantID, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM projects WHERE id = ? AND tenant_id = ?`, id, tenantID)
	if err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if affected == 0 {
		return repository.ErrNotFound
	}

	return nil
}

// List returns all projects for a tenant with ledger counts
func (r *ProjectRepository) List(ctx context.Context, tenantID string) ([]project.Summary, error) {
	query := `
		SELECT
			p.id,
			p.number,
			p.name,
			p.main_date,
			p.location,
			p.created_at,
			COUNT(DISTINCT c.id) as cost_lines,
			COUNT(DISTINCT m.id) as payments
		FROM projects p
		LEFT JOIN cost_lines c ON c.project_id = p.id AND c.tenant_id = p.tenant_id
		LEFT JOIN payments m ON m.project_id = p.id AND m.tenant_id = p.tenant_id
		WHERE p.tenant_id = ?
		GROUP BY p.id, p.number, p.name, p.main_date, p.location, p.created_at
		ORDER BY p.main_date ASC
	`

	rows, err := r.db.QueryContext(ctx, query, tenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	defer rows.Close()

	var summaries []project.Summary
	for rows.Next() {
		var summary project.Summary
		var location sql.NullString
		err := rows.Scan(
			&summary.ID,
			&summary.Number,
			&summary.Name,
			&summary.MainDate,
			&location,
			&summary.CreatedAt,
			&summary.CostLines,
			&summary.Payments,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan project summary: %w", err)
		}
		summary.Location = location.String
		summaries = append(summaries, summary)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating project rows: %w", err)
	}

	return summaries, nil
}

// ListAll returns full project records, schedules included
func (r *ProjectRepository) ListAll(ctx context.Context, tenantID string) ([]project.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects WHERE tenant_id = ? ORDER BY main_date ASC`

	rows, err := r.db.QueryContext(ctx, query, tenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	defer rows.Close()

	var projects []project.Project
	for rows.Next() {
		proj, err := scanProject(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("failed to scan project: %w", err)
		}
		projects = append(projects, *proj)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating project rows: %w", err)
	}

	return projects, nil
}

func (r *ProjectRepository) scanOne(row *sql.Row, op string) (*project.Project, error) {
	proj, err := scanProject(row.Scan)
	if err == sql.ErrNoRows {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to %s: %w", op, err)
	}
	return proj, nil
}

func scanProject(scan func(...any) error) (*project.Project, error) {
	var proj project.Project
	var location, notes, packingTime, disassemblyTime sql.NullString
	var packingDate, assemblyFrom, assemblyTo, disassemblyDate sql.NullTime

	err := scan(
		&proj.ID,
		&proj.TenantID,
		&proj.Number,
		&proj.Name,
		&proj.MainDate,
		&location,
		&notes,
		&packingDate,
		&packingTime,
		&assemblyFrom,
		&assemblyTo,
		&disassemblyDate,
		&disassemblyTime,
		&proj.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	proj.Location = location.String
	proj.Notes = notes.String
	if packingDate.Valid {
		proj.Schedule.Packing = &project.PhaseDay{Date: project.DateOf(packingDate.Time), Time: packingTime.String}
	}
	if assemblyFrom.Valid && assemblyTo.Valid {
		proj.Schedule.Assembly = &project.PhaseRange{From: project.DateOf(assemblyFrom.Time), To: project.DateOf(assemblyTo.Time)}
	}
	if disassemblyDate.Valid {
		proj.Schedule.Disassembly = &project.PhaseDay{Date: project.DateOf(disassemblyDate.Time), Time: disassemblyTime.String}
	}
	proj.MainDate = project.DateOf(proj.MainDate)

	return &proj, nil
}

func flattenSchedule(sched project.Schedule) (packingDate any, packingTime any, assemblyFrom any, assemblyTo any, disassemblyDate any, disassemblyTime any) {
	if sched.Packing != nil {
		packingDate = sched.Packing.Date
		packingTime = sched.Packing.Time
	}
	if sched.Assembly != nil {
		assemblyFrom = sched.Assembly.From
		assemblyTo = sched.Assembly.To
	}
	if sched.Disassembly != nil {
		disassemblyDate = sched.Disassembly.Date
		disassemblyTime = sched.Disassembly.Time
	}
	return
}
