package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/pgorczak/eventum/internal/domain/project"
	"github.com/pgorczak/eventum/internal/repository"
	"github.com/stretchr/testify/require"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestProjectRepository_CreateGet(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()

	repo := NewProjectRepository(db)
	proj := &project.Project{
		ID:       "p1",
		TenantID: "tenant1",
		Number:   "EV-2024-001",
		Name:     "Garden wedding",
		MainDate: day(2024, time.June, 15),
		Location: "Orangery",
		Schedule: project.Schedule{
			Packing:     &project.PhaseDay{Date: day(2024, time.June, 13), Time: "07:30"},
			Assembly:    &project.PhaseRange{From: day(2024, time.June, 13), To: day(2024, time.June, 14)},
			Disassembly: &project.PhaseDay{Date: day(2024, time.June, 16), Time: "22:00"},
		},
		CreatedAt: time.Now(),
	}

	require.NoError(t, repo.Create(ctx, "tenant1", proj))

	loaded, err := repo.Get(ctx, "tenant1", "p1")
	require.NoError(t, err)
	require.Equal(t, "tenant1", loaded.TenantID)
	require.Equal(t, "EV-2024-001", loaded.Number)
	require.Equal(t, day(2024, time.June, 15), loaded.MainDate)
	require.NotNil(t, loaded.Schedule.Packing)
	require.Equal(t, "07:30", loaded.Schedule.Packing.Time)
	require.NotNil(t, loaded.Schedule.Assembly)
	require.Equal(t, day(2024, time.June, 13), loaded.Schedule.Assembly.From)
	require.Equal(t, day(2024, time.June, 14), loaded.Schedule.Assembly.To)
	require.NotNil(t, loaded.Schedule.Disassembly)
}

func TestProjectRepository_SparseSchedule(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()

	repo := NewProjectRepository(db)
	require.NoError(t, repo.Create(ctx, "tenant1", &project.Project{
		ID:        "p1",
		TenantID:  "tenant1",
		Number:    "EV-1",
		Name:      "Bare project",
		MainDate:  day(2024, time.July, 1),
		CreatedAt: time.Now(),
	}))

	loaded, err := repo.Get(ctx, "tenant1", "p1")
	require.NoError(t, err)
	require.Nil(t, loaded.Schedule.Packing)
	require.Nil(t, loaded.Schedule.Assembly)
	require.Nil(t, loaded.Schedule.Disassembly)
}

func TestProjectRepository_DuplicateNumber(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()

	repo := NewProjectRepository(db)
	insertProject(t, db, "p1", "tenant1")

	err := repo.Create(ctx, "tenant1", &project.Project{
		ID:        "p2",
		TenantID:  "tenant1",
		Number:    "N-p1",
		Name:      "Same number",
		MainDate:  day(2024, time.July, 1),
		CreatedAt: time.Now(),
	})
	require.ErrorIs(t, err, repository.ErrDuplicate)

	// Same number under another tenant is fine.
	err = repo.Create(ctx, "tenant2", &project.Project{
		ID:        "p3",
		TenantID:  "tenant2",
		Number:    "N-p1",
		Name:      "Other tenant",
		MainDate:  day(2024, time.July, 1),
		CreatedAt: time.Now(),
	})
	require.NoError(t, err)
}

func TestProjectRepository_TenantIsolation(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()

	insertProject(t, db, "p1", "tenant1")

	repo := NewProjectRepository(db)
	_, err := repo.Get(ctx, "tenant2", "p1")
	require.ErrorIs(t, err, repository.ErrNotFound)
}

func TestProjectRepository_GetByNumber(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()

	insertProject(t, db, "p1", "tenant1")

	repo := NewProjectRepository(db)
	loaded, err := repo.GetByNumber(ctx, "tenant1", "N-p1")
	require.NoError(t, err)
	require.Equal(t, "p1", loaded.ID)

	_, err = repo.GetByNumber(ctx, "tenant1", "missing")
	require.ErrorIs(t, err, repository.ErrNotFound)
}

func TestProjectRepository_UpdateSchedule(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()

	insertProject(t, db, "p1", "tenant1")
	repo := NewProjectRepository(db)

	proj, err := repo.Get(ctx, "tenant1", "p1")
	require.NoError(t, err)

	proj.Schedule.Assembly = &project.PhaseRange{From: day(2024, time.June, 12), To: day(2024, time.June, 14)}
	require.NoError(t, repo.Update(ctx, "tenant1", proj))

	loaded, err := repo.Get(ctx, "tenant1", "p1")
	require.NoError(t, err)
	require.NotNil(t, loaded.Schedule.Assembly)
	require.Equal(t, day(2024, time.June, 12), loaded.Schedule.Assembly.From)

	// Clearing the phase persists as NULL.
	loaded.Schedule.Assembly = nil
	require.NoError(t, repo.Update(ctx, "tenant1", loaded))
	again, err := repo.Get(ctx, "tenant1", "p1")
	require.NoError(t, err)
	require.Nil(t, again.Schedule.Assembly)
}

func TestProjectRepository_UpdateMissing(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()

	repo := NewProjectRepository(db)
	err := repo.Update(ctx, "tenant1", &project.Project{ID: "missing", Name: "x", MainDate: day(2024, time.July, 1)})
	require.ErrorIs(t, err, repository.ErrNotFound)
}

func TestProjectRepository_ListCounts(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()

	insertProject(t, db, "p1", "tenant1")
	insertProject(t, db, "p2", "tenant1")
	insertCostType(t, db, "ct1", "tenant1")
	insertCostLine(t, db, "l1", "tenant1", "p1", "ct1")
	insertCostLine(t, db, "l2", "tenant1", "p1", "ct1")
	insertPayment(t, db, "m1", "tenant1", "p1")

	repo := NewProjectRepository(db)
	summaries, err := repo.List(ctx, "tenant1")
	require.NoError(t, err)
	require.Len(t, summaries, 2)

	byID := map[string]int{}
	for i, s := range summaries {
		byID[s.ID] = i
	}
	require.Equal(t, 2, summaries[byID["p1"]].CostLines)
	require.Equal(t, 1, summaries[byID["p1"]].Payments)
	require.Equal(t, 0, summaries[byID["p2"]].CostLines)
}

func TestProjectRepository_DeleteCascades(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()

	insertProject(t, db, "p1", "tenant1")
	insertCostType(t, db, "ct1", "tenant1")
	insertCostLine(t, db, "l1", "tenant1", "p1", "ct1")
	insertPayment(t, db, "m1", "tenant1", "p1")

	repo := NewProjectRepository(db)
	require.NoError(t, repo.Delete(ctx, "tenant1", "p1"))

	var lines, pays int
	require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM cost_lines").Scan(&lines))
	require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM payments").Scan(&pays))
	require.Zero(t, lines)
	require.Zero(t, pays)
}
