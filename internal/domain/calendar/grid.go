// Package calendar renders project schedules onto a month grid.
package calendar

import (
	"time"

	"github.com/pgorczak/eventum/internal/domain/phase"
	"github.com/pgorczak/eventum/internal/domain/project"
)

// ProjectRef identifies a project inside a day cell bucket.
type ProjectRef struct {
	ID     string `json:"id"`
	Number string `json:"number"`
	Name   string `json:"name"`
}

// DayCell is one cell of the rendered month grid.
type DayCell struct {
	Date           time.Time                    `json:"date"`
	IsCurrentMonth bool                         `json:"is_current_month"`
	IsToday        bool                         `json:"is_today"`
	Phases         map[phase.Phase][]ProjectRef `json:"phases,omitempty"`
}

// BuildMonth renders the grid for the given month. The leading cells come
// from the trailing end of the previous month and the tail from the next
// month, so the cell count is always a multiple of 7 with weeks starting
// on Monday.
func BuildMonth(projects []project.Project, year int, month time.Month) []DayCell {
	return BuildMonthAt(projects, year, month, time.Now())
}

// BuildMonthAt is BuildMonth with an explicit "today" reference. The grid
// is a pure function of its inputs, so rebuilding with the same arguments
// yields an identical sequence.
func BuildMonthAt(projects []project.Project, year int, month time.Month, today time.Time) []DayCell {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1)

	// Back up to the Monday on or before the first of the month.
	start := first.AddDate(0, 0, -mondayOffset(first))

	var cells []DayCell
	for d := start; !d.After(last) || len(cells)%7 != 0; d = d.AddDate(0, 0, 1) {
		cell := DayCell{
			Date:           d,
			IsCurrentMonth: d.Month() == month && d.Year() == year,
			IsToday:        project.SameDay(d, today),
		}
		for i := range projects {
			proj := &projects[i]
			for _, tag := range phase.Classify(proj, d) {
				if cell.Phases == nil {
					cell.Phases = make(map[phase.Phase][]ProjectRef)
				}
				cell.Phases[tag] = append(cell.Phases[tag], ProjectRef{
					ID:     proj.ID,
					Number: proj.Number,
					Name:   proj.Name,
				})
			}
		}
		cells = append(cells, cell)
	}

	return cells
}

// mondayOffset returns how many days t is past the most recent Monday.
func mondayOffset(t time.Time) int {
	return (int(t.Weekday()) + 6) % 7
}
