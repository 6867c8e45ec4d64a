package calendar_test

import (
	"strings"
	"testing"
	"time"

	"github.com/pgorczak/eventum/internal/domain/calendar"
	"github.com/pgorczak/eventum/internal/domain/project"
	"github.com/stretchr/testify/require"
)

func TestExportICS(t *testing.T) {
	projects := []project.Project{{
		ID:       "p1",
		Number:   "EV-7",
		Name:     "Harbor gala",
		Location: "Pier 3",
		MainDate: day(2024, time.June, 15),
		Schedule: project.Schedule{
			Packing:     &project.PhaseDay{Date: day(2024, time.June, 13)},
			Assembly:    &project.PhaseRange{From: day(2024, time.June, 13), To: day(2024, time.June, 14)},
			Disassembly: &project.PhaseDay{Date: day(2024, time.June, 16)},
		},
	}}

	out := calendar.ExportICS(projects)

	require.True(t, strings.HasPrefix(out, "BEGIN:VCALENDAR"))
	require.Equal(t, 4, strings.Count(out, "BEGIN:VEVENT"), "one event per present phase")
	require.Contains(t, out, "SUMMARY:Harbor gala")
	require.Contains(t, out, "assembly")
	require.Contains(t, out, "LOCATION:Pier 3")
}

func TestExportICS_SparseSchedule(t *testing.T) {
	projects := []project.Project{{
		ID:       "p2",
		Number:   "EV-8",
		Name:     "Office party",
		MainDate: day(2024, time.July, 1),
	}}

	out := calendar.ExportICS(projects)
	require.Equal(t, 1, strings.Count(out, "BEGIN:VEVENT"))
}
