package phase_test

import (
	"testing"
	"time"

	"github.com/pgorczak/eventum/internal/domain/phase"
	"github.com/pgorczak/eventum/internal/domain/project"
	"github.com/stretchr/testify/require"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func sampleProject() *project.Project {
	return &project.Project{
		ID:       "p1",
		Number:   "EV-1",
		Name:     "Trade fair booth",
		MainDate: day(2024, time.January, 13),
		Schedule: project.Schedule{
			Packing:     &project.PhaseDay{Date: day(2024, time.January, 9), Time: "07:00"},
			Assembly:    &project.PhaseRange{From: day(2024, time.January, 10), To: day(2024, time.January, 12)},
			Disassembly: &project.PhaseDay{Date: day(2024, time.January, 14)},
		},
	}
}

func TestClassify(t *testing.T) {
	proj := sampleProject()

	require.Equal(t, phase.Set{phase.Main}, phase.Classify(proj, day(2024, time.January, 13)))
	require.Equal(t, phase.Set{phase.Packing}, phase.Classify(proj, day(2024, time.January, 9)))
	require.Equal(t, phase.Set{phase.Disassembly}, phase.Classify(proj, day(2024, time.January, 14)))

	for d := 10; d <= 12; d++ {
		tags := phase.Classify(proj, day(2024, time.January, d))
		require.Equal(t, phase.Set{phase.Assembly}, tags, "day %d", d)
	}

	require.Empty(t, phase.Classify(proj, day(2024, time.January, 8)))
	require.Empty(t, phase.Classify(proj, day(2024, time.January, 15)))
}

func TestClassify_OverlappingTags(t *testing.T) {
	proj := sampleProject()
	// Packing on the main date: both tags apply, no exclusivity.
	proj.Schedule.Packing.Date = proj.MainDate

	tags := phase.Classify(proj, day(2024, time.January, 13))
	require.True(t, tags.Contains(phase.Main))
	require.True(t, tags.Contains(phase.Packing))
	require.False(t, tags.Contains(phase.Assembly))
}

func TestClassify_MissingScheduleFields(t *testing.T) {
	proj := &project.Project{
		ID:       "p2",
		MainDate: day(2024, time.March, 1),
	}

	require.Equal(t, phase.Set{phase.Main}, phase.Classify(proj, day(2024, time.March, 1)))
	require.Empty(t, phase.Classify(proj, day(2024, time.March, 2)))
}

func TestClassify_IgnoresTimeOfDay(t *testing.T) {
	proj := sampleProject()
	evening := time.Date(2024, time.January, 13, 21, 45, 0, 0, time.UTC)
	require.True(t, phase.Classify(proj, evening).Contains(phase.Main))
}
