package calendar

import (
	"fmt"
	"time"

	ical "github.com/arran4/golang-ical"
	"github.com/pgorczak/eventum/internal/domain/project"
)

// ExportICS serializes project schedules as an iCalendar feed. Every
// present phase becomes its own all-day event so external calendars show
// packing, assembly and disassembly crews separately from the event day.
func ExportICS(projects []project.Project) string {
	cal := ical.NewCalendar()
	cal.SetMethod(ical.MethodPublish)
	cal.SetProductId("-//eventum//planning//EN")

	for i := range projects {
		proj := &projects[i]

		addAllDay(cal, proj, "main", proj.Name, proj.MainDate, proj.MainDate)
		if p := proj.Schedule.Packing; p != nil {
			addAllDay(cal, proj, "packing", fmt.Sprintf("%s — packing", proj.Name), p.Date, p.Date)
		}
		if a := proj.Schedule.Assembly; a != nil {
			addAllDay(cal, proj, "assembly", fmt.Sprintf("%s — assembly", proj.Name), a.From, a.To)
		}
		if d := proj.Schedule.Disassembly; d != nil {
			addAllDay(cal, proj, "disassembly", fmt.Sprintf("%s — disassembly", proj.Name), d.Date, d.Date)
		}
	}

	return cal.Serialize()
}

func addAllDay(cal *ical.Calendar, proj *project.Project, kind, summary string, from, to time.Time) {
	ev := cal.AddEvent(fmt.Sprintf("%s-%s@eventum", proj.ID, kind))
	ev.SetSummary(summary)
	ev.SetAllDayStartAt(project.DateOf(from))
	// DTEND is exclusive for all-day events.
	ev.SetAllDayEndAt(project.DateOf(to).AddDate(0, 0, 1))
	if proj.Location != "" {
		ev.SetLocation(proj.Location)
	}
	ev.SetDescription(fmt.Sprintf("Project %s", proj.Number))
}
