// Package phase classifies calendar days against a project's schedule.
package phase

import (
	"time"

	"github.com/pgorczak/eventum/internal/domain/project"
)

// Phase tags a calendar day relative to a project's schedule.
type Phase string

const (
	Main        Phase = "main"
	Packing     Phase = "packing"
	Assembly    Phase = "assembly"
	Disassembly Phase = "disassembly"
)

// All lists the phases in rendering order.
var All = []Phase{Main, Packing, Assembly, Disassembly}

// Set is the collection of phases touching one day. Tags are not
// exclusive: a packing day may coincide with the main date.
type Set []Phase

// Contains reports whether p is in the set.
func (s Set) Contains(p Phase) bool {
	for _, tag := range s {
		if tag == p {
			return true
		}
	}
	return false
}

// Classify returns every phase of proj that touches day. Absent schedule
// fields simply yield no tag for that phase.
func Classify(proj *project.Project, day time.Time) Set {
	var tags Set

	if project.SameDay(proj.MainDate, day) {
		tags = append(tags, Main)
	}
	if p := proj.Schedule.Packing; p != nil && project.SameDay(p.Date, day) {
		tags = append(tags, Packing)
	}
	if a := proj.Schedule.Assembly; a != nil && a.Contains(day) {
		tags = append(tags, Assembly)
	}
	if d := proj.Schedule.Disassembly; d != nil && project.SameDay(d.Date, day) {
		tags = append(tags, Disassembly)
	}

	return tags
}
