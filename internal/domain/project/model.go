package project

import "time"

// Project represents a single bookable event with its scheduling phases.
type Project struct {
	ID        string    `json:"id"`
	TenantID  string    `json:"tenant_id"`
	Number    string    `json:"number"`
	Name      string    `json:"name"`
	MainDate  time.Time `json:"main_date"`
	Location  string    `json:"location,omitempty"`
	Notes     string    `json:"notes,omitempty"`
	Schedule  Schedule  `json:"schedule"`
	CreatedAt time.Time `json:"created_at"`
}

// Schedule holds the optional phase dates around the main event date.
// Each field is independently optional.
type Schedule struct {
	Packing     *PhaseDay   `json:"packing,omitempty"`
	Assembly    *PhaseRange `json:"assembly,omitempty"`
	Disassembly *PhaseDay   `json:"disassembly,omitempty"`
}

// PhaseDay is a single-day phase with an optional clock time annotation.
type PhaseDay struct {
	Date time.Time `json:"date"`
	Time string    `json:"time,omitempty"`
}

// PhaseRange is an inclusive date range. From must not be after To.
type PhaseRange struct {
	From time.Time `json:"date_from"`
	To   time.Time `json:"date_to"`
}

// Contains reports whether day falls inside the range, inclusive on both ends.
func (r PhaseRange) Contains(day time.Time) bool {
	d := DateOf(day)
	return !d.Before(DateOf(r.From)) && !d.After(DateOf(r.To))
}

// Summary is a lightweight representation for listing.
type Summary struct {
	ID        string    `json:"id"`
	Number    string    `json:"number"`
	Name      string    `json:"name"`
	MainDate  time.Time `json:"main_date"`
	Location  string    `json:"location,omitempty"`
	CostLines int       `json:"cost_lines"`
	Payments  int       `json:"payments"`
	CreatedAt time.Time `json:"created_at"`
}

// DateOf truncates t to its calendar day in UTC. All phase comparisons
// operate on these normalized values so wall-clock components never leak
// into day membership checks.
func DateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// SameDay reports whether a and b fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	return DateOf(a).Equal(DateOf(b))
}
