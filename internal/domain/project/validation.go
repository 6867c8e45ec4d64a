package project

import "strings"

// ValidateCreateInput validates fields required to create a project.
func ValidateCreateInput(req CreateRequest) error {
	if strings.TrimSpace(req.Number) == "" {
		return ErrInvalidInput
	}
	if strings.TrimSpace(req.Name) == "" {
		return ErrInvalidInput
	}
	if req.MainDate.IsZero() {
		return ErrInvalidInput
	}
	return ValidateSchedule(req.Schedule)
}

// ValidateSchedule checks the assembly range ordering. Absent phases are
// always valid.
func ValidateSchedule(sched Schedule) error {
	if sched.Assembly != nil {
		if DateOf(sched.Assembly.From).After(DateOf(sched.Assembly.To)) {
			return ErrInvalidSchedule
		}
	}
	return nil
}
