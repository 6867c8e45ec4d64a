package project

import "errors"

var (
	// ErrProjectNotFound indicates the project doesn't exist.
	ErrProjectNotFound = errors.New("project not found")
	// ErrInvalidInput indicates invalid project input.
	ErrInvalidInput = errors.New("invalid project input")
	// ErrInvalidSchedule indicates an assembly range with From after To.
	ErrInvalidSchedule = errors.New("invalid schedule: assembly range reversed")
	// ErrDuplicateNumber indicates the project number is already taken.
	ErrDuplicateNumber = errors.New("project number already in use")
)
