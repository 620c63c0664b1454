package repository

import "errors"

// Common repository errors. Owner-scoped lookups return these both when a
// row is absent and when it belongs to someone else; callers cannot tell
// the two apart.
var (
	// ErrTaskNotFound is returned when a task is not found
	ErrTaskNotFound = errors.New("task not found")

	// ErrSubjectNotFound is returned when a subject is not found
	ErrSubjectNotFound = errors.New("subject not found")
)
