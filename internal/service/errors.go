package service

import "errors"

var (
	// ErrDuplicateLog means a ledger entry already exists for the
	// (task, day) pair. The caller should reject the request, not retry.
	ErrDuplicateLog = errors.New("completion already logged for this day")

	// ErrTaskNotFound means the task does not exist or is not owned by
	// the acting user; the two cases are indistinguishable on purpose.
	ErrTaskNotFound = errors.New("task not found")

	// ErrDuplicateTitle means the user already has a task with this title.
	ErrDuplicateTitle = errors.New("task with this title already exists")

	// ErrUsernameTaken means the username is already registered.
	ErrUsernameTaken = errors.New("username already registered")

	// ErrModelUntrained means the external classifier has no model yet.
	// Consumers treat it as "no prediction available", not a failure.
	ErrModelUntrained = errors.New("prediction model not trained")
)
