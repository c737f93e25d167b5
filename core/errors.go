package core

import "errors"

// Error taxonomy shared by every package, nil is OK
var (
	// ErrInit reports a subsystem that failed to set up
	ErrInit = errors.New("init failed")

	// ErrNotFound reports a missing component, manager or kind
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput reports arguments violating a precondition, e.g. non-parallel edges
	ErrInvalidInput = errors.New("invalid input")
)
