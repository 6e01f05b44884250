package domain

import "errors"

// Sentinel errors shared across services and repositories.
var (
	ErrNotFound     = errors.New("not found")
	ErrInvalidInput = errors.New("invalid input")
	ErrForbidden    = errors.New("forbidden")

	// ErrPreconditionFailed signals a caller bug: a function was invoked
	// outside its documented precondition. It is never returned for normal
	// business outcomes.
	ErrPreconditionFailed = errors.New("precondition failed")

	ErrUserNotFound   = errors.New("user not found")
	ErrDuplicateEmail = errors.New("email already in use")

	ErrAlreadyRegistered         = errors.New("already registered for this event")
	ErrUnregistrationNotPossible = errors.New("unregistration not possible")
)
