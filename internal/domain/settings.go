package domain

// RegistrationSettings carries the global registration configuration. All
// decision functions take it as an explicit parameter; nothing in this
// package reads ambient state, so every decision is replayable from its
// inputs.
type RegistrationSettings struct {
	// SkipCollisionCheck disables schedule-conflict checking entirely.
	SkipCollisionCheck bool
	// UnregistrationDeadlineDaysBefore is the global fallback for events
	// without an explicit unregistration deadline: the deadline becomes
	// this many days before the event begins. 0 means no fallback.
	UnregistrationDeadlineDaysBefore int
	// AllowRegistrationWithoutDate permits registration for events that
	// have no begin date yet.
	AllowRegistrationWithoutDate bool
	// AllowRegistrationForStartedEvents permits late registration after an
	// event has begun (up to its end, or its begin when it has no end).
	AllowRegistrationForStartedEvents bool
	// AllowUnregistrationWithEmptyWaitlist permits unregistration from an
	// event with a waiting list even while the queue is empty.
	AllowUnregistrationWithEmptyWaitlist bool
}
