package domain

import "time"

// CapacityLedger is the derived seat accounting for one event: how many
// seats are taken by regular registrations and how many sit on the waiting
// queue. It is computed from the active registrations of an event, never
// stored. Callers must serialize concurrent registration attempts for the
// same event (e.g. by a row lock) because these decisions read a snapshot.
type CapacityLedger struct {
	RegularSeatsTaken int `json:"regular_seats_taken"`
	QueueSeatsTaken   int `json:"queue_seats_taken"`
}

// IsFull reports whether the event's regular capacity is exhausted. A max of
// 0 means unlimited seats, which is never full.
func IsFull(e *Event, ledger CapacityLedger) bool {
	if e.MaxAttendees == 0 {
		return false
	}
	return ledger.RegularSeatsTaken >= e.MaxAttendees
}

// HasUnlimitedVacancies reports whether the event takes registrations
// without any seat limit.
func HasUnlimitedVacancies(e *Event) bool {
	return e.NeedsRegistration && e.MaxAttendees == 0
}

// Vacancies returns the number of free regular seats and whether capacity is
// unlimited. With unlimited capacity the count is meaningless and returned
// as 0.
func Vacancies(e *Event, ledger CapacityLedger) (int, bool) {
	if e.MaxAttendees == 0 {
		return 0, true
	}
	free := e.MaxAttendees - ledger.RegularSeatsTaken
	if free < 0 {
		free = 0
	}
	return free, false
}

// IsUnregistrationPossible decides whether a registration for this event may
// currently be withdrawn. Unregistration requires a computable deadline (an
// explicit one or the global offset applied to the begin date) that has not
// passed. When the event runs a waiting list and the queue is empty,
// unregistration additionally needs the empty-waitlist setting, since
// freeing a seat nobody is waiting for is normally pointless.
func IsUnregistrationPossible(e *Event, ledger CapacityLedger, now time.Time, st RegistrationSettings) bool {
	if !e.NeedsRegistration {
		return false
	}
	deadline, ok := UnregistrationDeadline(e, st.UnregistrationDeadlineDaysBefore)
	if !ok {
		return false
	}
	if now.After(deadline) {
		return false
	}
	if e.HasWaitingList && ledger.QueueSeatsTaken == 0 && !st.AllowUnregistrationWithEmptyWaitlist {
		return false
	}
	return true
}
