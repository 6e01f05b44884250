package domain

import (
	"fmt"
	"time"
)

// RefusalReason is the stable code carried by a denied registration
// decision. Presentation layers localize these; the engine never produces
// free-text reasons.
type RefusalReason string

const (
	ReasonNone                    RefusalReason = ""
	ReasonNoDate                  RefusalReason = "no_date"
	ReasonCanceled                RefusalReason = "canceled"
	ReasonNoRegistrationNecessary RefusalReason = "no_registration_necessary"
	ReasonRegistrationClosed      RefusalReason = "registration_closed"
	ReasonRegistrationOpensLater  RefusalReason = "registration_opens_later"
	ReasonNoVacancies             RefusalReason = "no_vacancies"

	// Service-level refusals, outside the CanSomebodyRegister order.
	ReasonScheduleConflict  RefusalReason = "schedule_conflict"
	ReasonAlreadyRegistered RefusalReason = "already_registered"
)

// RegistrationDecision is the outcome of a registration eligibility check.
// OpensAt is set when the reason is ReasonRegistrationOpensLater so messages
// can include the opening instant.
type RegistrationDecision struct {
	Allowed bool          `json:"allowed"`
	Reason  RefusalReason `json:"reason,omitempty"`
	OpensAt time.Time     `json:"opens_at,omitempty"`
}

func denied(reason RefusalReason) RegistrationDecision {
	return RegistrationDecision{Reason: reason}
}

// UnregistrationDeadline derives the instant up to which a registration may
// be withdrawn. An explicit deadline on the event wins unconditionally.
// Otherwise, a positive global offset yields begin minus that many days,
// provided the event has a begin date. In all other cases there is no
// deadline and the second return value is false.
func UnregistrationDeadline(e *Event, offsetDays int) (time.Time, bool) {
	if !e.UnregistrationDeadline.IsZero() {
		return e.UnregistrationDeadline, true
	}
	if offsetDays > 0 && e.Span.HasBegin() {
		return e.Span.Begin.AddDate(0, 0, -offsetDays), true
	}
	return time.Time{}, false
}

// CancellationDeadline derives the last instant at which the event can still
// be called off without violating any speaker's cancellation period: begin
// minus the largest period across the linked speakers (0 with no speakers).
// The event must have a begin date; calling this without one is a contract
// violation.
func CancellationDeadline(e *Event, speakers []*Speaker) (time.Time, error) {
	if !e.Span.HasBegin() {
		return time.Time{}, fmt.Errorf("%w: cancellation deadline needs a begin date", ErrPreconditionFailed)
	}
	maxDays := 0
	for _, sp := range speakers {
		if sp.CancellationPeriodDays > maxDays {
			maxDays = sp.CancellationPeriodDays
		}
	}
	return e.Span.Begin.AddDate(0, 0, -maxDays), nil
}

// latestRegistrationTime is the last instant at which anyone may still
// register: the explicit deadline when set; otherwise, when late
// registration for started events is allowed, the event end (or begin when
// it has no end); otherwise the begin. Zero when none of the dates are set.
func latestRegistrationTime(e *Event, st RegistrationSettings) time.Time {
	if !e.RegistrationDeadline.IsZero() {
		return e.RegistrationDeadline
	}
	if st.AllowRegistrationForStartedEvents && e.Span.HasEnd() {
		return e.Span.End
	}
	return e.Span.Begin
}

// CanSomebodyRegister decides whether any person could register for the
// event at the given instant, given the capacity ledger and the global
// settings. The first matching refusal wins; the order is fixed so callers
// always see the same reason for the same snapshot.
func CanSomebodyRegister(e *Event, ledger CapacityLedger, now time.Time, st RegistrationSettings) RegistrationDecision {
	if !e.Span.HasBegin() && !st.AllowRegistrationWithoutDate {
		return denied(ReasonNoDate)
	}
	if e.Status == StatusCanceled {
		return denied(ReasonCanceled)
	}
	if !e.NeedsRegistration {
		return denied(ReasonNoRegistrationNecessary)
	}
	if e.Span.IsOver(now) && !st.AllowRegistrationForStartedEvents {
		return denied(ReasonRegistrationClosed)
	}
	if !e.RegistrationBegin.IsZero() && now.Before(e.RegistrationBegin) {
		return RegistrationDecision{Reason: ReasonRegistrationOpensLater, OpensAt: e.RegistrationBegin}
	}
	if latest := latestRegistrationTime(e, st); !latest.IsZero() && now.After(latest) {
		return denied(ReasonRegistrationClosed)
	}
	if IsFull(e, ledger) && !e.HasWaitingList {
		return denied(ReasonNoVacancies)
	}
	return RegistrationDecision{Allowed: true}
}

// RegistrationRefusedError wraps a denied decision when a caller attempted
// the registration anyway. Business refusals are values, not failures; this
// type only exists so transports can carry the reason code across an error
// return.
type RegistrationRefusedError struct {
	Reason  RefusalReason
	OpensAt time.Time
}

func (e *RegistrationRefusedError) Error() string {
	return "registration refused: " + string(e.Reason)
}
