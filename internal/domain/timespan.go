package domain

import (
	"fmt"
	"time"
)

// Timespan is a begin/end instant pair. The zero time.Time value means the
// bound is not set. A span with a begin and no end is open-ended; for
// collision purposes it is treated as running until midnight of the
// following day.
type Timespan struct {
	Begin time.Time `json:"begin_at"`
	End   time.Time `json:"end_at"`
}

// NewTimespan returns a Timespan with the given bounds. When both bounds are
// set, End must not be before Begin.
func NewTimespan(begin, end time.Time) (Timespan, error) {
	if !begin.IsZero() && !end.IsZero() && end.Before(begin) {
		return Timespan{}, fmt.Errorf("%w: end %s before begin %s", ErrInvalidInput, end, begin)
	}
	return Timespan{Begin: begin, End: end}, nil
}

// HasBegin reports whether the begin instant is set.
func (t Timespan) HasBegin() bool {
	return !t.Begin.IsZero()
}

// HasEnd reports whether the end instant is set.
func (t Timespan) HasEnd() bool {
	return !t.End.IsZero()
}

// IsOpenEnded reports whether the span has a begin but no end.
func (t Timespan) IsOpenEnded() bool {
	return t.HasBegin() && !t.HasEnd()
}

// HasStarted reports whether the span has a begin instant that is not after
// now. A span without a begin has not started.
func (t Timespan) HasStarted(now time.Time) bool {
	return t.HasBegin() && !t.Begin.After(now)
}

// IsOver reports whether the span lies in the past: its end has passed, or,
// for spans without an end, its begin has passed.
func (t Timespan) IsOver(now time.Time) bool {
	if t.HasEnd() {
		return now.After(t.End)
	}
	if t.HasBegin() {
		return now.After(t.Begin)
	}
	return false
}

// collisionEnd returns the effective end used for overlap checks: the end
// instant when set, otherwise midnight of the day after the begin instant.
func (t Timespan) collisionEnd() time.Time {
	if t.HasEnd() {
		return t.End
	}
	y, m, d := t.Begin.Date()
	return time.Date(y, m, d+1, 0, 0, 0, 0, t.Begin.Location())
}

// Overlaps reports whether two spans intersect under half-open semantics:
// touching endpoints do not overlap. Spans without a begin never overlap
// anything.
func (t Timespan) Overlaps(other Timespan) bool {
	if !t.HasBegin() || !other.HasBegin() {
		return false
	}
	return t.Begin.Before(other.collisionEnd()) && other.Begin.Before(t.collisionEnd())
}
