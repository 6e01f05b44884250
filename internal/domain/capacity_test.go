package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestIsFull(t *testing.T) {
	tests := []struct {
		name         string
		maxAttendees int
		seatsTaken   int
		want         bool
	}{
		{"unlimited is never full", 0, 1000, false},
		{"below capacity", 10, 9, false},
		{"at capacity", 10, 10, true},
		{"over capacity", 10, 11, true},
		{"empty", 10, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ev := registrableEvent()
			ev.MaxAttendees = tt.maxAttendees
			require.Equal(t, tt.want, IsFull(ev, CapacityLedger{RegularSeatsTaken: tt.seatsTaken}))
		})
	}
}

func TestIsFull_Monotonic(t *testing.T) {
	ev := registrableEvent()
	ev.MaxAttendees = 5

	full := false
	for taken := 0; taken <= 20; taken++ {
		now := IsFull(ev, CapacityLedger{RegularSeatsTaken: taken})
		if full {
			require.True(t, now, "adding seats must never un-fill an event (taken=%d)", taken)
		}
		full = now
	}
}

func TestHasUnlimitedVacancies(t *testing.T) {
	ev := registrableEvent()
	ev.MaxAttendees = 0
	require.True(t, HasUnlimitedVacancies(ev))

	ev.MaxAttendees = 5
	require.False(t, HasUnlimitedVacancies(ev))

	ev.MaxAttendees = 0
	ev.NeedsRegistration = false
	require.False(t, HasUnlimitedVacancies(ev))
}

func TestVacancies(t *testing.T) {
	ev := registrableEvent()
	ev.MaxAttendees = 10

	free, unlimited := Vacancies(ev, CapacityLedger{RegularSeatsTaken: 4})
	require.False(t, unlimited)
	require.Equal(t, 6, free)

	free, _ = Vacancies(ev, CapacityLedger{RegularSeatsTaken: 15})
	require.Equal(t, 0, free, "overbooked events report zero, not negative")

	ev.MaxAttendees = 0
	_, unlimited = Vacancies(ev, CapacityLedger{})
	require.True(t, unlimited)
}

func TestIsUnregistrationPossible(t *testing.T) {
	begin := time.Date(2026, 6, 15, 9, 0, 0, 0, time.UTC)
	now := begin.AddDate(0, 0, -10)

	base := func() *Event {
		ev := registrableEvent()
		ev.Span = Timespan{Begin: begin}
		return ev
	}

	tests := []struct {
		name     string
		event    func() *Event
		ledger   CapacityLedger
		now      time.Time
		settings RegistrationSettings
		want     bool
	}{
		{
			name: "no registration needed",
			event: func() *Event {
				ev := base()
				ev.NeedsRegistration = false
				return ev
			},
			now:      now,
			settings: RegistrationSettings{UnregistrationDeadlineDaysBefore: 1},
			want:     false,
		},
		{
			name:     "no deadline computable",
			event:    base,
			now:      now,
			settings: RegistrationSettings{},
			want:     false,
		},
		{
			name:     "before global-offset deadline",
			event:    base,
			now:      now,
			settings: RegistrationSettings{UnregistrationDeadlineDaysBefore: 1},
			want:     true,
		},
		{
			name:     "past global-offset deadline",
			event:    base,
			now:      begin.Add(-12 * time.Hour),
			settings: RegistrationSettings{UnregistrationDeadlineDaysBefore: 1},
			want:     false,
		},
		{
			name: "explicit deadline wins even with offset configured",
			event: func() *Event {
				ev := base()
				ev.UnregistrationDeadline = begin.AddDate(0, 0, -30)
				return ev
			},
			now:      now,
			settings: RegistrationSettings{UnregistrationDeadlineDaysBefore: 1},
			want:     false,
		},
		{
			name: "waiting list with empty queue",
			event: func() *Event {
				ev := base()
				ev.HasWaitingList = true
				return ev
			},
			ledger:   CapacityLedger{QueueSeatsTaken: 0},
			now:      now,
			settings: RegistrationSettings{UnregistrationDeadlineDaysBefore: 1},
			want:     false,
		},
		{
			name: "waiting list with empty queue, allowed by settings",
			event: func() *Event {
				ev := base()
				ev.HasWaitingList = true
				return ev
			},
			ledger: CapacityLedger{QueueSeatsTaken: 0},
			now:    now,
			settings: RegistrationSettings{
				UnregistrationDeadlineDaysBefore:     1,
				AllowUnregistrationWithEmptyWaitlist: true,
			},
			want: true,
		},
		{
			name: "waiting list with people queued",
			event: func() *Event {
				ev := base()
				ev.HasWaitingList = true
				return ev
			},
			ledger:   CapacityLedger{QueueSeatsTaken: 3},
			now:      now,
			settings: RegistrationSettings{UnregistrationDeadlineDaysBefore: 1},
			want:     true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := IsUnregistrationPossible(tt.event(), tt.ledger, tt.now, tt.settings)
			require.Equal(t, tt.want, got)
		})
	}
}
