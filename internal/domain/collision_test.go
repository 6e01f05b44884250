package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func eventWithSpan(begin, end time.Time) *Event {
	ev := NewSingleEvent(fullContent(), Timespan{Begin: begin, End: end}, time.Now(), time.Now())
	ev.NeedsRegistration = true
	return ev
}

func withSlots(ev *Event, spans ...Timespan) *Event {
	for _, s := range spans {
		ev.TimeSlots = append(ev.TimeSlots, TimeSlot{EventID: ev.ID, Span: s})
	}
	return ev
}

func TestEffectiveSpans(t *testing.T) {
	t.Run("own span without slots", func(t *testing.T) {
		ev := eventWithSpan(at(0), at(100))
		spans := EffectiveSpans(ev)
		require.Len(t, spans, 1)
		require.True(t, spans[0].Begin.Equal(at(0)))
	})

	t.Run("slots replace the own span", func(t *testing.T) {
		ev := withSlots(eventWithSpan(at(0), at(500)),
			Timespan{Begin: at(0), End: at(100)},
			Timespan{Begin: at(400), End: at(500)},
		)
		spans := EffectiveSpans(ev)
		require.Len(t, spans, 2)
	})

	t.Run("undated event has no spans", func(t *testing.T) {
		ev := eventWithSpan(time.Time{}, time.Time{})
		require.Empty(t, EffectiveSpans(ev))
	})
}

func TestIsRegistrationBlocked(t *testing.T) {
	var noSettings RegistrationSettings

	tests := []struct {
		name       string
		candidate  *Event
		registered []*Event
		settings   RegistrationSettings
		want       bool
	}{
		{
			name:       "identical spans collide",
			candidate:  eventWithSpan(at(100), at(1000)),
			registered: []*Event{eventWithSpan(at(100), at(1000))},
			settings:   noSettings,
			want:       true,
		},
		{
			name:       "disjoint spans do not collide",
			candidate:  eventWithSpan(at(0), at(100)),
			registered: []*Event{eventWithSpan(at(500), at(1000))},
			settings:   noSettings,
			want:       false,
		},
		{
			name:       "touching spans do not collide",
			candidate:  eventWithSpan(at(0), at(100)),
			registered: []*Event{eventWithSpan(at(100), at(1000))},
			settings:   noSettings,
			want:       false,
		},
		{
			name:      "candidate straddling another event's slots",
			candidate: eventWithSpan(at(50), at(450)),
			registered: []*Event{withSlots(eventWithSpan(at(0), at(500)),
				Timespan{Begin: at(0), End: at(100)},
				Timespan{Begin: at(400), End: at(500)},
			)},
			settings: noSettings,
			want:     true,
		},
		{
			name:      "candidate fitting between another event's slots",
			candidate: eventWithSpan(at(150), at(350)),
			registered: []*Event{withSlots(eventWithSpan(at(0), at(500)),
				Timespan{Begin: at(0), End: at(100)},
				Timespan{Begin: at(400), End: at(500)},
			)},
			settings: noSettings,
			want:     false,
		},
		{
			name:       "global kill switch",
			candidate:  eventWithSpan(at(100), at(1000)),
			registered: []*Event{eventWithSpan(at(100), at(1000))},
			settings:   RegistrationSettings{SkipCollisionCheck: true},
			want:       false,
		},
		{
			name: "candidate opts out",
			candidate: func() *Event {
				ev := eventWithSpan(at(100), at(1000))
				ev.SkipCollisionCheck = true
				return ev
			}(),
			registered: []*Event{eventWithSpan(at(100), at(1000))},
			settings:   noSettings,
			want:       false,
		},
		{
			name:      "registered event opts out",
			candidate: eventWithSpan(at(100), at(1000)),
			registered: []*Event{func() *Event {
				ev := eventWithSpan(at(100), at(1000))
				ev.SkipCollisionCheck = true
				return ev
			}()},
			settings: noSettings,
			want:     false,
		},
		{
			name:      "opt-out suppresses only that pairing",
			candidate: eventWithSpan(at(100), at(1000)),
			registered: []*Event{
				func() *Event {
					ev := eventWithSpan(at(100), at(1000))
					ev.SkipCollisionCheck = true
					return ev
				}(),
				eventWithSpan(at(200), at(300)),
			},
			settings: noSettings,
			want:     true,
		},
		{
			name:       "undated candidate never collides",
			candidate:  eventWithSpan(time.Time{}, time.Time{}),
			registered: []*Event{eventWithSpan(at(0), at(1000))},
			settings:   noSettings,
			want:       false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, IsRegistrationBlocked(tt.candidate, tt.registered, tt.settings))
		})
	}
}

func TestEventsOverlap_Symmetric(t *testing.T) {
	a := withSlots(eventWithSpan(at(0), at(500)),
		Timespan{Begin: at(0), End: at(100)},
		Timespan{Begin: at(400), End: at(500)},
	)
	b := eventWithSpan(at(50), at(450))

	require.Equal(t, EventsOverlap(a, b), EventsOverlap(b, a))
	require.True(t, EventsOverlap(a, b))
}
