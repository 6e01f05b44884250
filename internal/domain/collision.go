package domain

// EffectiveSpans returns the spans an event occupies for schedule-conflict
// purposes: the union of its time slots when it has any, otherwise its own
// span. Events without any dated span return nil and never conflict.
func EffectiveSpans(e *Event) []Timespan {
	if len(e.TimeSlots) > 0 {
		spans := make([]Timespan, 0, len(e.TimeSlots))
		for _, slot := range e.TimeSlots {
			spans = append(spans, slot.Span)
		}
		return spans
	}
	if e.Span.HasBegin() {
		return []Timespan{e.Span}
	}
	return nil
}

// EventsOverlap reports whether two events intersect in time: any effective
// span of one overlapping any effective span of the other.
func EventsOverlap(a, b *Event) bool {
	for _, sa := range EffectiveSpans(a) {
		for _, sb := range EffectiveSpans(b) {
			if sa.Overlaps(sb) {
				return true
			}
		}
	}
	return false
}

// IsRegistrationBlocked decides whether registering for the candidate would
// collide with an event the person is already registered for. The global
// kill switch disables the whole check; the per-event SkipCollisionCheck
// flag on either side suppresses the check against that pairing only.
func IsRegistrationBlocked(candidate *Event, registered []*Event, st RegistrationSettings) bool {
	if st.SkipCollisionCheck || candidate.SkipCollisionCheck {
		return false
	}
	for _, other := range registered {
		if other.SkipCollisionCheck {
			continue
		}
		if EventsOverlap(candidate, other) {
			return true
		}
	}
	return false
}
