package domain

import (
	"context"
	"time"
)

// TimeSlot is a finer-grained sub-interval of an event, with its own span and
// place. Events with time slots are checked for schedule conflicts slot by
// slot instead of against their overall span.
type TimeSlot struct {
	ID        string    `json:"id"`
	EventID   string    `json:"event_id"`
	Span      Timespan  `json:"span"`
	Place     string    `json:"place"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewTimeSlot returns a new TimeSlot. ID is typically set by the repository
// on create.
func NewTimeSlot(eventID string, span Timespan, place string, createdAt, updatedAt time.Time) *TimeSlot {
	return &TimeSlot{
		EventID:   eventID,
		Span:      span,
		Place:     place,
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}
}

// TimeSlotRepository defines storage operations for time slots.
type TimeSlotRepository interface {
	Create(ctx context.Context, slot *TimeSlot) error
	ListByEventID(ctx context.Context, eventID string) ([]TimeSlot, error)
	DeleteByEventID(ctx context.Context, eventID string) error
}
