package domain

import (
	"context"
	"fmt"
	"time"
)

// Speaker is a person giving an event, with the notice period they require
// before a cancellation.
type Speaker struct {
	ID                     string    `json:"id"`
	Name                   string    `json:"name"`
	Email                  string    `json:"email"`
	CancellationPeriodDays int       `json:"cancellation_period_days"`
	CreatedAt              time.Time `json:"created_at"`
	UpdatedAt              time.Time `json:"updated_at"`
}

// NewSpeaker returns a new Speaker. The cancellation period must not be
// negative. ID is typically set by the repository on create.
func NewSpeaker(name, email string, cancellationPeriodDays int, createdAt, updatedAt time.Time) (*Speaker, error) {
	if cancellationPeriodDays < 0 {
		return nil, fmt.Errorf("%w: cancellation period must not be negative, got %d", ErrInvalidInput, cancellationPeriodDays)
	}
	return &Speaker{
		Name:                   name,
		Email:                  email,
		CancellationPeriodDays: cancellationPeriodDays,
		CreatedAt:              createdAt,
		UpdatedAt:              updatedAt,
	}, nil
}

// SpeakerRepository defines storage operations for speakers and their event
// links.
type SpeakerRepository interface {
	Create(ctx context.Context, speaker *Speaker) error
	LinkToEvent(ctx context.Context, eventID, speakerID string) error
	ListByEventID(ctx context.Context, eventID string) ([]*Speaker, error)
}
