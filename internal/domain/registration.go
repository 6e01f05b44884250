package domain

import (
	"context"
	"fmt"
	"time"
)

// Registration is one person's sign-up for one event. Registrations are kept
// for audit and statistics: withdrawing sets UnregisteredAt instead of
// deleting the row.
type Registration struct {
	ID             string     `json:"id"`
	EventID        string     `json:"event_id"`
	UserID         string     `json:"user_id"`
	Seats          int        `json:"seats"`
	OnQueue        bool       `json:"on_queue"`
	PaidAt         *time.Time `json:"paid_at,omitempty"`
	UnregisteredAt *time.Time `json:"unregistered_at,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

// NewRegistration returns a new Registration for the given event and user.
// Seats must be at least 1. ID is typically set by the repository on create.
func NewRegistration(eventID, userID string, seats int, onQueue bool, createdAt, updatedAt time.Time) (*Registration, error) {
	if seats < 1 {
		return nil, fmt.Errorf("%w: seats must be at least 1, got %d", ErrInvalidInput, seats)
	}
	return &Registration{
		EventID:   eventID,
		UserID:    userID,
		Seats:     seats,
		OnQueue:   onQueue,
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}, nil
}

// IsActive reports whether the registration still counts against the event's
// capacity.
func (r *Registration) IsActive() bool {
	return r.UnregisteredAt == nil
}

// RegistrationRepository defines storage operations for registrations.
// "Active" means not unregistered and not belonging to a hidden or deleted
// event row.
type RegistrationRepository interface {
	Create(ctx context.Context, reg *Registration) error
	GetByID(ctx context.Context, id string) (*Registration, error)
	GetActiveByEventAndUser(ctx context.Context, eventID, userID string) (*Registration, error)
	ListActiveByUserID(ctx context.Context, userID string) ([]*Registration, error)
	// CountActiveByEventID returns the seat totals of the event's active
	// registrations, partitioned by queue membership.
	CountActiveByEventID(ctx context.Context, eventID string) (CapacityLedger, error)
	MarkUnregistered(ctx context.Context, id string, at time.Time) error
	// PromoteFirstQueued moves the oldest queued registration off the
	// queue and returns it. ErrNotFound when the queue is empty.
	PromoteFirstQueued(ctx context.Context, eventID string, at time.Time) (*Registration, error)
	SetPaid(ctx context.Context, id string, at time.Time) error
}

// RegistrationWithEvent bundles a registration with its event for listings.
type RegistrationWithEvent struct {
	Registration *Registration `json:"registration"`
	Event        *Event        `json:"event"`
}

// RegistrationService defines attendee-facing registration operations.
type RegistrationService interface {
	// Register signs the user up for the event, placing the registration
	// on the waiting queue when regular capacity is exhausted. Refused
	// sign-ups return *RegistrationRefusedError.
	Register(ctx context.Context, eventID, userID string, seats int) (*Registration, error)
	// Unregister withdraws the user's registration and promotes the first
	// queued registration when a seat frees up.
	Unregister(ctx context.Context, registrationID, userID string) error
	ConfirmPayment(ctx context.Context, registrationID string) (*Registration, error)
	ListMyRegistrations(ctx context.Context, userID string) ([]*RegistrationWithEvent, error)
	// Eligibility reports whether somebody could register for the event
	// right now, with the refusal reason when not.
	Eligibility(ctx context.Context, eventID string) (RegistrationDecision, error)
	// Quote derives the current price for the event and category.
	Quote(ctx context.Context, eventID string, category AttendeeCategory) (PriceQuote, error)
}
