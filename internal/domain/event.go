package domain

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// EventKind distinguishes the two occurrence variants: a self-contained
// single event that owns its content, and a date bound to a shared topic.
type EventKind string

const (
	KindSingleEvent EventKind = "single"
	KindEventDate   EventKind = "date"
)

// EventStatus is the occurrence lifecycle state. Planned is the only
// non-terminal state; Confirmed and Canceled are terminal.
type EventStatus string

const (
	StatusPlanned   EventStatus = "planned"
	StatusConfirmed EventStatus = "confirmed"
	StatusCanceled  EventStatus = "canceled"
)

// EventContent holds the content attributes a family of event dates can
// share: title, description, type, the price matrix, and registration terms.
// A single event owns its content exclusively; a topic's content is shared by
// its dates. Price fields use NullDecimal so that an unset price stays
// distinct from an explicit 0.00.
type EventContent struct {
	ID             string              `json:"id"`
	Title          string              `json:"title"`
	Description    string              `json:"description"`
	EventType      string              `json:"event_type"`
	PriceOnRequest bool                `json:"price_on_request"`
	PriceRegular   decimal.NullDecimal `json:"price_regular"`
	PriceRegularEarly decimal.NullDecimal `json:"price_regular_early"`
	PriceRegularBoard decimal.NullDecimal `json:"price_regular_board"`
	PriceSpecial      decimal.NullDecimal `json:"price_special"`
	PriceSpecialEarly decimal.NullDecimal `json:"price_special_early"`
	PriceSpecialBoard decimal.NullDecimal `json:"price_special_board"`
	AdditionalTerms             bool      `json:"additional_terms"`
	AllowsMultipleRegistrations bool      `json:"allows_multiple_registrations"`
	Deleted                     bool      `json:"-"`
	CreatedAt                   time.Time `json:"created_at"`
	UpdatedAt                   time.Time `json:"updated_at"`
}

// NewEventContent returns a new EventContent with the given core fields. ID
// is typically set by the repository on create.
func NewEventContent(title, description, eventType string, createdAt, updatedAt time.Time) *EventContent {
	return &EventContent{
		Title:       title,
		Description: description,
		EventType:   eventType,
		CreatedAt:   createdAt,
		UpdatedAt:   updatedAt,
	}
}

// emptyContent backs content reads on dates whose topic is missing or
// deleted. Lookups degrade to empty values instead of erroring.
var emptyContent = &EventContent{}

// Event is a schedulable occurrence. A single event embeds its own content;
// a date references a topic and redirects all content reads there.
type Event struct {
	ID      string        `json:"id"`
	Kind    EventKind     `json:"kind"`
	TopicID string        `json:"topic_id,omitempty"`
	Topic   *EventContent `json:"topic,omitempty"`
	Own     *EventContent `json:"content,omitempty"`

	Span                   Timespan  `json:"span"`
	RegistrationBegin      time.Time `json:"registration_begin_at"`
	RegistrationDeadline   time.Time `json:"registration_deadline_at"`
	EarlyBirdDeadline      time.Time `json:"early_bird_deadline_at"`
	UnregistrationDeadline time.Time `json:"unregistration_deadline_at"`

	NeedsRegistration    bool        `json:"needs_registration"`
	HasWaitingList       bool        `json:"has_waiting_list"`
	MinAttendees         int         `json:"min_attendees"`
	MaxAttendees         int         `json:"max_attendees"`
	AttendeesOnQueue     int         `json:"attendees_on_queue"`
	OfflineRegistrations int         `json:"offline_registrations"`
	Status               EventStatus `json:"status"`
	SkipCollisionCheck   bool        `json:"skip_collision_check"`

	TimeSlots []TimeSlot `json:"time_slots,omitempty"`

	Hidden    bool      `json:"-"`
	Deleted   bool      `json:"-"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewSingleEvent returns a single event owning the given content.
func NewSingleEvent(content *EventContent, span Timespan, createdAt, updatedAt time.Time) *Event {
	return &Event{
		Kind:      KindSingleEvent,
		Own:       content,
		Span:      span,
		Status:    StatusPlanned,
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}
}

// NewEventDate returns a date bound to the topic with the given ID.
func NewEventDate(topicID string, span Timespan, createdAt, updatedAt time.Time) *Event {
	return &Event{
		Kind:      KindEventDate,
		TopicID:   topicID,
		Span:      span,
		Status:    StatusPlanned,
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}
}

// Content resolves the content view for this occurrence: its own content for
// a single event, the referenced topic's content for a date. It never
// returns nil; a date without a resolvable topic reads empty content.
func (e *Event) Content() *EventContent {
	switch e.Kind {
	case KindEventDate:
		if e.Topic != nil && !e.Topic.Deleted {
			return e.Topic
		}
		return emptyContent
	default:
		if e.Own != nil {
			return e.Own
		}
		return emptyContent
	}
}

// EarlyBirdApplies reports whether the early-bird prices are in effect: the
// deadline is set and now is not past it (the deadline instant itself still
// counts).
func (e *Event) EarlyBirdApplies(now time.Time) bool {
	return !e.EarlyBirdDeadline.IsZero() && !now.After(e.EarlyBirdDeadline)
}

// Confirm transitions the event from Planned to Confirmed.
func (e *Event) Confirm() error {
	if e.Status != StatusPlanned {
		return fmt.Errorf("%w: cannot confirm event in status %q", ErrPreconditionFailed, e.Status)
	}
	e.Status = StatusConfirmed
	return nil
}

// Cancel transitions the event from Planned to Canceled.
func (e *Event) Cancel() error {
	if e.Status != StatusPlanned {
		return fmt.Errorf("%w: cannot cancel event in status %q", ErrPreconditionFailed, e.Status)
	}
	e.Status = StatusCanceled
	return nil
}

// EventRepository defines storage operations for events and topics.
type EventRepository interface {
	CreateTopic(ctx context.Context, content *EventContent) error
	GetTopicByID(ctx context.Context, id string) (*EventContent, error)
	SetTopicDeleted(ctx context.Context, id string, deleted bool) error

	Create(ctx context.Context, event *Event) error
	// GetByID returns the event with its topic and time slots resolved.
	// Deleted events are not returned; a date whose topic is gone comes
	// back with a nil Topic.
	GetByID(ctx context.Context, id string) (*Event, error)
	List(ctx context.Context, p PaginationParams) ([]*Event, int, error)
	UpdateStatus(ctx context.Context, id string, status EventStatus) error
	SetHidden(ctx context.Context, id string, hidden bool) error
	SetDeleted(ctx context.Context, id string, deleted bool) error
	UpdateQueueCount(ctx context.Context, id string, attendeesOnQueue int) error
}

// EventService defines editor-facing event operations.
type EventService interface {
	CreateTopic(ctx context.Context, content *EventContent) error
	CreateSingleEvent(ctx context.Context, event *Event) error
	CreateEventDate(ctx context.Context, event *Event) error
	GetByID(ctx context.Context, id string) (*Event, error)
	List(ctx context.Context, p PaginationParams) ([]*Event, int, error)
	Hide(ctx context.Context, id string) error
	Unhide(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
	Confirm(ctx context.Context, id string) error
	Cancel(ctx context.Context, id string) error
	// Duplicate creates a hidden planned copy of the event with fresh
	// capacity counters. Time slots are copied, registrations are not.
	Duplicate(ctx context.Context, id string) (*Event, error)

	AddTimeSlot(ctx context.Context, slot *TimeSlot) error

	AddSpeaker(ctx context.Context, speaker *Speaker) error
	AssignSpeaker(ctx context.Context, eventID, speakerID string) error
	ListSpeakers(ctx context.Context, eventID string) ([]*Speaker, error)
	// CancellationDeadline derives the last instant the event can still be
	// called off given its speakers' notice periods.
	CancellationDeadline(ctx context.Context, eventID string) (time.Time, error)
}
