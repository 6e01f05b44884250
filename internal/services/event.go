package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"seminarmanager/internal/domain"
)

type eventService struct {
	eventRepo    domain.EventRepository
	timeSlotRepo domain.TimeSlotRepository
	speakerRepo  domain.SpeakerRepository
	now          func() time.Time
}

// NewEventService creates an EventService with the given repositories. now
// may be nil, in which case time.Now is used.
func NewEventService(
	eventRepo domain.EventRepository,
	timeSlotRepo domain.TimeSlotRepository,
	speakerRepo domain.SpeakerRepository,
	now func() time.Time,
) domain.EventService {
	if now == nil {
		now = time.Now
	}
	return &eventService{
		eventRepo:    eventRepo,
		timeSlotRepo: timeSlotRepo,
		speakerRepo:  speakerRepo,
		now:          now,
	}
}

func (s *eventService) CreateTopic(ctx context.Context, content *domain.EventContent) error {
	if strings.TrimSpace(content.Title) == "" {
		return fmt.Errorf("%w: title is required", domain.ErrInvalidInput)
	}
	now := s.now()
	content.CreatedAt = now
	content.UpdatedAt = now
	if err := s.eventRepo.CreateTopic(ctx, content); err != nil {
		return fmt.Errorf("create topic: %w", err)
	}
	return nil
}

// CreateSingleEvent stores the event together with its private content row.
func (s *eventService) CreateSingleEvent(ctx context.Context, event *domain.Event) error {
	if event.Kind != domain.KindSingleEvent {
		return fmt.Errorf("%w: expected a single event", domain.ErrInvalidInput)
	}
	if event.Own == nil || strings.TrimSpace(event.Own.Title) == "" {
		return fmt.Errorf("%w: title is required", domain.ErrInvalidInput)
	}
	now := s.now()
	event.Own.CreatedAt = now
	event.Own.UpdatedAt = now
	if err := s.eventRepo.CreateTopic(ctx, event.Own); err != nil {
		return fmt.Errorf("create event content: %w", err)
	}

	event.Status = domain.StatusPlanned
	event.CreatedAt = now
	event.UpdatedAt = now
	if err := s.eventRepo.Create(ctx, event); err != nil {
		return fmt.Errorf("create event: %w", err)
	}
	return nil
}

// CreateEventDate stores a date for an existing topic.
func (s *eventService) CreateEventDate(ctx context.Context, event *domain.Event) error {
	if event.Kind != domain.KindEventDate {
		return fmt.Errorf("%w: expected an event date", domain.ErrInvalidInput)
	}
	if event.TopicID == "" {
		return fmt.Errorf("%w: topic id is required", domain.ErrInvalidInput)
	}
	topic, err := s.eventRepo.GetTopicByID(ctx, event.TopicID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("%w: topic %s", domain.ErrNotFound, event.TopicID)
		}
		return fmt.Errorf("get topic: %w", err)
	}

	now := s.now()
	event.Topic = topic
	event.Status = domain.StatusPlanned
	event.CreatedAt = now
	event.UpdatedAt = now
	if err := s.eventRepo.Create(ctx, event); err != nil {
		return fmt.Errorf("create event date: %w", err)
	}
	return nil
}

func (s *eventService) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	event, err := s.eventRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get event: %w", err)
	}
	return event, nil
}

func (s *eventService) List(ctx context.Context, p domain.PaginationParams) ([]*domain.Event, int, error) {
	events, total, err := s.eventRepo.List(ctx, p)
	if err != nil {
		return nil, 0, fmt.Errorf("list events: %w", err)
	}
	if events == nil {
		events = []*domain.Event{}
	}
	return events, total, nil
}

func (s *eventService) Hide(ctx context.Context, id string) error {
	return s.setHidden(ctx, id, true)
}

func (s *eventService) Unhide(ctx context.Context, id string) error {
	return s.setHidden(ctx, id, false)
}

func (s *eventService) setHidden(ctx context.Context, id string, hidden bool) error {
	if err := s.eventRepo.SetHidden(ctx, id, hidden); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("set hidden: %w", err)
	}
	return nil
}

// Delete soft-deletes the event. A single event takes its private content
// row along; a date leaves its topic alone since other dates may share it.
func (s *eventService) Delete(ctx context.Context, id string) error {
	event, err := s.eventRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("get event: %w", err)
	}
	if err := s.eventRepo.SetDeleted(ctx, id, true); err != nil {
		return fmt.Errorf("delete event: %w", err)
	}
	if event.Kind == domain.KindSingleEvent && event.Own != nil {
		if err := s.eventRepo.SetTopicDeleted(ctx, event.Own.ID, true); err != nil {
			return fmt.Errorf("delete event content: %w", err)
		}
	}
	if err := s.timeSlotRepo.DeleteByEventID(ctx, id); err != nil {
		return fmt.Errorf("delete time slots: %w", err)
	}
	return nil
}

func (s *eventService) Confirm(ctx context.Context, id string) error {
	return s.transition(ctx, id, (*domain.Event).Confirm)
}

func (s *eventService) Cancel(ctx context.Context, id string) error {
	return s.transition(ctx, id, (*domain.Event).Cancel)
}

func (s *eventService) transition(ctx context.Context, id string, apply func(*domain.Event) error) error {
	event, err := s.eventRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("get event: %w", err)
	}
	if err := apply(event); err != nil {
		return err
	}
	if err := s.eventRepo.UpdateStatus(ctx, id, event.Status); err != nil {
		return fmt.Errorf("update status: %w", err)
	}
	return nil
}

func (s *eventService) Duplicate(ctx context.Context, id string) (*domain.Event, error) {
	src, err := s.eventRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get event: %w", err)
	}

	now := s.now()
	clone := *src
	clone.ID = ""
	clone.Status = domain.StatusPlanned
	clone.Hidden = true
	clone.AttendeesOnQueue = 0
	clone.OfflineRegistrations = 0
	clone.TimeSlots = nil
	clone.CreatedAt = now
	clone.UpdatedAt = now

	if src.Kind == domain.KindSingleEvent && src.Own != nil {
		own := *src.Own
		own.ID = ""
		own.CreatedAt = now
		own.UpdatedAt = now
		if err := s.eventRepo.CreateTopic(ctx, &own); err != nil {
			return nil, fmt.Errorf("copy event content: %w", err)
		}
		clone.Own = &own
	}

	if err := s.eventRepo.Create(ctx, &clone); err != nil {
		return nil, fmt.Errorf("create event copy: %w", err)
	}

	for _, slot := range src.TimeSlots {
		dup := domain.NewTimeSlot(clone.ID, slot.Span, slot.Place, now, now)
		if err := s.timeSlotRepo.Create(ctx, dup); err != nil {
			return nil, fmt.Errorf("copy time slot: %w", err)
		}
		clone.TimeSlots = append(clone.TimeSlots, *dup)
	}
	return &clone, nil
}

func (s *eventService) AddTimeSlot(ctx context.Context, slot *domain.TimeSlot) error {
	if _, err := s.eventRepo.GetByID(ctx, slot.EventID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("get event: %w", err)
	}
	now := s.now()
	slot.CreatedAt = now
	slot.UpdatedAt = now
	if err := s.timeSlotRepo.Create(ctx, slot); err != nil {
		return fmt.Errorf("create time slot: %w", err)
	}
	return nil
}

func (s *eventService) AddSpeaker(ctx context.Context, speaker *domain.Speaker) error {
	if strings.TrimSpace(speaker.Name) == "" {
		return fmt.Errorf("%w: name is required", domain.ErrInvalidInput)
	}
	now := s.now()
	speaker.CreatedAt = now
	speaker.UpdatedAt = now
	if err := s.speakerRepo.Create(ctx, speaker); err != nil {
		return fmt.Errorf("create speaker: %w", err)
	}
	return nil
}

func (s *eventService) AssignSpeaker(ctx context.Context, eventID, speakerID string) error {
	if _, err := s.eventRepo.GetByID(ctx, eventID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("get event: %w", err)
	}
	if err := s.speakerRepo.LinkToEvent(ctx, eventID, speakerID); err != nil {
		return fmt.Errorf("assign speaker: %w", err)
	}
	return nil
}

func (s *eventService) ListSpeakers(ctx context.Context, eventID string) ([]*domain.Speaker, error) {
	speakers, err := s.speakerRepo.ListByEventID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("list speakers: %w", err)
	}
	if speakers == nil {
		speakers = []*domain.Speaker{}
	}
	return speakers, nil
}

func (s *eventService) CancellationDeadline(ctx context.Context, eventID string) (time.Time, error) {
	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return time.Time{}, domain.ErrNotFound
		}
		return time.Time{}, fmt.Errorf("get event: %w", err)
	}
	speakers, err := s.speakerRepo.ListByEventID(ctx, eventID)
	if err != nil {
		return time.Time{}, fmt.Errorf("list speakers: %w", err)
	}
	return domain.CancellationDeadline(event, speakers)
}
