package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"seminarmanager/internal/domain"
)

// ProgramImportResult summarizes one import run.
type ProgramImportResult struct {
	TopicsCreated int `json:"topics_created"`
	DatesCreated  int `json:"dates_created"`
	SlotsCreated  int `json:"slots_created"`
}

// ProgramImporter materializes an external program feed into topics, event
// dates and time slots.
type ProgramImporter interface {
	Import(ctx context.Context, feedURL string) (ProgramImportResult, error)
}

type programImportUseCase struct {
	fetcher        ProgramFetcher
	eventRepo      domain.EventRepository
	timeSlotRepo   domain.TimeSlotRepository
	contextTimeout time.Duration
}

func NewProgramImportUseCase(
	fetcher ProgramFetcher,
	eventRepo domain.EventRepository,
	timeSlotRepo domain.TimeSlotRepository,
	timeout time.Duration,
) ProgramImporter {
	return &programImportUseCase{
		fetcher:        fetcher,
		eventRepo:      eventRepo,
		timeSlotRepo:   timeSlotRepo,
		contextTimeout: timeout,
	}
}

// Import fetches the feed and creates one topic per feed topic, one date per
// program date, and time slots per date. Imported dates start hidden so an
// editor can review them before they go live. Feed topics without a title
// are skipped.
func (uc *programImportUseCase) Import(ctx context.Context, feedURL string) (ProgramImportResult, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.contextTimeout)
	defer cancel()

	feed, err := uc.fetcher.Fetch(ctx, feedURL)
	if err != nil {
		return ProgramImportResult{}, err
	}

	var result ProgramImportResult
	now := time.Now()
	for _, pt := range feed.Topics {
		if strings.TrimSpace(pt.Title) == "" {
			continue
		}
		topic := domain.NewEventContent(pt.Title, pt.Description, pt.EventType, now, now)
		if err := uc.eventRepo.CreateTopic(ctx, topic); err != nil {
			return result, fmt.Errorf("failed to create topic %s: %w", pt.Title, err)
		}
		result.TopicsCreated++

		for _, pd := range pt.Dates {
			span, err := domain.NewTimespan(pd.BeginsAt, derefTime(pd.EndsAt))
			if err != nil {
				return result, fmt.Errorf("invalid date span for topic %s: %w", pt.Title, err)
			}
			event := domain.NewEventDate(topic.ID, span, now, now)
			event.Topic = topic
			event.NeedsRegistration = pd.NeedsRegistration
			event.MaxAttendees = pd.MaxAttendees
			event.Hidden = true
			if err := uc.eventRepo.Create(ctx, event); err != nil {
				return result, fmt.Errorf("failed to create date for topic %s: %w", pt.Title, err)
			}
			result.DatesCreated++

			for _, ps := range pd.Slots {
				span, err := domain.NewTimespan(ps.BeginsAt, derefTime(ps.EndsAt))
				if err != nil {
					return result, fmt.Errorf("invalid slot span for topic %s: %w", pt.Title, err)
				}
				slot := domain.NewTimeSlot(event.ID, span, ps.Place, now, now)
				if err := uc.timeSlotRepo.Create(ctx, slot); err != nil {
					return result, fmt.Errorf("failed to create time slot for topic %s: %w", pt.Title, err)
				}
				result.SlotsCreated++
			}
		}
	}
	return result, nil
}

func derefTime(t *time.Time) time.Time {
	if t == nil {
		return time.Time{}
	}
	return *t
}
