package usecase

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"seminarmanager/internal/domain"
)

type fakeEventRepo struct {
	topics []*domain.EventContent
	events []*domain.Event
}

func (f *fakeEventRepo) CreateTopic(ctx context.Context, content *domain.EventContent) error {
	content.ID = fmt.Sprintf("topic-%d", len(f.topics)+1)
	f.topics = append(f.topics, content)
	return nil
}

func (f *fakeEventRepo) GetTopicByID(ctx context.Context, id string) (*domain.EventContent, error) {
	return nil, domain.ErrNotFound
}

func (f *fakeEventRepo) SetTopicDeleted(ctx context.Context, id string, deleted bool) error {
	return nil
}

func (f *fakeEventRepo) Create(ctx context.Context, event *domain.Event) error {
	event.ID = fmt.Sprintf("ev-%d", len(f.events)+1)
	f.events = append(f.events, event)
	return nil
}

func (f *fakeEventRepo) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	return nil, domain.ErrNotFound
}

func (f *fakeEventRepo) List(ctx context.Context, p domain.PaginationParams) ([]*domain.Event, int, error) {
	return nil, 0, nil
}

func (f *fakeEventRepo) UpdateStatus(ctx context.Context, id string, status domain.EventStatus) error {
	return nil
}

func (f *fakeEventRepo) SetHidden(ctx context.Context, id string, hidden bool) error { return nil }
func (f *fakeEventRepo) SetDeleted(ctx context.Context, id string, deleted bool) error {
	return nil
}
func (f *fakeEventRepo) UpdateQueueCount(ctx context.Context, id string, n int) error { return nil }

type fakeTimeSlotRepo struct {
	slots []*domain.TimeSlot
}

func (f *fakeTimeSlotRepo) Create(ctx context.Context, slot *domain.TimeSlot) error {
	slot.ID = fmt.Sprintf("slot-%d", len(f.slots)+1)
	f.slots = append(f.slots, slot)
	return nil
}

func (f *fakeTimeSlotRepo) ListByEventID(ctx context.Context, eventID string) ([]domain.TimeSlot, error) {
	return nil, nil
}

func (f *fakeTimeSlotRepo) DeleteByEventID(ctx context.Context, eventID string) error { return nil }

const feedBody = `{
	"topics": [
		{
			"title": "Go Fundamentals",
			"description": "Three days of Go.",
			"event_type": "workshop",
			"dates": [
				{
					"beginsAt": "2026-09-07T09:00:00Z",
					"endsAt": "2026-09-09T17:00:00Z",
					"needsRegistration": true,
					"maxAttendees": 16,
					"slots": [
						{"beginsAt": "2026-09-07T09:00:00Z", "endsAt": "2026-09-07T17:00:00Z", "place": "Room A"},
						{"beginsAt": "2026-09-08T09:00:00Z", "endsAt": "2026-09-08T17:00:00Z", "place": "Room A"}
					]
				}
			]
		},
		{
			"title": "",
			"dates": [{"beginsAt": "2026-10-01T09:00:00Z"}]
		},
		{
			"title": "Evening Talk",
			"event_type": "talk",
			"dates": []
		}
	]
}`

func TestProgramImport(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(feedBody))
	}))
	defer srv.Close()

	eventRepo := &fakeEventRepo{}
	slotRepo := &fakeTimeSlotRepo{}
	uc := NewProgramImportUseCase(NewHTTPFetcher(srv.Client()), eventRepo, slotRepo, 5*time.Second)

	result, err := uc.Import(context.Background(), srv.URL)
	require.NoError(t, err)
	require.Equal(t, ProgramImportResult{TopicsCreated: 2, DatesCreated: 1, SlotsCreated: 2}, result)

	// The untitled feed topic is skipped entirely.
	require.Len(t, eventRepo.topics, 2)
	require.Equal(t, "Go Fundamentals", eventRepo.topics[0].Title)

	require.Len(t, eventRepo.events, 1)
	date := eventRepo.events[0]
	require.Equal(t, domain.KindEventDate, date.Kind)
	require.Equal(t, "topic-1", date.TopicID)
	require.True(t, date.Hidden)
	require.True(t, date.NeedsRegistration)
	require.Equal(t, 16, date.MaxAttendees)
	require.Equal(t, time.Date(2026, 9, 7, 9, 0, 0, 0, time.UTC), date.Span.Begin)

	require.Len(t, slotRepo.slots, 2)
	require.Equal(t, "ev-1", slotRepo.slots[0].EventID)
	require.Equal(t, "Room A", slotRepo.slots[0].Place)
}

func TestProgramImport_FeedErrors(t *testing.T) {
	t.Run("non-200 status", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer srv.Close()

		uc := NewProgramImportUseCase(NewHTTPFetcher(srv.Client()), &fakeEventRepo{}, &fakeTimeSlotRepo{}, 5*time.Second)
		_, err := uc.Import(context.Background(), srv.URL)
		require.Error(t, err)
		require.Contains(t, err.Error(), "502")
	})

	t.Run("malformed body", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("not json"))
		}))
		defer srv.Close()

		uc := NewProgramImportUseCase(NewHTTPFetcher(srv.Client()), &fakeEventRepo{}, &fakeTimeSlotRepo{}, 5*time.Second)
		_, err := uc.Import(context.Background(), srv.URL)
		require.Error(t, err)
	})
}
