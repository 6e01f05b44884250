package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"seminarmanager/internal/domain"
)

type mockEventService struct {
	event    *domain.Event
	events   []*domain.Event
	speakers []*domain.Speaker
	deadline time.Time
	err      error
}

func (m *mockEventService) CreateTopic(ctx context.Context, content *domain.EventContent) error {
	if m.err != nil {
		return m.err
	}
	content.ID = "topic-1"
	return nil
}

func (m *mockEventService) CreateSingleEvent(ctx context.Context, event *domain.Event) error {
	if m.err != nil {
		return m.err
	}
	event.ID = testEventID
	return nil
}

func (m *mockEventService) CreateEventDate(ctx context.Context, event *domain.Event) error {
	if m.err != nil {
		return m.err
	}
	event.ID = testEventID
	return nil
}

func (m *mockEventService) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.event, nil
}

func (m *mockEventService) List(ctx context.Context, p domain.PaginationParams) ([]*domain.Event, int, error) {
	if m.err != nil {
		return nil, 0, m.err
	}
	return m.events, len(m.events), nil
}

func (m *mockEventService) Hide(ctx context.Context, id string) error    { return m.err }
func (m *mockEventService) Unhide(ctx context.Context, id string) error  { return m.err }
func (m *mockEventService) Delete(ctx context.Context, id string) error  { return m.err }
func (m *mockEventService) Confirm(ctx context.Context, id string) error { return m.err }
func (m *mockEventService) Cancel(ctx context.Context, id string) error  { return m.err }

func (m *mockEventService) Duplicate(ctx context.Context, id string) (*domain.Event, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.event, nil
}

func (m *mockEventService) AddTimeSlot(ctx context.Context, slot *domain.TimeSlot) error {
	if m.err != nil {
		return m.err
	}
	slot.ID = "slot-1"
	return nil
}

func (m *mockEventService) AddSpeaker(ctx context.Context, speaker *domain.Speaker) error {
	if m.err != nil {
		return m.err
	}
	speaker.ID = "speaker-1"
	return nil
}

func (m *mockEventService) AssignSpeaker(ctx context.Context, eventID, speakerID string) error {
	return m.err
}

func (m *mockEventService) ListSpeakers(ctx context.Context, eventID string) ([]*domain.Speaker, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.speakers, nil
}

func (m *mockEventService) CancellationDeadline(ctx context.Context, eventID string) (time.Time, error) {
	if m.err != nil {
		return time.Time{}, m.err
	}
	return m.deadline, nil
}

func TestEventController_CreateTopic_Success(t *testing.T) {
	ctrl := NewEventController(testLogger(), &mockEventService{})

	body := `{"title":"Go Fundamentals","price_regular":"149.00"}`
	req := httptest.NewRequest(http.MethodPost, "/topics", strings.NewReader(body))
	w := httptest.NewRecorder()

	ctrl.CreateTopic(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("expected status %d, got %d: %s", http.StatusCreated, w.Code, w.Body.String())
	}
}

func TestEventController_CreateTopic_Validation(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"missing title", `{"price_regular":"149.00"}`},
		{"negative price", `{"title":"Go Fundamentals","price_regular":"-1"}`},
		{"malformed price", `{"title":"Go Fundamentals","price_regular":"cheap"}`},
		{"unknown field", `{"title":"Go Fundamentals","bogus":true}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := NewEventController(testLogger(), &mockEventService{})

			req := httptest.NewRequest(http.MethodPost, "/topics", strings.NewReader(tt.body))
			w := httptest.NewRecorder()

			ctrl.CreateTopic(w, req)

			if w.Code != http.StatusBadRequest {
				t.Fatalf("expected status %d, got %d: %s", http.StatusBadRequest, w.Code, w.Body.String())
			}
		})
	}
}

func TestEventController_GetEvent_NotFound(t *testing.T) {
	ctrl := NewEventController(testLogger(), &mockEventService{err: domain.ErrNotFound})

	req := httptest.NewRequest(http.MethodGet, "/events/"+testEventID, nil)
	req.SetPathValue("eventID", testEventID)
	w := httptest.NewRecorder()

	ctrl.GetEvent(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected status %d, got %d", http.StatusNotFound, w.Code)
	}
}

func TestEventController_GetEvent_Success(t *testing.T) {
	event := &domain.Event{ID: testEventID, Kind: domain.KindSingleEvent, Own: &domain.EventContent{ID: "content-1", Title: "Go Fundamentals"}}
	ctrl := NewEventController(testLogger(), &mockEventService{event: event})

	req := httptest.NewRequest(http.MethodGet, "/events/"+testEventID, nil)
	req.SetPathValue("eventID", testEventID)
	w := httptest.NewRecorder()

	ctrl.GetEvent(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d: %s", http.StatusOK, w.Code, w.Body.String())
	}
	var resp struct {
		Data EventDetail `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to unmarshal response: %v", err)
	}
	if resp.Data.Event == nil || resp.Data.Event.ID != testEventID {
		t.Fatalf("unexpected event payload: %+v", resp.Data)
	}
}

func TestEventController_ConfirmEvent(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"success", nil, http.StatusNoContent},
		{"wrong status", domain.ErrPreconditionFailed, http.StatusConflict},
		{"not found", domain.ErrNotFound, http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := NewEventController(testLogger(), &mockEventService{err: tt.err})

			req := httptest.NewRequest(http.MethodPost, "/events/"+testEventID+"/confirm", nil)
			req.SetPathValue("eventID", testEventID)
			w := httptest.NewRecorder()

			ctrl.ConfirmEvent(w, req)

			if w.Code != tt.wantStatus {
				t.Fatalf("expected status %d, got %d", tt.wantStatus, w.Code)
			}
		})
	}
}

func TestEventController_AddTimeSlot_EndBeforeBegin(t *testing.T) {
	ctrl := NewEventController(testLogger(), &mockEventService{})

	body := `{"begin_at":"2026-06-01T10:00:00Z","end_at":"2026-06-01T09:00:00Z"}`
	req := httptest.NewRequest(http.MethodPost, "/events/"+testEventID+"/time-slots", strings.NewReader(body))
	req.SetPathValue("eventID", testEventID)
	w := httptest.NewRecorder()

	ctrl.AddTimeSlot(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d: %s", http.StatusBadRequest, w.Code, w.Body.String())
	}
}
