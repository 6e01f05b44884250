package controllers

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"seminarmanager/internal/delivery/http/helpers"
	"seminarmanager/internal/delivery/http/middleware"
	"seminarmanager/internal/domain"
)

const testEventID = "7b2e6a3e-8f0c-4c43-9a51-d1a09cb1e001"
const testRegistrationID = "7b2e6a3e-8f0c-4c43-9a51-d1a09cb1e002"

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))
}

type mockRegistrationService struct {
	reg          *domain.Registration
	registerErr  error
	unregisterErr error
	decision     domain.RegistrationDecision
	quote        domain.PriceQuote
	err          error
}

func (m *mockRegistrationService) Register(ctx context.Context, eventID, userID string, seats int) (*domain.Registration, error) {
	if m.registerErr != nil {
		return nil, m.registerErr
	}
	return m.reg, nil
}

func (m *mockRegistrationService) Unregister(ctx context.Context, registrationID, userID string) error {
	return m.unregisterErr
}

func (m *mockRegistrationService) ConfirmPayment(ctx context.Context, registrationID string) (*domain.Registration, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.reg, nil
}

func (m *mockRegistrationService) ListMyRegistrations(ctx context.Context, userID string) ([]*domain.RegistrationWithEvent, error) {
	if m.err != nil {
		return nil, m.err
	}
	return []*domain.RegistrationWithEvent{}, nil
}

func (m *mockRegistrationService) Eligibility(ctx context.Context, eventID string) (domain.RegistrationDecision, error) {
	if m.err != nil {
		return domain.RegistrationDecision{}, m.err
	}
	return m.decision, nil
}

func (m *mockRegistrationService) Quote(ctx context.Context, eventID string, category domain.AttendeeCategory) (domain.PriceQuote, error) {
	if m.err != nil {
		return domain.PriceQuote{}, m.err
	}
	return m.quote, nil
}

func TestRegistrationController_Register_Success(t *testing.T) {
	svc := &mockRegistrationService{
		reg: &domain.Registration{ID: testRegistrationID, EventID: testEventID, UserID: "u1", Seats: 1},
	}
	ctrl := NewRegistrationController(testLogger(), svc)

	req := httptest.NewRequest(http.MethodPost, "/events/"+testEventID+"/registrations", strings.NewReader(`{"seats":1}`))
	req.SetPathValue("eventID", testEventID)
	req = req.WithContext(middleware.SetUserID(req.Context(), "u1"))
	w := httptest.NewRecorder()

	ctrl.Register(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("expected status %d, got %d: %s", http.StatusCreated, w.Code, w.Body.String())
	}
}

func TestRegistrationController_Register_Unauthorized(t *testing.T) {
	ctrl := NewRegistrationController(testLogger(), &mockRegistrationService{})

	req := httptest.NewRequest(http.MethodPost, "/events/"+testEventID+"/registrations", strings.NewReader(`{}`))
	req.SetPathValue("eventID", testEventID)
	w := httptest.NewRecorder()

	ctrl.Register(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected status %d, got %d", http.StatusUnauthorized, w.Code)
	}
}

func TestRegistrationController_Register_InvalidEventID(t *testing.T) {
	ctrl := NewRegistrationController(testLogger(), &mockRegistrationService{})

	req := httptest.NewRequest(http.MethodPost, "/events/not-a-uuid/registrations", strings.NewReader(`{}`))
	req.SetPathValue("eventID", "not-a-uuid")
	req = req.WithContext(middleware.SetUserID(req.Context(), "u1"))
	w := httptest.NewRecorder()

	ctrl.Register(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d", http.StatusBadRequest, w.Code)
	}
}

func TestRegistrationController_Register_Refused(t *testing.T) {
	svc := &mockRegistrationService{
		registerErr: &domain.RegistrationRefusedError{Reason: domain.ReasonNoVacancies},
	}
	ctrl := NewRegistrationController(testLogger(), svc)

	req := httptest.NewRequest(http.MethodPost, "/events/"+testEventID+"/registrations", strings.NewReader(`{"seats":1}`))
	req.SetPathValue("eventID", testEventID)
	req = req.WithContext(middleware.SetUserID(req.Context(), "u1"))
	w := httptest.NewRecorder()

	ctrl.Register(w, req)

	if w.Code != http.StatusConflict {
		t.Fatalf("expected status %d, got %d", http.StatusConflict, w.Code)
	}
	var resp helpers.APIResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to unmarshal response: %v", err)
	}
	if resp.Error == nil || resp.Error.Code != helpers.ErrCodeRegistrationDenied {
		t.Fatalf("expected error code %q, got %+v", helpers.ErrCodeRegistrationDenied, resp.Error)
	}
	if resp.Error.Message != string(domain.ReasonNoVacancies) {
		t.Fatalf("expected reason %q in message, got %q", domain.ReasonNoVacancies, resp.Error.Message)
	}
}

func TestRegistrationController_Register_AlreadyRegistered(t *testing.T) {
	svc := &mockRegistrationService{registerErr: domain.ErrAlreadyRegistered}
	ctrl := NewRegistrationController(testLogger(), svc)

	req := httptest.NewRequest(http.MethodPost, "/events/"+testEventID+"/registrations", strings.NewReader(`{"seats":1}`))
	req.SetPathValue("eventID", testEventID)
	req = req.WithContext(middleware.SetUserID(req.Context(), "u1"))
	w := httptest.NewRecorder()

	ctrl.Register(w, req)

	if w.Code != http.StatusConflict {
		t.Fatalf("expected status %d, got %d", http.StatusConflict, w.Code)
	}
}

func TestRegistrationController_Unregister(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"success", nil, http.StatusNoContent},
		{"forbidden", domain.ErrForbidden, http.StatusForbidden},
		{"not found", domain.ErrNotFound, http.StatusNotFound},
		{"not possible", domain.ErrUnregistrationNotPossible, http.StatusConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := NewRegistrationController(testLogger(), &mockRegistrationService{unregisterErr: tt.err})

			req := httptest.NewRequest(http.MethodDelete, "/registrations/"+testRegistrationID, nil)
			req.SetPathValue("registrationID", testRegistrationID)
			req = req.WithContext(middleware.SetUserID(req.Context(), "u1"))
			w := httptest.NewRecorder()

			ctrl.Unregister(w, req)

			if w.Code != tt.wantStatus {
				t.Fatalf("expected status %d, got %d", tt.wantStatus, w.Code)
			}
		})
	}
}

func TestRegistrationController_Eligibility(t *testing.T) {
	svc := &mockRegistrationService{
		decision: domain.RegistrationDecision{Reason: domain.ReasonRegistrationClosed},
	}
	ctrl := NewRegistrationController(testLogger(), svc)

	req := httptest.NewRequest(http.MethodGet, "/events/"+testEventID+"/eligibility", nil)
	req.SetPathValue("eventID", testEventID)
	w := httptest.NewRecorder()

	ctrl.Eligibility(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, w.Code)
	}
	var resp struct {
		Data domain.RegistrationDecision `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to unmarshal response: %v", err)
	}
	if resp.Data.Allowed || resp.Data.Reason != domain.ReasonRegistrationClosed {
		t.Fatalf("unexpected decision: %+v", resp.Data)
	}
}

func TestRegistrationController_Quote_InvalidCategory(t *testing.T) {
	svc := &mockRegistrationService{err: domain.ErrInvalidInput}
	ctrl := NewRegistrationController(testLogger(), svc)

	req := httptest.NewRequest(http.MethodGet, "/events/"+testEventID+"/price?category=vip", nil)
	req.SetPathValue("eventID", testEventID)
	w := httptest.NewRecorder()

	ctrl.Quote(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d", http.StatusBadRequest, w.Code)
	}
}
