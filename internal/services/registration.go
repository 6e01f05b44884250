package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"seminarmanager/internal/domain"
)

type registrationService struct {
	eventRepo        domain.EventRepository
	registrationRepo domain.RegistrationRepository
	userRepo         domain.UserRepository
	notifier         domain.NotificationService
	settings         domain.RegistrationSettings
	now              func() time.Time
}

// NewRegistrationService creates a RegistrationService. Capacity decisions
// read a snapshot of the registration counts; concurrent sign-ups for the
// same event may briefly overshoot capacity onto the waiting queue.
// now may be nil, in which case time.Now is used.
func NewRegistrationService(
	eventRepo domain.EventRepository,
	registrationRepo domain.RegistrationRepository,
	userRepo domain.UserRepository,
	notifier domain.NotificationService,
	settings domain.RegistrationSettings,
	now func() time.Time,
) domain.RegistrationService {
	if now == nil {
		now = time.Now
	}
	return &registrationService{
		eventRepo:        eventRepo,
		registrationRepo: registrationRepo,
		userRepo:         userRepo,
		notifier:         notifier,
		settings:         settings,
		now:              now,
	}
}

// ledgerFor builds the capacity ledger for an event: the seat counts of its
// active registrations plus the offline registrations recorded on the event
// itself, which occupy regular seats without a registration row.
func (s *registrationService) ledgerFor(ctx context.Context, event *domain.Event) (domain.CapacityLedger, error) {
	ledger, err := s.registrationRepo.CountActiveByEventID(ctx, event.ID)
	if err != nil {
		return domain.CapacityLedger{}, fmt.Errorf("count registrations: %w", err)
	}
	ledger.RegularSeatsTaken += event.OfflineRegistrations
	return ledger, nil
}

func (s *registrationService) Register(ctx context.Context, eventID, userID string, seats int) (*domain.Registration, error) {
	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get event: %w", err)
	}

	ledger, err := s.ledgerFor(ctx, event)
	if err != nil {
		return nil, err
	}

	now := s.now()
	if decision := domain.CanSomebodyRegister(event, ledger, now, s.settings); !decision.Allowed {
		return nil, &domain.RegistrationRefusedError{Reason: decision.Reason, OpensAt: decision.OpensAt}
	}

	if !event.Content().AllowsMultipleRegistrations {
		if _, err := s.registrationRepo.GetActiveByEventAndUser(ctx, eventID, userID); err == nil {
			return nil, domain.ErrAlreadyRegistered
		} else if !errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("check existing registration: %w", err)
		}
	}

	others, err := s.registeredEvents(ctx, userID, eventID)
	if err != nil {
		return nil, err
	}
	if domain.IsRegistrationBlocked(event, others, s.settings) {
		return nil, &domain.RegistrationRefusedError{Reason: domain.ReasonScheduleConflict}
	}

	onQueue := domain.IsFull(event, ledger) && event.HasWaitingList
	reg, err := domain.NewRegistration(eventID, userID, seats, onQueue, now, now)
	if err != nil {
		return nil, err
	}
	if err := s.registrationRepo.Create(ctx, reg); err != nil {
		return nil, fmt.Errorf("create registration: %w", err)
	}

	if onQueue {
		if err := s.eventRepo.UpdateQueueCount(ctx, eventID, ledger.QueueSeatsTaken+seats); err != nil {
			return nil, fmt.Errorf("update queue count: %w", err)
		}
	}

	// Notifications are best effort: the registration stands either way.
	if user, err := s.userRepo.GetByID(ctx, userID); err == nil {
		_ = s.notifier.RegistrationConfirmed(ctx, user, event, reg)
	}
	return reg, nil
}

// registeredEvents loads the events behind the user's other active
// registrations for the collision check. Events that vanished in the
// meantime are skipped.
func (s *registrationService) registeredEvents(ctx context.Context, userID, excludeEventID string) ([]*domain.Event, error) {
	regs, err := s.registrationRepo.ListActiveByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list registrations: %w", err)
	}

	eventsByID := make(map[string]*domain.Event)
	var events []*domain.Event
	for _, reg := range regs {
		if reg.EventID == excludeEventID {
			continue
		}
		if _, ok := eventsByID[reg.EventID]; ok {
			continue
		}
		ev, err := s.eventRepo.GetByID(ctx, reg.EventID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				continue
			}
			return nil, fmt.Errorf("get registered event: %w", err)
		}
		eventsByID[reg.EventID] = ev
		events = append(events, ev)
	}
	return events, nil
}

func (s *registrationService) Unregister(ctx context.Context, registrationID, userID string) error {
	reg, err := s.registrationRepo.GetByID(ctx, registrationID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("get registration: %w", err)
	}
	if reg.UserID != userID {
		return domain.ErrForbidden
	}
	if !reg.IsActive() {
		return domain.ErrNotFound
	}

	event, err := s.eventRepo.GetByID(ctx, reg.EventID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("get event: %w", err)
	}

	ledger, err := s.ledgerFor(ctx, event)
	if err != nil {
		return err
	}

	now := s.now()
	if !domain.IsUnregistrationPossible(event, ledger, now, s.settings) {
		return domain.ErrUnregistrationNotPossible
	}

	if err := s.registrationRepo.MarkUnregistered(ctx, registrationID, now); err != nil {
		return fmt.Errorf("mark unregistered: %w", err)
	}

	queueSeats := ledger.QueueSeatsTaken
	if reg.OnQueue {
		queueSeats -= reg.Seats
	} else {
		// A regular seat freed up; move the oldest queued registration in.
		promoted, err := s.registrationRepo.PromoteFirstQueued(ctx, reg.EventID, now)
		switch {
		case err == nil:
			queueSeats -= promoted.Seats
			if user, err := s.userRepo.GetByID(ctx, promoted.UserID); err == nil {
				_ = s.notifier.PromotedFromQueue(ctx, user, event)
			}
		case errors.Is(err, domain.ErrNotFound):
			// Queue was empty.
		default:
			return fmt.Errorf("promote queued registration: %w", err)
		}
	}
	if queueSeats < 0 {
		queueSeats = 0
	}
	if queueSeats != ledger.QueueSeatsTaken {
		if err := s.eventRepo.UpdateQueueCount(ctx, reg.EventID, queueSeats); err != nil {
			return fmt.Errorf("update queue count: %w", err)
		}
	}

	if user, err := s.userRepo.GetByID(ctx, userID); err == nil {
		_ = s.notifier.RegistrationWithdrawn(ctx, user, event)
	}
	return nil
}

func (s *registrationService) ConfirmPayment(ctx context.Context, registrationID string) (*domain.Registration, error) {
	reg, err := s.registrationRepo.GetByID(ctx, registrationID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get registration: %w", err)
	}
	if !reg.IsActive() {
		return nil, fmt.Errorf("%w: registration is withdrawn", domain.ErrPreconditionFailed)
	}
	if reg.PaidAt != nil {
		return reg, nil
	}

	now := s.now()
	if err := s.registrationRepo.SetPaid(ctx, registrationID, now); err != nil {
		return nil, fmt.Errorf("set paid: %w", err)
	}
	reg.PaidAt = &now
	reg.UpdatedAt = now
	return reg, nil
}

func (s *registrationService) ListMyRegistrations(ctx context.Context, userID string) ([]*domain.RegistrationWithEvent, error) {
	regs, err := s.registrationRepo.ListActiveByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list registrations: %w", err)
	}

	eventsByID := make(map[string]*domain.Event)
	result := []*domain.RegistrationWithEvent{}
	for _, reg := range regs {
		ev, ok := eventsByID[reg.EventID]
		if !ok {
			ev, err = s.eventRepo.GetByID(ctx, reg.EventID)
			if err != nil {
				if errors.Is(err, domain.ErrNotFound) {
					// Event deleted but the registration remains; skip it.
					continue
				}
				return nil, fmt.Errorf("get event for registration: %w", err)
			}
			eventsByID[reg.EventID] = ev
		}
		result = append(result, &domain.RegistrationWithEvent{
			Registration: reg,
			Event:        ev,
		})
	}
	return result, nil
}

func (s *registrationService) Eligibility(ctx context.Context, eventID string) (domain.RegistrationDecision, error) {
	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.RegistrationDecision{}, domain.ErrNotFound
		}
		return domain.RegistrationDecision{}, fmt.Errorf("get event: %w", err)
	}
	ledger, err := s.ledgerFor(ctx, event)
	if err != nil {
		return domain.RegistrationDecision{}, err
	}
	return domain.CanSomebodyRegister(event, ledger, s.now(), s.settings), nil
}

func (s *registrationService) Quote(ctx context.Context, eventID string, category domain.AttendeeCategory) (domain.PriceQuote, error) {
	if category != domain.CategoryRegular && category != domain.CategorySpecial {
		return domain.PriceQuote{}, fmt.Errorf("%w: unknown attendee category %q", domain.ErrInvalidInput, category)
	}
	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.PriceQuote{}, domain.ErrNotFound
		}
		return domain.PriceQuote{}, fmt.Errorf("get event: %w", err)
	}
	return domain.CurrentPrice(event, s.now(), category), nil
}
