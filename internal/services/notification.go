package services

import (
	"context"
	"fmt"
	"log/slog"

	"seminarmanager/internal/domain"
)

type notificationService struct {
	mailer domain.Mailer
	logger *slog.Logger
}

// NewNotificationService returns a NotificationService sending short
// plain-text notices through the given Mailer.
func NewNotificationService(mailer domain.Mailer, logger *slog.Logger) domain.NotificationService {
	return &notificationService{mailer: mailer, logger: logger}
}

func (s *notificationService) RegistrationConfirmed(ctx context.Context, user *domain.User, event *domain.Event, reg *domain.Registration) error {
	title := event.Content().Title
	subject := fmt.Sprintf("Registration received: %s", title)
	body := fmt.Sprintf("Hello %s,\n\nwe received your registration for %q (%d seat(s)).",
		user.Name, title, reg.Seats)
	if reg.OnQueue {
		body += "\nThe event is currently full, so you are on the waiting list."
	}
	if event.Span.HasBegin() {
		body += fmt.Sprintf("\nThe event begins on %s.", event.Span.Begin.Format("2006-01-02 15:04"))
	}
	return s.send(user.Email, subject, body)
}

func (s *notificationService) RegistrationWithdrawn(ctx context.Context, user *domain.User, event *domain.Event) error {
	title := event.Content().Title
	subject := fmt.Sprintf("Registration withdrawn: %s", title)
	body := fmt.Sprintf("Hello %s,\n\nyour registration for %q has been withdrawn.", user.Name, title)
	return s.send(user.Email, subject, body)
}

func (s *notificationService) PromotedFromQueue(ctx context.Context, user *domain.User, event *domain.Event) error {
	title := event.Content().Title
	subject := fmt.Sprintf("You got a seat: %s", title)
	body := fmt.Sprintf("Hello %s,\n\na seat for %q has opened up and your waiting-list registration moved in.",
		user.Name, title)
	return s.send(user.Email, subject, body)
}

func (s *notificationService) send(to, subject, body string) error {
	if err := s.mailer.Send(to, subject, body); err != nil {
		s.logger.Error("failed to send notification", "to", to, "subject", subject, "error", err)
		return fmt.Errorf("send notification: %w", err)
	}
	s.logger.Info("notification sent", "to", to, "subject", subject)
	return nil
}
