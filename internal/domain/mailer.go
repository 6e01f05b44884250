package domain

import "context"

// Mailer sends plain-text mail. Implementations: SES, noop.
type Mailer interface {
	Send(to, subject, textBody string) error
}

// NotificationService sends the short registration lifecycle notices.
// Failures here must never fail the underlying operation.
type NotificationService interface {
	RegistrationConfirmed(ctx context.Context, user *User, event *Event, reg *Registration) error
	RegistrationWithdrawn(ctx context.Context, user *User, event *Event) error
	PromotedFromQueue(ctx context.Context, user *User, event *Event) error
}
