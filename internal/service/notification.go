package service

import (
	"context"
	"errors"
	"strings"

	"sigtransportes/internal/mail"
)

// ErrMissingFields is returned when any of the four notification fields is
// empty; nothing is sent in that case.
var ErrMissingFields = errors.New("all notification fields are required")

// NotificationService validates notification forms and hands them to the
// mail transport. Fire-and-forget: a transport failure is surfaced to the
// acting user and nothing is retried.
type NotificationService interface {
	Send(ctx context.Context, from, to, subject, body string) error
}

type notificationService struct {
	mailer mail.Mailer
}

// NewNotificationService constructs a new NotificationService.
func NewNotificationService(mailer mail.Mailer) NotificationService {
	return &notificationService{mailer: mailer}
}

func (s *notificationService) Send(ctx context.Context, from, to, subject, body string) error {
	from = strings.TrimSpace(from)
	to = strings.TrimSpace(to)
	subject = strings.TrimSpace(subject)
	if from == "" || to == "" || subject == "" || strings.TrimSpace(body) == "" {
		return ErrMissingFields
	}
	return s.mailer.Send(ctx, mail.Message{
		From:    from,
		To:      to,
		Subject: subject,
		Body:    body,
	})
}
