package mail

import (
	"context"
	"fmt"

	gomail "github.com/wneessen/go-mail"

	"sigtransportes/internal/config"
)

// smtpMailer implements Mailer over SMTP with a mandatory STARTTLS upgrade
// and plain authentication, matching what common relays (gmail on 587) expect.
type smtpMailer struct {
	cfg config.SMTPConfig
}

// NewSMTP creates a Mailer for the configured relay. Credentials may be
// empty; in that case sends will fail relay authentication, which is the
// documented default until SMTP_USERNAME/SMTP_PASSWORD are provided.
func NewSMTP(cfg config.SMTPConfig) Mailer {
	return &smtpMailer{cfg: cfg}
}

func (s *smtpMailer) Send(ctx context.Context, msg Message) error {
	m := gomail.NewMsg()
	if err := m.From(msg.From); err != nil {
		return fmt.Errorf("invalid sender address: %w", err)
	}
	if err := m.To(msg.To); err != nil {
		return fmt.Errorf("invalid recipient address: %w", err)
	}
	m.Subject(msg.Subject)
	m.SetBodyString(gomail.TypeTextPlain, msg.Body)

	client, err := gomail.NewClient(s.cfg.Host,
		gomail.WithPort(s.cfg.Port),
		gomail.WithTLSPolicy(gomail.TLSMandatory),
		gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
		gomail.WithUsername(s.cfg.Username),
		gomail.WithPassword(s.cfg.Password),
	)
	if err != nil {
		return fmt.Errorf("create smtp client: %w", err)
	}

	if err := client.DialAndSendWithContext(ctx, m); err != nil {
		return fmt.Errorf("send mail: %w", err)
	}
	return nil
}
