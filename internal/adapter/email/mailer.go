// Package email implements the mailer port over SMTP.
package email

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	gomail "gopkg.in/mail.v2"

	"github.com/oralcagan/pixel-pigeon/internal/port/mailer"
)

// Config holds SMTP connection settings.
type Config struct {
	Host     string
	Port     int
	Username string
	Password string
	Timeout  time.Duration
}

// Mailer sends messages through an SMTP relay. The session uses mandatory
// STARTTLS and authenticates with the configured credentials; the dialer
// timeout bounds the whole dial-and-send exchange.
type Mailer struct {
	dialer *gomail.Dialer
	host   string
}

// New creates an SMTP mailer from the given config.
func New(cfg Config) *Mailer {
	d := gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password)
	d.StartTLSPolicy = gomail.MandatoryStartTLS
	if cfg.Timeout > 0 {
		d.Timeout = cfg.Timeout
	}
	return &Mailer{dialer: d, host: cfg.Host}
}

// Send composes a multipart message (plain text with an HTML alternative,
// plus an optional inline logo) and transmits it in a single SMTP session.
func (m *Mailer) Send(_ context.Context, msg mailer.Message) error {
	em := gomail.NewMessage()
	em.SetHeader("From", msg.From)
	em.SetHeader("To", msg.To...)
	em.SetHeader("Subject", msg.Subject)
	em.SetHeader("Message-ID", fmt.Sprintf("<%s@%s>", uuid.NewString(), m.host))
	em.SetBody("text/plain", msg.Text)
	em.AddAlternative("text/html", msg.HTML)
	if msg.LogoPath != "" {
		em.Embed(msg.LogoPath)
	}

	if err := m.dialer.DialAndSend(em); err != nil {
		return fmt.Errorf("smtp send: %w", err)
	}
	return nil
}
