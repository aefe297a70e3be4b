package email

import (
	"testing"
	"time"

	gomail "gopkg.in/mail.v2"
)

func TestNewDialerConfig(t *testing.T) {
	m := New(Config{
		Host:     "smtp.example.com",
		Port:     587,
		Username: "user",
		Password: "pass",
		Timeout:  10 * time.Second,
	})

	if m.dialer.Host != "smtp.example.com" || m.dialer.Port != 587 {
		t.Errorf("dialer addr = %s:%d, want smtp.example.com:587", m.dialer.Host, m.dialer.Port)
	}
	if m.dialer.StartTLSPolicy != gomail.MandatoryStartTLS {
		t.Errorf("StartTLSPolicy = %v, want MandatoryStartTLS", m.dialer.StartTLSPolicy)
	}
	if m.dialer.Timeout != 10*time.Second {
		t.Errorf("Timeout = %v, want 10s", m.dialer.Timeout)
	}
}

func TestNewKeepsDefaultTimeoutWhenUnset(t *testing.T) {
	m := New(Config{Host: "smtp.example.com", Port: 587})

	// gomail's own default applies when no timeout is configured.
	if m.dialer.Timeout == 0 {
		t.Error("expected a non-zero dialer default timeout")
	}
}
