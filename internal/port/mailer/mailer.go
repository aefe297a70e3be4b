// Package mailer defines the mail relay port (interface) and message type.
package mailer

import "context"

// Message is a fully composed email ready for transmission.
type Message struct {
	From     string
	To       []string
	Subject  string
	HTML     string
	Text     string
	LogoPath string // inline attachment referenced as cid:<basename>, empty to skip
}

// Mailer transmits composed messages through an external mail relay.
// A single Send call is one atomic transmit; implementations do not retry.
type Mailer interface {
	Send(ctx context.Context, msg Message) error
}
