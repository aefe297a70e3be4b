// Package notification defines the transient types that flow through a
// single send request: the inbound payload, the rendered email, and the
// result returned to the caller.
package notification

import (
	"fmt"
	"strings"

	"github.com/oralcagan/pixel-pigeon/internal/domain"
)

// Request is a title/message payload submitted for delivery.
type Request struct {
	Title   string `json:"title"`
	Message string `json:"message"`
}

// Validate checks that both fields are present and non-empty.
func (r Request) Validate() error {
	if strings.TrimSpace(r.Title) == "" || strings.TrimSpace(r.Message) == "" {
		return fmt.Errorf("%w: both 'title' and 'message' fields are required", domain.ErrValidation)
	}
	return nil
}

// Rendered is the HTML + plain-text pair produced from a Request,
// ready for transmission.
type Rendered struct {
	Subject  string
	HTML     string
	Text     string
	LogoPath string // empty when no inline logo is attached
}

// SendResult is returned to the caller after a successful dispatch.
type SendResult struct {
	Status     string   `json:"status"`
	Recipients []string `json:"recipients"`
}
