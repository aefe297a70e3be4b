// Package http provides the HTTP surface of the mail gateway.
package http

import (
	"context"
	"net/http"
	"os"

	"github.com/oralcagan/pixel-pigeon/internal/domain/notification"
	"github.com/oralcagan/pixel-pigeon/internal/middleware"
)

const maxBodyBytes = 1 << 20 // 1 MiB is plenty for a title/message payload

// SendService is the application service behind POST /send.
type SendService interface {
	Send(ctx context.Context, recipients []string, req notification.Request) (*notification.SendResult, error)
}

// TokenStatus reports the state of the loaded token configuration.
// *tokens.Store satisfies this.
type TokenStatus interface {
	Loaded() bool
	Count() int
}

// Handlers bundles dependencies for HTTP handlers.
type Handlers struct {
	Sender   SendService
	Tokens   TokenStatus
	LogoPath string
	Version  string
}

// HandleSend handles POST /send: decode, validate, render, dispatch.
// Auth has already run; the recipient list is in the request context.
func (h *Handlers) HandleSend(w http.ResponseWriter, r *http.Request) {
	req, ok := readJSON[notification.Request](w, r, maxBodyBytes)
	if !ok {
		return
	}

	recipients := middleware.RecipientsFromContext(r.Context())

	res, err := h.Sender.Send(r.Context(), recipients, req)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, res)
}

// HandleHealth handles GET /health. Reports 503 when the token config
// never loaded; otherwise liveness plus config detail.
func (h *Handlers) HandleHealth(w http.ResponseWriter, _ *http.Request) {
	type healthStatus struct {
		Status           string `json:"status"`
		SMTPConfigured   bool   `json:"smtp_configured"`
		TokensConfigured int    `json:"tokens_configured"`
		LogoAvailable    bool   `json:"logo_available"`
	}

	if h.Tokens == nil || !h.Tokens.Loaded() {
		writeJSON(w, http.StatusServiceUnavailable, healthStatus{Status: "unavailable"})
		return
	}

	_, logoErr := os.Stat(h.LogoPath)
	writeJSON(w, http.StatusOK, healthStatus{
		Status:           "ok",
		SMTPConfigured:   true,
		TokensConfigured: h.Tokens.Count(),
		LogoAvailable:    logoErr == nil,
	})
}

// HandleRoot handles GET / with service information.
func (h *Handlers) HandleRoot(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"service": "pixel-pigeon",
		"version": h.Version,
		"status":  "active",
		"endpoints": map[string]string{
			"send":   "POST /send",
			"health": "GET /health",
		},
	})
}
