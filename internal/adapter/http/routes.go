package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// MountRoutes registers all routes on the given chi router. auth is the
// bearer-token middleware applied to the send endpoint only; health and
// the service-info root stay public.
func MountRoutes(r chi.Router, h *Handlers, auth func(http.Handler) http.Handler) {
	r.Get("/", h.HandleRoot)
	r.Get("/health", h.HandleHealth)
	r.With(auth).Post("/send", h.HandleSend)
}
