package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/oralcagan/pixel-pigeon/internal/logger"
)

type recipientsCtxKey struct{}

// RecipientResolver maps a bearer token to its configured recipient list.
// *tokens.Store satisfies this.
type RecipientResolver interface {
	Recipients(token string) ([]string, bool)
}

// Auth returns middleware that validates the Authorization bearer token
// against the configured token set. A missing or malformed header is 401;
// a well-formed but unknown token is 403. On success the resolved
// recipient list is stored in the request context, so the request keeps
// the mapping it resolved even if the config is reloaded mid-flight.
func Auth(resolver RecipientResolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				writeDetail(w, http.StatusUnauthorized, "authorization required")
				return
			}

			token := strings.TrimPrefix(authHeader, "Bearer ")
			if token == authHeader || token == "" {
				writeDetail(w, http.StatusUnauthorized, "invalid authorization header")
				return
			}

			recipients, ok := resolver.Recipients(token)
			if !ok {
				slog.Warn("invalid token used",
					"token", TruncateToken(token),
					"request_id", logger.RequestID(r.Context()),
				)
				writeDetail(w, http.StatusForbidden, "invalid token or unauthorized access")
				return
			}

			ctx := context.WithValue(r.Context(), recipientsCtxKey{}, recipients)
			ctx = logger.WithTokenHint(ctx, TruncateToken(token))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RecipientsFromContext returns the recipient list resolved during auth.
// Returns nil when the request did not pass through Auth.
func RecipientsFromContext(ctx context.Context) []string {
	recipients, _ := ctx.Value(recipientsCtxKey{}).([]string)
	return recipients
}

// TruncateToken shortens a token to its first 6 characters for log lines.
func TruncateToken(token string) string {
	if len(token) <= 6 {
		return token
	}
	return token[:6] + "..."
}

// writeDetail writes a JSON error body in the gateway's {"detail": ...}
// shape. Messages here are static strings, never user input.
func writeDetail(w http.ResponseWriter, status int, detail string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(`{"detail":"` + detail + `"}`))
}
