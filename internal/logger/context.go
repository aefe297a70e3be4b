package logger

import "context"

// contextKey is a private type to prevent collisions with other context keys.
type contextKey string

const (
	requestIDKey contextKey = "request_id"
	tokenHintKey contextKey = "token_hint"
)

// WithRequestID returns a new context with the given request ID stored.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// RequestID extracts the request ID from the context.
// Returns an empty string if no request ID is set.
func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}

// WithTokenHint returns a new context carrying a truncated bearer token,
// safe to include in log lines. Never store the full token here.
func WithTokenHint(ctx context.Context, hint string) context.Context {
	return context.WithValue(ctx, tokenHintKey, hint)
}

// TokenHint extracts the truncated bearer token from the context.
func TokenHint(ctx context.Context) string {
	hint, _ := ctx.Value(tokenHintKey).(string)
	return hint
}
