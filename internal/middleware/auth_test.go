package middleware_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/oralcagan/pixel-pigeon/internal/middleware"
)

// staticResolver implements middleware.RecipientResolver for testing.
type staticResolver map[string][]string

func (s staticResolver) Recipients(token string) ([]string, bool) {
	r, ok := s[token]
	return r, ok
}

func newAuthHandler(t *testing.T, resolver staticResolver) http.Handler {
	t.Helper()
	return middleware.Auth(resolver)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		recipients := middleware.RecipientsFromContext(r.Context())
		_ = json.NewEncoder(w).Encode(recipients)
	}))
}

func TestAuth_NoHeader_Returns401(t *testing.T) {
	handler := newAuthHandler(t, staticResolver{})

	req := httptest.NewRequest(http.MethodPost, "/send", http.NoBody)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
}

func TestAuth_MalformedHeader_Returns401(t *testing.T) {
	handler := newAuthHandler(t, staticResolver{"tok-1": {"a@example.com"}})

	for _, header := range []string{"tok-1", "Basic dXNlcjpwYXNz", "Bearer ", "bearer tok-1"} {
		req := httptest.NewRequest(http.MethodPost, "/send", http.NoBody)
		req.Header.Set("Authorization", header)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		if rec.Code != http.StatusUnauthorized {
			t.Errorf("header %q: status = %d, want 401", header, rec.Code)
		}
	}
}

func TestAuth_UnknownToken_Returns403(t *testing.T) {
	handler := newAuthHandler(t, staticResolver{"tok-1": {"a@example.com"}})

	req := httptest.NewRequest(http.MethodPost, "/send", http.NoBody)
	req.Header.Set("Authorization", "Bearer bogus")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusForbidden {
		t.Errorf("status = %d, want 403", rec.Code)
	}

	var body struct {
		Detail string `json:"detail"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body.Detail == "" {
		t.Error("expected a detail message in the 403 body")
	}
}

func TestAuth_ValidToken_PassesRecipients(t *testing.T) {
	handler := newAuthHandler(t, staticResolver{"tok-1": {"a@example.com", "b@example.com"}})

	req := httptest.NewRequest(http.MethodPost, "/send", http.NoBody)
	req.Header.Set("Authorization", "Bearer tok-1")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var recipients []string
	if err := json.NewDecoder(rec.Body).Decode(&recipients); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if len(recipients) != 2 || recipients[0] != "a@example.com" || recipients[1] != "b@example.com" {
		t.Fatalf("recipients = %v, want config order preserved", recipients)
	}
}

func TestTruncateToken(t *testing.T) {
	if got := middleware.TruncateToken("super-secret-token"); got != "super-..." {
		t.Errorf("TruncateToken = %q, want super-...", got)
	}
	if got := middleware.TruncateToken("tok"); got != "tok" {
		t.Errorf("TruncateToken short = %q, want tok", got)
	}
}
