package llm

import (
	"errors"
	"strings"
	"testing"
)

func TestAPIError(t *testing.T) {
	t.Run("message without cause", func(t *testing.T) {
		err := &APIError{Msg: "something broke"}
		if err.Error() != "something broke" {
			t.Errorf("got %q", err.Error())
		}
	})

	t.Run("message with cause", func(t *testing.T) {
		cause := errors.New("underlying")
		err := &APIError{Msg: "something broke", Err: cause}
		if !strings.Contains(err.Error(), "underlying") {
			t.Errorf("cause missing from %q", err.Error())
		}
		if !errors.Is(err, cause) {
			t.Error("Unwrap chain broken")
		}
	})
}

func TestErrorConstructors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantSubstr string
	}{
		{"auth failed", ErrAuthenticationFailed(401, nil), 401, "API key"},
		{"rate limited", ErrRateLimitExceeded(nil), 429, "rate limit"},
		{"empty response", ErrEmptyResponse("gpt-4"), 0, "gpt-4"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var apiErr *APIError
			if !errors.As(tt.err, &apiErr) {
				t.Fatalf("not an APIError: %v", tt.err)
			}
			if apiErr.StatusCode != tt.wantStatus {
				t.Errorf("status: got %d, want %d", apiErr.StatusCode, tt.wantStatus)
			}
			if !strings.Contains(apiErr.Error(), tt.wantSubstr) {
				t.Errorf("message %q missing %q", apiErr.Error(), tt.wantSubstr)
			}
		})
	}
}
