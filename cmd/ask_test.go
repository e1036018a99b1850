package cmd

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/winston-cli/winston/internal/config"
)

func TestAskCommand(t *testing.T) {
	clearAmbientEnv(t)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":"cmpl-1","object":"chat.completion","choices":[{"index":0,"message":{"role":"assistant","content":"42"},"finish_reason":"stop"}]}`))
	}))
	defer server.Close()

	out, err := execute(t, "ask", "what is the answer",
		"--api-key", "sk-test",
		"--endpoint", server.URL,
		"--config", filepath.Join(t.TempDir(), "absent.toml"),
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.TrimSpace(out) != "42" {
		t.Errorf("got %q, want the completion text", out)
	}
}

func TestAskCommandMissingCredential(t *testing.T) {
	clearAmbientEnv(t)

	_, err := execute(t, "ask", "hello",
		"--config", filepath.Join(t.TempDir(), "absent.toml"),
	)
	if !errors.Is(err, config.ErrMissingCredential) {
		t.Fatalf("got %v, want ErrMissingCredential", err)
	}
}

func TestAskCommandInvalidFlagValue(t *testing.T) {
	clearAmbientEnv(t)

	_, err := execute(t, "ask", "hello",
		"--api-key", "sk-test",
		"--temperature", "3.5",
		"--config", filepath.Join(t.TempDir(), "absent.toml"),
	)
	var oor *config.OutOfRangeError
	if !errors.As(err, &oor) {
		t.Fatalf("got %v, want OutOfRangeError", err)
	}
	if oor.Field != "temperature" {
		t.Errorf("field: got %q", oor.Field)
	}
}
