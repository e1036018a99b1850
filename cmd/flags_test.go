package cmd

import (
	"testing"

	"github.com/spf13/cobra"

	"github.com/winston-cli/winston/internal/config"
)

func parseGenerationFlags(t *testing.T, args ...string) *cobra.Command {
	t.Helper()
	cmd := &cobra.Command{Use: "test"}
	addGenerationFlags(cmd)
	if err := cmd.ParseFlags(args); err != nil {
		t.Fatalf("parse flags: %v", err)
	}
	return cmd
}

func TestPartialFromFlagsEmpty(t *testing.T) {
	cmd := parseGenerationFlags(t)

	if p := partialFromFlags(cmd); p != (config.Partial{}) {
		t.Errorf("unsupplied flags must not contribute values, got %+v", p)
	}
}

func TestPartialFromFlagsChangedOnly(t *testing.T) {
	cmd := parseGenerationFlags(t, "--model", "gpt-4", "-t", "0.2", "--max-tokens", "100")

	p := partialFromFlags(cmd)
	if p.Model == nil || *p.Model != "gpt-4" {
		t.Errorf("model: got %v", p.Model)
	}
	if p.Temperature == nil || *p.Temperature != 0.2 {
		t.Errorf("temperature: got %v", p.Temperature)
	}
	if p.MaxTokens == nil || *p.MaxTokens != 100 {
		t.Errorf("max_tokens: got %v", p.MaxTokens)
	}
	// Flags the user did not touch stay absent even though cobra shows a
	// default in the help text.
	if p.APIKey != nil || p.Endpoint != nil || p.TopP != nil || p.Stop != nil || p.Timeout != nil {
		t.Errorf("untouched flags leaked into the partial: %+v", p)
	}
}

func TestPartialFromFlagsExplicitDefaultCounts(t *testing.T) {
	// Typing the default value out loud is still an explicit choice and
	// must shadow env and file sources.
	cmd := parseGenerationFlags(t, "--model", config.DefaultModel)

	p := partialFromFlags(cmd)
	if p.Model == nil || *p.Model != config.DefaultModel {
		t.Errorf("explicitly passed default should be present, got %v", p.Model)
	}
}

func TestPartialFromFlagsShortNames(t *testing.T) {
	cmd := parseGenerationFlags(t,
		"-k", "sk-short",
		"-e", "https://example.test/v1",
		"-m", "gpt-4",
		"-l", "64",
		"-p", "0.9",
		"-d", "END",
		"-f", "0.5",
		"-r=-0.5",
	)

	p := partialFromFlags(cmd)
	if p.APIKey == nil || *p.APIKey != "sk-short" {
		t.Errorf("api key: got %v", p.APIKey)
	}
	if p.Endpoint == nil || *p.Endpoint != "https://example.test/v1" {
		t.Errorf("endpoint: got %v", p.Endpoint)
	}
	if p.MaxTokens == nil || *p.MaxTokens != 64 {
		t.Errorf("max tokens: got %v", p.MaxTokens)
	}
	if p.TopP == nil || *p.TopP != 0.9 {
		t.Errorf("top_p: got %v", p.TopP)
	}
	if p.Stop == nil || *p.Stop != "END" {
		t.Errorf("stop: got %v", p.Stop)
	}
	if p.FrequencyPenalty == nil || *p.FrequencyPenalty != 0.5 {
		t.Errorf("frequency penalty: got %v", p.FrequencyPenalty)
	}
	if p.PresencePenalty == nil || *p.PresencePenalty != -0.5 {
		t.Errorf("presence penalty: got %v", p.PresencePenalty)
	}
}
