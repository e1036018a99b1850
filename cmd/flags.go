package cmd

import (
	"github.com/spf13/cobra"

	"github.com/winston-cli/winston/internal/config"
)

// addGenerationFlags registers the per-field generation flags on a command.
// The short names mirror winston's original CLI surface.
func addGenerationFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringP("api-key", "k", "", "OpenAI API key (overrides OPENAI_API_KEY and the config file)")
	f.StringP("endpoint", "e", config.DefaultEndpoint, "base URL of the completion API")
	f.StringP("model", "m", config.DefaultModel, "model identifier")
	f.IntP("max-tokens", "l", config.DefaultMaxTokens, "maximum tokens to generate")
	f.Float64P("temperature", "t", config.DefaultTemperature, "sampling temperature, 0 to 2")
	f.Float64P("top-p", "p", config.DefaultTopP, "nucleus sampling mass, 0 to 1")
	f.StringP("stop", "d", "", "stop sequence")
	f.Float64P("frequency-penalty", "f", config.DefaultFrequencyPenalty, "frequency penalty, -2 to 2")
	f.Float64P("presence-penalty", "r", config.DefaultPresencePenalty, "presence penalty, -2 to 2")
	f.Float64("timeout", config.DefaultTimeout, "request timeout in seconds")
}

// partialFromFlags builds the CLI source for the resolver. Only flags the
// user actually passed contribute; a cobra default must not masquerade as
// an explicit value or it would shadow the environment and the config file.
func partialFromFlags(cmd *cobra.Command) config.Partial {
	var p config.Partial
	f := cmd.Flags()

	if f.Changed("api-key") {
		v, _ := f.GetString("api-key")
		p.APIKey = &v
	}
	if f.Changed("endpoint") {
		v, _ := f.GetString("endpoint")
		p.Endpoint = &v
	}
	if f.Changed("model") {
		v, _ := f.GetString("model")
		p.Model = &v
	}
	if f.Changed("max-tokens") {
		v, _ := f.GetInt("max-tokens")
		p.MaxTokens = &v
	}
	if f.Changed("temperature") {
		v, _ := f.GetFloat64("temperature")
		p.Temperature = &v
	}
	if f.Changed("top-p") {
		v, _ := f.GetFloat64("top-p")
		p.TopP = &v
	}
	if f.Changed("stop") {
		v, _ := f.GetString("stop")
		p.Stop = &v
	}
	if f.Changed("frequency-penalty") {
		v, _ := f.GetFloat64("frequency-penalty")
		p.FrequencyPenalty = &v
	}
	if f.Changed("presence-penalty") {
		v, _ := f.GetFloat64("presence-penalty")
		p.PresencePenalty = &v
	}
	if f.Changed("timeout") {
		v, _ := f.GetFloat64("timeout")
		p.Timeout = &v
	}

	return p
}
