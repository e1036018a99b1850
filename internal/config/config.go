// Package config resolves winston's runtime configuration from layered
// sources with strict precedence: command-line flags > environment
// variables > config file > built-in defaults. A field is taken from the
// highest-priority source that supplies it; the API key is the single field
// with no default.
package config

// Built-in defaults. The API key deliberately has none.
const (
	DefaultEndpoint         = "https://api.openai.com/v1"
	DefaultModel            = "gpt-3.5-turbo-instruct"
	DefaultMaxTokens        = 2048
	DefaultTemperature      = 0.7
	DefaultTopP             = 1.0
	DefaultFrequencyPenalty = 0.0
	DefaultPresencePenalty  = 0.0
	DefaultTimeout          = 30.0
)

// Environment variables consulted by EnvPartial.
const (
	EnvAPIKey = "OPENAI_API_KEY"
	EnvModel  = "OPENAI_MODEL"
)

// Config is a fully-resolved, validated configuration. Two Configs with
// identical field values are interchangeable regardless of which sources
// produced them.
type Config struct {
	APIKey           string  `toml:"api_key"`
	Endpoint         string  `toml:"api_endpoint"`
	Model            string  `toml:"model"`
	MaxTokens        int     `toml:"max_tokens"`
	Temperature      float64 `toml:"temperature"`
	TopP             float64 `toml:"top_p"`
	FrequencyPenalty float64 `toml:"frequency_penalty"`
	PresencePenalty  float64 `toml:"presence_penalty"`
	Stop             string  `toml:"stop,omitempty"` // empty = no stop sequence
	Timeout          float64 `toml:"timeout"`        // seconds
}

// Defaults returns the built-in default record. Its APIKey is empty and
// stays empty unless a source supplies one.
func Defaults() Config {
	return Config{
		Endpoint:         DefaultEndpoint,
		Model:            DefaultModel,
		MaxTokens:        DefaultMaxTokens,
		Temperature:      DefaultTemperature,
		TopP:             DefaultTopP,
		FrequencyPenalty: DefaultFrequencyPenalty,
		PresencePenalty:  DefaultPresencePenalty,
		Timeout:          DefaultTimeout,
	}
}

// Validate checks that the record is complete and every bounded numeric
// field lies within its declared range. It is a pure check with no side
// effects.
func (c Config) Validate() error {
	if c.APIKey == "" {
		return ErrMissingCredential
	}
	if c.MaxTokens <= 0 {
		return &OutOfRangeError{Field: "max_tokens", Value: float64(c.MaxTokens), Bounds: "positive"}
	}
	if c.Temperature < 0 || c.Temperature > 2 {
		return &OutOfRangeError{Field: "temperature", Value: c.Temperature, Bounds: "in [0, 2]"}
	}
	if c.TopP < 0 || c.TopP > 1 {
		return &OutOfRangeError{Field: "top_p", Value: c.TopP, Bounds: "in [0, 1]"}
	}
	if c.FrequencyPenalty < -2 || c.FrequencyPenalty > 2 {
		return &OutOfRangeError{Field: "frequency_penalty", Value: c.FrequencyPenalty, Bounds: "in [-2, 2]"}
	}
	if c.PresencePenalty < -2 || c.PresencePenalty > 2 {
		return &OutOfRangeError{Field: "presence_penalty", Value: c.PresencePenalty, Bounds: "in [-2, 2]"}
	}
	if c.Timeout <= 0 {
		return &OutOfRangeError{Field: "timeout", Value: c.Timeout, Bounds: "positive"}
	}
	return nil
}

// Partial is a configuration where every field may be absent. Each source
// (CLI flags, environment snapshot, config file) is represented as a Partial
// before merging; Partials are never persisted.
type Partial struct {
	APIKey           *string  `toml:"api_key"`
	Endpoint         *string  `toml:"api_endpoint"`
	Model            *string  `toml:"model"`
	MaxTokens        *int     `toml:"max_tokens"`
	Temperature      *float64 `toml:"temperature"`
	TopP             *float64 `toml:"top_p"`
	FrequencyPenalty *float64 `toml:"frequency_penalty"`
	PresencePenalty  *float64 `toml:"presence_penalty"`
	Stop             *string  `toml:"stop"`
	Timeout          *float64 `toml:"timeout"`
}

// apply overwrites c with every field the Partial supplies. Applying
// sources from lowest to highest priority yields first-present-wins from
// the top.
func (p Partial) apply(c *Config) {
	if p.APIKey != nil {
		c.APIKey = *p.APIKey
	}
	if p.Endpoint != nil {
		c.Endpoint = *p.Endpoint
	}
	if p.Model != nil {
		c.Model = *p.Model
	}
	if p.MaxTokens != nil {
		c.MaxTokens = *p.MaxTokens
	}
	if p.Temperature != nil {
		c.Temperature = *p.Temperature
	}
	if p.TopP != nil {
		c.TopP = *p.TopP
	}
	if p.FrequencyPenalty != nil {
		c.FrequencyPenalty = *p.FrequencyPenalty
	}
	if p.PresencePenalty != nil {
		c.PresencePenalty = *p.PresencePenalty
	}
	if p.Stop != nil {
		c.Stop = *p.Stop
	}
	if p.Timeout != nil {
		c.Timeout = *p.Timeout
	}
}

// Resolve merges the layered sources into one validated Config. Precedence
// is cli > env > file > defaults; a nil file contributes nothing. Resolve
// is pure: identical inputs always produce the identical result.
func Resolve(cli, env Partial, file *Partial, defaults Config) (Config, error) {
	merged := defaults
	if file != nil {
		file.apply(&merged)
	}
	env.apply(&merged)
	cli.apply(&merged)

	if err := merged.Validate(); err != nil {
		return Config{}, err
	}
	return merged, nil
}

// EnvPartial snapshots the recognized environment variables into a Partial.
// The lookup function is injected (normally os.LookupEnv) so resolution
// stays pure over its inputs.
func EnvPartial(lookup func(string) (string, bool)) Partial {
	var p Partial
	if v, ok := lookup(EnvAPIKey); ok && v != "" {
		p.APIKey = &v
	}
	if v, ok := lookup(EnvModel); ok && v != "" {
		p.Model = &v
	}
	return p
}
