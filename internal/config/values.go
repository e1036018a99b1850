package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strconv"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"
)

// GetValue reads a single key from the config file at path and renders it
// as a string.
func GetValue(path, key string) (string, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("toml")
	if err := v.ReadInConfig(); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("key '%s' not found: no config file at %s", key, path)
		}
		return "", &FileFormatError{Path: path, Err: err}
	}
	if !v.IsSet(key) {
		return "", fmt.Errorf("key '%s' not found in %s", key, path)
	}
	return v.GetString(key), nil
}

// SetValue parses value for the given key, merges it into the file at path
// and writes the result back atomically. The value goes through the same
// typed representation the resolver uses, so a malformed number is rejected
// before anything touches the disk.
func SetValue(path, key, value string) error {
	p, err := Load(path)
	if err != nil {
		return err
	}
	if err := p.setKey(key, value); err != nil {
		return err
	}

	data, err := toml.Marshal(p)
	if err != nil {
		return &IOError{Op: "encode config", Path: path, Err: err}
	}
	if err := atomicWrite(path, data, 0o600); err != nil {
		return &IOError{Op: "write config file", Path: path, Err: err}
	}
	return nil
}

// setKey assigns a raw string value to the field named by key, coercing
// numeric fields. Alias spellings are accepted the same way Load accepts
// them.
func (p *Partial) setKey(key, value string) error {
	switch key {
	case "api_key":
		p.APIKey = &value
	case "api_endpoint", "endpoint":
		p.Endpoint = &value
	case "model":
		p.Model = &value
	case "max_tokens":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("%s must be an integer, got %q", key, value)
		}
		p.MaxTokens = &n
	case "temperature":
		return setFloat(&p.Temperature, key, value)
	case "top_p":
		return setFloat(&p.TopP, key, value)
	case "frequency_penalty":
		return setFloat(&p.FrequencyPenalty, key, value)
	case "presence_penalty":
		return setFloat(&p.PresencePenalty, key, value)
	case "timeout":
		return setFloat(&p.Timeout, key, value)
	case "stop", "stop_sequence":
		p.Stop = &value
	default:
		return fmt.Errorf("unknown configuration key %q", key)
	}
	return nil
}

func setFloat(dst **float64, key, value string) error {
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return fmt.Errorf("%s must be a number, got %q", key, value)
	}
	*dst = &f
	return nil
}
