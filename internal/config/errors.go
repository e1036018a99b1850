package config

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingCredential is returned when no source supplied an API key.
	// The key is the one field that is never defaulted.
	ErrMissingCredential = errors.New("no API key found: pass --api-key, set OPENAI_API_KEY, or add api_key to the config file")

	// ErrNoHomeDir is returned when the default config path cannot be derived.
	ErrNoHomeDir = errors.New("cannot locate config directory: XDG_CONFIG_HOME is unset and no home directory is available")
)

// OutOfRangeError reports a numeric field that violates its declared bounds.
type OutOfRangeError struct {
	Field  string
	Value  float64
	Bounds string
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("%s is %v, must be %s", e.Field, e.Value, e.Bounds)
}

// FileFormatError reports a config file that exists but cannot be parsed,
// or a recognized key carrying a value of the wrong type.
type FileFormatError struct {
	Path string
	Err  error
}

func (e *FileFormatError) Error() string {
	return fmt.Sprintf("invalid config file %s: %v", e.Path, e.Err)
}

func (e *FileFormatError) Unwrap() error {
	return e.Err
}

// IOError reports a filesystem failure during load or save. A missing file
// on load is not an IOError; it simply contributes nothing to the merge.
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}
