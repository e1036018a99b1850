package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// EnsureConfigExists writes a commented starter config at path if no file
// is there yet. An existing file is never touched.
func EnsureConfigExists(path string) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if err := os.WriteFile(path, []byte(configTemplate), 0o600); err != nil {
		return fmt.Errorf("failed to write config template: %w", err)
	}

	return nil
}
