package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

const (
	// EnvConfigHome overrides the base directory for the default config path.
	EnvConfigHome = "XDG_CONFIG_HOME"

	appDirName     = "winston"
	configFileName = "config.toml"
)

// fileAliases covers legacy key spellings still accepted on load. A value
// under the canonical key wins over its alias.
type fileAliases struct {
	Endpoint *string `toml:"endpoint"`
	Stop     *string `toml:"stop_sequence"`
}

// Load reads the config file at path into a Partial. A missing file is not
// an error: it returns a zero Partial so the file source simply contributes
// nothing to the merge. Unknown keys are ignored; a recognized key with a
// value of the wrong type is a FileFormatError.
func Load(path string) (Partial, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Partial{}, nil
	}
	if err != nil {
		return Partial{}, &IOError{Op: "read config file", Path: path, Err: err}
	}

	var p Partial
	if err := toml.Unmarshal(data, &p); err != nil {
		return Partial{}, &FileFormatError{Path: path, Err: err}
	}

	var aliases fileAliases
	if err := toml.Unmarshal(data, &aliases); err != nil {
		return Partial{}, &FileFormatError{Path: path, Err: err}
	}
	if p.Endpoint == nil {
		p.Endpoint = aliases.Endpoint
	}
	if p.Stop == nil {
		p.Stop = aliases.Stop
	}

	return p, nil
}

// Save serializes the full record, credential included, to path. Parent
// directories are created as needed. The write is atomic from a reader's
// point of view: either the new content lands completely or the old file is
// untouched. The file is written 0600 because it holds the API key.
func Save(cfg Config, path string) error {
	data, err := toml.Marshal(cfg)
	if err != nil {
		return &IOError{Op: "encode config", Path: path, Err: err}
	}
	if err := atomicWrite(path, data, 0o600); err != nil {
		return &IOError{Op: "write config file", Path: path, Err: err}
	}
	return nil
}

// DefaultPath derives the standard config file location:
// $XDG_CONFIG_HOME/winston/config.toml when the override is set, otherwise
// ~/.config/winston/config.toml.
func DefaultPath() (string, error) {
	if base := os.Getenv(EnvConfigHome); base != "" {
		return filepath.Join(base, appDirName, configFileName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return "", ErrNoHomeDir
	}
	return filepath.Join(home, ".config", appDirName, configFileName), nil
}

// atomicWrite writes data via a temp file in the target directory, syncs it
// to disk, then renames it over path. The rename is what makes a concurrent
// reader see either the old or the new content, never a partial write.
func atomicWrite(path string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, ".config-*.tmp")
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()
	committed := false
	defer func() {
		if !committed {
			tmp.Close()
			os.Remove(tmpPath)
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		return err
	}
	if err := tmp.Sync(); err != nil {
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmpPath, perm); err != nil {
		return err
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return err
	}
	committed = true
	return nil
}
