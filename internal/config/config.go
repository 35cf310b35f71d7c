// internal/config/config.go
//
// User configuration stored as YAML under ~/.biobase. Missing files are
// created with defaults so the first run works without any setup.
package config

import (
	"log/slog"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

const (
	dirMode  = 0700
	fileMode = 0600

	// FileName is the config file name inside the app home dir.
	FileName = "config.yaml"
)

// Config holds the user-tunable defaults.
type Config struct {
	// DefaultMatrix names the matrix used when a command omits --matrix.
	DefaultMatrix string `yaml:"default_matrix"`
	// Format is the default output format: text, json, or yaml.
	Format string `yaml:"format"`
}

// Default returns the configuration written on first use.
func Default() Config {
	return Config{
		DefaultMatrix: "BLOSUM62",
		Format:        "text",
	}
}

// HomeDir returns the per-user app directory, creating it if needed. It
// falls back to the home directory itself, then the current directory.
func HomeDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		slog.Debug("error getting home dir, using current dir instead", "error", err)
		return "."
	}
	dirPath := filepath.Join(home, ".biobase")
	if _, err := os.Stat(dirPath); errors.Is(err, os.ErrNotExist) {
		if err := os.Mkdir(dirPath, dirMode); err != nil {
			slog.Debug("error creating dir", "path", dirPath, "error", err)
			return home
		}
	}
	return dirPath
}

// DefaultPath returns the standard config file location.
func DefaultPath() string {
	return filepath.Join(HomeDir(), FileName)
}

// ReadOrCreate loads the config at path, writing the defaults there first
// when the file does not exist.
func ReadOrCreate(path string) (Config, error) {
	b, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		cfg := Default()
		if err := Save(path, cfg); err != nil {
			return Config{}, err
		}
		return cfg, nil
	}
	if err != nil {
		return Config{}, errors.Wrapf(err, "reading config %s", path)
	}
	var cfg Config
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return Config{}, errors.Wrapf(err, "parsing config %s", path)
	}
	if cfg.DefaultMatrix == "" {
		cfg.DefaultMatrix = Default().DefaultMatrix
	}
	if cfg.Format == "" {
		cfg.Format = Default().Format
	}
	return cfg, nil
}

// Save writes the config to path as YAML.
func Save(path string, cfg Config) error {
	b, err := yaml.Marshal(cfg)
	if err != nil {
		return errors.Wrap(err, "encoding config")
	}
	if err := os.WriteFile(path, b, fileMode); err != nil {
		return errors.Wrapf(err, "writing config %s", path)
	}
	return nil
}
