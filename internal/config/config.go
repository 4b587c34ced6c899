// Package config loads and saves the nxcube application settings.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/SeamusWaldron/nxcube"
)

// DirName is the settings directory under the user's home directory.
const DirName = ".nxcube"

// Config holds the application settings.
type Config struct {
	Size           int           `yaml:"size"`
	ScrambleLength int           `yaml:"scramble_length"`
	MaxSize        int           `yaml:"max_size"`
	DBPath         string        `yaml:"db_path,omitempty"`
	SolverURL      string        `yaml:"solver_url"`
	SolverTimeout  time.Duration `yaml:"solver_timeout"`
	ListenAddr     string        `yaml:"listen_addr"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Size:           3,
		ScrambleLength: nxcube.DefaultScrambleLength,
		MaxSize:        10,
		SolverURL:      "http://localhost:5000",
		SolverTimeout:  5 * time.Second,
		ListenAddr:     "127.0.0.1:8080",
	}
}

// Dir returns the settings directory, creating it if needed.
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	dir := filepath.Join(home, DirName)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create config directory: %w", err)
	}

	return dir, nil
}

// DefaultPath returns the default config file path.
func DefaultPath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// Load reads the config file at path on top of the defaults. A missing file
// is not an error.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// LoadDefault loads the config from the default path.
func LoadDefault() (Config, error) {
	path, err := DefaultPath()
	if err != nil {
		return Default(), err
	}
	return Load(path)
}

// Save writes the config to path.
func (c Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Validate checks the settings. Errors match nxcube.ErrConfiguration.
func (c Config) Validate() error {
	if c.Size < nxcube.MinSize {
		return &nxcube.ConfigurationError{Field: "size", Value: c.Size, Reason: fmt.Sprintf("must be at least %d", nxcube.MinSize)}
	}
	if c.MaxSize < c.Size {
		return &nxcube.ConfigurationError{Field: "max_size", Value: c.MaxSize, Reason: "must not be below size"}
	}
	if c.ScrambleLength < 0 {
		return &nxcube.ConfigurationError{Field: "scramble_length", Value: c.ScrambleLength, Reason: "must not be negative"}
	}
	return nil
}

// ResolveDBPath returns DBPath, or the default database path when unset.
func (c Config) ResolveDBPath() (string, error) {
	if c.DBPath != "" {
		return c.DBPath, nil
	}
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "nxcube.db"), nil
}
