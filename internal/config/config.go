// Package config loads the focustop configuration file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Duration is a time.Duration that unmarshals from yaml strings like
// "500ms" or "2s".
type Duration time.Duration

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", s, err)
	}
	*d = Duration(parsed)
	return nil
}

// Std returns the value as a time.Duration.
func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

// Config is the focustop configuration.
type Config struct {
	BackendURL   string   `yaml:"backend_url"`
	PollInterval Duration `yaml:"poll_interval"`
	SnapshotDir  string   `yaml:"snapshot_dir"`
	LogFile      string   `yaml:"log_file"`
}

const minPollInterval = 100 * time.Millisecond

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		BackendURL:   "http://localhost:5000",
		PollInterval: Duration(time.Second),
		SnapshotDir:  ".",
	}
}

// DefaultPath returns the conventional config file location.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "focustop.yaml"
	}
	return filepath.Join(dir, "focustop", "config.yaml")
}

// Load reads the yaml config at path. A missing file is not an error;
// defaults apply.
func Load(path string) (*Config, error) {
	cfg := Default()

	b, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, NewReadError(path, err)
	}
	if err := yaml.Unmarshal(b, cfg); err != nil {
		return nil, NewParseError(path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks field constraints.
func (c *Config) Validate() error {
	if c.BackendURL == "" {
		return fmt.Errorf("backend_url is required")
	}
	if c.PollInterval.Std() < minPollInterval {
		return fmt.Errorf("poll_interval (%v) must be >= %v", c.PollInterval.Std(), minPollInterval)
	}
	if c.SnapshotDir == "" {
		return fmt.Errorf("snapshot_dir is required")
	}
	return nil
}
