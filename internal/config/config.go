// Package config loads the optional editor configuration file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Defaults.
const (
	DefaultTabStop        = 8
	DefaultQuitTimes      = 3
	DefaultMessageTimeout = 5 * time.Second
)

// EnvPath names the environment variable that overrides the config path.
const EnvPath = "KILO_CONFIG"

// Config holds the tunable editor settings.
type Config struct {
	TabStop        int           `yaml:"tab_stop"`
	QuitTimes      int           `yaml:"quit_times"`
	MessageTimeout time.Duration `yaml:"message_timeout"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		TabStop:        DefaultTabStop,
		QuitTimes:      DefaultQuitTimes,
		MessageTimeout: DefaultMessageTimeout,
	}
}

// Path returns the config file location: $KILO_CONFIG if set, otherwise
// kilo/config.yaml under the user config directory.
func Path() string {
	if p := os.Getenv(EnvPath); p != "" {
		return p
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "kilo", "config.yaml")
}

// Load reads the config file at path. A missing file (or empty path) yields
// the defaults. Fields absent from the file keep their default values.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate reports the first setting that is out of range.
func (c Config) Validate() error {
	switch {
	case c.TabStop < 1:
		return fmt.Errorf("tab_stop must be positive, got %d", c.TabStop)
	case c.QuitTimes < 1:
		return fmt.Errorf("quit_times must be positive, got %d", c.QuitTimes)
	case c.MessageTimeout <= 0:
		return fmt.Errorf("message_timeout must be positive, got %s", c.MessageTimeout)
	}
	return nil
}
