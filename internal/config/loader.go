package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/BurntSushi/toml"
)

// Loader handles loading configuration from multiple sources
type Loader struct {
	config *Config
	path   string
}

// NewLoader creates a new configuration loader
func NewLoader() *Loader {
	return &Loader{
		config: NewConfig(),
	}
}

// WithFile makes the loader read the TOML file at path. A missing explicit
// file is an error; a missing default file is skipped.
func (l *Loader) WithFile(path string) *Loader {
	l.path = path
	return l
}

// Load loads configuration using the cascading strategy:
// 1. Start with defaults
// 2. Override with the TOML config file
// 3. Override with environment variables
// 4. Override with command line flags (handled by cobra)
func (l *Loader) Load() (*Config, error) {
	if err := l.loadFile(); err != nil {
		return nil, err
	}

	if err := l.config.LoadFromEnvironment(); err != nil {
		return nil, err
	}

	if err := l.config.Validate(); err != nil {
		return nil, err
	}

	return l.config, nil
}

// LoadWithOverrides loads configuration and applies command line overrides
func (l *Loader) LoadWithOverrides(overrides *ConfigOverrides) (*Config, error) {
	config, err := l.Load()
	if err != nil {
		return nil, err
	}

	if overrides != nil {
		ApplyOverrides(config, overrides)
	}

	// Re-validate after applying overrides
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func (l *Loader) loadFile() error {
	path, explicit := l.resolvePath()
	if path == "" {
		return nil
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) && !explicit {
			return nil
		}
		return fmt.Errorf("config file %s: %w", path, err)
	}
	if _, err := toml.DecodeFile(path, l.config); err != nil {
		return fmt.Errorf("decode config file %s: %w", path, err)
	}
	return nil
}

// resolvePath picks the config file: WithFile, then TL_CONFIG, then the
// per-user default location.
func (l *Loader) resolvePath() (string, bool) {
	if l.path != "" {
		return l.path, true
	}
	if env := os.Getenv("TL_CONFIG"); env != "" {
		return env, true
	}
	return DefaultConfigPath(), false
}

// DefaultConfigPath returns ~/.config/tl/config.toml, or "" when the user
// config directory is unknown.
func DefaultConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "tl", "config.toml")
}

// ConfigOverrides holds command line flag overrides
type ConfigOverrides struct {
	StorageDriver *string
	StorageDir    *string
	StorageKey    *string
	StorageDSN    *string

	TextMaxLength *int

	LogLevel  *string
	LogFormat *string

	Timeout *time.Duration
	Verbose *bool
}

// ApplyOverrides applies command line overrides to the configuration
func ApplyOverrides(config *Config, overrides *ConfigOverrides) {
	if overrides.StorageDriver != nil {
		config.Storage.Driver = *overrides.StorageDriver
	}
	if overrides.StorageDir != nil {
		config.Storage.Dir = *overrides.StorageDir
	}
	if overrides.StorageKey != nil {
		config.Storage.Key = *overrides.StorageKey
	}
	if overrides.StorageDSN != nil {
		config.Storage.DSN = *overrides.StorageDSN
	}

	if overrides.TextMaxLength != nil {
		config.Validation.TextMaxLength = *overrides.TextMaxLength
	}

	if overrides.LogLevel != nil {
		config.Logging.Level = *overrides.LogLevel
	}
	if overrides.LogFormat != nil {
		config.Logging.Format = *overrides.LogFormat
	}

	if overrides.Timeout != nil {
		config.Application.Timeout = *overrides.Timeout
	}
	if overrides.Verbose != nil {
		config.Application.Verbose = *overrides.Verbose
		if *overrides.Verbose && config.Logging.Level != "debug" {
			config.Logging.Level = "info"
		}
	}
}

// ParseDurationWithFallback parses a duration string with a fallback value
func ParseDurationWithFallback(s string, fallback time.Duration) time.Duration {
	if d, err := time.ParseDuration(s); err == nil {
		return d
	}
	return fallback
}

// ParseIntWithFallback parses an integer string with a fallback value
func ParseIntWithFallback(s string, fallback int) int {
	if i, err := strconv.Atoi(s); err == nil {
		return i
	}
	return fallback
}

// ParseBoolWithFallback parses a boolean string with a fallback value
func ParseBoolWithFallback(s string, fallback bool) bool {
	if b, err := strconv.ParseBool(s); err == nil {
		return b
	}
	return fallback
}

// ParseUint32WithFallback parses a uint32 string with a fallback value
func ParseUint32WithFallback(s string, base int, fallback uint32) uint32 {
	if u, err := strconv.ParseUint(s, base, 32); err == nil {
		return uint32(u)
	}
	return fallback
}
