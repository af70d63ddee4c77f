package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// Config holds all configuration options for the task list application
type Config struct {
	Storage     StorageConfig     `toml:"storage"`
	Validation  ValidationConfig  `toml:"validation"`
	Display     DisplayConfig     `toml:"display"`
	Notice      NoticeConfig      `toml:"notice"`
	Export      ExportConfig      `toml:"export"`
	Logging     LoggingConfig     `toml:"logging"`
	Application ApplicationConfig `toml:"application"`
}

// StorageConfig holds settings for the persistent task slot
type StorageConfig struct {
	Driver         string        `toml:"driver" env:"TL_STORAGE_DRIVER"`
	Dir            string        `toml:"dir" env:"TL_STORAGE_DIR"`
	Filename       string        `toml:"filename" env:"TL_STORAGE_FILENAME"`
	Key            string        `toml:"key" env:"TL_STORAGE_KEY"`
	DSN            string        `toml:"dsn" env:"TL_STORAGE_DSN"`
	QueryTimeout   time.Duration `toml:"query_timeout" env:"TL_STORAGE_QUERY_TIMEOUT"`
	WriteTimeout   time.Duration `toml:"write_timeout" env:"TL_STORAGE_WRITE_TIMEOUT"`
	DirPermissions uint32        `toml:"dir_permissions" env:"TL_STORAGE_DIR_PERMISSIONS"`
}

// ValidationConfig holds validation rules configuration
type ValidationConfig struct {
	TextMaxLength int `toml:"text_max_length" env:"TL_VALIDATION_TEXT_MAX"`
}

// DisplayConfig holds list formatting configuration
type DisplayConfig struct {
	TimeFormat    string `toml:"time_format" env:"TL_DISPLAY_TIME_FORMAT"`
	RelativeTime  bool   `toml:"relative_time" env:"TL_DISPLAY_RELATIVE"`
	IDLength      int    `toml:"id_length" env:"TL_DISPLAY_ID_LENGTH"`
	DefaultFilter string `toml:"default_filter" env:"TL_DISPLAY_FILTER"`
	OldestFirst   bool   `toml:"oldest_first" env:"TL_DISPLAY_OLDEST_FIRST"`
}

// NoticeConfig controls the transient error banner
type NoticeConfig struct {
	BannerTimeout time.Duration `toml:"banner_timeout" env:"TL_NOTICE_TIMEOUT"`
}

// ExportConfig holds document export settings
type ExportConfig struct {
	PDFFont string `toml:"pdf_font" env:"TL_EXPORT_PDF_FONT"`
}

// LoggingConfig holds logger settings
type LoggingConfig struct {
	Level  string `toml:"level" env:"TL_LOG_LEVEL"`
	Format string `toml:"format" env:"TL_LOG_FORMAT"`
}

// ApplicationConfig holds application-level configuration
type ApplicationConfig struct {
	Timeout time.Duration `toml:"timeout" env:"TL_APP_TIMEOUT"`
	Verbose bool          `toml:"verbose" env:"TL_APP_VERBOSE"`
}

// Storage drivers understood by CreateStorage.
const (
	DriverSQLite = "sqlite"
	DriverFile   = "file"
	DriverMySQL  = "mysql"
	DriverMemory = "memory"
)

// NewConfig creates a new configuration with sensible defaults
func NewConfig() *Config {
	homeDir, _ := os.UserHomeDir()
	defaultDir := filepath.Join(homeDir, ".tl")

	return &Config{
		Storage: StorageConfig{
			Driver:         DriverSQLite,
			Dir:            defaultDir,
			Filename:       "tl.db",
			Key:            "tasks",
			QueryTimeout:   10 * time.Second,
			WriteTimeout:   5 * time.Second,
			DirPermissions: 0755,
		},
		Validation: ValidationConfig{
			TextMaxLength: 200,
		},
		Display: DisplayConfig{
			TimeFormat:    "2006-01-02 15:04",
			RelativeTime:  true,
			IDLength:      8,
			DefaultFilter: "all",
			OldestFirst:   false,
		},
		Notice: NoticeConfig{
			BannerTimeout: 5 * time.Second,
		},
		Logging: LoggingConfig{
			Level:  "warn",
			Format: "text",
		},
		Application: ApplicationConfig{
			Timeout: 30 * time.Second,
			Verbose: false,
		},
	}
}

// GetDatabasePath returns the full path to the SQLite database file
func (c *Config) GetDatabasePath() string {
	return filepath.Join(c.Storage.Dir, c.Storage.Filename)
}

// LoadFromEnvironment loads configuration from environment variables
func (c *Config) LoadFromEnvironment() error {
	if driver := os.Getenv("TL_STORAGE_DRIVER"); driver != "" {
		c.Storage.Driver = strings.ToLower(driver)
	}
	if dir := os.Getenv("TL_STORAGE_DIR"); dir != "" {
		c.Storage.Dir = dir
	}
	if filename := os.Getenv("TL_STORAGE_FILENAME"); filename != "" {
		c.Storage.Filename = filename
	}
	if key := os.Getenv("TL_STORAGE_KEY"); key != "" {
		c.Storage.Key = key
	}
	if dsn := os.Getenv("TL_STORAGE_DSN"); dsn != "" {
		c.Storage.DSN = dsn
	}
	c.Storage.QueryTimeout = ParseDurationWithFallback(os.Getenv("TL_STORAGE_QUERY_TIMEOUT"), c.Storage.QueryTimeout)
	c.Storage.WriteTimeout = ParseDurationWithFallback(os.Getenv("TL_STORAGE_WRITE_TIMEOUT"), c.Storage.WriteTimeout)
	c.Storage.DirPermissions = ParseUint32WithFallback(os.Getenv("TL_STORAGE_DIR_PERMISSIONS"), 8, c.Storage.DirPermissions)

	c.Validation.TextMaxLength = ParseIntWithFallback(os.Getenv("TL_VALIDATION_TEXT_MAX"), c.Validation.TextMaxLength)

	if format := os.Getenv("TL_DISPLAY_TIME_FORMAT"); format != "" {
		c.Display.TimeFormat = format
	}
	c.Display.RelativeTime = ParseBoolWithFallback(os.Getenv("TL_DISPLAY_RELATIVE"), c.Display.RelativeTime)
	c.Display.IDLength = ParseIntWithFallback(os.Getenv("TL_DISPLAY_ID_LENGTH"), c.Display.IDLength)
	if filter := os.Getenv("TL_DISPLAY_FILTER"); filter != "" {
		c.Display.DefaultFilter = strings.ToLower(filter)
	}
	c.Display.OldestFirst = ParseBoolWithFallback(os.Getenv("TL_DISPLAY_OLDEST_FIRST"), c.Display.OldestFirst)

	c.Notice.BannerTimeout = ParseDurationWithFallback(os.Getenv("TL_NOTICE_TIMEOUT"), c.Notice.BannerTimeout)

	if font := os.Getenv("TL_EXPORT_PDF_FONT"); font != "" {
		c.Export.PDFFont = font
	}

	if level := os.Getenv("TL_LOG_LEVEL"); level != "" {
		c.Logging.Level = strings.ToLower(level)
	}
	if format := os.Getenv("TL_LOG_FORMAT"); format != "" {
		c.Logging.Format = strings.ToLower(format)
	}
	if os.Getenv("TL_DEBUG") != "" {
		c.Logging.Level = "debug"
	}

	c.Application.Timeout = ParseDurationWithFallback(os.Getenv("TL_APP_TIMEOUT"), c.Application.Timeout)
	c.Application.Verbose = ParseBoolWithFallback(os.Getenv("TL_APP_VERBOSE"), c.Application.Verbose)

	return nil
}

// Validate validates the configuration and returns any errors
func (c *Config) Validate() error {
	switch c.Storage.Driver {
	case DriverSQLite, DriverFile:
		if c.Storage.Dir == "" {
			return &ConfigError{Field: "storage.dir", Message: "storage directory cannot be empty"}
		}
	case DriverMySQL:
		if c.Storage.DSN == "" {
			return &ConfigError{Field: "storage.dsn", Message: "mysql driver requires a dsn"}
		}
	case DriverMemory:
	default:
		return &ConfigError{Field: "storage.driver", Message: "unknown storage driver " + strconv.Quote(c.Storage.Driver)}
	}
	if c.Storage.Driver == DriverSQLite && c.Storage.Filename == "" {
		return &ConfigError{Field: "storage.filename", Message: "database filename cannot be empty"}
	}
	if c.Storage.Key == "" {
		return &ConfigError{Field: "storage.key", Message: "storage key cannot be empty"}
	}
	if c.Storage.QueryTimeout <= 0 {
		return &ConfigError{Field: "storage.query_timeout", Message: "query timeout must be positive"}
	}
	if c.Storage.WriteTimeout <= 0 {
		return &ConfigError{Field: "storage.write_timeout", Message: "write timeout must be positive"}
	}

	if c.Validation.TextMaxLength < 1 {
		return &ConfigError{Field: "validation.text_max_length", Message: "maximum text length must be at least 1"}
	}

	if c.Display.TimeFormat == "" {
		return &ConfigError{Field: "display.time_format", Message: "time format cannot be empty"}
	}
	if c.Display.IDLength < 4 {
		return &ConfigError{Field: "display.id_length", Message: "id length must be at least 4"}
	}
	switch c.Display.DefaultFilter {
	case "all", "active", "completed":
	default:
		return &ConfigError{Field: "display.default_filter", Message: "default filter must be all, active or completed"}
	}

	if c.Notice.BannerTimeout <= 0 {
		return &ConfigError{Field: "notice.banner_timeout", Message: "banner timeout must be positive"}
	}

	switch c.Logging.Level {
	case "debug", "info", "warn", "warning", "error":
	default:
		return &ConfigError{Field: "logging.level", Message: "unknown log level " + strconv.Quote(c.Logging.Level)}
	}
	switch c.Logging.Format {
	case "text", "json", "logfmt":
	default:
		return &ConfigError{Field: "logging.format", Message: "log format must be text, json or logfmt"}
	}

	if c.Application.Timeout <= 0 {
		return &ConfigError{Field: "application.timeout", Message: "application timeout must be positive"}
	}

	return nil
}

// ConfigError represents a configuration validation error
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return e.Field + ": " + e.Message
}
