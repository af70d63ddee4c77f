package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewConfig_Defaults(t *testing.T) {
	cfg := NewConfig()

	assert.Equal(t, DriverSQLite, cfg.Storage.Driver)
	assert.Equal(t, "tasks", cfg.Storage.Key)
	assert.Equal(t, 200, cfg.Validation.TextMaxLength)
	assert.Equal(t, 5*time.Second, cfg.Notice.BannerTimeout)
	assert.Equal(t, "all", cfg.Display.DefaultFilter)
	assert.NoError(t, cfg.Validate())
}

func TestConfig_LoadFromEnvironment(t *testing.T) {
	t.Setenv("TL_STORAGE_DRIVER", "FILE")
	t.Setenv("TL_STORAGE_DIR", "/tmp/tl-test")
	t.Setenv("TL_STORAGE_KEY", "work")
	t.Setenv("TL_STORAGE_QUERY_TIMEOUT", "3s")
	t.Setenv("TL_STORAGE_DIR_PERMISSIONS", "700")
	t.Setenv("TL_VALIDATION_TEXT_MAX", "80")
	t.Setenv("TL_DISPLAY_OLDEST_FIRST", "true")
	t.Setenv("TL_NOTICE_TIMEOUT", "2s")
	t.Setenv("TL_EXPORT_PDF_FONT", "/fonts/DejaVuSans.ttf")
	t.Setenv("TL_LOG_FORMAT", "json")
	t.Setenv("TL_APP_TIMEOUT", "not-a-duration")

	cfg := NewConfig()
	assert.NoError(t, cfg.LoadFromEnvironment())

	assert.Equal(t, DriverFile, cfg.Storage.Driver)
	assert.Equal(t, "/tmp/tl-test", cfg.Storage.Dir)
	assert.Equal(t, "work", cfg.Storage.Key)
	assert.Equal(t, 3*time.Second, cfg.Storage.QueryTimeout)
	assert.Equal(t, uint32(0700), cfg.Storage.DirPermissions)
	assert.Equal(t, 80, cfg.Validation.TextMaxLength)
	assert.True(t, cfg.Display.OldestFirst)
	assert.Equal(t, 2*time.Second, cfg.Notice.BannerTimeout)
	assert.Equal(t, "/fonts/DejaVuSans.ttf", cfg.Export.PDFFont)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Equal(t, 30*time.Second, cfg.Application.Timeout, "invalid values keep the default")
}

func TestConfig_DebugForcesDebugLevel(t *testing.T) {
	t.Setenv("TL_LOG_LEVEL", "error")
	t.Setenv("TL_DEBUG", "1")

	cfg := NewConfig()
	assert.NoError(t, cfg.LoadFromEnvironment())
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		field  string
	}{
		{"unknown driver", func(c *Config) { c.Storage.Driver = "redis" }, "storage.driver"},
		{"mysql without dsn", func(c *Config) { c.Storage.Driver = DriverMySQL }, "storage.dsn"},
		{"empty dir", func(c *Config) { c.Storage.Dir = "" }, "storage.dir"},
		{"empty key", func(c *Config) { c.Storage.Key = "" }, "storage.key"},
		{"zero write timeout", func(c *Config) { c.Storage.WriteTimeout = 0 }, "storage.write_timeout"},
		{"zero max length", func(c *Config) { c.Validation.TextMaxLength = 0 }, "validation.text_max_length"},
		{"short ids", func(c *Config) { c.Display.IDLength = 2 }, "display.id_length"},
		{"bad filter", func(c *Config) { c.Display.DefaultFilter = "done" }, "display.default_filter"},
		{"zero banner", func(c *Config) { c.Notice.BannerTimeout = 0 }, "notice.banner_timeout"},
		{"bad level", func(c *Config) { c.Logging.Level = "loud" }, "logging.level"},
		{"bad format", func(c *Config) { c.Logging.Format = "xml" }, "logging.format"},
		{"zero app timeout", func(c *Config) { c.Application.Timeout = 0 }, "application.timeout"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			var cfgErr *ConfigError
			if assert.ErrorAs(t, err, &cfgErr) {
				assert.Equal(t, tt.field, cfgErr.Field)
			}
		})
	}
}

func TestConfig_MemoryDriverNeedsNoDir(t *testing.T) {
	cfg := NewConfig()
	cfg.Storage.Driver = DriverMemory
	cfg.Storage.Dir = ""
	assert.NoError(t, cfg.Validate())
}
