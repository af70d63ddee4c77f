package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func isolateEnv(t *testing.T) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	for _, key := range []string{"TL_CONFIG", "TL_STORAGE_DRIVER", "TL_STORAGE_KEY", "TL_LOG_LEVEL", "TL_DEBUG", "TL_NOTICE_TIMEOUT", "TL_EXPORT_PDF_FONT"} {
		t.Setenv(key, "")
	}
}

func TestLoader_Defaults(t *testing.T) {
	isolateEnv(t)

	cfg, err := NewLoader().Load()
	require.NoError(t, err)
	assert.Equal(t, DriverSQLite, cfg.Storage.Driver)
}

func TestLoader_TOMLFile(t *testing.T) {
	isolateEnv(t)
	path := writeConfigFile(t, `
[storage]
driver = "file"
dir = "/tmp/tl"
key = "groceries"
write_timeout = "2s"

[notice]
banner_timeout = "3s"

[export]
pdf_font = "/fonts/NotoSans.ttf"

[display]
default_filter = "active"
relative_time = false
`)

	cfg, err := NewLoader().WithFile(path).Load()
	require.NoError(t, err)
	assert.Equal(t, DriverFile, cfg.Storage.Driver)
	assert.Equal(t, "groceries", cfg.Storage.Key)
	assert.Equal(t, 2*time.Second, cfg.Storage.WriteTimeout)
	assert.Equal(t, 3*time.Second, cfg.Notice.BannerTimeout)
	assert.Equal(t, "/fonts/NotoSans.ttf", cfg.Export.PDFFont)
	assert.Equal(t, "active", cfg.Display.DefaultFilter)
	assert.False(t, cfg.Display.RelativeTime)
	assert.Equal(t, 200, cfg.Validation.TextMaxLength, "unset keys keep defaults")
}

func TestLoader_EnvironmentBeatsFile(t *testing.T) {
	isolateEnv(t)
	path := writeConfigFile(t, "[storage]\nkey = \"from-file\"\n")
	t.Setenv("TL_CONFIG", path)
	t.Setenv("TL_STORAGE_KEY", "from-env")

	cfg, err := NewLoader().Load()
	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.Storage.Key)
}

func TestLoader_MissingExplicitFile(t *testing.T) {
	isolateEnv(t)

	_, err := NewLoader().WithFile(filepath.Join(t.TempDir(), "absent.toml")).Load()
	assert.Error(t, err)
}

func TestLoader_MalformedFile(t *testing.T) {
	isolateEnv(t)
	path := writeConfigFile(t, "[storage\ndriver = ")

	_, err := NewLoader().WithFile(path).Load()
	assert.Error(t, err)
}

func TestLoader_LoadWithOverrides(t *testing.T) {
	isolateEnv(t)
	driver := DriverMemory
	maxLen := 50
	verbose := true

	cfg, err := NewLoader().LoadWithOverrides(&ConfigOverrides{
		StorageDriver: &driver,
		TextMaxLength: &maxLen,
		Verbose:       &verbose,
	})
	require.NoError(t, err)
	assert.Equal(t, DriverMemory, cfg.Storage.Driver)
	assert.Equal(t, 50, cfg.Validation.TextMaxLength)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestLoader_OverridesAreValidated(t *testing.T) {
	isolateEnv(t)
	bad := "loud"

	_, err := NewLoader().LoadWithOverrides(&ConfigOverrides{LogLevel: &bad})
	assert.Error(t, err)
}

func TestParseWithFallback(t *testing.T) {
	assert.Equal(t, 2*time.Second, ParseDurationWithFallback("2s", time.Second))
	assert.Equal(t, time.Second, ParseDurationWithFallback("", time.Second))
	assert.Equal(t, 7, ParseIntWithFallback("7", 1))
	assert.Equal(t, 1, ParseIntWithFallback("x", 1))
	assert.True(t, ParseBoolWithFallback("true", false))
	assert.False(t, ParseBoolWithFallback("maybe", false))
	assert.Equal(t, uint32(0750), ParseUint32WithFallback("750", 8, 0))
}
