package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateStorage(t *testing.T) {
	drivers := []string{DriverSQLite, DriverFile, DriverMemory}

	for _, driver := range drivers {
		t.Run(driver, func(t *testing.T) {
			cfg := NewConfig()
			cfg.Storage.Driver = driver
			cfg.Storage.Dir = filepath.Join(t.TempDir(), "nested")
			require.NoError(t, cfg.Validate())

			s, err := CreateStorage(cfg)
			require.NoError(t, err)
			defer s.Close()

			ctx := context.Background()
			require.NoError(t, s.Put(ctx, cfg.Storage.Key, []byte(`[]`)))
			got, err := s.Get(ctx, cfg.Storage.Key)
			require.NoError(t, err)
			assert.Equal(t, `[]`, string(got))
		})
	}
}

func TestCreateStorage_SQLiteCreatesDatabaseFile(t *testing.T) {
	cfg := NewConfig()
	cfg.Storage.Dir = filepath.Join(t.TempDir(), "data")

	s, err := CreateStorage(cfg)
	require.NoError(t, err)
	defer s.Close()

	_, err = os.Stat(filepath.Join(cfg.Storage.Dir, "tl.db"))
	assert.NoError(t, err)
}

func TestCreateStorage_UnknownDriver(t *testing.T) {
	cfg := NewConfig()
	cfg.Storage.Driver = "redis"

	_, err := CreateStorage(cfg)
	var cfgErr *ConfigError
	assert.ErrorAs(t, err, &cfgErr)
}
