package config

import (
	"fmt"
	"os"

	"tasklist/internal/storage"
	"tasklist/internal/storage/sqlstore"
)

// CreateStorage creates the storage backend selected by the configuration
func CreateStorage(config *Config) (storage.Storage, error) {
	switch config.Storage.Driver {
	case DriverMemory:
		return storage.NewMemory(), nil
	case DriverFile:
		s, err := storage.NewFile(config.Storage.Dir, os.FileMode(config.Storage.DirPermissions))
		if err != nil {
			return nil, fmt.Errorf("failed to initialize file storage: %w", err)
		}
		return s, nil
	case DriverMySQL:
		s, err := sqlstore.Open(sqlstore.MySQL, config.Storage.DSN, storeOptions(config))
		if err != nil {
			return nil, fmt.Errorf("failed to initialize mysql storage: %w", err)
		}
		return s, nil
	case DriverSQLite:
		if err := os.MkdirAll(config.Storage.Dir, os.FileMode(config.Storage.DirPermissions)); err != nil {
			return nil, fmt.Errorf("failed to create storage directory: %w", err)
		}
		s, err := sqlstore.Open(sqlstore.SQLite, config.GetDatabasePath(), storeOptions(config))
		if err != nil {
			return nil, fmt.Errorf("failed to initialize database: %w", err)
		}
		return s, nil
	default:
		return nil, &ConfigError{Field: "storage.driver", Message: "unknown storage driver " + config.Storage.Driver}
	}
}

func storeOptions(config *Config) sqlstore.Options {
	return sqlstore.Options{
		QueryTimeout: config.Storage.QueryTimeout,
		WriteTimeout: config.Storage.WriteTimeout,
	}
}
