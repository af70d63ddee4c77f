package main

import (
	"fmt"
	"os"

	"tasklist/internal/config"
	"tasklist/internal/storage"
)

// Environment represents the current environment
type Environment string

const (
	Development Environment = "development"
	Testing     Environment = "testing"
	Production  Environment = "production"
)

// StorageFactory creates storage instances based on environment
type StorageFactory struct {
	env    Environment
	config *config.Config
}

// NewStorageFactory creates a new storage factory for the given environment
func NewStorageFactory(env Environment, cfg *config.Config) *StorageFactory {
	return &StorageFactory{env: env, config: cfg}
}

// CreateStorage creates a storage instance based on the current environment
func (sf *StorageFactory) CreateStorage() (storage.Storage, error) {
	switch sf.env {
	case Development:
		return sf.createDevelopmentStorage()
	case Testing:
		return sf.createTestingStorage()
	default:
		return sf.createProductionStorage()
	}
}

// createDevelopmentStorage uses a local SQLite database in the working directory
func (sf *StorageFactory) createDevelopmentStorage() (storage.Storage, error) {
	cfg := *sf.config
	cfg.Storage.Driver = config.DriverSQLite
	cfg.Storage.Dir = "."

	st, err := config.CreateStorage(&cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize development storage: %w", err)
	}
	return st, nil
}

// createTestingStorage keeps everything in memory
func (sf *StorageFactory) createTestingStorage() (storage.Storage, error) {
	return storage.NewMemory(), nil
}

// createProductionStorage uses the configured driver
func (sf *StorageFactory) createProductionStorage() (storage.Storage, error) {
	st, err := config.CreateStorage(sf.config)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}
	return st, nil
}

// getEnvironment determines the current environment
func getEnvironment() Environment {
	switch os.Getenv("TL_ENV") {
	case "development":
		return Development
	case "testing":
		return Testing
	default:
		// Default to production for safety
		return Production
	}
}
