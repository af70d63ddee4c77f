package main

import (
	"context"
	"fmt"
	"os"

	"tasklist/internal/cli"
	"tasklist/internal/config"
	"tasklist/internal/logging"
)

func main() {
	root := cli.NewRootCommand(openApp)

	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// openApp creates storage for the current environment and loads the task
// list from it
func openApp(cfg *config.Config) (*cli.App, error) {
	logger := logging.FromConfig(cfg)

	factory := NewStorageFactory(getEnvironment(), cfg)
	st, err := factory.CreateStorage()
	if err != nil {
		return nil, fmt.Errorf("error creating storage: %w", err)
	}
	logger.Debug("storage ready", "driver", cfg.Storage.Driver, "key", cfg.Storage.Key)

	return cli.NewApp(context.Background(), cfg, st, logger), nil
}
