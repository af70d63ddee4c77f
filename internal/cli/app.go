package cli

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"

	"tasklist/internal/api"
	"tasklist/internal/config"
	"tasklist/internal/logging"
	"tasklist/internal/storage"
	"tasklist/internal/store"
	"tasklist/internal/validation"
)

// timeNow is a variable that can be replaced in tests
var timeNow = time.Now

// App represents the main CLI application
type App struct {
	businessAPI api.BusinessAPI
	config      *config.Config
	logger      *log.Logger
	storage     storage.Storage
	out         io.Writer
	errOut      io.Writer
}

// AppFactory builds the App once configuration has been resolved from
// files, environment and flags.
type AppFactory func(cfg *config.Config) (*App, error)

// NewApp loads the task collection from st and wires the API over it
func NewApp(ctx context.Context, cfg *config.Config, st storage.Storage, logger *log.Logger, opts ...store.Option) *App {
	if logger == nil {
		logger = logging.Discard()
	}
	storeOpts := []store.Option{
		store.WithKey(cfg.Storage.Key),
		store.WithLogger(logger),
		store.WithValidator(validation.NewTaskValidatorWithConfig(cfg)),
	}
	s := store.New(st, append(storeOpts, opts...)...)
	s.LoadAll(ctx)

	app := NewAppWithConfig(api.NewBusinessAPI(s), cfg)
	app.logger = logger
	app.storage = st
	return app
}

// NewAppWithConfig creates an App around an existing API instance
func NewAppWithConfig(businessAPI api.BusinessAPI, cfg *config.Config) *App {
	if cfg == nil {
		cfg = config.NewConfig()
	}
	return &App{
		businessAPI: businessAPI,
		config:      cfg,
		logger:      logging.Discard(),
		out:         os.Stdout,
		errOut:      os.Stderr,
	}
}

// SetOutput redirects command output
func (a *App) SetOutput(out, errOut io.Writer) {
	a.out = out
	a.errOut = errOut
}

// Close releases the storage backend
func (a *App) Close() error {
	if a.storage == nil {
		return nil
	}
	err := a.storage.Close()
	a.storage = nil
	return err
}

func (a *App) idLength() int {
	return a.config.Display.IDLength
}
