package cli

import (
	"context"

	"tasklist/internal/api"
	"tasklist/internal/config"
	"tasklist/internal/ui"
)

// UICommand handles the interactive ui command
type UICommand struct {
	businessAPI api.BusinessAPI
	config      *config.Config
	run         func(ctx context.Context, a api.BusinessAPI, opts ui.Options) error
}

// NewUICommand creates a new ui command handler
func NewUICommand(app *App) *UICommand {
	return &UICommand{
		businessAPI: app.businessAPI,
		config:      app.config,
		run:         ui.Run,
	}
}

// Execute runs the terminal UI until the user quits
func (c *UICommand) Execute(ctx context.Context, args []string) error {
	return c.run(ctx, c.businessAPI, ui.OptionsFromConfig(c.config))
}
