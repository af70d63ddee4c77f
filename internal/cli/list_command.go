package cli

import (
	"context"
	"fmt"
	"io"

	"tasklist/internal/api"
	"tasklist/internal/config"
	"tasklist/internal/domain"
	"tasklist/internal/view"
)

// ListOptions selects what the list command shows
type ListOptions struct {
	Filter string
	Oldest bool
}

// ListCommand handles the list command
type ListCommand struct {
	businessAPI  api.BusinessAPI
	errorHandler *ErrorHandler
	config       *config.Config
	out          io.Writer
	opts         ListOptions
}

// NewListCommand creates a new list command handler
func NewListCommand(app *App, opts ListOptions) *ListCommand {
	return &ListCommand{
		businessAPI:  app.businessAPI,
		errorHandler: NewErrorHandler(app.logger),
		config:       app.config,
		out:          app.out,
		opts:         opts,
	}
}

// Execute runs the list command
func (c *ListCommand) Execute(ctx context.Context, args []string) error {
	filter, err := domain.ParseFilter(c.opts.Filter)
	if err != nil {
		return c.errorHandler.HandleSimple(err)
	}

	listing, err := c.businessAPI.ListTasks(ctx, filter, c.opts.Oldest)
	if err != nil {
		return c.errorHandler.Handle("list tasks", err)
	}

	c.printTasks(listing)
	return nil
}

// printTasks prints one line per task in the format:
// [x] shortID  text  (created)
// followed by the summary counters for the whole collection.
func (c *ListCommand) printTasks(listing *api.TaskView) {
	if len(listing.Tasks) == 0 {
		fmt.Fprintln(c.out, "No tasks found")
	}

	now := timeNow()
	for _, task := range listing.Tasks {
		created := view.FormatCreated(task.CreatedAt, now, c.config.Display.RelativeTime, c.config.Display.TimeFormat)
		fmt.Fprintf(c.out, "%s %s  %s  (%s)\n", task.Checkbox(), task.ShortID(c.config.Display.IDLength), task.Text, created)
	}

	fmt.Fprintln(c.out)
	fmt.Fprintln(c.out, view.FormatSummary(listing.Summary))
}
