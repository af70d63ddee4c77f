package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"tasklist/internal/api"
	"tasklist/internal/domain"
	"tasklist/internal/export"
)

// ExportOptions selects the export document and its contents
type ExportOptions struct {
	Format string
	Filter string
	Oldest bool
	Output string
}

// ExportCommand handles the export command
type ExportCommand struct {
	businessAPI  api.BusinessAPI
	errorHandler *ErrorHandler
	out          io.Writer
	errOut       io.Writer
	opts         ExportOptions
	docOpts      export.Options
}

// NewExportCommand creates a new export command handler
func NewExportCommand(app *App, opts ExportOptions) *ExportCommand {
	return &ExportCommand{
		businessAPI:  app.businessAPI,
		errorHandler: NewErrorHandler(app.logger),
		out:          app.out,
		errOut:       app.errOut,
		opts:         opts,
		docOpts:      export.Options{PDFFont: app.config.Export.PDFFont},
	}
}

// Execute runs the export command
func (c *ExportCommand) Execute(ctx context.Context, args []string) error {
	format, err := export.ParseFormat(c.opts.Format)
	if err != nil {
		return c.errorHandler.HandleSimple(err)
	}
	filter, err := domain.ParseFilter(c.opts.Filter)
	if err != nil {
		return c.errorHandler.HandleSimple(err)
	}

	listing, err := c.businessAPI.ListTasks(ctx, filter, c.opts.Oldest)
	if err != nil {
		return c.errorHandler.Handle("export tasks", err)
	}

	if c.opts.Output == "" {
		if err := export.Write(c.out, listing.Tasks, format, c.docOpts); err != nil {
			return c.errorHandler.Handle("export tasks", err)
		}
		return nil
	}

	data, err := export.Render(listing.Tasks, format, c.docOpts)
	if err != nil {
		return c.errorHandler.Handle("export tasks", err)
	}
	if err := os.WriteFile(c.opts.Output, data, 0644); err != nil {
		return fmt.Errorf("failed to export tasks: %w", err)
	}
	fmt.Fprintf(c.errOut, "Exported %d tasks to %s\n", len(listing.Tasks), c.opts.Output)
	return nil
}
