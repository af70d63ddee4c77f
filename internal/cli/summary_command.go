package cli

import (
	"context"
	"fmt"
	"io"

	"tasklist/internal/api"
	"tasklist/internal/view"
)

// SummaryCommand handles the summary command
type SummaryCommand struct {
	businessAPI api.BusinessAPI
	out         io.Writer
}

// NewSummaryCommand creates a new summary command handler
func NewSummaryCommand(app *App) *SummaryCommand {
	return &SummaryCommand{
		businessAPI: app.businessAPI,
		out:         app.out,
	}
}

// Execute runs the summary command
func (c *SummaryCommand) Execute(ctx context.Context, args []string) error {
	fmt.Fprintln(c.out, view.FormatSummary(c.businessAPI.GetSummary(ctx)))
	return nil
}
