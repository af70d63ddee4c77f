package cli

import (
	"context"
	"fmt"
	"io"

	"tasklist/internal/api"
	"tasklist/internal/errors"
)

// ToggleCommand handles the toggle command
type ToggleCommand struct {
	businessAPI  api.BusinessAPI
	errorHandler *ErrorHandler
	out          io.Writer
	errOut       io.Writer
	idLength     int
}

// NewToggleCommand creates a new toggle command handler
func NewToggleCommand(app *App) *ToggleCommand {
	return &ToggleCommand{
		businessAPI:  app.businessAPI,
		errorHandler: NewErrorHandler(app.logger),
		out:          app.out,
		errOut:       app.errOut,
		idLength:     app.idLength(),
	}
}

// Execute runs the toggle command
func (c *ToggleCommand) Execute(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errors.NewInvalidInputError("command", "toggle", "usage: tl toggle <id>")
	}

	task, err := c.businessAPI.ToggleTask(ctx, args[0])
	if err != nil {
		if c.errorHandler.IsNotFoundError(err) {
			fmt.Fprintf(c.out, "No task matches %q\n", args[0])
			return nil
		}
		return c.errorHandler.Handle("toggle task", err)
	}

	state := "Reopened"
	if task.Completed {
		state = "Completed"
	}
	fmt.Fprintf(c.out, "%s %s: %s\n", state, task.ShortID(c.idLength), task.Text)
	c.errorHandler.WarnUnsaved(c.errOut, c.businessAPI.SaveError())
	return nil
}
