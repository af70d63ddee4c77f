package cli

import (
	"context"
	"fmt"
	"io"

	"tasklist/internal/api"
	"tasklist/internal/errors"
)

// RemoveCommand handles the remove command
type RemoveCommand struct {
	businessAPI  api.BusinessAPI
	errorHandler *ErrorHandler
	out          io.Writer
	errOut       io.Writer
	idLength     int
}

// NewRemoveCommand creates a new remove command handler
func NewRemoveCommand(app *App) *RemoveCommand {
	return &RemoveCommand{
		businessAPI:  app.businessAPI,
		errorHandler: NewErrorHandler(app.logger),
		out:          app.out,
		errOut:       app.errOut,
		idLength:     app.idLength(),
	}
}

// Execute runs the remove command
func (c *RemoveCommand) Execute(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errors.NewInvalidInputError("command", "remove", "usage: tl remove <id>")
	}

	task, err := c.businessAPI.RemoveTask(ctx, args[0])
	if err != nil {
		if c.errorHandler.IsNotFoundError(err) {
			fmt.Fprintf(c.out, "No task matches %q\n", args[0])
			return nil
		}
		return c.errorHandler.Handle("remove task", err)
	}

	fmt.Fprintf(c.out, "Removed %s: %s\n", task.ShortID(c.idLength), task.Text)
	c.errorHandler.WarnUnsaved(c.errOut, c.businessAPI.SaveError())
	return nil
}
