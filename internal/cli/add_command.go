package cli

import (
	"context"
	"fmt"
	"io"
	"strings"

	"tasklist/internal/api"
	"tasklist/internal/errors"
)

// AddCommand handles the add command
type AddCommand struct {
	businessAPI  api.BusinessAPI
	errorHandler *ErrorHandler
	out          io.Writer
	errOut       io.Writer
	idLength     int
}

// NewAddCommand creates a new add command handler
func NewAddCommand(app *App) *AddCommand {
	return &AddCommand{
		businessAPI:  app.businessAPI,
		errorHandler: NewErrorHandler(app.logger),
		out:          app.out,
		errOut:       app.errOut,
		idLength:     app.idLength(),
	}
}

// Execute runs the add command
func (c *AddCommand) Execute(ctx context.Context, args []string) error {
	if len(args) < 1 {
		return errors.NewInvalidInputError("command", "add", "usage: tl add \"your task here\"")
	}

	task, err := c.businessAPI.AddTask(ctx, strings.Join(args, " "))
	if err != nil {
		return c.errorHandler.Handle("add task", err)
	}

	fmt.Fprintf(c.out, "Added %s: %s\n", task.ShortID(c.idLength), task.Text)
	c.errorHandler.WarnUnsaved(c.errOut, c.businessAPI.SaveError())
	return nil
}
