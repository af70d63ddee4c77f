package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"tasklist/internal/errors"
	"tasklist/internal/validation"
)

// ErrorHandler provides centralized error handling for command handlers
type ErrorHandler struct {
	logger *log.Logger
}

// NewErrorHandler creates a new error handler
func NewErrorHandler(logger *log.Logger) *ErrorHandler {
	return &ErrorHandler{logger: logger}
}

// Handle provides user-friendly error messages for validation and other errors
func (eh *ErrorHandler) Handle(operation string, err error) error {
	eh.log(operation, err)

	if _, ok := errors.AsAppError(err); ok {
		return fmt.Errorf("failed to %s: %s", operation, errors.GetUserMessage(err))
	}

	if validationErr, ok := validation.AsValidationError(err); ok {
		return fmt.Errorf("failed to %s: %s", operation, validationErr.GetUserFriendlyMessage())
	}

	return fmt.Errorf("failed to %s: %w", operation, err)
}

// HandleSimple provides user-friendly error messages without operation context
func (eh *ErrorHandler) HandleSimple(err error) error {
	if _, ok := errors.AsAppError(err); ok {
		return fmt.Errorf("%s", errors.GetUserMessage(err))
	}
	if validationErr, ok := validation.AsValidationError(err); ok {
		return fmt.Errorf("%s", validationErr.GetUserFriendlyMessage())
	}
	return err
}

// IsNotFoundError checks if an error is a not found error
func (eh *ErrorHandler) IsNotFoundError(err error) bool {
	return errors.IsNotFound(err)
}

// WarnUnsaved tells the user on w that a change succeeded in memory but did
// not reach storage. It does nothing when saveErr is nil.
func (eh *ErrorHandler) WarnUnsaved(w io.Writer, saveErr error) {
	if saveErr == nil {
		return
	}
	fmt.Fprintf(w, "Warning: change not saved: %s\n", errors.GetUserMessage(saveErr))
}

func (eh *ErrorHandler) log(operation string, err error) {
	if eh.logger == nil || !errors.ShouldLogError(err) {
		return
	}
	fields := []interface{}{"operation", operation, "code", errors.GetErrorCode(err)}
	fields = append(fields, errors.LogFields(err)...)
	eh.logger.Error("command failed", append(fields, "err", err)...)
}
