package errors

import (
	"errors"
	"fmt"
)

type details = map[string]interface{}

func newError(errorType ErrorType, code, message string, cause error, ctx details) *AppError {
	if ctx == nil {
		ctx = details{}
	}
	return &AppError{Type: errorType, Code: code, Message: message, Cause: cause, Context: ctx}
}

// NewValidationError wraps a rejected task text or id. message is shown to
// the user as is.
func NewValidationError(message string, cause error) *AppError {
	return newError(ErrorTypeValidation, CodeValidation, message, cause, nil)
}

// NewNotFoundError reports a missing task or storage slot.
func NewNotFoundError(resource string, identifier string) *AppError {
	return newError(ErrorTypeNotFound, CodeNotFound,
		fmt.Sprintf("%s not found: %s", resource, identifier), nil,
		details{"resource": resource, "identifier": identifier})
}

// NewStorageError reports a failing storage backend.
func NewStorageError(operation string, cause error) *AppError {
	return newError(ErrorTypeStorage, CodeStorage,
		fmt.Sprintf("storage operation failed: %s", operation), cause,
		details{"operation": operation})
}

// NewSlotError is a storage error for one slot; the key is kept in the
// context so log lines name the slot.
func NewSlotError(operation, key string, cause error) *AppError {
	return NewStorageError(operation, cause).WithContext("key", key)
}

// NewInvalidInputError reports a malformed flag, filter, format or id prefix.
func NewInvalidInputError(field string, value interface{}, reason string) *AppError {
	return newError(ErrorTypeInvalidInput, CodeInvalidInput,
		fmt.Sprintf("invalid input for %s: %s", field, reason), nil,
		details{"field": field, "value": value, "reason": reason})
}

// NewTimeoutError reports an operation cut short by its context.
func NewTimeoutError(operation string, timeout interface{}) *AppError {
	return newError(ErrorTypeTimeout, CodeTimeout,
		fmt.Sprintf("operation timed out: %s", operation), nil,
		details{"operation": operation, "timeout": timeout})
}

// AsAppError finds an AppError anywhere in err's chain.
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// IsErrorType checks if the error is of the specified type
func IsErrorType(err error, errorType ErrorType) bool {
	appErr, ok := AsAppError(err)
	return ok && appErr.IsType(errorType)
}

// IsNotFound reports whether err is a not found AppError
func IsNotFound(err error) bool {
	return IsErrorType(err, ErrorTypeNotFound)
}

// LogFields returns the context of the AppError in err's chain as key/value
// pairs, or nil for other errors.
func LogFields(err error) []interface{} {
	if appErr, ok := AsAppError(err); ok {
		return appErr.Fields()
	}
	return nil
}

// GetUserMessage returns the message shown to the user. Backend failures
// get a generic message; the detail goes to the log.
func GetUserMessage(err error) string {
	appErr, ok := AsAppError(err)
	if !ok {
		return err.Error()
	}
	switch {
	case appErr.Type.UserError():
		return appErr.Message
	case appErr.Type == ErrorTypeStorage:
		return "Task storage is unavailable. Please try again."
	case appErr.Type == ErrorTypeTimeout:
		return "The operation timed out. Please try again."
	default:
		return "An unexpected error occurred. Please try again."
	}
}

// GetErrorCode returns the error code for the error
func GetErrorCode(err error) string {
	if appErr, ok := AsAppError(err); ok {
		return appErr.Code
	}
	return CodeUnknown
}

// ShouldLogError is false for user errors; anything else is worth a log line.
func ShouldLogError(err error) bool {
	appErr, ok := AsAppError(err)
	return !ok || !appErr.Type.UserError()
}
