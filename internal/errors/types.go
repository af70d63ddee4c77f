package errors

import (
	"fmt"
	"sort"
)

// ErrorType represents the category of error
type ErrorType int

const (
	ErrorTypeValidation ErrorType = iota
	ErrorTypeNotFound
	ErrorTypeStorage
	ErrorTypeInvalidInput
	ErrorTypeTimeout
)

var typeNames = map[ErrorType]string{
	ErrorTypeValidation:   "validation",
	ErrorTypeNotFound:     "not_found",
	ErrorTypeStorage:      "storage",
	ErrorTypeInvalidInput: "invalid_input",
	ErrorTypeTimeout:      "timeout",
}

// String returns the string representation of the error type
func (et ErrorType) String() string {
	if name, ok := typeNames[et]; ok {
		return name
	}
	return "unknown"
}

// UserError reports whether errors of this type come from bad user input
// rather than a failing backend.
func (et ErrorType) UserError() bool {
	switch et {
	case ErrorTypeValidation, ErrorTypeNotFound, ErrorTypeInvalidInput:
		return true
	}
	return false
}

// Codes carried in AppError.Code.
const (
	CodeValidation   = "VALIDATION_FAILED"
	CodeNotFound     = "NOT_FOUND"
	CodeStorage      = "STORAGE_ERROR"
	CodeInvalidInput = "INVALID_INPUT"
	CodeTimeout      = "TIMEOUT"
	CodeUnknown      = "UNKNOWN_ERROR"
)

// AppError is a categorized failure with a stable code and key/value
// context such as the slot key or the rejected field.
type AppError struct {
	Type    ErrorType
	Message string
	Code    string
	Cause   error
	Context map[string]interface{}
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// Is matches another AppError with the same type and code.
func (e *AppError) Is(target error) bool {
	appErr, ok := target.(*AppError)
	return ok && e.Type == appErr.Type && e.Code == appErr.Code
}

// IsType checks if this error is of the specified type
func (e *AppError) IsType(errorType ErrorType) bool {
	return e.Type == errorType
}

// WithContext sets a context value and returns e for chaining.
func (e *AppError) WithContext(key string, value interface{}) *AppError {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value
	return e
}

// Fields flattens the context into sorted key/value pairs for a structured
// logger.
func (e *AppError) Fields() []interface{} {
	keys := make([]string, 0, len(e.Context))
	for key := range e.Context {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	fields := make([]interface{}, 0, 2*len(keys))
	for _, key := range keys {
		fields = append(fields, key, e.Context[key])
	}
	return fields
}
