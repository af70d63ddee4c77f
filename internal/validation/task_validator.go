package validation

import (
	"fmt"
	"strings"

	"tasklist/internal/config"
)

// EmptyInputMessage is reported for blank task text.
const EmptyInputMessage = "Task cannot be empty"

// TooLongMessage is reported for task text longer than max characters.
func TooLongMessage(max int) string {
	return fmt.Sprintf("Task too long (max %d characters)", max)
}

// Result is the outcome of validating raw task text.
type Result struct {
	IsValid bool
	Error   string
	Kind    ValidationErrorType
}

// TaskValidator provides validation for task text
type TaskValidator struct {
	validator *Validator
}

// NewTaskValidator creates a new task validator
func NewTaskValidator() *TaskValidator {
	return &TaskValidator{
		validator: NewValidator(),
	}
}

// NewTaskValidatorWithConfig creates a task validator honoring configured limits
func NewTaskValidatorWithConfig(cfg *config.Config) *TaskValidator {
	return &TaskValidator{
		validator: NewValidatorWithConfig(cfg),
	}
}

// Validate checks raw task text with the default limits.
func Validate(rawText string) Result {
	return NewTaskValidator().Validate(rawText)
}

// Validate checks raw task text and reports the first problem found.
func (tv *TaskValidator) Validate(rawText string) Result {
	ve, ok := AsValidationError(tv.ValidateText(rawText))
	if !ok {
		return Result{IsValid: true}
	}
	fe := ve.GetFieldErrors("text")[0]
	return Result{IsValid: false, Error: fe.Message, Kind: fe.Type}
}

// ValidateText validates task text for creation
func (tv *TaskValidator) ValidateText(text string) error {
	validationError := NewValidationError()

	trimmed := tv.validator.TrimString(text)
	switch {
	case !tv.validator.IsNonEmptyString(trimmed):
		validationError.AddEmptyInputError("text")
	case !tv.validator.IsValidTextLength(trimmed):
		validationError.AddTooLongError("text", trimmed, tv.validator.MaxTextLength())
	}

	if validationError.HasErrors() {
		return validationError
	}
	return nil
}

// ValidateID checks that a task id is not blank
func (tv *TaskValidator) ValidateID(id string) error {
	if strings.TrimSpace(id) == "" {
		validationError := NewValidationError()
		validationError.AddInvalidValueError("id", id, "must not be empty")
		return validationError
	}
	return nil
}

// GetValidText returns the trimmed text if valid
func (tv *TaskValidator) GetValidText(text string) (string, error) {
	if err := tv.ValidateText(text); err != nil {
		return "", err
	}
	return tv.validator.TrimString(text), nil
}

// GetStoredText trims text read back from storage. Only blank text is
// rejected: the length limit applies to new tasks, and a lowered limit must
// not drop tasks that were saved under a higher one.
func (tv *TaskValidator) GetStoredText(text string) (string, error) {
	if !tv.validator.IsNonEmptyString(text) {
		validationError := NewValidationError()
		validationError.AddEmptyInputError("text")
		return "", validationError
	}
	return tv.validator.TrimString(text), nil
}

// MaxTextLength exposes the limit in effect
func (tv *TaskValidator) MaxTextLength() int {
	return tv.validator.MaxTextLength()
}
