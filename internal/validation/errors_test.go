package validation

import (
	"fmt"
	"strings"
	"testing"
)

func TestValidationError_Error(t *testing.T) {
	tests := []struct {
		name        string
		errors      []FieldError
		expectError string
	}{
		{"No errors", []FieldError{}, "validation error"},
		{"Single error", []FieldError{{Field: "text", Message: EmptyInputMessage}}, "validation error for field 'text': Task cannot be empty"},
		{"Multiple errors", []FieldError{
			{Field: "text", Message: EmptyInputMessage},
			{Field: "id", Message: "id has invalid value: must not be empty"},
		}, "multiple validation errors"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ve := &ValidationError{Errors: tt.errors}
			result := ve.Error()

			if len(tt.errors) > 1 {
				if !strings.Contains(result, tt.expectError) {
					t.Errorf("ValidationError.Error() = %v, expected to contain %v", result, tt.expectError)
				}
				return
			}
			if result != tt.expectError {
				t.Errorf("ValidationError.Error() = %v, expected %v", result, tt.expectError)
			}
		})
	}
}

func TestValidationError_Kinds(t *testing.T) {
	empty := NewValidationError()
	empty.AddEmptyInputError("text")

	long := NewValidationError()
	long.AddTooLongError("text", "xxx", 2)

	if !IsEmptyInput(empty) || IsTooLong(empty) {
		t.Errorf("empty input error misclassified")
	}
	if !IsTooLong(long) || IsEmptyInput(long) {
		t.Errorf("too long error misclassified")
	}
	if long.Errors[0].Message != "Task too long (max 2 characters)" {
		t.Errorf("unexpected message %q", long.Errors[0].Message)
	}

	wrapped := fmt.Errorf("add task: %w", empty)
	if _, ok := AsValidationError(wrapped); !ok || !IsEmptyInput(wrapped) {
		t.Errorf("kind helpers should see through wrapping")
	}
	if IsEmptyInput(fmt.Errorf("plain")) {
		t.Errorf("plain errors carry no kind")
	}
}

func TestValidationError_GetUserFriendlyMessage(t *testing.T) {
	ve := NewValidationError()
	if ve.HasErrors() {
		t.Fatalf("new error should be empty")
	}
	if msg := ve.GetUserFriendlyMessage(); msg != "Input validation failed" {
		t.Errorf("empty message = %q", msg)
	}

	ve.AddEmptyInputError("text")
	if msg := ve.GetUserFriendlyMessage(); msg != EmptyInputMessage {
		t.Errorf("single message = %q", msg)
	}

	ve.AddInvalidValueError("id", "", "must not be empty")
	msg := ve.GetUserFriendlyMessage()
	if !strings.HasPrefix(msg, "Multiple validation errors occurred:") || !strings.Contains(msg, "- Task cannot be empty") {
		t.Errorf("multi message = %q", msg)
	}
	if got := ve.GetFieldErrors("id"); len(got) != 1 || got[0].Type != ErrorTypeInvalidValue {
		t.Errorf("GetFieldErrors(id) = %+v", got)
	}
}
