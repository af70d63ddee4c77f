package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tasklist/internal/config"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		valid     bool
		kind      ValidationErrorType
		errorText string
	}{
		{"empty", "", false, ErrorTypeEmptyInput, "Task cannot be empty"},
		{"whitespace only", "   ", false, ErrorTypeEmptyInput, "Task cannot be empty"},
		{"tabs and newlines", "\t\n ", false, ErrorTypeEmptyInput, "Task cannot be empty"},
		{"one character", "x", true, "", ""},
		{"exactly 200", strings.Repeat("x", 200), true, "", ""},
		{"201 characters", strings.Repeat("x", 201), false, ErrorTypeTooLong, "Task too long (max 200 characters)"},
		{"200 after trimming", "   " + strings.Repeat("x", 200) + "   ", true, "", ""},
		{"200 multibyte", strings.Repeat("é", 200), true, "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Validate(tt.input)
			assert.Equal(t, tt.valid, result.IsValid)
			assert.Equal(t, tt.kind, result.Kind)
			assert.Equal(t, tt.errorText, result.Error)
		})
	}
}

func TestTaskValidator_ValidateText(t *testing.T) {
	validator := NewTaskValidator()

	err := validator.ValidateText("   ")
	require.Error(t, err)
	assert.True(t, IsEmptyInput(err))

	err = validator.ValidateText(strings.Repeat("a", 201))
	require.Error(t, err)
	assert.True(t, IsTooLong(err))

	assert.NoError(t, validator.ValidateText("Buy milk"))
}

func TestTaskValidator_WithConfig(t *testing.T) {
	cfg := config.NewConfig()
	cfg.Validation.TextMaxLength = 5
	validator := NewTaskValidatorWithConfig(cfg)

	result := validator.Validate("too long")
	assert.False(t, result.IsValid)
	assert.Equal(t, "Task too long (max 5 characters)", result.Error)
	assert.Equal(t, 5, validator.MaxTextLength())
}

func TestTaskValidator_GetValidText(t *testing.T) {
	validator := NewTaskValidator()

	text, err := validator.GetValidText("  Buy milk  ")
	require.NoError(t, err)
	assert.Equal(t, "Buy milk", text)

	_, err = validator.GetValidText("")
	assert.Error(t, err)
}

func TestTaskValidator_ValidateID(t *testing.T) {
	validator := NewTaskValidator()

	assert.NoError(t, validator.ValidateID("3f2a"))

	err := validator.ValidateID("  ")
	require.Error(t, err)
	ve, ok := AsValidationError(err)
	require.True(t, ok)
	assert.Equal(t, ErrorTypeInvalidValue, ve.Errors[0].Type)
}

func TestTaskValidator_GetStoredText(t *testing.T) {
	cfg := config.NewConfig()
	cfg.Validation.TextMaxLength = 10
	validator := NewTaskValidatorWithConfig(cfg)

	long := strings.Repeat("y", 50)
	text, err := validator.GetStoredText("  " + long + " ")
	require.NoError(t, err)
	assert.Equal(t, long, text)

	_, err = validator.GetStoredText(" \t ")
	require.Error(t, err)
	assert.True(t, IsEmptyInput(err))
}
