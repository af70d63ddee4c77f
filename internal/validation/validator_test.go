package validation

import (
	"strings"
	"testing"

	"tasklist/internal/config"
)

func TestValidator_IsNonEmptyString(t *testing.T) {
	validator := NewValidator()

	tests := []struct {
		name     string
		input    string
		expected bool
	}{
		{"Empty string", "", false},
		{"Whitespace only", "   ", false},
		{"Tab and newline", "\t\n", false},
		{"Valid string", "hello", true},
		{"String with leading/trailing spaces", "  hello  ", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if result := validator.IsNonEmptyString(tt.input); result != tt.expected {
				t.Errorf("IsNonEmptyString(%q) = %v, expected %v", tt.input, result, tt.expected)
			}
		})
	}
}

func TestValidator_TextLength(t *testing.T) {
	validator := NewValidator()

	tests := []struct {
		name     string
		input    string
		expected int
	}{
		{"ascii", "milk", 4},
		{"trimmed", "  milk \n", 4},
		{"multibyte counts code points", "café ☕", 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if result := validator.TextLength(tt.input); result != tt.expected {
				t.Errorf("TextLength(%q) = %d, expected %d", tt.input, result, tt.expected)
			}
		})
	}
}

func TestValidator_MaxTextLength(t *testing.T) {
	if got := NewValidator().MaxTextLength(); got != DefaultTextMaxLength {
		t.Errorf("default MaxTextLength() = %d", got)
	}

	cfg := config.NewConfig()
	cfg.Validation.TextMaxLength = 10
	validator := NewValidatorWithConfig(cfg)
	if got := validator.MaxTextLength(); got != 10 {
		t.Errorf("configured MaxTextLength() = %d", got)
	}
	if validator.IsValidTextLength(strings.Repeat("a", 11)) {
		t.Errorf("11 characters should exceed a limit of 10")
	}
	if !validator.IsValidTextLength("  " + strings.Repeat("a", 10) + "  ") {
		t.Errorf("surrounding whitespace should not count")
	}
}
