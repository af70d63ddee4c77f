package validation

import (
	"strings"
	"unicode/utf8"

	"tasklist/internal/config"
)

// DefaultTextMaxLength is the longest task text accepted without configuration.
const DefaultTextMaxLength = 200

// Validator provides common validation utilities
type Validator struct {
	config *config.Config
}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return &Validator{
		config: nil, // Use defaults
	}
}

// NewValidatorWithConfig creates a new validator instance with configuration
func NewValidatorWithConfig(cfg *config.Config) *Validator {
	return &Validator{
		config: cfg,
	}
}

// IsNonEmptyString checks if a string is not empty after trimming whitespace
func (v *Validator) IsNonEmptyString(s string) bool {
	return strings.TrimSpace(s) != ""
}

// TextLength counts characters (code points) of s after trimming
func (v *Validator) TextLength(s string) int {
	return utf8.RuneCountInString(strings.TrimSpace(s))
}

// IsValidTextLength checks if trimmed text fits the configured maximum
func (v *Validator) IsValidTextLength(s string) bool {
	return v.TextLength(s) <= v.MaxTextLength()
}

// TrimString trims surrounding whitespace
func (v *Validator) TrimString(s string) string {
	return strings.TrimSpace(s)
}

// MaxTextLength returns configured maximum task text length or default
func (v *Validator) MaxTextLength() int {
	if v.config != nil && v.config.Validation.TextMaxLength > 0 {
		return v.config.Validation.TextMaxLength
	}
	return DefaultTextMaxLength
}
