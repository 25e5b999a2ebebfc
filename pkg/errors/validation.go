package errors

import (
	"strings"
	"unicode"
)

// ValidatePath validates a file path given on the command line.
//
// Validation rules:
//   - Path cannot be empty or whitespace
//   - Maximum length of 4096 characters
//   - No null bytes or control characters
func ValidatePath(path string) error {
	if strings.TrimSpace(path) == "" {
		return New(ErrCodeInvalidInput, "path cannot be empty")
	}

	const maxPathLength = 4096
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidInput, "path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "path contains invalid characters")
		}
	}

	return nil
}

// ValidatePositive checks that an integer setting is strictly positive.
func ValidatePositive(name string, v int) error {
	if v <= 0 {
		return New(ErrCodeInvalidConfig, "%s must be positive, got %d", name, v)
	}
	return nil
}

// ValidateNonNegative checks that an integer setting is zero or greater.
func ValidateNonNegative(name string, v int) error {
	if v < 0 {
		return New(ErrCodeInvalidConfig, "%s must not be negative, got %d", name, v)
	}
	return nil
}

// ValidateOneOf checks that value is one of the allowed choices.
func ValidateOneOf(name, value string, allowed ...string) error {
	for _, a := range allowed {
		if value == a {
			return nil
		}
	}
	return New(ErrCodeInvalidConfig, "invalid %s: %q (must be one of: %s)", name, value, strings.Join(allowed, ", "))
}
