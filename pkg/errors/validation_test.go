package errors

import (
	"strings"
	"testing"
)

func TestValidatePath(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"relative", "photo.jpg", false},
		{"absolute", "/tmp/out/sheet.pdf", false},
		{"with spaces", "my photos/me.png", false},

		{"empty", "", true},
		{"whitespace", "   ", true},
		{"too long", strings.Repeat("a", 5000), true},
		{"null byte", "foo\x00bar", true},
		{"control char", "foo\x01bar", true},
		{"newline", "foo\nbar", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePath(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidatePath(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidInput) {
				t.Errorf("ValidatePath(%q) code = %v, want %v", tt.input, GetCode(err), ErrCodeInvalidInput)
			}
		})
	}
}

func TestValidatePositive(t *testing.T) {
	if err := ValidatePositive("rows", 3); err != nil {
		t.Errorf("ValidatePositive(3) = %v, want nil", err)
	}
	for _, v := range []int{0, -1} {
		err := ValidatePositive("rows", v)
		if !Is(err, ErrCodeInvalidConfig) {
			t.Errorf("ValidatePositive(%d) = %v, want %s", v, err, ErrCodeInvalidConfig)
		}
	}
}

func TestValidateNonNegative(t *testing.T) {
	if err := ValidateNonNegative("border", 0); err != nil {
		t.Errorf("ValidateNonNegative(0) = %v, want nil", err)
	}
	if err := ValidateNonNegative("border", -2); !Is(err, ErrCodeInvalidConfig) {
		t.Errorf("ValidateNonNegative(-2) = %v, want %s", err, ErrCodeInvalidConfig)
	}
}

func TestValidateOneOf(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		wantErr bool
	}{
		{"first", "dotted", false},
		{"last", "none", false},
		{"unknown", "dashed", true},
		{"empty", "", true},
		{"case sensitive", "Dotted", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateOneOf("guide style", tt.value, "dotted", "solid", "none")
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateOneOf(%q) error = %v, wantErr %v", tt.value, err, tt.wantErr)
			}
		})
	}
}
