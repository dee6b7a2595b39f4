package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeInvalidPath, "test message: %s", "value")

	if err.Code != ErrCodeInvalidPath {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeInvalidPath)
	}

	if err.Message != "test message: value" {
		t.Errorf("Message = %v, want %v", err.Message, "test message: value")
	}

	expected := "INVALID_PATH: test message: value"
	if err.Error() != expected {
		t.Errorf("Error() = %v, want %v", err.Error(), expected)
	}
}

func TestWrap(t *testing.T) {
	cause := errors.New("underlying error")
	err := Wrap(ErrCodeInvalidRule, cause, "line 3")

	if err.Code != ErrCodeInvalidRule {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeInvalidRule)
	}

	if err.Cause != cause {
		t.Errorf("Cause = %v, want %v", err.Cause, cause)
	}

	unwrapped := errors.Unwrap(err)
	if unwrapped != cause {
		t.Errorf("Unwrap() = %v, want %v", unwrapped, cause)
	}

	if !errors.Is(err, cause) {
		t.Error("errors.Is(err, cause) = false, want true")
	}
}

func TestIs(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		code     Code
		expected bool
	}{
		{
			name:     "matching code",
			err:      MissingField("lcsc"),
			code:     ErrCodeMissingField,
			expected: true,
		},
		{
			name:     "non-matching code",
			err:      MissingField("lcsc"),
			code:     ErrCodeInvalidDimension,
			expected: false,
		},
		{
			name:     "wrapped by fmt",
			err:      fmt.Errorf("components.csv row 4: %w", InvalidDimension("x", "abc")),
			code:     ErrCodeInvalidDimension,
			expected: true,
		},
		{
			name:     "non-Error type",
			err:      errors.New("plain error"),
			code:     ErrCodeMissingField,
			expected: false,
		},
		{
			name:     "nil error",
			err:      nil,
			code:     ErrCodeMissingField,
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Is(tt.err, tt.code); got != tt.expected {
				t.Errorf("Is() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestGetCode(t *testing.T) {
	if got := GetCode(MissingField("ref")); got != ErrCodeMissingField {
		t.Errorf("GetCode() = %v, want %v", got, ErrCodeMissingField)
	}
	if got := GetCode(errors.New("plain")); got != "" {
		t.Errorf("GetCode() = %v, want empty", got)
	}
}

func TestUserMessage(t *testing.T) {
	if got := UserMessage(MissingField("footprint")); got != `missing field "footprint"` {
		t.Errorf("UserMessage() = %q", got)
	}

	wrapped := Wrap(ErrCodeInvalidRule, errors.New("bad regexp"), "rotations.cf line 2")
	if got := UserMessage(wrapped); got != "rotations.cf line 2: bad regexp" {
		t.Errorf("UserMessage() = %q", got)
	}

	if got := UserMessage(errors.New("plain")); got != "plain" {
		t.Errorf("UserMessage() = %q", got)
	}
}

func TestFieldOf(t *testing.T) {
	err := fmt.Errorf("row 2: %w", InvalidDimension("rot", "north"))
	field, ok := FieldOf(err)
	if !ok || field != "rot" {
		t.Errorf("FieldOf() = %q, %v; want rot, true", field, ok)
	}

	if _, ok := FieldOf(New(ErrCodeInvalidPath, "x")); ok {
		t.Error("FieldOf() should report false for errors without a field")
	}
}
