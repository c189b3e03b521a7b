package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestStructuredError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *StructuredError
		want string
	}{
		{
			name: "without cause",
			err:  New(ErrCodeInvalidInput, "axis count must be a positive integer"),
			want: "[INVALID_INPUT] axis count must be a positive integer",
		},
		{
			name: "with cause",
			err:  Wrap(ErrCodeInternal, "encode failed", fmt.Errorf("broken pipe")),
			want: "[INTERNAL] encode failed: broken pipe",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestStructuredError_Unwrap(t *testing.T) {
	cause := fmt.Errorf("root cause")
	err := Wrap(ErrCodeInternal, "wrapped", cause)

	if !errors.Is(err, cause) {
		t.Error("errors.Is should find the wrapped cause")
	}

	var se *StructuredError
	if !errors.As(err, &se) {
		t.Fatal("errors.As should find StructuredError")
	}
	if se.Code != ErrCodeInternal {
		t.Errorf("Code = %v, want %v", se.Code, ErrCodeInternal)
	}
}

func TestCodeOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want ErrorCode
	}{
		{
			name: "direct structured error",
			err:  New(ErrCodeInvalidInput, "bad"),
			want: ErrCodeInvalidInput,
		},
		{
			name: "wrapped in fmt",
			err:  fmt.Errorf("context: %w", New(ErrCodeNotFound, "missing")),
			want: ErrCodeNotFound,
		},
		{
			name: "plain error",
			err:  fmt.Errorf("plain"),
			want: "",
		},
		{
			name: "nil",
			err:  nil,
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CodeOf(tt.err); got != tt.want {
				t.Errorf("CodeOf() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestIsInvalidInput(t *testing.T) {
	bad := NewWithContext(ErrCodeInvalidInput, "axis count must be a positive integer",
		map[string]any{"axis": 1, "input": "0"})

	if !IsInvalidInput(bad) {
		t.Error("expected IsInvalidInput to be true")
	}
	if !IsInvalidInput(fmt.Errorf("wrap: %w", bad)) {
		t.Error("expected IsInvalidInput to see through wrapping")
	}
	if IsInvalidInput(New(ErrCodeInternal, "boom")) {
		t.Error("expected IsInvalidInput false for other codes")
	}
}
