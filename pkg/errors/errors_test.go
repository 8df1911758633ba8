package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeUsage, "wrong argument count")
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if err.Code != ErrCodeUsage {
		t.Errorf("expected code %s, got %s", ErrCodeUsage, err.Code)
	}
	if err.Message != "wrong argument count" {
		t.Errorf("expected message 'wrong argument count', got %s", err.Message)
	}
	if err.Cause != nil {
		t.Errorf("expected nil cause, got %v", err.Cause)
	}
}

func TestWrap(t *testing.T) {
	cause := errors.New("segment count must be between 1 and 4")
	err := Wrap(ErrCodeOutOfRange, "invalid segments", cause)

	if err.Code != ErrCodeOutOfRange {
		t.Errorf("expected code %s, got %s", ErrCodeOutOfRange, err.Code)
	}
	if !errors.Is(err, cause) {
		t.Errorf("expected cause to be wrapped")
	}
}

func TestWrapWithContext(t *testing.T) {
	cause := errors.New("too long")
	ctx := map[string]any{
		"length": 45,
		"max":    44,
	}

	err := WrapWithContext(ErrCodeOutOfRange, "version length out of range", cause, ctx)

	if err.Code != ErrCodeOutOfRange {
		t.Errorf("expected code %s, got %s", ErrCodeOutOfRange, err.Code)
	}
	if err.Context == nil {
		t.Fatal("expected context to be set")
	}
	if err.Context["length"] != 45 {
		t.Errorf("expected length to be 45")
	}
}

func TestError(t *testing.T) {
	tests := []struct {
		name     string
		err      *StructuredError
		expected string
	}{
		{
			name:     "error without cause",
			err:      New(ErrCodeUsage, "usage"),
			expected: "[USAGE] usage",
		},
		{
			name:     "error with cause",
			err:      Wrap(ErrCodeOutOfRange, "failed", errors.New("root cause")),
			expected: "[OUT_OF_RANGE] failed: root cause",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.err.Error()
			if got != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestUnwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := Wrap(ErrCodeInternal, "wrapped", cause)

	if !errors.Is(err.Unwrap(), cause) {
		t.Errorf("expected unwrapped error to be original cause")
	}
	if !errors.Is(err, cause) {
		t.Errorf("errors.Is should work with Unwrap")
	}
}

func TestCodeOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want ErrorCode
	}{
		{name: "nil", err: nil, want: ""},
		{name: "plain error", err: errors.New("boom"), want: ErrCodeInternal},
		{name: "structured", err: New(ErrCodeUsage, "usage"), want: ErrCodeUsage},
		{
			name: "wrapped by fmt",
			err:  fmt.Errorf("encode: %w", New(ErrCodeOutOfRange, "range")),
			want: ErrCodeOutOfRange,
		},
		{
			name: "outermost wins",
			err:  Wrap(ErrCodeInvalidRequest, "outer", New(ErrCodeOutOfRange, "inner")),
			want: ErrCodeInvalidRequest,
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

func TestIsCode(t *testing.T) {
	inner := New(ErrCodeOutOfRange, "inner")
	outer := Wrap(ErrCodeInvalidRequest, "outer", fmt.Errorf("ctx: %w", inner))

	if !IsCode(outer, ErrCodeInvalidRequest) {
		t.Error("expected outer code to match")
	}
	if !IsCode(outer, ErrCodeOutOfRange) {
		t.Error("expected nested code to match")
	}
	if IsCode(outer, ErrCodeUsage) {
		t.Error("unexpected match for absent code")
	}
	if IsCode(errors.New("plain"), ErrCodeInternal) {
		t.Error("plain errors carry no code")
	}
	if IsCode(nil, ErrCodeInternal) {
		t.Error("nil carries no code")
	}
}

func TestErrorCodes(t *testing.T) {
	codes := []ErrorCode{
		ErrCodeNotFound,
		ErrCodeUnauthorized,
		ErrCodeTimeout,
		ErrCodeInternal,
		ErrCodeInvalidRequest,
		ErrCodeRateLimitExceeded,
		ErrCodeMethodNotAllowed,
		ErrCodeUnavailable,
		ErrCodeUsage,
		ErrCodeOutOfRange,
	}

	seen := make(map[ErrorCode]bool, len(codes))
	for _, code := range codes {
		if string(code) == "" {
			t.Errorf("error code should not be empty: %v", code)
		}
		if seen[code] {
			t.Errorf("duplicate error code: %v", code)
		}
		seen[code] = true
	}
}
