package errors

import (
	stderrors "errors"
	"fmt"
	"testing"
)

func TestAppError_Error(t *testing.T) {
	plain := New(ErrCodeNotFound, "user not found")
	if got, want := plain.Error(), "NOT_FOUND: user not found"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}

	cause := fmt.Errorf("record not found")
	wrapped := Wrap(cause, ErrCodeInternalError, "query failed")
	if got, want := wrapped.Error(), "INTERNAL_ERROR: query failed (record not found)"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestAppError_Unwrap(t *testing.T) {
	cause := fmt.Errorf("record not found")
	wrapped := Wrap(cause, ErrCodeInternalError, "query failed")
	if !stderrors.Is(wrapped, cause) {
		t.Error("errors.Is does not reach the wrapped cause")
	}
	if New(ErrCodeNotFound, "plain").Unwrap() != nil {
		t.Error("Unwrap() of unwrapped error should be nil")
	}
}

func TestCodeOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"app error", New(ErrCodeForbidden, "nope"), ErrCodeForbidden},
		{"wrapped app error", Wrap(fmt.Errorf("boom"), ErrCodeValidation, "bad input"), ErrCodeValidation},
		{"plain error", fmt.Errorf("boom"), ErrCodeInternalError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CodeOf(tt.err); got != tt.want {
				t.Errorf("CodeOf() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestIs(t *testing.T) {
	err := New(ErrCodeAlreadyRequested, "pending request exists")
	if !Is(err, ErrCodeAlreadyRequested) {
		t.Error("Is() = false for matching code")
	}
	if Is(err, ErrCodeNotFound) {
		t.Error("Is() = true for non-matching code")
	}
	if Is(fmt.Errorf("boom"), ErrCodeNotFound) {
		t.Error("Is() = true for plain error")
	}
}
