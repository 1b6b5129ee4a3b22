package failure_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/elizhang33/room-reservations-api/shared/failure"
)

func TestFailure_Error(t *testing.T) {
	f := &failure.Failure{
		Code:    http.StatusBadRequest,
		Message: "test error message",
	}

	if f.Error() != "test error message" {
		t.Errorf("expected error message to be 'test error message', got %s", f.Error())
	}
}

func TestConstructors(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		code    int
		message string
	}{
		{
			name:    "BadRequestFromString",
			err:     failure.BadRequestFromString("group_size must be positive"),
			code:    http.StatusBadRequest,
			message: "group_size must be positive",
		},
		{
			name:    "NotFound",
			err:     failure.NotFound("reservation not found"),
			code:    http.StatusNotFound,
			message: "reservation not found",
		},
		{
			name:    "Conflict",
			err:     failure.Conflict("room already reserved"),
			code:    http.StatusConflict,
			message: "room already reserved",
		},
		{
			name:    "InternalError",
			err:     failure.InternalError(errors.New("boom")),
			code:    http.StatusInternalServerError,
			message: "boom",
		},
		{
			name:    "ServiceUnavailable",
			err:     failure.ServiceUnavailable("store timeout"),
			code:    http.StatusServiceUnavailable,
			message: "store timeout",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := failure.GetCode(tt.err); got != tt.code {
				t.Errorf("expected code %d, got %d", tt.code, got)
			}

			if tt.err.Error() != tt.message {
				t.Errorf("expected message %q, got %q", tt.message, tt.err.Error())
			}
		})
	}
}

func TestGetCode_PlainError(t *testing.T) {
	if got := failure.GetCode(errors.New("plain")); got != http.StatusInternalServerError {
		t.Errorf("expected fallback 500, got %d", got)
	}
}

func TestIsConflict_Wrapped(t *testing.T) {
	err := fmt.Errorf("failed to insert data (reservation): %w", failure.Conflict("room already reserved"))

	if !failure.IsConflict(err) {
		t.Error("expected wrapped conflict to be detected")
	}

	if failure.IsConflict(errors.New("plain")) {
		t.Error("plain error should not be a conflict")
	}
}
