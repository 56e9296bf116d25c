package failure_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"lodge/shared/failure"
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
			name:    "NotFound",
			err:     failure.NotFound("room"),
			code:    http.StatusNotFound,
			message: "room not found",
		},
		{
			name:    "Conflict",
			err:     failure.Conflict("username already taken"),
			code:    http.StatusConflict,
			message: "username already taken",
		},
		{
			name:    "BadRequestFromString",
			err:     failure.BadRequestFromString("guest does not exist"),
			code:    http.StatusBadRequest,
			message: "guest does not exist",
		},
		{
			name:    "BadRequest",
			err:     failure.BadRequest(errors.New("bad input")),
			code:    http.StatusBadRequest,
			message: "bad input",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if failure.GetCode(tt.err) != tt.code {
				t.Errorf("expected code to be %d, got %d", tt.code, failure.GetCode(tt.err))
			}
			if tt.err.Error() != tt.message {
				t.Errorf("expected message to be %s, got %s", tt.message, tt.err.Error())
			}
		})
	}
}

func TestBadRequest_NilError(t *testing.T) {
	if failure.BadRequest(nil) != nil {
		t.Error("expected BadRequest(nil) to be nil")
	}
}

func TestPredicates(t *testing.T) {
	if !failure.IsNotFound(failure.NotFound("booking")) {
		t.Error("expected IsNotFound to report true for a not-found failure")
	}
	if !failure.IsConflict(failure.Conflict("duplicate")) {
		t.Error("expected IsConflict to report true for a conflict failure")
	}
	if !failure.IsBadRequest(failure.BadRequestFromString("invalid")) {
		t.Error("expected IsBadRequest to report true for a bad-request failure")
	}
	if failure.IsNotFound(errors.New("plain")) {
		t.Error("expected IsNotFound to report false for a plain error")
	}
}

func TestGetCode_WrappedFailure(t *testing.T) {
	wrapped := fmt.Errorf("loading room: %w", failure.NotFound("room"))

	if failure.GetCode(wrapped) != http.StatusNotFound {
		t.Errorf("expected wrapped failure to keep its code, got %d", failure.GetCode(wrapped))
	}
}
