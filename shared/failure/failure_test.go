package failure_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"sorabora/shared/failure"
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
		name string
		err  error
		code int
	}{
		{"BadRequest", failure.BadRequest(errors.New("bad")), http.StatusBadRequest},
		{"BadRequestFromString", failure.BadRequestFromString("bad"), http.StatusBadRequest},
		{"Unauthorized", failure.Unauthorized("no"), http.StatusUnauthorized},
		{"InternalError", failure.InternalError(errors.New("boom")), http.StatusInternalServerError},
		{"NotFound", failure.NotFound("room"), http.StatusNotFound},
		{"Conflict", failure.Conflict("exists"), http.StatusConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := failure.GetCode(tt.err); got != tt.code {
				t.Errorf("expected code %d, got %d", tt.code, got)
			}
		})
	}
}

func TestGetCode_UnknownError(t *testing.T) {
	if got := failure.GetCode(errors.New("plain")); got != http.StatusInternalServerError {
		t.Errorf("expected fallback 500, got %d", got)
	}
}

func TestGetCode_WrappedFailure(t *testing.T) {
	err := fmt.Errorf("outer: %w", failure.Conflict("exists"))

	if got := failure.GetCode(err); got != http.StatusConflict {
		t.Errorf("expected 409 through wrapping, got %d", got)
	}
}

func TestIsSchemaMissing(t *testing.T) {
	wrapped := fmt.Errorf("failed to get rooms: %w", failure.SchemaMissing)

	if !failure.IsSchemaMissing(wrapped) {
		t.Error("expected wrapped SchemaMissing to be detected")
	}

	if failure.IsSchemaMissing(errors.New("other")) {
		t.Error("expected unrelated error to not match")
	}

	if failure.IsSchemaMissing(nil) {
		t.Error("expected nil to not match")
	}
}
