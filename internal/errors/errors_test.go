package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestNotFound(t *testing.T) {
	err := NotFound("player not found")

	if err.Kind != ErrNotFound {
		t.Errorf("expected Kind to be ErrNotFound (%d), got %d", ErrNotFound, err.Kind)
	}
	if err.Message != "player not found" {
		t.Errorf("expected Message to be 'player not found', got '%s'", err.Message)
	}
	if err.Err != nil {
		t.Errorf("expected Err to be nil, got %v", err.Err)
	}
}

func TestNotFoundf(t *testing.T) {
	err := NotFoundf("player %d not found", 123)

	if err.Kind != ErrNotFound {
		t.Errorf("expected Kind to be ErrNotFound (%d), got %d", ErrNotFound, err.Kind)
	}
	if err.Message != "player 123 not found" {
		t.Errorf("expected Message to be 'player 123 not found', got '%s'", err.Message)
	}
}

func TestValidation(t *testing.T) {
	err := Validation("pseudo is required")

	if err.Kind != ErrValidation {
		t.Errorf("expected Kind to be ErrValidation (%d), got %d", ErrValidation, err.Kind)
	}
	if err.Message != "pseudo is required" {
		t.Errorf("expected Message to be 'pseudo is required', got '%s'", err.Message)
	}
}

func TestValidationf(t *testing.T) {
	err := Validationf("top15 must contain exactly %d candidates, got %d", 15, 12)

	if err.Kind != ErrValidation {
		t.Errorf("expected Kind to be ErrValidation (%d), got %d", ErrValidation, err.Kind)
	}
	expectedMsg := "top15 must contain exactly 15 candidates, got 12"
	if err.Message != expectedMsg {
		t.Errorf("expected Message to be '%s', got '%s'", expectedMsg, err.Message)
	}
}

func TestConflict(t *testing.T) {
	err := Conflictf("pseudo %q is already taken", "alice")

	if err.Kind != ErrConflict {
		t.Errorf("expected Kind to be ErrConflict (%d), got %d", ErrConflict, err.Kind)
	}
	if err.Message != `pseudo "alice" is already taken` {
		t.Errorf("unexpected Message '%s'", err.Message)
	}
}

func TestInvalidInput(t *testing.T) {
	err := InvalidInputf("invalid rollback stage %d", 7)

	if err.Kind != ErrInvalidInput {
		t.Errorf("expected Kind to be ErrInvalidInput (%d), got %d", ErrInvalidInput, err.Kind)
	}
	if err.Message != "invalid rollback stage 7" {
		t.Errorf("unexpected Message '%s'", err.Message)
	}
}

func TestLocked(t *testing.T) {
	err := Locked("top 15 pronostics are locked")

	if err.Kind != ErrLocked {
		t.Errorf("expected Kind to be ErrLocked (%d), got %d", ErrLocked, err.Kind)
	}
	if err.Message != "top 15 pronostics are locked" {
		t.Errorf("unexpected Message '%s'", err.Message)
	}
}

func TestLockedf(t *testing.T) {
	err := Lockedf("%s are locked", "top 5 pronostics")

	if err.Kind != ErrLocked {
		t.Errorf("expected Kind to be ErrLocked (%d), got %d", ErrLocked, err.Kind)
	}
	if err.Message != "top 5 pronostics are locked" {
		t.Errorf("unexpected Message '%s'", err.Message)
	}
}

func TestPrecondition(t *testing.T) {
	err := Preconditionf("cannot reveal top 5 at stage %d", 0)

	if err.Kind != ErrPrecondition {
		t.Errorf("expected Kind to be ErrPrecondition (%d), got %d", ErrPrecondition, err.Kind)
	}
	if err.Message != "cannot reveal top 5 at stage 0" {
		t.Errorf("unexpected Message '%s'", err.Message)
	}
}

func TestInternal(t *testing.T) {
	underlying := errors.New("disk I/O error")
	err := Internal(underlying)

	if err.Kind != ErrInternal {
		t.Errorf("expected Kind to be ErrInternal (%d), got %d", ErrInternal, err.Kind)
	}
	if err.Err != underlying {
		t.Errorf("expected wrapped error, got %v", err.Err)
	}
}

func TestError_FormatsMessage(t *testing.T) {
	err := NotFound("player not found")
	if err.Error() != "player not found" {
		t.Errorf("unexpected Error() '%s'", err.Error())
	}

	wrapped := Wrap(errors.New("no such table"), ErrInternal, "query failed")
	if wrapped.Error() != "query failed: no such table" {
		t.Errorf("unexpected Error() '%s'", wrapped.Error())
	}
}

func TestUnwrap(t *testing.T) {
	underlying := errors.New("no such table")
	err := Wrap(underlying, ErrInternal, "query failed")

	if !errors.Is(err, underlying) {
		t.Error("expected errors.Is to find the underlying error")
	}
	if errors.Unwrap(err) != underlying {
		t.Error("expected Unwrap to return the underlying error")
	}
}

func TestErrorsAs_ThroughWrapping(t *testing.T) {
	var appErr *Error

	err := fmt.Errorf("context: %w", Locked("locked"))
	if !errors.As(err, &appErr) {
		t.Fatal("expected errors.As to find *Error")
	}
	if appErr.Kind != ErrLocked {
		t.Errorf("expected ErrLocked, got %d", appErr.Kind)
	}
}
