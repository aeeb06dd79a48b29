package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
	"testing"
)

func TestAppError_New(t *testing.T) {
	err := New(ErrCodeNotFound, "not found")
	if err.Code != ErrCodeNotFound {
		t.Errorf("expected code %s, got %s", ErrCodeNotFound, err.Code)
	}
	if err.Message != "not found" {
		t.Errorf("expected message 'not found', got %q", err.Message)
	}
}

func TestAppError_NotFound(t *testing.T) {
	err := NotFound("view", "evens")
	if err.Code != ErrCodeNotFound {
		t.Errorf("expected NOT_FOUND, got %s", err.Code)
	}
	if err.Details["resource"] != "view" {
		t.Errorf("expected resource=view, got %v", err.Details["resource"])
	}
	if err.Details["name"] != "evens" {
		t.Errorf("expected name=evens, got %v", err.Details["name"])
	}
}

func TestAppError_NotFound_EmptyName(t *testing.T) {
	err := NotFound("feature", "")
	if _, ok := err.Details["name"]; ok {
		t.Error("expected no 'name' key in details when name is empty")
	}
}

func TestAppError_InvalidInput(t *testing.T) {
	err := InvalidInput("name", "must be an identifier")
	if err.Code != ErrCodeInvalidInput {
		t.Errorf("expected INVALID_INPUT, got %s", err.Code)
	}
	if !strings.Contains(err.Message, "must be an identifier") {
		t.Errorf("unexpected message: %q", err.Message)
	}
	if err.Details["field"] != "name" {
		t.Errorf("expected field=name, got %v", err.Details["field"])
	}
}

func TestAppError_MissingField(t *testing.T) {
	err := MissingField("fn")
	if err.Code != ErrCodeMissingField {
		t.Errorf("expected MISSING_FIELD, got %s", err.Code)
	}
	if err.Details["field"] != "fn" {
		t.Errorf("expected field=fn, got %v", err.Details["field"])
	}
}

func TestAppError_Unwrap(t *testing.T) {
	cause := fmt.Errorf("boom")
	err := Internal(cause)
	if !stderrors.Is(err, cause) {
		t.Error("expected errors.Is to match the cause")
	}
	if !strings.Contains(err.Error(), "boom") {
		t.Errorf("expected cause in message, got %q", err.Error())
	}
}

func TestAppError_WithCauseAndDetail(t *testing.T) {
	err := Conflict("busy").WithCause(fmt.Errorf("inner")).WithDetail("op", "flush")
	if err.Cause == nil {
		t.Fatal("expected cause to be set")
	}
	if err.Details["op"] != "flush" {
		t.Errorf("expected op=flush, got %v", err.Details["op"])
	}
}

func TestIsAppError(t *testing.T) {
	if !IsAppError(NotFound("view", "x")) {
		t.Error("expected IsAppError to be true for AppError")
	}
	if IsAppError(fmt.Errorf("plain")) {
		t.Error("expected IsAppError to be false for plain error")
	}
	wrapped := fmt.Errorf("wrap: %w", AlreadyExists("view", "x"))
	appErr, ok := AsAppError(wrapped)
	if !ok || appErr.Code != ErrCodeAlreadyExists {
		t.Errorf("expected AsAppError to unwrap, got %v, %v", appErr, ok)
	}
}

func TestCodeOf(t *testing.T) {
	if CodeOf(MissingField("x")) != ErrCodeMissingField {
		t.Error("expected MISSING_FIELD")
	}
	if CodeOf(fmt.Errorf("plain")) != ErrCodeInternal {
		t.Error("expected INTERNAL_ERROR for foreign error")
	}
}
