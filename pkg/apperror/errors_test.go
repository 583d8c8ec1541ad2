package apperror

import (
	"errors"
	"net/http"
	"testing"
)

func TestNewStoreError(t *testing.T) {
	cause := errors.New("connection refused")
	err := NewStoreError("insert sale", cause)

	if err.Code != http.StatusBadGateway {
		t.Fatalf("code = %d, want 502", err.Code)
	}
	if !errors.Is(err, cause) {
		t.Fatal("store error must unwrap to the driver error")
	}
	if !IsStoreError(err) {
		t.Fatal("IsStoreError should be true")
	}
	if IsStoreError(ErrNotFound) {
		t.Fatal("not found is not a store error")
	}
}

func TestGetAppError_HidesUnknownErrors(t *testing.T) {
	cause := errors.New("pq: relation does not exist")
	appErr := GetAppError(cause)
	if appErr.Code != http.StatusInternalServerError {
		t.Fatalf("code = %d", appErr.Code)
	}
	if appErr.Message != ErrInternalServer.Message {
		t.Fatalf("message leaked: %q", appErr.Message)
	}
	if !errors.Is(appErr, cause) {
		t.Fatal("cause must be preserved for logging")
	}

	if GetAppError(ErrForbidden) != ErrForbidden {
		t.Fatal("AppError should pass through unchanged")
	}
}

func TestNewFieldError(t *testing.T) {
	cause := errors.New("bad amount")
	err := NewFieldError("discount", "Desconto inválido", cause)
	if err.Code != http.StatusUnprocessableEntity || len(err.Errors) != 1 || err.Errors[0].Field != "discount" {
		t.Fatalf("unexpected error %+v", err)
	}
	if !errors.Is(err, cause) {
		t.Fatal("field error must wrap its cause")
	}
}
