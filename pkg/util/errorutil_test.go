package util

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/jackc/pgx/v5"
)

func TestToDomainErrorPassThrough(t *testing.T) {
	original := NewConflict("Username already exists")
	converted := ToDomainError(original)
	if converted.Code != "CONFLICT" || converted.HTTPStatus != http.StatusConflict {
		t.Fatalf("unexpected conversion %+v", converted)
	}
	if converted.Message != "Username already exists" {
		t.Fatalf("message changed: %q", converted.Message)
	}
}

func TestToDomainErrorWrappedDomainError(t *testing.T) {
	wrapped := fmt.Errorf("handler: %w", NewAccessDenied())
	converted := ToDomainError(wrapped)
	if converted.Code != "ACCESS_DENIED" || converted.HTTPStatus != http.StatusForbidden {
		t.Fatalf("unexpected conversion %+v", converted)
	}
}

func TestToDomainErrorMapsNoRows(t *testing.T) {
	converted := ToDomainError(fmt.Errorf("query: %w", pgx.ErrNoRows))
	if converted.Code != "NOT_FOUND" || converted.HTTPStatus != http.StatusNotFound {
		t.Fatalf("unexpected conversion %+v", converted)
	}
}

func TestToDomainErrorHidesInternalDetail(t *testing.T) {
	internal := errors.New("dial tcp 10.0.0.5:5432: connection refused")
	converted := ToDomainError(internal)
	if converted.Code != "INTERNAL_ERROR" || converted.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("unexpected conversion %+v", converted)
	}
	if converted.Message != "internal server error" {
		t.Fatalf("internal detail leaked into message: %q", converted.Message)
	}
	if !errors.Is(converted, internal) {
		t.Fatal("original error must stay reachable for logging")
	}
}

func TestToDomainErrorNil(t *testing.T) {
	if ToDomainError(nil) != nil {
		t.Fatal("nil must convert to nil")
	}
}
