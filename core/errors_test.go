package core

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	goerrors "github.com/goliatone/go-errors"
)

func TestNewError_FillsEnvelope(t *testing.T) {
	err := NewError("core: card id is required", goerrors.CategoryBadInput, "", map[string]any{"resource": "cards"})
	if err.Code != http.StatusBadRequest {
		t.Fatalf("expected %d code, got %d", http.StatusBadRequest, err.Code)
	}
	if err.TextCode != ErrorBadInput {
		t.Fatalf("expected default text code, got %q", err.TextCode)
	}
	if err.Metadata["resource"] != "cards" {
		t.Fatalf("expected metadata, got %#v", err.Metadata)
	}
}

func TestWrapError_KeepsSource(t *testing.T) {
	source := errors.New("unexpected end of JSON input")
	err := WrapError(source, goerrors.CategoryExternal, "core: decode cards response", ErrorExternalFailure, nil)
	if !errors.Is(err, source) {
		t.Fatalf("expected wrapped source to be reachable")
	}
	if err.Code != http.StatusBadGateway {
		t.Fatalf("expected %d code, got %d", http.StatusBadGateway, err.Code)
	}
}

func TestMapError(t *testing.T) {
	if MapError(nil) != nil {
		t.Fatalf("expected nil for nil error")
	}

	rich := NewError("card missing", goerrors.CategoryNotFound, ErrorNotFound, nil)
	if mapped := MapError(fmt.Errorf("fetch: %w", rich)); mapped.TextCode != ErrorNotFound {
		t.Fatalf("expected wrapped rich error preserved, got %q", mapped.TextCode)
	}

	if mapped := MapError(errors.New("card id is required")); mapped.TextCode != ErrorBadInput {
		t.Fatalf("expected bad input for required message, got %q", mapped.TextCode)
	}

	mapped := MapError(errors.New("boom"))
	if mapped == nil || mapped.TextCode == "" || mapped.Code == 0 {
		t.Fatalf("expected populated envelope, got %#v", mapped)
	}
}

func TestHasTextCode(t *testing.T) {
	err := NewError("bad", goerrors.CategoryBadInput, ErrorInvalidEventData, nil)
	if !HasTextCode(err, ErrorInvalidEventData) {
		t.Fatalf("expected text code match")
	}
	if HasTextCode(err, ErrorInvalidEventType) {
		t.Fatalf("expected text code mismatch")
	}
	if HasTextCode(errors.New("plain"), ErrorInvalidEventData) {
		t.Fatalf("expected plain error not to match")
	}
}

func TestHTTPStatus(t *testing.T) {
	cases := map[goerrors.Category]int{
		goerrors.CategoryBadInput:  http.StatusBadRequest,
		goerrors.CategoryNotFound:  http.StatusNotFound,
		goerrors.CategoryAuth:      http.StatusUnauthorized,
		goerrors.CategoryRateLimit: http.StatusTooManyRequests,
		goerrors.CategoryExternal:  http.StatusBadGateway,
		goerrors.CategoryInternal:  http.StatusInternalServerError,
	}
	for category, want := range cases {
		if got := HTTPStatus(category); got != want {
			t.Fatalf("HTTPStatus(%q) = %d, want %d", category, got, want)
		}
	}
}
