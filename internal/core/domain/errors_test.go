package domain

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestNewStatusErrorClassification(t *testing.T) {
	cases := []struct {
		status int
		kind   ErrorKind
	}{
		{http.StatusBadRequest, KindClient},
		{http.StatusUnauthorized, KindClient},
		{http.StatusForbidden, KindClient},
		{http.StatusNotFound, KindClient},
		{http.StatusInternalServerError, KindServer},
		{http.StatusBadGateway, KindServer},
	}
	for _, tc := range cases {
		err := NewStatusError(tc.status, "boom")
		if err.Kind != tc.kind {
			t.Fatalf("status %d: expected kind %s, got %s", tc.status, tc.kind, err.Kind)
		}
	}
}

func TestAPIErrorSentinelMatching(t *testing.T) {
	err := fmt.Errorf("fetch users: %w", NewStatusError(http.StatusForbidden, "access forbidden"))
	if !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected 403 to match ErrForbidden")
	}
	if errors.Is(err, ErrUnauthorized) {
		t.Fatalf("403 must not match ErrUnauthorized")
	}

	if !errors.Is(NewStatusError(http.StatusUnauthorized, ""), ErrUnauthorized) {
		t.Fatalf("expected 401 to match ErrUnauthorized")
	}
}

func TestDisplayMessage(t *testing.T) {
	if got := DisplayMessage(nil); got != "" {
		t.Fatalf("expected empty message for nil error, got %q", got)
	}
	wrapped := fmt.Errorf("create product: %w", NewStatusError(http.StatusConflict, "product already exists"))
	if got := DisplayMessage(wrapped); got != "product already exists" {
		t.Fatalf("expected the API message, got %q", got)
	}
	if got := DisplayMessage(errors.New("dial tcp: refused")); got != "dial tcp: refused" {
		t.Fatalf("unexpected message %q", got)
	}
}

func TestStatusTextFallback(t *testing.T) {
	err := NewStatusError(http.StatusServiceUnavailable, "")
	if err.Message != http.StatusText(http.StatusServiceUnavailable) {
		t.Fatalf("expected status text fallback, got %q", err.Message)
	}
}
