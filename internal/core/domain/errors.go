package domain

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorKind classifies a failed request by where it went wrong, not by the
// exact status. The display string shown to users is derived, never stored
// separately.
type ErrorKind string

const (
	// KindNetwork covers transport failures: DNS, refused connections,
	// cancelled contexts. No HTTP response was received.
	KindNetwork ErrorKind = "network"
	// KindClient covers 4xx responses (bad input, unauthorized, forbidden,
	// not found).
	KindClient ErrorKind = "client"
	// KindServer covers 5xx responses.
	KindServer ErrorKind = "server"
)

var (
	ErrUnauthorized = errors.New("authentication required")
	ErrForbidden    = errors.New("access forbidden")
	ErrNotFound     = errors.New("resource not found")
)

// APIError is the structured failure produced at the transport boundary.
// Status is zero for KindNetwork.
type APIError struct {
	Kind    ErrorKind
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Kind == KindNetwork {
		return e.Message
	}
	return fmt.Sprintf("%s (status %d)", e.Message, e.Status)
}

// Is lets callers match the common access failures with errors.Is without
// inspecting status codes themselves.
func (e *APIError) Is(target error) bool {
	switch target {
	case ErrUnauthorized:
		return e.Status == http.StatusUnauthorized
	case ErrForbidden:
		return e.Status == http.StatusForbidden
	case ErrNotFound:
		return e.Status == http.StatusNotFound
	}
	return false
}

// NewNetworkError wraps a transport-level failure.
func NewNetworkError(err error) *APIError {
	return &APIError{Kind: KindNetwork, Message: err.Error()}
}

// NewStatusError classifies a non-2xx HTTP response.
func NewStatusError(status int, message string) *APIError {
	kind := KindClient
	if status >= http.StatusInternalServerError {
		kind = KindServer
	}
	if message == "" {
		message = http.StatusText(status)
	}
	return &APIError{Kind: kind, Status: status, Message: message}
}

// DisplayMessage flattens any error into the human-readable string used by
// notifications, preserving the single-string contract of the UI layer.
func DisplayMessage(err error) string {
	if err == nil {
		return ""
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	return err.Error()
}
