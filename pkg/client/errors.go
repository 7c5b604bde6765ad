package client

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrTransport wraps failures where no response was received.
	ErrTransport = errors.New("client: transport failure")
	// ErrNilClient guards calls on an unconfigured client.
	ErrNilClient = errors.New("client: client is nil")
)

// APIError describes a non-2xx response from the order endpoint.
type APIError struct {
	StatusCode int
	// Message is the server-provided `message` field, empty when absent.
	Message string
	Body    []byte
}

func (e *APIError) Error() string {
	if e == nil {
		return ""
	}
	if e.Message != "" {
		return fmt.Sprintf("client: order rejected (%d): %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("client: order rejected (%d %s)", e.StatusCode, http.StatusText(e.StatusCode))
}

// ServerMessage returns the message the server attached to err, if any.
func ServerMessage(err error) (string, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message, true
	}
	return "", false
}
