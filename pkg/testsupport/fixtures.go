package testsupport

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-pizzaform/pkg/order"
)

// RecordedRequest captures one call received by the fake order endpoint.
type RecordedRequest struct {
	Method  string
	Path    string
	Header  http.Header
	Order   order.Order
	RawBody []byte
}

// Responder decides the status and JSON body returned for a decoded order.
// A nil body writes no payload.
type Responder func(order.Order) (int, any)

// Respond returns a Responder that always answers with status and body.
func Respond(status int, body any) Responder {
	return func(order.Order) (int, any) {
		return status, body
	}
}

// Message builds the `{"message": ...}` body used by the order endpoint.
func Message(msg string) map[string]string {
	return map[string]string{"message": msg}
}

// OrderEndpoint is an httptest-backed stand-in for the remote order service.
type OrderEndpoint struct {
	server    *httptest.Server
	responder Responder

	mu       sync.Mutex
	requests []RecordedRequest
}

// NewOrderEndpoint starts a fake endpoint that is closed with the test.
func NewOrderEndpoint(t *testing.T, responder Responder) *OrderEndpoint {
	t.Helper()

	if responder == nil {
		responder = Respond(http.StatusCreated, Message("Order placed"))
	}
	endpoint := &OrderEndpoint{responder: responder}
	endpoint.server = httptest.NewServer(http.HandlerFunc(endpoint.serve))
	t.Cleanup(endpoint.server.Close)
	return endpoint
}

// URL returns the base URL of the fake endpoint.
func (e *OrderEndpoint) URL() string {
	return e.server.URL
}

// Requests returns a copy of the requests received so far.
func (e *OrderEndpoint) Requests() []RecordedRequest {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]RecordedRequest(nil), e.requests...)
}

func (e *OrderEndpoint) serve(w http.ResponseWriter, r *http.Request) {
	raw, _ := io.ReadAll(r.Body)
	var decoded order.Order
	_ = json.Unmarshal(raw, &decoded)

	e.mu.Lock()
	e.requests = append(e.requests, RecordedRequest{
		Method:  r.Method,
		Path:    r.URL.Path,
		Header:  r.Header.Clone(),
		Order:   decoded,
		RawBody: raw,
	})
	e.mu.Unlock()

	status, body := e.responder(decoded)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if body == nil {
		return
	}
	switch v := body.(type) {
	case []byte:
		_, _ = w.Write(v)
	case string:
		_, _ = io.WriteString(w, v)
	default:
		_ = json.NewEncoder(w).Encode(v)
	}
}

// CompareGolden returns a diff string if the values differ.
func CompareGolden(want, got any) string {
	return cmp.Diff(want, got)
}

// Context returns a background context for tests.
func Context() context.Context {
	return context.Background()
}

// CaptureTemplateOutput runs render against a buffer and returns both the
// returned string and what was written.
func CaptureTemplateOutput(t *testing.T, render func(io.Writer) (string, error)) (string, string) {
	t.Helper()

	var buf bytes.Buffer
	out, err := render(&buf)
	if err != nil {
		t.Fatalf("render template: %v", err)
	}

	return out, buf.String()
}
