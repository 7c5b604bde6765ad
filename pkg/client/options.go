package client

import (
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/goliatone/go-pizzaform/pkg/openapi"
)

// Defaults used when no option overrides them.
const (
	DefaultBaseURL = "http://localhost:9009"
	DefaultPath    = openapi.OrderPath
	DefaultTimeout = 10 * time.Second
)

// IdempotencyHeader carries a fresh key per PlaceOrder call.
const IdempotencyHeader = "Idempotency-Key"

// Option configures the client.
type Option func(*Client)

// WithHTTPClient overrides the HTTP client used for requests.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithTimeout sets the request timeout on the default HTTP client. It has no
// effect when combined with WithHTTPClient.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.timeout = timeout
		}
	}
}

// WithPath overrides the order path appended to the base URL.
func WithPath(path string) Option {
	return func(c *Client) {
		path = strings.TrimSpace(path)
		if path == "" {
			return
		}
		if !strings.HasPrefix(path, "/") {
			path = "/" + path
		}
		c.path = path
	}
}

// WithLogger attaches a zap logger; the client is silent by default.
func WithLogger(logger *zap.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithContract checks outgoing payloads against contract before sending.
func WithContract(contract *openapi.Contract) Option {
	return func(c *Client) {
		c.contract = contract
		c.skipContract = contract == nil
	}
}

// WithoutContract disables payload checks entirely.
func WithoutContract() Option {
	return func(c *Client) {
		c.contract = nil
		c.skipContract = true
	}
}

// WithKeyFunc overrides how idempotency keys are generated.
func WithKeyFunc(fn func() string) Option {
	return func(c *Client) {
		if fn != nil {
			c.newKey = fn
		}
	}
}
