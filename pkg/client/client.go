package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/goliatone/go-pizzaform/pkg/openapi"
	"github.com/goliatone/go-pizzaform/pkg/order"
)

const maxBodyBytes = 1 << 20

// Receipt is the decoded success response.
type Receipt struct {
	Message string `json:"message"`
}

type messageBody struct {
	Message string `json:"message"`
}

// Client posts orders to the order endpoint.
type Client struct {
	endpoint     string
	path         string
	timeout      time.Duration
	httpClient   *http.Client
	logger       *zap.Logger
	contract     *openapi.Contract
	skipContract bool
	newKey       func() string
}

// New constructs a client for baseURL. An empty baseURL selects
// DefaultBaseURL. Unless WithoutContract is passed, payloads are checked
// against the embedded endpoint contract.
func New(baseURL string, options ...Option) (*Client, error) {
	base := strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if base == "" {
		base = DefaultBaseURL
	}
	parsed, err := url.Parse(base)
	if err != nil {
		return nil, fmt.Errorf("client: parse base url: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return nil, fmt.Errorf("client: base url %q must use http or https", base)
	}

	c := &Client{
		endpoint: base,
		path:     DefaultPath,
		timeout:  DefaultTimeout,
		logger:   zap.NewNop(),
		newKey:   uuid.NewString,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(c)
	}

	if c.httpClient == nil {
		c.httpClient = &http.Client{Timeout: c.timeout}
	}
	if c.contract == nil && !c.skipContract {
		contract, err := openapi.Default()
		if err != nil {
			return nil, fmt.Errorf("client: load endpoint contract: %w", err)
		}
		c.contract = contract
	}

	return c, nil
}

// URL returns the full order endpoint URL.
func (c *Client) URL() string {
	return c.endpoint + c.path
}

// PlaceOrder sends o as a creation request. Non-2xx responses return
// *APIError; failures without a response wrap ErrTransport.
func (c *Client) PlaceOrder(ctx context.Context, o order.Order) (Receipt, error) {
	if c == nil {
		return Receipt{}, ErrNilClient
	}
	if err := ctx.Err(); err != nil {
		return Receipt{}, err
	}

	payload, err := json.Marshal(o)
	if err != nil {
		return Receipt{}, fmt.Errorf("client: encode order: %w", err)
	}
	if c.contract != nil {
		if err := c.contract.ValidateRequest(payload); err != nil {
			return Receipt{}, err
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.URL(), bytes.NewReader(payload))
	if err != nil {
		return Receipt{}, fmt.Errorf("client: request: %w", err)
	}
	key := c.newKey()
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set(IdempotencyHeader, key)

	logger := c.logger.With(zap.String("url", req.URL.String()), zap.String("idempotency_key", key))
	logger.Debug("placing order", zap.String("size", string(o.Size)), zap.Int("toppings", len(o.Toppings)))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.Warn("order request failed", zap.Error(err))
		return Receipt{}, fmt.Errorf("%w: %w", ErrTransport, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		logger.Warn("order response unreadable", zap.Int("status", resp.StatusCode), zap.Error(err))
		return Receipt{}, fmt.Errorf("%w: read response: %w", ErrTransport, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := &APIError{
			StatusCode: resp.StatusCode,
			Message:    decodeMessage(body),
			Body:       body,
		}
		logger.Warn("order rejected", zap.Int("status", resp.StatusCode), zap.String("message", apiErr.Message))
		return Receipt{}, apiErr
	}

	var receipt Receipt
	if len(bytes.TrimSpace(body)) > 0 {
		if err := json.Unmarshal(body, &receipt); err != nil {
			return Receipt{}, fmt.Errorf("client: decode response: %w", err)
		}
	}
	logger.Debug("order placed", zap.Int("status", resp.StatusCode), zap.String("message", receipt.Message))
	return receipt, nil
}

func decodeMessage(body []byte) string {
	var msg messageBody
	if err := json.Unmarshal(body, &msg); err != nil {
		return ""
	}
	return strings.TrimSpace(msg.Message)
}
