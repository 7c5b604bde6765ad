package openapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"sync"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/goliatone/go-pizzaform/pkg/order"
)

// Default operation coordinates of the order endpoint.
const (
	OrderPath        = "/api/order"
	OrderOperationID = "createOrder"
	jsonContentType  = "application/json"
)

// ErrContractViolation wraps every payload that does not match the documented
// schema.
var ErrContractViolation = errors.New("openapi: contract violation")

// Operation summarises the order operation described by a document.
type Operation struct {
	ID        string
	Method    string
	Path      string
	Summary   string
	Responses []int
}

// Contract validates order payloads against a parsed OpenAPI document.
type Contract struct {
	location  string
	operation Operation
	request   *openapi3.Schema
	responses map[int]*openapi3.Schema
	fallback  *openapi3.Schema
}

// Load parses doc and extracts the POST operation registered at OrderPath.
func Load(ctx context.Context, doc Document) (*Contract, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	raw := doc.Raw()
	if len(raw) == 0 {
		return nil, errors.New("openapi: document payload is empty")
	}

	loader := &openapi3.Loader{Context: ctx}
	spec, err := loader.LoadFromData(raw)
	if err != nil {
		return nil, fmt.Errorf("openapi: load document %s: %w", doc.Location(), err)
	}
	if err := spec.Validate(ctx); err != nil {
		return nil, fmt.Errorf("openapi: validate document %s: %w", doc.Location(), err)
	}

	if spec.Paths == nil {
		return nil, fmt.Errorf("openapi: document %s has no paths", doc.Location())
	}
	item := spec.Paths.Find(OrderPath)
	if item == nil || item.Post == nil {
		return nil, fmt.Errorf("openapi: document %s does not describe POST %s", doc.Location(), OrderPath)
	}
	op := item.Post

	contract := &Contract{
		location: doc.Location(),
		operation: Operation{
			ID:      op.OperationID,
			Method:  "POST",
			Path:    OrderPath,
			Summary: op.Summary,
		},
		responses: make(map[int]*openapi3.Schema),
	}

	if op.RequestBody != nil && op.RequestBody.Value != nil {
		contract.request = mediaSchema(op.RequestBody.Value.Content)
	}
	if contract.request == nil {
		return nil, fmt.Errorf("openapi: POST %s declares no JSON request body", OrderPath)
	}

	if op.Responses != nil {
		for code, ref := range op.Responses.Map() {
			if ref == nil || ref.Value == nil {
				continue
			}
			schema := mediaSchema(ref.Value.Content)
			if code == "default" {
				contract.fallback = schema
				continue
			}
			status, err := strconv.Atoi(code)
			if err != nil {
				continue
			}
			contract.responses[status] = schema
			contract.operation.Responses = append(contract.operation.Responses, status)
		}
	}
	sort.Ints(contract.operation.Responses)

	return contract, nil
}

var (
	defaultOnce     sync.Once
	defaultContract *Contract
	defaultErr      error
)

// Default returns the contract parsed from the embedded document. The document
// is parsed once per process.
func Default() (*Contract, error) {
	defaultOnce.Do(func() {
		defaultContract, defaultErr = Load(context.Background(), EmbeddedDocument())
	})
	return defaultContract, defaultErr
}

// Location reports where the contract document came from.
func (c *Contract) Location() string {
	return c.location
}

// Operation returns the order operation summary.
func (c *Contract) Operation() Operation {
	op := c.operation
	op.Responses = append([]int(nil), c.operation.Responses...)
	return op
}

// ValidateOrder checks the wire form of o against the request body schema.
func (c *Contract) ValidateOrder(o order.Order) error {
	payload, err := json.Marshal(o)
	if err != nil {
		return fmt.Errorf("openapi: encode order: %w", err)
	}
	return c.ValidateRequest(payload)
}

// ValidateRequest checks a raw JSON request body.
func (c *Contract) ValidateRequest(body []byte) error {
	return visit(c.request, body, "request body")
}

// ValidateResponse checks a raw JSON response body for status. Statuses not
// documented explicitly fall back to the default response.
func (c *Contract) ValidateResponse(status int, body []byte) error {
	schema, ok := c.responses[status]
	if !ok {
		schema = c.fallback
	}
	if schema == nil {
		return nil
	}
	return visit(schema, body, fmt.Sprintf("response %d", status))
}

func visit(schema *openapi3.Schema, body []byte, what string) error {
	if schema == nil {
		return nil
	}
	var value any
	if err := json.Unmarshal(body, &value); err != nil {
		return fmt.Errorf("%w: %s is not JSON: %v", ErrContractViolation, what, err)
	}
	if err := schema.VisitJSON(value); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrContractViolation, what, err)
	}
	return nil
}

func mediaSchema(content openapi3.Content) *openapi3.Schema {
	if content == nil {
		return nil
	}
	media := content.Get(jsonContentType)
	if media == nil || media.Schema == nil {
		return nil
	}
	return media.Schema.Value
}
