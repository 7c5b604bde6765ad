// Package pizzaform is the convenience entry point for embedding the pizza
// order form: build a form bound to an order endpoint and render its
// snapshots without wiring the individual packages by hand.
package pizzaform

import (
	"context"
	"fmt"

	"github.com/goliatone/go-pizzaform/pkg/client"
	"github.com/goliatone/go-pizzaform/pkg/form"
	"github.com/goliatone/go-pizzaform/pkg/openapi"
	"github.com/goliatone/go-pizzaform/pkg/order"
	"github.com/goliatone/go-pizzaform/pkg/render"
	"github.com/goliatone/go-pizzaform/pkg/renderers/jsonview"
	"github.com/goliatone/go-pizzaform/pkg/renderers/vanilla"
)

// Order aliases order.Order for callers of the root package.
type Order = order.Order

// Snapshot aliases form.Snapshot.
type Snapshot = form.Snapshot

// RenderOptions aliases render.RenderOptions.
type RenderOptions = render.RenderOptions

// NewForm creates a form that submits to the order service at endpoint.
func NewForm(endpoint string, clientOptions []client.Option, formOptions ...form.Option) (*form.Form, error) {
	c, err := client.New(endpoint, clientOptions...)
	if err != nil {
		return nil, fmt.Errorf("pizzaform: %w", err)
	}
	return form.New(c, formOptions...), nil
}

// NewRegistry returns a registry holding the HTML (default) and JSON
// renderers.
func NewRegistry(options ...vanilla.Option) (*render.Registry, error) {
	html, err := vanilla.New(options...)
	if err != nil {
		return nil, fmt.Errorf("pizzaform: %w", err)
	}
	registry := render.NewRegistry()
	if err := registry.Register(html); err != nil {
		return nil, err
	}
	if err := registry.Register(jsonview.New()); err != nil {
		return nil, err
	}
	return registry, nil
}

// RenderHTML renders snap with the built-in HTML renderer.
func RenderHTML(ctx context.Context, snap Snapshot, options RenderOptions) ([]byte, error) {
	html, err := vanilla.New()
	if err != nil {
		return nil, fmt.Errorf("pizzaform: %w", err)
	}
	return html.Render(ctx, snap, options)
}

// Contract returns the embedded OpenAPI contract of the order endpoint.
func Contract() (*openapi.Contract, error) {
	return openapi.Default()
}
