// Package jsonview renders form snapshots as JSON for script clients.
package jsonview

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/goliatone/go-pizzaform/pkg/form"
	"github.com/goliatone/go-pizzaform/pkg/render"
)

// Payload is the JSON document produced for a snapshot.
type Payload struct {
	form.Snapshot
	Action string `json:"action"`
}

type Option func(*Renderer)

// WithIndent pretty-prints the output.
func WithIndent(indent string) Option {
	return func(r *Renderer) {
		r.indent = indent
	}
}

// Renderer writes snapshots as JSON.
type Renderer struct {
	indent string
}

var _ render.Renderer = (*Renderer)(nil)

func New(options ...Option) *Renderer {
	r := &Renderer{}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(r)
	}
	return r
}

func (r *Renderer) Name() string {
	return "json"
}

func (r *Renderer) ContentType() string {
	return "application/json"
}

func (r *Renderer) Render(ctx context.Context, snapshot form.Snapshot, options render.RenderOptions) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if snapshot.Errors == nil {
		snapshot.Errors = map[string]string{}
	}
	payload := Payload{Snapshot: snapshot, Action: options.FormAction()}

	var (
		out []byte
		err error
	)
	if r.indent != "" {
		out, err = json.MarshalIndent(payload, "", r.indent)
	} else {
		out, err = json.Marshal(payload)
	}
	if err != nil {
		return nil, fmt.Errorf("jsonview renderer: encode snapshot: %w", err)
	}
	return out, nil
}
