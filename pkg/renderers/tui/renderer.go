package tui

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-pizzaform/pkg/form"
	"github.com/goliatone/go-pizzaform/pkg/order"
	"github.com/goliatone/go-pizzaform/pkg/render"
)

// Summary is the human-readable view of a snapshot shown before submitting.
type Summary struct {
	FullName string            `yaml:"fullName" json:"fullName"`
	Size     string            `yaml:"size" json:"size"`
	Toppings []string          `yaml:"toppings" json:"toppings"`
	Errors   map[string]string `yaml:"errors,omitempty" json:"errors,omitempty"`
	Success  string            `yaml:"success,omitempty" json:"success,omitempty"`
	Failure  string            `yaml:"failure,omitempty" json:"failure,omitempty"`
}

// NewSummary builds a Summary with display labels and only non-empty errors.
// The name is shown trimmed; the order itself keeps it as typed.
func NewSummary(snapshot form.Snapshot) Summary {
	s := Summary{
		FullName: strings.TrimSpace(snapshot.Values.FullName),
		Toppings: []string{},
		Success:  snapshot.Success,
		Failure:  snapshot.Failure,
	}
	if snapshot.Values.Size.Valid() {
		s.Size = fmt.Sprintf("%s (%s)", order.SizeLabel(snapshot.Values.Size), snapshot.Values.Size)
	}
	for _, id := range snapshot.Values.Toppings {
		label := id
		if topping, ok := order.LookupTopping(id); ok {
			label = topping.Label
		}
		s.Toppings = append(s.Toppings, label)
	}
	for field, msg := range snapshot.Errors {
		if msg == "" {
			continue
		}
		if s.Errors == nil {
			s.Errors = make(map[string]string)
		}
		s.Errors[field] = msg
	}
	return s
}

// Renderer serializes snapshots as terminal summaries.
type Renderer struct {
	outputFormat OutputFormat
}

var _ render.Renderer = (*Renderer)(nil)

// NewRenderer constructs a summary renderer (YAML by default).
func NewRenderer(options ...RendererOption) *Renderer {
	r := &Renderer{outputFormat: OutputFormatYAML}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(r)
	}
	return r
}

// Name reports the renderer identifier.
func (r *Renderer) Name() string {
	return "tui"
}

// ContentType reports the serialization format used by Render.
func (r *Renderer) ContentType() string {
	if r.outputFormat == OutputFormatJSON {
		return "application/json"
	}
	return "application/yaml"
}

// Render encodes the snapshot summary.
func (r *Renderer) Render(ctx context.Context, snapshot form.Snapshot, _ render.RenderOptions) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	summary := NewSummary(snapshot)

	if r.outputFormat == OutputFormatJSON {
		out, err := json.MarshalIndent(summary, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("tui: encode summary: %w", err)
		}
		return out, nil
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(summary); err != nil {
		return nil, fmt.Errorf("tui: encode summary: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("tui: encode summary: %w", err)
	}
	return buf.Bytes(), nil
}
