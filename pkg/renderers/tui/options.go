package tui

import "github.com/goliatone/go-pizzaform/pkg/validation"

// OutputFormat controls how the order summary is serialized.
type OutputFormat string

const (
	// OutputFormatYAML emits a YAML document.
	OutputFormatYAML OutputFormat = "yaml"
	// OutputFormatJSON emits indented JSON.
	OutputFormatJSON OutputFormat = "json"
)

// Theme captures optional message prefixes.
type Theme struct {
	InfoPrefix    string
	SuccessPrefix string
	ErrorPrefix   string
}

// DefaultTheme is used when no theme is configured.
var DefaultTheme = Theme{
	InfoPrefix:    "",
	SuccessPrefix: "✔ ",
	ErrorPrefix:   "✘ ",
}

// RendererOption configures the summary renderer.
type RendererOption func(*Renderer)

// WithOutputFormat selects the summary serialization format.
func WithOutputFormat(format OutputFormat) RendererOption {
	return func(r *Renderer) {
		if format != "" {
			r.outputFormat = format
		}
	}
}

// Option configures a Session.
type Option func(*Session)

// WithPromptDriver overrides the prompt driver used by the session.
func WithPromptDriver(driver PromptDriver) Option {
	return func(s *Session) {
		if driver != nil {
			s.driver = driver
		}
	}
}

// WithSummaryRenderer overrides the renderer used for the order summary.
func WithSummaryRenderer(r *Renderer) Option {
	return func(s *Session) {
		if r != nil {
			s.summary = r
		}
	}
}

// WithSchema sets the rules used for inline prompt validation.
func WithSchema(schema validation.Schema) Option {
	return func(s *Session) {
		s.schema = schema
	}
}

// WithTheme applies optional message prefixes.
func WithTheme(theme Theme) Option {
	return func(s *Session) {
		s.theme = theme
	}
}
