package template

import (
	"io"
)

// TemplateRenderer is the engine contract renderers depend on. Output is
// returned and additionally written to every supplied writer.
type TemplateRenderer interface {
	RenderTemplate(name string, data any, out ...io.Writer) (string, error)
}
