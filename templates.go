package pizzaform

import (
	"io/fs"

	vanilla "github.com/goliatone/go-pizzaform/pkg/renderers/vanilla"
)

// EmbeddedTemplates exposes the built-in HTML templates so callers can copy
// or extend them and pass the result back through vanilla.WithTemplatesFS.
func EmbeddedTemplates() fs.FS {
	return vanilla.TemplatesFS()
}

// AssetsFS exposes the bundled stylesheet for serving over HTTP.
func AssetsFS() fs.FS {
	return vanilla.AssetsFS()
}
