package gotemplate

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"sort"
	"strings"

	"github.com/flosch/pongo2/v6"

	"github.com/goliatone/go-pizzaform/pkg/render/template"
)

// ErrTemplateNotFound is returned when a name matches no compiled template.
var ErrTemplateNotFound = errors.New("gotemplate: template not found")

// Option configures the engine before construction.
type Option func(*config)

type config struct {
	layers    []fs.FS
	extension string
}

// WithBaseDir adds a directory on disk as a template source. Sources added
// earlier win when two of them hold the same name.
func WithBaseDir(dir string) Option {
	return func(cfg *config) {
		if dir = strings.TrimSpace(dir); dir != "" {
			cfg.layers = append(cfg.layers, os.DirFS(dir))
		}
	}
}

// WithFS adds files as a template source.
func WithFS(files fs.FS) Option {
	return func(cfg *config) {
		if files != nil {
			cfg.layers = append(cfg.layers, files)
		}
	}
}

// WithExtension overrides the default ".tmpl" extension. Only files with the
// extension are compiled.
func WithExtension(ext string) Option {
	return func(cfg *config) {
		ext = strings.TrimSpace(ext)
		if ext == "" {
			return
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		cfg.extension = ext
	}
}

// Engine renders pongo2 templates compiled once at construction. It holds no
// mutable state after New returns and is safe for concurrent use.
type Engine struct {
	extension string
	templates map[string]*pongo2.Template
}

var _ template.TemplateRenderer = (*Engine)(nil)

// New compiles every template found in the configured sources. A template
// that fails to parse fails construction.
func New(options ...Option) (*Engine, error) {
	cfg := &config{extension: ".tmpl"}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(cfg)
	}
	if len(cfg.layers) == 0 {
		return nil, errors.New("gotemplate: no template source configured")
	}
	registerFilters()

	loaders := make([]pongo2.TemplateLoader, 0, len(cfg.layers))
	for _, layer := range cfg.layers {
		loaders = append(loaders, pongo2.NewFSLoader(layer))
	}
	set := pongo2.NewSet("pizzaform", loaders...)

	names, err := templateNames(cfg.layers, cfg.extension)
	if err != nil {
		return nil, err
	}
	engine := &Engine{
		extension: cfg.extension,
		templates: make(map[string]*pongo2.Template, len(names)),
	}
	for _, name := range names {
		tmpl, err := set.FromFile(name)
		if err != nil {
			return nil, fmt.Errorf("gotemplate: compile %q: %w", name, err)
		}
		engine.templates[name] = tmpl
	}
	return engine, nil
}

// Names lists the compiled templates in lexical order.
func (e *Engine) Names() []string {
	names := make([]string, 0, len(e.templates))
	for name := range e.templates {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// RenderTemplate executes the named template. The extension may be omitted.
// Output is returned and also copied to every writer in out.
func (e *Engine) RenderTemplate(name string, data any, out ...io.Writer) (string, error) {
	if e == nil {
		return "", errors.New("gotemplate: engine is nil")
	}
	key := path.Clean(strings.TrimPrefix(name, "/"))
	if !strings.HasSuffix(key, e.extension) {
		key += e.extension
	}
	tmpl, ok := e.templates[key]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrTemplateNotFound, key)
	}

	ctx, err := toContext(data)
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if err := tmpl.ExecuteWriter(ctx, &buf); err != nil {
		return "", fmt.Errorf("gotemplate: execute %q: %w", key, err)
	}
	for _, w := range out {
		if _, err := w.Write(buf.Bytes()); err != nil {
			return "", fmt.Errorf("gotemplate: write %q: %w", key, err)
		}
	}
	return buf.String(), nil
}

func templateNames(layers []fs.FS, ext string) ([]string, error) {
	seen := make(map[string]struct{})
	var names []string
	for _, layer := range layers {
		err := fs.WalkDir(layer, ".", func(name string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() || path.Ext(name) != ext {
				return nil
			}
			if _, ok := seen[name]; !ok {
				seen[name] = struct{}{}
				names = append(names, name)
			}
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("gotemplate: scan templates: %w", err)
		}
	}
	return names, nil
}

// toContext converts data to the plain maps pongo2 expects. Structs go
// through their JSON encoding, so templates see wire names such as fullName.
func toContext(data any) (pongo2.Context, error) {
	switch v := data.(type) {
	case nil:
		return pongo2.Context{}, nil
	case pongo2.Context:
		return v, nil
	}
	raw, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("gotemplate: encode data: %w", err)
	}
	var ctx pongo2.Context
	if err := json.Unmarshal(raw, &ctx); err != nil {
		return nil, fmt.Errorf("gotemplate: data must encode to an object, got %T", data)
	}
	if ctx == nil {
		ctx = pongo2.Context{}
	}
	return ctx, nil
}
