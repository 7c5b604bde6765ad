package vanilla

import (
	"context"
	"fmt"
	"io/fs"
	"strings"

	"github.com/goliatone/go-pizzaform/pkg/form"
	"github.com/goliatone/go-pizzaform/pkg/order"
	"github.com/goliatone/go-pizzaform/pkg/render"
	rendertemplate "github.com/goliatone/go-pizzaform/pkg/render/template"
	gotemplate "github.com/goliatone/go-pizzaform/pkg/render/template/gotemplate"
)

const (
	// DefaultTitle heads the form when RenderOptions.Title is empty.
	DefaultTitle = "Order Your Pizza"
	// DefaultStylesheetURL is where pizza-web serves AssetsFS.
	DefaultStylesheetURL = "/assets/" + StylesheetName

	formTemplate = "templates/form.tmpl"
)

type Option func(*config)

type config struct {
	templateFS       fs.FS
	templateDir      string
	templateRenderer rendertemplate.TemplateRenderer
	stylesheetURL    string
}

// WithTemplatesFS supplies an alternate template bundle via fs.FS.
func WithTemplatesFS(files fs.FS) Option {
	return func(cfg *config) {
		cfg.templateFS = files
	}
}

// WithTemplatesDir loads templates from a directory on disk. Files there
// override the bundled ones of the same name.
func WithTemplatesDir(path string) Option {
	return func(cfg *config) {
		cfg.templateDir = strings.TrimSpace(path)
	}
}

// WithTemplateRenderer injects a custom template renderer implementation.
func WithTemplateRenderer(renderer rendertemplate.TemplateRenderer) Option {
	return func(cfg *config) {
		if renderer != nil {
			cfg.templateRenderer = renderer
		}
	}
}

// WithStylesheetURL sets the stylesheet linked when the theme provides none.
// An empty url disables the link.
func WithStylesheetURL(url string) Option {
	return func(cfg *config) {
		cfg.stylesheetURL = strings.TrimSpace(url)
	}
}

// Renderer renders form snapshots as a standalone HTML page.
type Renderer struct {
	templates     rendertemplate.TemplateRenderer
	stylesheetURL string
}

var _ render.Renderer = (*Renderer)(nil)

// New constructs the vanilla renderer applying any provided options.
func New(options ...Option) (*Renderer, error) {
	cfg := config{
		templateFS:    TemplatesFS(),
		stylesheetURL: DefaultStylesheetURL,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	if cfg.templateFS == nil {
		cfg.templateFS = TemplatesFS()
	}

	renderer := cfg.templateRenderer
	if renderer == nil {
		engine, err := gotemplate.New(
			gotemplate.WithBaseDir(cfg.templateDir),
			gotemplate.WithFS(cfg.templateFS),
			gotemplate.WithExtension(".tmpl"),
		)
		if err != nil {
			return nil, fmt.Errorf("vanilla renderer: configure template renderer: %w", err)
		}
		renderer = engine
	}

	return &Renderer{templates: renderer, stylesheetURL: cfg.stylesheetURL}, nil
}

func (r *Renderer) Name() string {
	return "vanilla"
}

func (r *Renderer) ContentType() string {
	return "text/html; charset=utf-8"
}

func (r *Renderer) Render(ctx context.Context, snapshot form.Snapshot, options render.RenderOptions) ([]byte, error) {
	if r.templates == nil {
		return nil, fmt.Errorf("vanilla renderer: template renderer is nil")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	result, err := r.templates.RenderTemplate(formTemplate, r.view(snapshot, options))
	if err != nil {
		return nil, fmt.Errorf("vanilla renderer: render template: %w", err)
	}
	return []byte(result), nil
}

func (r *Renderer) view(snapshot form.Snapshot, options render.RenderOptions) map[string]any {
	title := strings.TrimSpace(options.Title)
	if title == "" {
		title = DefaultTitle
	}

	sizes := make([]map[string]any, 0, 4)
	for _, opt := range order.SizeOptions() {
		sizes = append(sizes, map[string]any{
			"value":    string(opt.Value),
			"selected": opt.Value != order.SizeUnset && opt.Value == snapshot.Values.Size,
		})
	}

	catalog := order.Catalog()
	toppings := make([]map[string]any, 0, len(catalog))
	for _, topping := range catalog {
		toppings = append(toppings, map[string]any{
			"id":      topping.ID,
			"checked": snapshot.Values.HasTopping(topping.ID),
		})
	}

	hidden := make([]map[string]any, 0, len(options.Hidden))
	for _, field := range render.SortedHiddenFields(options.Hidden) {
		hidden = append(hidden, map[string]any{"name": field.Name, "value": field.Value})
	}

	view := map[string]any{
		"title":         title,
		"action":        options.FormAction(),
		"method":        options.FormMethod(),
		"hidden":        hidden,
		"fullName":      snapshot.Values.FullName,
		"fullNameError": snapshot.Error(order.FieldFullName),
		"sizes":         sizes,
		"sizeError":     snapshot.Error(order.FieldSize),
		"toppings":      toppings,
		"toppingsError": snapshot.Error(order.FieldToppings),
		"success":       sanitizeBanner(snapshot.Success),
		"failure":       sanitizeBanner(snapshot.Failure),
		"disabled":      snapshot.Disabled || snapshot.Submitting,
		"submitting":    snapshot.Submitting,
		"stylesheet":    r.stylesheetURL,
	}

	if cfg := options.Theme; cfg != nil {
		view["themeName"] = cfg.Theme
		view["themeVariant"] = cfg.Variant
		view["cssVars"] = cssVarsStyle(cfg.CSSVars)
		if cfg.AssetURL != nil {
			if url := cfg.AssetURL(StylesheetAssetKey); url != "" {
				view["stylesheet"] = url
			}
		}
	}
	return view
}
