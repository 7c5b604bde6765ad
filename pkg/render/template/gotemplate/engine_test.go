package gotemplate_test

import (
	"errors"
	"io"
	"testing"
	"testing/fstest"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-pizzaform/pkg/order"
	"github.com/goliatone/go-pizzaform/pkg/render/template/gotemplate"
	"github.com/goliatone/go-pizzaform/pkg/testsupport"
)

func templates() fstest.MapFS {
	return fstest.MapFS{
		"hello.tmpl":          {Data: []byte("Hello {{ name|trim }}!")},
		"partials/order.tmpl": {Data: []byte("{{ order.fullName }} ({{ order.size|sizelabel }}){% for id in order.toppings %} {{ id|toppinglabel }}{% endfor %}")},
		"notes.txt":           {Data: []byte("{{ not a template")},
	}
}

func newEngine(t *testing.T, options ...gotemplate.Option) *gotemplate.Engine {
	t.Helper()
	engine, err := gotemplate.New(append([]gotemplate.Option{gotemplate.WithFS(templates())}, options...)...)
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}
	return engine
}

func TestEngine_RenderTemplate(t *testing.T) {
	engine := newEngine(t)

	result, written := testsupport.CaptureTemplateOutput(t, func(w io.Writer) (string, error) {
		return engine.RenderTemplate("hello", map[string]any{"name": "  Ada "}, w)
	})

	if want := "Hello Ada!"; result != want {
		t.Fatalf("result mismatch\nwant: %q\n got: %q", want, result)
	}
	if written != result {
		t.Fatalf("writer mismatch\nwant: %q\n got: %q", result, written)
	}
}

func TestEngine_StructDataUsesJSONNames(t *testing.T) {
	engine := newEngine(t)

	data := map[string]any{
		"order": order.Order{FullName: "Ada", Size: order.SizeLarge, Toppings: []string{"1", "5"}},
	}
	got, err := engine.RenderTemplate("partials/order.tmpl", data)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if want := "Ada (Large) Pepperoni Ham"; got != want {
		t.Fatalf("summary mismatch\nwant: %q\n got: %q", want, got)
	}
}

func TestEngine_CompilesOnlyMatchingExtension(t *testing.T) {
	engine := newEngine(t)

	want := []string{"hello.tmpl", "partials/order.tmpl"}
	if diff := cmp.Diff(want, engine.Names()); diff != "" {
		t.Fatalf("names mismatch (-want +got):\n%s", diff)
	}
}

func TestEngine_EarlierSourceWins(t *testing.T) {
	override := fstest.MapFS{"hello.tmpl": {Data: []byte("Hi {{ name }}")}}
	engine, err := gotemplate.New(gotemplate.WithFS(override), gotemplate.WithFS(templates()))
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}

	got, err := engine.RenderTemplate("hello", map[string]any{"name": "Ada"})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if got != "Hi Ada" {
		t.Fatalf("unexpected output %q", got)
	}
	if _, err := engine.RenderTemplate("partials/order", nil); err != nil {
		t.Fatalf("expected later source to stay reachable: %v", err)
	}
}

func TestEngine_BrokenTemplateFailsConstruction(t *testing.T) {
	files := fstest.MapFS{"broken.tmpl": {Data: []byte("{% for item in items %}{{ item }}")}}
	if _, err := gotemplate.New(gotemplate.WithFS(files)); err == nil {
		t.Fatal("expected compile error")
	}
}

func TestEngine_RequiresSource(t *testing.T) {
	if _, err := gotemplate.New(); err == nil {
		t.Fatal("expected error without templates")
	}
}

func TestEngine_MissingTemplate(t *testing.T) {
	engine := newEngine(t)
	_, err := engine.RenderTemplate("missing", nil)
	if !errors.Is(err, gotemplate.ErrTemplateNotFound) {
		t.Fatalf("expected ErrTemplateNotFound, got %v", err)
	}
}

func TestEngine_RejectsNonObjectData(t *testing.T) {
	engine := newEngine(t)
	if _, err := engine.RenderTemplate("hello", []string{"Ada"}); err == nil {
		t.Fatal("expected error for list data")
	}
}
