package vanilla

import (
	"testing"

	theme "github.com/goliatone/go-theme"
	"github.com/google/go-cmp/cmp"
)

func TestThemeFromSelection(t *testing.T) {
	if ThemeFromSelection(nil) != nil {
		t.Fatal("expected nil config for nil selection")
	}

	selection := &theme.Selection{
		Theme:   "garden",
		Variant: "light",
		Manifest: &theme.Manifest{
			Name:      "garden",
			Version:   "0.1.0",
			Tokens:    map[string]string{"brand": "#0a0", "radius": "4px"},
			Templates: map[string]string{"forms.input": "garden/input.tmpl"},
			Assets: theme.Assets{
				Prefix: "/assets/garden/",
				Files: map[string]string{
					StylesheetAssetKey: "garden.css",
					"logo":             "https://cdn.example.com/logo.svg",
				},
			},
			Variants: map[string]theme.Variant{
				"light": {
					Tokens: map[string]string{"brand": "#6f6"},
					Assets: theme.Assets{Files: map[string]string{StylesheetAssetKey: "garden-light.css"}},
				},
			},
		},
	}

	cfg := ThemeFromSelection(selection)
	if cfg.Theme != "garden" || cfg.Variant != "light" {
		t.Fatalf("unexpected selection %s/%s", cfg.Theme, cfg.Variant)
	}
	wantVars := map[string]string{"--brand": "#6f6", "--radius": "4px"}
	if diff := cmp.Diff(wantVars, cfg.CSSVars); diff != "" {
		t.Fatalf("css vars mismatch (-want +got):\n%s", diff)
	}
	if got := cfg.Partials["forms.input"]; got != "garden/input.tmpl" {
		t.Fatalf("unexpected partial %q", got)
	}
	if got := cfg.AssetURL(StylesheetAssetKey); got != "/assets/garden/garden-light.css" {
		t.Fatalf("unexpected stylesheet url %q", got)
	}
	if got := cfg.AssetURL("logo"); got != "https://cdn.example.com/logo.svg" {
		t.Fatalf("unexpected logo url %q", got)
	}
	if got := cfg.AssetURL("missing"); got != "" {
		t.Fatalf("expected empty url, got %q", got)
	}
}

func TestCSSVarsStyle(t *testing.T) {
	got := cssVarsStyle(map[string]string{"--b": "2", "--a": "</style>1"})
	want := ":root {\n--a: /style1;\n--b: 2;\n}"
	if got != want {
		t.Fatalf("style mismatch\nwant: %q\n got: %q", want, got)
	}
}
