package server

import (
	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-pizzaform/internal/config"
	"github.com/goliatone/go-pizzaform/pkg/renderers/vanilla"
)

// ThemeFromConfig turns configured theme settings into renderer config, or
// nil when no theme is configured.
func ThemeFromConfig(cfg config.ThemeConfig) *theme.RendererConfig {
	if !cfg.Enabled() {
		return nil
	}
	manifest := &theme.Manifest{
		Name:   cfg.Name,
		Tokens: cfg.Tokens,
	}
	if cfg.Stylesheet != "" {
		manifest.Assets = theme.Assets{
			Files: map[string]string{vanilla.StylesheetAssetKey: cfg.Stylesheet},
		}
	}
	return vanilla.ThemeFromSelection(&theme.Selection{
		Theme:    cfg.Name,
		Variant:  cfg.Variant,
		Manifest: manifest,
	})
}
