package vanilla

import (
	"sort"
	"strings"

	theme "github.com/goliatone/go-theme"
)

// StylesheetAssetKey is the manifest asset key for the form stylesheet.
const StylesheetAssetKey = "vanilla.stylesheet"

// ThemeFromSelection flattens a go-theme selection into renderer config.
// Variant tokens, templates and asset files override the base manifest.
// Every token becomes a CSS custom property named "--<token>".
func ThemeFromSelection(selection *theme.Selection) *theme.RendererConfig {
	if selection == nil {
		return nil
	}
	cfg := &theme.RendererConfig{
		Theme:   selection.Theme,
		Variant: selection.Variant,
	}
	manifest := selection.Manifest
	if manifest == nil {
		return cfg
	}

	variant := manifest.Variants[selection.Variant]
	tokens := mergeStrings(manifest.Tokens, variant.Tokens)
	files := mergeStrings(manifest.Assets.Files, variant.Assets.Files)
	prefix := manifest.Assets.Prefix
	if variant.Assets.Prefix != "" {
		prefix = variant.Assets.Prefix
	}

	cfg.Tokens = tokens
	cfg.Partials = mergeStrings(manifest.Templates, variant.Templates)
	cfg.CSSVars = cssVarsFromTokens(tokens)
	cfg.AssetURL = func(key string) string {
		file := strings.TrimSpace(files[key])
		if file == "" {
			return ""
		}
		if strings.HasPrefix(file, "/") || strings.Contains(file, "://") || prefix == "" {
			return file
		}
		return strings.TrimRight(prefix, "/") + "/" + file
	}
	return cfg
}

func mergeStrings(base, override map[string]string) map[string]string {
	if len(base) == 0 && len(override) == 0 {
		return nil
	}
	out := make(map[string]string, len(base)+len(override))
	for key, value := range base {
		out[key] = value
	}
	for key, value := range override {
		out[key] = value
	}
	return out
}

func cssVarsFromTokens(tokens map[string]string) map[string]string {
	if len(tokens) == 0 {
		return nil
	}
	out := make(map[string]string, len(tokens))
	for key, value := range tokens {
		name := strings.TrimSpace(key)
		if name == "" {
			continue
		}
		if !strings.HasPrefix(name, "--") {
			name = "--" + name
		}
		out[name] = value
	}
	return out
}

// cssVarsStyle renders a deterministic :root block. Angle brackets are
// dropped so a value cannot close the surrounding style element.
func cssVarsStyle(vars map[string]string) string {
	if len(vars) == 0 {
		return ""
	}
	keys := make([]string, 0, len(vars))
	for key := range vars {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	strip := strings.NewReplacer("<", "", ">", "")
	var b strings.Builder
	b.WriteString(":root {\n")
	for _, key := range keys {
		b.WriteString(strip.Replace(key))
		b.WriteString(": ")
		b.WriteString(strip.Replace(vars[key]))
		b.WriteString(";\n")
	}
	b.WriteString("}")
	return b.String()
}
