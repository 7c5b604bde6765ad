package render

import (
	"strings"

	theme "github.com/goliatone/go-theme"
)

// DefaultAction is the form action used when RenderOptions.Action is empty.
const DefaultAction = "/"

// RenderOptions carry per-request data renderers use to customise output.
type RenderOptions struct {
	// Action is the URL the HTML form posts to.
	Action string
	// Method overrides the form method. Only GET and POST are meaningful to
	// browsers; anything else renders as POST.
	Method string
	// Title is shown above the form.
	Title string
	// Theme supplies CSS variables and asset URLs resolved from go-theme.
	Theme *theme.RendererConfig
	// Hidden fields are emitted alongside the visible controls.
	Hidden map[string]string
}

// FormAction returns Action or DefaultAction.
func (o RenderOptions) FormAction() string {
	if action := strings.TrimSpace(o.Action); action != "" {
		return action
	}
	return DefaultAction
}

// FormMethod returns the browser method for the form.
func (o RenderOptions) FormMethod() string {
	if strings.EqualFold(strings.TrimSpace(o.Method), "get") {
		return "get"
	}
	return "post"
}
