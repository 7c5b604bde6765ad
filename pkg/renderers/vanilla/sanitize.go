package vanilla

import (
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	bannerPolicyOnce sync.Once
	bannerPolicy     *bluemonday.Policy
)

// sanitizeBanner strips every tag from a server message. The result is
// HTML-escaped text and is emitted without further escaping.
func sanitizeBanner(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	return strings.TrimSpace(bannerSanitizer().Sanitize(trimmed))
}

func bannerSanitizer() *bluemonday.Policy {
	bannerPolicyOnce.Do(func() {
		bannerPolicy = bluemonday.StrictPolicy()
	})
	return bannerPolicy
}
