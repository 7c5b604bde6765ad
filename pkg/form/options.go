package form

import "strings"

// DefaultFailureMessage is shown when a failed submission carries no server
// message.
const DefaultFailureMessage = "An error occurred"

// Option configures a Form.
type Option func(*Form)

// WithValidator replaces the order schema used for validation.
func WithValidator(v Validator) Option {
	return func(f *Form) {
		if v != nil {
			f.validator = v
		}
	}
}

// WithListener registers a state observer.
func WithListener(l Listener) Option {
	return func(f *Form) {
		if l != nil {
			f.listeners = append(f.listeners, l)
		}
	}
}

// WithFallbackMessage overrides DefaultFailureMessage.
func WithFallbackMessage(msg string) Option {
	return func(f *Form) {
		if trimmed := strings.TrimSpace(msg); trimmed != "" {
			f.fallback = trimmed
		}
	}
}
