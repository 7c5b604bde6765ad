package tui

import "errors"

var (
	// ErrAborted signals the user aborted input (e.g., Ctrl+C).
	ErrAborted = errors.New("tui: aborted")
	// ErrCancelled is returned when the user declines to place the order.
	ErrCancelled = errors.New("tui: order cancelled")
	// ErrNoForm guards sessions built without a form.
	ErrNoForm = errors.New("tui: form is required")
)
