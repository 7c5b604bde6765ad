package form

import "github.com/goliatone/go-pizzaform/pkg/order"

// OutcomeKind tags the result of the last submit attempt.
type OutcomeKind string

const (
	OutcomeNone    OutcomeKind = ""
	OutcomeSuccess OutcomeKind = "success"
	OutcomeFailure OutcomeKind = "failure"
)

// Outcome is the result of a submit attempt. Success and failure are
// mutually exclusive.
type Outcome struct {
	Kind    OutcomeKind `json:"kind"`
	Message string      `json:"message"`
	// Cause is the submitter error behind a failure.
	Cause error `json:"-"`
}

// Succeeded reports whether the outcome is a success.
func (o Outcome) Succeeded() bool {
	return o.Kind == OutcomeSuccess
}

// Snapshot is an immutable copy of the form state.
type Snapshot struct {
	Values     order.Order       `json:"values"`
	Errors     map[string]string `json:"errors"`
	Success    string            `json:"success,omitempty"`
	Failure    string            `json:"failure,omitempty"`
	Disabled   bool              `json:"disabled"`
	Submitting bool              `json:"submitting"`
}

// Error returns the current message for field, "" when none.
func (s Snapshot) Error(field string) string {
	return s.Errors[field]
}

// Touched reports whether field has been validated at least once.
func (s Snapshot) Touched(field string) bool {
	_, ok := s.Errors[field]
	return ok
}

// Listener observes state changes. Listeners may be called from validation
// goroutines, so snapshots can arrive out of order; Form.Snapshot always
// returns the latest state.
type Listener func(Snapshot)
