package form

import "errors"

var (
	// ErrUnknownField is returned for change events naming no order field.
	ErrUnknownField = errors.New("form: unknown field")
	// ErrUnknownTopping is returned when a checkbox value is not in the catalog.
	ErrUnknownTopping = errors.New("form: unknown topping")
	// ErrUnsupportedInput is returned when a field receives an input type it
	// does not render (for example a checkbox event for fullName).
	ErrUnsupportedInput = errors.New("form: unsupported input type")
	// ErrSubmitInFlight is returned while a previous submission is outstanding.
	ErrSubmitInFlight = errors.New("form: submit in flight")
	// ErrSubmitDisabled is returned while the order fails validation.
	ErrSubmitDisabled = errors.New("form: submit disabled")
	// ErrNoSubmitter is returned when the form was built without a submitter.
	ErrNoSubmitter = errors.New("form: submitter is nil")
)
