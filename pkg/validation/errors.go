package validation

import (
	"errors"
	"strings"
)

// ErrUnknownField is returned when a field name is not part of the schema.
var ErrUnknownField = errors.New("validation: unknown field")

// FieldError reports the first failing rule for a single field.
type FieldError struct {
	Field   string   `json:"field"`
	Rule    RuleKind `json:"rule"`
	Message string   `json:"message"`
}

func (e *FieldError) Error() string {
	if e == nil {
		return ""
	}
	return e.Field + ": " + e.Message
}

// Issues collects the field errors produced by a whole-order validation, in
// schema field order.
type Issues []FieldError

func (i Issues) Error() string {
	if len(i) == 0 {
		return "validation: no issues"
	}
	parts := make([]string, 0, len(i))
	for _, issue := range i {
		parts = append(parts, issue.Field+": "+issue.Message)
	}
	return "validation: " + strings.Join(parts, "; ")
}

// Message returns the message recorded for field, or "" when it passed.
func (i Issues) Message(field string) string {
	for _, issue := range i {
		if issue.Field == field {
			return issue.Message
		}
	}
	return ""
}

// Map converts the issues into a field -> message map.
func (i Issues) Map() map[string]string {
	if len(i) == 0 {
		return nil
	}
	out := make(map[string]string, len(i))
	for _, issue := range i {
		out[issue.Field] = issue.Message
	}
	return out
}

// AsIssues extracts Issues from err.
func AsIssues(err error) (Issues, bool) {
	var issues Issues
	if errors.As(err, &issues) {
		return issues, true
	}
	return nil, false
}

// AsFieldError extracts a *FieldError from err.
func AsFieldError(err error) (*FieldError, bool) {
	var fieldErr *FieldError
	if errors.As(err, &fieldErr) {
		return fieldErr, true
	}
	return nil, false
}

// MessageOf returns the user-facing message carried by err, or "" for nil.
func MessageOf(err error) string {
	if err == nil {
		return ""
	}
	if fieldErr, ok := AsFieldError(err); ok {
		return fieldErr.Message
	}
	return err.Error()
}
