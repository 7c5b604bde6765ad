package form

import (
	"fmt"
	"strings"

	"github.com/goliatone/go-pizzaform/pkg/order"
)

// InputType mirrors the control that produced a change.
type InputType string

const (
	InputText     InputType = "text"
	InputSelect   InputType = "select"
	InputCheckbox InputType = "checkbox"
)

// Event is a single field change.
type Event struct {
	Name    string
	Value   string
	Checked bool
	Type    InputType
}

// TextChange builds a text input event.
func TextChange(name, value string) Event {
	return Event{Name: name, Value: value, Type: InputText}
}

// SelectChange builds a select event.
func SelectChange(name, value string) Event {
	return Event{Name: name, Value: value, Type: InputSelect}
}

// CheckboxChange builds a checkbox toggle event.
func CheckboxChange(name, value string, checked bool) Event {
	return Event{Name: name, Value: value, Checked: checked, Type: InputCheckbox}
}

// apply returns the updated order and the value to validate for the changed
// field.
func apply(current order.Order, ev Event) (order.Order, any, error) {
	name := strings.TrimSpace(ev.Name)
	switch name {
	case order.FieldFullName:
		if ev.Type == InputCheckbox {
			return current, nil, fmt.Errorf("%w: %s on %s", ErrUnsupportedInput, ev.Type, name)
		}
		next := current.Clone()
		next.FullName = ev.Value
		return next, next.FullName, nil

	case order.FieldSize:
		if ev.Type == InputCheckbox {
			return current, nil, fmt.Errorf("%w: %s on %s", ErrUnsupportedInput, ev.Type, name)
		}
		next := current.Clone()
		next.Size = order.Size(ev.Value)
		return next, string(next.Size), nil

	case order.FieldToppings:
		if ev.Type != InputCheckbox {
			return current, nil, fmt.Errorf("%w: %s on %s", ErrUnsupportedInput, ev.Type, name)
		}
		if _, ok := order.LookupTopping(ev.Value); !ok {
			return current, nil, fmt.Errorf("%w: %q", ErrUnknownTopping, ev.Value)
		}
		var next order.Order
		if ev.Checked {
			next = current.WithTopping(ev.Value)
		} else {
			next = current.WithoutTopping(ev.Value)
		}
		return next, append([]string{}, next.Toppings...), nil

	default:
		return current, nil, fmt.Errorf("%w: %q", ErrUnknownField, ev.Name)
	}
}
