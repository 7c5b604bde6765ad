package order

import (
	"encoding/json"
	"slices"
)

// Field names used by change events, error maps, and the wire payload.
const (
	FieldFullName = "fullName"
	FieldSize     = "size"
	FieldToppings = "toppings"
)

// Fields lists the order fields in display order.
func Fields() []string {
	return []string{FieldFullName, FieldSize, FieldToppings}
}

// Size is the pizza size code. The zero value means no size was chosen.
type Size string

const (
	SizeUnset  Size = ""
	SizeSmall  Size = "S"
	SizeMedium Size = "M"
	SizeLarge  Size = "L"
)

// Valid reports whether s is one of the selectable sizes.
func (s Size) Valid() bool {
	switch s {
	case SizeSmall, SizeMedium, SizeLarge:
		return true
	default:
		return false
	}
}

// Order is the in-progress or submitted pizza request.
type Order struct {
	FullName string   `json:"fullName" yaml:"fullName"`
	Size     Size     `json:"size" yaml:"size"`
	Toppings []string `json:"toppings" yaml:"toppings"`
}

// Empty returns the initial order value.
func Empty() Order {
	return Order{Toppings: []string{}}
}

// Clone returns a copy that shares no backing storage with o.
func (o Order) Clone() Order {
	clone := o
	clone.Toppings = append([]string{}, o.Toppings...)
	return clone
}

// IsEmpty reports whether o carries no user input.
func (o Order) IsEmpty() bool {
	return o.FullName == "" && o.Size == SizeUnset && len(o.Toppings) == 0
}

// HasTopping reports whether id is part of the order.
func (o Order) HasTopping(id string) bool {
	return slices.Contains(o.Toppings, id)
}

// WithTopping returns a copy of o including id. Adding an id that is already
// present leaves the order unchanged.
func (o Order) WithTopping(id string) Order {
	clone := o.Clone()
	if clone.HasTopping(id) {
		return clone
	}
	clone.Toppings = append(clone.Toppings, id)
	return clone
}

// WithoutTopping returns a copy of o with id removed, preserving the order of
// the remaining toppings.
func (o Order) WithoutTopping(id string) Order {
	clone := o.Clone()
	clone.Toppings = slices.DeleteFunc(clone.Toppings, func(t string) bool {
		return t == id
	})
	return clone
}

// MarshalJSON always encodes toppings as an array so an empty selection is
// sent as [] rather than null.
func (o Order) MarshalJSON() ([]byte, error) {
	type wire Order
	w := wire(o)
	if w.Toppings == nil {
		w.Toppings = []string{}
	}
	return json.Marshal(w)
}
