package validation

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/goliatone/go-pizzaform/pkg/order"
)

// Failure messages surfaced to the user.
const (
	MessageFullNameTooShort = "Full name must be at least 3 characters"
	MessageFullNameTooLong  = "Full name must be at most 20 characters"
	MessageSizeIncorrect    = "Size must be S or M or L"
)

// Name length bounds, counted in runes after trimming.
const (
	FullNameMinLength = 3
	FullNameMaxLength = 20
)

// RuleKind identifies a rule type.
type RuleKind string

const (
	RuleType        RuleKind = "type"
	RuleMinLength   RuleKind = "minLength"
	RuleMaxLength   RuleKind = "maxLength"
	RuleOneOf       RuleKind = "oneOf"
	RuleStringItems RuleKind = "stringItems"
)

// Rule is a single declarative constraint on a field value.
type Rule struct {
	Kind    RuleKind
	Length  int
	Options []string
	Message string
}

// ValueKind describes the shape a field value must have.
type ValueKind string

const (
	ValueString ValueKind = "string"
	ValueList   ValueKind = "list"
)

// Field describes how one order field is validated.
type Field struct {
	Name  string
	Kind  ValueKind
	Trim  bool
	Rules []Rule
}

// Schema is an ordered set of field rules. The zero value validates nothing;
// use OrderSchema for the pizza order rules.
type Schema struct {
	fields []Field
}

// NewSchema builds a schema from field definitions, preserving their order.
func NewSchema(fields ...Field) Schema {
	return Schema{fields: append([]Field(nil), fields...)}
}

// OrderSchema returns the rules applied to pizza orders.
func OrderSchema() Schema {
	return NewSchema(
		Field{
			Name: order.FieldFullName,
			Kind: ValueString,
			Trim: true,
			Rules: []Rule{
				{Kind: RuleMinLength, Length: FullNameMinLength, Message: MessageFullNameTooShort},
				{Kind: RuleMaxLength, Length: FullNameMaxLength, Message: MessageFullNameTooLong},
			},
		},
		Field{
			Name: order.FieldSize,
			Kind: ValueString,
			Rules: []Rule{
				{
					Kind:    RuleOneOf,
					Options: []string{string(order.SizeSmall), string(order.SizeMedium), string(order.SizeLarge)},
					Message: MessageSizeIncorrect,
				},
			},
		},
		Field{
			Name:  order.FieldToppings,
			Kind:  ValueList,
			Rules: []Rule{{Kind: RuleStringItems}},
		},
	)
}

// Fields returns the schema field definitions.
func (s Schema) Fields() []Field {
	return append([]Field(nil), s.fields...)
}

// Lookup returns the definition for name.
func (s Schema) Lookup(name string) (Field, bool) {
	for _, f := range s.fields {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}

// ValidateField checks a single field value and returns a *FieldError for the
// first failing rule.
func (s Schema) ValidateField(ctx context.Context, name string, value any) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	field, ok := s.Lookup(name)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownField, name)
	}
	if fieldErr := field.check(value); fieldErr != nil {
		return fieldErr
	}
	return nil
}

// Validate checks every field of o and returns Issues when any fail.
func (s Schema) Validate(ctx context.Context, o order.Order) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	var issues Issues
	for _, field := range s.fields {
		value, ok := fieldValue(o, field.Name)
		if !ok {
			continue
		}
		if fieldErr := field.check(value); fieldErr != nil {
			issues = append(issues, *fieldErr)
		}
	}
	if len(issues) > 0 {
		return issues
	}
	return nil
}

// IsValid is the whole-order predicate.
func (s Schema) IsValid(o order.Order) bool {
	return s.Validate(context.Background(), o) == nil
}

// StringValidator adapts a string field to the func(string) error shape used
// by prompt libraries.
func (s Schema) StringValidator(name string) func(string) error {
	return func(value string) error {
		err := s.ValidateField(context.Background(), name, value)
		if fieldErr, ok := AsFieldError(err); ok {
			return errors.New(fieldErr.Message)
		}
		return err
	}
}

func fieldValue(o order.Order, name string) (any, bool) {
	switch name {
	case order.FieldFullName:
		return o.FullName, true
	case order.FieldSize:
		return string(o.Size), true
	case order.FieldToppings:
		return o.Toppings, true
	default:
		return nil, false
	}
}

func (f Field) check(value any) *FieldError {
	switch f.Kind {
	case ValueList:
		items, err := f.listItems(value)
		if err != nil {
			return err
		}
		for _, rule := range f.Rules {
			if fieldErr := f.applyList(rule, items); fieldErr != nil {
				return fieldErr
			}
		}
		return nil
	default:
		text, ok := stringValue(value)
		if !ok {
			return &FieldError{Field: f.Name, Rule: RuleType, Message: fmt.Sprintf("%s must be a string", f.Name)}
		}
		if f.Trim {
			text = strings.TrimSpace(text)
		}
		for _, rule := range f.Rules {
			if fieldErr := f.applyString(rule, text); fieldErr != nil {
				return fieldErr
			}
		}
		return nil
	}
}

func (f Field) applyString(rule Rule, text string) *FieldError {
	switch rule.Kind {
	case RuleMinLength:
		if utf8.RuneCountInString(text) < rule.Length {
			return f.fail(rule, fmt.Sprintf("%s must be at least %d characters", f.Name, rule.Length))
		}
	case RuleMaxLength:
		if utf8.RuneCountInString(text) > rule.Length {
			return f.fail(rule, fmt.Sprintf("%s must be at most %d characters", f.Name, rule.Length))
		}
	case RuleOneOf:
		for _, opt := range rule.Options {
			if text == opt {
				return nil
			}
		}
		return f.fail(rule, fmt.Sprintf("%s must be one of %s", f.Name, strings.Join(rule.Options, ", ")))
	}
	return nil
}

func (f Field) applyList(rule Rule, items []any) *FieldError {
	if rule.Kind != RuleStringItems {
		return nil
	}
	for idx, item := range items {
		if _, ok := item.(string); !ok {
			return f.fail(rule, fmt.Sprintf("%s[%d] must be a string", f.Name, idx))
		}
	}
	return nil
}

func (f Field) listItems(value any) ([]any, *FieldError) {
	switch v := value.(type) {
	case nil:
		return nil, nil
	case []string:
		out := make([]any, len(v))
		for i, s := range v {
			out[i] = s
		}
		return out, nil
	case []any:
		return v, nil
	default:
		return nil, &FieldError{Field: f.Name, Rule: RuleType, Message: fmt.Sprintf("%s must be a list", f.Name)}
	}
}

func (f Field) fail(rule Rule, fallback string) *FieldError {
	msg := rule.Message
	if msg == "" {
		msg = fallback
	}
	return &FieldError{Field: f.Name, Rule: rule.Kind, Message: msg}
}

func stringValue(value any) (string, bool) {
	switch v := value.(type) {
	case string:
		return v, true
	case order.Size:
		return string(v), true
	default:
		return "", false
	}
}
