package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/goliatone/go-pizzaform/pkg/form"
	"github.com/goliatone/go-pizzaform/pkg/order"
	"github.com/goliatone/go-pizzaform/pkg/render"
	"github.com/goliatone/go-pizzaform/pkg/validation"
)

// Session walks a user through the order form in the terminal: name, size,
// toppings, summary, confirmation, submit. A failed submission keeps the
// entered order and offers another attempt with the previous answers as
// defaults.
type Session struct {
	form    *form.Form
	driver  PromptDriver
	summary *Renderer
	schema  validation.Schema
	theme   Theme
}

// NewSession binds a session to f. The survey driver is used unless
// WithPromptDriver is given.
func NewSession(f *form.Form, options ...Option) (*Session, error) {
	if f == nil {
		return nil, ErrNoForm
	}
	s := &Session{
		form:    f,
		summary: NewRenderer(),
		schema:  validation.OrderSchema(),
		theme:   DefaultTheme,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(s)
	}
	if s.driver == nil {
		s.driver = NewSurveyDriver(nil)
	}
	return s, nil
}

// Run drives the form until an order is placed, the user declines, or input
// is aborted.
func (s *Session) Run(ctx context.Context) (form.Outcome, error) {
	for {
		if err := s.collect(ctx); err != nil {
			return form.Outcome{}, err
		}
		s.form.Wait()
		snap := s.form.Snapshot()

		if err := s.showSummary(ctx, snap); err != nil {
			return form.Outcome{}, err
		}
		if snap.Disabled {
			if err := s.driver.Info(ctx, s.theme.ErrorPrefix+"The order is incomplete, please review it."); err != nil {
				return form.Outcome{}, err
			}
			continue
		}

		place, err := s.driver.Confirm(ctx, ConfirmConfig{Message: "Place this order?", Default: true})
		if err != nil {
			return form.Outcome{}, err
		}
		if !place {
			return form.Outcome{}, ErrCancelled
		}

		outcome, err := s.form.Submit(ctx)
		if err != nil {
			return form.Outcome{}, err
		}
		if outcome.Succeeded() {
			return outcome, s.driver.Info(ctx, s.theme.SuccessPrefix+outcome.Message)
		}

		if err := s.driver.Info(ctx, s.theme.ErrorPrefix+outcome.Message); err != nil {
			return outcome, err
		}
		retry, err := s.driver.Confirm(ctx, ConfirmConfig{Message: "Edit and try again?", Default: true})
		if err != nil {
			return outcome, err
		}
		if !retry {
			return outcome, nil
		}
	}
}

func (s *Session) collect(ctx context.Context) error {
	current := s.form.Snapshot().Values

	name, err := s.driver.Input(ctx, InputConfig{
		Message:   "Full Name",
		Default:   current.FullName,
		Help:      fmt.Sprintf("%d to %d characters", validation.FullNameMinLength, validation.FullNameMaxLength),
		Validator: s.schema.StringValidator(order.FieldFullName),
	})
	if err != nil {
		return err
	}
	if err := s.form.Change(ctx, form.TextChange(order.FieldFullName, name)); err != nil {
		return err
	}

	sizes := selectableSizes()
	labels := make([]string, len(sizes))
	defaultIdx := 0
	for i, opt := range sizes {
		labels[i] = opt.Label
		if opt.Value == current.Size {
			defaultIdx = i
		}
	}
	idx, err := s.driver.Select(ctx, SelectConfig{Message: "Size", Options: labels, DefaultIndex: defaultIdx})
	if err != nil {
		return err
	}
	if idx < 0 || idx >= len(sizes) {
		return fmt.Errorf("tui: size selection %d out of range", idx)
	}
	if err := s.form.Change(ctx, form.SelectChange(order.FieldSize, string(sizes[idx].Value))); err != nil {
		return err
	}

	catalog := order.Catalog()
	toppingLabels := make([]string, len(catalog))
	var defaults []int
	for i, topping := range catalog {
		toppingLabels[i] = topping.Label
		if current.HasTopping(topping.ID) {
			defaults = append(defaults, i)
		}
	}
	picked, err := s.driver.MultiSelect(ctx, SelectConfig{Message: "Toppings", Options: toppingLabels, Defaults: defaults})
	if err != nil {
		return err
	}
	return s.applyToppings(ctx, current, catalog, picked)
}

// applyToppings emits one checkbox event per topping whose state changed,
// unchecks first so kept toppings keep their order.
func (s *Session) applyToppings(ctx context.Context, current order.Order, catalog []order.Topping, picked []int) error {
	want := make(map[string]bool, len(picked))
	for _, idx := range picked {
		if idx >= 0 && idx < len(catalog) {
			want[catalog[idx].ID] = true
		}
	}
	for _, id := range current.Toppings {
		if !want[id] {
			if err := s.form.Change(ctx, form.CheckboxChange(order.FieldToppings, id, false)); err != nil {
				return err
			}
		}
	}
	for _, topping := range catalog {
		if want[topping.ID] && !current.HasTopping(topping.ID) {
			if err := s.form.Change(ctx, form.CheckboxChange(order.FieldToppings, topping.ID, true)); err != nil {
				return err
			}
		}
	}
	return nil
}

func (s *Session) showSummary(ctx context.Context, snap form.Snapshot) error {
	out, err := s.summary.Render(ctx, snap, render.RenderOptions{})
	if err != nil {
		return err
	}
	return s.driver.Info(ctx, s.theme.InfoPrefix+strings.TrimRight(string(out), "\n"))
}

func selectableSizes() []order.SizeOption {
	var out []order.SizeOption
	for _, opt := range order.SizeOptions() {
		if opt.Value != order.SizeUnset {
			out = append(out, opt)
		}
	}
	return out
}

// IsAbort reports whether err ends a session because input was interrupted.
func IsAbort(err error) bool {
	return errors.Is(err, ErrAborted)
}
