package tui

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-pizzaform/pkg/client"
	"github.com/goliatone/go-pizzaform/pkg/form"
	"github.com/goliatone/go-pizzaform/pkg/order"
	"github.com/goliatone/go-pizzaform/pkg/render"
	"github.com/goliatone/go-pizzaform/pkg/testsupport"
)

type stubDriver struct {
	inputs       []string
	selectIdx    []int
	multiIdx     [][]int
	confirm      []bool
	infoMessages []string
	inputPos     int
	selectPos    int
	multiPos     int
	confirmPos   int
	inputErr     error
}

func (s *stubDriver) Input(_ context.Context, cfg InputConfig) (string, error) {
	if s.inputErr != nil {
		return "", s.inputErr
	}
	if s.inputPos >= len(s.inputs) {
		return "", errors.New("no input scripted")
	}
	val := s.inputs[s.inputPos]
	s.inputPos++
	if cfg.Validator != nil {
		if err := cfg.Validator(val); err != nil {
			return "", err
		}
	}
	return val, nil
}

func (s *stubDriver) Confirm(_ context.Context, _ ConfirmConfig) (bool, error) {
	if s.confirmPos >= len(s.confirm) {
		return false, errors.New("no confirm scripted")
	}
	val := s.confirm[s.confirmPos]
	s.confirmPos++
	return val, nil
}

func (s *stubDriver) Select(_ context.Context, _ SelectConfig) (int, error) {
	if s.selectPos >= len(s.selectIdx) {
		return -1, errors.New("no select scripted")
	}
	val := s.selectIdx[s.selectPos]
	s.selectPos++
	return val, nil
}

func (s *stubDriver) MultiSelect(_ context.Context, _ SelectConfig) ([]int, error) {
	if s.multiPos >= len(s.multiIdx) {
		return nil, errors.New("no multiselect scripted")
	}
	val := s.multiIdx[s.multiPos]
	s.multiPos++
	return val, nil
}

func (s *stubDriver) Info(_ context.Context, msg string) error {
	s.infoMessages = append(s.infoMessages, msg)
	return nil
}

func (s *stubDriver) output() string {
	return strings.Join(s.infoMessages, "\n")
}

func newSession(t *testing.T, endpoint *testsupport.OrderEndpoint, driver PromptDriver) *Session {
	t.Helper()
	c, err := client.New(endpoint.URL())
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	session, err := NewSession(form.New(c), WithPromptDriver(driver))
	if err != nil {
		t.Fatalf("new session: %v", err)
	}
	return session
}

func TestSession_PlacesOrder(t *testing.T) {
	endpoint := testsupport.NewOrderEndpoint(t, nil)
	driver := &stubDriver{
		inputs:    []string{"  Ada Lovelace "},
		selectIdx: []int{1},
		multiIdx:  [][]int{{0, 3}},
		confirm:   []bool{true},
	}

	outcome, err := newSession(t, endpoint, driver).Run(context.Background())
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if !outcome.Succeeded() {
		t.Fatalf("unexpected outcome %+v", outcome)
	}

	requests := endpoint.Requests()
	if len(requests) != 1 {
		t.Fatalf("expected 1 request, got %d", len(requests))
	}
	// The name is posted as typed, the same as the HTML form posts it.
	want := order.Order{FullName: "  Ada Lovelace ", Size: order.SizeMedium, Toppings: []string{"1", "4"}}
	if diff := cmp.Diff(want, requests[0].Order); diff != "" {
		t.Fatalf("order mismatch (-want +got):\n%s", diff)
	}

	out := driver.output()
	for _, fragment := range []string{"fullName: Ada Lovelace", "size: Medium (M)", "- Pepperoni", "- Mushrooms", "✔ Order placed"} {
		if !strings.Contains(out, fragment) {
			t.Fatalf("expected output to contain %q\n%s", fragment, out)
		}
	}
}

func TestSession_RetriesAfterFailure(t *testing.T) {
	calls := 0
	endpoint := testsupport.NewOrderEndpoint(t, func(order.Order) (int, any) {
		calls++
		if calls == 1 {
			return http.StatusServiceUnavailable, testsupport.Message("Kitchen closed")
		}
		return http.StatusCreated, testsupport.Message("Order placed")
	})
	driver := &stubDriver{
		inputs:    []string{"Ada", "Ada"},
		selectIdx: []int{2, 2},
		multiIdx:  [][]int{{0}, {0, 1}},
		confirm:   []bool{true, true, true},
	}

	outcome, err := newSession(t, endpoint, driver).Run(context.Background())
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if !outcome.Succeeded() {
		t.Fatalf("unexpected outcome %+v", outcome)
	}

	requests := endpoint.Requests()
	if len(requests) != 2 {
		t.Fatalf("expected 2 requests, got %d", len(requests))
	}
	if diff := cmp.Diff([]string{"1"}, requests[0].Order.Toppings); diff != "" {
		t.Fatalf("first toppings mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"1", "2"}, requests[1].Order.Toppings); diff != "" {
		t.Fatalf("second toppings mismatch (-want +got):\n%s", diff)
	}
	if !strings.Contains(driver.output(), "✘ Kitchen closed") {
		t.Fatalf("expected failure message in output\n%s", driver.output())
	}
}

func TestSession_GivesUpWhenRetryDeclined(t *testing.T) {
	endpoint := testsupport.NewOrderEndpoint(t, testsupport.Respond(http.StatusInternalServerError, nil))
	driver := &stubDriver{
		inputs:    []string{"Ada"},
		selectIdx: []int{0},
		multiIdx:  [][]int{nil},
		confirm:   []bool{true, false},
	}

	outcome, err := newSession(t, endpoint, driver).Run(context.Background())
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if outcome.Kind != form.OutcomeFailure || outcome.Message != form.DefaultFailureMessage {
		t.Fatalf("unexpected outcome %+v", outcome)
	}
}

func TestSession_Declined(t *testing.T) {
	endpoint := testsupport.NewOrderEndpoint(t, nil)
	driver := &stubDriver{
		inputs:    []string{"Ada"},
		selectIdx: []int{0},
		multiIdx:  [][]int{nil},
		confirm:   []bool{false},
	}

	_, err := newSession(t, endpoint, driver).Run(context.Background())
	if !errors.Is(err, ErrCancelled) {
		t.Fatalf("expected ErrCancelled, got %v", err)
	}
	if len(endpoint.Requests()) != 0 {
		t.Fatal("declined order must not be sent")
	}
}

func TestSession_Aborted(t *testing.T) {
	endpoint := testsupport.NewOrderEndpoint(t, nil)
	driver := &stubDriver{inputErr: ErrAborted}

	_, err := newSession(t, endpoint, driver).Run(context.Background())
	if !IsAbort(err) {
		t.Fatalf("expected abort, got %v", err)
	}
}

func TestSession_RejectsInvalidNameInline(t *testing.T) {
	endpoint := testsupport.NewOrderEndpoint(t, nil)
	driver := &stubDriver{inputs: []string{"Al"}}

	_, err := newSession(t, endpoint, driver).Run(context.Background())
	if err == nil || err.Error() != "Full name must be at least 3 characters" {
		t.Fatalf("expected inline validation error, got %v", err)
	}
}

func TestNewSession_RequiresForm(t *testing.T) {
	if _, err := NewSession(nil); !errors.Is(err, ErrNoForm) {
		t.Fatalf("expected ErrNoForm, got %v", err)
	}
}

func TestRenderer_Formats(t *testing.T) {
	snap := form.Snapshot{
		Values: order.Order{FullName: "Ada", Size: order.SizeLarge, Toppings: []string{"1"}},
		Errors: map[string]string{order.FieldFullName: "", order.FieldSize: "bad"},
	}

	out, err := NewRenderer().Render(context.Background(), snap, render.RenderOptions{})
	if err != nil {
		t.Fatalf("render yaml: %v", err)
	}
	for _, fragment := range []string{"fullName: Ada", "size: Large (L)", "- Pepperoni", "size: bad"} {
		if !strings.Contains(string(out), fragment) {
			t.Fatalf("expected yaml to contain %q\n%s", fragment, out)
		}
	}
	if strings.Contains(string(out), "fullName: \"\"") {
		t.Fatalf("empty errors must be omitted\n%s", out)
	}

	jsonRenderer := NewRenderer(WithOutputFormat(OutputFormatJSON))
	if jsonRenderer.ContentType() != "application/json" {
		t.Fatalf("unexpected content type %s", jsonRenderer.ContentType())
	}
	out, err = jsonRenderer.Render(context.Background(), snap, render.RenderOptions{})
	if err != nil {
		t.Fatalf("render json: %v", err)
	}
	var got Summary
	if err := json.Unmarshal(out, &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	want := Summary{
		FullName: "Ada",
		Size:     "Large (L)",
		Toppings: []string{"Pepperoni"},
		Errors:   map[string]string{order.FieldSize: "bad"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("summary mismatch (-want +got):\n%s", diff)
	}
}
