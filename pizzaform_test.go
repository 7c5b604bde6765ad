package pizzaform

import (
	"context"
	"io/fs"
	"strings"
	"testing"

	"github.com/goliatone/go-pizzaform/pkg/form"
	"github.com/goliatone/go-pizzaform/pkg/order"
	"github.com/goliatone/go-pizzaform/pkg/testsupport"
)

func TestNewForm_SubmitsToEndpoint(t *testing.T) {
	endpoint := testsupport.NewOrderEndpoint(t, nil)
	f, err := NewForm(endpoint.URL(), nil)
	if err != nil {
		t.Fatalf("new form: %v", err)
	}

	ctx := context.Background()
	for _, ev := range []form.Event{
		form.TextChange(order.FieldFullName, "Grace Hopper"),
		form.SelectChange(order.FieldSize, "S"),
		form.CheckboxChange(order.FieldToppings, "4", true),
	} {
		if err := f.Change(ctx, ev); err != nil {
			t.Fatalf("change: %v", err)
		}
	}
	f.Wait()

	outcome, err := f.Submit(ctx)
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if !outcome.Succeeded() || len(endpoint.Requests()) != 1 {
		t.Fatalf("unexpected outcome %+v", outcome)
	}
}

func TestNewForm_RejectsBadEndpoint(t *testing.T) {
	if _, err := NewForm("ftp://orders", nil); err == nil {
		t.Fatal("expected error for non-http endpoint")
	}
}

func TestRegistryAndRenderHTML(t *testing.T) {
	registry, err := NewRegistry()
	if err != nil {
		t.Fatalf("registry: %v", err)
	}
	def, err := registry.Default()
	if err != nil || def.Name() != "vanilla" {
		t.Fatalf("unexpected default renderer %v %v", def, err)
	}
	if _, err := registry.Get("json"); err != nil {
		t.Fatalf("expected json renderer: %v", err)
	}

	out, err := RenderHTML(context.Background(), Snapshot{Values: order.Empty(), Disabled: true}, RenderOptions{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(string(out), "Order Your Pizza") {
		t.Fatalf("unexpected html\n%s", out)
	}
}

func TestEmbeddedFS(t *testing.T) {
	if _, err := fs.ReadFile(EmbeddedTemplates(), "templates/form.tmpl"); err != nil {
		t.Fatalf("expected form template: %v", err)
	}
	if _, err := fs.ReadFile(AssetsFS(), "pizzaform.css"); err != nil {
		t.Fatalf("expected stylesheet: %v", err)
	}
}

func TestContract(t *testing.T) {
	contract, err := Contract()
	if err != nil {
		t.Fatalf("contract: %v", err)
	}
	if op := contract.Operation(); op.Path != "/api/order" {
		t.Fatalf("unexpected operation %+v", op)
	}
}
