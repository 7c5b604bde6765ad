package gotemplate

import (
	"strings"
	"sync"

	"github.com/flosch/pongo2/v6"

	"github.com/goliatone/go-pizzaform/pkg/order"
)

var filtersOnce sync.Once

// registerFilters installs the order filters. pongo2 keeps filters in a
// process-wide table, so they are added once.
//
//	trim          surrounding whitespace removed
//	sizelabel     "M" -> "Medium"
//	toppinglabel  "4" -> "Mushrooms"
func registerFilters() {
	filtersOnce.Do(func() {
		for name, fn := range map[string]pongo2.FilterFunction{
			"trim":         filterTrim,
			"sizelabel":    filterSizeLabel,
			"toppinglabel": filterToppingLabel,
		} {
			if !pongo2.FilterExists(name) {
				_ = pongo2.RegisterFilter(name, fn)
			}
		}
	})
}

func filterTrim(in *pongo2.Value, _ *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
	return pongo2.AsValue(strings.TrimSpace(in.String())), nil
}

func filterSizeLabel(in *pongo2.Value, _ *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
	return pongo2.AsValue(order.SizeLabel(order.Size(in.String()))), nil
}

func filterToppingLabel(in *pongo2.Value, _ *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
	if topping, ok := order.LookupTopping(in.String()); ok {
		return pongo2.AsValue(topping.Label), nil
	}
	return pongo2.AsValue(in.String()), nil
}
