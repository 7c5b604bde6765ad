package order

// Topping is a selectable catalog entry.
type Topping struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// SizeOption pairs a size code with its display label. The placeholder option
// carries SizeUnset.
type SizeOption struct {
	Value Size   `json:"value"`
	Label string `json:"label"`
}

// SizePlaceholder is the label shown while no size is selected.
const SizePlaceholder = "----Choose Size----"

var toppingCatalog = [...]Topping{
	{ID: "1", Label: "Pepperoni"},
	{ID: "2", Label: "Green Peppers"},
	{ID: "3", Label: "Pineapple"},
	{ID: "4", Label: "Mushrooms"},
	{ID: "5", Label: "Ham"},
}

var sizeOptions = [...]SizeOption{
	{Value: SizeUnset, Label: SizePlaceholder},
	{Value: SizeSmall, Label: "Small"},
	{Value: SizeMedium, Label: "Medium"},
	{Value: SizeLarge, Label: "Large"},
}

// Catalog returns the fixed topping catalog in display order. The slice is a
// fresh copy on every call.
func Catalog() []Topping {
	out := make([]Topping, len(toppingCatalog))
	copy(out, toppingCatalog[:])
	return out
}

// LookupTopping returns the catalog entry for id.
func LookupTopping(id string) (Topping, bool) {
	for _, t := range toppingCatalog {
		if t.ID == id {
			return t, true
		}
	}
	return Topping{}, false
}

// SizeOptions returns the size select options, placeholder first.
func SizeOptions() []SizeOption {
	out := make([]SizeOption, len(sizeOptions))
	copy(out, sizeOptions[:])
	return out
}

// SizeLabel returns the display label for s, or the placeholder when s is not
// a selectable size.
func SizeLabel(s Size) string {
	for _, opt := range sizeOptions {
		if opt.Value == s {
			return opt.Label
		}
	}
	return SizePlaceholder
}
