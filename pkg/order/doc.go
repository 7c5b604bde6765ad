// Package order defines the pizza order value object shared by the form,
// the validation schema, the endpoint client, and every renderer. The Order
// type marshals to the wire shape expected by the order endpoint
// (`fullName`, `size`, `toppings`) and the topping catalog is a fixed,
// ordered list that callers must treat as read-only.
package order
