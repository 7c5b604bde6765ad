// Package validation holds the declarative order schema: an ordered set of
// rules per field plus a whole-order predicate. Rules are plain values so the
// same schema can drive inline field errors, the submit control's disabled
// state, and terminal prompt validators without pulling in a validation
// library. Messages are the user-facing strings shown next to each field.
package validation
