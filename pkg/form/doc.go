// Package form implements the pizza order form: it owns the Order state,
// applies change events from any front end, validates asynchronously, and
// submits through an order client.
//
// Every change draws a token from a monotonically increasing sequence. The
// changed field and the whole order are then validated on separate goroutines,
// and a result is applied only while its token is still the latest one for
// that field (field errors) or overall (the disabled flag). Late results from
// older changes are dropped regardless of the order in which validations
// finish. Submit is guarded so at most one order is outstanding at a time.
package form
