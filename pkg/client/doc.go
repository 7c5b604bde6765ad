// Package client talks to the remote order endpoint. PlaceOrder posts an
// order as JSON and returns the server's confirmation message; failures with a
// response body come back as *APIError carrying the server's message verbatim
// when one was provided.
package client
