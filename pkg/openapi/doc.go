// Package openapi wraps the OpenAPI description of the order endpoint. The
// document ships embedded in the package and is parsed with kin-openapi; the
// rest of the module only sees the Contract type, which checks outgoing order
// payloads and incoming response bodies against the documented schemas.
package openapi
