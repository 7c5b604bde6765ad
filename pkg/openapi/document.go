package openapi

import (
	_ "embed"
	"errors"
)

//go:embed order.yaml
var embeddedOrderSpec []byte

// EmbeddedLocation names the built-in order endpoint document.
const EmbeddedLocation = "embedded:order.yaml"

// Document wraps a raw OpenAPI payload and where it came from.
type Document struct {
	location string
	raw      []byte
}

// NewDocument constructs a Document wrapper while validating the inputs.
func NewDocument(location string, raw []byte) (Document, error) {
	if location == "" {
		return Document{}, errors.New("openapi: location is required")
	}
	if len(raw) == 0 {
		return Document{}, errors.New("openapi: raw document is empty")
	}
	clone := append([]byte(nil), raw...)
	return Document{location: location, raw: clone}, nil
}

// MustNewDocument panics if the document cannot be created. Useful for tests.
func MustNewDocument(location string, raw []byte) Document {
	doc, err := NewDocument(location, raw)
	if err != nil {
		panic(err)
	}
	return doc
}

// EmbeddedDocument returns the order endpoint description bundled with the
// package.
func EmbeddedDocument() Document {
	return MustNewDocument(EmbeddedLocation, embeddedOrderSpec)
}

// Location returns the string identifier for the origin.
func (d Document) Location() string {
	return d.location
}

// Raw returns a copy of the OpenAPI payload.
func (d Document) Raw() []byte {
	return append([]byte(nil), d.raw...)
}
