package jsonx

import (
	"errors"

	"jsonmedia/internal/pkg/jsonprov"
)

// Marshaller-side property names
const (
	// PropertyMarshalIndent is the per-level indent string applied to output
	PropertyMarshalIndent = "marshaller.indent"

	// PropertyMarshalPrefix is the line prefix applied to indented output
	PropertyMarshalPrefix = "marshaller.prefix"

	// PropertyMarshalEscapeHTML controls escaping of <, > and & in strings
	PropertyMarshalEscapeHTML = "marshaller.escape-html"
)

// Unmarshaller-side property names
const (
	// PropertyUnmarshalUseNumber decodes numbers into json.Number instead of float64
	PropertyUnmarshalUseNumber = "unmarshaller.use-number"

	// PropertyUnmarshalDisallowUnknownFields rejects object keys that do not
	// match any field of the destination struct
	PropertyUnmarshalDisallowUnknownFields = "unmarshaller.disallow-unknown-fields"
)

var (
	// ErrUnknownProperty indicates a property name the engine does not recognize
	ErrUnknownProperty = errors.New("unknown property")
	// ErrInvalidPropertyValue indicates a property value of the wrong type
	ErrInvalidPropertyValue = errors.New("invalid property value")
)

// MarshallerPropertySource enumerates the marshaller-side option names.
// The set is declared statically; nothing is discovered at runtime.
func MarshallerPropertySource() jsonprov.PropertySource {
	return jsonprov.StaticSource{
		PropertyMarshalIndent,
		PropertyMarshalPrefix,
		PropertyMarshalEscapeHTML,
	}
}

// UnmarshallerPropertySource enumerates the unmarshaller-side option names
func UnmarshallerPropertySource() jsonprov.PropertySource {
	return jsonprov.StaticSource{
		PropertyUnmarshalUseNumber,
		PropertyUnmarshalDisallowUnknownFields,
	}
}
