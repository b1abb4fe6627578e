package jsonx

import (
	"fmt"
	"io"
	"mime"
	"reflect"
	"strings"

	"github.com/goccy/go-json"

	"jsonmedia/internal/pkg/jsonprov"
)

// Engine is a JSON engine backed by goccy/go-json. It implements
// jsonprov.Engine: per-operation marshaller/unmarshaller sessions whose
// behavior is tuned through named properties.
type Engine struct{}

// NewEngine creates a new engine
func NewEngine() *Engine {
	return &Engine{}
}

// IsReadable reports whether the engine itself can decode into the given
// type for the given media type. Decoding requires a pointer destination.
func (e *Engine) IsReadable(t reflect.Type, mediaType string) bool {
	if t == nil || t.Kind() != reflect.Ptr {
		return false
	}
	return isJSONMediaType(mediaType)
}

// IsWritable reports whether the engine itself can encode the given type
// for the given media type
func (e *Engine) IsWritable(t reflect.Type, mediaType string) bool {
	if t == nil {
		return false
	}
	switch t.Kind() {
	case reflect.Chan, reflect.Func, reflect.UnsafePointer:
		return false
	}
	return isJSONMediaType(mediaType)
}

// NewMarshaller opens a write session on w
func (e *Engine) NewMarshaller(w io.Writer) jsonprov.Marshaller {
	return &marshaller{
		enc:        json.NewEncoder(w),
		escapeHTML: true,
	}
}

// NewUnmarshaller opens a read session on r
func (e *Engine) NewUnmarshaller(r io.Reader) jsonprov.Unmarshaller {
	return &unmarshaller{
		dec: json.NewDecoder(r),
	}
}

// isJSONMediaType accepts application/json, text/json and any subtype with
// a +json suffix. An empty media type is treated as JSON; negotiation has
// already happened by the time the engine is asked.
func isJSONMediaType(mediaType string) bool {
	if mediaType == "" {
		return true
	}
	parsed, _, err := mime.ParseMediaType(mediaType)
	if err != nil {
		return false
	}
	switch parsed {
	case "application/json", "text/json":
		return true
	}
	return strings.HasSuffix(parsed, "+json")
}

// marshaller is one write session. Properties accumulate until Marshal.
type marshaller struct {
	enc        *json.Encoder
	indent     string
	prefix     string
	escapeHTML bool
}

// SetProperty implements jsonprov.Marshaller
func (m *marshaller) SetProperty(name string, value any) error {
	switch name {
	case PropertyMarshalIndent:
		s, ok := value.(string)
		if !ok {
			return fmt.Errorf("%w for %q: expected string, got %T", ErrInvalidPropertyValue, name, value)
		}
		m.indent = s
	case PropertyMarshalPrefix:
		s, ok := value.(string)
		if !ok {
			return fmt.Errorf("%w for %q: expected string, got %T", ErrInvalidPropertyValue, name, value)
		}
		m.prefix = s
	case PropertyMarshalEscapeHTML:
		b, ok := value.(bool)
		if !ok {
			return fmt.Errorf("%w for %q: expected bool, got %T", ErrInvalidPropertyValue, name, value)
		}
		m.escapeHTML = b
	default:
		return fmt.Errorf("%w: %q", ErrUnknownProperty, name)
	}
	return nil
}

// Marshal implements jsonprov.Marshaller
func (m *marshaller) Marshal(v any) error {
	m.enc.SetEscapeHTML(m.escapeHTML)
	if m.indent != "" || m.prefix != "" {
		m.enc.SetIndent(m.prefix, m.indent)
	}
	return m.enc.Encode(v)
}

// unmarshaller is one read session
type unmarshaller struct {
	dec *json.Decoder
}

// SetProperty implements jsonprov.Unmarshaller
func (u *unmarshaller) SetProperty(name string, value any) error {
	switch name {
	case PropertyUnmarshalUseNumber:
		b, ok := value.(bool)
		if !ok {
			return fmt.Errorf("%w for %q: expected bool, got %T", ErrInvalidPropertyValue, name, value)
		}
		if b {
			u.dec.UseNumber()
		}
	case PropertyUnmarshalDisallowUnknownFields:
		b, ok := value.(bool)
		if !ok {
			return fmt.Errorf("%w for %q: expected bool, got %T", ErrInvalidPropertyValue, name, value)
		}
		if b {
			u.dec.DisallowUnknownFields()
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownProperty, name)
	}
	return nil
}

// Unmarshal implements jsonprov.Unmarshaller
func (u *unmarshaller) Unmarshal(v any) error {
	return u.dec.Decode(v)
}
