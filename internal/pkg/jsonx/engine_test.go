package jsonx

import (
	"bytes"
	"reflect"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsJSONMediaType(t *testing.T) {
	tests := []struct {
		mediaType string
		want      bool
	}{
		{"application/json", true},
		{"application/json; charset=utf-8", true},
		{"text/json", true},
		{"application/hal+json", true},
		{"application/problem+json", true},
		{"", true},
		{"text/plain", false},
		{"application/xml", false},
		{"not a media type", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, isJSONMediaType(tt.mediaType), "media type %q", tt.mediaType)
	}
}

func TestEngine_IsReadable(t *testing.T) {
	e := NewEngine()

	type record struct{ Name string }

	assert.True(t, e.IsReadable(reflect.TypeOf(&record{}), "application/json"))
	assert.False(t, e.IsReadable(reflect.TypeOf(record{}), "application/json"))
	assert.False(t, e.IsReadable(nil, "application/json"))
	assert.False(t, e.IsReadable(reflect.TypeOf(&record{}), "text/plain"))
}

func TestEngine_IsWritable(t *testing.T) {
	e := NewEngine()

	type record struct{ Name string }

	assert.True(t, e.IsWritable(reflect.TypeOf(record{}), "application/json"))
	assert.True(t, e.IsWritable(reflect.TypeOf(map[string]any{}), "application/json"))
	assert.False(t, e.IsWritable(nil, "application/json"))
	assert.False(t, e.IsWritable(reflect.TypeOf(make(chan int)), "application/json"))
	assert.False(t, e.IsWritable(reflect.TypeOf(record{}), "application/xml"))
}

func TestMarshaller_Indent(t *testing.T) {
	e := NewEngine()

	var buf bytes.Buffer
	m := e.NewMarshaller(&buf)
	require.NoError(t, m.SetProperty(PropertyMarshalIndent, "  "))
	require.NoError(t, m.Marshal(map[string]int{"a": 1}))

	assert.Contains(t, buf.String(), "{\n  \"a\": 1\n}")
}

func TestMarshaller_DefaultIsCompact(t *testing.T) {
	e := NewEngine()

	var buf bytes.Buffer
	m := e.NewMarshaller(&buf)
	require.NoError(t, m.Marshal(map[string]int{"a": 1}))

	assert.Equal(t, "{\"a\":1}\n", buf.String())
}

func TestMarshaller_EscapeHTML(t *testing.T) {
	e := NewEngine()

	var escaped bytes.Buffer
	m := e.NewMarshaller(&escaped)
	require.NoError(t, m.Marshal("<b>"))
	assert.Equal(t, "\"\\u003cb\\u003e\"\n", escaped.String())

	var raw bytes.Buffer
	m = e.NewMarshaller(&raw)
	require.NoError(t, m.SetProperty(PropertyMarshalEscapeHTML, false))
	require.NoError(t, m.Marshal("<b>"))
	assert.Equal(t, "\"<b>\"\n", raw.String())
}

func TestMarshaller_RejectsUnknownProperty(t *testing.T) {
	e := NewEngine()

	m := e.NewMarshaller(&bytes.Buffer{})
	err := m.SetProperty("no-such-option", true)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownProperty)
}

func TestMarshaller_RejectsInvalidValue(t *testing.T) {
	e := NewEngine()

	m := e.NewMarshaller(&bytes.Buffer{})
	err := m.SetProperty(PropertyMarshalIndent, 42)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidPropertyValue)

	err = m.SetProperty(PropertyMarshalEscapeHTML, "yes")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidPropertyValue)
}

func TestUnmarshaller_UseNumber(t *testing.T) {
	e := NewEngine()

	u := e.NewUnmarshaller(strings.NewReader(`{"n": 1}`))
	require.NoError(t, u.SetProperty(PropertyUnmarshalUseNumber, true))

	var dst map[string]any
	require.NoError(t, u.Unmarshal(&dst))
	assert.Equal(t, json.Number("1"), dst["n"])

	// Default decodes numbers as float64
	u = e.NewUnmarshaller(strings.NewReader(`{"n": 1}`))
	dst = nil
	require.NoError(t, u.Unmarshal(&dst))
	assert.Equal(t, float64(1), dst["n"])
}

func TestUnmarshaller_DisallowUnknownFields(t *testing.T) {
	e := NewEngine()

	type record struct {
		A int `json:"a"`
	}

	u := e.NewUnmarshaller(strings.NewReader(`{"a": 1, "b": 2}`))
	require.NoError(t, u.SetProperty(PropertyUnmarshalDisallowUnknownFields, true))

	var strict record
	assert.Error(t, u.Unmarshal(&strict))

	// Lenient by default
	u = e.NewUnmarshaller(strings.NewReader(`{"a": 1, "b": 2}`))
	var lenient record
	require.NoError(t, u.Unmarshal(&lenient))
	assert.Equal(t, 1, lenient.A)
}

func TestUnmarshaller_RejectsUnknownProperty(t *testing.T) {
	e := NewEngine()

	u := e.NewUnmarshaller(strings.NewReader(`{}`))
	err := u.SetProperty("no-such-option", true)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownProperty)
}

func TestPropertySources_EnumerateAllNames(t *testing.T) {
	marshal := MarshallerPropertySource().Constants()
	unmarshal := UnmarshallerPropertySource().Constants()

	assert.Len(t, marshal, 3)
	assert.Len(t, unmarshal, 2)
}
