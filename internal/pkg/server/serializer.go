package server

import (
	"fmt"
	"net/http"
	"reflect"

	"github.com/goccy/go-json"
	"github.com/labstack/echo/v4"

	"jsonmedia/internal/pkg/jsonprov"
	"jsonmedia/internal/pkg/jsonx"
)

// JSONSerializer adapts the configurable JSON provider to echo's
// JSONSerializer interface. Types the provider declines (bare scalars and
// anything the engine itself rejects) fall back to a plain engine session
// with no resolved properties, so scalar payloads are still served as bare
// JSON values.
type JSONSerializer struct {
	provider *jsonprov.Provider
	engine   jsonprov.Engine
}

// NewJSONSerializer creates the echo serializer around a provider
func NewJSONSerializer(provider *jsonprov.Provider, engine jsonprov.Engine) *JSONSerializer {
	return &JSONSerializer{
		provider: provider,
		engine:   engine,
	}
}

// Serialize writes i to the response. The indent argument only affects the
// fallback path; for provider-handled types indentation is governed by the
// resolved marshaller properties.
func (s *JSONSerializer) Serialize(c echo.Context, i any, indent string) error {
	mediaType := responseMediaType(c)
	t := reflect.TypeOf(i)

	if !s.provider.IsWritable(t, mediaType) {
		session := s.engine.NewMarshaller(c.Response())
		if indent != "" {
			if err := session.SetProperty(jsonx.PropertyMarshalIndent, indent); err != nil {
				return err
			}
		}
		return session.Marshal(i)
	}

	return s.provider.WriteTo(c.Response(), i, mediaType)
}

// Deserialize reads the request body into i
func (s *JSONSerializer) Deserialize(c echo.Context, i any) error {
	mediaType := c.Request().Header.Get(echo.HeaderContentType)
	t := reflect.TypeOf(i)

	var err error
	if s.provider.IsReadable(t, mediaType) {
		err = s.provider.ReadFrom(c.Request().Body, i, mediaType)
	} else {
		err = s.engine.NewUnmarshaller(c.Request().Body).Unmarshal(i)
	}

	switch terr := err.(type) {
	case *json.UnmarshalTypeError:
		return echo.NewHTTPError(http.StatusBadRequest,
			fmt.Sprintf("Unmarshal type error: expected=%v, got=%v, field=%v, offset=%v",
				terr.Type, terr.Value, terr.Field, terr.Offset)).SetInternal(terr)
	case *json.SyntaxError:
		return echo.NewHTTPError(http.StatusBadRequest,
			fmt.Sprintf("Syntax error: offset=%v, error=%v", terr.Offset, terr.Error())).SetInternal(terr)
	}
	return err
}

// responseMediaType returns the negotiated response content type, defaulting
// to application/json when the handler has not set one yet
func responseMediaType(c echo.Context) string {
	if ct := c.Response().Header().Get(echo.HeaderContentType); ct != "" {
		return ct
	}
	return jsonprov.MediaTypeJSON
}
