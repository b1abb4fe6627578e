package jsonx

import (
	"go.uber.org/fx"

	"jsonmedia/internal/pkg/jsonprov"
)

// Module exports the JSON engine module for FX
var Module = fx.Module("jsonx",
	fx.Provide(
		NewEngine,
		func(e *Engine) jsonprov.Engine { return e },
		newSources,
	),
)

// newSources provides the engine's property definition sources
func newSources() *jsonprov.Sources {
	return &jsonprov.Sources{
		Marshal:   MarshallerPropertySource(),
		Unmarshal: UnmarshallerPropertySource(),
	}
}
