package jsonprov

import "go.uber.org/fx"

// Module exports the JSON provider module for FX
var Module = fx.Module("jsonprov",
	fx.Provide(
		NewRegistry,
		func(r *Registry) Providers { return r },
		NewFromParams,
	),
)

// Sources pairs the two property definition sources, one per engine side
type Sources struct {
	Marshal   PropertySource
	Unmarshal PropertySource
}

// Params holds dependencies for creating a provider
type Params struct {
	fx.In

	Engine    Engine
	Lookup    PropertyLookup `optional:"true"`
	Providers Providers      `optional:"true"`
	Sources   *Sources       `optional:"true"`
}

// NewFromParams creates a provider from FX-supplied dependencies
func NewFromParams(params Params) *Provider {
	opts := []Option{}

	if params.Providers != nil {
		opts = append(opts, WithProviders(params.Providers))
	}
	if params.Sources != nil {
		opts = append(opts, WithPropertySources(params.Sources.Marshal, params.Sources.Unmarshal))
	}

	return New(params.Engine, params.Lookup, opts...)
}
