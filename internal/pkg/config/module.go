package config

import (
	"go.uber.org/fx"

	"jsonmedia/internal/pkg/jsonprov"
)

// Module exports the config module for FX
var Module = fx.Module("config",
	fx.Provide(
		NewManager,
		func(m Manager) *Config { return m.GetConfig() },
		func(m Manager) jsonprov.PropertyLookup { return PropertySource{Manager: m} },
	),
)

// NewManager creates and loads the default provider chain:
// defaults < config.yaml < environment
func NewManager() (Manager, error) {
	m := New(
		WithProvider(NewDefaultProvider(Defaults())),
		WithProvider(NewFileProvider()),
		WithProvider(NewEnvProvider("APP_")),
	)

	if err := m.Load(); err != nil {
		return nil, err
	}

	return m, nil
}
