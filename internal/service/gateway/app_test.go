package gateway

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jsonmedia/internal/pkg/config"
	"jsonmedia/internal/pkg/jsonprov"
	"jsonmedia/internal/pkg/jsonx"
)

func TestRegisterJSONOverrides(t *testing.T) {
	registry := jsonprov.NewRegistry()
	registerJSONOverrides(registry, &GatewayConfig{
		PrettyIndent: "  ",
		StrictFields: true,
	})

	resolver := registry.ContextResolver(jsonprov.MediaTypeJSON)
	require.NotNil(t, resolver)

	override := resolver.Context()
	require.NotNil(t, override)
	assert.Equal(t, "  ", override.MarshallerProperties()[jsonx.PropertyMarshalIndent])
	assert.Equal(t, true, override.UnmarshallerProperties()[jsonx.PropertyUnmarshalDisallowUnknownFields])
}

func TestRegisterJSONOverrides_NoopWhenUnconfigured(t *testing.T) {
	registry := jsonprov.NewRegistry()
	registerJSONOverrides(registry, &GatewayConfig{})

	assert.Nil(t, registry.ContextResolver(jsonprov.MediaTypeJSON))
}

func TestNewGatewayConfig(t *testing.T) {
	m := config.New(
		config.WithProvider(config.NewDefaultProvider(config.Defaults())),
		config.WithProvider(config.NewDefaultProvider(map[string]any{
			"gateway": map[string]any{
				"pretty_indent": "\t",
				"strict_fields": true,
			},
		})),
	)
	require.NoError(t, m.Load())

	cfg, err := NewGatewayConfig(m)
	require.NoError(t, err)
	assert.Equal(t, "\t", cfg.PrettyIndent)
	assert.True(t, cfg.StrictFields)
}
