package gateway

import (
	"jsonmedia/internal/pkg/config"
	"jsonmedia/internal/pkg/jsonprov"
	"jsonmedia/internal/pkg/jsonx"
	"jsonmedia/internal/pkg/logger"
	"jsonmedia/internal/pkg/server"

	"go.uber.org/fx"
)

// GatewayApp provides all gateway service dependencies including infrastructure
var GatewayApp = fx.Options(
	// Infrastructure modules
	config.Module,
	logger.Module,
	jsonx.Module,
	jsonprov.Module,
	server.Module,

	// Gateway service components
	fx.Provide(
		NewGatewayConfig,
		NewGatewayHandler,
	),

	// Contextual JSON overrides and routes
	fx.Invoke(registerJSONOverrides),
	fx.Invoke(registerGatewayRoutes),
)

// registerJSONOverrides installs the gateway's per-media-type override for
// application/json, layered on top of the process-wide defaults for every
// request
func registerJSONOverrides(registry *jsonprov.Registry, cfg *GatewayConfig) {
	if cfg.PrettyIndent == "" && !cfg.StrictFields {
		return
	}

	override := jsonprov.NewConfig()
	if cfg.PrettyIndent != "" {
		override.SetMarshallerProperty(jsonx.PropertyMarshalIndent, cfg.PrettyIndent)
	}
	if cfg.StrictFields {
		override.SetUnmarshallerProperty(jsonx.PropertyUnmarshalDisallowUnknownFields, true)
	}

	registry.Register(jsonprov.MediaTypeJSON, jsonprov.ContextResolverFunc(func() *jsonprov.Config {
		return override
	}))
}

// registerGatewayRoutes registers gateway routes on the Echo server
func registerGatewayRoutes(srv *server.Server, handler *GatewayHandler) {
	RegisterGatewayRoutes(srv.GetEcho(), handler)
}
