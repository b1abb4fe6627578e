package gateway

import (
	"fmt"

	"jsonmedia/internal/pkg/config"
)

// GatewayConfig holds gateway service configuration
type GatewayConfig struct {
	// PrettyIndent, when non-empty, is applied as a marshaller override for
	// application/json responses
	PrettyIndent string `mapstructure:"pretty_indent"`

	// StrictFields, when true, rejects request bodies containing unknown
	// object keys
	StrictFields bool `mapstructure:"strict_fields"`
}

// NewGatewayConfig loads the gateway section of the application config
func NewGatewayConfig(m config.Manager) (*GatewayConfig, error) {
	var out struct {
		Gateway GatewayConfig `mapstructure:"gateway"`
	}
	if err := m.Unmarshal(&out); err != nil {
		return nil, fmt.Errorf("failed to load gateway config: %w", err)
	}
	return &out.Gateway, nil
}
