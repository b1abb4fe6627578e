package config

// Config holds the application configuration
type Config struct {
	Server ServerConfig `mapstructure:"server" validate:"required"`
	Logger LoggerConfig `mapstructure:"logger" validate:"required"`
	JSON   JSONConfig   `mapstructure:"json"`
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Host            string `mapstructure:"host" validate:"required"`
	Port            int    `mapstructure:"port" validate:"required,gt=0,lte=65535"`
	ReadTimeout     int    `mapstructure:"read_timeout" validate:"gte=0"`
	WriteTimeout    int    `mapstructure:"write_timeout" validate:"gte=0"`
	ShutdownTimeout int    `mapstructure:"shutdown_timeout" validate:"gte=0"`
}

// LoggerConfig holds logger configuration
type LoggerConfig struct {
	Level      string `mapstructure:"level" validate:"required,oneof=debug info warn error"`
	Format     string `mapstructure:"format" validate:"required,oneof=json console"`
	OutputPath string `mapstructure:"output_path" validate:"required"`
}

// JSONConfig holds the process-wide marshaller/unmarshaller option values,
// keyed by the engine's property names. Keys the engine does not recognize
// are excluded from the provider's defaults, never applied.
type JSONConfig struct {
	Marshaller   map[string]any `mapstructure:"marshaller"`
	Unmarshaller map[string]any `mapstructure:"unmarshaller"`
}

// Defaults returns the default configuration values
func Defaults() map[string]any {
	return map[string]any{
		"server": map[string]any{
			"host":             "0.0.0.0",
			"port":             8080,
			"read_timeout":     10,
			"write_timeout":    10,
			"shutdown_timeout": 10,
		},
		"logger": map[string]any{
			"level":       "info",
			"format":      "json",
			"output_path": "stdout",
		},
	}
}
