package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// Provider defines the interface for configuration providers
type Provider interface {
	Load() (map[string]any, error)
	Name() string
}

// DefaultProvider provides default configuration values
type DefaultProvider struct {
	defaults map[string]any
}

// NewDefaultProvider creates a new default provider
func NewDefaultProvider(defaults map[string]any) *DefaultProvider {
	return &DefaultProvider{defaults: defaults}
}

// Name returns the provider name
func (p *DefaultProvider) Name() string {
	return "default"
}

// Load returns the default configuration
func (p *DefaultProvider) Load() (map[string]any, error) {
	if p.defaults == nil {
		return make(map[string]any), nil
	}
	return p.defaults, nil
}

// FileProvider loads configuration from a YAML file
type FileProvider struct {
	paths []string
}

// NewFileProvider creates a new file provider that searches the given
// directories for a config.yaml
func NewFileProvider(paths ...string) *FileProvider {
	if len(paths) == 0 {
		paths = []string{"./config", "."}
	}
	return &FileProvider{paths: paths}
}

// Name returns the provider name
func (p *FileProvider) Name() string {
	return "file"
}

// Load loads configuration from the first config file found.
// A missing file is not an error; the other providers still apply.
func (p *FileProvider) Load() (map[string]any, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	for _, path := range p.paths {
		v.AddConfigPath(path)
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return make(map[string]any), nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	return v.AllSettings(), nil
}

// EnvProvider loads configuration from environment variables.
// Variables are prefixed with APP_ (e.g. APP_SERVER__PORT); nested keys use
// a double underscore.
type EnvProvider struct {
	prefix string
}

// NewEnvProvider creates a new environment variable provider
func NewEnvProvider(prefix string) *EnvProvider {
	if prefix == "" {
		prefix = "APP_"
	}
	return &EnvProvider{prefix: prefix}
}

// Name returns the provider name
func (p *EnvProvider) Name() string {
	return "env"
}

// Load loads configuration from environment variables
func (p *EnvProvider) Load() (map[string]any, error) {
	result := make(map[string]any)

	for _, env := range os.Environ() {
		parts := strings.SplitN(env, "=", 2)
		if len(parts) != 2 {
			continue
		}

		key := parts[0]
		value := parts[1]

		if !strings.HasPrefix(key, p.prefix) {
			continue
		}

		configKey := strings.ToLower(strings.TrimPrefix(key, p.prefix))
		keys := strings.Split(configKey, "__")
		setNestedValue(result, keys, value)
	}

	return result, nil
}

// setNestedValue sets a value in a nested map structure
func setNestedValue(m map[string]any, keys []string, value any) {
	if len(keys) == 0 {
		return
	}

	if len(keys) == 1 {
		m[keys[0]] = value
		return
	}

	key := keys[0]
	if _, exists := m[key]; !exists {
		m[key] = make(map[string]any)
	}

	if subMap, ok := m[key].(map[string]any); ok {
		setNestedValue(subMap, keys[1:], value)
	}
}

// mergeMaps merges two maps, with b taking precedence over a
func mergeMaps(a, b map[string]any) map[string]any {
	result := make(map[string]any)

	for k, v := range a {
		result[k] = v
	}

	for k, v := range b {
		if existing, exists := result[k]; exists {
			if existingMap, ok := existing.(map[string]any); ok {
				if newMap, ok := v.(map[string]any); ok {
					result[k] = mergeMaps(existingMap, newMap)
					continue
				}
			}
		}
		result[k] = v
	}

	return result
}
