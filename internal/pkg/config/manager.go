package config

import (
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/mitchellh/mapstructure"
)

// Manager manages configuration loading and access
type Manager interface {
	Load() error
	Get(key string) any
	Lookup(key string) (any, bool)
	Unmarshal(target any) error
	GetConfig() *Config
}

// manager implements Manager
type manager struct {
	mu        sync.RWMutex
	providers []Provider
	data      map[string]any
	config    *Config
	validator *validator.Validate
}

// New creates a new config manager with the given providers
func New(opts ...Option) Manager {
	m := &manager{
		providers: make([]Provider, 0),
		data:      make(map[string]any),
		validator: validator.New(),
	}

	for _, opt := range opts {
		opt(m)
	}

	return m
}

// Option is a functional option for configuring the manager
type Option func(*manager)

// WithProvider adds a provider to the manager
func WithProvider(provider Provider) Option {
	return func(m *manager) {
		m.providers = append(m.providers, provider)
	}
}

// Load loads configuration from all providers in order; later providers
// override earlier ones (defaults < file < env).
func (m *manager) Load() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	merged := make(map[string]any)

	for _, provider := range m.providers {
		data, err := provider.Load()
		if err != nil {
			return fmt.Errorf("provider %q: %w", provider.Name(), err)
		}
		merged = mergeMaps(merged, data)
	}

	m.data = merged

	var cfg Config
	if err := decode(merged, &cfg); err != nil {
		return fmt.Errorf("failed to decode config: %w", err)
	}

	if err := m.validator.Struct(&cfg); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	m.config = &cfg
	return nil
}

// decode unmarshals a config map into target with the usual hooks
func decode(data map[string]any, target any) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           target,
		WeaklyTypedInput: true,
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	})
	if err != nil {
		return fmt.Errorf("failed to create decoder: %w", err)
	}
	return decoder.Decode(data)
}

// Get retrieves a configuration value by dot-separated key
func (m *manager) Get(key string) any {
	value, _ := m.Lookup(key)
	return value
}

// Lookup retrieves a configuration value by dot-separated key, reporting
// whether the key is present
func (m *manager) Lookup(key string) (any, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	current := any(m.data)
	for _, k := range strings.Split(key, ".") {
		sub, ok := current.(map[string]any)
		if !ok {
			return nil, false
		}
		value, exists := sub[k]
		if !exists {
			return nil, false
		}
		current = value
	}

	return current, true
}

// Unmarshal unmarshals the merged configuration into the target struct
func (m *manager) Unmarshal(target any) error {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return decode(m.data, target)
}

// GetConfig returns the decoded Config struct
func (m *manager) GetConfig() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.config
}

// PropertySource adapts the manager to the provider's process-wide
// property lookup: property names resolve under the json section
// (e.g. marshaller.indent reads json.marshaller.indent).
type PropertySource struct {
	Manager Manager
}

// GetProperty returns the configured value for an engine property name
func (s PropertySource) GetProperty(name string) (any, bool) {
	return s.Manager.Lookup("json." + name)
}
