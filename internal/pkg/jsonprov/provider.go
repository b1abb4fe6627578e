package jsonprov

import (
	"io"
	"reflect"
	"sync"
)

// PropertyLookup is the process-wide configuration source. Absent values
// report ok == false.
type PropertyLookup interface {
	GetProperty(name string) (value any, ok bool)
}

// Marshaller is one write-side engine session. Properties are applied
// before Marshal; an invalid name or value is rejected with an error.
type Marshaller interface {
	SetProperty(name string, value any) error
	Marshal(v any) error
}

// Unmarshaller is one read-side engine session
type Unmarshaller interface {
	SetProperty(name string, value any) error
	Unmarshal(v any) error
}

// Engine is the underlying JSON engine the provider configures and
// delegates to. The provider wraps an engine rather than being one.
type Engine interface {
	IsReadable(t reflect.Type, mediaType string) bool
	IsWritable(t reflect.Type, mediaType string) bool
	NewMarshaller(w io.Writer) Marshaller
	NewUnmarshaller(r io.Reader) Unmarshaller
}

// Provider resolves the effective marshaller/unmarshaller properties for
// each operation and applies them to the engine. A single instance is
// shared across concurrent requests; the memoized defaults are computed at
// most once and are read-only afterwards.
type Provider struct {
	engine    Engine
	lookup    PropertyLookup
	providers Providers

	marshalNames   NameSet
	unmarshalNames NameSet

	defaultsOnce      sync.Once
	marshalDefaults   Properties
	unmarshalDefaults Properties
}

// Option is a functional option for configuring a Provider
type Option func(*Provider)

// WithProviders sets the per-media-type context resolver lookup
func WithProviders(providers Providers) Option {
	return func(p *Provider) {
		p.providers = providers
	}
}

// WithPropertySources sets the property definition sources the recognized
// name sets are discovered from, one per side
func WithPropertySources(marshal, unmarshal PropertySource) Option {
	return func(p *Provider) {
		p.marshalNames = DiscoverPropertyNames(marshal)
		p.unmarshalNames = DiscoverPropertyNames(unmarshal)
	}
}

// New creates a provider around the given engine. lookup may be nil, in
// which case the defaults are empty and only contextual overrides apply.
func New(engine Engine, lookup PropertyLookup, opts ...Option) *Provider {
	p := &Provider{
		engine:         engine,
		lookup:         lookup,
		marshalNames:   make(NameSet),
		unmarshalNames: make(NameSet),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// initDefaults computes both default maps together, once per provider.
// Only recognized names are consulted; configuration keys outside the
// recognized sets never reach the engine.
func (p *Provider) initDefaults() {
	p.defaultsOnce.Do(func() {
		p.marshalDefaults = p.collectDefaults(p.marshalNames)
		p.unmarshalDefaults = p.collectDefaults(p.unmarshalNames)
	})
}

func (p *Provider) collectDefaults(names NameSet) Properties {
	props := make(Properties)
	if p.lookup == nil {
		return props
	}
	for name := range names {
		if value, ok := p.lookup.GetProperty(name); ok {
			props[name] = value
		}
	}
	return props
}

// resolve computes the effective properties for one operation: a copy of
// the memoized defaults with the contextual override for application/json
// layered on top, override wins. The result is never cached; the override
// may vary per request.
func (p *Provider) resolve(forMarshal bool) Properties {
	p.initDefaults()

	var props Properties
	if forMarshal {
		props = p.marshalDefaults.Clone()
	} else {
		props = p.unmarshalDefaults.Clone()
	}

	if p.providers == nil {
		return props
	}
	resolver := p.providers.ContextResolver(MediaTypeJSON)
	if resolver == nil {
		return props
	}
	cfg := resolver.Context()
	if cfg == nil {
		return props
	}

	var overlay Properties
	if forMarshal {
		overlay = cfg.MarshallerProperties()
	} else {
		overlay = cfg.UnmarshallerProperties()
	}
	for name, value := range overlay {
		props[name] = value
	}
	return props
}

// IsReadable reports whether the provider handles reading the given type.
// Excluded scalar types short-circuit to false without consulting the
// engine.
func (p *Provider) IsReadable(t reflect.Type, mediaType string) bool {
	return !IsExcludedType(t) && p.engine.IsReadable(t, mediaType)
}

// IsWritable reports whether the provider handles writing the given type
func (p *Provider) IsWritable(t reflect.Type, mediaType string) bool {
	return !IsExcludedType(t) && p.engine.IsWritable(t, mediaType)
}

// ReadFrom decodes one request body into v. The resolved unmarshaller
// properties are applied to the session first; a rejected property aborts
// the operation with the engine's error.
func (p *Provider) ReadFrom(r io.Reader, v any, mediaType string) error {
	session := p.engine.NewUnmarshaller(r)
	for name, value := range p.resolve(false) {
		if err := session.SetProperty(name, value); err != nil {
			return err
		}
	}
	return session.Unmarshal(v)
}

// WriteTo encodes v to one response body, applying the resolved marshaller
// properties first
func (p *Provider) WriteTo(w io.Writer, v any, mediaType string) error {
	session := p.engine.NewMarshaller(w)
	for name, value := range p.resolve(true) {
		if err := session.SetProperty(name, value); err != nil {
			return err
		}
	}
	return session.Marshal(v)
}
