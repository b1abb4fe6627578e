package jsonprov

// Properties maps marshaller/unmarshaller option names to their configured
// values. Keys are opaque to this package; only the engine interprets them.
type Properties map[string]any

// Clone returns a shallow copy of the properties
func (p Properties) Clone() Properties {
	out := make(Properties, len(p))
	for k, v := range p {
		out[k] = v
	}
	return out
}

// NameSet is a set of recognized property names for one side of the engine
type NameSet map[string]struct{}

// NewNameSet creates a name set from the given names
func NewNameSet(names ...string) NameSet {
	s := make(NameSet, len(names))
	for _, n := range names {
		s[n] = struct{}{}
	}
	return s
}

// Has reports whether name is in the set. Equality is exact string value.
func (s NameSet) Has(name string) bool {
	_, ok := s[name]
	return ok
}

// Config carries per-media-type marshaller and unmarshaller property
// overrides. It is the object a ContextResolver hands back for one request.
type Config struct {
	marshaller   Properties
	unmarshaller Properties
}

// NewConfig creates an empty override configuration
func NewConfig() *Config {
	return &Config{
		marshaller:   make(Properties),
		unmarshaller: make(Properties),
	}
}

// SetMarshallerProperty sets a marshaller-side override
func (c *Config) SetMarshallerProperty(name string, value any) *Config {
	c.marshaller[name] = value
	return c
}

// SetUnmarshallerProperty sets an unmarshaller-side override
func (c *Config) SetUnmarshallerProperty(name string, value any) *Config {
	c.unmarshaller[name] = value
	return c
}

// MarshallerProperties returns the marshaller-side overrides.
// Callers must not mutate the returned map.
func (c *Config) MarshallerProperties() Properties {
	return c.marshaller
}

// UnmarshallerProperties returns the unmarshaller-side overrides.
// Callers must not mutate the returned map.
func (c *Config) UnmarshallerProperties() Properties {
	return c.unmarshaller
}
