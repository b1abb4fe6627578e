package jsonprov

import "sync"

// MediaTypeJSON is the media type the provider resolves overrides for
const MediaTypeJSON = "application/json"

// ContextResolver supplies a per-request override configuration.
// Context may return nil, which means "no override"; that is the normal
// path, not an error.
type ContextResolver interface {
	Context() *Config
}

// ContextResolverFunc adapts a function to the ContextResolver interface
type ContextResolverFunc func() *Config

// Context implements ContextResolver
func (f ContextResolverFunc) Context() *Config {
	return f()
}

// Providers looks up the context resolver registered for a media type.
// A nil result means no resolver is registered for that media type.
type Providers interface {
	ContextResolver(mediaType string) ContextResolver
}

// Registry is the default Providers implementation: a media-type keyed
// table of context resolvers populated at wiring time
type Registry struct {
	mu        sync.RWMutex
	resolvers map[string]ContextResolver
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{
		resolvers: make(map[string]ContextResolver),
	}
}

// Register installs the resolver for a media type, replacing any previous one
func (r *Registry) Register(mediaType string, resolver ContextResolver) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.resolvers[mediaType] = resolver
}

// ContextResolver implements Providers
func (r *Registry) ContextResolver(mediaType string) ContextResolver {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.resolvers[mediaType]
}
