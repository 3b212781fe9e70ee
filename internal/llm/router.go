package llm

// Router resolves a requested provider name to a concrete client.
//
// The provider set is closed: groq and openrouter, nothing else. Resolution
// is a direct map lookup, not a plugin registry — there is no dynamic
// discovery and no failover. Resolve never performs network IO, so callers
// can rely on it for cheap availability checks.

import "fmt"

// KnownProviders is the fixed, ordered set of provider identifiers. The
// order is the order of the discovery listing.
var KnownProviders = []string{"groq", "openrouter"}

// ProviderInfo is one row of the discovery listing.
type ProviderInfo struct {
	Name         string
	Description  string
	DefaultModel string
	Configured   bool
}

// Router dispatches chat calls to a named provider.
type Router struct {
	providers       map[string]Provider
	order           []string
	defaultProvider string
}

// NewRouter creates a Router from the given providers, in listing order.
// defaultProvider must name one of them; misconfiguration is caught at
// startup rather than on the first request.
func NewRouter(providers []Provider, defaultProvider string) (*Router, error) {
	byName := make(map[string]Provider, len(providers))
	order := make([]string, 0, len(providers))
	for _, p := range providers {
		byName[p.Name()] = p
		order = append(order, p.Name())
	}

	if _, ok := byName[defaultProvider]; !ok {
		return nil, fmt.Errorf("llm router: default provider %q is not one of %v", defaultProvider, order)
	}

	return &Router{
		providers:       byName,
		order:           order,
		defaultProvider: defaultProvider,
	}, nil
}

// Resolve returns the client for the given provider name. An empty name
// selects the default provider. The name is compared case-sensitively.
//
// A name outside the known set fails with *UnknownProviderError; a known
// provider without an API key fails with *UnavailableError. Both checks
// happen before any network call would be attempted.
func (r *Router) Resolve(name string) (Provider, error) {
	if name == "" {
		name = r.defaultProvider
	}
	p, ok := r.providers[name]
	if !ok {
		return nil, &UnknownProviderError{Provider: name}
	}
	if !p.Configured() {
		return nil, &UnavailableError{Provider: name}
	}
	return p, nil
}

// DefaultProvider returns the name requests fall back to when they omit
// the provider field.
func (r *Router) DefaultProvider() string {
	return r.defaultProvider
}

// Providers returns the discovery listing in registration order.
func (r *Router) Providers() []ProviderInfo {
	infos := make([]ProviderInfo, 0, len(r.order))
	for _, name := range r.order {
		p := r.providers[name]
		infos = append(infos, ProviderInfo{
			Name:         p.Name(),
			Description:  p.Description(),
			DefaultModel: p.DefaultModel(),
			Configured:   p.Configured(),
		})
	}
	return infos
}

// Status reports per-provider key presence for the health endpoint.
// No network calls are made.
func (r *Router) Status() map[string]bool {
	status := make(map[string]bool, len(r.order))
	for _, name := range r.order {
		status[name] = r.providers[name].Configured()
	}
	return status
}
