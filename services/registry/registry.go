package registry

import (
	"sync"

	"github.com/monibridge/core/types"
)

type registration struct {
	adapter  types.Provider
	category types.ProviderCategory
	meta     types.ProviderMeta
}

// Registry is the static catalogue of provider adapters, populated once at
// process start. It is an explicitly constructed object rather than a
// package-level singleton so tests can hold isolated instances.
type Registry struct {
	mu      sync.RWMutex
	entries map[string]registration
	// identifiers per category, in registration order
	order map[types.ProviderCategory][]string
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		entries: make(map[string]registration),
		order:   make(map[types.ProviderCategory][]string),
	}
}

// Register adds an adapter under its identifier. Registering the same
// identifier twice overwrites the previous entry: registration happens once,
// at startup, from a fixed list.
func (r *Registry) Register(adapter types.Provider, category types.ProviderCategory, meta types.ProviderMeta) {
	r.mu.Lock()
	defer r.mu.Unlock()

	identifier := adapter.Identifier()
	if _, exists := r.entries[identifier]; !exists {
		r.order[category] = append(r.order[category], identifier)
	}
	r.entries[identifier] = registration{
		adapter:  adapter,
		category: category,
		meta:     meta,
	}
}

// Get returns the adapter registered under identifier.
func (r *Registry) Get(identifier string) (types.Provider, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entry, ok := r.entries[identifier]
	if !ok {
		return nil, types.ErrProviderNotFound{Identifier: identifier}
	}
	return entry.adapter, nil
}

// Category returns the category an identifier was registered under.
func (r *Registry) Category(identifier string) (types.ProviderCategory, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entry, ok := r.entries[identifier]
	if !ok {
		return "", types.ErrProviderNotFound{Identifier: identifier}
	}
	return entry.category, nil
}

// Meta returns the display metadata an identifier was registered with.
func (r *Registry) Meta(identifier string) (types.ProviderMeta, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entry, ok := r.entries[identifier]
	if !ok {
		return types.ProviderMeta{}, types.ErrProviderNotFound{Identifier: identifier}
	}
	return entry.meta, nil
}

// ListByCategory returns the adapters registered under a category, in
// registration order.
func (r *Registry) ListByCategory(category types.ProviderCategory) []types.Provider {
	r.mu.RLock()
	defer r.mu.RUnlock()

	identifiers := r.order[category]
	adapters := make([]types.Provider, 0, len(identifiers))
	for _, identifier := range identifiers {
		adapters = append(adapters, r.entries[identifier].adapter)
	}
	return adapters
}

// Identifiers returns the identifiers registered under a category, in
// registration order.
func (r *Registry) Identifiers(category types.ProviderCategory) []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return append([]string(nil), r.order[category]...)
}
