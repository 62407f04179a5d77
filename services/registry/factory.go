package registry

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/monibridge/core/ent"
	"github.com/monibridge/core/ent/providerconfig"
	"github.com/monibridge/core/services/secrets"
	"github.com/monibridge/core/types"
	"github.com/monibridge/core/utils/logger"
)

// Factory resolves the adapter to use for a category from the provider
// configuration table, decrypts its credentials and hands out initialized
// instances. Initialized adapters are cached until the configuration
// changes.
type Factory struct {
	client   *ent.Client
	registry *Registry
	secrets  *secrets.Store

	mu    sync.RWMutex
	cache map[string]types.Provider
}

// NewFactory wires a factory over the registered adapters.
func NewFactory(client *ent.Client, registry *Registry, store *secrets.Store) *Factory {
	return &Factory{
		client:   client,
		registry: registry,
		secrets:  store,
		cache:    make(map[string]types.Provider),
	}
}

// GetActiveProvider returns an initialized adapter for the category. The
// active configuration is the enabled row in status active whose identifier
// matches a registered adapter; when several qualify the most recently
// updated one wins. When no row qualifies the first registered adapter for
// the category is initialized with an empty configuration and returned, so
// read-only calls keep working against adapter defaults.
func (f *Factory) GetActiveProvider(ctx context.Context, category types.ProviderCategory) (types.Provider, error) {
	candidates := f.registry.Identifiers(category)
	if len(candidates) == 0 {
		return nil, types.ErrNoActiveProvider{Category: category}
	}

	conf, err := f.client.ProviderConfig.
		Query().
		Where(
			providerconfig.IdentifierIn(candidates...),
			providerconfig.Enabled(true),
			providerconfig.StatusEQ(providerconfig.StatusActive),
		).
		Order(ent.Desc(providerconfig.FieldUpdatedAt)).
		First(ctx)
	if err != nil {
		if !ent.IsNotFound(err) {
			return nil, fmt.Errorf("query active %s provider: %w", category, err)
		}
		return f.fallback(category, candidates)
	}

	cacheKey := string(category) + ":" + conf.Identifier

	f.mu.RLock()
	cached, ok := f.cache[cacheKey]
	f.mu.RUnlock()
	if ok {
		return cached, nil
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if cached, ok := f.cache[cacheKey]; ok {
		return cached, nil
	}

	adapter, err := f.registry.Get(conf.Identifier)
	if err != nil {
		return nil, err
	}

	cfg, err := f.buildConfig(conf)
	if err != nil {
		return nil, err
	}
	if err := adapter.Initialize(cfg); err != nil {
		return nil, fmt.Errorf("initialize %s provider %s: %w", category, conf.Identifier, err)
	}

	f.cache[cacheKey] = adapter
	return adapter, nil
}

// buildConfig merges the decrypted credential material with the non-secret
// settings and endpoint into a single map for the adapter.
func (f *Factory) buildConfig(conf *ent.ProviderConfig) (map[string]interface{}, error) {
	cfg := make(map[string]interface{})
	for key, value := range conf.Settings {
		cfg[key] = value
	}
	if conf.EndpointURL != "" {
		cfg["endpoint_url"] = conf.EndpointURL
	}

	if conf.Credential == "" {
		return cfg, nil
	}

	plaintext := f.secrets.Decrypt(conf.Credential)

	var credential map[string]interface{}
	if err := json.Unmarshal([]byte(plaintext), &credential); err != nil {
		// Legacy rows hold a single opaque token rather than a JSON object.
		cfg["credential"] = plaintext
		return cfg, nil
	}
	for key, value := range credential {
		cfg[key] = value
	}
	return cfg, nil
}

func (f *Factory) fallback(category types.ProviderCategory, candidates []string) (types.Provider, error) {
	adapter, err := f.registry.Get(candidates[0])
	if err != nil {
		return nil, err
	}
	if err := adapter.Initialize(map[string]interface{}{}); err != nil {
		return nil, fmt.Errorf("initialize fallback provider %s: %w", candidates[0], err)
	}
	logger.WithFields(logger.Fields{
		"Category": category,
		"Fallback": candidates[0],
	}).Warnf("no active provider configuration, falling back to registry default")
	return adapter, nil
}

// ClearCache drops every initialized adapter so the next lookup re-reads
// configuration. Called after any configuration write.
func (f *Factory) ClearCache() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.cache = make(map[string]types.Provider)
}
