package registry

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/xeipuuv/gojsonschema"

	"github.com/monibridge/core/ent"
	"github.com/monibridge/core/ent/providerconfig"
	"github.com/monibridge/core/services/audit"
	"github.com/monibridge/core/types"
)

// Admin is the write surface over provider configurations. Every mutation
// invalidates the factory cache and leaves an audit trail.
type Admin struct {
	factory *Factory
	auditor *audit.Service
}

// NewAdmin wires the admin surface over an existing factory.
func NewAdmin(factory *Factory, auditor *audit.Service) *Admin {
	return &Admin{factory: factory, auditor: auditor}
}

// categorySchemas validates the merged credential and settings document per
// category before anything is persisted.
var categorySchemas = map[types.ProviderCategory]string{
	types.ProviderCategoryBanking: `{
		"type": "object",
		"properties": {
			"client_id": {"type": "string", "minLength": 1},
			"client_secret": {"type": "string", "minLength": 1},
			"webhook_secret": {"type": "string"}
		},
		"required": ["client_id", "client_secret"]
	}`,
	types.ProviderCategoryKYC: `{
		"type": "object",
		"properties": {
			"app_token": {"type": "string", "minLength": 1},
			"secret_key": {"type": "string", "minLength": 1},
			"webhook_secret": {"type": "string"}
		},
		"required": ["app_token", "secret_key"]
	}`,
	types.ProviderCategoryRates: `{
		"type": "object",
		"properties": {
			"app_id": {"type": "string", "minLength": 1}
		},
		"required": ["app_id"]
	}`,
	types.ProviderCategoryEmail: `{
		"type": "object",
		"properties": {
			"api_key": {"type": "string", "minLength": 1}
		},
		"required": ["api_key"]
	}`,
	types.ProviderCategoryBlockchain: `{
		"type": "object",
		"properties": {
			"api_key": {"type": "string", "minLength": 1}
		},
		"required": ["api_key"]
	}`,
}

// UpdateConfig creates or replaces the stored configuration for a registered
// provider. Credentials are validated against the category schema, encrypted
// and written in one upsert. The row stays in its current activation state;
// a fresh row starts inactive.
func (a *Admin) UpdateConfig(ctx context.Context, identifier, endpointURL string, credential, settings map[string]interface{}) (*ent.ProviderConfig, error) {
	category, err := a.factory.registry.Category(identifier)
	if err != nil {
		return nil, err
	}

	if schema, ok := categorySchemas[category]; ok {
		doc := make(map[string]interface{}, len(credential)+len(settings))
		for k, v := range settings {
			doc[k] = v
		}
		for k, v := range credential {
			doc[k] = v
		}
		result, err := gojsonschema.Validate(gojsonschema.NewStringLoader(schema), gojsonschema.NewGoLoader(doc))
		if err != nil {
			return nil, fmt.Errorf("validate %s config: %w", identifier, err)
		}
		if !result.Valid() {
			return nil, fmt.Errorf("invalid %s config: %s", identifier, result.Errors()[0].String())
		}
	}

	raw, err := json.Marshal(credential)
	if err != nil {
		return nil, fmt.Errorf("encode credential: %w", err)
	}
	sealed, err := a.factory.secrets.Encrypt(string(raw))
	if err != nil {
		return nil, fmt.Errorf("encrypt credential: %w", err)
	}

	client := a.factory.client
	before := map[string]interface{}{}

	conf, err := client.ProviderConfig.
		Query().
		Where(providerconfig.IdentifierEQ(identifier)).
		Only(ctx)
	switch {
	case err == nil:
		before["endpoint_url"] = conf.EndpointURL
		before["settings"] = conf.Settings
		conf, err = conf.Update().
			SetCredential(sealed).
			SetEndpointURL(endpointURL).
			SetSettings(settings).
			Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("update %s config: %w", identifier, err)
		}
	case ent.IsNotFound(err):
		conf, err = client.ProviderConfig.
			Create().
			SetIdentifier(identifier).
			SetCategory(providerconfig.Category(category)).
			SetCredential(sealed).
			SetEndpointURL(endpointURL).
			SetSettings(settings).
			Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("create %s config: %w", identifier, err)
		}
	default:
		return nil, fmt.Errorf("load %s config: %w", identifier, err)
	}

	a.factory.ClearCache()
	a.log(audit.Entry{
		Category: audit.CategoryProviderConfigUpdated,
		Severity: audit.SeverityWarning,
		Before:   before,
		After: map[string]interface{}{
			"identifier":   identifier,
			"endpoint_url": endpointURL,
			"settings":     settings,
		},
		Reason: "provider configuration updated",
	})
	return conf, nil
}

// TestConnection initializes the stored configuration into the adapter and
// asks it to reach the upstream. Success stamps last_tested_at and moves the
// row out of the error state.
func (a *Admin) TestConnection(ctx context.Context, identifier string) error {
	conf, err := a.factory.client.ProviderConfig.
		Query().
		Where(providerconfig.IdentifierEQ(identifier)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return types.ErrProviderNotConfigured{Identifier: identifier}
		}
		return fmt.Errorf("load %s config: %w", identifier, err)
	}

	adapter, err := a.factory.registry.Get(identifier)
	if err != nil {
		return err
	}
	cfg, err := a.factory.buildConfig(conf)
	if err != nil {
		return err
	}
	if err := adapter.Initialize(cfg); err != nil {
		return fmt.Errorf("initialize %s: %w", identifier, err)
	}
	a.factory.ClearCache()

	update := conf.Update().SetLastTestedAt(time.Now())
	if err := adapter.TestConnection(ctx); err != nil {
		if _, uerr := update.SetStatus(providerconfig.StatusError).Save(ctx); uerr != nil {
			return fmt.Errorf("record failed test for %s: %w", identifier, uerr)
		}
		return fmt.Errorf("test %s connection: %w", identifier, err)
	}
	if conf.Status == providerconfig.StatusError {
		update.SetStatus(providerconfig.StatusInactive)
	}
	if _, err := update.Save(ctx); err != nil {
		return fmt.Errorf("record test for %s: %w", identifier, err)
	}
	return nil
}

// Activate enables a configured provider after a successful connection test.
func (a *Admin) Activate(ctx context.Context, identifier string) error {
	if err := a.TestConnection(ctx, identifier); err != nil {
		return err
	}

	_, err := a.factory.client.ProviderConfig.
		Update().
		Where(providerconfig.IdentifierEQ(identifier)).
		SetEnabled(true).
		SetStatus(providerconfig.StatusActive).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("activate %s: %w", identifier, err)
	}

	a.factory.ClearCache()
	a.log(audit.Entry{
		Category: audit.CategoryProviderActivated,
		Severity: audit.SeverityWarning,
		After:    map[string]interface{}{"identifier": identifier},
		Reason:   "provider activated",
	})
	return nil
}

// Deactivate disables a provider. Lookups fall through to the next enabled
// configuration, or to the registry default when none remains.
func (a *Admin) Deactivate(ctx context.Context, identifier string) error {
	n, err := a.factory.client.ProviderConfig.
		Update().
		Where(providerconfig.IdentifierEQ(identifier)).
		SetEnabled(false).
		SetStatus(providerconfig.StatusInactive).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("deactivate %s: %w", identifier, err)
	}
	if n == 0 {
		return types.ErrProviderNotConfigured{Identifier: identifier}
	}

	a.factory.ClearCache()
	a.log(audit.Entry{
		Category: audit.CategoryProviderDeactivated,
		Severity: audit.SeverityWarning,
		After:    map[string]interface{}{"identifier": identifier},
		Reason:   "provider deactivated",
	})
	return nil
}

func (a *Admin) log(entry audit.Entry) {
	if a.auditor != nil {
		a.auditor.Log(entry)
	}
}
