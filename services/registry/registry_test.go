package registry

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/monibridge/core/ent/enttest"
	"github.com/monibridge/core/ent/providerconfig"
	"github.com/monibridge/core/services/secrets"
	"github.com/monibridge/core/types"

	_ "github.com/mattn/go-sqlite3"
)

type fakeProvider struct {
	id        string
	initCalls int
	cfg       map[string]interface{}
	testErr   error
}

func (f *fakeProvider) Identifier() string { return f.id }

func (f *fakeProvider) Initialize(cfg map[string]interface{}) error {
	f.initCalls++
	f.cfg = cfg
	return nil
}

func (f *fakeProvider) IsConfigured() bool { return f.cfg != nil }

func (f *fakeProvider) TestConnection(ctx context.Context) error { return f.testErr }

func TestRegistry(t *testing.T) {
	reg := NewRegistry()

	satchel := &fakeProvider{id: "satchel"}
	sumsub := &fakeProvider{id: "sumsub"}
	reg.Register(satchel, types.ProviderCategoryBanking, types.ProviderMeta{DisplayName: "Satchel"})
	reg.Register(sumsub, types.ProviderCategoryKYC, types.ProviderMeta{DisplayName: "Sumsub"})

	got, err := reg.Get("satchel")
	assert.NoError(t, err)
	assert.Equal(t, satchel, got)

	_, err = reg.Get("unknown")
	assert.ErrorAs(t, err, &types.ErrProviderNotFound{})

	banking := reg.ListByCategory(types.ProviderCategoryBanking)
	assert.Len(t, banking, 1)
	assert.Equal(t, "satchel", banking[0].Identifier())

	assert.Empty(t, reg.ListByCategory(types.ProviderCategoryRates))
}

func TestFactoryGetActiveProvider(t *testing.T) {
	client := enttest.Open(t, "sqlite3", "file:factory?mode=memory&cache=shared&_fk=1")
	defer client.Close()
	ctx := context.Background()

	store, err := secrets.New("factory-test-master")
	assert.NoError(t, err)

	reg := NewRegistry()
	older := &fakeProvider{id: "bankone"}
	newer := &fakeProvider{id: "banktwo"}
	reg.Register(older, types.ProviderCategoryBanking, types.ProviderMeta{})
	reg.Register(newer, types.ProviderCategoryBanking, types.ProviderMeta{})

	factory := NewFactory(client, reg, store)

	sealed, err := store.Encrypt(`{"client_id":"id-1","client_secret":"hunter2"}`)
	assert.NoError(t, err)

	client.ProviderConfig.Create().
		SetIdentifier("bankone").
		SetCategory(providerconfig.CategoryBanking).
		SetCredential(sealed).
		SetEndpointURL("https://one.example.com").
		SetEnabled(true).
		SetStatus(providerconfig.StatusActive).
		SetUpdatedAt(time.Now().Add(-time.Hour)).
		SaveX(ctx)

	client.ProviderConfig.Create().
		SetIdentifier("banktwo").
		SetCategory(providerconfig.CategoryBanking).
		SetCredential(sealed).
		SetEndpointURL("https://two.example.com").
		SetSettings(map[string]interface{}{"currency": "EUR"}).
		SetEnabled(true).
		SetStatus(providerconfig.StatusActive).
		SetUpdatedAt(time.Now()).
		SaveX(ctx)

	// The most recently updated active configuration wins.
	adapter, err := factory.GetActiveProvider(ctx, types.ProviderCategoryBanking)
	assert.NoError(t, err)
	assert.Equal(t, "banktwo", adapter.Identifier())
	assert.Equal(t, 1, newer.initCalls)
	assert.Equal(t, "https://two.example.com", newer.cfg["endpoint_url"])
	assert.Equal(t, "id-1", newer.cfg["client_id"])
	assert.Equal(t, "hunter2", newer.cfg["client_secret"])
	assert.Equal(t, "EUR", newer.cfg["currency"])

	// Second lookup is served from the cache without re-initializing.
	again, err := factory.GetActiveProvider(ctx, types.ProviderCategoryBanking)
	assert.NoError(t, err)
	assert.Equal(t, adapter, again)
	assert.Equal(t, 1, newer.initCalls)

	// Cache invalidation forces a fresh decrypt and Initialize.
	factory.ClearCache()
	_, err = factory.GetActiveProvider(ctx, types.ProviderCategoryBanking)
	assert.NoError(t, err)
	assert.Equal(t, 2, newer.initCalls)
}

func TestFactoryFallback(t *testing.T) {
	client := enttest.Open(t, "sqlite3", "file:fallback?mode=memory&cache=shared&_fk=1")
	defer client.Close()
	ctx := context.Background()

	store, _ := secrets.New("")
	reg := NewRegistry()
	adapter := &fakeProvider{id: "satchel"}
	reg.Register(adapter, types.ProviderCategoryBanking, types.ProviderMeta{})

	factory := NewFactory(client, reg, store)

	// No configuration rows at all: the registry default is handed out
	// initialized with an empty configuration.
	got, err := factory.GetActiveProvider(ctx, types.ProviderCategoryBanking)
	assert.NoError(t, err)
	assert.Equal(t, "satchel", got.Identifier())
	assert.Equal(t, 1, adapter.initCalls)
	assert.Empty(t, adapter.cfg)

	// A disabled row does not qualify either.
	client.ProviderConfig.Create().
		SetIdentifier("satchel").
		SetCategory(providerconfig.CategoryBanking).
		SetEnabled(false).
		SaveX(ctx)
	got, err = factory.GetActiveProvider(ctx, types.ProviderCategoryBanking)
	assert.NoError(t, err)
	assert.Equal(t, "satchel", got.Identifier())
	assert.Equal(t, 2, adapter.initCalls)
	assert.Empty(t, adapter.cfg)

	// An empty category is an error, not a fallback.
	_, err = factory.GetActiveProvider(ctx, types.ProviderCategoryRates)
	assert.ErrorAs(t, err, &types.ErrNoActiveProvider{})
}

func TestAdminUpdateConfig(t *testing.T) {
	client := enttest.Open(t, "sqlite3", "file:admin?mode=memory&cache=shared&_fk=1")
	defer client.Close()
	ctx := context.Background()

	store, err := secrets.New("admin-test-master")
	assert.NoError(t, err)

	reg := NewRegistry()
	adapter := &fakeProvider{id: "satchel"}
	reg.Register(adapter, types.ProviderCategoryBanking, types.ProviderMeta{})

	factory := NewFactory(client, reg, store)
	admin := NewAdmin(factory, nil)

	// Missing required credential keys are rejected before anything is stored.
	_, err = admin.UpdateConfig(ctx, "satchel", "https://api.example.com",
		map[string]interface{}{"client_id": "id-1"}, nil)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "client_secret")
	assert.Zero(t, client.ProviderConfig.Query().CountX(ctx))

	credential := map[string]interface{}{
		"client_id":     "id-1",
		"client_secret": "hunter2",
	}
	conf, err := admin.UpdateConfig(ctx, "satchel", "https://api.example.com", credential,
		map[string]interface{}{"currency": "EUR"})
	assert.NoError(t, err)
	assert.False(t, conf.Enabled)
	assert.Equal(t, providerconfig.StatusInactive, conf.Status)

	// Credentials never land in the row as plaintext.
	assert.True(t, strings.HasPrefix(conf.Credential, "enc:v1:"))
	assert.NotContains(t, conf.Credential, "hunter2")

	// A second update replaces the existing row rather than duplicating it.
	_, err = admin.UpdateConfig(ctx, "satchel", "https://api2.example.com", credential, nil)
	assert.NoError(t, err)
	assert.Equal(t, 1, client.ProviderConfig.Query().CountX(ctx))

	_, err = admin.UpdateConfig(ctx, "unregistered", "", credential, nil)
	assert.ErrorAs(t, err, &types.ErrProviderNotFound{})
}

func TestAdminActivate(t *testing.T) {
	client := enttest.Open(t, "sqlite3", "file:activate?mode=memory&cache=shared&_fk=1")
	defer client.Close()
	ctx := context.Background()

	store, err := secrets.New("activate-test-master")
	assert.NoError(t, err)

	reg := NewRegistry()
	adapter := &fakeProvider{id: "satchel"}
	reg.Register(adapter, types.ProviderCategoryBanking, types.ProviderMeta{})

	factory := NewFactory(client, reg, store)
	admin := NewAdmin(factory, nil)

	credential := map[string]interface{}{
		"client_id":     "id-1",
		"client_secret": "hunter2",
	}
	_, err = admin.UpdateConfig(ctx, "satchel", "https://api.example.com", credential, nil)
	assert.NoError(t, err)

	// A failing connection test blocks activation.
	adapter.testErr = context.DeadlineExceeded
	err = admin.Activate(ctx, "satchel")
	assert.Error(t, err)
	conf := client.ProviderConfig.Query().Where(providerconfig.IdentifierEQ("satchel")).OnlyX(ctx)
	assert.False(t, conf.Enabled)
	assert.Equal(t, providerconfig.StatusError, conf.Status)
	assert.False(t, conf.LastTestedAt.IsZero())

	adapter.testErr = nil
	err = admin.Activate(ctx, "satchel")
	assert.NoError(t, err)
	conf = client.ProviderConfig.Query().Where(providerconfig.IdentifierEQ("satchel")).OnlyX(ctx)
	assert.True(t, conf.Enabled)
	assert.Equal(t, providerconfig.StatusActive, conf.Status)

	err = admin.Deactivate(ctx, "satchel")
	assert.NoError(t, err)
	conf = client.ProviderConfig.Query().Where(providerconfig.IdentifierEQ("satchel")).OnlyX(ctx)
	assert.False(t, conf.Enabled)

	err = admin.Deactivate(ctx, "never-configured")
	assert.ErrorAs(t, err, &types.ErrProviderNotConfigured{})
}
