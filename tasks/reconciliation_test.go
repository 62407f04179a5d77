package tasks

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/monibridge/core/ent"
	"github.com/monibridge/core/ent/auditentry"
	"github.com/monibridge/core/ent/enttest"
	"github.com/monibridge/core/ent/virtualaccount"
	"github.com/monibridge/core/services/audit"
	"github.com/monibridge/core/services/ledger"
	"github.com/monibridge/core/services/registry"
	"github.com/monibridge/core/services/secrets"
	"github.com/monibridge/core/types"

	_ "github.com/mattn/go-sqlite3"
)

// fakeBanking satisfies types.BankingProvider with canned pooled balances
// and correlation-id lookups, so the scheduled jobs can run against a
// deterministic provider.
type fakeBanking struct {
	pooled map[string]decimal.Decimal
	lookup map[string]*types.BankAccountDetails
}

func (f *fakeBanking) Identifier() string                             { return "fakebank" }
func (f *fakeBanking) Initialize(config map[string]interface{}) error { return nil }
func (f *fakeBanking) IsConfigured() bool                             { return true }
func (f *fakeBanking) TestConnection(ctx context.Context) error       { return nil }

func (f *fakeBanking) CreateAccount(ctx context.Context, req types.NewBankAccountRequest) (*types.BankAccountDetails, error) {
	return nil, fmt.Errorf("not implemented")
}

func (f *fakeBanking) LookupByCorrelationID(ctx context.Context, correlationID string) (*types.BankAccountDetails, error) {
	return f.lookup[correlationID], nil
}

func (f *fakeBanking) PooledBalance(ctx context.Context, currency string) (decimal.Decimal, error) {
	total, ok := f.pooled[currency]
	if !ok {
		return decimal.Zero, fmt.Errorf("no pooled balance for %s", currency)
	}
	return total, nil
}

func (f *fakeBanking) VerifyWebhook(rawBody []byte, signature string, algorithm string) bool {
	return false
}

func (f *fakeBanking) ProcessWebhook(payload []byte) (*types.WebhookEvent, error) {
	return nil, fmt.Errorf("not implemented")
}

// setupDeps wires a Deps value around an in-memory database and the fake
// provider. No provider_configs rows exist, so the factory hands out the
// registered adapter through its fallback path. Closing the auditor up front
// makes audit writes synchronous, which keeps the shared in-memory database
// on a single writer.
func setupDeps(t *testing.T, bank *fakeBanking) (*ent.Client, Deps) {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_fk=1", t.Name())
	client := enttest.Open(t, "sqlite3", dsn)
	t.Cleanup(func() { client.Close() })

	auditor := audit.NewService(client, nil)
	auditor.Close()

	reg := registry.NewRegistry()
	reg.Register(bank, types.ProviderCategoryBanking, types.ProviderMeta{DisplayName: "Fake Bank"})

	store, err := secrets.New("")
	assert.NoError(t, err)

	return client, Deps{
		Client:  client,
		Ledger:  ledger.NewService(client, auditor),
		Factory: registry.NewFactory(client, reg, store),
		Auditor: auditor,
	}
}

func newActiveAccount(t *testing.T, client *ent.Client, currency, balance string) *ent.VirtualAccount {
	account, err := client.VirtualAccount.Create().
		SetUserID(uuid.New()).
		SetCurrency(currency).
		SetBalance(decimal.RequireFromString(balance)).
		SetStatus(virtualaccount.StatusActive).
		Save(context.Background())
	assert.NoError(t, err)
	return account
}

func auditEntries(t *testing.T, client *ent.Client, category string) []*ent.AuditEntry {
	entries, err := client.AuditEntry.Query().
		Where(auditentry.CategoryEQ(category)).
		All(context.Background())
	assert.NoError(t, err)
	return entries
}

func TestReconcileBalancesMatchingTotals(t *testing.T) {
	bank := &fakeBanking{pooled: map[string]decimal.Decimal{
		"EUR": decimal.RequireFromString("100"),
		"USD": decimal.RequireFromString("10"),
	}}
	client, deps := setupDeps(t, bank)

	newActiveAccount(t, client, "EUR", "60")
	newActiveAccount(t, client, "EUR", "40")
	newActiveAccount(t, client, "USD", "10")

	// Pending accounts are outside the reconciliation scope.
	_, err := client.VirtualAccount.Create().
		SetUserID(uuid.New()).
		SetCurrency("EUR").
		SetBalance(decimal.RequireFromString("999")).
		SetStatus(virtualaccount.StatusPending).
		Save(context.Background())
	assert.NoError(t, err)

	err = ReconcileBalances(context.Background(), deps)
	assert.NoError(t, err)

	assert.Empty(t, auditEntries(t, client, audit.CategoryBalanceMismatch))
	runs := auditEntries(t, client, audit.CategoryReconciliationRun)
	assert.Len(t, runs, 2)
}

func TestReconcileBalancesDetectsMismatch(t *testing.T) {
	bank := &fakeBanking{pooled: map[string]decimal.Decimal{
		"EUR": decimal.RequireFromString("101"),
		"USD": decimal.RequireFromString("10"),
	}}
	client, deps := setupDeps(t, bank)

	a1 := newActiveAccount(t, client, "EUR", "60")
	a2 := newActiveAccount(t, client, "EUR", "40")
	newActiveAccount(t, client, "USD", "10")

	err := ReconcileBalances(context.Background(), deps)
	assert.NoError(t, err)

	mismatches := auditEntries(t, client, audit.CategoryBalanceMismatch)
	assert.Len(t, mismatches, 1)

	entry := mismatches[0]
	assert.Equal(t, auditentry.SeverityCritical, entry.Severity)
	assert.Equal(t, "EUR", entry.Metadata["Currency"])
	assert.Equal(t, "100", entry.Metadata["LocalTotal"])
	assert.Equal(t, "101", entry.Metadata["PooledTotal"])
	assert.Equal(t, "1", entry.Metadata["Diff"])

	breakdown, ok := entry.Metadata["Accounts"].([]interface{})
	assert.True(t, ok)
	assert.Len(t, breakdown, 2)
	ids := make(map[string]bool)
	for _, item := range breakdown {
		row, ok := item.(map[string]interface{})
		assert.True(t, ok)
		ids[row["AccountID"].(string)] = true
	}
	assert.True(t, ids[a1.ID.String()])
	assert.True(t, ids[a2.ID.String()])

	// USD matched, so it still gets its healthy-run trail.
	runs := auditEntries(t, client, audit.CategoryReconciliationRun)
	assert.Len(t, runs, 1)
	assert.Equal(t, "USD", runs[0].Metadata["Currency"])
}

func TestReconcileBalancesSkipsUnfetchableCurrency(t *testing.T) {
	bank := &fakeBanking{pooled: map[string]decimal.Decimal{
		"EUR": decimal.RequireFromString("50"),
	}}
	client, deps := setupDeps(t, bank)

	newActiveAccount(t, client, "EUR", "50")
	newActiveAccount(t, client, "GBP", "20")

	err := ReconcileBalances(context.Background(), deps)
	assert.NoError(t, err)

	// GBP cannot be fetched; it produces neither a mismatch nor a run entry.
	assert.Empty(t, auditEntries(t, client, audit.CategoryBalanceMismatch))
	runs := auditEntries(t, client, audit.CategoryReconciliationRun)
	assert.Len(t, runs, 1)
	assert.Equal(t, "EUR", runs[0].Metadata["Currency"])
}
