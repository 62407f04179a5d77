package tasks

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/monibridge/core/ent"
	"github.com/monibridge/core/ent/auditentry"
	"github.com/monibridge/core/ent/virtualaccount"
	"github.com/monibridge/core/services/audit"
	"github.com/monibridge/core/types"

	_ "github.com/mattn/go-sqlite3"
)

func newPendingAccount(t *testing.T, client *ent.Client, correlationID string) *ent.VirtualAccount {
	create := client.VirtualAccount.Create().
		SetUserID(uuid.New()).
		SetCurrency("EUR").
		SetBalance(decimal.Zero).
		SetStatus(virtualaccount.StatusPending)
	if correlationID != "" {
		create = create.SetMetadata(map[string]interface{}{"correlation_id": correlationID})
	}
	account, err := create.Save(context.Background())
	assert.NoError(t, err)
	return account
}

func TestSweepPromotesMaterializedAccount(t *testing.T) {
	bank := &fakeBanking{lookup: map[string]*types.BankAccountDetails{
		"corr-1": {
			State:             types.CreationActive,
			CorrelationID:     "corr-1",
			ProviderAccountID: "acc-777",
			IBAN:              "DE89370400440532013000",
			BIC:               "COBADEFFXXX",
			BankName:          "Commerzbank",
			Currency:          "EUR",
		},
	}}
	client, deps := setupDeps(t, bank)

	account := newPendingAccount(t, client, "corr-1")

	err := SweepPendingAccounts(context.Background(), deps)
	assert.NoError(t, err)

	refreshed, err := client.VirtualAccount.Get(context.Background(), account.ID)
	assert.NoError(t, err)
	assert.Equal(t, virtualaccount.StatusActive, refreshed.Status)
	assert.Equal(t, "acc-777", refreshed.ProviderAccountID)
	assert.Equal(t, "DE89370400440532013000", refreshed.Iban)
	assert.Equal(t, "COBADEFFXXX", refreshed.Bic)
	assert.Equal(t, "Commerzbank", refreshed.BankName)
	assert.False(t, refreshed.LastBalanceUpdate.IsZero())

	entries := auditEntries(t, client, audit.CategoryAccountCreated)
	assert.Len(t, entries, 1)
	assert.Equal(t, account.ID, entries[0].AccountID)
	assert.Equal(t, "corr-1", entries[0].Metadata["CorrelationID"])
}

func TestSweepMarksRejectedAccountFailed(t *testing.T) {
	bank := &fakeBanking{lookup: map[string]*types.BankAccountDetails{
		"corr-2": {
			State:           types.CreationFailed,
			CorrelationID:   "corr-2",
			RejectionReason: "compliance check failed",
		},
	}}
	client, deps := setupDeps(t, bank)

	account := newPendingAccount(t, client, "corr-2")

	err := SweepPendingAccounts(context.Background(), deps)
	assert.NoError(t, err)

	refreshed, err := client.VirtualAccount.Get(context.Background(), account.ID)
	assert.NoError(t, err)
	assert.Equal(t, virtualaccount.StatusFailed, refreshed.Status)

	entries := auditEntries(t, client, audit.CategoryAccountCreationFailed)
	assert.Len(t, entries, 1)
	assert.Equal(t, auditentry.SeverityError, entries[0].Severity)
	assert.Equal(t, "compliance check failed", entries[0].Reason)
}

func TestSweepLeavesUnresolvedAccountsPending(t *testing.T) {
	bank := &fakeBanking{lookup: map[string]*types.BankAccountDetails{}}
	client, deps := setupDeps(t, bank)

	// Still unknown on the provider side, and one legacy row without a
	// correlation id that the sweep cannot act on.
	waiting := newPendingAccount(t, client, "corr-3")
	orphan := newPendingAccount(t, client, "")

	err := SweepPendingAccounts(context.Background(), deps)
	assert.NoError(t, err)

	for _, id := range []uuid.UUID{waiting.ID, orphan.ID} {
		refreshed, err := client.VirtualAccount.Get(context.Background(), id)
		assert.NoError(t, err)
		assert.Equal(t, virtualaccount.StatusPending, refreshed.Status)
	}
	assert.Empty(t, auditEntries(t, client, audit.CategoryAccountCreated))
	assert.Empty(t, auditEntries(t, client, audit.CategoryAccountCreationFailed))
}
