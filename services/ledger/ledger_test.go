package ledger

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"testing"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/monibridge/core/ent"
	"github.com/monibridge/core/ent/auditentry"
	"github.com/monibridge/core/ent/enttest"
	"github.com/monibridge/core/ent/ledgertransaction"
	"github.com/monibridge/core/ent/virtualaccount"
	"github.com/monibridge/core/services/audit"

	_ "github.com/mattn/go-sqlite3"
)

func setup(t *testing.T) (*ent.Client, *Service) {
	t.Helper()
	client := enttest.Open(t, "sqlite3", fmt.Sprintf("file:%s?mode=memory&cache=shared&_fk=1", t.Name()))
	t.Cleanup(func() { client.Close() })

	// Closing the auditor up front makes its writes synchronous, which keeps
	// the in-memory database single-threaded.
	auditor := audit.NewService(client, nil)
	auditor.Close()

	return client, NewService(client, auditor)
}

func newAccount(t *testing.T, client *ent.Client, status virtualaccount.Status, balance decimal.Decimal) *ent.VirtualAccount {
	t.Helper()
	return client.VirtualAccount.Create().
		SetUserID(uuid.New()).
		SetCurrency("EUR").
		SetStatus(status).
		SetBalance(balance).
		SaveX(context.Background())
}

func TestCreditIsIdempotent(t *testing.T) {
	client, svc := setup(t)
	ctx := context.Background()
	account := newAccount(t, client, virtualaccount.StatusActive, decimal.Zero)

	amount := decimal.RequireFromString("100.25")
	updated, txn, err := svc.Credit(ctx, account.ID, amount, "bank-tx-1", "incoming transfer", &Counterparty{
		Name: "ACME GmbH",
		IBAN: "DE89370400440532013000",
	})
	assert.NoError(t, err)
	assert.True(t, updated.Balance.Equal(amount))
	assert.Equal(t, "bank-tx-1", txn.ExternalTxID)
	assert.Equal(t, ledgertransaction.TypeCredit, txn.Type)
	assert.Equal(t, "ACME GmbH", txn.CounterpartyName)

	// Replaying the same external transaction returns the original row and
	// leaves the balance alone.
	replayed, replayedTxn, err := svc.Credit(ctx, account.ID, amount, "bank-tx-1", "incoming transfer", nil)
	assert.NoError(t, err)
	assert.True(t, replayed.Balance.Equal(amount))
	assert.Equal(t, txn.ID, replayedTxn.ID)
	assert.Equal(t, 1, client.LedgerTransaction.Query().CountX(ctx))

	// Exactly one audit entry for the applied credit, none for the replay.
	count := client.AuditEntry.Query().
		Where(auditentry.CategoryEQ(audit.CategoryBalanceCredit)).
		CountX(ctx)
	assert.Equal(t, 1, count)
}

func TestCreditValidation(t *testing.T) {
	client, svc := setup(t)
	ctx := context.Background()
	account := newAccount(t, client, virtualaccount.StatusActive, decimal.Zero)

	_, _, err := svc.Credit(ctx, account.ID, decimal.Zero, "tx", "", nil)
	assert.ErrorIs(t, err, ErrInvalidAmount)

	_, _, err = svc.Credit(ctx, account.ID, decimal.NewFromInt(-5), "tx", "", nil)
	assert.ErrorIs(t, err, ErrInvalidAmount)

	_, _, err = svc.Credit(ctx, account.ID, decimal.NewFromInt(5), "", "", nil)
	assert.Error(t, err)

	_, _, err = svc.Credit(ctx, uuid.New(), decimal.NewFromInt(5), "tx", "", nil)
	assert.ErrorIs(t, err, ErrAccountNotFound)

	closed := newAccount(t, client, virtualaccount.StatusClosed, decimal.Zero)
	_, _, err = svc.Credit(ctx, closed.ID, decimal.NewFromInt(5), "tx-closed", "", nil)
	assert.ErrorIs(t, err, ErrAccountNotActive)

	// Deposits that race account activation still land.
	pending := newAccount(t, client, virtualaccount.StatusPending, decimal.Zero)
	updated, _, err := svc.Credit(ctx, pending.ID, decimal.NewFromInt(5), "tx-pending", "", nil)
	assert.NoError(t, err)
	assert.True(t, updated.Balance.Equal(decimal.NewFromInt(5)))
}

func TestDebit(t *testing.T) {
	client, svc := setup(t)
	ctx := context.Background()
	account := newAccount(t, client, virtualaccount.StatusActive, decimal.NewFromInt(100))

	updated, txn, err := svc.Debit(ctx, account.ID, decimal.RequireFromString("40.50"), "order-1", "payout")
	assert.NoError(t, err)
	assert.True(t, updated.Balance.Equal(decimal.RequireFromString("59.50")))
	assert.Equal(t, "debit-order-1", txn.ExternalTxID)
	assert.Equal(t, "order-1", txn.OrderRef)

	// Retrying the same business event is a no-op.
	replayed, replayedTxn, err := svc.Debit(ctx, account.ID, decimal.RequireFromString("40.50"), "order-1", "payout")
	assert.NoError(t, err)
	assert.True(t, replayed.Balance.Equal(decimal.RequireFromString("59.50")))
	assert.Equal(t, txn.ID, replayedTxn.ID)
	assert.Equal(t, 1, client.LedgerTransaction.Query().CountX(ctx))
}

func TestDebitInsufficientFunds(t *testing.T) {
	client, svc := setup(t)
	ctx := context.Background()
	account := newAccount(t, client, virtualaccount.StatusActive, decimal.NewFromInt(60))

	_, _, err := svc.Debit(ctx, account.ID, decimal.NewFromInt(1000), "order-too-big", "payout")
	var insufficient ErrInsufficientFunds
	assert.ErrorAs(t, err, &insufficient)
	assert.True(t, insufficient.Available.Equal(decimal.NewFromInt(60)))
	assert.True(t, insufficient.Required.Equal(decimal.NewFromInt(1000)))

	// The failed debit leaves no trace.
	balance, err := svc.GetBalance(ctx, account.ID)
	assert.NoError(t, err)
	assert.True(t, balance.Equal(decimal.NewFromInt(60)))
	assert.Equal(t, 0, client.LedgerTransaction.Query().CountX(ctx))

	// Draining the account exactly to zero is allowed, the next cent is not.
	_, _, err = svc.Debit(ctx, account.ID, decimal.NewFromInt(60), "order-drain", "payout")
	assert.NoError(t, err)
	_, _, err = svc.Debit(ctx, account.ID, decimal.RequireFromString("0.01"), "order-overdraw", "payout")
	assert.ErrorAs(t, err, &insufficient)
	assert.True(t, insufficient.Available.Equal(decimal.Zero))
}

// singleConnClient opens a client whose pool holds exactly one connection,
// so concurrent transactions queue at the pool instead of tripping sqlite's
// deferred write lock. The guarded UPDATE still has to do the real work:
// whichever debit lands second sees the decremented balance.
func singleConnClient(t *testing.T) *ent.Client {
	t.Helper()
	db, err := sql.Open("sqlite3", fmt.Sprintf("file:%s?mode=memory&cache=shared&_fk=1", t.Name()))
	assert.NoError(t, err)
	db.SetMaxOpenConns(1)
	client := ent.NewClient(ent.Driver(entsql.OpenDB(dialect.SQLite, db)))
	t.Cleanup(func() { client.Close() })
	assert.NoError(t, client.Schema.Create(context.Background()))
	return client
}

func TestConcurrentDebitsCannotOverdraw(t *testing.T) {
	client := singleConnClient(t)
	ctx := context.Background()

	auditor := audit.NewService(client, nil)
	auditor.Close()
	svc := NewService(client, auditor)

	account := newAccount(t, client, virtualaccount.StatusActive, decimal.NewFromInt(100))

	// Each debit fits on its own; together they would overdraw.
	amount := decimal.NewFromInt(70)
	errs := make(chan error, 2)
	var wg sync.WaitGroup
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			_, _, err := svc.Debit(ctx, account.ID, amount, fmt.Sprintf("order-race-%d", n), "payout")
			errs <- err
		}(i)
	}
	wg.Wait()
	close(errs)

	var rejected int
	for err := range errs {
		if err == nil {
			continue
		}
		var insufficient ErrInsufficientFunds
		assert.ErrorAs(t, err, &insufficient)
		assert.True(t, insufficient.Required.Equal(amount))
		rejected++
	}
	assert.Equal(t, 1, rejected)

	reloaded := client.VirtualAccount.GetX(ctx, account.ID)
	assert.True(t, reloaded.Balance.Equal(decimal.NewFromInt(30)))
	assert.Equal(t, 1, client.LedgerTransaction.Query().CountX(ctx))
}

func TestDebitRequiresActiveAccount(t *testing.T) {
	client, svc := setup(t)
	ctx := context.Background()

	pending := newAccount(t, client, virtualaccount.StatusPending, decimal.NewFromInt(100))
	_, _, err := svc.Debit(ctx, pending.ID, decimal.NewFromInt(10), "order-pending", "")
	assert.ErrorIs(t, err, ErrAccountNotActive)

	suspended := newAccount(t, client, virtualaccount.StatusSuspended, decimal.NewFromInt(100))
	_, _, err = svc.Debit(ctx, suspended.ID, decimal.NewFromInt(10), "order-suspended", "")
	assert.ErrorIs(t, err, ErrAccountNotActive)
}

func TestBalanceMatchesTransactionSum(t *testing.T) {
	client, svc := setup(t)
	ctx := context.Background()
	account := newAccount(t, client, virtualaccount.StatusActive, decimal.Zero)

	expected := decimal.Zero
	for i, amount := range []string{"10.10", "0.01", "999.99", "3"} {
		_, _, err := svc.Credit(ctx, account.ID, decimal.RequireFromString(amount), fmt.Sprintf("tx-%d", i), "", nil)
		assert.NoError(t, err)
		expected = expected.Add(decimal.RequireFromString(amount))
	}
	for i, amount := range []string{"500", "13.10"} {
		_, _, err := svc.Debit(ctx, account.ID, decimal.RequireFromString(amount), fmt.Sprintf("order-%d", i), "")
		assert.NoError(t, err)
		expected = expected.Sub(decimal.RequireFromString(amount))
	}

	// A rejected debit must not disturb the invariant.
	_, _, err := svc.Debit(ctx, account.ID, decimal.NewFromInt(100000), "order-rejected", "")
	var insufficient ErrInsufficientFunds
	assert.ErrorAs(t, err, &insufficient)

	balance, err := svc.GetBalance(ctx, account.ID)
	assert.NoError(t, err)
	assert.True(t, balance.Equal(expected), "balance %s, want %s", balance, expected)

	sum := decimal.Zero
	for _, txn := range client.LedgerTransaction.Query().AllX(ctx) {
		if txn.Type == ledgertransaction.TypeCredit {
			sum = sum.Add(txn.Amount)
		} else {
			sum = sum.Sub(txn.Amount)
		}
	}
	assert.True(t, sum.Equal(balance), "transaction sum %s, balance %s", sum, balance)
}

func TestManualAdjustment(t *testing.T) {
	client, svc := setup(t)
	ctx := context.Background()
	account := newAccount(t, client, virtualaccount.StatusActive, decimal.NewFromInt(50))

	_, _, err := svc.ManualAdjustment(ctx, account.ID, decimal.Zero, "reason", "admin@example.com")
	assert.ErrorIs(t, err, ErrInvalidAmount)

	_, _, err = svc.ManualAdjustment(ctx, account.ID, decimal.NewFromInt(10), "", "admin@example.com")
	assert.Error(t, err)

	updated, txn, err := svc.ManualAdjustment(ctx, account.ID, decimal.NewFromInt(25), "reconciliation correction", "admin@example.com")
	assert.NoError(t, err)
	assert.True(t, updated.Balance.Equal(decimal.NewFromInt(75)))
	assert.Equal(t, ledgertransaction.TypeCredit, txn.Type)

	updated, txn, err = svc.ManualAdjustment(ctx, account.ID, decimal.NewFromInt(-5), "chargeback", "admin@example.com")
	assert.NoError(t, err)
	assert.True(t, updated.Balance.Equal(decimal.NewFromInt(70)))
	assert.Equal(t, ledgertransaction.TypeDebit, txn.Type)

	entries := client.AuditEntry.Query().
		Where(auditentry.CategoryEQ(audit.CategoryManualAdjustment)).
		AllX(ctx)
	assert.Len(t, entries, 2)
	assert.Equal(t, auditentry.SeverityWarning, entries[0].Severity)
	assert.Equal(t, "admin@example.com", entries[0].AdminRef)
}

func TestGetHistory(t *testing.T) {
	client, svc := setup(t)
	ctx := context.Background()
	account := newAccount(t, client, virtualaccount.StatusActive, decimal.NewFromInt(1000))

	base := time.Now().Add(-time.Hour)
	for i := 0; i < 5; i++ {
		client.LedgerTransaction.Create().
			SetExternalTxID(fmt.Sprintf("hist-%d", i)).
			SetType(ledgertransaction.TypeCredit).
			SetAmount(decimal.NewFromInt(int64(i + 1))).
			SetCurrency("EUR").
			SetProcessedAt(base.Add(time.Duration(i) * time.Minute)).
			SetAccountID(account.ID).
			SaveX(ctx)
	}

	history, err := svc.GetHistory(ctx, account.ID, 0)
	assert.NoError(t, err)
	assert.Len(t, history, 5)
	// Newest first.
	assert.Equal(t, "hist-4", history[0].ExternalTxID)
	assert.Equal(t, "hist-0", history[4].ExternalTxID)

	limited, err := svc.GetHistory(ctx, account.ID, 2)
	assert.NoError(t, err)
	assert.Len(t, limited, 2)
	assert.Equal(t, "hist-4", limited[0].ExternalTxID)

	_, err = svc.GetHistory(ctx, uuid.New(), 0)
	assert.ErrorIs(t, err, ErrAccountNotFound)
}
