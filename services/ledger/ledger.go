package ledger

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/monibridge/core/ent"
	"github.com/monibridge/core/ent/ledgertransaction"
	"github.com/monibridge/core/ent/virtualaccount"
	"github.com/monibridge/core/services/audit"
	"github.com/monibridge/core/utils/logger"
	"github.com/shopspring/decimal"
)

const (
	defaultHistoryLimit = 50
	maxHistoryLimit     = 500
)

// Counterparty names the other side of a credit, when the provider reports one.
type Counterparty struct {
	Name string
	IBAN string
}

// Service owns every mutation of VirtualAccount.balance. Each mutation runs
// inside a single database transaction together with the append of its
// LedgerTransaction row, and is guarded server-side so concurrent mutations
// cannot act on a stale balance. Balances are exact decimals; no tolerance
// is applied anywhere.
type Service struct {
	client  *ent.Client
	auditor *audit.Service
}

// NewService returns a ledger service bound to the given database client.
func NewService(client *ent.Client, auditor *audit.Service) *Service {
	return &Service{client: client, auditor: auditor}
}

// Credit applies an incoming amount to an account. It is idempotent per
// externalTxID: replaying an already-applied transaction returns the
// original row without touching the balance, which is what makes duplicate
// webhook or polling-detected deposits safe.
func (s *Service) Credit(ctx context.Context, accountID uuid.UUID, amount decimal.Decimal, externalTxID, reference string, counterparty *Counterparty) (*ent.VirtualAccount, *ent.LedgerTransaction, error) {
	if amount.LessThanOrEqual(decimal.Zero) {
		return nil, nil, ErrInvalidAmount
	}
	if externalTxID == "" {
		return nil, nil, fmt.Errorf("external transaction id is required")
	}

	if account, txn, ok, err := s.findApplied(ctx, externalTxID); err != nil {
		return nil, nil, err
	} else if ok {
		s.logDuplicate(accountID, externalTxID)
		return account, txn, nil
	}

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("ledger.Credit: begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	account, err := tx.VirtualAccount.Query().
		Where(virtualaccount.IDEQ(accountID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil, ErrAccountNotFound
		}
		return nil, nil, fmt.Errorf("ledger.Credit: %w", err)
	}
	if account.Status == virtualaccount.StatusClosed || account.Status == virtualaccount.StatusFailed {
		return nil, nil, ErrAccountNotActive
	}

	// Server-side increment: two concurrent credits must both land.
	_, err = tx.VirtualAccount.Update().
		Where(virtualaccount.IDEQ(accountID)).
		AddBalance(amount).
		SetLastBalanceUpdate(time.Now()).
		Save(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("ledger.Credit: update balance: %w", err)
	}

	create := tx.LedgerTransaction.Create().
		SetExternalTxID(externalTxID).
		SetType(ledgertransaction.TypeCredit).
		SetAmount(amount).
		SetCurrency(account.Currency).
		SetReference(reference).
		SetAccountID(accountID)
	if counterparty != nil {
		create = create.
			SetCounterpartyName(counterparty.Name).
			SetCounterpartyIban(counterparty.IBAN)
	}
	txn, err := create.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			// A concurrent delivery of the same event won the race. Roll back
			// our increment and return the applied row: an idempotent no-op.
			_ = tx.Rollback()
			account, txn, ok, ferr := s.findApplied(ctx, externalTxID)
			if ferr != nil || !ok {
				return nil, nil, fmt.Errorf("ledger.Credit: lost idempotency race but transaction not found: %v", ferr)
			}
			s.logDuplicate(accountID, externalTxID)
			return account, txn, nil
		}
		return nil, nil, fmt.Errorf("ledger.Credit: append transaction: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, nil, fmt.Errorf("ledger.Credit: commit: %w", err)
	}

	account, err = s.client.VirtualAccount.Get(ctx, accountID)
	if err != nil {
		return nil, nil, fmt.Errorf("ledger.Credit: reload account: %w", err)
	}

	s.auditor.Log(audit.Entry{
		Category:  audit.CategoryBalanceCredit,
		Severity:  audit.SeverityInfo,
		AccountID: accountID,
		After:     map[string]interface{}{"balance": account.Balance.String()},
		Metadata: map[string]interface{}{
			"ExternalTxID": externalTxID,
			"Amount":       amount.String(),
			"Currency":     account.Currency,
		},
	})

	return account, txn, nil
}

// Debit withdraws an amount from an ACTIVE account. The external transaction
// id is synthesized from the caller's business reference so retrying the same
// business event is a no-op. The sufficient-funds check and the decrement are
// one conditional UPDATE, so two concurrent debits cannot both pass against a
// stale balance.
func (s *Service) Debit(ctx context.Context, accountID uuid.UUID, amount decimal.Decimal, orderRef, description string) (*ent.VirtualAccount, *ent.LedgerTransaction, error) {
	if amount.LessThanOrEqual(decimal.Zero) {
		return nil, nil, ErrInvalidAmount
	}
	if orderRef == "" {
		return nil, nil, fmt.Errorf("order reference is required")
	}
	externalTxID := "debit-" + orderRef

	if account, txn, ok, err := s.findApplied(ctx, externalTxID); err != nil {
		return nil, nil, err
	} else if ok {
		s.logDuplicate(accountID, externalTxID)
		return account, txn, nil
	}

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("ledger.Debit: begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	account, err := tx.VirtualAccount.Query().
		Where(virtualaccount.IDEQ(accountID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil, ErrAccountNotFound
		}
		return nil, nil, fmt.Errorf("ledger.Debit: %w", err)
	}
	if account.Status != virtualaccount.StatusActive {
		return nil, nil, ErrAccountNotActive
	}

	n, err := tx.VirtualAccount.Update().
		Where(
			virtualaccount.IDEQ(accountID),
			virtualaccount.StatusEQ(virtualaccount.StatusActive),
			virtualaccount.BalanceGTE(amount),
		).
		AddBalance(amount.Neg()).
		SetLastBalanceUpdate(time.Now()).
		Save(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("ledger.Debit: update balance: %w", err)
	}
	if n == 0 {
		return nil, nil, ErrInsufficientFunds{Available: account.Balance, Required: amount}
	}

	txn, err := tx.LedgerTransaction.Create().
		SetExternalTxID(externalTxID).
		SetType(ledgertransaction.TypeDebit).
		SetAmount(amount).
		SetCurrency(account.Currency).
		SetReference(description).
		SetOrderRef(orderRef).
		SetAccountID(accountID).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			_ = tx.Rollback()
			account, txn, ok, ferr := s.findApplied(ctx, externalTxID)
			if ferr != nil || !ok {
				return nil, nil, fmt.Errorf("ledger.Debit: lost idempotency race but transaction not found: %v", ferr)
			}
			s.logDuplicate(accountID, externalTxID)
			return account, txn, nil
		}
		return nil, nil, fmt.Errorf("ledger.Debit: append transaction: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, nil, fmt.Errorf("ledger.Debit: commit: %w", err)
	}

	account, err = s.client.VirtualAccount.Get(ctx, accountID)
	if err != nil {
		return nil, nil, fmt.Errorf("ledger.Debit: reload account: %w", err)
	}

	s.auditor.Log(audit.Entry{
		Category:  audit.CategoryBalanceDebit,
		Severity:  audit.SeverityInfo,
		AccountID: accountID,
		After:     map[string]interface{}{"balance": account.Balance.String()},
		Metadata: map[string]interface{}{
			"ExternalTxID": externalTxID,
			"Amount":       amount.String(),
			"OrderRef":     orderRef,
		},
	})

	return account, txn, nil
}

// ManualAdjustment applies a signed correction to an account. This is the
// only sanctioned path for fixing reconciliation findings: it is audited
// separately with the acting administrator and the stated reason. A negative
// delta is still subject to the sufficient-funds guard.
func (s *Service) ManualAdjustment(ctx context.Context, accountID uuid.UUID, delta decimal.Decimal, reason, adminRef string) (*ent.VirtualAccount, *ent.LedgerTransaction, error) {
	if delta.IsZero() {
		return nil, nil, ErrInvalidAmount
	}
	if reason == "" || adminRef == "" {
		return nil, nil, fmt.Errorf("manual adjustments require a reason and an administrator reference")
	}

	before, err := s.client.VirtualAccount.Get(ctx, accountID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil, ErrAccountNotFound
		}
		return nil, nil, fmt.Errorf("ledger.ManualAdjustment: %w", err)
	}

	externalTxID := "manual-" + uuid.NewString()
	var account *ent.VirtualAccount
	var txn *ent.LedgerTransaction
	if delta.IsPositive() {
		account, txn, err = s.Credit(ctx, accountID, delta, externalTxID, reason, nil)
	} else {
		account, txn, err = s.Debit(ctx, accountID, delta.Neg(), externalTxID, reason)
	}
	if err != nil {
		return nil, nil, err
	}

	s.auditor.Log(audit.Entry{
		Category:  audit.CategoryManualAdjustment,
		Severity:  audit.SeverityWarning,
		AccountID: accountID,
		AdminRef:  adminRef,
		Reason:    reason,
		Before:    map[string]interface{}{"balance": before.Balance.String()},
		After:     map[string]interface{}{"balance": account.Balance.String()},
		Metadata:  map[string]interface{}{"Delta": delta.String()},
	})

	return account, txn, nil
}

// GetBalance returns the locally-held balance, which is authoritative for
// per-account display. The provider's pooled total is only a reconciliation
// input.
func (s *Service) GetBalance(ctx context.Context, accountID uuid.UUID) (decimal.Decimal, error) {
	account, err := s.client.VirtualAccount.Get(ctx, accountID)
	if err != nil {
		if ent.IsNotFound(err) {
			return decimal.Zero, ErrAccountNotFound
		}
		return decimal.Zero, fmt.Errorf("ledger.GetBalance: %w", err)
	}
	return account.Balance, nil
}

// GetHistory returns the account's transactions, newest first.
func (s *Service) GetHistory(ctx context.Context, accountID uuid.UUID, limit int) ([]*ent.LedgerTransaction, error) {
	if limit <= 0 {
		limit = defaultHistoryLimit
	}
	if limit > maxHistoryLimit {
		limit = maxHistoryLimit
	}

	exists, err := s.client.VirtualAccount.Query().
		Where(virtualaccount.IDEQ(accountID)).
		Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("ledger.GetHistory: %w", err)
	}
	if !exists {
		return nil, ErrAccountNotFound
	}

	return s.client.LedgerTransaction.Query().
		Where(ledgertransaction.HasAccountWith(virtualaccount.IDEQ(accountID))).
		Order(ent.Desc(ledgertransaction.FieldProcessedAt)).
		Limit(limit).
		All(ctx)
}

// findApplied looks up an already-applied transaction by idempotency key.
func (s *Service) findApplied(ctx context.Context, externalTxID string) (*ent.VirtualAccount, *ent.LedgerTransaction, bool, error) {
	txn, err := s.client.LedgerTransaction.Query().
		Where(ledgertransaction.ExternalTxIDEQ(externalTxID)).
		WithAccount().
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil, false, nil
		}
		return nil, nil, false, fmt.Errorf("ledger: lookup %s: %w", externalTxID, err)
	}
	return txn.Edges.Account, txn, true, nil
}

func (s *Service) logDuplicate(accountID uuid.UUID, externalTxID string) {
	logger.WithFields(logger.Fields{
		"AccountID":    accountID.String(),
		"ExternalTxID": externalTxID,
	}).Infof("ledger: duplicate transaction replay, returning original")
}
