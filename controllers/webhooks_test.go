package controllers

import (
	"context"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/monibridge/core/ent/auditentry"
	"github.com/monibridge/core/ent/ledgertransaction"
	"github.com/monibridge/core/ent/virtualaccount"
	"github.com/monibridge/core/services/audit"
	"github.com/monibridge/core/types"
	"github.com/monibridge/core/utils/test"

	_ "github.com/mattn/go-sqlite3"
)

func signedHeaders() map[string]string {
	return map[string]string{"X-Signature": "valid", "X-Signature-Alg": "sha256"}
}

func TestBankingWebhookRejectsBadSignature(t *testing.T) {
	f := setup(t)

	res := test.PerformRawRequest(t, "POST", "/v1/webhooks/banking", []byte(`{}`),
		map[string]string{"X-Signature": "forged"}, f.router)
	assert.Equal(t, http.StatusUnauthorized, res.Code)

	rejected, err := f.client.AuditEntry.Query().
		Where(auditentry.CategoryEQ(audit.CategoryWebhookRejected)).
		All(context.Background())
	assert.NoError(t, err)
	assert.Len(t, rejected, 1)
}

func TestBankingWebhookAppliesDeposit(t *testing.T) {
	f := setup(t)
	account := f.newAccount(t, virtualaccount.StatusActive, "acc-1")
	f.banking.event = &types.WebhookEvent{
		Kind:             types.WebhookDeposit,
		ProviderRef:      "txn-1",
		SubjectID:        "acc-1",
		Amount:           decimal.RequireFromString("150.25"),
		Currency:         "EUR",
		CounterpartyName: "ACME GmbH",
		CounterpartyIBAN: "DE00123456789",
		OccurredAt:       time.Now(),
	}

	res := test.PerformRawRequest(t, "POST", "/v1/webhooks/banking", []byte(`{"event":"deposit.settled"}`), signedHeaders(), f.router)
	assert.Equal(t, http.StatusOK, res.Code)

	refreshed, err := f.client.VirtualAccount.Get(context.Background(), account.ID)
	assert.NoError(t, err)
	assert.True(t, refreshed.Balance.Equal(decimal.RequireFromString("150.25")),
		fmt.Sprintf("balance is %s", refreshed.Balance))

	// A replayed delivery is acknowledged without double-crediting.
	res = test.PerformRawRequest(t, "POST", "/v1/webhooks/banking", []byte(`{"event":"deposit.settled"}`), signedHeaders(), f.router)
	assert.Equal(t, http.StatusOK, res.Code)

	refreshed, err = f.client.VirtualAccount.Get(context.Background(), account.ID)
	assert.NoError(t, err)
	assert.True(t, refreshed.Balance.Equal(decimal.RequireFromString("150.25")))

	count, err := f.client.LedgerTransaction.Query().
		Where(ledgertransaction.ExternalTxID("txn-1")).
		Count(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestBankingWebhookUnknownAccountIsAcknowledged(t *testing.T) {
	f := setup(t)
	f.banking.event = &types.WebhookEvent{
		Kind:        types.WebhookDeposit,
		ProviderRef: "txn-orphan",
		SubjectID:   "acc-missing",
		Amount:      decimal.RequireFromString("10"),
		Currency:    "EUR",
	}

	res := test.PerformRawRequest(t, "POST", "/v1/webhooks/banking", []byte(`{}`), signedHeaders(), f.router)
	assert.Equal(t, http.StatusOK, res.Code)

	received, err := f.client.AuditEntry.Query().
		Where(auditentry.CategoryEQ(audit.CategoryWebhookReceived)).
		All(context.Background())
	assert.NoError(t, err)
	assert.Len(t, received, 1)
	assert.Equal(t, auditentry.SeverityWarning, received[0].Severity)
}

func TestBankingWebhookClosesAccount(t *testing.T) {
	f := setup(t)
	account := f.newAccount(t, virtualaccount.StatusActive, "acc-2")
	f.banking.event = &types.WebhookEvent{
		Kind:      types.WebhookAccount,
		SubjectID: "acc-2",
		Status:    "closed",
		Reason:    "closed at customer request",
	}

	res := test.PerformRawRequest(t, "POST", "/v1/webhooks/banking", []byte(`{}`), signedHeaders(), f.router)
	assert.Equal(t, http.StatusOK, res.Code)

	refreshed, err := f.client.VirtualAccount.Get(context.Background(), account.ID)
	assert.NoError(t, err)
	assert.Equal(t, virtualaccount.StatusClosed, refreshed.Status)

	closed, err := f.client.AuditEntry.Query().
		Where(auditentry.CategoryEQ(audit.CategoryAccountClosed)).
		All(context.Background())
	assert.NoError(t, err)
	assert.Len(t, closed, 1)
	assert.Equal(t, "closed at customer request", closed[0].Reason)
}

func TestBankingWebhookPromotesPendingAccountByCorrelationID(t *testing.T) {
	f := setup(t)
	account, err := f.client.VirtualAccount.Create().
		SetUserID(uuid.New()).
		SetCurrency("EUR").
		SetBalance(decimal.Zero).
		SetStatus(virtualaccount.StatusPending).
		SetMetadata(map[string]interface{}{"correlation_id": "corr-9"}).
		Save(context.Background())
	assert.NoError(t, err)

	f.banking.event = &types.WebhookEvent{
		Kind:        types.WebhookAccount,
		ProviderRef: "acc-9",
		SubjectID:   "corr-9",
		Status:      "active",
	}

	res := test.PerformRawRequest(t, "POST", "/v1/webhooks/banking", []byte(`{}`), signedHeaders(), f.router)
	assert.Equal(t, http.StatusOK, res.Code)

	refreshed, err := f.client.VirtualAccount.Get(context.Background(), account.ID)
	assert.NoError(t, err)
	assert.Equal(t, virtualaccount.StatusActive, refreshed.Status)
	assert.Equal(t, "acc-9", refreshed.ProviderAccountID)
}

func TestBankingWebhookRejectsMalformedPayload(t *testing.T) {
	f := setup(t)
	f.banking.eventErr = fmt.Errorf("unsupported webhook event")

	res := test.PerformRawRequest(t, "POST", "/v1/webhooks/banking", []byte(`not json`), signedHeaders(), f.router)
	assert.Equal(t, http.StatusBadRequest, res.Code)
}

func TestKYCWebhook(t *testing.T) {
	f := setup(t)
	f.kyc.event = &types.WebhookEvent{
		Kind:        types.WebhookVerification,
		ProviderRef: "applicant-1",
		SubjectID:   "user-1",
		Status:      "approved",
	}

	res := test.PerformRawRequest(t, "POST", "/v1/webhooks/kyc", []byte(`{}`),
		map[string]string{"X-Payload-Digest": "valid", "X-Payload-Digest-Alg": "HMAC_SHA256_HEX"}, f.router)
	assert.Equal(t, http.StatusOK, res.Code)

	received, err := f.client.AuditEntry.Query().
		Where(auditentry.CategoryEQ(audit.CategoryWebhookReceived)).
		All(context.Background())
	assert.NoError(t, err)
	assert.Len(t, received, 1)
	assert.Equal(t, "approved", received[0].Metadata["Status"])

	res = test.PerformRawRequest(t, "POST", "/v1/webhooks/kyc", []byte(`{}`),
		map[string]string{"X-Payload-Digest": "forged"}, f.router)
	assert.Equal(t, http.StatusUnauthorized, res.Code)
}
