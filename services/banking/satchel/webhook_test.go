package satchel

import (
	"crypto/hmac"
	"crypto/sha256"
	"crypto/sha512"
	"encoding/hex"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/monibridge/core/types"
)

func sign256(secret string, body []byte) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	return hex.EncodeToString(mac.Sum(nil))
}

func sign512(secret string, body []byte) string {
	mac := hmac.New(sha512.New, []byte(secret))
	mac.Write(body)
	return hex.EncodeToString(mac.Sum(nil))
}

func TestVerifyWebhook(t *testing.T) {
	c := testClient(t)
	body := []byte(`{"event":"deposit.completed","id":"tx-1","amount":"10.00"}`)

	assert.True(t, c.VerifyWebhook(body, sign256("whsec", body), ""))
	assert.True(t, c.VerifyWebhook(body, sign256("whsec", body), "sha256"))
	assert.True(t, c.VerifyWebhook(body, sign512("whsec", body), "sha512"))

	// Any single-byte mutation of the body invalidates the signature.
	signature := sign256("whsec", body)
	for i := range body {
		mutated := append([]byte(nil), body...)
		mutated[i] ^= 0x01
		assert.False(t, c.VerifyWebhook(mutated, signature, ""))
	}

	assert.False(t, c.VerifyWebhook(body, sign256("wrong-secret", body), ""))
	assert.False(t, c.VerifyWebhook(body, sign256("whsec", body), "sha512"))
	assert.False(t, c.VerifyWebhook(body, sign256("whsec", body), "md5"))
	assert.False(t, c.VerifyWebhook(body, "not-hex", ""))
	assert.False(t, c.VerifyWebhook(body, "", ""))
}

func TestVerifyWebhookWithoutSecret(t *testing.T) {
	c := testClient(t)
	err := c.Initialize(map[string]interface{}{
		"endpoint_url":  testBaseURL,
		"client_id":     "client-1",
		"client_secret": "hunter2",
	})
	assert.NoError(t, err)

	// Unverified webhooks are rejected unless explicitly allowed.
	body := []byte(`{}`)
	assert.False(t, c.VerifyWebhook(body, sign256("whsec", body), ""))
}

func TestProcessWebhookDeposit(t *testing.T) {
	c := testClient(t)
	payload := []byte(`{
		"event": "deposit.completed",
		"id": "tx-991",
		"account_id": "acc-77",
		"amount": "150.25",
		"currency": "EUR",
		"status": "completed",
		"counterparty": {"name": "ACME GmbH", "iban": "DE89370400440532013000"},
		"occurred_at": "2026-08-01T10:30:00Z"
	}`)

	event, err := c.ProcessWebhook(payload)
	assert.NoError(t, err)
	assert.Equal(t, types.WebhookDeposit, event.Kind)
	assert.Equal(t, "tx-991", event.ProviderRef)
	assert.Equal(t, "acc-77", event.SubjectID)
	assert.True(t, event.Amount.Equal(decimal.RequireFromString("150.25")))
	assert.Equal(t, "EUR", event.Currency)
	assert.Equal(t, "ACME GmbH", event.CounterpartyName)
	assert.NotNil(t, event.Raw)
}

func TestProcessWebhookAccount(t *testing.T) {
	c := testClient(t)
	payload := []byte(`{
		"event": "account.updated",
		"correlation_id": "corr-42",
		"status": "active"
	}`)

	event, err := c.ProcessWebhook(payload)
	assert.NoError(t, err)
	assert.Equal(t, types.WebhookAccount, event.Kind)
	assert.Equal(t, "corr-42", event.SubjectID)
	assert.Equal(t, "active", event.Status)
}

func TestProcessWebhookRejectsBadPayloads(t *testing.T) {
	c := testClient(t)

	_, err := c.ProcessWebhook([]byte(`not json`))
	assert.Error(t, err)

	_, err = c.ProcessWebhook([]byte(`{"event":"unknown.event"}`))
	assert.Error(t, err)

	_, err = c.ProcessWebhook([]byte(`{"event":"deposit.completed","id":"tx-1","amount":"not-a-number"}`))
	assert.Error(t, err)

	_, err = c.ProcessWebhook([]byte(`{"event":"deposit.completed","amount":"10.00"}`))
	assert.Error(t, err)
}
