package controllers

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/monibridge/core/ent/auditentry"
	"github.com/monibridge/core/ent/virtualaccount"
	"github.com/monibridge/core/services/audit"
	"github.com/monibridge/core/types"
	"github.com/monibridge/core/utils/test"

	_ "github.com/mattn/go-sqlite3"
)

func validAccountPayload() map[string]interface{} {
	return map[string]interface{}{
		"userId":      uuid.NewString(),
		"firstName":   "José",
		"lastName":    "Müller",
		"address":     "Hauptstraße 5",
		"city":        "Berlin",
		"postCode":    "10115",
		"countryCode": "DE",
		"currency":    "EUR",
	}
}

func TestCreateAccountImmediatelyActive(t *testing.T) {
	f := setup(t)
	f.banking.creation = &types.BankAccountDetails{
		State:             types.CreationActive,
		CorrelationID:     "corr-1",
		ProviderAccountID: "acc-1",
		IBAN:              "DE89370400440532013000",
		BIC:               "COBADEFFXXX",
		BankName:          "Commerzbank",
		Currency:          "EUR",
	}

	res, err := test.PerformRequest(t, "POST", "/v1/accounts", validAccountPayload(), nil, f.router)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusCreated, res.Code)

	response := decodeResponse(t, res.Body.Bytes())
	data := response.Data.(map[string]interface{})
	assert.Equal(t, "active", data["status"])
	assert.Equal(t, "DE89370400440532013000", data["iban"])

	account, err := f.client.VirtualAccount.Get(context.Background(), uuid.MustParse(data["id"].(string)))
	assert.NoError(t, err)
	assert.Equal(t, virtualaccount.StatusActive, account.Status)
	assert.Equal(t, "corr-1", account.Metadata["correlation_id"])
	assert.True(t, account.Balance.IsZero())

	created, err := f.client.AuditEntry.Query().
		Where(auditentry.CategoryEQ(audit.CategoryAccountCreated)).
		All(context.Background())
	assert.NoError(t, err)
	assert.Len(t, created, 1)
}

func TestCreateAccountPendingAfterTimeout(t *testing.T) {
	f := setup(t)
	f.banking.creation = &types.BankAccountDetails{
		State:         types.CreationTimedOut,
		CorrelationID: "corr-slow",
	}

	res, err := test.PerformRequest(t, "POST", "/v1/accounts", validAccountPayload(), nil, f.router)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusAccepted, res.Code)

	response := decodeResponse(t, res.Body.Bytes())
	data := response.Data.(map[string]interface{})
	assert.Equal(t, "pending", data["status"])

	account, err := f.client.VirtualAccount.Get(context.Background(), uuid.MustParse(data["id"].(string)))
	assert.NoError(t, err)
	assert.Equal(t, "corr-slow", account.Metadata["correlation_id"])

	timeouts, err := f.client.AuditEntry.Query().
		Where(auditentry.CategoryEQ(audit.CategoryAccountCreationTimeout)).
		All(context.Background())
	assert.NoError(t, err)
	assert.Len(t, timeouts, 1)
}

func TestCreateAccountRejectedByProvider(t *testing.T) {
	f := setup(t)
	f.banking.creation = &types.BankAccountDetails{
		State:           types.CreationFailed,
		CorrelationID:   "corr-bad",
		RejectionReason: "unsupported country",
	}

	res, err := test.PerformRequest(t, "POST", "/v1/accounts", validAccountPayload(), nil, f.router)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusUnprocessableEntity, res.Code)

	response := decodeResponse(t, res.Body.Bytes())
	data := response.Data.(map[string]interface{})
	assert.Equal(t, "unsupported country", data["reason"])

	failed, err := f.client.AuditEntry.Query().
		Where(auditentry.CategoryEQ(audit.CategoryAccountCreationFailed)).
		All(context.Background())
	assert.NoError(t, err)
	assert.Len(t, failed, 1)
}

func TestCreateAccountValidatesPayload(t *testing.T) {
	f := setup(t)

	res, err := test.PerformRequest(t, "POST", "/v1/accounts", map[string]interface{}{
		"userId": "not-a-uuid",
	}, nil, f.router)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, res.Code)

	count, err := f.client.VirtualAccount.Query().Count(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, 0, count)
}

func TestCreateAccountRejectsUnrepresentableName(t *testing.T) {
	f := setup(t)
	f.banking.creationErr = fmt.Errorf("satchel: %w", types.ErrUnrepresentableName)

	res, err := test.PerformRequest(t, "POST", "/v1/accounts", validAccountPayload(), nil, f.router)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, res.Code)

	count, err := f.client.VirtualAccount.Query().Count(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, 0, count)
}

func TestGetAccountBalance(t *testing.T) {
	f := setup(t)
	account := f.newAccount(t, virtualaccount.StatusActive, "acc-bal")

	_, _, err := f.ledger.Credit(context.Background(), account.ID, decimal.RequireFromString("12.34"), "dep-1", "bank deposit", nil)
	assert.NoError(t, err)

	res, err := test.PerformRequest(t, "GET", fmt.Sprintf("/v1/accounts/%s/balance", account.ID), nil, nil, f.router)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, res.Code)

	response := decodeResponse(t, res.Body.Bytes())
	data := response.Data.(map[string]interface{})
	assert.Equal(t, "12.34", data["balance"])
	assert.Equal(t, "EUR", data["currency"])

	res, err = test.PerformRequest(t, "GET", fmt.Sprintf("/v1/accounts/%s/balance", uuid.NewString()), nil, nil, f.router)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, res.Code)

	res, err = test.PerformRequest(t, "GET", "/v1/accounts/not-a-uuid/balance", nil, nil, f.router)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, res.Code)
}

func TestGetAccountTransactions(t *testing.T) {
	f := setup(t)
	account := f.newAccount(t, virtualaccount.StatusActive, "acc-txn")

	for i := 1; i <= 3; i++ {
		_, _, err := f.ledger.Credit(context.Background(), account.ID, decimal.NewFromInt(int64(i)), fmt.Sprintf("dep-%d", i), "bank deposit", nil)
		assert.NoError(t, err)
	}

	res, err := test.PerformRequest(t, "GET", fmt.Sprintf("/v1/accounts/%s/transactions?limit=2", account.ID), nil, nil, f.router)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, res.Code)

	response := decodeResponse(t, res.Body.Bytes())
	items := response.Data.([]interface{})
	assert.Len(t, items, 2)
	first := items[0].(map[string]interface{})
	assert.Equal(t, "credit", first["type"])

	res, err = test.PerformRequest(t, "GET", fmt.Sprintf("/v1/accounts/%s/transactions", uuid.NewString()), nil, nil, f.router)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, res.Code)
}
