package satchel

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/jarcoal/httpmock"
	"github.com/stretchr/testify/assert"

	"github.com/monibridge/core/config"
	"github.com/monibridge/core/types"
)

const testBaseURL = "https://api.satchel.test"

func testClient(t *testing.T) *Client {
	t.Helper()
	c := NewClient()
	c.conf = &config.BankingConfiguration{
		RequestTimeout:              5 * time.Second,
		TokenExpiryMargin:           time.Minute,
		CreationPollBudget:          2 * time.Second,
		CreationPollInitialInterval: time.Millisecond,
		CreationPollMaxInterval:     5 * time.Millisecond,
	}
	err := c.Initialize(map[string]interface{}{
		"endpoint_url":   testBaseURL,
		"client_id":      "client-1",
		"client_secret":  "hunter2",
		"webhook_secret": "whsec",
	})
	assert.NoError(t, err)
	return c
}

func registerTokenResponder() {
	httpmock.RegisterResponder("POST", testBaseURL+"/oauth/token",
		httpmock.NewJsonResponderOrPanic(200, map[string]interface{}{
			"access_token": "tok-1",
			"expires_in":   3600,
		}))
}

func listResponse(entries ...accountEntry) httpmock.Responder {
	return httpmock.NewJsonResponderOrPanic(200, map[string]interface{}{
		"accounts": entries,
		"has_more": false,
	})
}

func TestAccessTokenIsCachedUntilExpiry(t *testing.T) {
	httpmock.Activate()
	defer httpmock.DeactivateAndReset()
	registerTokenResponder()
	httpmock.RegisterResponder("GET", testBaseURL+"/v1/balance",
		httpmock.NewJsonResponderOrPanic(200, map[string]interface{}{
			"currency": "EUR",
			"total":    "100.00",
		}))

	c := testClient(t)
	ctx := context.Background()

	_, err := c.PooledBalance(ctx, "EUR")
	assert.NoError(t, err)
	_, err = c.PooledBalance(ctx, "EUR")
	assert.NoError(t, err)

	info := httpmock.GetCallCountInfo()
	assert.Equal(t, 1, info["POST "+testBaseURL+"/oauth/token"])

	// Re-initialization with rotated credentials drops the cached token.
	err = c.Initialize(map[string]interface{}{
		"endpoint_url":  testBaseURL,
		"client_id":     "client-1",
		"client_secret": "rotated",
	})
	assert.NoError(t, err)
	_, err = c.PooledBalance(ctx, "EUR")
	assert.NoError(t, err)
	info = httpmock.GetCallCountInfo()
	assert.Equal(t, 2, info["POST "+testBaseURL+"/oauth/token"])
}

func TestCreateAccountActivatesAfterNthPoll(t *testing.T) {
	httpmock.Activate()
	defer httpmock.DeactivateAndReset()
	registerTokenResponder()

	var submitted struct {
		Accounts []map[string]interface{} `json:"accounts"`
	}
	httpmock.RegisterResponder("POST", testBaseURL+"/v1/accounts/batch",
		func(req *http.Request) (*http.Response, error) {
			if err := json.NewDecoder(req.Body).Decode(&submitted); err != nil {
				return httpmock.NewStringResponse(400, ""), nil
			}
			return httpmock.NewStringResponse(202, ""), nil
		})

	polls := 0
	httpmock.RegisterResponder("GET", testBaseURL+"/v1/accounts",
		func(req *http.Request) (*http.Response, error) {
			polls++
			if polls < 3 {
				return httpmock.NewJsonResponse(200, map[string]interface{}{
					"accounts": []accountEntry{},
					"has_more": false,
				})
			}
			correlationID := submitted.Accounts[0]["correlation_id"].(string)
			return httpmock.NewJsonResponse(200, map[string]interface{}{
				"accounts": []accountEntry{{
					CorrelationID: correlationID,
					AccountID:     "acc-77",
					IBAN:          "DE89370400440532013000",
					BIC:           "COBADEFFXXX",
					BankName:      "Satchel Bank",
					Currency:      "EUR",
					Status:        "active",
				}},
				"has_more": false,
			})
		})

	c := testClient(t)
	details, err := c.CreateAccount(context.Background(), types.NewBankAccountRequest{
		FirstName:   "José",
		LastName:    "Müller",
		Address:     "Main Street 1",
		City:        "Berlin",
		PostCode:    "10115",
		CountryCode: "DE",
		Currency:    "EUR",
	})
	assert.NoError(t, err)
	assert.Equal(t, types.CreationActive, details.State)
	assert.Equal(t, "DE89370400440532013000", details.IBAN)
	assert.Equal(t, "COBADEFFXXX", details.BIC)
	assert.Equal(t, 3, polls)

	// Free-text fields were sanitized before hitting the wire.
	assert.Equal(t, "Jose Muller", submitted.Accounts[0]["name"])
}

func TestCreateAccountTimesOutAfterBudget(t *testing.T) {
	httpmock.Activate()
	defer httpmock.DeactivateAndReset()
	registerTokenResponder()
	httpmock.RegisterResponder("POST", testBaseURL+"/v1/accounts/batch",
		httpmock.NewStringResponder(202, ""))
	httpmock.RegisterResponder("GET", testBaseURL+"/v1/accounts", listResponse())

	c := testClient(t)
	c.conf.CreationPollBudget = 50 * time.Millisecond

	start := time.Now()
	details, err := c.CreateAccount(context.Background(), types.NewBankAccountRequest{
		FirstName: "Jane", LastName: "Doe", Currency: "EUR",
	})
	assert.NoError(t, err)
	assert.Equal(t, types.CreationTimedOut, details.State)
	assert.NotEmpty(t, details.CorrelationID)
	// Not earlier than the budget allows.
	assert.GreaterOrEqual(t, time.Since(start), 50*time.Millisecond)
}

func TestCreateAccountExplicitRejection(t *testing.T) {
	httpmock.Activate()
	defer httpmock.DeactivateAndReset()
	registerTokenResponder()
	httpmock.RegisterResponder("POST", testBaseURL+"/v1/accounts/batch",
		httpmock.NewJsonResponderOrPanic(422, map[string]interface{}{
			"reason": "unsupported country",
		}))

	c := testClient(t)
	details, err := c.CreateAccount(context.Background(), types.NewBankAccountRequest{
		FirstName: "Jane", LastName: "Doe", CountryCode: "XX", Currency: "EUR",
	})
	assert.NoError(t, err)
	assert.Equal(t, types.CreationFailed, details.State)
	assert.Equal(t, "unsupported country", details.RejectionReason)
}

func TestCreateAccountRejectsUnrepresentableName(t *testing.T) {
	httpmock.Activate()
	defer httpmock.DeactivateAndReset()

	c := testClient(t)
	_, err := c.CreateAccount(context.Background(), types.NewBankAccountRequest{
		FirstName: "!!!", LastName: "###", CountryCode: "DE", Currency: "EUR",
	})
	assert.ErrorIs(t, err, types.ErrUnrepresentableName)
	// Rejected before anything reaches the provider.
	assert.Zero(t, httpmock.GetTotalCallCount())
}

func TestCreateAccountRejectedDuringPolling(t *testing.T) {
	httpmock.Activate()
	defer httpmock.DeactivateAndReset()
	registerTokenResponder()

	var submitted struct {
		Accounts []map[string]interface{} `json:"accounts"`
	}
	httpmock.RegisterResponder("POST", testBaseURL+"/v1/accounts/batch",
		func(req *http.Request) (*http.Response, error) {
			_ = json.NewDecoder(req.Body).Decode(&submitted)
			return httpmock.NewStringResponse(202, ""), nil
		})
	httpmock.RegisterResponder("GET", testBaseURL+"/v1/accounts",
		func(req *http.Request) (*http.Response, error) {
			correlationID := submitted.Accounts[0]["correlation_id"].(string)
			return httpmock.NewJsonResponse(200, map[string]interface{}{
				"accounts": []accountEntry{{
					CorrelationID:   correlationID,
					Status:          "rejected",
					RejectionReason: "compliance check failed",
				}},
				"has_more": false,
			})
		})

	c := testClient(t)
	details, err := c.CreateAccount(context.Background(), types.NewBankAccountRequest{
		FirstName: "Jane", LastName: "Doe", Currency: "EUR",
	})
	assert.NoError(t, err)
	assert.Equal(t, types.CreationFailed, details.State)
	assert.Equal(t, "compliance check failed", details.RejectionReason)
}

func TestLookupByCorrelationIDPaginates(t *testing.T) {
	httpmock.Activate()
	defer httpmock.DeactivateAndReset()
	registerTokenResponder()

	httpmock.RegisterResponder("GET", testBaseURL+"/v1/accounts",
		func(req *http.Request) (*http.Response, error) {
			page := req.URL.Query().Get("page")
			if page == "1" {
				return httpmock.NewJsonResponse(200, map[string]interface{}{
					"accounts": []accountEntry{{CorrelationID: "other"}},
					"has_more": true,
				})
			}
			return httpmock.NewJsonResponse(200, map[string]interface{}{
				"accounts": []accountEntry{{
					CorrelationID: "corr-42",
					IBAN:          "DE89370400440532013000",
				}},
				"has_more": false,
			})
		})

	c := testClient(t)
	details, err := c.LookupByCorrelationID(context.Background(), "corr-42")
	assert.NoError(t, err)
	assert.Equal(t, types.CreationActive, details.State)

	missing, err := c.LookupByCorrelationID(context.Background(), "corr-nonexistent")
	assert.NoError(t, err)
	assert.Nil(t, missing)
}
