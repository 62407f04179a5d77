package controllers

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/monibridge/core/ent/providerconfig"
	"github.com/monibridge/core/utils/test"

	_ "github.com/mattn/go-sqlite3"
)

func configurePayload() map[string]interface{} {
	return map[string]interface{}{
		"endpointUrl": "https://api.stubbank.test",
		"credential": map[string]interface{}{
			"client_id":     "id-1",
			"client_secret": "secret-1",
		},
		"settings": map[string]interface{}{
			"currency": "EUR",
		},
	}
}

func TestListProviders(t *testing.T) {
	f := setup(t)

	res, err := test.PerformRequest(t, "GET", "/v1/providers", nil, nil, f.router)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, res.Code)

	response := decodeResponse(t, res.Body.Bytes())
	items := response.Data.([]interface{})
	assert.Len(t, items, 2)
	for _, raw := range items {
		item := raw.(map[string]interface{})
		assert.Equal(t, false, item["configured"])
		assert.NotContains(t, item, "credential")
	}

	res, err = test.PerformRequest(t, "PUT", "/v1/providers/stubbank/config", configurePayload(), nil, f.router)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, res.Code)

	res, err = test.PerformRequest(t, "GET", "/v1/providers", nil, nil, f.router)
	assert.NoError(t, err)
	response = decodeResponse(t, res.Body.Bytes())
	for _, raw := range response.Data.([]interface{}) {
		item := raw.(map[string]interface{})
		if item["identifier"] == "stubbank" {
			assert.Equal(t, true, item["configured"])
			assert.Equal(t, "inactive", item["status"])
			assert.Equal(t, "https://api.stubbank.test", item["endpointUrl"])
		}
	}
}

func TestUpdateProviderConfigValidation(t *testing.T) {
	f := setup(t)

	payload := configurePayload()
	payload["credential"] = map[string]interface{}{"client_id": "id-only"}
	res, err := test.PerformRequest(t, "PUT", "/v1/providers/stubbank/config", payload, nil, f.router)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, res.Code)

	res, err = test.PerformRequest(t, "PUT", "/v1/providers/unknown/config", configurePayload(), nil, f.router)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, res.Code)

	count, err := f.client.ProviderConfig.Query().Count(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, 0, count)
}

func TestProviderActivationLifecycle(t *testing.T) {
	f := setup(t)

	// Activation requires a stored configuration.
	res, err := test.PerformRequest(t, "POST", "/v1/providers/stubbank/activate", nil, nil, f.router)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, res.Code)

	res, err = test.PerformRequest(t, "PUT", "/v1/providers/stubbank/config", configurePayload(), nil, f.router)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, res.Code)

	res, err = test.PerformRequest(t, "POST", "/v1/providers/stubbank/test", nil, nil, f.router)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, res.Code)

	res, err = test.PerformRequest(t, "POST", "/v1/providers/stubbank/activate", nil, nil, f.router)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, res.Code)

	conf, err := f.client.ProviderConfig.Query().
		Where(providerconfig.Identifier("stubbank")).
		Only(context.Background())
	assert.NoError(t, err)
	assert.True(t, conf.Enabled)
	assert.Equal(t, providerconfig.StatusActive, conf.Status)
	assert.False(t, conf.LastTestedAt.IsZero())

	res, err = test.PerformRequest(t, "POST", "/v1/providers/stubbank/deactivate", nil, nil, f.router)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, res.Code)

	conf, err = f.client.ProviderConfig.Query().
		Where(providerconfig.Identifier("stubbank")).
		Only(context.Background())
	assert.NoError(t, err)
	assert.False(t, conf.Enabled)
	assert.Equal(t, providerconfig.StatusInactive, conf.Status)
}
