package openexchange

import (
	"context"
	"testing"

	"github.com/jarcoal/httpmock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFetchRate(t *testing.T) {
	httpmock.Activate()
	defer httpmock.DeactivateAndReset()

	httpmock.RegisterResponder("GET", "https://openexchangerates.org/api/latest.json",
		httpmock.NewJsonResponderOrPanic(200, map[string]interface{}{
			"base": "USD",
			"rates": map[string]float64{
				"USD": 1,
				"EUR": 0.92,
				"GBP": 0.79,
			},
		}))

	c := NewClient()
	assert.False(t, c.IsConfigured())
	assert.NoError(t, c.Initialize(map[string]interface{}{"app_id": "key-1"}))
	assert.True(t, c.IsConfigured())

	rate, err := c.FetchRate(context.Background(), "USD", "EUR")
	assert.NoError(t, err)
	assert.True(t, rate.Equal(decimal.RequireFromString("0.92")))

	// Cross rate derived through the USD table.
	rate, err = c.FetchRate(context.Background(), "EUR", "GBP")
	assert.NoError(t, err)
	assert.True(t, rate.Round(6).Equal(decimal.RequireFromString("0.858696")))

	_, err = c.FetchRate(context.Background(), "USD", "XXX")
	assert.Error(t, err)
}
