package etherscan

import (
	"context"
	"testing"

	"github.com/jarcoal/httpmock"
	"github.com/stretchr/testify/assert"
)

func TestGetTransactionStatus(t *testing.T) {
	httpmock.Activate()
	defer httpmock.DeactivateAndReset()

	httpmock.RegisterResponder("GET", "https://api.etherscan.io/v2/api",
		httpmock.NewJsonResponderOrPanic(200, map[string]interface{}{
			"status":  "1",
			"message": "OK",
			"result":  map[string]interface{}{"status": "1"},
		}))

	c := NewClient()
	assert.NoError(t, c.Initialize(map[string]interface{}{"api_key": "key-1"}))

	txn, err := c.GetTransactionStatus(context.Background(), "0xabc")
	assert.NoError(t, err)
	assert.Equal(t, "confirmed", txn.Status)
	assert.Equal(t, "0xabc", txn.Hash)
}

func TestIsValidAddress(t *testing.T) {
	c := NewClient()
	assert.True(t, c.IsValidAddress("0x71C7656EC7ab88b098defB751B7401B5f6d8976F"))
	assert.False(t, c.IsValidAddress("not-an-address"))
	assert.False(t, c.IsValidAddress("0x123"))
}
