package etherscan

import (
	"context"
	"fmt"
	"strconv"
	"sync"
	"time"

	ethcommon "github.com/ethereum/go-ethereum/common"
	fastshot "github.com/opus-domini/fast-shot"

	"github.com/monibridge/core/types"
)

// Client reads transaction data from the Etherscan API. It is a read-only
// chain-data source: deposits confirmed on-chain feed KYC risk checks and
// support tooling, never the ledger.
type Client struct {
	mu          sync.Mutex
	endpointURL string
	apiKey      string
	chainID     int64
}

// NewClient returns an unconfigured adapter.
func NewClient() *Client { return &Client{} }

// Identifier implements types.Provider.
func (c *Client) Identifier() string { return "etherscan" }

// Initialize implements types.Provider.
func (c *Client) Initialize(cfg map[string]interface{}) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if v, ok := cfg["endpoint_url"].(string); ok {
		c.endpointURL = v
	}
	if v, ok := cfg["api_key"].(string); ok {
		c.apiKey = v
	}
	c.chainID = 1
	switch v := cfg["chain_id"].(type) {
	case float64:
		c.chainID = int64(v)
	case int:
		c.chainID = int64(v)
	case string:
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.chainID = parsed
		}
	}
	if c.endpointURL == "" {
		c.endpointURL = "https://api.etherscan.io"
	}
	return nil
}

// IsConfigured implements types.Provider.
func (c *Client) IsConfigured() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.apiKey != ""
}

// TestConnection implements types.Provider.
func (c *Client) TestConnection(ctx context.Context) error {
	if !c.IsConfigured() {
		return fmt.Errorf("etherscan: adapter is not configured")
	}
	_, err := c.call("proxy", "eth_blockNumber", "")
	return err
}

// GetTransactionStatus reports the receipt status of a transaction hash.
func (c *Client) GetTransactionStatus(ctx context.Context, txHash string) (*types.ChainTransaction, error) {
	if !c.IsConfigured() {
		return nil, fmt.Errorf("etherscan: adapter is not configured")
	}

	body, err := c.call("transaction", "gettxreceiptstatus", "&txhash="+txHash)
	if err != nil {
		return nil, err
	}

	status := "pending"
	if result, ok := body["result"].(map[string]interface{}); ok {
		switch result["status"] {
		case "1":
			status = "confirmed"
		case "0":
			status = "failed"
		}
	}
	return &types.ChainTransaction{Hash: txHash, Status: status}, nil
}

// IsValidAddress reports whether the string is a well-formed hex address.
func (c *Client) IsValidAddress(address string) bool {
	return ethcommon.IsHexAddress(address)
}

func (c *Client) call(module, action, params string) (map[string]interface{}, error) {
	c.mu.Lock()
	endpointURL, apiKey, chainID := c.endpointURL, c.apiKey, c.chainID
	c.mu.Unlock()

	query := fmt.Sprintf("chainid=%d&module=%s&action=%s%s&apikey=%s",
		chainID, module, action, params, apiKey)

	res, err := fastshot.NewClient(endpointURL).
		Config().SetTimeout(30 * time.Second).
		Build().GET("/v2/api").
		Query().SetRawString(query).
		Send()
	if err != nil {
		return nil, fmt.Errorf("etherscan: request failed: %w", err)
	}
	if res.Status().IsError() {
		return nil, fmt.Errorf("etherscan: request returned %d", res.Status().Code())
	}

	var body map[string]interface{}
	if err := res.Body().AsJSON(&body); err != nil {
		return nil, fmt.Errorf("etherscan: parse response: %w", err)
	}
	return body, nil
}
