package openexchange

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	fastshot "github.com/opus-domini/fast-shot"
)

// Client fetches exchange rates from Open Exchange Rates. Quotes are derived
// from the USD-based rate table, so any base/quote pair the table covers is
// supported.
type Client struct {
	mu          sync.Mutex
	endpointURL string
	appID       string
}

// NewClient returns an unconfigured adapter.
func NewClient() *Client { return &Client{} }

// Identifier implements types.Provider.
func (c *Client) Identifier() string { return "openexchange" }

// Initialize implements types.Provider.
func (c *Client) Initialize(cfg map[string]interface{}) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if v, ok := cfg["endpoint_url"].(string); ok {
		c.endpointURL = v
	}
	if v, ok := cfg["app_id"].(string); ok {
		c.appID = v
	}
	if c.endpointURL == "" {
		c.endpointURL = "https://openexchangerates.org"
	}
	return nil
}

// IsConfigured implements types.Provider.
func (c *Client) IsConfigured() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.appID != ""
}

// TestConnection implements types.Provider.
func (c *Client) TestConnection(ctx context.Context) error {
	_, err := c.FetchRate(ctx, "USD", "EUR")
	return err
}

// FetchRate returns how many units of quote one unit of base buys.
func (c *Client) FetchRate(ctx context.Context, base, quote string) (decimal.Decimal, error) {
	if !c.IsConfigured() {
		return decimal.Zero, fmt.Errorf("openexchange: adapter is not configured")
	}

	c.mu.Lock()
	endpointURL, appID := c.endpointURL, c.appID
	c.mu.Unlock()

	res, err := fastshot.NewClient(endpointURL).
		Config().SetTimeout(30 * time.Second).
		Build().GET("/api/latest.json").
		Query().SetRawString("app_id=" + appID).
		Send()
	if err != nil {
		return decimal.Zero, fmt.Errorf("openexchange: rate request failed: %w", err)
	}
	if res.Status().IsError() {
		return decimal.Zero, fmt.Errorf("openexchange: rate request returned %d", res.Status().Code())
	}

	var body struct {
		Base  string             `json:"base"`
		Rates map[string]float64 `json:"rates"`
	}
	if err := res.Body().AsJSON(&body); err != nil {
		return decimal.Zero, fmt.Errorf("openexchange: parse rate response: %w", err)
	}

	baseRate, ok := body.Rates[base]
	if !ok {
		return decimal.Zero, fmt.Errorf("openexchange: no rate for %s", base)
	}
	quoteRate, ok := body.Rates[quote]
	if !ok {
		return decimal.Zero, fmt.Errorf("openexchange: no rate for %s", quote)
	}
	if baseRate == 0 {
		return decimal.Zero, fmt.Errorf("openexchange: zero rate for %s", base)
	}

	return decimal.NewFromFloat(quoteRate).Div(decimal.NewFromFloat(baseRate)), nil
}
