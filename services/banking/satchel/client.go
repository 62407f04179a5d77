package satchel

import (
	"context"
	"fmt"
	"sync"
	"time"

	fastshot "github.com/opus-domini/fast-shot"

	"github.com/monibridge/core/config"
	"github.com/monibridge/core/storage"
	"github.com/monibridge/core/utils/logger"
)

const redisTokenKey = "satchel:access_token"

// Client is the pooled-account banking adapter for Satchel. One provider-side
// pooled account aggregates funds for many customers; per-customer balances
// live in the local ledger, and Satchel only exposes assigned IBANs, webhooks
// and a pooled total.
type Client struct {
	conf *config.BankingConfiguration

	mu            sync.Mutex
	endpointURL   string
	clientID      string
	clientSecret  string
	webhookSecret string

	token        string
	tokenExpires time.Time
}

// NewClient returns an unconfigured adapter. Configuration arrives through
// Initialize when the factory resolves the active provider.
func NewClient() *Client {
	return &Client{conf: config.BankingConfig()}
}

// Identifier implements types.Provider.
func (c *Client) Identifier() string { return "satchel" }

// Initialize implements types.Provider. Re-initialization drops the cached
// bearer token so rotated credentials take effect immediately.
func (c *Client) Initialize(cfg map[string]interface{}) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.endpointURL = stringValue(cfg, "endpoint_url")
	c.clientID = stringValue(cfg, "client_id")
	c.clientSecret = stringValue(cfg, "client_secret")
	c.webhookSecret = stringValue(cfg, "webhook_secret")
	c.token = ""
	c.tokenExpires = time.Time{}
	return nil
}

// IsConfigured implements types.Provider.
func (c *Client) IsConfigured() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.endpointURL != "" && c.clientID != "" && c.clientSecret != ""
}

// TestConnection implements types.Provider by exchanging credentials for a
// fresh token.
func (c *Client) TestConnection(ctx context.Context) error {
	if !c.IsConfigured() {
		return fmt.Errorf("satchel: adapter is not configured")
	}
	c.mu.Lock()
	c.token = ""
	c.mu.Unlock()
	_, err := c.accessToken(ctx)
	return err
}

// accessToken returns a valid bearer token, exchanging client credentials
// only when the cached one is within the expiry margin. The token is mirrored
// to redis when available so worker processes share it.
func (c *Client) accessToken(ctx context.Context) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.token != "" && time.Now().Before(c.tokenExpires) {
		return c.token, nil
	}

	if storage.RedisClient != nil {
		if token, err := storage.RedisClient.Get(ctx, redisTokenKey).Result(); err == nil && token != "" {
			ttl, err := storage.RedisClient.TTL(ctx, redisTokenKey).Result()
			if err == nil && ttl > 0 {
				c.token = token
				c.tokenExpires = time.Now().Add(ttl)
				return c.token, nil
			}
		}
	}

	res, err := fastshot.NewClient(c.endpointURL).
		Config().SetTimeout(c.conf.RequestTimeout).
		Header().Add("Content-Type", "application/json").
		Build().POST("/oauth/token").
		Body().AsJSON(map[string]interface{}{
		"grant_type":    "client_credentials",
		"client_id":     c.clientID,
		"client_secret": c.clientSecret,
	}).
		Send()
	if err != nil {
		return "", fmt.Errorf("satchel: token request failed: %w", err)
	}
	if res.Status().IsError() {
		return "", fmt.Errorf("satchel: token request returned %d", res.Status().Code())
	}

	var body struct {
		AccessToken string `json:"access_token"`
		ExpiresIn   int64  `json:"expires_in"`
	}
	if err := res.Body().AsJSON(&body); err != nil {
		return "", fmt.Errorf("satchel: parse token response: %w", err)
	}
	if body.AccessToken == "" {
		return "", fmt.Errorf("satchel: token response carried no access token")
	}

	lifetime := time.Duration(body.ExpiresIn)*time.Second - c.conf.TokenExpiryMargin
	if lifetime <= 0 {
		lifetime = time.Second
	}
	c.token = body.AccessToken
	c.tokenExpires = time.Now().Add(lifetime)

	if storage.RedisClient != nil {
		if err := storage.RedisClient.Set(ctx, redisTokenKey, c.token, lifetime).Err(); err != nil {
			logger.WithFields(logger.Fields{"Error": err.Error()}).
				Warnf("satchel: failed to mirror token to redis")
		}
	}

	return c.token, nil
}

// authorized builds a fastshot client carrying the bearer token and the
// per-request timeout.
func (c *Client) authorized(ctx context.Context) (fastshot.ClientHttpMethods, error) {
	token, err := c.accessToken(ctx)
	if err != nil {
		return nil, err
	}
	return fastshot.NewClient(c.endpointURL).
		Config().SetTimeout(c.conf.RequestTimeout).
		Auth().BearerToken(token).
		Header().Add("Content-Type", "application/json").
		Build(), nil
}

func stringValue(cfg map[string]interface{}, key string) string {
	if v, ok := cfg[key].(string); ok {
		return v
	}
	return ""
}
