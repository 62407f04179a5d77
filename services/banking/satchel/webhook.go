package satchel

import (
	"crypto/hmac"
	"crypto/sha256"
	"crypto/sha512"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"hash"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/monibridge/core/config"
	"github.com/monibridge/core/types"
	"github.com/monibridge/core/utils/logger"
)

// VerifyWebhook checks the HMAC signature Satchel computes over the raw,
// unparsed request body. The algorithm header selects sha256 or sha512,
// defaulting to sha256. Callers must pass the exact bytes read off the wire;
// re-serializing parsed JSON breaks the signature.
func (c *Client) VerifyWebhook(rawBody []byte, signature string, algorithm string) bool {
	c.mu.Lock()
	secret := c.webhookSecret
	c.mu.Unlock()

	if secret == "" {
		if config.ServerConfig().AllowUnverifiedWebhooks {
			logger.Warnf("satchel: no webhook secret configured, accepting unverified webhook", nil)
			return true
		}
		return false
	}

	var newHash func() hash.Hash
	switch strings.ToLower(algorithm) {
	case "", "sha256":
		newHash = sha256.New
	case "sha512":
		newHash = sha512.New
	default:
		return false
	}

	expected, err := hex.DecodeString(strings.TrimSpace(signature))
	if err != nil {
		return false
	}

	mac := hmac.New(newHash, []byte(secret))
	mac.Write(rawBody)
	return hmac.Equal(mac.Sum(nil), expected)
}

type webhookPayload struct {
	Event         string `json:"event"`
	ID            string `json:"id"`
	CorrelationID string `json:"correlation_id"`
	AccountID     string `json:"account_id"`
	Amount        string `json:"amount"`
	Currency      string `json:"currency"`
	Status        string `json:"status"`
	Reason        string `json:"reason"`
	Counterparty  struct {
		Name string `json:"name"`
		IBAN string `json:"iban"`
	} `json:"counterparty"`
	OccurredAt time.Time `json:"occurred_at"`
}

// ProcessWebhook normalizes a Satchel callback into the uniform event shape.
// Deposit events carry the provider transaction id used as the ledger
// idempotency key; account events report provider-side status changes.
func (c *Client) ProcessWebhook(payload []byte) (*types.WebhookEvent, error) {
	var body webhookPayload
	if err := json.Unmarshal(payload, &body); err != nil {
		return nil, fmt.Errorf("satchel: parse webhook: %w", err)
	}

	var raw map[string]interface{}
	_ = json.Unmarshal(payload, &raw)

	subjectID := body.AccountID
	if subjectID == "" {
		subjectID = body.CorrelationID
	}

	event := &types.WebhookEvent{
		ProviderRef:      body.ID,
		SubjectID:        subjectID,
		Status:           body.Status,
		Reason:           body.Reason,
		Currency:         body.Currency,
		CounterpartyName: body.Counterparty.Name,
		CounterpartyIBAN: body.Counterparty.IBAN,
		OccurredAt:       body.OccurredAt,
		Raw:              raw,
	}

	switch {
	case strings.HasPrefix(body.Event, "deposit."):
		event.Kind = types.WebhookDeposit
		if body.ID == "" {
			return nil, fmt.Errorf("satchel: deposit webhook carried no transaction id")
		}
		amount, err := decimal.NewFromString(body.Amount)
		if err != nil {
			return nil, fmt.Errorf("satchel: malformed deposit amount %q: %w", body.Amount, err)
		}
		event.Amount = amount
	case strings.HasPrefix(body.Event, "account."):
		event.Kind = types.WebhookAccount
	default:
		return nil, fmt.Errorf("satchel: unsupported webhook event %q", body.Event)
	}

	return event, nil
}
