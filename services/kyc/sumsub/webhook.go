package sumsub

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

	"github.com/monibridge/core/config"
	"github.com/monibridge/core/types"
	"github.com/monibridge/core/utils/logger"
)

// VerifyWebhook checks the X-Payload-Digest header against an HMAC computed
// over the raw body. The X-Payload-Digest-Alg header selects the hash
// (HMAC_SHA256_HEX or HMAC_SHA512_HEX), defaulting to the 256-bit variant.
func (c *Client) VerifyWebhook(rawBody []byte, digest string, algorithm string) bool {
	c.mu.Lock()
	secret := c.webhookSecret
	c.mu.Unlock()

	if secret == "" {
		if config.ServerConfig().AllowUnverifiedWebhooks {
			logger.Warnf("sumsub: no webhook secret configured, accepting unverified webhook", nil)
			return true
		}
		return false
	}

	var newHash func() hash.Hash
	switch strings.ToUpper(algorithm) {
	case "", "HMAC_SHA256_HEX":
		newHash = sha256.New
	case "HMAC_SHA512_HEX":
		newHash = sha512.New
	default:
		return false
	}

	expected, err := hex.DecodeString(strings.TrimSpace(digest))
	if err != nil {
		return false
	}

	mac := hmac.New(newHash, []byte(secret))
	mac.Write(rawBody)
	return hmac.Equal(mac.Sum(nil), expected)
}

// ProcessWebhook normalizes a Sumsub review callback. The review answer maps
// onto the platform's approved/rejected/pending vocabulary so downstream
// logic never sees Sumsub's field names.
func (c *Client) ProcessWebhook(payload []byte) (*types.WebhookEvent, error) {
	var body struct {
		Type           string `json:"type"`
		ApplicantID    string `json:"applicantId"`
		ExternalUserID string `json:"externalUserId"`
		ReviewResult   struct {
			ReviewAnswer      string `json:"reviewAnswer"`
			ModerationComment string `json:"moderationComment"`
		} `json:"reviewResult"`
		CreatedAtMs string `json:"createdAtMs"`
	}
	if err := json.Unmarshal(payload, &body); err != nil {
		return nil, fmt.Errorf("sumsub: parse webhook: %w", err)
	}
	if body.ApplicantID == "" {
		return nil, fmt.Errorf("sumsub: webhook carried no applicant id")
	}

	var raw map[string]interface{}
	_ = json.Unmarshal(payload, &raw)

	occurredAt, err := time.Parse("2006-01-02 15:04:05.000", body.CreatedAtMs)
	if err != nil {
		occurredAt = time.Time{}
	}

	return &types.WebhookEvent{
		Kind:        types.WebhookVerification,
		ProviderRef: body.ApplicantID,
		SubjectID:   body.ExternalUserID,
		Status:      mapReviewAnswer(body.ReviewResult.ReviewAnswer),
		Reason:      body.ReviewResult.ModerationComment,
		OccurredAt:  occurredAt,
		Raw:         raw,
	}, nil
}
