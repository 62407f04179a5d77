package sumsub

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	fastshot "github.com/opus-domini/fast-shot"

	"github.com/monibridge/core/config"
	kycErrors "github.com/monibridge/core/services/kyc/errors"
	"github.com/monibridge/core/types"
	"github.com/monibridge/core/utils/logger"
)

// RetryPolicy bounds the retry-by-renaming strategy for applicant creation:
// when Sumsub reports a duplicate external user id, the next attempt runs
// under a mutated id until MaxAttempts is reached. Suffix returns the
// mutation for a given attempt; attempt 0 is always the unmodified id.
type RetryPolicy struct {
	MaxAttempts int
	Suffix      func(attempt int) string
}

// DefaultRetryPolicy appends "-2", "-3", ... on conflict, bounded by the
// configured attempt budget.
func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{
		MaxAttempts: config.IdentityConfig().ApplicantMaxAttempts,
		Suffix: func(attempt int) string {
			if attempt == 0 {
				return ""
			}
			return fmt.Sprintf("-%d", attempt+1)
		},
	}
}

// Client is the Sumsub identity-verification adapter. Requests are signed
// per call with the app secret; webhook digests use a separate secret.
type Client struct {
	conf  *config.IdentityConfiguration
	retry RetryPolicy

	mu            sync.Mutex
	endpointURL   string
	appToken      string
	secretKey     string
	webhookSecret string
}

// NewClient returns an unconfigured adapter with the given retry policy.
func NewClient(retry RetryPolicy) *Client {
	return &Client{conf: config.IdentityConfig(), retry: retry}
}

// Identifier implements types.Provider.
func (c *Client) Identifier() string { return "sumsub" }

// Initialize implements types.Provider.
func (c *Client) Initialize(cfg map[string]interface{}) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.endpointURL = stringValue(cfg, "endpoint_url")
	c.appToken = stringValue(cfg, "app_token")
	c.secretKey = stringValue(cfg, "secret_key")
	c.webhookSecret = stringValue(cfg, "webhook_secret")
	return nil
}

// IsConfigured implements types.Provider.
func (c *Client) IsConfigured() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.endpointURL != "" && c.appToken != "" && c.secretKey != ""
}

// TestConnection implements types.Provider by probing an authenticated
// endpoint; a 401 or 403 means the credentials are bad.
func (c *Client) TestConnection(ctx context.Context) error {
	if !c.IsConfigured() {
		return fmt.Errorf("sumsub: adapter is not configured")
	}
	res, err := c.send("GET", "/resources/status/api", nil)
	if err != nil {
		return kycErrors.ErrProviderUnreachable{Err: err}
	}
	if res.Status().Code() == http.StatusUnauthorized || res.Status().Code() == http.StatusForbidden {
		return kycErrors.ErrProviderResponse{Err: fmt.Errorf("credentials rejected with %d", res.Status().Code())}
	}
	return nil
}

// CreateApplicant registers an applicant under the request's external user
// id, retrying under mutated ids on duplicate conflicts per the policy.
func (c *Client) CreateApplicant(ctx context.Context, req types.ApplicantRequest) (*types.ApplicantResponse, error) {
	if !c.IsConfigured() {
		return nil, fmt.Errorf("sumsub: adapter is not configured")
	}

	attempts := c.retry.MaxAttempts
	if attempts < 1 {
		attempts = 1
	}

	for attempt := 0; attempt < attempts; attempt++ {
		externalID := req.ExternalUserID + c.retry.Suffix(attempt)

		body, err := json.Marshal(map[string]interface{}{
			"externalUserId": externalID,
			"email":          req.Email,
		})
		if err != nil {
			return nil, fmt.Errorf("sumsub: encode applicant: %w", err)
		}

		res, err := c.send("POST", "/resources/applicants?levelName="+req.LevelName, body)
		if err != nil {
			return nil, kycErrors.ErrProviderUnreachable{Err: err}
		}

		if res.Status().Code() == http.StatusConflict {
			logger.WithFields(logger.Fields{
				"ExternalUserID": externalID,
				"Attempt":        attempt + 1,
			}).Warnf("sumsub: duplicate applicant, retrying under mutated id")
			continue
		}
		if res.Status().IsError() {
			return nil, kycErrors.ErrProviderResponse{Err: fmt.Errorf("applicant creation returned %d", res.Status().Code())}
		}

		var created struct {
			ID string `json:"id"`
		}
		if err := res.Body().AsJSON(&created); err != nil {
			return nil, fmt.Errorf("sumsub: parse applicant response: %w", err)
		}
		return &types.ApplicantResponse{
			ApplicantID:    created.ID,
			ExternalUserID: externalID,
		}, nil
	}

	return nil, kycErrors.ErrDuplicateApplicant{ExternalUserID: req.ExternalUserID}
}

// CheckStatus fetches the current review state for an external user id.
func (c *Client) CheckStatus(ctx context.Context, externalUserID string) (*types.VerificationStatus, error) {
	if !c.IsConfigured() {
		return nil, fmt.Errorf("sumsub: adapter is not configured")
	}

	res, err := c.send("GET", "/resources/applicants/-;externalUserId="+externalUserID+"/one", nil)
	if err != nil {
		return nil, kycErrors.ErrProviderUnreachable{Err: err}
	}
	if res.Status().Code() == http.StatusNotFound {
		return nil, kycErrors.ErrApplicantNotFound{ExternalUserID: externalUserID}
	}
	if res.Status().IsError() {
		return nil, kycErrors.ErrProviderResponse{Err: fmt.Errorf("status lookup returned %d", res.Status().Code())}
	}

	var body struct {
		Review struct {
			ReviewResult struct {
				ReviewAnswer      string `json:"reviewAnswer"`
				ModerationComment string `json:"moderationComment"`
			} `json:"reviewResult"`
		} `json:"review"`
	}
	if err := res.Body().AsJSON(&body); err != nil {
		return nil, fmt.Errorf("sumsub: parse status response: %w", err)
	}

	return &types.VerificationStatus{
		Status: mapReviewAnswer(body.Review.ReviewResult.ReviewAnswer),
		Reason: body.Review.ReviewResult.ModerationComment,
	}, nil
}

// send issues one signed request. The signature covers the timestamp, the
// method, the path including query, and the exact body bytes.
func (c *Client) send(method, path string, body []byte) (*fastshot.Response, error) {
	c.mu.Lock()
	endpointURL, appToken, secretKey := c.endpointURL, c.appToken, c.secretKey
	c.mu.Unlock()

	ts := strconv.FormatInt(time.Now().Unix(), 10)
	mac := hmac.New(sha256.New, []byte(secretKey))
	mac.Write([]byte(ts + method + path))
	mac.Write(body)

	client := fastshot.NewClient(endpointURL).
		Config().SetTimeout(c.conf.RequestTimeout).
		Header().Add("Content-Type", "application/json").
		Header().Add("X-App-Token", appToken).
		Header().Add("X-App-Access-Ts", ts).
		Header().Add("X-App-Access-Sig", hex.EncodeToString(mac.Sum(nil))).
		Build()

	reqPath, rawQuery, _ := strings.Cut(path, "?")
	switch method {
	case "POST":
		return client.POST(reqPath).Query().SetRawString(rawQuery).Body().AsString(string(body)).Send()
	default:
		return client.GET(reqPath).Query().SetRawString(rawQuery).Send()
	}
}

func mapReviewAnswer(answer string) string {
	switch answer {
	case "GREEN":
		return "approved"
	case "RED":
		return "rejected"
	default:
		return "pending"
	}
}

func stringValue(cfg map[string]interface{}, key string) string {
	if v, ok := cfg[key].(string); ok {
		return v
	}
	return ""
}
