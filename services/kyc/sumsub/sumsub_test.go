package sumsub

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"crypto/sha512"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/jarcoal/httpmock"
	"github.com/stretchr/testify/assert"

	kycErrors "github.com/monibridge/core/services/kyc/errors"
	"github.com/monibridge/core/types"
)

const testBaseURL = "https://api.sumsub.test"

func testClient(t *testing.T, retry RetryPolicy) *Client {
	t.Helper()
	c := NewClient(retry)
	err := c.Initialize(map[string]interface{}{
		"endpoint_url":   testBaseURL,
		"app_token":      "app-token",
		"secret_key":     "app-secret",
		"webhook_secret": "wh-secret",
	})
	assert.NoError(t, err)
	return c
}

func suffixRetry(max int) RetryPolicy {
	return RetryPolicy{
		MaxAttempts: max,
		Suffix: func(attempt int) string {
			if attempt == 0 {
				return ""
			}
			return fmt.Sprintf("-%d", attempt+1)
		},
	}
}

func TestCreateApplicantRetriesUnderMutatedID(t *testing.T) {
	httpmock.Activate()
	defer httpmock.DeactivateAndReset()

	var seen []string
	httpmock.RegisterResponder("POST", testBaseURL+"/resources/applicants",
		func(req *http.Request) (*http.Response, error) {
			var body struct {
				ExternalUserID string `json:"externalUserId"`
			}
			_ = json.NewDecoder(req.Body).Decode(&body)
			seen = append(seen, body.ExternalUserID)
			if len(seen) < 3 {
				return httpmock.NewStringResponse(409, `{"description":"duplicate"}`), nil
			}
			return httpmock.NewJsonResponse(201, map[string]interface{}{"id": "applicant-9"})
		})

	c := testClient(t, suffixRetry(3))
	resp, err := c.CreateApplicant(context.Background(), types.ApplicantRequest{
		ExternalUserID: "user-1",
		LevelName:      "basic-kyc",
		Email:          "user@example.com",
	})
	assert.NoError(t, err)
	assert.Equal(t, "applicant-9", resp.ApplicantID)
	assert.Equal(t, []string{"user-1", "user-1-2", "user-1-3"}, seen)
	assert.Equal(t, "user-1-3", resp.ExternalUserID)
}

func TestCreateApplicantTerminatesAfterMaxAttempts(t *testing.T) {
	httpmock.Activate()
	defer httpmock.DeactivateAndReset()

	calls := 0
	httpmock.RegisterResponder("POST", testBaseURL+"/resources/applicants",
		func(req *http.Request) (*http.Response, error) {
			calls++
			return httpmock.NewStringResponse(409, `{"description":"duplicate"}`), nil
		})

	c := testClient(t, suffixRetry(3))
	_, err := c.CreateApplicant(context.Background(), types.ApplicantRequest{
		ExternalUserID: "user-1",
		LevelName:      "basic-kyc",
	})
	assert.ErrorAs(t, err, &kycErrors.ErrDuplicateApplicant{})
	assert.Equal(t, 3, calls)
}

func TestCreateApplicantSignsRequests(t *testing.T) {
	httpmock.Activate()
	defer httpmock.DeactivateAndReset()

	httpmock.RegisterResponder("POST", testBaseURL+"/resources/applicants",
		func(req *http.Request) (*http.Response, error) {
			assert.Equal(t, "app-token", req.Header.Get("X-App-Token"))
			assert.NotEmpty(t, req.Header.Get("X-App-Access-Ts"))
			assert.NotEmpty(t, req.Header.Get("X-App-Access-Sig"))
			return httpmock.NewJsonResponse(201, map[string]interface{}{"id": "applicant-1"})
		})

	c := testClient(t, suffixRetry(1))
	_, err := c.CreateApplicant(context.Background(), types.ApplicantRequest{
		ExternalUserID: "user-1",
		LevelName:      "basic-kyc",
	})
	assert.NoError(t, err)
}

func TestCheckStatus(t *testing.T) {
	httpmock.Activate()
	defer httpmock.DeactivateAndReset()

	httpmock.RegisterResponder("GET", testBaseURL+"/resources/applicants/-;externalUserId=user-1/one",
		httpmock.NewJsonResponderOrPanic(200, map[string]interface{}{
			"review": map[string]interface{}{
				"reviewResult": map[string]interface{}{
					"reviewAnswer":      "RED",
					"moderationComment": "document unreadable",
				},
			},
		}))
	httpmock.RegisterResponder("GET", testBaseURL+"/resources/applicants/-;externalUserId=user-2/one",
		httpmock.NewStringResponder(404, ""))

	c := testClient(t, suffixRetry(1))
	status, err := c.CheckStatus(context.Background(), "user-1")
	assert.NoError(t, err)
	assert.Equal(t, "rejected", status.Status)
	assert.Equal(t, "document unreadable", status.Reason)

	_, err = c.CheckStatus(context.Background(), "user-2")
	assert.ErrorAs(t, err, &kycErrors.ErrApplicantNotFound{})
}

func digest256(secret string, body []byte) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	return hex.EncodeToString(mac.Sum(nil))
}

func digest512(secret string, body []byte) string {
	mac := hmac.New(sha512.New, []byte(secret))
	mac.Write(body)
	return hex.EncodeToString(mac.Sum(nil))
}

func TestVerifyWebhook(t *testing.T) {
	c := testClient(t, suffixRetry(1))
	body := []byte(`{"type":"applicantReviewed","applicantId":"a-1"}`)

	assert.True(t, c.VerifyWebhook(body, digest256("wh-secret", body), ""))
	assert.True(t, c.VerifyWebhook(body, digest256("wh-secret", body), "HMAC_SHA256_HEX"))
	assert.True(t, c.VerifyWebhook(body, digest512("wh-secret", body), "HMAC_SHA512_HEX"))

	signature := digest256("wh-secret", body)
	for i := range body {
		mutated := append([]byte(nil), body...)
		mutated[i] ^= 0x01
		assert.False(t, c.VerifyWebhook(mutated, signature, ""))
	}

	assert.False(t, c.VerifyWebhook(body, digest256("wrong", body), ""))
	assert.False(t, c.VerifyWebhook(body, digest256("wh-secret", body), "HMAC_MD5_HEX"))
}

func TestProcessWebhook(t *testing.T) {
	c := testClient(t, suffixRetry(1))

	event, err := c.ProcessWebhook([]byte(`{
		"type": "applicantReviewed",
		"applicantId": "applicant-9",
		"externalUserId": "user-1",
		"reviewResult": {"reviewAnswer": "GREEN"},
		"createdAtMs": "2026-08-01 10:30:00.000"
	}`))
	assert.NoError(t, err)
	assert.Equal(t, types.WebhookVerification, event.Kind)
	assert.Equal(t, "applicant-9", event.ProviderRef)
	assert.Equal(t, "user-1", event.SubjectID)
	assert.Equal(t, "approved", event.Status)
	assert.False(t, event.OccurredAt.IsZero())

	event, err = c.ProcessWebhook([]byte(`{
		"type": "applicantReviewed",
		"applicantId": "applicant-9",
		"externalUserId": "user-1",
		"reviewResult": {"reviewAnswer": "RED", "moderationComment": "mismatch"}
	}`))
	assert.NoError(t, err)
	assert.Equal(t, "rejected", event.Status)
	assert.Equal(t, "mismatch", event.Reason)

	_, err = c.ProcessWebhook([]byte(`{"type":"applicantReviewed"}`))
	assert.Error(t, err)
}
