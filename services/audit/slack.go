package audit

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/monibridge/core/utils"
)

// SlackClient posts operator alerts to a Slack incoming webhook.
type SlackClient struct {
	WebhookURL string
}

// NewSlackClient returns a Slack alert channel. An empty webhook URL yields
// a client that silently drops alerts.
func NewSlackClient(webhookURL string) *SlackClient {
	return &SlackClient{WebhookURL: webhookURL}
}

// PostAlert sends one alert as a block message.
func (s *SlackClient) PostAlert(ctx context.Context, subject string, entry Entry) error {
	if s.WebhookURL == "" {
		return nil
	}

	blocks := []map[string]interface{}{
		{
			"type": "section",
			"text": map[string]interface{}{
				"type": "mrkdwn",
				"text": fmt.Sprintf("*%s*", subject),
			},
		},
	}
	if entry.Reason != "" {
		blocks = append(blocks, map[string]interface{}{
			"type": "section",
			"text": map[string]interface{}{
				"type": "mrkdwn",
				"text": fmt.Sprintf("*Reason:* %s", entry.Reason),
			},
		})
	}
	for key, value := range entry.Metadata {
		blocks = append(blocks, map[string]interface{}{
			"type": "section",
			"text": map[string]interface{}{
				"type": "mrkdwn",
				"text": fmt.Sprintf("*%s:* %v", key, value),
			},
		})
	}

	payload, err := json.Marshal(map[string]interface{}{"blocks": blocks})
	if err != nil {
		return fmt.Errorf("error marshaling slack message: %v", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.WebhookURL, bytes.NewBuffer(payload))
	if err != nil {
		return fmt.Errorf("error creating slack request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := utils.GetHTTPClient().Do(req)
	if err != nil {
		return fmt.Errorf("error sending slack notification: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return fmt.Errorf("slack notification failed with status: %d", resp.StatusCode)
	}

	return nil
}
