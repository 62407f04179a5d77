package email

import (
	"context"
	"fmt"
	"sync"

	mailgunv3 "github.com/mailgun/mailgun-go/v3"

	"github.com/monibridge/core/types"
	"github.com/monibridge/core/utils/logger"
)

// MailgunProvider implements EmailProvider for Mailgun.
type MailgunProvider struct {
	mu          sync.Mutex
	client      mailgunv3.Mailgun
	fromAddress string
}

// NewMailgunProvider returns an unconfigured Mailgun adapter.
func NewMailgunProvider() *MailgunProvider {
	return &MailgunProvider{}
}

// Identifier implements types.Provider.
func (m *MailgunProvider) Identifier() string { return "mailgun" }

// Initialize implements types.Provider.
func (m *MailgunProvider) Initialize(cfg map[string]interface{}) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	domain, _ := cfg["domain"].(string)
	apiKey, _ := cfg["api_key"].(string)
	if v, ok := cfg["from_address"].(string); ok {
		m.fromAddress = v
	}
	if domain == "" || apiKey == "" {
		m.client = nil
		return nil
	}
	m.client = mailgunv3.NewMailgun(domain, apiKey)
	return nil
}

// IsConfigured implements types.Provider.
func (m *MailgunProvider) IsConfigured() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.client != nil
}

// TestConnection implements types.Provider.
func (m *MailgunProvider) TestConnection(ctx context.Context) error {
	if !m.IsConfigured() {
		return fmt.Errorf("mailgun: adapter is not configured")
	}
	return nil
}

// SendEmail sends an email via Mailgun.
func (m *MailgunProvider) SendEmail(ctx context.Context, payload types.SendEmailPayload) (types.SendEmailResponse, error) {
	m.mu.Lock()
	client, fromAddress := m.client, m.fromAddress
	m.mu.Unlock()

	if client == nil {
		return types.SendEmailResponse{}, fmt.Errorf("mailgun: adapter is not configured")
	}
	if payload.FromAddress == "" {
		payload.FromAddress = fromAddress
	}

	message := client.NewMessage(
		payload.FromAddress,
		payload.Subject,
		payload.Body,
		payload.ToAddress,
	)
	if payload.HTMLBody != "" {
		message.SetHtml(payload.HTMLBody)
	}

	response, id, err := client.Send(ctx, message)
	if err != nil {
		logger.Errorf("Failed to send email via Mailgun: %v", nil, err)
		return types.SendEmailResponse{}, fmt.Errorf("mailgun send error: %w", err)
	}

	return types.SendEmailResponse{
		Id:       id,
		Response: response,
	}, nil
}
