package email

import (
	"context"
	"fmt"
	"sync"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"github.com/monibridge/core/types"
	"github.com/monibridge/core/utils/logger"
)

// SendGridProvider implements EmailProvider for SendGrid.
type SendGridProvider struct {
	mu          sync.Mutex
	apiKey      string
	host        string
	fromAddress string
}

// NewSendGridProvider returns an unconfigured SendGrid adapter.
func NewSendGridProvider() *SendGridProvider {
	return &SendGridProvider{}
}

// Identifier implements types.Provider.
func (s *SendGridProvider) Identifier() string { return "sendgrid" }

// Initialize implements types.Provider.
func (s *SendGridProvider) Initialize(cfg map[string]interface{}) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if v, ok := cfg["api_key"].(string); ok {
		s.apiKey = v
	}
	if v, ok := cfg["endpoint_url"].(string); ok {
		s.host = v
	}
	if v, ok := cfg["from_address"].(string); ok {
		s.fromAddress = v
	}
	if s.host == "" {
		s.host = "https://api.sendgrid.com"
	}
	return nil
}

// IsConfigured implements types.Provider.
func (s *SendGridProvider) IsConfigured() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.apiKey != ""
}

// TestConnection implements types.Provider. SendGrid has no ping endpoint,
// so having credentials is the best available check.
func (s *SendGridProvider) TestConnection(ctx context.Context) error {
	if !s.IsConfigured() {
		return fmt.Errorf("sendgrid: adapter is not configured")
	}
	return nil
}

// SendEmail sends an email via SendGrid.
func (s *SendGridProvider) SendEmail(ctx context.Context, payload types.SendEmailPayload) (types.SendEmailResponse, error) {
	s.mu.Lock()
	apiKey, host, fromAddress := s.apiKey, s.host, s.fromAddress
	s.mu.Unlock()

	if payload.FromAddress == "" {
		payload.FromAddress = fromAddress
	}

	from := mail.NewEmail("", payload.FromAddress)
	to := mail.NewEmail("", payload.ToAddress)

	m := mail.NewV3Mail()
	m.Subject = payload.Subject
	m.SetFrom(from)
	if payload.Body != "" {
		m.AddContent(mail.NewContent("text/plain", payload.Body))
	}
	if payload.HTMLBody != "" {
		m.AddContent(mail.NewContent("text/html", payload.HTMLBody))
	}

	p := mail.NewPersonalization()
	p.AddTos(to)
	m.AddPersonalizations(p)

	request := sendgrid.GetRequest(apiKey, "/v3/mail/send", host)
	request.Method = "POST"
	request.Body = mail.GetRequestBody(m)
	response, err := sendgrid.API(request)
	if err != nil {
		logger.Errorf("Failed to send email via SendGrid: %v", nil, err)
		return types.SendEmailResponse{}, fmt.Errorf("sendgrid send error: %w", err)
	}
	if response.StatusCode >= 400 {
		return types.SendEmailResponse{}, fmt.Errorf("sendgrid send returned %d", response.StatusCode)
	}

	var id string
	if ids := response.Headers["X-Message-Id"]; len(ids) > 0 {
		id = ids[0]
	}
	return types.SendEmailResponse{Id: id, Response: id}, nil
}
