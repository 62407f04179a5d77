package email

import (
	"context"
	"fmt"

	"github.com/monibridge/core/config"
	"github.com/monibridge/core/types"
	"github.com/monibridge/core/utils/logger"
)

// NewProvider builds an email adapter by identifier.
func NewProvider(identifier string) (types.EmailProvider, error) {
	switch identifier {
	case "mailgun":
		return NewMailgunProvider(), nil
	case "sendgrid":
		return NewSendGridProvider(), nil
	default:
		return nil, fmt.Errorf("unsupported email provider: %s", identifier)
	}
}

// Service delivers email through a primary provider with a fallback, so an
// outage at one vendor does not silence operator alerts. Both providers are
// configured from the notification environment settings; the provider
// factory can re-initialize them from stored configuration at runtime.
type Service struct {
	primary  types.EmailProvider
	fallback types.EmailProvider
	conf     *config.NotificationConfiguration
}

// NewService builds the delivery chain from the notification configuration.
func NewService() *Service {
	conf := config.NotificationConfig()

	primaryName := conf.EmailProvider
	if primaryName == "" {
		primaryName = "sendgrid"
	}
	primary, err := NewProvider(primaryName)
	if err != nil {
		logger.Errorf("Failed to create primary email provider: %v", nil, err)
		primary = NewSendGridProvider()
	}

	var fallback types.EmailProvider
	if primary.Identifier() == "sendgrid" {
		fallback = NewMailgunProvider()
	} else {
		fallback = NewSendGridProvider()
	}

	cfg := map[string]interface{}{
		"api_key":      conf.EmailAPIKey,
		"domain":       conf.EmailDomain,
		"from_address": conf.EmailFromAddress,
	}
	if err := primary.Initialize(cfg); err != nil {
		logger.Errorf("Failed to initialize primary email provider: %v", nil, err)
	}
	if err := fallback.Initialize(cfg); err != nil {
		logger.Errorf("Failed to initialize fallback email provider: %v", nil, err)
	}

	return &Service{primary: primary, fallback: fallback, conf: conf}
}

// SendEmail delivers through the primary provider, falling back once.
func (s *Service) SendEmail(ctx context.Context, payload types.SendEmailPayload) (types.SendEmailResponse, error) {
	if payload.FromAddress == "" {
		payload.FromAddress = s.conf.EmailFromAddress
	}

	if s.primary.IsConfigured() {
		resp, err := s.primary.SendEmail(ctx, payload)
		if err == nil {
			return resp, nil
		}
		logger.WithFields(logger.Fields{
			"Error":    err.Error(),
			"Provider": s.primary.Identifier(),
		}).Warnf("email: primary provider failed, trying fallback")
	}

	if s.fallback.IsConfigured() {
		return s.fallback.SendEmail(ctx, payload)
	}
	return types.SendEmailResponse{}, fmt.Errorf("email: no configured provider could deliver")
}

// Send satisfies the audit alerter's notifier contract.
func (s *Service) Send(ctx context.Context, recipient, subject, body string) error {
	_, err := s.SendEmail(ctx, types.SendEmailPayload{
		ToAddress: recipient,
		Subject:   subject,
		Body:      body,
	})
	return err
}
