package email

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/monibridge/core/config"
	"github.com/monibridge/core/types"
)

type stubProvider struct {
	id         string
	configured bool
	err        error
	sent       []types.SendEmailPayload
}

func (s *stubProvider) Identifier() string                          { return s.id }
func (s *stubProvider) Initialize(cfg map[string]interface{}) error { return nil }
func (s *stubProvider) IsConfigured() bool                          { return s.configured }
func (s *stubProvider) TestConnection(ctx context.Context) error    { return nil }
func (s *stubProvider) SendEmail(ctx context.Context, payload types.SendEmailPayload) (types.SendEmailResponse, error) {
	if s.err != nil {
		return types.SendEmailResponse{}, s.err
	}
	s.sent = append(s.sent, payload)
	return types.SendEmailResponse{Id: "msg-1"}, nil
}

func TestNewProvider(t *testing.T) {
	for _, id := range []string{"sendgrid", "mailgun"} {
		p, err := NewProvider(id)
		assert.NoError(t, err)
		assert.Equal(t, id, p.Identifier())
	}
	_, err := NewProvider("unknown")
	assert.Error(t, err)
}

func TestSendEmailFallsBack(t *testing.T) {
	primary := &stubProvider{id: "sendgrid", configured: true, err: fmt.Errorf("vendor outage")}
	fallback := &stubProvider{id: "mailgun", configured: true}
	svc := &Service{primary: primary, fallback: fallback, conf: &config.NotificationConfiguration{
		EmailFromAddress: "no-reply@example.com",
	}}

	err := svc.Send(context.Background(), "ops@example.com", "[CRITICAL] BALANCE_MISMATCH", "details")
	assert.NoError(t, err)
	assert.Len(t, fallback.sent, 1)
	assert.Equal(t, "ops@example.com", fallback.sent[0].ToAddress)
	assert.Equal(t, "no-reply@example.com", fallback.sent[0].FromAddress)
}

func TestSendEmailNoConfiguredProvider(t *testing.T) {
	svc := &Service{
		primary:  &stubProvider{id: "sendgrid"},
		fallback: &stubProvider{id: "mailgun"},
		conf:     &config.NotificationConfiguration{},
	}
	err := svc.Send(context.Background(), "ops@example.com", "subject", "body")
	assert.Error(t, err)
}
