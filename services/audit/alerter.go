package audit

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/monibridge/core/utils/logger"
)

// Notifier is the outbound notification capability the alerter depends on.
// The email service satisfies it; tests substitute their own.
type Notifier interface {
	Send(ctx context.Context, recipient, subject, body string) error
}

// Alerter forwards WARNING and above audit entries to the operator
// notification channels. Delivery failures are logged and swallowed: an
// alert must never fail the operation that raised it.
type Alerter struct {
	notifier  Notifier
	slack     *SlackClient
	recipient string
}

// NewAlerter wires the operator channels. Either notifier or slack may be
// nil when that channel is not configured.
func NewAlerter(notifier Notifier, slack *SlackClient, recipient string) *Alerter {
	return &Alerter{
		notifier:  notifier,
		slack:     slack,
		recipient: recipient,
	}
}

// Alert dispatches one entry to every configured channel.
func (a *Alerter) Alert(ctx context.Context, entry Entry) {
	subject := fmt.Sprintf("[%s] %s", strings.ToUpper(string(entry.Severity)), entry.Category)
	body := a.renderBody(entry)

	if a.notifier != nil && a.recipient != "" {
		if err := a.notifier.Send(ctx, a.recipient, subject, body); err != nil {
			logger.WithFields(logger.Fields{
				"Error":    err.Error(),
				"Category": entry.Category,
			}).Errorf("alerter: email delivery failed")
		}
	}

	if a.slack != nil {
		if err := a.slack.PostAlert(ctx, subject, entry); err != nil {
			logger.WithFields(logger.Fields{
				"Error":    err.Error(),
				"Category": entry.Category,
			}).Errorf("alerter: slack delivery failed")
		}
	}
}

func (a *Alerter) renderBody(entry Entry) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Category: %s\nSeverity: %s\n", entry.Category, entry.Severity)
	if entry.AccountID != uuid.Nil {
		fmt.Fprintf(&sb, "Account: %s\n", entry.AccountID)
	}
	if entry.Reason != "" {
		fmt.Fprintf(&sb, "Reason: %s\n", entry.Reason)
	}
	for key, value := range entry.Metadata {
		fmt.Fprintf(&sb, "%s: %v\n", key, value)
	}
	return sb.String()
}
