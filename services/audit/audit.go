package audit

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/monibridge/core/ent"
	"github.com/monibridge/core/ent/auditentry"
	"github.com/monibridge/core/utils/logger"
)

// Audit categories. Every code path that changes a balance or a provider
// configuration writes one of these.
const (
	CategoryBalanceCredit          = "BALANCE_CREDIT"
	CategoryBalanceDebit           = "BALANCE_DEBIT"
	CategoryBalanceMismatch        = "BALANCE_MISMATCH"
	CategoryAccountCreated         = "ACCOUNT_CREATED"
	CategoryAccountCreationTimeout = "ACCOUNT_CREATION_TIMEOUT"
	CategoryAccountCreationFailed  = "ACCOUNT_CREATION_FAILED"
	CategoryAccountClosed          = "ACCOUNT_CLOSED"
	CategoryWebhookReceived        = "WEBHOOK_RECEIVED"
	CategoryWebhookRejected        = "WEBHOOK_REJECTED"
	CategoryProviderActivated      = "PROVIDER_ACTIVATED"
	CategoryProviderDeactivated    = "PROVIDER_DEACTIVATED"
	CategoryProviderConfigUpdated  = "PROVIDER_CONFIG_UPDATED"
	CategoryManualAdjustment       = "MANUAL_ADJUSTMENT"
	CategoryReconciliationRun      = "RECONCILIATION_RUN"
)

// Severity classifies an audit entry. INFO entries are stored only;
// WARNING and above are additionally forwarded to the operator alert channel.
type Severity string

const (
	SeverityInfo     Severity = "info"
	SeverityWarning  Severity = "warning"
	SeverityError    Severity = "error"
	SeverityCritical Severity = "critical"
)

// Entry is one audited event.
type Entry struct {
	Category  string
	Severity  Severity
	AccountID uuid.UUID
	UserID    uuid.UUID
	AdminRef  string
	Before    map[string]interface{}
	After     map[string]interface{}
	Reason    string
	Metadata  map[string]interface{}
}

// Service is the append-only audit log plus the alert fan-out. Writes are
// decoupled from the caller through a bounded queue so an audit failure can
// never unwind the caller's transaction.
type Service struct {
	client  *ent.Client
	alerter *Alerter

	queue     chan Entry
	wg        sync.WaitGroup
	mu        sync.RWMutex
	closed    bool
	closeOnce sync.Once
}

// NewService starts the audit consumer. The alerter may be nil when no
// operator channel is configured.
func NewService(client *ent.Client, alerter *Alerter) *Service {
	s := &Service{
		client:  client,
		alerter: alerter,
		queue:   make(chan Entry, 256),
	}
	s.wg.Add(1)
	go s.run()
	return s
}

// Log enqueues an entry. It never blocks and never returns an error: when
// the queue is saturated or the service is shut down the entry is written
// synchronously instead, and a persistence failure only hits the process log.
func (s *Service) Log(entry Entry) {
	if entry.Severity == "" {
		entry.Severity = SeverityInfo
	}
	s.mu.RLock()
	if s.closed {
		s.mu.RUnlock()
		s.process(entry)
		return
	}
	select {
	case s.queue <- entry:
		s.mu.RUnlock()
	default:
		s.mu.RUnlock()
		s.process(entry)
	}
}

// Close drains the queue and stops the consumer. Log calls that are in
// flight either land in the queue before it closes or fall through to the
// synchronous path; the read lock keeps the send and the close ordered.
func (s *Service) Close() {
	s.closeOnce.Do(func() {
		s.mu.Lock()
		s.closed = true
		close(s.queue)
		s.mu.Unlock()
		s.wg.Wait()
	})
}

func (s *Service) run() {
	defer s.wg.Done()
	for entry := range s.queue {
		s.process(entry)
	}
}

func (s *Service) process(entry Entry) {
	ctx := context.Background()

	create := s.client.AuditEntry.
		Create().
		SetCategory(entry.Category).
		SetSeverity(auditentry.Severity(entry.Severity))

	if entry.AccountID != uuid.Nil {
		create = create.SetAccountID(entry.AccountID)
	}
	if entry.UserID != uuid.Nil {
		create = create.SetUserID(entry.UserID)
	}
	if entry.AdminRef != "" {
		create = create.SetAdminRef(entry.AdminRef)
	}
	if entry.Before != nil {
		create = create.SetBefore(entry.Before)
	}
	if entry.After != nil {
		create = create.SetAfter(entry.After)
	}
	if entry.Reason != "" {
		create = create.SetReason(entry.Reason)
	}
	if entry.Metadata != nil {
		create = create.SetMetadata(entry.Metadata)
	}

	if _, err := create.Save(ctx); err != nil {
		// Fallback channel: the entry must not be silently lost.
		logger.WithFields(logger.Fields{
			"Error":    err.Error(),
			"Category": entry.Category,
			"Severity": string(entry.Severity),
			"Reason":   entry.Reason,
		}).Errorf("audit: failed to persist entry")
	}

	if entry.Severity != SeverityInfo && s.alerter != nil {
		s.alerter.Alert(ctx, entry)
	}
}
