package audit

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/monibridge/core/ent/auditentry"
	"github.com/monibridge/core/ent/enttest"

	_ "github.com/mattn/go-sqlite3"
)

type recordingNotifier struct {
	mu       sync.Mutex
	subjects []string
	bodies   []string
	err      error
}

func (n *recordingNotifier) Send(ctx context.Context, recipient, subject, body string) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.subjects = append(n.subjects, subject)
	n.bodies = append(n.bodies, body)
	return n.err
}

func (n *recordingNotifier) sent() []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]string(nil), n.subjects...)
}

func TestLogPersistsEntries(t *testing.T) {
	client := enttest.Open(t, "sqlite3", "file:audit?mode=memory&cache=shared&_fk=1")
	defer client.Close()
	ctx := context.Background()

	svc := NewService(client, nil)

	accountID := uuid.New()
	svc.Log(Entry{
		Category:  CategoryBalanceCredit,
		AccountID: accountID,
		After:     map[string]interface{}{"balance": "100"},
		Metadata:  map[string]interface{}{"Amount": "100"},
	})
	svc.Log(Entry{
		Category: CategoryReconciliationRun,
		Severity: SeverityInfo,
		Reason:   "totals matched",
	})
	svc.Close()

	entries := client.AuditEntry.Query().AllX(ctx)
	assert.Len(t, entries, 2)

	credit := client.AuditEntry.Query().
		Where(auditentry.CategoryEQ(CategoryBalanceCredit)).
		OnlyX(ctx)
	// Empty severity defaults to info.
	assert.Equal(t, auditentry.SeverityInfo, credit.Severity)
	assert.Equal(t, accountID, credit.AccountID)
	assert.Equal(t, "100", credit.After["balance"])
}

func TestLogAfterCloseIsSynchronous(t *testing.T) {
	client := enttest.Open(t, "sqlite3", "file:auditclosed?mode=memory&cache=shared&_fk=1")
	defer client.Close()
	ctx := context.Background()

	svc := NewService(client, nil)
	svc.Close()

	// Must neither panic nor drop the entry.
	svc.Log(Entry{Category: CategoryWebhookReceived})
	assert.Equal(t, 1, client.AuditEntry.Query().CountX(ctx))
}

func TestLogRacingCloseIsSafe(t *testing.T) {
	client := enttest.Open(t, "sqlite3", "file:auditrace?mode=memory&cache=shared&_fk=1")
	defer client.Close()

	// A logger that passed the closed check must never hit a closed channel.
	// Repeated rounds widen the window between the check and the send.
	for round := 0; round < 25; round++ {
		svc := NewService(client, nil)

		var wg sync.WaitGroup
		start := make(chan struct{})
		for i := 0; i < 8; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				<-start
				svc.Log(Entry{Category: CategoryWebhookReceived})
			}()
		}

		close(start)
		svc.Close()
		wg.Wait()

		// Late loggers still work after shutdown completes.
		svc.Log(Entry{Category: CategoryWebhookReceived})
	}
}

func TestAlertRouting(t *testing.T) {
	client := enttest.Open(t, "sqlite3", "file:auditalerts?mode=memory&cache=shared&_fk=1")
	defer client.Close()

	notifier := &recordingNotifier{}
	svc := NewService(client, NewAlerter(notifier, nil, "ops@example.com"))

	svc.Log(Entry{Category: CategoryBalanceCredit, Severity: SeverityInfo})
	svc.Log(Entry{Category: CategoryBalanceMismatch, Severity: SeverityCritical, Reason: "pooled total diverged"})
	svc.Log(Entry{Category: CategoryManualAdjustment, Severity: SeverityWarning})
	svc.Close()

	subjects := notifier.sent()
	// INFO entries are stored but never alerted.
	assert.Len(t, subjects, 2)
	assert.Contains(t, subjects, "[CRITICAL] BALANCE_MISMATCH")
	assert.Contains(t, subjects, "[WARNING] MANUAL_ADJUSTMENT")
}

func TestAlertFailureDoesNotBlockPersistence(t *testing.T) {
	client := enttest.Open(t, "sqlite3", "file:auditfail?mode=memory&cache=shared&_fk=1")
	defer client.Close()
	ctx := context.Background()

	notifier := &recordingNotifier{err: context.DeadlineExceeded}
	svc := NewService(client, NewAlerter(notifier, nil, "ops@example.com"))

	svc.Log(Entry{Category: CategoryBalanceMismatch, Severity: SeverityCritical})
	svc.Close()

	assert.Equal(t, 1, client.AuditEntry.Query().CountX(ctx))
	assert.Len(t, notifier.sent(), 1)
}

func TestLogNeverBlocks(t *testing.T) {
	client := enttest.Open(t, "sqlite3", "file:auditburst?mode=memory&cache=shared&_fk=1")
	defer client.Close()

	svc := NewService(client, nil)
	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 1000; i++ {
			svc.Log(Entry{Category: CategoryWebhookReceived})
		}
	}()

	select {
	case <-done:
	case <-time.After(10 * time.Second):
		t.Fatal("audit Log blocked under burst load")
	}
	svc.Close()
}
