package tasks

import (
	"context"
	"time"

	"github.com/go-co-op/gocron"

	"github.com/monibridge/core/config"
	"github.com/monibridge/core/ent"
	"github.com/monibridge/core/services/audit"
	"github.com/monibridge/core/services/ledger"
	"github.com/monibridge/core/services/registry"
	"github.com/monibridge/core/utils/logger"
)

// Deps carries everything the background jobs need. Passing it explicitly
// keeps the scheduler constructible in tests with isolated instances.
type Deps struct {
	Client  *ent.Client
	Ledger  *ledger.Service
	Factory *registry.Factory
	Auditor *audit.Service
}

// StartCronJobs schedules the reconciliation and account-sweep loops and
// starts the scheduler asynchronously. The returned scheduler is stopped by
// the caller on shutdown.
func StartCronJobs(deps Deps) *gocron.Scheduler {
	// Use the system's local timezone instead of hardcoded UTC to prevent timezone conflicts
	scheduler := gocron.NewScheduler(time.Local)
	conf := config.BankingConfig()

	_, err := scheduler.Every(int(conf.ReconciliationInterval.Minutes())).Minutes().Do(func() {
		if err := ReconcileBalances(context.Background(), deps); err != nil {
			logger.Errorf("StartCronJobs for ReconcileBalances: %v", nil, err)
		}
	})
	if err != nil {
		logger.Errorf("StartCronJobs for ReconcileBalances: %v", nil, err)
	}

	_, err = scheduler.Every(int(conf.AccountSweepInterval.Minutes())).Minutes().Do(func() {
		if err := SweepPendingAccounts(context.Background(), deps); err != nil {
			logger.Errorf("StartCronJobs for SweepPendingAccounts: %v", nil, err)
		}
	})
	if err != nil {
		logger.Errorf("StartCronJobs for SweepPendingAccounts: %v", nil, err)
	}

	scheduler.StartAsync()
	return scheduler
}
