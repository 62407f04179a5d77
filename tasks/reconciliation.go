package tasks

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/monibridge/core/ent"
	"github.com/monibridge/core/ent/virtualaccount"
	"github.com/monibridge/core/services/audit"
	"github.com/monibridge/core/types"
	"github.com/monibridge/core/utils/logger"
)

// ReconcileBalances compares the locally-held ACTIVE balances per currency
// against the banking provider's pooled total. A non-zero difference is never
// auto-corrected: it produces one CRITICAL audit entry per currency carrying
// both totals and the per-account breakdown, and the alert pipeline takes it
// from there. Matching totals leave an INFO trail so a silent scheduler is
// distinguishable from a healthy one.
func ReconcileBalances(ctx context.Context, deps Deps) error {
	adapter, err := deps.Factory.GetActiveProvider(ctx, types.ProviderCategoryBanking)
	if err != nil {
		return fmt.Errorf("reconciliation: resolve banking provider: %w", err)
	}
	banking, ok := adapter.(types.BankingProvider)
	if !ok {
		return fmt.Errorf("reconciliation: %s is not a banking provider", adapter.Identifier())
	}

	accounts, err := deps.Client.VirtualAccount.Query().
		Where(virtualaccount.StatusEQ(virtualaccount.StatusActive)).
		All(ctx)
	if err != nil {
		return fmt.Errorf("reconciliation: load accounts: %w", err)
	}

	byCurrency := make(map[string][]*ent.VirtualAccount)
	for _, account := range accounts {
		byCurrency[account.Currency] = append(byCurrency[account.Currency], account)
	}

	for currency, group := range byCurrency {
		local := decimal.Zero
		breakdown := make([]map[string]interface{}, 0, len(group))
		for _, account := range group {
			local = local.Add(account.Balance)
			breakdown = append(breakdown, map[string]interface{}{
				"AccountID": account.ID.String(),
				"Balance":   account.Balance.String(),
			})
		}

		pooled, err := banking.PooledBalance(ctx, currency)
		if err != nil {
			logger.WithFields(logger.Fields{
				"Error":    err.Error(),
				"Currency": currency,
			}).Errorf("reconciliation: pooled balance fetch failed")
			continue
		}

		diff := pooled.Sub(local)
		if !diff.IsZero() {
			deps.Auditor.Log(audit.Entry{
				Category: audit.CategoryBalanceMismatch,
				Severity: audit.SeverityCritical,
				Reason:   fmt.Sprintf("pooled total diverged from ledger for %s", currency),
				Metadata: map[string]interface{}{
					"Currency":    currency,
					"LocalTotal":  local.String(),
					"PooledTotal": pooled.String(),
					"Diff":        diff.String(),
					"Accounts":    breakdown,
				},
			})
			continue
		}

		deps.Auditor.Log(audit.Entry{
			Category: audit.CategoryReconciliationRun,
			Severity: audit.SeverityInfo,
			Reason:   "totals matched",
			Metadata: map[string]interface{}{
				"Currency": currency,
				"Total":    local.String(),
				"Accounts": len(group),
			},
		})
	}

	return nil
}
