package tasks

import (
	"context"
	"fmt"
	"time"

	"github.com/monibridge/core/ent/virtualaccount"
	"github.com/monibridge/core/services/audit"
	"github.com/monibridge/core/types"
	"github.com/monibridge/core/utils/logger"
)

// SweepPendingAccounts re-polls the provider for accounts whose creation
// never completed in the foreground: a timed-out creation may still
// materialize minutes later, and this sweep is what eventually promotes it.
func SweepPendingAccounts(ctx context.Context, deps Deps) error {
	adapter, err := deps.Factory.GetActiveProvider(ctx, types.ProviderCategoryBanking)
	if err != nil {
		return fmt.Errorf("sweep: resolve banking provider: %w", err)
	}
	banking, ok := adapter.(types.BankingProvider)
	if !ok {
		return fmt.Errorf("sweep: %s is not a banking provider", adapter.Identifier())
	}

	pending, err := deps.Client.VirtualAccount.Query().
		Where(virtualaccount.StatusEQ(virtualaccount.StatusPending)).
		All(ctx)
	if err != nil {
		return fmt.Errorf("sweep: load pending accounts: %w", err)
	}

	for _, account := range pending {
		correlationID, _ := account.Metadata["correlation_id"].(string)
		if correlationID == "" {
			continue
		}

		details, err := banking.LookupByCorrelationID(ctx, correlationID)
		if err != nil {
			logger.WithFields(logger.Fields{
				"Error":         err.Error(),
				"AccountID":     account.ID.String(),
				"CorrelationID": correlationID,
			}).Warnf("sweep: provider lookup failed")
			continue
		}
		if details == nil {
			continue
		}

		switch details.State {
		case types.CreationActive:
			_, err = account.Update().
				SetStatus(virtualaccount.StatusActive).
				SetProviderAccountID(details.ProviderAccountID).
				SetIban(details.IBAN).
				SetBic(details.BIC).
				SetBankName(details.BankName).
				SetLastBalanceUpdate(time.Now()).
				Save(ctx)
			if err != nil {
				logger.WithFields(logger.Fields{
					"Error":     err.Error(),
					"AccountID": account.ID.String(),
				}).Errorf("sweep: failed to promote account")
				continue
			}
			deps.Auditor.Log(audit.Entry{
				Category:  audit.CategoryAccountCreated,
				Severity:  audit.SeverityInfo,
				AccountID: account.ID,
				Reason:    "account promoted by background sweep",
				Metadata: map[string]interface{}{
					"CorrelationID": correlationID,
					"IBAN":          details.IBAN,
				},
			})

		case types.CreationFailed:
			_, err = account.Update().
				SetStatus(virtualaccount.StatusFailed).
				Save(ctx)
			if err != nil {
				logger.WithFields(logger.Fields{
					"Error":     err.Error(),
					"AccountID": account.ID.String(),
				}).Errorf("sweep: failed to mark account failed")
				continue
			}
			deps.Auditor.Log(audit.Entry{
				Category:  audit.CategoryAccountCreationFailed,
				Severity:  audit.SeverityError,
				AccountID: account.ID,
				Reason:    details.RejectionReason,
				Metadata:  map[string]interface{}{"CorrelationID": correlationID},
			})
		}
	}

	return nil
}
