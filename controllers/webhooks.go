package controllers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/monibridge/core/ent"
	"github.com/monibridge/core/ent/virtualaccount"
	"github.com/monibridge/core/services/audit"
	"github.com/monibridge/core/services/ledger"
	"github.com/monibridge/core/types"
	u "github.com/monibridge/core/utils"
	"github.com/monibridge/core/utils/logger"
)

// BankingWebhook controller receives provider callbacks for deposits and
// account lifecycle changes. The signature is checked over the raw body
// before any parsing; replayed deliveries are absorbed by the ledger's
// idempotency and still answer 200 so the provider stops retrying.
func (ctrl *Controller) BankingWebhook(ctx *gin.Context) {
	rawBody, err := io.ReadAll(ctx.Request.Body)
	if err != nil {
		u.APIResponse(ctx, http.StatusBadRequest, "error", "Failed to read request body", nil)
		return
	}

	banking, err := ctrl.bankingProvider(ctx)
	if err != nil {
		u.APIResponse(ctx, http.StatusServiceUnavailable, "error", "No banking provider available", nil)
		return
	}

	signature := ctx.GetHeader("X-Signature")
	algorithm := ctx.GetHeader("X-Signature-Alg")
	if !banking.VerifyWebhook(rawBody, signature, algorithm) {
		ctrl.auditor.Log(audit.Entry{
			Category: audit.CategoryWebhookRejected,
			Severity: audit.SeverityWarning,
			Reason:   "banking webhook signature verification failed",
			Metadata: map[string]interface{}{
				"Provider":  banking.Identifier(),
				"Algorithm": algorithm,
			},
		})
		u.APIResponse(ctx, http.StatusUnauthorized, "error", "Invalid webhook signature", nil)
		return
	}

	event, err := banking.ProcessWebhook(rawBody)
	if err != nil {
		logger.Errorf("BankingWebhook: malformed payload: %v", nil, err)
		u.APIResponse(ctx, http.StatusBadRequest, "error", "Malformed webhook payload", nil)
		return
	}

	switch event.Kind {
	case types.WebhookDeposit:
		ctrl.applyDeposit(ctx, event)
	case types.WebhookAccount:
		ctrl.applyAccountEvent(ctx, event)
	default:
		u.APIResponse(ctx, http.StatusBadRequest, "error", "Unsupported webhook event", nil)
	}
}

func (ctrl *Controller) applyDeposit(ctx *gin.Context, event *types.WebhookEvent) {
	account, err := ctrl.findAccount(ctx, event.SubjectID)
	if err != nil {
		logger.Errorf("BankingWebhook: account lookup failed: %v", nil, err)
		u.APIResponse(ctx, http.StatusInternalServerError, "error", "Failed to process deposit", nil)
		return
	}
	if account == nil {
		// Acknowledge so the provider stops retrying; the audit trail keeps
		// the orphaned deposit visible to operators.
		ctrl.auditor.Log(audit.Entry{
			Category: audit.CategoryWebhookReceived,
			Severity: audit.SeverityWarning,
			Reason:   "deposit for unknown account",
			Metadata: map[string]interface{}{
				"SubjectID":   event.SubjectID,
				"ProviderRef": event.ProviderRef,
				"Amount":      event.Amount.String(),
				"Currency":    event.Currency,
			},
		})
		u.APIResponse(ctx, http.StatusOK, "success", "Deposit acknowledged", nil)
		return
	}

	_, txn, err := ctrl.ledger.Credit(ctx, account.ID, event.Amount, event.ProviderRef, "bank deposit", &ledger.Counterparty{
		Name: event.CounterpartyName,
		IBAN: event.CounterpartyIBAN,
	})
	if err != nil {
		logger.WithFields(logger.Fields{
			"Error":       err.Error(),
			"AccountID":   account.ID.String(),
			"ProviderRef": event.ProviderRef,
		}).Errorf("BankingWebhook: credit failed")
		u.APIResponse(ctx, http.StatusInternalServerError, "error", "Failed to apply deposit", nil)
		return
	}

	ctrl.auditor.Log(audit.Entry{
		Category:  audit.CategoryWebhookReceived,
		Severity:  audit.SeverityInfo,
		AccountID: account.ID,
		Metadata: map[string]interface{}{
			"Kind":        string(event.Kind),
			"ProviderRef": event.ProviderRef,
			"Amount":      event.Amount.String(),
			"Currency":    event.Currency,
		},
	})
	u.APIResponse(ctx, http.StatusOK, "success", "Deposit applied", map[string]interface{}{
		"transactionId": txn.ID.String(),
	})
}

func (ctrl *Controller) applyAccountEvent(ctx *gin.Context, event *types.WebhookEvent) {
	account, err := ctrl.findAccount(ctx, event.SubjectID)
	if err != nil {
		logger.Errorf("BankingWebhook: account lookup failed: %v", nil, err)
		u.APIResponse(ctx, http.StatusInternalServerError, "error", "Failed to process account event", nil)
		return
	}
	if account == nil {
		u.APIResponse(ctx, http.StatusOK, "success", "Account event acknowledged", nil)
		return
	}

	if status, ok := accountStatusFromEvent(event.Status); ok && account.Status != status {
		update := account.Update().SetStatus(status)
		if status == virtualaccount.StatusActive && event.ProviderRef != "" {
			update = update.SetProviderAccountID(event.ProviderRef)
		}
		if _, err := update.Save(ctx); err != nil {
			logger.Errorf("BankingWebhook: status update failed: %v", nil, err)
			u.APIResponse(ctx, http.StatusInternalServerError, "error", "Failed to update account", nil)
			return
		}
		if status == virtualaccount.StatusClosed {
			ctrl.auditor.Log(audit.Entry{
				Category:  audit.CategoryAccountClosed,
				Severity:  audit.SeverityWarning,
				AccountID: account.ID,
				Reason:    event.Reason,
			})
		}
	}

	ctrl.auditor.Log(audit.Entry{
		Category:  audit.CategoryWebhookReceived,
		Severity:  audit.SeverityInfo,
		AccountID: account.ID,
		Metadata: map[string]interface{}{
			"Kind":   string(event.Kind),
			"Status": event.Status,
		},
	})
	u.APIResponse(ctx, http.StatusOK, "success", "Account event applied", nil)
}

// KYCWebhook controller receives verification decisions from the identity
// provider. Decisions are audited; there is no local applicant state to
// mutate, downstream consumers read the audit stream.
func (ctrl *Controller) KYCWebhook(ctx *gin.Context) {
	rawBody, err := io.ReadAll(ctx.Request.Body)
	if err != nil {
		u.APIResponse(ctx, http.StatusBadRequest, "error", "Failed to read request body", nil)
		return
	}

	adapter, err := ctrl.factory.GetActiveProvider(ctx, types.ProviderCategoryKYC)
	if err != nil {
		u.APIResponse(ctx, http.StatusServiceUnavailable, "error", "No KYC provider available", nil)
		return
	}
	kyc, ok := adapter.(types.KYCProvider)
	if !ok {
		u.APIResponse(ctx, http.StatusServiceUnavailable, "error", "No KYC provider available", nil)
		return
	}

	signature := ctx.GetHeader("X-Payload-Digest")
	algorithm := ctx.GetHeader("X-Payload-Digest-Alg")
	if !kyc.VerifyWebhook(rawBody, signature, algorithm) {
		ctrl.auditor.Log(audit.Entry{
			Category: audit.CategoryWebhookRejected,
			Severity: audit.SeverityWarning,
			Reason:   "kyc webhook signature verification failed",
			Metadata: map[string]interface{}{
				"Provider":  kyc.Identifier(),
				"Algorithm": algorithm,
			},
		})
		u.APIResponse(ctx, http.StatusUnauthorized, "error", "Invalid webhook signature", nil)
		return
	}

	event, err := kyc.ProcessWebhook(rawBody)
	if err != nil {
		logger.Errorf("KYCWebhook: malformed payload: %v", nil, err)
		u.APIResponse(ctx, http.StatusBadRequest, "error", "Malformed webhook payload", nil)
		return
	}

	ctrl.auditor.Log(audit.Entry{
		Category: audit.CategoryWebhookReceived,
		Severity: audit.SeverityInfo,
		Reason:   event.Reason,
		Metadata: map[string]interface{}{
			"Kind":        string(event.Kind),
			"ProviderRef": event.ProviderRef,
			"SubjectID":   event.SubjectID,
			"Status":      event.Status,
		},
	})
	u.APIResponse(ctx, http.StatusOK, "success", "Verification event received", nil)
}

// findAccount resolves a webhook subject to a local account, first by the
// provider-assigned account id, then by the correlation id still held in
// metadata for accounts that never got one.
func (ctrl *Controller) findAccount(ctx *gin.Context, subjectID string) (*ent.VirtualAccount, error) {
	if subjectID == "" {
		return nil, nil
	}

	account, err := ctrl.client.VirtualAccount.Query().
		Where(virtualaccount.ProviderAccountID(subjectID)).
		Only(ctx)
	if err == nil {
		return account, nil
	}
	if !ent.IsNotFound(err) {
		return nil, err
	}

	pending, err := ctrl.client.VirtualAccount.Query().
		Where(virtualaccount.StatusEQ(virtualaccount.StatusPending)).
		All(ctx)
	if err != nil {
		return nil, err
	}
	for _, candidate := range pending {
		if correlationID, _ := candidate.Metadata["correlation_id"].(string); correlationID == subjectID {
			return candidate, nil
		}
	}
	return nil, nil
}

func accountStatusFromEvent(status string) (virtualaccount.Status, bool) {
	switch status {
	case "active":
		return virtualaccount.StatusActive, true
	case "suspended":
		return virtualaccount.StatusSuspended, true
	case "closed":
		return virtualaccount.StatusClosed, true
	case "rejected", "failed":
		return virtualaccount.StatusFailed, true
	default:
		return "", false
	}
}
