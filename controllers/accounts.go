package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/monibridge/core/ent"
	"github.com/monibridge/core/ent/virtualaccount"
	"github.com/monibridge/core/services/audit"
	"github.com/monibridge/core/services/ledger"
	"github.com/monibridge/core/types"
	u "github.com/monibridge/core/utils"
	"github.com/monibridge/core/utils/logger"
)

// NewAccountPayload is the request body for virtual account creation.
type NewAccountPayload struct {
	UserID      string `json:"userId" binding:"required,uuid"`
	FirstName   string `json:"firstName" binding:"required"`
	LastName    string `json:"lastName" binding:"required"`
	Address     string `json:"address"`
	City        string `json:"city"`
	PostCode    string `json:"postCode"`
	CountryCode string `json:"countryCode" binding:"required"`
	Currency    string `json:"currency" binding:"required,min=3,max=10"`
}

// CreateAccount controller provisions a virtual account with the active
// banking provider and persists the local row. A creation that outlives the
// polling budget is stored as pending and left to the background sweep.
func (ctrl *Controller) CreateAccount(ctx *gin.Context) {
	var payload NewAccountPayload
	if err := ctx.ShouldBindJSON(&payload); err != nil {
		u.APIResponse(ctx, http.StatusBadRequest, "error",
			"Failed to validate payload", u.GetErrorData(err))
		return
	}

	banking, err := ctrl.bankingProvider(ctx)
	if err != nil {
		u.APIResponse(ctx, http.StatusServiceUnavailable, "error", "No banking provider available", nil)
		return
	}

	details, err := banking.CreateAccount(ctx, types.NewBankAccountRequest{
		FirstName:   payload.FirstName,
		LastName:    payload.LastName,
		Address:     payload.Address,
		City:        payload.City,
		PostCode:    payload.PostCode,
		CountryCode: payload.CountryCode,
		Currency:    payload.Currency,
	})
	if err != nil {
		if errors.Is(err, types.ErrUnrepresentableName) {
			u.APIResponse(ctx, http.StatusBadRequest, "error",
				"Account holder name contains no representable characters", nil)
			return
		}
		logger.Errorf("CreateAccount: provider call failed: %v", nil, err)
		u.APIResponse(ctx, http.StatusBadGateway, "error", "Failed to create account with provider", nil)
		return
	}

	userID := uuid.MustParse(payload.UserID)
	create := ctrl.client.VirtualAccount.Create().
		SetUserID(userID).
		SetCurrency(payload.Currency).
		SetBalance(decimal.Zero).
		SetMetadata(map[string]interface{}{"correlation_id": details.CorrelationID})

	switch details.State {
	case types.CreationActive:
		account, err := create.
			SetStatus(virtualaccount.StatusActive).
			SetProviderAccountID(details.ProviderAccountID).
			SetIban(details.IBAN).
			SetBic(details.BIC).
			SetBankName(details.BankName).
			SetLastBalanceUpdate(time.Now()).
			Save(ctx)
		if err != nil {
			logger.Errorf("CreateAccount: failed to persist account: %v", nil, err)
			u.APIResponse(ctx, http.StatusInternalServerError, "error", "Failed to persist account", nil)
			return
		}
		ctrl.auditor.Log(audit.Entry{
			Category:  audit.CategoryAccountCreated,
			Severity:  audit.SeverityInfo,
			AccountID: account.ID,
			UserID:    userID,
			Metadata: map[string]interface{}{
				"CorrelationID": details.CorrelationID,
				"IBAN":          details.IBAN,
			},
		})
		u.APIResponse(ctx, http.StatusCreated, "success", "Account created", accountResponse(account))

	case types.CreationFailed:
		account, err := create.
			SetStatus(virtualaccount.StatusFailed).
			Save(ctx)
		if err != nil {
			logger.Errorf("CreateAccount: failed to persist rejection: %v", nil, err)
			u.APIResponse(ctx, http.StatusInternalServerError, "error", "Failed to persist account", nil)
			return
		}
		ctrl.auditor.Log(audit.Entry{
			Category:  audit.CategoryAccountCreationFailed,
			Severity:  audit.SeverityError,
			AccountID: account.ID,
			UserID:    userID,
			Reason:    details.RejectionReason,
			Metadata:  map[string]interface{}{"CorrelationID": details.CorrelationID},
		})
		u.APIResponse(ctx, http.StatusUnprocessableEntity, "error", "Account creation rejected", map[string]interface{}{
			"id":     account.ID.String(),
			"reason": details.RejectionReason,
		})

	default:
		// Requested, pending or timed out: the sweep owns it from here.
		account, err := create.
			SetStatus(virtualaccount.StatusPending).
			Save(ctx)
		if err != nil {
			logger.Errorf("CreateAccount: failed to persist pending account: %v", nil, err)
			u.APIResponse(ctx, http.StatusInternalServerError, "error", "Failed to persist account", nil)
			return
		}
		if details.State == types.CreationTimedOut {
			ctrl.auditor.Log(audit.Entry{
				Category:  audit.CategoryAccountCreationTimeout,
				Severity:  audit.SeverityWarning,
				AccountID: account.ID,
				UserID:    userID,
				Reason:    "provider did not report a terminal state within the polling budget",
				Metadata:  map[string]interface{}{"CorrelationID": details.CorrelationID},
			})
		}
		u.APIResponse(ctx, http.StatusAccepted, "success", "Account creation pending", accountResponse(account))
	}
}

// GetAccountBalance controller returns the locally-tracked balance
func (ctrl *Controller) GetAccountBalance(ctx *gin.Context) {
	accountID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		u.APIResponse(ctx, http.StatusBadRequest, "error", "Invalid account id", nil)
		return
	}

	account, err := ctrl.client.VirtualAccount.Get(ctx, accountID)
	if err != nil {
		if ent.IsNotFound(err) {
			u.APIResponse(ctx, http.StatusNotFound, "error", "Account not found", nil)
			return
		}
		logger.Errorf("GetAccountBalance: %v", nil, err)
		u.APIResponse(ctx, http.StatusInternalServerError, "error", "Failed to fetch account", nil)
		return
	}

	u.APIResponse(ctx, http.StatusOK, "success", "OK", map[string]interface{}{
		"id":       account.ID.String(),
		"balance":  account.Balance.String(),
		"currency": account.Currency,
		"status":   string(account.Status),
	})
}

// GetAccountTransactions controller returns the newest-first ledger history
func (ctrl *Controller) GetAccountTransactions(ctx *gin.Context) {
	accountID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		u.APIResponse(ctx, http.StatusBadRequest, "error", "Invalid account id", nil)
		return
	}

	limit := 0
	if raw := ctx.Query("limit"); raw != "" {
		limit, err = strconv.Atoi(raw)
		if err != nil || limit < 0 {
			u.APIResponse(ctx, http.StatusBadRequest, "error", "Invalid limit", nil)
			return
		}
	}

	transactions, err := ctrl.ledger.GetHistory(ctx, accountID, limit)
	if err != nil {
		if errors.Is(err, ledger.ErrAccountNotFound) {
			u.APIResponse(ctx, http.StatusNotFound, "error", "Account not found", nil)
			return
		}
		logger.Errorf("GetAccountTransactions: %v", nil, err)
		u.APIResponse(ctx, http.StatusInternalServerError, "error", "Failed to fetch transactions", nil)
		return
	}

	items := make([]map[string]interface{}, 0, len(transactions))
	for _, txn := range transactions {
		items = append(items, map[string]interface{}{
			"id":           txn.ID.String(),
			"type":         string(txn.Type),
			"amount":       txn.Amount.String(),
			"currency":     txn.Currency,
			"externalTxId": txn.ExternalTxID,
			"reference":    txn.Reference,
			"processedAt":  txn.ProcessedAt,
		})
	}

	u.APIResponse(ctx, http.StatusOK, "success", "OK", items)
}

func accountResponse(account *ent.VirtualAccount) map[string]interface{} {
	return map[string]interface{}{
		"id":       account.ID.String(),
		"status":   string(account.Status),
		"currency": account.Currency,
		"iban":     account.Iban,
		"bic":      account.Bic,
		"bankName": account.BankName,
	}
}

func (ctrl *Controller) bankingProvider(ctx *gin.Context) (types.BankingProvider, error) {
	adapter, err := ctrl.factory.GetActiveProvider(ctx, types.ProviderCategoryBanking)
	if err != nil {
		return nil, err
	}
	banking, ok := adapter.(types.BankingProvider)
	if !ok {
		return nil, types.ErrProviderNotConfigured{Identifier: adapter.Identifier()}
	}
	return banking, nil
}
