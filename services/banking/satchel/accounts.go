package satchel

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/monibridge/core/types"
	"github.com/monibridge/core/utils/logger"
)

const lookupPageSize = 100

type accountEntry struct {
	CorrelationID   string `json:"correlation_id"`
	AccountID       string `json:"account_id"`
	IBAN            string `json:"iban"`
	BIC             string `json:"bic"`
	BankName        string `json:"bank_name"`
	Currency        string `json:"currency"`
	Status          string `json:"status"`
	RejectionReason string `json:"rejection_reason"`
}

// CreateAccount submits a batch-of-one creation request tagged with a fresh
// correlation id, then polls the account list with increasing backoff until
// Satchel assigns an IBAN, rejects the request, or the poll budget runs out.
// A timed-out creation is not a failure: the account can still appear later
// and is picked up by the background sweep through LookupByCorrelationID.
func (c *Client) CreateAccount(ctx context.Context, req types.NewBankAccountRequest) (*types.BankAccountDetails, error) {
	if !c.IsConfigured() {
		return nil, fmt.Errorf("satchel: adapter is not configured")
	}

	name := SanitizeName(req.FirstName + " " + req.LastName)
	if name == "" {
		return nil, fmt.Errorf("satchel: %w", types.ErrUnrepresentableName)
	}

	correlationID := uuid.NewString()
	payload := map[string]interface{}{
		"accounts": []map[string]interface{}{
			{
				"correlation_id": correlationID,
				"name":           name,
				"address":        Sanitize(req.Address),
				"city":           Sanitize(req.City),
				"post_code":      Sanitize(req.PostCode),
				"country_code":   req.CountryCode,
				"currency":       req.Currency,
			},
		},
	}

	client, err := c.authorized(ctx)
	if err != nil {
		return nil, err
	}
	res, err := client.POST("/v1/accounts/batch").Body().AsJSON(payload).Send()
	if err != nil {
		return nil, fmt.Errorf("satchel: creation request failed: %w", err)
	}
	if res.Status().IsError() {
		var body struct {
			Reason string `json:"reason"`
		}
		_ = res.Body().AsJSON(&body)
		if res.Status().Code() < 500 {
			// Explicit rejection of the payload itself.
			return &types.BankAccountDetails{
				State:           types.CreationFailed,
				CorrelationID:   correlationID,
				Currency:        req.Currency,
				RejectionReason: body.Reason,
			}, nil
		}
		return nil, fmt.Errorf("satchel: creation request returned %d", res.Status().Code())
	}

	return c.pollCreation(ctx, correlationID, req.Currency)
}

// pollCreation drives REQUESTED through PENDING to a terminal state within
// the configured budget. Intervals double from the initial value up to the
// cap; the budget bounds the loop as a whole, independent of the per-request
// timeout on each poll.
func (c *Client) pollCreation(ctx context.Context, correlationID, currency string) (*types.BankAccountDetails, error) {
	deadline := time.Now().Add(c.conf.CreationPollBudget)
	interval := c.conf.CreationPollInitialInterval

	for {
		details, err := c.LookupByCorrelationID(ctx, correlationID)
		if err != nil {
			logger.WithFields(logger.Fields{
				"Error":         err.Error(),
				"CorrelationID": correlationID,
			}).Warnf("satchel: creation poll failed, retrying")
		} else if details != nil {
			switch details.State {
			case types.CreationActive, types.CreationFailed:
				return details, nil
			}
		}

		remaining := time.Until(deadline)
		if remaining <= 0 {
			return &types.BankAccountDetails{
				State:         types.CreationTimedOut,
				CorrelationID: correlationID,
				Currency:      currency,
			}, nil
		}

		wait := interval
		if wait > remaining {
			wait = remaining
		}
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(wait):
		}

		interval *= 2
		if interval > c.conf.CreationPollMaxInterval {
			interval = c.conf.CreationPollMaxInterval
		}
	}
}

// LookupByCorrelationID pages through the account list searching for the
// correlation id. A nil result means Satchel has not materialized the
// account yet.
func (c *Client) LookupByCorrelationID(ctx context.Context, correlationID string) (*types.BankAccountDetails, error) {
	client, err := c.authorized(ctx)
	if err != nil {
		return nil, err
	}

	for page := 1; ; page++ {
		res, err := client.GET("/v1/accounts").Query().SetRawString(fmt.Sprintf("page=%d&per_page=%d", page, lookupPageSize)).Send()
		if err != nil {
			return nil, fmt.Errorf("satchel: account list failed: %w", err)
		}
		if res.Status().IsError() {
			return nil, fmt.Errorf("satchel: account list returned %d", res.Status().Code())
		}

		var body struct {
			Accounts []accountEntry `json:"accounts"`
			HasMore  bool           `json:"has_more"`
		}
		if err := res.Body().AsJSON(&body); err != nil {
			return nil, fmt.Errorf("satchel: parse account list: %w", err)
		}

		for _, entry := range body.Accounts {
			if entry.CorrelationID == correlationID {
				return normalizeEntry(entry), nil
			}
		}
		if !body.HasMore {
			return nil, nil
		}
	}
}

func normalizeEntry(entry accountEntry) *types.BankAccountDetails {
	details := &types.BankAccountDetails{
		State:             types.CreationPending,
		CorrelationID:     entry.CorrelationID,
		ProviderAccountID: entry.AccountID,
		IBAN:              entry.IBAN,
		BIC:               entry.BIC,
		BankName:          entry.BankName,
		Currency:          entry.Currency,
		RejectionReason:   entry.RejectionReason,
	}
	switch {
	case entry.Status == "rejected":
		details.State = types.CreationFailed
	case entry.IBAN != "":
		details.State = types.CreationActive
	}
	return details
}

// PooledBalance returns Satchel's total for the pooled account in one
// currency. It feeds reconciliation only; per-account balances are owned by
// the local ledger.
func (c *Client) PooledBalance(ctx context.Context, currency string) (decimal.Decimal, error) {
	client, err := c.authorized(ctx)
	if err != nil {
		return decimal.Zero, err
	}

	res, err := client.GET("/v1/balance").Query().SetRawString("currency=" + currency).Send()
	if err != nil {
		return decimal.Zero, fmt.Errorf("satchel: balance request failed: %w", err)
	}
	if res.Status().IsError() {
		return decimal.Zero, fmt.Errorf("satchel: balance request returned %d", res.Status().Code())
	}

	var body struct {
		Currency string `json:"currency"`
		Total    string `json:"total"`
	}
	if err := res.Body().AsJSON(&body); err != nil {
		return decimal.Zero, fmt.Errorf("satchel: parse balance response: %w", err)
	}
	total, err := decimal.NewFromString(body.Total)
	if err != nil {
		return decimal.Zero, fmt.Errorf("satchel: malformed pooled total %q: %w", body.Total, err)
	}
	return total, nil
}
