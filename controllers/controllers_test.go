package controllers

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/monibridge/core/ent"
	"github.com/monibridge/core/ent/enttest"
	"github.com/monibridge/core/ent/virtualaccount"
	"github.com/monibridge/core/services/audit"
	"github.com/monibridge/core/services/ledger"
	"github.com/monibridge/core/services/registry"
	"github.com/monibridge/core/services/secrets"
	"github.com/monibridge/core/types"

	_ "github.com/mattn/go-sqlite3"
)

// stubBanking answers provider calls with canned values. Signature checks
// pass only for the literal signature "valid"; the real HMAC paths are
// covered by the adapter's own tests.
type stubBanking struct {
	creation    *types.BankAccountDetails
	creationErr error
	event       *types.WebhookEvent
	eventErr    error
}

func (s *stubBanking) Identifier() string                             { return "stubbank" }
func (s *stubBanking) Initialize(config map[string]interface{}) error { return nil }
func (s *stubBanking) IsConfigured() bool                             { return true }
func (s *stubBanking) TestConnection(ctx context.Context) error       { return nil }

func (s *stubBanking) CreateAccount(ctx context.Context, req types.NewBankAccountRequest) (*types.BankAccountDetails, error) {
	if s.creationErr != nil {
		return nil, s.creationErr
	}
	if s.creation == nil {
		return nil, fmt.Errorf("provider unavailable")
	}
	return s.creation, nil
}

func (s *stubBanking) LookupByCorrelationID(ctx context.Context, correlationID string) (*types.BankAccountDetails, error) {
	return nil, nil
}

func (s *stubBanking) PooledBalance(ctx context.Context, currency string) (decimal.Decimal, error) {
	return decimal.Zero, nil
}

func (s *stubBanking) VerifyWebhook(rawBody []byte, signature string, algorithm string) bool {
	return signature == "valid"
}

func (s *stubBanking) ProcessWebhook(payload []byte) (*types.WebhookEvent, error) {
	return s.event, s.eventErr
}

type stubKYC struct {
	event *types.WebhookEvent
}

func (s *stubKYC) Identifier() string                             { return "stubkyc" }
func (s *stubKYC) Initialize(config map[string]interface{}) error { return nil }
func (s *stubKYC) IsConfigured() bool                             { return true }
func (s *stubKYC) TestConnection(ctx context.Context) error       { return nil }

func (s *stubKYC) CreateApplicant(ctx context.Context, req types.ApplicantRequest) (*types.ApplicantResponse, error) {
	return nil, fmt.Errorf("not implemented")
}

func (s *stubKYC) CheckStatus(ctx context.Context, externalUserID string) (*types.VerificationStatus, error) {
	return nil, fmt.Errorf("not implemented")
}

func (s *stubKYC) VerifyWebhook(rawBody []byte, signature string, algorithm string) bool {
	return signature == "valid"
}

func (s *stubKYC) ProcessWebhook(payload []byte) (*types.WebhookEvent, error) {
	return s.event, nil
}

type fixture struct {
	client  *ent.Client
	router  *gin.Engine
	banking *stubBanking
	kyc     *stubKYC
	ledger  *ledger.Service
}

func setup(t *testing.T) *fixture {
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_fk=1", t.Name())
	client := enttest.Open(t, "sqlite3", dsn)
	t.Cleanup(func() { client.Close() })

	// Closing the auditor up front keeps audit writes synchronous so the
	// shared in-memory database has a single writer.
	auditor := audit.NewService(client, nil)
	auditor.Close()

	banking := &stubBanking{}
	kycStub := &stubKYC{}

	reg := registry.NewRegistry()
	reg.Register(banking, types.ProviderCategoryBanking, types.ProviderMeta{DisplayName: "Stub Bank"})
	reg.Register(kycStub, types.ProviderCategoryKYC, types.ProviderMeta{DisplayName: "Stub KYC"})

	store, err := secrets.New("")
	assert.NoError(t, err)

	factory := registry.NewFactory(client, reg, store)
	admin := registry.NewAdmin(factory, auditor)
	ledgerService := ledger.NewService(client, auditor)

	ctrl := NewController(client, ledgerService, factory, admin, reg, auditor)

	router := gin.New()
	router.GET("/health", ctrl.GetStatus)
	router.POST("/v1/accounts", ctrl.CreateAccount)
	router.GET("/v1/accounts/:id/balance", ctrl.GetAccountBalance)
	router.GET("/v1/accounts/:id/transactions", ctrl.GetAccountTransactions)
	router.GET("/v1/providers", ctrl.ListProviders)
	router.PUT("/v1/providers/:identifier/config", ctrl.UpdateProviderConfig)
	router.POST("/v1/providers/:identifier/activate", ctrl.ActivateProvider)
	router.POST("/v1/providers/:identifier/deactivate", ctrl.DeactivateProvider)
	router.POST("/v1/providers/:identifier/test", ctrl.TestProviderConnection)
	router.POST("/v1/webhooks/banking", ctrl.BankingWebhook)
	router.POST("/v1/webhooks/kyc", ctrl.KYCWebhook)

	return &fixture{client: client, router: router, banking: banking, kyc: kycStub, ledger: ledgerService}
}

func decodeResponse(t *testing.T, body []byte) types.Response {
	var response types.Response
	err := json.Unmarshal(body, &response)
	assert.NoError(t, err)
	return response
}

func (f *fixture) newAccount(t *testing.T, status virtualaccount.Status, providerAccountID string) *ent.VirtualAccount {
	create := f.client.VirtualAccount.Create().
		SetUserID(uuid.New()).
		SetCurrency("EUR").
		SetBalance(decimal.Zero).
		SetStatus(status)
	if providerAccountID != "" {
		create = create.SetProviderAccountID(providerAccountID)
	}
	account, err := create.Save(context.Background())
	assert.NoError(t, err)
	return account
}
