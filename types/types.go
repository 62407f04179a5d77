package types

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// ProviderCategory classifies an external provider by the capability it offers.
type ProviderCategory string

const (
	ProviderCategoryBanking    ProviderCategory = "banking"
	ProviderCategoryKYC        ProviderCategory = "kyc"
	ProviderCategoryRates      ProviderCategory = "rates"
	ProviderCategoryEmail      ProviderCategory = "email"
	ProviderCategoryBlockchain ProviderCategory = "blockchain"
)

// ProviderMeta carries display metadata for a registered provider adapter.
type ProviderMeta struct {
	DisplayName string
	Website     string
}

// Provider is the contract every adapter implements regardless of category.
// Initialize receives the decrypted credential fields merged with the
// non-secret settings of the active ProviderConfig row. IsConfigured is the
// authoritative gate: a garbled credential must make it return false rather
// than letting the adapter treat garbage as a valid secret.
type Provider interface {
	Identifier() string
	Initialize(config map[string]interface{}) error
	IsConfigured() bool
	TestConnection(ctx context.Context) error
}

// AccountCreationState tracks the asynchronous account-creation protocol
// against the pooled-account banking provider.
type AccountCreationState string

const (
	CreationRequested AccountCreationState = "requested"
	CreationPending   AccountCreationState = "pending"
	CreationActive    AccountCreationState = "active"
	CreationTimedOut  AccountCreationState = "timed_out"
	CreationFailed    AccountCreationState = "failed"
)

// NewBankAccountRequest is the input to banking account creation. Free-text
// fields are sanitized by the adapter before they reach the wire.
type NewBankAccountRequest struct {
	FirstName   string
	LastName    string
	Address     string
	City        string
	PostCode    string
	CountryCode string
	Currency    string
}

// BankAccountDetails is the adapter-normalized view of a provider-side account.
type BankAccountDetails struct {
	State             AccountCreationState
	CorrelationID     string
	ProviderAccountID string
	IBAN              string
	BIC               string
	BankName          string
	Currency          string
	RejectionReason   string
}

// BankingProvider is the capability interface for pooled-account banking.
type BankingProvider interface {
	Provider
	CreateAccount(ctx context.Context, req NewBankAccountRequest) (*BankAccountDetails, error)
	LookupByCorrelationID(ctx context.Context, correlationID string) (*BankAccountDetails, error)
	PooledBalance(ctx context.Context, currency string) (decimal.Decimal, error)
	VerifyWebhook(rawBody []byte, signature string, algorithm string) bool
	ProcessWebhook(payload []byte) (*WebhookEvent, error)
}

// ApplicantRequest is the input to identity-verification applicant creation.
type ApplicantRequest struct {
	ExternalUserID string
	LevelName      string
	Email          string
}

// ApplicantResponse reports the provider-side applicant reference.
type ApplicantResponse struct {
	ApplicantID    string
	ExternalUserID string
}

// VerificationStatus is the adapter-normalized verification state.
type VerificationStatus struct {
	Status string
	Reason string
}

// KYCProvider is the capability interface for identity verification.
type KYCProvider interface {
	Provider
	CreateApplicant(ctx context.Context, req ApplicantRequest) (*ApplicantResponse, error)
	CheckStatus(ctx context.Context, externalUserID string) (*VerificationStatus, error)
	VerifyWebhook(rawBody []byte, signature string, algorithm string) bool
	ProcessWebhook(payload []byte) (*WebhookEvent, error)
}

// RateProvider is the capability interface for exchange-rate sources.
type RateProvider interface {
	Provider
	FetchRate(ctx context.Context, base, quote string) (decimal.Decimal, error)
}

// SendEmailPayload is the content of an outbound email.
type SendEmailPayload struct {
	FromAddress string
	ToAddress   string
	Subject     string
	Body        string
	HTMLBody    string
}

// SendEmailResponse is the result of an email delivery attempt.
type SendEmailResponse struct {
	Id       string
	Response string
}

// EmailProvider is the capability interface for transactional email.
type EmailProvider interface {
	Provider
	SendEmail(ctx context.Context, payload SendEmailPayload) (SendEmailResponse, error)
}

// ChainTransaction is the adapter-normalized view of an on-chain transaction.
type ChainTransaction struct {
	Hash          string
	Status        string
	Confirmations int64
}

// BlockchainProvider is the capability interface for chain-data sources.
type BlockchainProvider interface {
	Provider
	GetTransactionStatus(ctx context.Context, txHash string) (*ChainTransaction, error)
	IsValidAddress(address string) bool
}

// Response is the struct for an API response
type Response struct {
	Status  string      `json:"status"`
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
}

// ErrorData is the struct for error data i.e when Status is "error"
type ErrorData struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// WebhookEventKind distinguishes the business meaning of a provider callback.
type WebhookEventKind string

const (
	WebhookDeposit      WebhookEventKind = "deposit"
	WebhookAccount      WebhookEventKind = "account"
	WebhookVerification WebhookEventKind = "verification"
)

// WebhookEvent is the uniform shape every provider webhook is normalized
// into before it reaches the business-status mapper. Downstream logic never
// sees provider-specific field names.
type WebhookEvent struct {
	Kind             WebhookEventKind
	ProviderRef      string // provider transaction or verification id
	SubjectID        string // correlation id, account id or external user id
	Status           string
	Reason           string
	Amount           decimal.Decimal
	Currency         string
	CounterpartyName string
	CounterpartyIBAN string
	OccurredAt       time.Time
	Raw              map[string]interface{}
}
