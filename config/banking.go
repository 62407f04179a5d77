package config

import (
	"sync"
	"time"

	"github.com/spf13/viper"
)

// BankingConfiguration defines the pooled-account banking protocol settings.
// RequestTimeout bounds every single outbound HTTP call and is distinct from
// CreationPollBudget, which bounds the whole creation-polling loop.
type BankingConfiguration struct {
	RequestTimeout              time.Duration
	TokenExpiryMargin           time.Duration
	CreationPollBudget          time.Duration
	CreationPollInitialInterval time.Duration
	CreationPollMaxInterval     time.Duration
	ReconciliationInterval      time.Duration
	AccountSweepInterval        time.Duration
}

var (
	bankingConfigOnce sync.Once
	bankingConfig     *BankingConfiguration
)

// BankingConfig returns the banking protocol configurations.
func BankingConfig() *BankingConfiguration {
	bankingConfigOnce.Do(func() {
		viper.SetDefault("BANKING_REQUEST_TIMEOUT", 30)         // seconds
		viper.SetDefault("BANKING_TOKEN_EXPIRY_MARGIN", 60)     // seconds
		viper.SetDefault("BANKING_CREATION_POLL_BUDGET", 30)    // seconds
		viper.SetDefault("BANKING_CREATION_POLL_INITIAL", 500)  // milliseconds
		viper.SetDefault("BANKING_CREATION_POLL_MAX", 8)        // seconds
		viper.SetDefault("BANKING_RECONCILIATION_INTERVAL", 15) // minutes
		viper.SetDefault("BANKING_ACCOUNT_SWEEP_INTERVAL", 5)   // minutes

		bankingConfig = &BankingConfiguration{
			RequestTimeout:              time.Duration(viper.GetInt("BANKING_REQUEST_TIMEOUT")) * time.Second,
			TokenExpiryMargin:           time.Duration(viper.GetInt("BANKING_TOKEN_EXPIRY_MARGIN")) * time.Second,
			CreationPollBudget:          time.Duration(viper.GetInt("BANKING_CREATION_POLL_BUDGET")) * time.Second,
			CreationPollInitialInterval: time.Duration(viper.GetInt("BANKING_CREATION_POLL_INITIAL")) * time.Millisecond,
			CreationPollMaxInterval:     time.Duration(viper.GetInt("BANKING_CREATION_POLL_MAX")) * time.Second,
			ReconciliationInterval:      time.Duration(viper.GetInt("BANKING_RECONCILIATION_INTERVAL")) * time.Minute,
			AccountSweepInterval:        time.Duration(viper.GetInt("BANKING_ACCOUNT_SWEEP_INTERVAL")) * time.Minute,
		}
	})
	return bankingConfig
}
