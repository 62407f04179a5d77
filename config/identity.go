package config

import (
	"sync"
	"time"

	"github.com/spf13/viper"
)

// IdentityConfiguration defines the identity-verification adapter settings.
type IdentityConfiguration struct {
	RequestTimeout       time.Duration
	ApplicantMaxAttempts int
}

var (
	identityConfigOnce sync.Once
	identityConfig     *IdentityConfiguration
)

// IdentityConfig returns the identity-verification configurations.
func IdentityConfig() *IdentityConfiguration {
	identityConfigOnce.Do(func() {
		viper.SetDefault("IDENTITY_REQUEST_TIMEOUT", 30) // seconds
		viper.SetDefault("IDENTITY_APPLICANT_MAX_ATTEMPTS", 3)

		identityConfig = &IdentityConfiguration{
			RequestTimeout:       time.Duration(viper.GetInt("IDENTITY_REQUEST_TIMEOUT")) * time.Second,
			ApplicantMaxAttempts: viper.GetInt("IDENTITY_APPLICANT_MAX_ATTEMPTS"),
		}
	})
	return identityConfig
}
