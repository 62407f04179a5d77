package config

import (
	"sync"

	"github.com/spf13/viper"
)

// AuthConfiguration defines the secret-handling settings. MasterSecret is the
// server-held secret the secret store derives its encryption key from. When
// empty the store runs in a reversible plain mode that is only acceptable in
// development; secrets.GuardProduction enforces that at startup.
type AuthConfiguration struct {
	MasterSecret string
}

var (
	authConfigOnce sync.Once
	authConfig     *AuthConfiguration
)

// AuthConfig returns the secret-handling configurations.
func AuthConfig() *AuthConfiguration {
	authConfigOnce.Do(func() {
		authConfig = &AuthConfiguration{
			MasterSecret: viper.GetString("MASTER_SECRET"),
		}
	})
	return authConfig
}
