package config

import (
	"sync"

	"github.com/spf13/viper"
)

// ServerConfiguration defines the HTTP server and process-wide settings.
type ServerConfiguration struct {
	Debug                   bool
	Host                    string
	Port                    string
	Timezone                string
	Environment             string
	SentryDSN               string
	ServerURL               string
	AllowUnverifiedWebhooks bool
	RateLimitWebhooks       int
}

var (
	serverConfigOnce sync.Once
	serverConfig     *ServerConfiguration
)

// ServerConfig returns the server configurations.
func ServerConfig() *ServerConfiguration {
	serverConfigOnce.Do(func() {
		viper.SetDefault("DEBUG", false)
		viper.SetDefault("HOST", "0.0.0.0")
		viper.SetDefault("PORT", "8000")
		viper.SetDefault("TIMEZONE", "UTC")
		viper.SetDefault("ENVIRONMENT", "local")
		viper.SetDefault("ALLOW_UNVERIFIED_WEBHOOKS", false)
		viper.SetDefault("RATE_LIMIT_WEBHOOKS", 50)

		serverConfig = &ServerConfiguration{
			Debug:                   viper.GetBool("DEBUG"),
			Host:                    viper.GetString("HOST"),
			Port:                    viper.GetString("PORT"),
			Timezone:                viper.GetString("TIMEZONE"),
			Environment:             viper.GetString("ENVIRONMENT"),
			SentryDSN:               viper.GetString("SENTRY_DSN"),
			ServerURL:               viper.GetString("SERVER_URL"),
			AllowUnverifiedWebhooks: viper.GetBool("ALLOW_UNVERIFIED_WEBHOOKS"),
			RateLimitWebhooks:       viper.GetInt("RATE_LIMIT_WEBHOOKS"),
		}
	})
	return serverConfig
}
