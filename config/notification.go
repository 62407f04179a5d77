package config

import (
	"github.com/spf13/viper"
)

// NotificationConfiguration defines the email and operator-alert settings.
type NotificationConfiguration struct {
	EmailDomain      string
	EmailAPIKey      string
	EmailFromAddress string
	EmailProvider    string
	AlertRecipient   string
	AlertsEnabled    bool
	SlackWebhookURL  string
}

// NotificationConfig sets the email and alert configurations
func NotificationConfig() (config *NotificationConfiguration) {
	viper.SetDefault("EMAIL_DOMAIN", "api.eu.mailgun.net")
	viper.SetDefault("EMAIL_FROM_ADDRESS", "Monibridge <no-reply@monibridge.io>")
	viper.SetDefault("EMAIL_PROVIDER", "sendgrid")
	viper.SetDefault("ALERTS_ENABLED", true)

	return &NotificationConfiguration{
		EmailDomain:      viper.GetString("EMAIL_DOMAIN"),
		EmailAPIKey:      viper.GetString("EMAIL_API_KEY"),
		EmailFromAddress: viper.GetString("EMAIL_FROM_ADDRESS"),
		EmailProvider:    viper.GetString("EMAIL_PROVIDER"),
		AlertRecipient:   viper.GetString("ALERT_RECIPIENT"),
		AlertsEnabled:    viper.GetBool("ALERTS_ENABLED"),
		SlackWebhookURL:  viper.GetString("SLACK_WEBHOOK_URL"),
	}
}
