package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/monibridge/core/config"
	"github.com/monibridge/core/controllers"
	"github.com/monibridge/core/routers"
	"github.com/monibridge/core/services/audit"
	"github.com/monibridge/core/services/banking/satchel"
	"github.com/monibridge/core/services/blockchain/etherscan"
	"github.com/monibridge/core/services/email"
	"github.com/monibridge/core/services/kyc/sumsub"
	"github.com/monibridge/core/services/ledger"
	"github.com/monibridge/core/services/rates/openexchange"
	"github.com/monibridge/core/services/registry"
	"github.com/monibridge/core/services/secrets"
	"github.com/monibridge/core/storage"
	"github.com/monibridge/core/tasks"
	"github.com/monibridge/core/types"
	"github.com/monibridge/core/utils"
	"github.com/monibridge/core/utils/logger"
)

func main() {
	if err := config.SetupConfig(); err != nil {
		logger.Fatalf("config SetupConfig: %v", nil, err)
	}

	// Set timezone
	conf := config.ServerConfig()
	loc, _ := time.LoadLocation(conf.Timezone)
	time.Local = loc

	// Connect to the database
	DSN := config.DBConfig()
	if err := storage.DBConnection(DSN); err != nil {
		logger.Fatalf("database DBConnection: %s", nil, err)
	}
	defer storage.GetClient().Close()
	defer utils.CloseHTTPClient()

	// Initialize Redis
	if err := storage.InitializeRedis(); err != nil {
		logger.Fatalf("Redis initialization: %v", nil, err)
	}

	// Secret store. Plain mode is tolerated everywhere except production.
	store, err := secrets.New(config.AuthConfig().MasterSecret)
	if err != nil {
		logger.Fatalf("secret store: %v", nil, err)
	}
	if err := store.GuardProduction(conf.Environment); err != nil {
		logger.Fatalf("secret store: %v", nil, err)
	}

	client := storage.GetClient()

	// Alerting and audit pipeline. The email service doubles as the
	// alert notifier.
	notificationConf := config.NotificationConfig()
	emailService := email.NewService()
	var slack *audit.SlackClient
	if notificationConf.SlackWebhookURL != "" {
		slack = audit.NewSlackClient(notificationConf.SlackWebhookURL)
	}
	alerter := audit.NewAlerter(emailService, slack, notificationConf.AlertRecipient)
	auditor := audit.NewService(client, alerter)
	defer auditor.Close()

	// Provider registry and factory
	reg := registry.NewRegistry()
	reg.Register(satchel.NewClient(), types.ProviderCategoryBanking, types.ProviderMeta{
		DisplayName: "Satchel",
		Website:     "https://satchel.example.com",
	})
	reg.Register(sumsub.NewClient(sumsub.DefaultRetryPolicy()), types.ProviderCategoryKYC, types.ProviderMeta{
		DisplayName: "Sumsub",
		Website:     "https://sumsub.com",
	})
	reg.Register(openexchange.NewClient(), types.ProviderCategoryRates, types.ProviderMeta{
		DisplayName: "Open Exchange Rates",
		Website:     "https://openexchangerates.org",
	})
	reg.Register(etherscan.NewClient(), types.ProviderCategoryBlockchain, types.ProviderMeta{
		DisplayName: "Etherscan",
		Website:     "https://etherscan.io",
	})
	reg.Register(email.NewSendGridProvider(), types.ProviderCategoryEmail, types.ProviderMeta{
		DisplayName: "SendGrid",
		Website:     "https://sendgrid.com",
	})
	reg.Register(email.NewMailgunProvider(), types.ProviderCategoryEmail, types.ProviderMeta{
		DisplayName: "Mailgun",
		Website:     "https://mailgun.com",
	})

	factory := registry.NewFactory(client, reg, store)
	admin := registry.NewAdmin(factory, auditor)
	ledgerService := ledger.NewService(client, auditor)

	// Start cron jobs
	scheduler := tasks.StartCronJobs(tasks.Deps{
		Client:  client,
		Ledger:  ledgerService,
		Factory: factory,
		Auditor: auditor,
	})
	defer scheduler.Stop()

	// Run the server
	ctrl := controllers.NewController(client, ledgerService, factory, admin, reg, auditor)
	router := routers.Routes(ctrl)

	appServer := fmt.Sprintf("%s:%s", conf.Host, conf.Port)
	logger.Infof("Server Running at :%v", nil, appServer)

	go func() {
		if err := router.Run(appServer); err != nil {
			logger.Fatalf("%v", nil, err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Infof("Shutting down", nil)
}
