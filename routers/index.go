package routers

import (
	"github.com/gin-gonic/gin"

	"github.com/monibridge/core/controllers"
	"github.com/monibridge/core/routers/middleware"
)

// Routes registers every endpoint on a fresh gin engine.
func Routes(ctrl *controllers.Controller) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.RequestLogMiddleware())

	router.GET("/health", ctrl.GetStatus)

	v1 := router.Group("/v1")

	accounts := v1.Group("/accounts")
	accounts.POST("", ctrl.CreateAccount)
	accounts.GET("/:id/balance", ctrl.GetAccountBalance)
	accounts.GET("/:id/transactions", ctrl.GetAccountTransactions)

	providers := v1.Group("/providers")
	providers.GET("", ctrl.ListProviders)
	providers.PUT("/:identifier/config", ctrl.UpdateProviderConfig)
	providers.POST("/:identifier/activate", ctrl.ActivateProvider)
	providers.POST("/:identifier/deactivate", ctrl.DeactivateProvider)
	providers.POST("/:identifier/test", ctrl.TestProviderConnection)

	webhooks := v1.Group("/webhooks")
	webhooks.Use(middleware.WebhookRateLimitMiddleware())
	webhooks.POST("/banking", ctrl.BankingWebhook)
	webhooks.POST("/kyc", ctrl.KYCWebhook)

	return router
}
