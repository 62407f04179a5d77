package middleware

import (
	"net/http"
	"sync"
	"time"

	ratelimit "github.com/JGLTechnologies/gin-rate-limit"
	"github.com/gin-gonic/gin"

	"github.com/monibridge/core/config"
	u "github.com/monibridge/core/utils"
	"github.com/monibridge/core/utils/logger"
)

var (
	webhookLimiter gin.HandlerFunc
	initOnce       sync.Once
)

// WebhookRateLimitMiddleware caps per-IP webhook deliveries. Providers retry
// rejected deliveries, so the limit only has to stop floods, not dedupe.
func WebhookRateLimitMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		initOnce.Do(func() {
			conf := config.ServerConfig()

			store := ratelimit.InMemoryStore(&ratelimit.InMemoryOptions{
				Rate:  time.Second,
				Limit: uint(conf.RateLimitWebhooks),
			})
			webhookLimiter = ratelimit.RateLimiter(store, &ratelimit.Options{
				ErrorHandler: func(c *gin.Context, info ratelimit.Info) {
					u.APIResponse(
						c,
						http.StatusTooManyRequests,
						"error",
						"Too many requests from this IP address",
						map[string]interface{}{
							"retry_after": time.Until(info.ResetTime).Seconds(),
							"limit":       info.Limit,
						},
					)
					c.Abort()
				},
				KeyFunc: func(c *gin.Context) string {
					return "ip:" + c.ClientIP()
				},
			})
		})

		webhookLimiter(c)
	}
}

// RequestLogMiddleware writes one structured line per request.
func RequestLogMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		logger.WithFields(logger.Fields{
			"Method":   c.Request.Method,
			"Path":     c.Request.URL.Path,
			"Status":   c.Writer.Status(),
			"ClientIP": c.ClientIP(),
			"Latency":  time.Since(start).String(),
		}).Infof("request completed")
	}
}
