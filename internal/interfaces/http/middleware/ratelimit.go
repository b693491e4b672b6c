package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"gastrack/internal/infrastructure/ratelimit"
	"gastrack/internal/shared/logger"
	"gastrack/internal/shared/utils"
)

// LoginRateLimit throttles login attempts per client IP. A limiter failure
// lets the request through rather than locking everyone out.
func LoginRateLimit(limiter ratelimit.RateLimiter, cfg ratelimit.RateLimitConfig, log logger.Interface) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := "login:" + c.ClientIP()

		allowed, err := limiter.Allow(key, cfg)
		if err != nil {
			log.Warnw("rate limiter unavailable, allowing request", "error", err)
			c.Next()
			return
		}

		if !allowed {
			utils.ErrorResponse(c, http.StatusTooManyRequests, "too many login attempts, please try again later")
			c.Abort()
			return
		}

		c.Next()
	}
}
