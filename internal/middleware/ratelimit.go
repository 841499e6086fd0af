package middleware

import (
	"math"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/civicledger/voting-service/internal/apperr"
	"github.com/civicledger/voting-service/internal/ratelimit"
)

// RateLimit rejects requests over the limiter's quota with 429 and a
// Retry-After header. Keys on the caller's network address.
func RateLimit(limiter *ratelimit.Limiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		decision := limiter.Allow(c.ClientIP())
		if !decision.Allowed {
			rlErr := apperr.RateLimited(decision.RetryAfter)
			retryAfter := int(math.Ceil(rlErr.RetryAfter.Seconds()))
			if retryAfter < 1 {
				retryAfter = 1
			}
			c.Header("Retry-After", strconv.Itoa(retryAfter))
			c.AbortWithStatusJSON(apperr.HTTPStatus(rlErr), gin.H{
				"error":       rlErr.Message,
				"kind":        rlErr.Kind.String(),
				"retry_after": retryAfter,
			})
			return
		}
		c.Next()
	}
}
