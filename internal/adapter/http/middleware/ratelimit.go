package middleware

import (
	"fmt"
	"strconv"
	"time"

	redisStore "cryptopay-gateway/internal/adapter/storage/redis"
	"cryptopay-gateway/pkg/apperror"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RateLimitRule defines a rate limit for an endpoint group.
type RateLimitRule struct {
	Limit  int64
	Window time.Duration
}

// DefaultRateLimitRules returns the rate limits per endpoint group.
func DefaultRateLimitRules() map[string]RateLimitRule {
	return map[string]RateLimitRule{
		"payments":        {Limit: 100, Window: time.Minute},
		"payments_read":   {Limit: 300, Window: time.Minute},
		"payments_refund": {Limit: 30, Window: time.Minute},
		"wallets":         {Limit: 30, Window: time.Minute},
		"withdrawals":     {Limit: 30, Window: time.Minute},
		"webhooks":        {Limit: 60, Window: time.Minute},
		"auth_login":      {Limit: 10, Window: time.Minute},
		"auth_register":   {Limit: 5, Window: time.Hour},
		"dashboard":       {Limit: 60, Window: time.Minute},
		"inbound_webhook": {Limit: 120, Window: time.Minute},
	}
}

// RateLimiter limits requests per caller within group. On merchant routes it
// must run after HMACAuth so the counter belongs to the verified merchant.
func RateLimiter(store *redisStore.RateLimitStore, group string, rule RateLimitRule, log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := group + ":" + callerKey(c)

		result, err := store.Allow(c.Request.Context(), key, rule.Limit, rule.Window)
		if err != nil {
			log.Warn().Err(err).Str("group", group).Msg("rate limit check failed, allowing request")
			c.Next()
			return
		}

		c.Header("X-RateLimit-Limit", strconv.FormatInt(result.Limit, 10))
		c.Header("X-RateLimit-Remaining", strconv.FormatInt(result.Remaining, 10))
		c.Header("X-RateLimit-Reset", strconv.FormatInt(result.ResetAt, 10))

		if !result.Allowed {
			retryAfter := max(result.ResetAt-time.Now().Unix(), 1)
			c.Header("Retry-After", strconv.FormatInt(retryAfter, 10))
			abort(c, apperror.ErrRateLimitExceeded())
			return
		}
		c.Next()
	}
}

// callerKey prefers the authenticated merchant, then the merchant named by an
// inbound webhook path, then the client address.
func callerKey(c *gin.Context) string {
	if id, ok := c.Get(CtxMerchantID); ok {
		return fmt.Sprintf("m:%v", id)
	}
	if m := c.Param("merchant"); m != "" {
		return "in:" + m
	}
	return "ip:" + c.ClientIP()
}
