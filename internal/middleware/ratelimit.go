package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"

	"zenned/pkg/response"
	"zenned/pkg/scope"
)

const (
	limiterCacheSize = 10000
	limiterTTL       = 5 * time.Minute
)

// rateLimiter keeps one token bucket per key and forgets idle keys.
type rateLimiter struct {
	limiters *expirable.LRU[string, *rate.Limiter]
	rate     rate.Limit
	burst    int
}

func newRateLimiter(requestsPerMin int) *rateLimiter {
	burst := requestsPerMin / 10
	if burst < 1 {
		burst = 1
	}
	return &rateLimiter{
		limiters: expirable.NewLRU[string, *rate.Limiter](limiterCacheSize, nil, limiterTTL),
		rate:     rate.Limit(float64(requestsPerMin) / 60.0),
		burst:    burst,
	}
}

func (rl *rateLimiter) allow(key string) bool {
	limiter, ok := rl.limiters.Get(key)
	if !ok {
		limiter = rate.NewLimiter(rl.rate, rl.burst)
		rl.limiters.Add(key, limiter)
	}
	return limiter.Allow()
}

// RateLimitByIP limits requests per client IP. requestsPerMin <= 0 disables it.
func (m Middleware) RateLimitByIP(requestsPerMin int) gin.HandlerFunc {
	return m.rateLimit(requestsPerMin, func(c *gin.Context) string {
		return "ip:" + c.ClientIP()
	})
}

// RateLimitByUser limits requests per signed-in user and falls back to the
// client IP. It must run after Auth.
func (m Middleware) RateLimitByUser(requestsPerMin int) gin.HandlerFunc {
	return m.rateLimit(requestsPerMin, func(c *gin.Context) string {
		if p, ok := scope.GetPayloadFromContext(c.Request.Context()); ok {
			return "user:" + strconv.FormatInt(p.UserID, 10)
		}
		return "ip:" + c.ClientIP()
	})
}

func (m Middleware) rateLimit(requestsPerMin int, key func(*gin.Context) string) gin.HandlerFunc {
	if requestsPerMin <= 0 {
		return func(c *gin.Context) { c.Next() }
	}
	rl := newRateLimiter(requestsPerMin)
	return func(c *gin.Context) {
		k := key(c)
		if !rl.allow(k) {
			m.l.Warnf(c.Request.Context(), "middleware.rateLimit: limit exceeded for %s", k)
			response.TooManyRequests(c)
			return
		}
		c.Next()
	}
}
