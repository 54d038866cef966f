package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"
)

// RateLimit rejects clients that exceed the configured requests per minute.
func (m Middleware) RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if m.limiter == nil {
			c.Next()
			return
		}

		if !m.limiter.Allow(c.ClientIP()) {
			m.l.Warnf(c.Request.Context(), "middleware: rate limit exceeded for %s", c.ClientIP())
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "요청이 너무 많습니다. 잠시 후 다시 시도해주세요."})
			return
		}
		c.Next()
	}
}

// rateLimiter keeps one token bucket per client; idle clients expire from the cache.
type rateLimiter struct {
	mu       sync.Mutex // serializes bucket creation for new clients
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
		limiters: expirable.NewLRU[string, *rate.Limiter](
			1000,          // Max 1000 unique clients
			nil,           // No eviction callback
			time.Minute*5, // TTL: 5 minutes
		),
		rate:  rate.Limit(float64(requestsPerMin) / 60.0), // Per second
		burst: burst,
	}
}

func (rl *rateLimiter) Allow(key string) bool {
	limiter, ok := rl.limiters.Get(key)
	if !ok {
		rl.mu.Lock()
		if limiter, ok = rl.limiters.Get(key); !ok {
			limiter = rate.NewLimiter(rl.rate, rl.burst)
			rl.limiters.Add(key, limiter)
		}
		rl.mu.Unlock()
	}
	return limiter.Allow()
}
