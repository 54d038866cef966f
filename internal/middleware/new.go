package middleware

import (
	"github.com/gin-gonic/gin"

	"reservation-agent/pkg/log"
)

// Config is the dependency bag for New.
type Config struct {
	AllowedOrigins  []string // each must carry an http:// or https:// scheme
	RateLimitPerMin int      // 0 disables rate limiting
}

type Middleware struct {
	l       log.Logger
	origins []string
	cors    gin.HandlerFunc
	limiter *rateLimiter
}

func New(l log.Logger, cfg Config) Middleware {
	mw := Middleware{
		l:       l,
		origins: cfg.AllowedOrigins,
		cors:    newCORS(cfg.AllowedOrigins),
	}
	if cfg.RateLimitPerMin > 0 {
		mw.limiter = newRateLimiter(cfg.RateLimitPerMin)
	}
	return mw
}
