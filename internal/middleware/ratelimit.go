package middleware

import (
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"

	"oneday-todo/pkg/response"
)

const (
	defaultMaxClients = 1000
	defaultClientTTL  = 5 * time.Minute
)

// rateLimiter keeps one token bucket per client. Idle clients expire from
// the LRU so memory stays bounded.
type rateLimiter struct {
	mu       sync.Mutex // serializes lookup-or-create
	limiters *expirable.LRU[string, *rate.Limiter]
	rate     rate.Limit
	burst    int
}

func newRateLimiter(cfg RateLimitConfig) *rateLimiter {
	if cfg.RequestsPerMin <= 0 {
		return nil
	}
	if cfg.MaxClients <= 0 {
		cfg.MaxClients = defaultMaxClients
	}
	if cfg.TTL <= 0 {
		cfg.TTL = defaultClientTTL
	}
	if cfg.Burst <= 0 {
		cfg.Burst = max(cfg.RequestsPerMin/10, 1)
	}

	return &rateLimiter{
		limiters: expirable.NewLRU[string, *rate.Limiter](cfg.MaxClients, nil, cfg.TTL),
		rate:     rate.Limit(float64(cfg.RequestsPerMin) / 60.0),
		burst:    cfg.Burst,
	}
}

func (rl *rateLimiter) limiter(key string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	limiter, ok := rl.limiters.Get(key)
	if !ok {
		limiter = rate.NewLimiter(rl.rate, rl.burst)
		rl.limiters.Add(key, limiter)
	}
	return limiter
}

func (rl *rateLimiter) allow(key string) bool {
	return rl.limiter(key).Allow()
}

// RateLimit rejects clients that exceed their budget with 429.
func (m Middleware) RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if m.limiter == nil {
			c.Next()
			return
		}

		ip := c.ClientIP()
		if !m.limiter.allow(ip) {
			m.l.Warnf(c.Request.Context(), "middleware.RateLimit: limit exceeded for %s", ip)
			response.TooManyRequests(c)
			return
		}
		c.Next()
	}
}
