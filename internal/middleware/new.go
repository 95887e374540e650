package middleware

import (
	"time"

	"oneday-todo/pkg/log"
)

// RateLimitConfig bounds requests per client IP. A zero RequestsPerMin
// disables limiting.
type RateLimitConfig struct {
	RequestsPerMin int
	Burst          int
	MaxClients     int
	TTL            time.Duration
}

type Middleware struct {
	l       log.Logger
	limiter *rateLimiter
}

func New(l log.Logger, rl RateLimitConfig) Middleware {
	return Middleware{
		l:       l,
		limiter: newRateLimiter(rl),
	}
}
