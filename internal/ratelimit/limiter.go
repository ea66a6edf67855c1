package ratelimit

import (
	"context"
	"sync"

	"golang.org/x/time/rate"
)

// UpstreamLimiter throttles outbound calls per upstream host so a burst of
// user searches cannot exhaust the RapidAPI quota.
type UpstreamLimiter struct {
	limiters map[string]*rate.Limiter
	mu       sync.RWMutex
	defaults RateLimitConfig
}

type RateLimitConfig struct {
	RequestsPerSecond float64
	BurstSize         int
}

func DefaultConfig() RateLimitConfig {
	return RateLimitConfig{
		RequestsPerSecond: 5,
		BurstSize:         10,
	}
}

func NewUpstreamLimiter(config RateLimitConfig) *UpstreamLimiter {
	return &UpstreamLimiter{
		limiters: make(map[string]*rate.Limiter),
		defaults: config,
	}
}

func NewUpstreamLimiterWithDefaults() *UpstreamLimiter {
	return NewUpstreamLimiter(DefaultConfig())
}

func (u *UpstreamLimiter) GetLimiter(host string) *rate.Limiter {
	u.mu.RLock()
	limiter, exists := u.limiters[host]
	u.mu.RUnlock()

	if exists {
		return limiter
	}

	u.mu.Lock()
	defer u.mu.Unlock()

	if limiter, exists = u.limiters[host]; exists {
		return limiter
	}

	limiter = rate.NewLimiter(rate.Limit(u.defaults.RequestsPerSecond), u.defaults.BurstSize)
	u.limiters[host] = limiter
	return limiter
}

func (u *UpstreamLimiter) SetHostLimit(host string, rps float64, burst int) {
	u.mu.Lock()
	defer u.mu.Unlock()

	u.limiters[host] = rate.NewLimiter(rate.Limit(rps), burst)
}

func (u *UpstreamLimiter) Wait(ctx context.Context, host string) error {
	return u.GetLimiter(host).Wait(ctx)
}
