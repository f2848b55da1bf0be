package network

import (
	"context"
	"time"

	"golang.org/x/time/rate"
)

// RateLimiter enforces a minimum interval between consecutive requests.
// It remembers when the previous request was admitted and is only advanced through Wait.
type RateLimiter struct {
	interval time.Duration
	limiter  *rate.Limiter
}

// NewRateLimiter returns a limiter admitting one request per interval.
// A non-positive interval disables pacing.
func NewRateLimiter(interval time.Duration) *RateLimiter {
	if interval <= 0 {
		return &RateLimiter{limiter: rate.NewLimiter(rate.Inf, 1)}
	}

	return &RateLimiter{
		interval: interval,
		limiter:  rate.NewLimiter(rate.Every(interval), 1),
	}
}

// Wait blocks until the next request may be sent or the context is done.
func (r *RateLimiter) Wait(ctx context.Context) error {
	return r.limiter.Wait(ctx)
}

// Interval returns the minimum spacing between requests.
func (r *RateLimiter) Interval() time.Duration {
	return r.interval
}
