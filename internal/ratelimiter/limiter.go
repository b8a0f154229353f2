package ratelimiter

import (
	"golang.org/x/time/rate"
)

// Limiter is a single token bucket shared by every inbound request.
// A zero or negative rate disables limiting entirely.
type Limiter struct {
	limiter *rate.Limiter
}

// New creates a Limiter granting ratePerSec tokens per second.
// A burst of 0 defaults to ratePerSec, so no extra burst capacity is
// allowed beyond the configured per-second maximum.
func New(ratePerSec, burst int) *Limiter {
	if ratePerSec <= 0 {
		return &Limiter{limiter: rate.NewLimiter(rate.Inf, 0)}
	}
	if burst <= 0 {
		burst = ratePerSec
	}
	return &Limiter{limiter: rate.NewLimiter(rate.Limit(ratePerSec), burst)}
}

// Allow reports whether a request may proceed now. It never blocks.
func (l *Limiter) Allow() bool {
	return l.limiter.Allow()
}

// Unlimited reports whether the limiter lets everything through.
func (l *Limiter) Unlimited() bool {
	return l.limiter.Limit() == rate.Inf
}
