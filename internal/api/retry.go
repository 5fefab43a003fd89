package api

import (
	"math"
	"math/rand"
	"net/http"
	"time"
)

// RetryConfig configures re-attempts of read calls.
type RetryConfig struct {
	// MaxRetries is the maximum number of retry attempts after the first.
	MaxRetries int
	// InitialBackoff is the delay before the first retry.
	InitialBackoff time.Duration
	// MaxBackoff caps the backoff growth.
	MaxBackoff time.Duration
	// BackoffMultiplier is the exponential growth factor.
	BackoffMultiplier float64
	// Jitter adds randomness to each backoff (0.0 to 1.0).
	Jitter float64
	// RetryableStatusCodes are HTTP statuses treated as transient.
	RetryableStatusCodes []int
}

// DefaultRetryConfig returns sensible defaults.
func DefaultRetryConfig() RetryConfig {
	return RetryConfig{
		MaxRetries:        2,
		InitialBackoff:    100 * time.Millisecond,
		MaxBackoff:        5 * time.Second,
		BackoffMultiplier: 2.0,
		Jitter:            0.1,
		RetryableStatusCodes: []int{
			http.StatusTooManyRequests,
			http.StatusInternalServerError,
			http.StatusBadGateway,
			http.StatusServiceUnavailable,
			http.StatusGatewayTimeout,
		},
	}
}

// NoRetry disables re-attempts entirely.
func NoRetry() RetryConfig {
	return RetryConfig{InitialBackoff: time.Millisecond}
}

func (r RetryConfig) retryable(status int) bool {
	for _, code := range r.RetryableStatusCodes {
		if code == status {
			return true
		}
	}
	return false
}

func (r RetryConfig) backoffFor(attempt int) time.Duration {
	backoff := float64(r.InitialBackoff) * math.Pow(r.BackoffMultiplier, float64(attempt))
	if max := float64(r.MaxBackoff); r.MaxBackoff > 0 && backoff > max {
		backoff = max
	}
	if r.Jitter > 0 {
		backoff += backoff * r.Jitter * (rand.Float64()*2 - 1)
	}
	if backoff < 0 {
		backoff = 0
	}
	return time.Duration(backoff)
}
