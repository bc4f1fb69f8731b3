package api

import (
	"context"
	"math"
	"math/rand"
	"time"
)

// RetryConfig configures how server-error responses are re-sent.
type RetryConfig struct {
	// MaxRetries is the number of additional attempts after the first.
	MaxRetries int
	// BaseDelay is the delay before the first retry. Zero retries immediately.
	BaseDelay time.Duration
	// MaxDelay caps the delay between attempts.
	MaxDelay time.Duration
	// Multiplier is the factor by which the delay grows after each attempt.
	Multiplier float64
	// Jitter is the randomization factor (0.0 to 1.0) applied to delays.
	Jitter float64
	// RetryableOn reports whether a status code should trigger a retry.
	// Nil means IsServerError.
	RetryableOn func(statusCode int) bool
}

// DefaultRetryConfig returns a configuration with no retries and no delay.
func DefaultRetryConfig() *RetryConfig {
	return &RetryConfig{
		MaxRetries:  0,
		BaseDelay:   0,
		MaxDelay:    30 * time.Second,
		Multiplier:  2.0,
		Jitter:      0,
		RetryableOn: IsServerError,
	}
}

// IsServerError reports whether statusCode is in the 5xx range.
func IsServerError(statusCode int) bool {
	return statusCode >= 500 && statusCode <= 599
}

// ShouldRetry determines if attempt (zero-based) should be followed by
// another one.
func (r *RetryConfig) ShouldRetry(attempt int, statusCode int) bool {
	if attempt >= r.MaxRetries {
		return false
	}
	if r.RetryableOn == nil {
		return IsServerError(statusCode)
	}
	return r.RetryableOn(statusCode)
}

// Delay calculates the delay before the next retry attempt with optional jitter.
func (r *RetryConfig) Delay(attempt int) time.Duration {
	if r.BaseDelay <= 0 {
		return 0
	}
	delay := float64(r.BaseDelay) * math.Pow(r.Multiplier, float64(attempt))
	if r.MaxDelay > 0 && delay > float64(r.MaxDelay) {
		delay = float64(r.MaxDelay)
	}

	if r.Jitter > 0 {
		jitterAmount := delay * r.Jitter
		delay = delay - jitterAmount + (rand.Float64() * 2 * jitterAmount)
	}

	return time.Duration(delay)
}

// Wait waits for the appropriate delay before retrying.
func (r *RetryConfig) Wait(ctx context.Context, attempt int) error {
	delay := r.Delay(attempt)
	if delay <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
