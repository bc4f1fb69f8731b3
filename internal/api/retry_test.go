package api

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultRetryConfig(t *testing.T) {
	cfg := DefaultRetryConfig()

	assert.Equal(t, 0, cfg.MaxRetries)
	assert.Equal(t, time.Duration(0), cfg.BaseDelay)
	assert.Equal(t, 30*time.Second, cfg.MaxDelay)
	assert.Equal(t, 2.0, cfg.Multiplier)
	assert.NotNil(t, cfg.RetryableOn)
}

func TestRetryConfig_ShouldRetry(t *testing.T) {
	cfg := DefaultRetryConfig()
	cfg.MaxRetries = 3

	tests := []struct {
		name       string
		attempt    int
		statusCode int
		expected   bool
	}{
		{"first attempt, 503", 0, 503, true},
		{"third attempt, 500", 2, 500, true},
		{"max attempts reached", 3, 503, false},
		{"over max attempts", 4, 503, false},
		{"599 is a server error", 0, 599, true},
		{"400 is not retried", 0, 400, false},
		{"401 is not retried", 0, 401, false},
		{"429 is not retried", 0, 429, false},
		{"200 is not retried", 0, 200, false},
		{"600 is not retried", 0, 600, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, cfg.ShouldRetry(tt.attempt, tt.statusCode))
		})
	}
}

func TestRetryConfig_ShouldRetry_NilPredicate(t *testing.T) {
	cfg := &RetryConfig{MaxRetries: 1}

	assert.True(t, cfg.ShouldRetry(0, 502))
	assert.False(t, cfg.ShouldRetry(0, 404))
}

func TestRetryConfig_Delay(t *testing.T) {
	cfg := &RetryConfig{
		BaseDelay:  time.Second,
		MaxDelay:   30 * time.Second,
		Multiplier: 2.0,
	}

	tests := []struct {
		attempt  int
		expected time.Duration
	}{
		{0, time.Second},
		{1, 2 * time.Second},
		{2, 4 * time.Second},
		{4, 16 * time.Second},
		{5, 30 * time.Second},
		{6, 30 * time.Second},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, cfg.Delay(tt.attempt), "attempt %d", tt.attempt)
	}
}

func TestRetryConfig_Delay_ZeroBase(t *testing.T) {
	cfg := DefaultRetryConfig()
	for attempt := range 5 {
		assert.Zero(t, cfg.Delay(attempt))
	}
}

func TestRetryConfig_Delay_WithJitter(t *testing.T) {
	cfg := &RetryConfig{
		BaseDelay:  time.Second,
		MaxDelay:   30 * time.Second,
		Multiplier: 2.0,
		Jitter:     0.5,
	}

	for range 100 {
		delay := cfg.Delay(0)
		assert.GreaterOrEqual(t, delay, 500*time.Millisecond)
		assert.LessOrEqual(t, delay, 1500*time.Millisecond)
	}
}

func TestRetryConfig_Wait(t *testing.T) {
	cfg := &RetryConfig{
		BaseDelay:  10 * time.Millisecond,
		MaxDelay:   100 * time.Millisecond,
		Multiplier: 2.0,
	}

	start := time.Now()
	require.NoError(t, cfg.Wait(context.Background(), 0))
	assert.GreaterOrEqual(t, time.Since(start), 10*time.Millisecond)
}

func TestRetryConfig_Wait_NoDelay(t *testing.T) {
	cfg := DefaultRetryConfig()

	require.NoError(t, cfg.Wait(context.Background(), 0))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, cfg.Wait(ctx, 0), context.Canceled)
}

func TestRetryConfig_Wait_ContextCancellation(t *testing.T) {
	cfg := &RetryConfig{
		BaseDelay:  10 * time.Second,
		MaxDelay:   30 * time.Second,
		Multiplier: 2.0,
	}

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(50 * time.Millisecond)
		cancel()
	}()

	start := time.Now()
	err := cfg.Wait(ctx, 0)

	assert.ErrorIs(t, err, context.Canceled)
	assert.Less(t, time.Since(start), 2*time.Second)
}
