package resilience

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fastConfig(attempts int) RetryConfig {
	return RetryConfig{
		MaxAttempts:    attempts,
		InitialBackoff: time.Millisecond,
		MaxBackoff:     5 * time.Millisecond,
		Multiplier:     2,
	}
}

func TestDoVal_RetriesTransientUntilSuccess(t *testing.T) {
	calls := 0
	var retried []int

	cfg := fastConfig(5)
	cfg.OnRetry = func(attempt int, _ time.Duration, _ error) {
		retried = append(retried, attempt)
	}

	val, err := DoVal(context.Background(), cfg, func(ctx context.Context) (string, error) {
		calls++
		if calls < 3 {
			return "", &HTTPStatusError{StatusCode: http.StatusTooManyRequests}
		}
		return "ok", nil
	})

	require.NoError(t, err)
	assert.Equal(t, "ok", val)
	assert.Equal(t, 3, calls)
	assert.Equal(t, []int{1, 2}, retried)
}

func TestDo_StopsOnPermanentError(t *testing.T) {
	calls := 0
	err := Do(context.Background(), fastConfig(5), func(ctx context.Context) error {
		calls++
		return &HTTPStatusError{StatusCode: http.StatusBadRequest}
	})

	require.Error(t, err)
	assert.Equal(t, 1, calls)
}

func TestDo_ExhaustsAttempts(t *testing.T) {
	calls := 0
	err := Do(context.Background(), fastConfig(3), func(ctx context.Context) error {
		calls++
		return &HTTPStatusError{StatusCode: http.StatusServiceUnavailable}
	})

	var statusErr *HTTPStatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusServiceUnavailable, statusErr.StatusCode)
	assert.Equal(t, 3, calls)
}

func TestDo_ContextCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	calls := 0
	err := Do(ctx, fastConfig(5), func(ctx context.Context) error {
		calls++
		return context.DeadlineExceeded
	})

	require.Error(t, err)
	assert.Equal(t, 1, calls)
}

func TestIsTransient(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "nil", err: nil, want: false},
		{name: "429", err: &HTTPStatusError{StatusCode: 429}, want: true},
		{name: "502", err: &HTTPStatusError{StatusCode: 502}, want: true},
		{name: "404", err: &HTTPStatusError{StatusCode: 404}, want: false},
		{name: "deadline", err: context.DeadlineExceeded, want: true},
		{name: "canceled", err: context.Canceled, want: false},
		{name: "generic", err: errors.New("boom"), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsTransient(tt.err))
		})
	}
}

func TestBackoff_ExponentialWithCap(t *testing.T) {
	cfg := RetryConfig{InitialBackoff: 2 * time.Second, MaxBackoff: 10 * time.Second, Multiplier: 2}

	assert.Equal(t, 2*time.Second, Backoff(0, cfg))
	assert.Equal(t, 4*time.Second, Backoff(1, cfg))
	assert.Equal(t, 8*time.Second, Backoff(2, cfg))
	assert.Equal(t, 10*time.Second, Backoff(3, cfg))

	cfg.Jitter = time.Second
	for i := 0; i < 20; i++ {
		d := Backoff(0, cfg)
		assert.GreaterOrEqual(t, d, 2*time.Second)
		assert.Less(t, d, 3*time.Second)
	}
}
