package apiclient

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"time"
)

// DefaultRateLimitFloor is the wait before the single retry when the server
// sends no usable Retry-After hint.
const DefaultRateLimitFloor = 5 * time.Second

type noRetryKey struct{}

// NoRetry marks calls made with the returned context as non-retryable:
// a 429 is surfaced immediately.
func NoRetry(ctx context.Context) context.Context {
	return context.WithValue(ctx, noRetryKey{}, true)
}

func isNoRetry(ctx context.Context) bool {
	v, _ := ctx.Value(noRetryKey{}).(bool)
	return v
}

// retryDelay reads a Retry-After value (delta-seconds or HTTP-date).
func retryDelay(header string, floor time.Duration, now time.Time) time.Duration {
	header = strings.TrimSpace(header)
	if header == "" {
		return floor
	}
	if secs, err := strconv.Atoi(header); err == nil {
		if secs < 0 {
			return floor
		}
		return time.Duration(secs) * time.Second
	}
	if at, err := http.ParseTime(header); err == nil {
		if d := at.Sub(now); d > 0 {
			return d
		}
		return 0
	}
	return floor
}

// sleepContext waits for d or until ctx is done.
func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
