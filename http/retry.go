package http

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"
)

// RetryPolicy decides which failures are transient and how long to wait
// between attempts. The zero value disables retries; use
// DefaultRetryPolicy for the standard gazette contract.
type RetryPolicy struct {
	// MaxAttempts is the total number of attempts, including the first.
	MaxAttempts int

	// Delay is the wait between attempts.
	Delay time.Duration

	// RetryableStatus reports whether an HTTP status code is transient.
	// Nil means no status is retryable.
	RetryableStatus func(status int) bool
}

// DefaultRetryPolicy returns the retry contract used against the
// gazette API: two retries after the initial attempt, five seconds
// apart, on the usual transient statuses.
func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{
		MaxAttempts:     3,
		Delay:           5 * time.Second,
		RetryableStatus: DefaultRetryableStatus,
	}
}

// DefaultRetryableStatus reports whether status is one of the transient
// HTTP statuses: 429, 500, 502, 503 and 504. A 404 is never transient;
// on the day-index endpoint it means the gazette was not published.
func DefaultRetryableStatus(status int) bool {
	switch status {
	case http.StatusTooManyRequests,
		http.StatusInternalServerError,
		http.StatusBadGateway,
		http.StatusServiceUnavailable,
		http.StatusGatewayTimeout:
		return true
	}
	return false
}

// retryableStatus applies the configured predicate.
func (p RetryPolicy) retryableStatus(status int) bool {
	return p.RetryableStatus != nil && p.RetryableStatus(status)
}

// retryableError reports whether a transport error is worth retrying.
// Timeouts are transient; caller cancellation is not. A per-request
// timeout from http.Client also matches context.DeadlineExceeded, so
// the request context itself decides whether the caller gave up.
func (p RetryPolicy) retryableError(ctx context.Context, err error) bool {
	if ctx.Err() != nil {
		return false
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		return netErr.Timeout()
	}
	return false
}
