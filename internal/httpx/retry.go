package httpx

import "time"

const (
	// DefaultMaxRetries is the total attempt budget per logical request.
	DefaultMaxRetries = 5
	// DefaultBackoffFactor is the base delay of the exponential schedule.
	DefaultBackoffFactor = 500 * time.Millisecond
)

// RetryPolicy is pure decision logic: whether an outcome is retried and
// how long to wait before the next attempt.
type RetryPolicy struct {
	// MaxRetries counts attempts, not re-tries; 1 means a single shot.
	MaxRetries int
	// BackoffFactor is doubled after every failed attempt. No jitter.
	BackoffFactor time.Duration
	// RetryStatuses is the forcelist of HTTP statuses worth retrying.
	// Every other non-2xx status fails immediately.
	RetryStatuses []int
}

// DefaultRetryPolicy matches the upstream provider's rate-limit
// behavior: 429 and transient 5xx are retried, everything else is not.
func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{
		MaxRetries:    DefaultMaxRetries,
		BackoffFactor: DefaultBackoffFactor,
		RetryStatuses: []int{429, 500, 502, 503, 504},
	}
}

// NoRetry performs exactly one attempt with no backoff.
func NoRetry() RetryPolicy {
	return RetryPolicy{MaxRetries: 1}
}

// Retryable reports whether status is in the forcelist.
func (p RetryPolicy) Retryable(status int) bool {
	for _, s := range p.RetryStatuses {
		if s == status {
			return true
		}
	}
	return false
}

// Delay returns the wait after the given failed attempt (0-indexed):
// BackoffFactor * 2^attempt.
func (p RetryPolicy) Delay(attempt int) time.Duration {
	if attempt < 0 {
		attempt = 0
	}
	return p.BackoffFactor << uint(attempt)
}
