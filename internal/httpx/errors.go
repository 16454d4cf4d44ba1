package httpx

import "fmt"

// StatusError reports a non-2xx upstream status. Whether it was worth
// retrying is the policy's call; by the time a caller sees one of these
// it is terminal either way.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("upstream status %d", e.StatusCode)
	}
	return fmt.Sprintf("upstream status %d: %s", e.StatusCode, e.Body)
}

// RetryExhaustedError is returned once the attempt budget is spent.
// It carries the attempt count and wraps the last observed cause, so
// callers can still inspect the final status or transport error.
type RetryExhaustedError struct {
	Attempts int
	Err      error
}

func (e *RetryExhaustedError) Error() string {
	return fmt.Sprintf("all %d attempts failed: %v", e.Attempts, e.Err)
}

func (e *RetryExhaustedError) Unwrap() error { return e.Err }
