package alphavantage

import "errors"

// ErrInvalidArgument flags a request that can never succeed upstream
// and must not be retried.
var ErrInvalidArgument = errors.New("alphavantage: invalid argument")

// ErrMalformedResponse flags a payload whose shape does not match any
// known time-series response. Retrying will not fix a shape mismatch,
// so these surface immediately.
var ErrMalformedResponse = errors.New("alphavantage: malformed response")
