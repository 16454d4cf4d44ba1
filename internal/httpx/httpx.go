package httpx

import (
	"context"
	"fmt"
	"io"
	"log"
	"net"
	"net/http"
	"net/url"
	"time"
)

// HTTPClient describes the underlying HTTP client.
//
//go:generate mockgen -package=httpx_test -destination=mock_http_client_test.go -source=httpx.go HTTPClient
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client executes GET requests through a RetryPolicy over a single
// pooled connection resource. One Client is meant to be shared by all
// callers of a process; it is safe for concurrent use.
type Client struct {
	http      HTTPClient
	policy    RetryPolicy
	userAgent string
	logger    *log.Logger
	sleep     func(ctx context.Context, d time.Duration) error
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the pooled default with a custom HTTPClient.
func WithHTTPClient(hc HTTPClient) Option {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

// WithRetryPolicy overrides the default retry schedule.
func WithRetryPolicy(p RetryPolicy) Option {
	return func(c *Client) {
		c.policy = p
	}
}

// WithLogger injects a custom logger (defaults to log.Default()).
// A nil logger silences attempt logging.
func WithLogger(l *log.Logger) Option {
	return func(c *Client) {
		c.logger = l
	}
}

// WithUserAgent sets the User-Agent header sent with each request.
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		c.userAgent = ua
	}
}

// New builds a Client with a reusable pooled transport. timeout bounds
// each individual attempt, not the whole retry schedule.
func New(timeout time.Duration, opts ...Option) *Client {
	transport := &http.Transport{
		Proxy:                 http.ProxyFromEnvironment,
		DialContext:           (&net.Dialer{Timeout: 3 * time.Second, KeepAlive: 30 * time.Second}).DialContext,
		MaxIdleConns:          200,
		MaxIdleConnsPerHost:   100,
		MaxConnsPerHost:       100,
		ForceAttemptHTTP2:     true,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   3 * time.Second,
		ExpectContinueTimeout: 1 * time.Second,
	}
	c := &Client{
		http:      &http.Client{Timeout: timeout, Transport: transport},
		policy:    DefaultRetryPolicy(),
		userAgent: "assetseries/1.0",
		logger:    log.Default(),
		sleep:     sleepCtx,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Get performs one logical GET against rawURL with the given query
// parameters. Retryable outcomes (statuses in the policy forcelist and
// transport errors) are retried with exponential backoff; any other
// non-2xx status fails immediately with a *StatusError. When the retry
// budget runs out the last cause is returned wrapped in a
// *RetryExhaustedError.
func (c *Client) Get(ctx context.Context, rawURL string, params url.Values) ([]byte, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("parse url: %w", err)
	}
	q := u.Query()
	for k, vs := range params {
		for _, v := range vs {
			q.Add(k, v)
		}
	}
	u.RawQuery = q.Encode()
	target := u.String()

	attempts := c.policy.MaxRetries
	if attempts < 1 {
		attempts = 1
	}

	var lastErr error
	for attempt := 0; attempt < attempts; attempt++ {
		if attempt > 0 {
			delay := c.policy.Delay(attempt - 1)
			c.logf("request failed (attempt %d/%d): %v; retrying in %s", attempt, attempts, lastErr, delay)
			if err := c.sleep(ctx, delay); err != nil {
				return nil, err
			}
		}
		body, retryable, err := c.attempt(ctx, target)
		if err == nil {
			return body, nil
		}
		if !retryable {
			return nil, err
		}
		lastErr = err
	}
	return nil, &RetryExhaustedError{Attempts: attempts, Err: lastErr}
}

// attempt issues a single request and classifies the outcome.
func (c *Client) attempt(ctx context.Context, target string) (body []byte, retryable bool, err error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, http.NoBody)
	if err != nil {
		return nil, false, fmt.Errorf("build request: %w", err)
	}
	if c.userAgent != "" && req.Header.Get("User-Agent") == "" {
		req.Header.Set("User-Agent", c.userAgent)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, false, ctx.Err()
		}
		// Connection failures and timeouts are worth another attempt.
		return nil, true, err
	}
	defer resp.Body.Close()

	b, readErr := io.ReadAll(resp.Body)
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		if readErr != nil {
			return nil, true, fmt.Errorf("read response: %w", readErr)
		}
		return b, false, nil
	}
	serr := &StatusError{StatusCode: resp.StatusCode, Body: snippet(b)}
	return nil, c.policy.Retryable(resp.StatusCode), serr
}

func (c *Client) logf(format string, args ...any) {
	if c.logger != nil {
		c.logger.Printf(format, args...)
	}
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

func snippet(b []byte) string {
	const max = 512
	if len(b) > max {
		b = b[:max]
	}
	return string(b)
}
