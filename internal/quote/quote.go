// Package quote fetches latest spot quotes and splices them onto the
// tail of a historical table.
package quote

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"time"

	"assetseries/internal/httpx"
	"assetseries/internal/series"
)

const defaultBaseURL = "https://finnhub.io/api/v1/quote"

const defaultTimeout = 10 * time.Second

// defaultPace is the window one PollLatest pass spreads its requests
// over, keeping the poller under the upstream per-minute quota.
const defaultPace = time.Second

// Getter executes one HTTP GET. *httpx.Client implements it.
//
//go:generate mockgen -package=quote_test -destination=mock_getter_test.go -source=quote.go Getter
type Getter interface {
	Get(ctx context.Context, rawURL string, params url.Values) ([]byte, error)
}

// Client is a quote endpoint client.
type Client struct {
	baseURL string
	apiKey  string
	http    Getter
	pace    time.Duration

	sleep func(ctx context.Context, d time.Duration) error
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the default quote endpoint.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		if baseURL != "" {
			c.baseURL = baseURL
		}
	}
}

// WithGetter injects the HTTP layer.
func WithGetter(g Getter) Option {
	return func(c *Client) {
		if g != nil {
			c.http = g
		}
	}
}

// WithPace sets the polling window. Zero disables the pacing sleeps.
func WithPace(d time.Duration) Option {
	return func(c *Client) {
		c.pace = d
	}
}

// NewClient creates a quote client. Quotes are point-in-time reads, so
// the default HTTP layer does not retry; pacing spaces requests out but
// is not backoff.
func NewClient(apiKey string, opts ...Option) *Client {
	c := &Client{
		baseURL: defaultBaseURL,
		apiKey:  apiKey,
		pace:    defaultPace,
		sleep:   sleepCtx,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.http == nil {
		c.http = httpx.New(defaultTimeout, httpx.WithRetryPolicy(httpx.NoRetry()))
	}
	return c
}

// Latest returns the current spot price for one symbol.
func (c *Client) Latest(ctx context.Context, symbol string) (float64, error) {
	params := url.Values{}
	params.Set("symbol", symbol)
	params.Set("token", c.apiKey)

	body, err := c.http.Get(ctx, c.baseURL, params)
	if err != nil {
		return 0, err
	}

	var payload struct {
		Current float64 `json:"c"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return 0, fmt.Errorf("quote %s: decode: %w", symbol, err)
	}
	return payload.Current, nil
}

// PollLatest fetches quotes for all symbols in order, sleeping a slice
// of the pace window between requests. The result is index-aligned with
// the input.
func (c *Client) PollLatest(ctx context.Context, symbols []string) ([]float64, error) {
	out := make([]float64, len(symbols))
	for i, symbol := range symbols {
		if i > 0 && c.pace > 0 {
			if err := c.sleep(ctx, c.pace/time.Duration(len(symbols))); err != nil {
				return nil, err
			}
		}
		value, err := c.Latest(ctx, symbol)
		if err != nil {
			return nil, fmt.Errorf("quote %s: %w", symbol, err)
		}
		out[i] = value
	}
	return out, nil
}

// PatchLatestRow splices a freshly polled row onto a table: an existing
// row with the same timestamp is replaced in place, otherwise the row
// is appended. The values slice must be index-aligned with the table's
// symbols.
func PatchLatestRow(t series.Table, values []float64, ts time.Time) (series.Table, error) {
	if len(values) != len(t.Symbols) {
		return series.Table{}, fmt.Errorf("quote row has %d values for %d symbols", len(values), len(t.Symbols))
	}
	row := series.Row{Timestamp: ts, Values: values}
	if n := len(t.Rows); n > 0 {
		last := t.Rows[n-1].Timestamp
		if ts.Equal(last) {
			t.Rows[n-1] = row
			return t, nil
		}
		if ts.Before(last) {
			return series.Table{}, fmt.Errorf("quote timestamp %s predates last row %s", ts, last)
		}
	}
	t.Rows = append(t.Rows, row)
	return t, nil
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
