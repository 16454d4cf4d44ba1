// Package alphavantage downloads historical price series for equities
// and a fixed set of cryptocurrencies from the Alpha Vantage query API
// and normalizes them into canonical ascending series.
package alphavantage

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"time"

	"assetseries/internal/httpx"
	"assetseries/internal/series"
)

const defaultBaseURL = "https://www.alphavantage.co/query"

const defaultTimeout = 30 * time.Second

// Getter executes one resilient HTTP GET. *httpx.Client implements it.
//
//go:generate mockgen -package=alphavantage_test -destination=mock_getter_test.go -source=client.go Getter
type Getter interface {
	Get(ctx context.Context, rawURL string, params url.Values) ([]byte, error)
}

// Client is an Alpha Vantage API client. The api key is an opaque
// string whose lifecycle is owned by the caller.
type Client struct {
	baseURL string
	apiKey  string
	http    Getter
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the default query endpoint.
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

// NewClient creates an Alpha Vantage client. Without options it uses
// the production endpoint and a retrying httpx client with defaults.
func NewClient(apiKey string, opts ...Option) *Client {
	c := &Client{
		baseURL: defaultBaseURL,
		apiKey:  apiKey,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.http == nil {
		c.http = httpx.New(defaultTimeout)
	}
	return c
}

// HistoricalSeries fetches and normalizes one symbol's price history:
// classify the asset, build the provider request, execute it through
// the retry layer, and extract the canonical series.
func (c *Client) HistoricalSeries(ctx context.Context, q Query) (series.Series, error) {
	class := Classify(q.Symbol)
	_, params, err := BuildRequest(q, class)
	if err != nil {
		return nil, err
	}
	params.Set("apikey", c.apiKey)

	body, err := c.http.Get(ctx, c.baseURL, params)
	if err != nil {
		return nil, err
	}

	var payload map[string]any
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("%w: decode: %v", ErrMalformedResponse, err)
	}
	return ParseSeries(payload, q, class)
}
