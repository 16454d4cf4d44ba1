// Package aggregate fetches histories for groups of symbols and aligns
// them into a single table on their shared timestamps.
package aggregate

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"assetseries/internal/alphavantage"
	"assetseries/internal/series"
)

// Historical is the per-symbol history source. *alphavantage.Client
// implements it.
//
//go:generate mockgen -package=aggregate_test -destination=mock_historical_test.go -source=aggregate.go Historical
type Historical interface {
	HistoricalSeries(ctx context.Context, q alphavantage.Query) (series.Series, error)
}

// Fetcher fans a multi-symbol request out over its source and joins the
// results.
type Fetcher struct {
	Source Historical
	// Concurrency bounds the number of in-flight requests when fetching
	// a table. Values below two mean one symbol at a time, in order.
	Concurrency int
}

// FetchSeries fetches one symbol's history. Source errors pass through
// unwrapped so callers can match the httpx and alphavantage error
// types directly.
func (f *Fetcher) FetchSeries(ctx context.Context, symbol string, period alphavantage.Period, interval alphavantage.Interval, adjusted bool) (series.Series, error) {
	return f.Source.HistoricalSeries(ctx, alphavantage.Query{
		Symbol:   symbol,
		Period:   period,
		Interval: interval,
		Adjusted: adjusted,
	})
}

// FetchTable fetches every symbol's history and inner-joins the columns
// on timestamp. Column order follows the input symbol order regardless
// of fetch order. The first failed fetch aborts the whole table.
func (f *Fetcher) FetchTable(ctx context.Context, symbols []string, period alphavantage.Period, interval alphavantage.Interval, adjusted bool) (series.Table, error) {
	if len(symbols) == 0 {
		return series.Table{}, fmt.Errorf("%w: empty symbols input", alphavantage.ErrInvalidArgument)
	}

	columns := make([]series.Series, len(symbols))
	if f.Concurrency > 1 {
		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(f.Concurrency)
		for i, symbol := range symbols {
			i, symbol := i, symbol
			g.Go(func() error {
				col, err := f.FetchSeries(gctx, symbol, period, interval, adjusted)
				if err != nil {
					return fmt.Errorf("fetch %s: %w", symbol, err)
				}
				columns[i] = col
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return series.Table{}, err
		}
	} else {
		for i, symbol := range symbols {
			col, err := f.FetchSeries(ctx, symbol, period, interval, adjusted)
			if err != nil {
				return series.Table{}, fmt.Errorf("fetch %s: %w", symbol, err)
			}
			columns[i] = col
		}
	}

	return series.Align(symbols, columns)
}
