// Command fetch downloads aligned price histories for a list of
// symbols, optionally splices in live quotes, and prints the table tail
// plus per-symbol return statistics.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"assetseries/internal/aggregate"
	"assetseries/internal/alphavantage"
	"assetseries/internal/config"
	"assetseries/internal/httpx"
	"assetseries/internal/quote"
	"assetseries/internal/series"
)

const tailRows = 10

func main() {
	_ = godotenv.Load()

	var symbolsCSV string
	var period string
	var interval string
	var adjusted bool
	var withQuotes bool
	var timeout int
	var configPath string

	flag.StringVar(&symbolsCSV, "symbols", getenv("SYMBOLS", "BTC,ETH"), "comma-separated symbols")
	flag.StringVar(&period, "period", getenv("PERIOD", "daily"), "intraday, daily, weekly or monthly")
	flag.StringVar(&interval, "interval", getenv("INTERVAL", ""), "intraday interval (1min, 5min, 15min, 30min, 60min)")
	flag.BoolVar(&adjusted, "adjusted", getenvBool("ADJUSTED", true), "use adjusted close for equities")
	flag.BoolVar(&withQuotes, "with-quotes", getenvBool("WITH_QUOTES", false), "splice live quotes onto the table tail")
	flag.IntVar(&timeout, "timeout", getenvInt("REQUEST_TIMEOUT_SEC", 0), "request timeout seconds")
	flag.StringVar(&configPath, "config", getenv("CONFIG_FILE", ""), "path to config.json (optional)")
	flag.Parse()

	// Load config (optional) and merge with flags/env
	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if timeout > 0 {
		cfg.AlphaVantage.RequestTimeoutSec = timeout
	}
	if cfg.AlphaVantage.APIKey == "" {
		log.Fatal("no api key; set ALPHA_VANTAGE_API_KEY or config.json")
	}
	if withQuotes {
		cfg.Finnhub.Enabled = true
	}
	if cfg.Finnhub.Enabled && cfg.Finnhub.APIKey == "" {
		log.Println("warning: finnhub enabled but FINNHUB_KEY not set; skipping quotes")
		cfg.Finnhub.Enabled = false
	}

	symbols := splitCSV(symbolsCSV)
	if len(symbols) == 0 {
		log.Fatal("no symbols provided")
	}

	policy := httpx.DefaultRetryPolicy()
	if cfg.AlphaVantage.MaxRetries > 0 {
		policy.MaxRetries = cfg.AlphaVantage.MaxRetries
	}
	if cfg.AlphaVantage.BackoffFactorMs > 0 {
		policy.BackoffFactor = time.Duration(cfg.AlphaVantage.BackoffFactorMs) * time.Millisecond
	}
	httpClient := httpx.New(
		time.Duration(cfg.AlphaVantage.RequestTimeoutSec)*time.Second,
		httpx.WithRetryPolicy(policy),
		httpx.WithUserAgent("assetseries/1.0"),
	)

	av := alphavantage.NewClient(cfg.AlphaVantage.APIKey,
		alphavantage.WithBaseURL(cfg.AlphaVantage.BaseURL),
		alphavantage.WithGetter(httpClient),
	)
	fetcher := &aggregate.Fetcher{Source: av, Concurrency: cfg.AlphaVantage.Concurrency}

	ctx := context.Background()
	table, err := fetcher.FetchTable(ctx, symbols,
		alphavantage.Period(period), alphavantage.Interval(interval), adjusted)
	if err != nil {
		log.Fatalf("fetch: %v", err)
	}
	log.Printf("fetched %d symbols, %d aligned rows", len(table.Symbols), len(table.Rows))

	if cfg.Finnhub.Enabled {
		qc := quote.NewClient(cfg.Finnhub.APIKey,
			quote.WithBaseURL(cfg.Finnhub.BaseURL),
			quote.WithPace(time.Duration(cfg.Finnhub.PaceMs)*time.Millisecond),
		)
		values, err := qc.PollLatest(ctx, symbols)
		if err != nil {
			log.Printf("quotes error: %v", err)
		} else {
			ts := patchTimestamp(alphavantage.Period(period), time.Now().UTC())
			table, err = quote.PatchLatestRow(table, values, ts)
			if err != nil {
				log.Printf("quotes patch error: %v", err)
			} else {
				log.Printf("patched live quotes onto row %d", len(table.Rows))
			}
		}
	}

	printTail(table)
	printReturns(table, alphavantage.Period(period), alphavantage.Interval(interval))
}

// patchTimestamp truncates a quote time to the table's row granularity
// so a quote taken during today's session replaces today's row instead
// of always appending. Intraday rows keep the full timestamp.
func patchTimestamp(period alphavantage.Period, now time.Time) time.Time {
	if period == alphavantage.PeriodIntraday {
		return now
	}
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

// printTail prints the last rows of the table as JSON for inspection.
func printTail(t series.Table) {
	rows := t.Rows
	if len(rows) > tailRows {
		rows = rows[len(rows)-tailRows:]
	}
	sample := series.Table{Symbols: t.Symbols, Rows: rows}
	b, _ := json.MarshalIndent(sample, "", "  ")
	fmt.Println(string(b))
}

func printReturns(t series.Table, period alphavantage.Period, interval alphavantage.Interval) {
	logMeans := series.Means(series.LogReturns(t))
	arithMeans := series.Means(series.ArithmeticReturns(t))

	step, err := alphavantage.TimeStep(period, interval)
	if err != nil {
		log.Printf("time step: %v", err)
		step = 0
	}

	for i, symbol := range t.Symbols {
		line := fmt.Sprintf("%s: mean log return %.6f, mean arithmetic return %.6f", symbol, logMeans[i], arithMeans[i])
		if step > 0 {
			line += fmt.Sprintf(", scaled mean %.4f", logMeans[i]/step)
		}
		log.Println(line)
	}
}

func splitCSV(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		var x int
		if n, err := fmt.Sscanf(v, "%d", &x); err == nil && n == 1 {
			return x
		}
	}
	return def
}

func getenvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		switch strings.ToLower(v) {
		case "1", "true", "yes", "y":
			return true
		case "0", "false", "no", "n":
			return false
		}
	}
	return def
}
