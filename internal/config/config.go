// Package config holds file and environment driven settings for the
// fetch pipeline.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
)

type AlphaVantage struct {
	APIKey            string `json:"api_key"`
	BaseURL           string `json:"base_url"`
	RequestTimeoutSec int    `json:"request_timeout_sec"`
	MaxRetries        int    `json:"max_retries"`
	BackoffFactorMs   int    `json:"backoff_factor_ms"`
	Concurrency       int    `json:"concurrency"`
}

type Finnhub struct {
	Enabled           bool   `json:"enabled"`
	APIKey            string `json:"api_key"`
	BaseURL           string `json:"base_url"`
	RequestTimeoutSec int    `json:"request_timeout_sec"`
	PaceMs            int    `json:"pace_ms"`
}

type Config struct {
	AlphaVantage AlphaVantage `json:"alpha_vantage"`
	Finnhub      Finnhub      `json:"finnhub"`
}

func Default() Config {
	return Config{
		AlphaVantage: AlphaVantage{
			BaseURL:           "https://www.alphavantage.co/query",
			RequestTimeoutSec: 30,
			MaxRetries:        5,
			BackoffFactorMs:   500,
			Concurrency:       1,
		},
		Finnhub: Finnhub{
			Enabled:           false,
			BaseURL:           "https://finnhub.io/api/v1/quote",
			RequestTimeoutSec: 10,
			PaceMs:            1000,
		},
	}
}

// Load reads JSON config from path. If path is empty or file does not exist,
// it returns defaults. Environment variables override select fields for secrecy.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		if _, err := os.Stat("config.json"); err == nil {
			path = "config.json"
		}
	}
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return cfg, fmt.Errorf("read config: %w", err)
		}
		if err == nil {
			if err := json.Unmarshal(b, &cfg); err != nil {
				return cfg, fmt.Errorf("parse config: %w", err)
			}
		}
	}
	applyEnv(&cfg)
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("ALPHA_VANTAGE_API_KEY"); v != "" {
		cfg.AlphaVantage.APIKey = v
	}
	if v := os.Getenv("ALPHA_VANTAGE_BASE_URL"); v != "" {
		cfg.AlphaVantage.BaseURL = v
	}
	if v := os.Getenv("REQUEST_TIMEOUT_SEC"); v != "" {
		var x int
		fmt.Sscanf(v, "%d", &x)
		if x > 0 {
			cfg.AlphaVantage.RequestTimeoutSec = x
		}
	}
	if v := os.Getenv("ALPHA_VANTAGE_MAX_RETRIES"); v != "" {
		var x int
		fmt.Sscanf(v, "%d", &x)
		if x > 0 {
			cfg.AlphaVantage.MaxRetries = x
		}
	}
	if v := os.Getenv("ALPHA_VANTAGE_BACKOFF_MS"); v != "" {
		var x int
		fmt.Sscanf(v, "%d", &x)
		if x >= 0 {
			cfg.AlphaVantage.BackoffFactorMs = x
		}
	}
	if v := os.Getenv("ALPHA_VANTAGE_CONCURRENCY"); v != "" {
		var x int
		fmt.Sscanf(v, "%d", &x)
		if x > 0 {
			cfg.AlphaVantage.Concurrency = x
		}
	}
	if v := os.Getenv("FINNHUB_ENABLED"); v != "" {
		switch strings.ToLower(v) {
		case "1", "true", "yes", "y":
			cfg.Finnhub.Enabled = true
		case "0", "false", "no", "n":
			cfg.Finnhub.Enabled = false
		}
	}
	if v := os.Getenv("FINNHUB_KEY"); v != "" {
		cfg.Finnhub.APIKey = v
	}
	if v := os.Getenv("FINNHUB_BASE_URL"); v != "" {
		cfg.Finnhub.BaseURL = v
	}
	if v := os.Getenv("FINNHUB_PACE_MS"); v != "" {
		var x int
		fmt.Sscanf(v, "%d", &x)
		if x >= 0 {
			cfg.Finnhub.PaceMs = x
		}
	}
}
