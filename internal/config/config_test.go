package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"assetseries/internal/config"
)

func TestDefault(t *testing.T) {
	cfg := config.Default()
	require.Equal(t, "https://www.alphavantage.co/query", cfg.AlphaVantage.BaseURL)
	require.Equal(t, 30, cfg.AlphaVantage.RequestTimeoutSec)
	require.Equal(t, 5, cfg.AlphaVantage.MaxRetries)
	require.Equal(t, 500, cfg.AlphaVantage.BackoffFactorMs)
	require.Equal(t, 1, cfg.AlphaVantage.Concurrency)
	require.False(t, cfg.Finnhub.Enabled)
	require.Equal(t, "https://finnhub.io/api/v1/quote", cfg.Finnhub.BaseURL)
	require.Equal(t, 1000, cfg.Finnhub.PaceMs)
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	body := `{
		"alpha_vantage": {"api_key": "file-key", "max_retries": 3, "concurrency": 4},
		"finnhub": {"enabled": true, "api_key": "fh-key"}
	}`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	require.Equal(t, "file-key", cfg.AlphaVantage.APIKey)
	require.Equal(t, 3, cfg.AlphaVantage.MaxRetries)
	require.Equal(t, 4, cfg.AlphaVantage.Concurrency)
	require.True(t, cfg.Finnhub.Enabled)
	require.Equal(t, "fh-key", cfg.Finnhub.APIKey)

	// Fields the file does not mention keep their defaults.
	require.Equal(t, "https://www.alphavantage.co/query", cfg.AlphaVantage.BaseURL)
	require.Equal(t, 500, cfg.AlphaVantage.BackoffFactorMs)
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := config.Load(filepath.Join(t.TempDir(), "nope.json"))
	require.NoError(t, err)
	require.Equal(t, config.Default(), cfg)
}

func TestLoadBadJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte("{"), 0o600))

	_, err := config.Load(path)
	require.Error(t, err)
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("ALPHA_VANTAGE_API_KEY", "env-key")
	t.Setenv("ALPHA_VANTAGE_BASE_URL", "https://alphavantage.test/query")
	t.Setenv("ALPHA_VANTAGE_MAX_RETRIES", "7")
	t.Setenv("ALPHA_VANTAGE_BACKOFF_MS", "250")
	t.Setenv("ALPHA_VANTAGE_CONCURRENCY", "3")
	t.Setenv("REQUEST_TIMEOUT_SEC", "15")
	t.Setenv("FINNHUB_ENABLED", "yes")
	t.Setenv("FINNHUB_KEY", "fh-env-key")
	t.Setenv("FINNHUB_PACE_MS", "500")

	cfg, err := config.Load(filepath.Join(t.TempDir(), "nope.json"))
	require.NoError(t, err)
	require.Equal(t, "env-key", cfg.AlphaVantage.APIKey)
	require.Equal(t, "https://alphavantage.test/query", cfg.AlphaVantage.BaseURL)
	require.Equal(t, 7, cfg.AlphaVantage.MaxRetries)
	require.Equal(t, 250, cfg.AlphaVantage.BackoffFactorMs)
	require.Equal(t, 3, cfg.AlphaVantage.Concurrency)
	require.Equal(t, 15, cfg.AlphaVantage.RequestTimeoutSec)
	require.True(t, cfg.Finnhub.Enabled)
	require.Equal(t, "fh-env-key", cfg.Finnhub.APIKey)
	require.Equal(t, 500, cfg.Finnhub.PaceMs)
}

func TestEnvIgnoresJunkNumbers(t *testing.T) {
	t.Setenv("ALPHA_VANTAGE_MAX_RETRIES", "lots")
	t.Setenv("ALPHA_VANTAGE_CONCURRENCY", "-2")

	cfg, err := config.Load(filepath.Join(t.TempDir(), "nope.json"))
	require.NoError(t, err)
	require.Equal(t, 5, cfg.AlphaVantage.MaxRetries)
	require.Equal(t, 1, cfg.AlphaVantage.Concurrency)
}
