package alphavantage

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"assetseries/internal/series"
)

const (
	closeField    = "4. close"
	adjCloseField = "5. adjusted close"

	tsDateTimeLayout = "2006-01-02 15:04:05"
	tsDateLayout     = "2006-01-02"
)

// ParseSeries extracts the canonical close-price series from a raw
// provider payload. The data block sits under the single top-level key
// whose name contains "Time Series"; the provider varies the exact
// wording per endpoint, so the substring is the only contract. Zero
// matches or more than one match is a malformed response.
//
// Column selection mirrors the provider: crypto always uses the close
// field; equities use the adjusted close only when adjusted was
// requested and the period is not intraday.
//
// Timestamp strings carry no zone. They parse in UTC for every asset
// class, so rows with equal wall-clock stamps keep joining across
// classes when columns are aligned into a table.
func ParseSeries(payload map[string]any, q Query, class AssetClass) (series.Series, error) {
	var blockKey string
	matches := 0
	for key := range payload {
		if strings.Contains(key, "Time Series") {
			blockKey = key
			matches++
		}
	}
	if matches == 0 {
		return nil, fmt.Errorf("%w: no time series key in payload", ErrMalformedResponse)
	}
	if matches > 1 {
		return nil, fmt.Errorf("%w: %d time series keys in payload", ErrMalformedResponse, matches)
	}

	block, ok := payload[blockKey].(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: %q is not an object", ErrMalformedResponse, blockKey)
	}

	field := closeField
	if class == ClassEquity && q.Adjusted && q.Period != PeriodIntraday {
		field = adjCloseField
	}

	out := make(series.Series, 0, len(block))
	for ts, rawRow := range block {
		row, ok := rawRow.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("%w: row %q is not an object", ErrMalformedResponse, ts)
		}
		when, err := parseTimestamp(ts, time.UTC)
		if err != nil {
			return nil, fmt.Errorf("%w: row %q: %v", ErrMalformedResponse, ts, err)
		}
		value, err := parseFloatField(row, field)
		if err != nil {
			return nil, fmt.Errorf("%w: row %q: %v", ErrMalformedResponse, ts, err)
		}
		out = append(out, series.PricePoint{Timestamp: when, Value: value})
	}

	// The provider returns rows newest-first; the canonical order is
	// ascending.
	sort.Slice(out, func(i, j int) bool { return out[i].Timestamp.Before(out[j].Timestamp) })
	return out, nil
}

func parseTimestamp(s string, loc *time.Location) (time.Time, error) {
	if t, err := time.ParseInLocation(tsDateTimeLayout, s, loc); err == nil {
		return t, nil
	}
	return time.ParseInLocation(tsDateLayout, s, loc)
}

func parseFloatField(row map[string]any, field string) (float64, error) {
	v, ok := row[field]
	if !ok {
		return 0, fmt.Errorf("missing field %q", field)
	}
	switch x := v.(type) {
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(x), 64)
		if err != nil {
			return 0, fmt.Errorf("field %q: %v", field, err)
		}
		return f, nil
	case float64:
		return x, nil
	default:
		return 0, fmt.Errorf("field %q has unexpected type %T", field, v)
	}
}
