package alphavantage

import "fmt"

// Period selects the sampling granularity of a history request.
type Period string

const (
	PeriodIntraday Period = "intraday"
	PeriodDaily    Period = "daily"
	PeriodWeekly   Period = "weekly"
	PeriodMonthly  Period = "monthly"
)

func (p Period) valid() bool {
	switch p {
	case PeriodIntraday, PeriodDaily, PeriodWeekly, PeriodMonthly:
		return true
	}
	return false
}

// Interval narrows intraday requests; it is ignored for other periods.
type Interval string

const (
	Interval1Min  Interval = "1min"
	Interval5Min  Interval = "5min"
	Interval15Min Interval = "15min"
	Interval30Min Interval = "30min"
	Interval60Min Interval = "60min"
)

func (i Interval) valid() bool {
	switch i {
	case Interval1Min, Interval5Min, Interval15Min, Interval30Min, Interval60Min:
		return true
	}
	return false
}

// AssetClass distinguishes the two provider request families.
type AssetClass string

const (
	ClassEquity AssetClass = "equity"
	ClassCrypto AssetClass = "crypto"
)

// coinNames is the fixed allow-list of symbols served from the digital
// currency endpoints; every other symbol is treated as an equity.
var coinNames = []string{"BTC", "ETH", "DOGE", "AVAX", "SHIB", "LINK", "BCH", "LTC", "ETC", "AAVE"}

// CoinNames returns the supported cryptocurrency symbols.
func CoinNames() []string {
	return append([]string(nil), coinNames...)
}

// Classify maps a symbol to its asset class. The classification is a
// pure function of the symbol string and the static list; there is no
// external lookup.
func Classify(symbol string) AssetClass {
	for _, c := range coinNames {
		if symbol == c {
			return ClassCrypto
		}
	}
	return ClassEquity
}

// Query is one abstract history request.
type Query struct {
	Symbol string
	Period Period
	// Interval is required when Period is intraday.
	Interval Interval
	// Adjusted is meaningful for non-crypto, non-intraday queries only.
	Adjusted bool
}

// Validate rejects queries the provider can never answer.
func (q Query) Validate() error {
	if q.Symbol == "" {
		return fmt.Errorf("%w: empty symbol", ErrInvalidArgument)
	}
	if !q.Period.valid() {
		return fmt.Errorf("%w: period must be intraday, daily, weekly or monthly, got %q", ErrInvalidArgument, q.Period)
	}
	if q.Period == PeriodIntraday && !q.Interval.valid() {
		return fmt.Errorf("%w: interval must be 1min, 5min, 15min, 30min or 60min for intraday data", ErrInvalidArgument)
	}
	return nil
}
