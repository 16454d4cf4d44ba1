package alphavantage

import (
	"net/url"
	"strconv"
	"strings"
)

// BuildRequest maps an abstract query to the provider function name and
// its parameter set. The api key is added by the Client, not here.
//
// Function selection:
//
//	crypto + intraday          -> CRYPTO_INTRADAY
//	crypto + daily/weekly/...  -> DIGITAL_CURRENCY_<PERIOD>
//	equity + intraday          -> TIME_SERIES_INTRADAY
//	equity + adjusted          -> TIME_SERIES_<PERIOD>_ADJUSTED
//	equity otherwise           -> TIME_SERIES_<PERIOD>
func BuildRequest(q Query, class AssetClass) (string, url.Values, error) {
	if err := q.Validate(); err != nil {
		return "", nil, err
	}

	per := strings.ToUpper(string(q.Period))
	var function string
	switch {
	case class == ClassCrypto && q.Period == PeriodIntraday:
		function = "CRYPTO_INTRADAY"
	case class == ClassCrypto:
		function = "DIGITAL_CURRENCY_" + per
	case q.Period == PeriodIntraday:
		function = "TIME_SERIES_INTRADAY"
	case q.Adjusted:
		function = "TIME_SERIES_" + per + "_ADJUSTED"
	default:
		function = "TIME_SERIES_" + per
	}

	params := url.Values{}
	params.Set("function", function)
	params.Set("symbol", q.Symbol)
	params.Set("outputsize", "full")
	if class == ClassCrypto {
		params.Set("market", "USD")
	}
	if q.Period == PeriodIntraday {
		params.Set("interval", string(q.Interval))
	} else if class == ClassEquity {
		// Crypto and intraday requests never carry the adjusted flag.
		params.Set("adjusted", strconv.FormatBool(q.Adjusted))
	}
	return function, params, nil
}
