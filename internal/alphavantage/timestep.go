package alphavantage

import "fmt"

// TimeStep returns the scaling fraction covered by one observation at
// the given period: fraction of a year for daily, weekly and monthly
// data, fraction of a day for intraday intervals. Mean per-step return
// statistics divided by this step give annualized (resp. daily)
// figures.
func TimeStep(p Period, iv Interval) (float64, error) {
	switch p {
	case PeriodDaily:
		return 1.0 / 365, nil
	case PeriodWeekly:
		return 1.0 / 52, nil
	case PeriodMonthly:
		return 1.0 / 12, nil
	case PeriodIntraday:
		switch iv {
		case Interval1Min:
			return 1.0 / (24 * 60), nil
		case Interval5Min:
			return 5.0 / (24 * 60), nil
		case Interval15Min:
			return 15.0 / (24 * 60), nil
		case Interval30Min:
			return 30.0 / (24 * 60), nil
		case Interval60Min:
			return 1.0 / 24, nil
		}
		return 0, fmt.Errorf("%w: invalid interval for intraday period", ErrInvalidArgument)
	}
	return 0, fmt.Errorf("%w: invalid period %q", ErrInvalidArgument, p)
}
