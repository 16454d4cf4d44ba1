package series

import "math"

// LogReturns maps a price table to per-period log returns. The first
// row is dropped; column order is preserved.
func LogReturns(t Table) Table {
	out := Table{Symbols: append([]string(nil), t.Symbols...)}
	if len(t.Rows) < 2 {
		return out
	}
	out.Rows = make([]Row, 0, len(t.Rows)-1)
	for i := 1; i < len(t.Rows); i++ {
		prev, cur := t.Rows[i-1], t.Rows[i]
		values := make([]float64, len(cur.Values))
		for j := range cur.Values {
			values[j] = math.Log(cur.Values[j]) - math.Log(prev.Values[j])
		}
		out.Rows = append(out.Rows, Row{Timestamp: cur.Timestamp, Values: values})
	}
	return out
}

// ArithmeticReturns is exp(log return) - 1, matching the reference
// definition rather than a direct price ratio.
func ArithmeticReturns(t Table) Table {
	out := LogReturns(t)
	for i := range out.Rows {
		for j, v := range out.Rows[i].Values {
			out.Rows[i].Values[j] = math.Expm1(v)
		}
	}
	return out
}

// Means returns the per-column mean, parallel to Symbols. Columns of an
// empty table come back as zeros.
func Means(t Table) []float64 {
	means := make([]float64, len(t.Symbols))
	if len(t.Rows) == 0 {
		return means
	}
	for _, r := range t.Rows {
		for j, v := range r.Values {
			means[j] += v
		}
	}
	for j := range means {
		means[j] /= float64(len(t.Rows))
	}
	return means
}
