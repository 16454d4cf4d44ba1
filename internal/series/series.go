// Package series holds the canonical time-series shapes produced by the
// normalization layer: single-symbol price series and timestamp-aligned
// multi-symbol tables.
package series

import (
	"fmt"
	"time"
)

// PricePoint is one observation of a price series.
type PricePoint struct {
	Timestamp time.Time `json:"timestamp"`
	Value     float64   `json:"value"`
}

// Series is an ordered price sequence, strictly ascending by timestamp
// with unique timestamps. Treat a returned Series as immutable.
type Series []PricePoint

// Row is one aligned observation across all table columns. Values is
// parallel to the owning Table's Symbols.
type Row struct {
	Timestamp time.Time `json:"timestamp"`
	Values    []float64 `json:"values"`
}

// Table is a timestamp-aligned matrix with one column per symbol. Only
// timestamps present in every column appear as rows, so every row has a
// defined value for every column.
type Table struct {
	Symbols []string `json:"symbols"`
	Rows    []Row    `json:"rows"`
}

// Column extracts one symbol's series from the table.
func (t Table) Column(symbol string) (Series, bool) {
	for i, s := range t.Symbols {
		if s != symbol {
			continue
		}
		out := make(Series, 0, len(t.Rows))
		for _, r := range t.Rows {
			out = append(out, PricePoint{Timestamp: r.Timestamp, Value: r.Values[i]})
		}
		return out, true
	}
	return nil, false
}

// Align inner-joins the given columns on timestamp equality. columns is
// parallel to symbols and each column must already be ascending; rows
// whose timestamp is missing from any column are dropped. The output
// row order follows the first column, so it comes out ascending.
func Align(symbols []string, columns []Series) (Table, error) {
	if len(symbols) != len(columns) {
		return Table{}, fmt.Errorf("series: %d symbols for %d columns", len(symbols), len(columns))
	}
	t := Table{Symbols: append([]string(nil), symbols...)}
	if len(columns) == 0 {
		return t, nil
	}

	byTime := make([]map[int64]float64, len(columns))
	for i, col := range columns {
		m := make(map[int64]float64, len(col))
		for _, p := range col {
			m[p.Timestamp.UnixNano()] = p.Value
		}
		byTime[i] = m
	}

	t.Rows = make([]Row, 0, len(columns[0]))
	for _, p := range columns[0] {
		key := p.Timestamp.UnixNano()
		values := make([]float64, len(columns))
		present := true
		for i := range columns {
			v, ok := byTime[i][key]
			if !ok {
				present = false
				break
			}
			values[i] = v
		}
		if present {
			t.Rows = append(t.Rows, Row{Timestamp: p.Timestamp, Values: values})
		}
	}
	return t, nil
}
