package series

import (
	"math"
	"time"

	"github.com/evdnx/taseries/indicator/core"
)

// Series is one labeled indicator output.
type Series struct {
	Name   string
	Index  []time.Time
	Values []float64
}

// Len returns the number of values.
func (s Series) Len() int { return len(s.Values) }

// Column is one named output of a multi-output indicator.
type Column struct {
	Name   string
	Values []float64
}

// Table groups the columns of a multi-output indicator under one shared
// index.
type Table struct {
	Index   []time.Time
	Columns []Column
}

// Label attaches the tail of index to a warm-up trimmed output, so value i
// is labeled index[len(index)-len(values)+i]. A nil index, or one shorter
// than values, leaves the series unlabeled.
func Label(name string, index []time.Time, values []float64) Series {
	return Series{Name: name, Index: tailIndex(index, len(values)), Values: values}
}

// Bundle builds a table whose index is the tail of the input index. Columns
// shorter than the longest one are left-padded with NaN so that every row is
// complete.
func Bundle(index []time.Time, columns ...Column) Table {
	n := 0
	for _, c := range columns {
		if len(c.Values) > n {
			n = len(c.Values)
		}
	}
	cols := make([]Column, len(columns))
	for i, c := range columns {
		values := c.Values
		if pad := n - len(values); pad > 0 {
			padded := make([]float64, n)
			for j := 0; j < pad; j++ {
				padded[j] = math.NaN()
			}
			copy(padded[pad:], values)
			values = padded
		}
		cols[i] = Column{Name: c.Name, Values: values}
	}
	return Table{Index: tailIndex(index, n), Columns: cols}
}

// Len returns the number of rows.
func (t Table) Len() int {
	if len(t.Columns) == 0 {
		return 0
	}
	return len(t.Columns[0].Values)
}

// Column looks a column up by name.
func (t Table) Column(name string) (Column, bool) {
	for _, c := range t.Columns {
		if c.Name == name {
			return c, true
		}
	}
	return Column{}, false
}

// Series returns the named column as a labeled series.
func (t Table) Series(name string) (Series, bool) {
	c, ok := t.Column(name)
	if !ok {
		return Series{}, false
	}
	return Series{Name: c.Name, Index: t.Index, Values: c.Values}, true
}

// PlotData converts every column into the plot export format. Timestamps are
// Unix milliseconds of the index.
func (t Table) PlotData() []core.PlotData {
	ts := unixMilli(t.Index)
	out := make([]core.PlotData, len(t.Columns))
	for i, c := range t.Columns {
		out[i] = core.NewLinePlot(c.Name, c.Values, ts)
	}
	return out
}

// PlotData converts the series into the plot export format.
func (s Series) PlotData() core.PlotData {
	return core.NewLinePlot(s.Name, s.Values, unixMilli(s.Index))
}

func tailIndex(index []time.Time, n int) []time.Time {
	if index == nil || len(index) < n {
		return nil
	}
	return index[len(index)-n:]
}

func unixMilli(index []time.Time) []int64 {
	if index == nil {
		return nil
	}
	ts := make([]int64, len(index))
	for i, t := range index {
		ts[i] = t.UnixMilli()
	}
	return ts
}
