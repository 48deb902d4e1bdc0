package series

import (
	"fmt"
	"time"

	"github.com/evdnx/taseries/indicator/core"
)

// Bar is a single OHLCV candle.
type Bar struct {
	Time   time.Time
	Open   float64
	High   float64
	Low    float64
	Close  float64
	Volume float64
}

// Frame is a column-oriented set of aligned OHLCV inputs. Index may be nil
// when the caller has no timestamps.
type Frame struct {
	Index  []time.Time
	Open   []float64
	High   []float64
	Low    []float64
	Close  []float64
	Volume []float64
}

// NewFrame builds a frame from aligned columns. Nil columns are allowed and
// simply make the indicators that need them fail; non-nil columns must all
// share one length.
func NewFrame(index []time.Time, open, high, low, close, volume []float64) (Frame, error) {
	f := Frame{Index: index, Open: open, High: high, Low: low, Close: close, Volume: volume}
	n := f.Len()
	if index != nil && len(index) != n {
		return Frame{}, fmt.Errorf("%w: index has %d entries, columns have %d", core.ErrMismatchedLengths, len(index), n)
	}
	var present [][]float64
	for _, col := range [][]float64{open, high, low, close, volume} {
		if col != nil {
			present = append(present, col)
		}
	}
	if err := core.SameLength(present...); err != nil {
		return Frame{}, err
	}
	return f, nil
}

// FrameFromBars converts a slice of candles into a Frame.
func FrameFromBars(bars []Bar) Frame {
	f := Frame{
		Index:  make([]time.Time, len(bars)),
		Open:   make([]float64, len(bars)),
		High:   make([]float64, len(bars)),
		Low:    make([]float64, len(bars)),
		Close:  make([]float64, len(bars)),
		Volume: make([]float64, len(bars)),
	}
	for i, b := range bars {
		f.Index[i] = b.Time
		f.Open[i] = b.Open
		f.High[i] = b.High
		f.Low[i] = b.Low
		f.Close[i] = b.Close
		f.Volume[i] = b.Volume
	}
	return f
}

// Len returns the number of bars, taken from the longest column.
func (f Frame) Len() int {
	n := 0
	for _, col := range [][]float64{f.Open, f.High, f.Low, f.Close, f.Volume} {
		if len(col) > n {
			n = len(col)
		}
	}
	return n
}

// Column returns the named price column: open, high, low, close or volume.
func (f Frame) Column(name string) ([]float64, error) {
	var col []float64
	switch name {
	case "open":
		col = f.Open
	case "high":
		col = f.High
	case "low":
		col = f.Low
	case "close", "":
		col = f.Close
	case "volume":
		col = f.Volume
	default:
		return nil, fmt.Errorf("%w: unknown column %q", core.ErrInvalidParams, name)
	}
	if col == nil {
		return nil, fmt.Errorf("%w: frame has no %q column", core.ErrInvalidParams, name)
	}
	return col, nil
}
