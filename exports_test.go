package taseries

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/evdnx/taseries/internal/testutil"
)

func TestRSI_EmptyWhenPeriodCoversInput(t *testing.T) {
	data := testutil.Closes(20)
	out, err := RSI(data, 20, false)
	require.NoError(t, err)
	assert.NotNil(t, out)
	assert.Empty(t, out)

	out, err = RSI(data, 19, false)
	require.NoError(t, err)
	assert.Len(t, out, 1)
}

func TestMismatchedLengthsFailFast(t *testing.T) {
	_, err := TrueRange([]float64{1, 2, 3}, []float64{1, 2}, []float64{1, 2, 3})
	assert.ErrorIs(t, err, ErrMismatchedLengths)

	_, err = StochasticOscillator([]float64{1}, []float64{1}, []float64{1, 2}, 1, 1, 1)
	assert.ErrorIs(t, err, ErrMismatchedLengths)
}

func TestInvalidParams(t *testing.T) {
	_, err := MACD(testutil.Closes(60), 26, 12, 9)
	assert.ErrorIs(t, err, ErrInvalidParams)

	_, err = StdErr(testutil.Closes(10), 1)
	assert.ErrorIs(t, err, ErrInvalidParams)

	_, err = BollingerBands(testutil.Closes(10), 5, -2)
	assert.ErrorIs(t, err, ErrInvalidParams)
}

func TestLabeledMatchesArray(t *testing.T) {
	high, low, close, volume := testutil.OHLCV(50)
	index := make([]time.Time, len(close))
	for i := range index {
		index[i] = time.Unix(int64(i)*60, 0).UTC()
	}

	plain, err := WMA(close, 10)
	require.NoError(t, err)
	labeled := Label("wma", index, plain)
	assert.Equal(t, plain, labeled.Values)
	assert.Equal(t, index[9], labeled.Index[0])

	frame, err := NewFrame(index, nil, high, low, close, volume)
	require.NoError(t, err)
	outs, err := Evaluate(context.Background(), frame, []Request{
		{Indicator: "wma", Format: "labeled", Params: map[string]float64{"period": 10}},
	})
	require.NoError(t, err)
	require.Len(t, outs, 1)
	assert.Equal(t, FormatLabeled, outs[0].Format)
	assert.Equal(t, plain, outs[0].Values())
	assert.Equal(t, labeled.Index, outs[0].Table.Index)
}

func TestLoadConfigAndEvaluate(t *testing.T) {
	doc, err := LoadConfig(strings.NewReader(`
defaults:
  period: 5
requests:
  - indicator: sum
  - indicator: stochastic_oscillator
    params: {k_period: 5, k_slowing: 1, d_period: 2}
`))
	require.NoError(t, err)

	s, err := NewSuite(doc.Defaults)
	require.NoError(t, err)

	high, low, close, volume := testutil.OHLCV(30)
	frame, err := NewFrame(nil, nil, high, low, close, volume)
	require.NoError(t, err)

	outs, err := s.Evaluate(context.Background(), frame, doc.Requests)
	require.NoError(t, err)
	require.Len(t, outs, 2)

	sum, err := Sum(close, 5)
	require.NoError(t, err)
	assert.Equal(t, sum, outs[0].Values())

	stoch, err := StochasticOscillator(high, low, close, 5, 1, 2)
	require.NoError(t, err)
	assert.Equal(t, stoch.K, outs[1].Columns[0].Values)
	assert.Equal(t, stoch.D, outs[1].Columns[1].Values)
}

func TestPlotExport(t *testing.T) {
	res, err := BollingerBands(testutil.Closes(30), 10, 2)
	require.NoError(t, err)

	tbl := Bundle(nil,
		Column{Name: "lower", Values: res.Lower},
		Column{Name: "middle", Values: res.Middle},
		Column{Name: "upper", Values: res.Upper},
	)
	csv, err := FormatPlotDataCSV(tbl.PlotData())
	require.NoError(t, err)
	assert.Contains(t, csv, "upper")
}
