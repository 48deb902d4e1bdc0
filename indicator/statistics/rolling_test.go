package statistics

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat"

	"github.com/evdnx/taseries/indicator/core"
	"github.com/evdnx/taseries/internal/testutil"
)

func TestConstantSeriesHasZeroDispersion(t *testing.T) {
	data := testutil.Constant(5, 5)

	sd, err := StdDev(data, 3)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0, 0}, sd)

	v, err := Var(data, 3)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0, 0}, v)

	se, err := StdErr(data, 3)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0, 0}, se)
}

func TestDispersionMatchesGonum(t *testing.T) {
	data := testutil.Closes(250)
	for _, period := range []int{2, 5, 14, 30} {
		v, err := Var(data, period)
		require.NoError(t, err)
		sd, err := StdDev(data, period)
		require.NoError(t, err)
		se, err := StdErr(data, period)
		require.NoError(t, err)
		require.Len(t, v, len(data)-WarmUp(period))

		for i := range v {
			window := data[i : i+period]
			wantVar := stat.Variance(window, nil)
			assert.InDelta(t, wantVar, v[i], 1e-9, "var period=%d i=%d", period, i)
			assert.InDelta(t, math.Sqrt(wantVar), sd[i], 1e-9, "stddev period=%d i=%d", period, i)
			assert.InDelta(t, math.Sqrt(wantVar)/math.Sqrt(float64(period)), se[i], 1e-9, "stderr period=%d i=%d", period, i)
		}
	}
}

func TestDispersionIgnoresLargeValuesOutsideWindow(t *testing.T) {
	v, err := Var([]float64{1e8, 1, 2, 3, 4}, 3)
	require.NoError(t, err)
	require.Len(t, v, 3)
	assert.InDelta(t, stat.Variance([]float64{1e8, 1, 2}, nil), v[0], 1)
	assert.InDeltaSlice(t, []float64{1, 1}, v[1:], 1e-9)

	sd, err := StdDev([]float64{1200, 5e9, 5e9 + 1, 5e9 + 2, 5e9 + 3}, 3)
	require.NoError(t, err)
	require.Len(t, sd, 3)
	assert.InDeltaSlice(t, []float64{1, 1}, sd[1:], 1e-9)

	pop, err := PopulationStdDev([]float64{1e9, 100, 101, 102}, 3)
	require.NoError(t, err)
	require.Len(t, pop, 2)
	assert.InDelta(t, math.Sqrt(2.0/3), pop[1], 1e-9)
}

func TestDispersionMatchesGonumAtVolumeScale(t *testing.T) {
	walk := testutil.RandomWalk(300, 5)
	data := make([]float64, 0, len(walk)+1)
	data = append(data, 4e12)
	for _, w := range walk {
		data = append(data, w*1e7)
	}

	const period = 20
	v, err := Var(data, period)
	require.NoError(t, err)
	pop, err := PopulationStdDev(data, period)
	require.NoError(t, err)
	require.Len(t, v, len(data)-WarmUp(period))

	n := float64(period)
	for i := range v {
		want := stat.Variance(data[i:i+period], nil)
		assert.InEpsilon(t, want, v[i], 1e-9, "var i=%d", i)
		assert.InEpsilon(t, math.Sqrt(want*(n-1)/n), pop[i], 1e-9, "population stddev i=%d", i)
	}
}

func TestSumIgnoresLargeValuesOutsideWindow(t *testing.T) {
	sums, err := Sum([]float64{1e17, 1, 2, 3}, 2)
	require.NoError(t, err)
	assert.Equal(t, []float64{1e17, 3, 5}, sums)
}

func TestPopulationStdDev(t *testing.T) {
	got, err := PopulationStdDev([]float64{2, 4, 4, 4, 5, 5, 7, 9}, 8)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{2}, got, 1e-12)
}

func TestExtremesAndSum(t *testing.T) {
	data := []float64{3, 1, 4, 1, 5, 9, 2, 6}

	mins, err := Min(data, 3)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 1, 1, 1, 2, 2}, mins)

	maxs, err := Max(data, 3)
	require.NoError(t, err)
	assert.Equal(t, []float64{4, 4, 5, 9, 9, 9}, maxs)

	sums, err := Sum(data, 3)
	require.NoError(t, err)
	assert.Equal(t, []float64{8, 6, 10, 15, 16, 17}, sums)
}

func TestExtremesMatchNaiveScan(t *testing.T) {
	data := testutil.RandomWalk(400, 11)
	const period = 17
	mins, err := Min(data, period)
	require.NoError(t, err)
	maxs, err := Max(data, period)
	require.NoError(t, err)
	for i := range mins {
		lo, hi := data[i], data[i]
		for _, v := range data[i : i+period] {
			lo = math.Min(lo, v)
			hi = math.Max(hi, v)
		}
		assert.Equal(t, lo, mins[i], "min at %d", i)
		assert.Equal(t, hi, maxs[i], "max at %d", i)
	}
}

func TestNaNOnlyPoisonsItsWindows(t *testing.T) {
	data := []float64{1, 2, math.NaN(), 4, 5, 6}

	sums, err := Sum(data, 2)
	require.NoError(t, err)
	require.Len(t, sums, 5)
	assert.Equal(t, 3.0, sums[0])
	assert.True(t, math.IsNaN(sums[1]))
	assert.True(t, math.IsNaN(sums[2]))
	assert.Equal(t, []float64{9, 11}, sums[3:])

	maxs, err := Max(data, 2)
	require.NoError(t, err)
	assert.True(t, math.IsNaN(maxs[1]))
	assert.True(t, math.IsNaN(maxs[2]))
	assert.Equal(t, []float64{5, 6}, maxs[3:])
}

func TestInsufficientAndInvalid(t *testing.T) {
	got, err := Sum([]float64{1, 2}, 3)
	require.NoError(t, err)
	assert.Empty(t, got)

	got, err = StdDev([]float64{1, 2}, 3)
	require.NoError(t, err)
	assert.Empty(t, got)

	_, err = Var([]float64{1, 2, 3}, 1)
	assert.True(t, errors.Is(err, core.ErrInvalidParams))

	_, err = Min([]float64{1, 2, 3}, 0)
	assert.True(t, errors.Is(err, core.ErrInvalidParams))
}
