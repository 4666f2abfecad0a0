package stats

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/YuminosukeSato/statkit/pkg/errors"
)

func TestMean(t *testing.T) {
	got, err := Mean([]float64{1, 2, 3, 4})
	require.NoError(t, err)
	assert.InDelta(t, 2.5, got, 1e-12)

	intMean, err := Mean([]int{1, 2})
	require.NoError(t, err)
	assert.InDelta(t, 1.5, intMean, 1e-12)
}

func TestMean_Empty(t *testing.T) {
	_, err := Mean([]float64{})
	var insufficient *errors.InsufficientDataError
	require.True(t, errors.As(err, &insufficient))
}

func TestHMean(t *testing.T) {
	got, err := HMean([]float64{1, 2, 4})
	require.NoError(t, err)
	assert.InDelta(t, 3/1.75, got, 1e-12)
}

func TestHMean_Failures(t *testing.T) {
	_, err := HMean([]float64{})
	var insufficient *errors.InsufficientDataError
	require.True(t, errors.As(err, &insufficient))

	// Zero elements surface Reciprocal's InvalidValueError unchanged.
	_, err = HMean([]float64{1, 0, 2})
	var invalid *errors.InvalidValueError
	require.True(t, errors.As(err, &invalid))
}

func TestGMean(t *testing.T) {
	got, err := GMean([]float64{1, 2, 4})
	require.NoError(t, err)
	assert.InDelta(t, 2, got, 1e-12)
}

func TestGMean_Failures(t *testing.T) {
	_, err := GMean([]int{})
	var insufficient *errors.InsufficientDataError
	require.True(t, errors.As(err, &insufficient))

	_, err = GMean([]float64{1, -2, 3})
	var invalid *errors.InvalidValueError
	require.True(t, errors.As(err, &invalid))
}

func TestPMean(t *testing.T) {
	x := []float64{1, 2, 4}

	// p = 1 reduces to the arithmetic mean.
	arith, err := PMean(x, 1)
	require.NoError(t, err)
	mean, err := Mean(x)
	require.NoError(t, err)
	assert.InDelta(t, mean, arith, 1e-12)

	// p = -1 reduces to the harmonic mean.
	harm, err := PMean(x, -1)
	require.NoError(t, err)
	hmean, err := HMean(x)
	require.NoError(t, err)
	assert.InDelta(t, hmean, harm, 1e-12)

	quad, err := PMean([]float64{3, 4}, 2)
	require.NoError(t, err)
	assert.InDelta(t, math.Sqrt(12.5), quad, 1e-12)
}

func TestPMean_Failures(t *testing.T) {
	_, err := PMean([]float64{}, 2)
	var insufficient *errors.InsufficientDataError
	require.True(t, errors.As(err, &insufficient))

	_, err = PMean([]float64{1, 0}, 2)
	var invalid *errors.InvalidValueError
	require.True(t, errors.As(err, &invalid))
}

func TestVar(t *testing.T) {
	x := []float64{1, 2, 3, 4}

	population, err := Var(x, 0)
	require.NoError(t, err)
	assert.InDelta(t, 1.25, population, 1e-12)

	sample, err := Var(x, 1)
	require.NoError(t, err)
	assert.InDelta(t, 5.0/3.0, sample, 1e-12)
}

func TestVar_Failures(t *testing.T) {
	var insufficient *errors.InsufficientDataError
	_, err := Var([]float64{1}, 0)
	require.True(t, errors.As(err, &insufficient))

	var degenerate *errors.DegenerateDivisionError
	_, err = Var([]float64{1, 2}, 2)
	require.True(t, errors.As(err, &degenerate))
}

func TestStd(t *testing.T) {
	got, err := Std([]float64{1, 2, 3, 4}, 0)
	require.NoError(t, err)
	assert.InDelta(t, math.Sqrt(1.25), got, 1e-12)
}

func TestHStd(t *testing.T) {
	x := []float64{1, 2, 4}

	rec := []float64{1, 0.5, 0.25}
	std, err := Std(rec, 0)
	require.NoError(t, err)

	got, err := HStd(x, 0)
	require.NoError(t, err)
	assert.InDelta(t, 1/std, got, 1e-12)
}

func TestHStd_ZeroElement(t *testing.T) {
	_, err := HStd([]float64{1, 0, 2}, 0)
	var invalid *errors.InvalidValueError
	require.True(t, errors.As(err, &invalid))
}

func TestGStd(t *testing.T) {
	x := []float64{1, math.E, math.E * math.E}

	logs := []float64{0, 1, 2}
	std, err := Std(logs, 0)
	require.NoError(t, err)

	got, err := GStd(x, 0)
	require.NoError(t, err)
	assert.InDelta(t, math.Exp(std), got, 1e-12)
}

func TestGStd_NonPositive(t *testing.T) {
	_, err := GStd([]float64{1, -1}, 0)
	var invalid *errors.InvalidValueError
	require.True(t, errors.As(err, &invalid))
}

func TestSkewness(t *testing.T) {
	symmetric, err := Skewness([]float64{1, 2, 3, 4})
	require.NoError(t, err)
	assert.InDelta(t, 0, symmetric, 1e-12)

	skewed, err := Skewness([]float64{1, 1, 1, 10})
	require.NoError(t, err)
	assert.Greater(t, skewed, 0.0)
}

func TestSkewness_Short(t *testing.T) {
	_, err := Skewness([]float64{1})
	var insufficient *errors.InsufficientDataError
	require.True(t, errors.As(err, &insufficient))
}

func TestKurtosis(t *testing.T) {
	// centered = [-1.5 -0.5 0.5 1.5], m2 = 5, m4 = 10.25
	got, err := Kurtosis([]float64{1, 2, 3, 4})
	require.NoError(t, err)
	assert.InDelta(t, 10.25*4/25, got, 1e-12)
}

func TestKurtosis_Short(t *testing.T) {
	_, err := Kurtosis([]float64{})
	var insufficient *errors.InsufficientDataError
	require.True(t, errors.As(err, &insufficient))
}
