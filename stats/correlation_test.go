package stats

import (
	"math"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/YuminosukeSato/statkit/pkg/errors"
)

func TestPearsonR(t *testing.T) {
	perfect, err := PearsonR([]float64{1, 2, 3, 4}, []float64{2, 4, 6, 8})
	require.NoError(t, err)
	assert.InDelta(t, 1, perfect, 1e-12)

	inverse, err := PearsonR([]float64{1, 2, 3, 4}, []float64{8, 6, 4, 2})
	require.NoError(t, err)
	assert.InDelta(t, -1, inverse, 1e-12)

	weak, err := PearsonR([]float64{1, 2, 3, 4}, []float64{1, 3, 2, 5})
	require.NoError(t, err)
	assert.GreaterOrEqual(t, weak, -1.0)
	assert.LessOrEqual(t, weak, 1.0)
}

func TestPearsonR_DegenerateNaN(t *testing.T) {
	// Constant x has zero variance; the result is NaN, not an error.
	r, err := PearsonR([]float64{3, 3, 3}, []float64{1, 2, 3})
	require.NoError(t, err)
	assert.True(t, math.IsNaN(r))
}

func TestPearsonR_Failures(t *testing.T) {
	var mismatch *errors.SizeMismatchError
	_, err := PearsonR([]float64{1, 2}, []float64{1})
	require.True(t, errors.As(err, &mismatch))

	var insufficient *errors.InsufficientDataError
	_, err = PearsonR([]float64{}, []float64{})
	require.True(t, errors.As(err, &insufficient))
}

func TestSpearmanR(t *testing.T) {
	// Monotone but nonlinear relation correlates perfectly on ranks.
	r, err := SpearmanR([]float64{1, 2, 3, 4}, []float64{1, 4, 9, 16})
	require.NoError(t, err)
	assert.InDelta(t, 1, r, 1e-12)

	inverse, err := SpearmanR([]float64{1, 2, 3}, []float64{9, 4, 1})
	require.NoError(t, err)
	assert.InDelta(t, -1, inverse, 1e-12)
}

func TestSpearmanR_Failures(t *testing.T) {
	var mismatch *errors.SizeMismatchError
	_, err := SpearmanR([]float64{1}, []float64{1, 2})
	require.True(t, errors.As(err, &mismatch))

	var insufficient *errors.InsufficientDataError
	_, err = SpearmanR([]int{}, []int{})
	require.True(t, errors.As(err, &insufficient))
}

func TestRankData(t *testing.T) {
	got := RankData([]float64{3, 1, 2})
	assert.Equal(t, []int{1, 2, 0}, got)
}

func TestRankData_TiesKeepOriginalOrder(t *testing.T) {
	got := RankData([]int{2, 1, 2})
	assert.Equal(t, []int{1, 0, 2}, got)
}

func TestRankData_Permutation(t *testing.T) {
	x := []float64{0.3, -2, 7, 1.5, 0.3}
	ranks := RankData(x)

	seen := make([]int, len(ranks))
	copy(seen, ranks)
	sort.Ints(seen)
	for i, v := range seen {
		assert.Equal(t, i, v, "ranks must be a permutation of 0..n-1")
	}

	// Reading x through the ranks reproduces ascending order.
	for i := 1; i < len(ranks); i++ {
		assert.LessOrEqual(t, x[ranks[i-1]], x[ranks[i]])
	}
}
