package stats

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"

	"github.com/YuminosukeSato/statkit/maths"
	"github.com/YuminosukeSato/statkit/pkg/errors"
)

// PearsonR returns the Pearson product-moment correlation coefficient of x
// and y, clamped to [-1, 1]. A non-positive denominator yields NaN, not an
// error; callers must check for NaN explicitly.
func PearsonR[T maths.Real](x, y []T) (float64, error) {
	if len(x) != len(y) {
		return 0, errors.NewSizeMismatchError("PearsonR", len(x), len(y))
	}
	if len(x) == 0 {
		return 0, errors.NewInsufficientDataError("PearsonR", 1, 0)
	}

	xc, err := Center(x)
	if err != nil {
		return 0, err
	}
	yc, err := Center(y)
	if err != nil {
		return 0, err
	}

	sxx := floats.Dot(xc, xc)
	syy := floats.Dot(yc, yc)
	sxy := floats.Dot(xc, yc)

	denom := math.Sqrt(sxx) * math.Sqrt(syy)
	if denom <= 0 {
		return math.NaN(), nil
	}

	r := sxy / denom
	return math.Max(math.Min(r, 1), -1), nil
}

// SpearmanR returns the Spearman rank-order correlation coefficient,
// computed as PearsonR over the ranks of x and y.
func SpearmanR[T maths.Real](x, y []T) (float64, error) {
	if len(x) != len(y) {
		return 0, errors.NewSizeMismatchError("SpearmanR", len(x), len(y))
	}
	if len(x) == 0 {
		return 0, errors.NewInsufficientDataError("SpearmanR", 1, 0)
	}

	xr := RankData(x)
	yr := RankData(y)
	return PearsonR(xr, yr)
}

// RankData returns the permutation of 0-based original indices that sorts x
// ascending. The sort is stable, so ties keep their original order; ranks
// are never averaged.
func RankData[T maths.Real](x []T) []int {
	type pair struct {
		value T
		index int
	}
	pairs := make([]pair, len(x))
	for i, v := range x {
		pairs[i] = pair{value: v, index: i}
	}

	sort.SliceStable(pairs, func(i, j int) bool {
		return pairs[i].value < pairs[j].value
	})

	ranks := make([]int, len(x))
	for i, p := range pairs {
		ranks[i] = p.index
	}
	return ranks
}
