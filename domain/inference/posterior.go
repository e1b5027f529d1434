package inference

import (
	"gonum.org/v1/gonum/floats"

	"gridbayes/domain/core"
)

// Combine multiplies likelihood and prior pointwise into the unnormalized
// posterior, then normalizes by the sum into a discrete probability mass
// approximation. Fails with DimensionMismatch on length disagreement and
// with DegenerateNormalization when the product sums to zero (non-overlapping
// supports on the grid).
func Combine(likelihood LikelihoodCurve, prior PriorCurve) (PosteriorCurve, PosteriorDistribution, error) {
	if len(likelihood) != len(prior) {
		return nil, nil, core.NewDimensionMismatchError("prior curve", len(likelihood), len(prior))
	}

	unnormalized := make(PosteriorCurve, len(likelihood))
	floats.MulTo(unnormalized, likelihood, prior)

	normalized, err := Normalize(unnormalized)
	if err != nil {
		return nil, nil, err
	}
	return unnormalized, PosteriorDistribution(normalized), nil
}

// Normalize divides a curve by its own sum so it becomes a discrete
// probability mass approximation. Used by Combine and independently for
// comparative display of raw likelihood and prior curves. Fails with
// DegenerateNormalization on a zero sum rather than producing NaN.
func Normalize(curve []float64) ([]float64, error) {
	total := floats.Sum(curve)
	if total == 0 {
		return nil, core.NewDegenerateNormalizationError("curve")
	}

	normalized := make([]float64, len(curve))
	copy(normalized, curve)
	floats.Scale(1/total, normalized)
	return normalized, nil
}

// PosteriorMean computes the grid-weighted average of the normalized
// posterior mass: sum over i of grid[i] * posterior[i].
func PosteriorMean(grid Grid, posterior PosteriorDistribution) (float64, error) {
	if grid.Len() != len(posterior) {
		return 0, core.NewDimensionMismatchError("posterior distribution", grid.Len(), len(posterior))
	}
	return floats.Dot(grid.Points, posterior), nil
}
