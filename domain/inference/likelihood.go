package inference

import (
	"gonum.org/v1/gonum/stat/distuv"

	"gridbayes/domain/core"
)

// EvaluateLikelihood computes, for each grid point theta_i, the sum of the
// per-observation normal densities of the sample under N(theta_i, popSpread).
//
// NOTE: summing (rather than multiplying) per-observation densities is the
// reference behavior of this pipeline. It coincides with the joint likelihood
// only for single-observation samples; it is kept deliberately and must not
// be "fixed" to a product.
//
// O(|grid| x |sample|).
func EvaluateLikelihood(sample Sample, grid Grid, popSpread float64) (LikelihoodCurve, error) {
	if popSpread <= 0 {
		return nil, core.NewInvalidParameterError("population spread", "must be > 0")
	}
	if len(sample) < 1 {
		return nil, core.NewInvalidParameterError("sample", "must contain at least one observation")
	}

	curve := make(LikelihoodCurve, grid.Len())
	for i, theta := range grid.Points {
		model := distuv.Normal{Mu: theta, Sigma: popSpread}
		total := 0.0
		for _, x := range sample {
			total += model.Prob(x)
		}
		curve[i] = total
	}
	return curve, nil
}
