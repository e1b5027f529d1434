package inference

import (
	"gonum.org/v1/gonum/stat/distuv"

	"gridbayes/domain/core"
)

// EvaluatePrior computes the normal prior density N(priorMean, priorSpread)
// at each grid point. Pure, deterministic, O(|grid|).
func EvaluatePrior(grid Grid, priorMean, priorSpread float64) (PriorCurve, error) {
	if priorSpread <= 0 {
		return nil, core.NewInvalidParameterError("prior spread", "must be > 0")
	}

	prior := distuv.Normal{Mu: priorMean, Sigma: priorSpread}
	curve := make(PriorCurve, grid.Len())
	for i, theta := range grid.Points {
		curve[i] = prior.Prob(theta)
	}
	return curve, nil
}
