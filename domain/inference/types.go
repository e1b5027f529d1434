package inference

import (
	"gridbayes/domain/core"
)

// ============================================================================
// STABLE PRIMITIVES (Canonical, never change)
// ============================================================================

// Sample is an ordered sequence of observed values. Immutable once generated.
// INVARIANT: length >= 1.
type Sample []float64

// NewSample validates and wraps a slice of observations
func NewSample(values []float64) (Sample, error) {
	if len(values) < 1 {
		return nil, core.NewInvalidParameterError("sample", "must contain at least one observation")
	}
	s := make(Sample, len(values))
	copy(s, values)
	return s, nil
}

// Grid is an evenly spaced, strictly increasing sequence of candidate values
// for the unknown parameter theta.
// INVARIANTS:
// - len(Points) == Count, Count >= 2
// - Points[0] == Lower, Points[len-1] == Upper
// - Spacing == (Upper - Lower) / (Count - 1)
type Grid struct {
	Lower   float64   `json:"lower"`
	Upper   float64   `json:"upper"`
	Count   int       `json:"count"`
	Spacing float64   `json:"spacing"`
	Points  []float64 `json:"points"`
}

// Len returns the number of grid points
func (g Grid) Len() int {
	return len(g.Points)
}

// LikelihoodCurve holds, per grid point, the likelihood of the whole sample
// under a normal model centered at that point. Same length as the grid,
// all elements >= 0.
type LikelihoodCurve []float64

// PriorCurve holds the prior density evaluated at each grid point. Same
// length as the grid, all elements >= 0.
type PriorCurve []float64

// PosteriorCurve is the unnormalized pointwise product of likelihood and
// prior. Same length as the grid.
type PosteriorCurve []float64

// PosteriorDistribution is a PosteriorCurve divided by its own sum.
// INVARIANT: elements sum to 1 within floating-point tolerance, all >= 0.
type PosteriorDistribution []float64
