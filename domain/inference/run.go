package inference

import (
	"gridbayes/domain/core"
)

// ============================================================================
// RUN CONFIGURATION
// ============================================================================

// RunConfig is the complete configuration surface of a single inference run.
type RunConfig struct {
	SampleSize       int     `json:"sample_size"`
	PopulationMean   float64 `json:"population_mean"`
	PopulationSpread float64 `json:"population_spread"`

	GridLower  float64 `json:"grid_lower"`
	GridUpper  float64 `json:"grid_upper"`
	GridPoints int     `json:"grid_points"`

	PriorMean   float64 `json:"prior_mean"`
	PriorSpread float64 `json:"prior_spread"`

	// Seed drives the sample generator; identical seeds reproduce runs.
	Seed int64 `json:"seed"`

	// Observations, when non-empty, bypasses the generator and uses the
	// given values as the sample directly.
	Observations []float64 `json:"observations,omitempty"`
}

// DefaultRunConfig returns the canonical single-observation scenario.
func DefaultRunConfig() RunConfig {
	return RunConfig{
		SampleSize:       1,
		PopulationMean:   3.1,
		PopulationSpread: 0.8,
		GridLower:        -10,
		GridUpper:        10,
		GridPoints:       500,
		PriorMean:        2.3,
		PriorSpread:      0.5,
		Seed:             42,
	}
}

// Validate checks every configured value against its stated constraint.
// All violations report as InvalidParameter.
func (c RunConfig) Validate() error {
	if len(c.Observations) == 0 && c.SampleSize < 1 {
		return core.NewInvalidParameterError("sample size", "must be >= 1")
	}
	if c.PopulationSpread <= 0 {
		return core.NewInvalidParameterError("population spread", "must be > 0")
	}
	if c.GridUpper <= c.GridLower {
		return core.NewInvalidParameterError("grid bounds", "upper must be greater than lower")
	}
	if c.GridPoints < 2 {
		return core.NewInvalidParameterError("grid point count", "must be >= 2")
	}
	if c.PriorSpread <= 0 {
		return core.NewInvalidParameterError("prior spread", "must be > 0")
	}
	return nil
}

// ============================================================================
// RUN RESULTS
// ============================================================================

// SampleSummary carries descriptive statistics of the observed sample.
type SampleSummary struct {
	Mean   float64 `json:"mean"`
	StdDev float64 `json:"std_dev"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
	Median float64 `json:"median"`
}

// RunManifest captures the audit metadata of a completed run.
type RunManifest struct {
	RunID      core.RunID     `json:"run_id"`
	Seed       int64          `json:"seed"`
	SampleSize int            `json:"sample_size"`
	GridPoints int            `json:"grid_points"`
	RuntimeMs  int64          `json:"runtime_ms"`
	CreatedAt  core.Timestamp `json:"created_at"`
}

// RunResult is the complete output of one inference run. The three display
// curves are each independently normalized so they overlay on one chart; the
// posterior is the one true probability mass approximation.
type RunResult struct {
	Config   RunConfig   `json:"config"`
	Manifest RunManifest `json:"manifest"`

	Sample  Sample        `json:"sample"`
	Summary SampleSummary `json:"summary"`
	Grid    Grid          `json:"grid"`

	Likelihood        LikelihoodCurve       `json:"likelihood"`         // raw
	Prior             PriorCurve            `json:"prior"`              // raw
	LikelihoodDisplay []float64             `json:"likelihood_display"` // normalized for overlay
	PriorDisplay      []float64             `json:"prior_display"`      // normalized for overlay
	Unnormalized      PosteriorCurve        `json:"unnormalized"`
	Posterior         PosteriorDistribution `json:"posterior"`

	PosteriorMean float64 `json:"posterior_mean"`
}
