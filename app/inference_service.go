package app

import (
	"context"
	"time"

	"github.com/montanaflynn/stats"
	"golang.org/x/sync/semaphore"

	"gridbayes/domain/core"
	"gridbayes/domain/inference"
	"gridbayes/internal"
	"gridbayes/ports"
)

// InferenceService executes the grid-approximation pipeline: sample, grid,
// likelihood, prior, combine, summarize. A weighted semaphore bounds how many
// runs execute at once when the service is driven from HTTP.
type InferenceService struct {
	rngPort ports.RNGPort
	sem     *semaphore.Weighted
	logger  *internal.Logger
}

// NewInferenceService creates an inference service. maxConcurrent <= 0 falls
// back to a single in-flight run.
func NewInferenceService(rngPort ports.RNGPort, maxConcurrent int64) *InferenceService {
	if maxConcurrent <= 0 {
		maxConcurrent = 1
	}
	return &InferenceService{
		rngPort: rngPort,
		sem:     semaphore.NewWeighted(maxConcurrent),
		logger:  internal.DefaultLogger,
	}
}

// Run executes a single inference run. Every stage consumes immutable inputs
// and produces a fresh output; nothing outlives the returned result.
func (s *InferenceService) Run(ctx context.Context, cfg inference.RunConfig) (*inference.RunResult, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if err := s.sem.Acquire(ctx, 1); err != nil {
		return nil, err
	}
	defer s.sem.Release(1)

	startTime := time.Now()
	runID := core.NewRunID()

	sample, err := s.resolveSample(ctx, cfg)
	if err != nil {
		return nil, err
	}

	grid, err := inference.BuildGrid(cfg.GridLower, cfg.GridUpper, cfg.GridPoints)
	if err != nil {
		return nil, err
	}

	likelihood, err := inference.EvaluateLikelihood(sample, grid, cfg.PopulationSpread)
	if err != nil {
		return nil, err
	}

	prior, err := inference.EvaluatePrior(grid, cfg.PriorMean, cfg.PriorSpread)
	if err != nil {
		return nil, err
	}

	unnormalized, posterior, err := inference.Combine(likelihood, prior)
	if err != nil {
		return nil, err
	}

	mean, err := inference.PosteriorMean(grid, posterior)
	if err != nil {
		return nil, err
	}

	// Independently normalized copies of the raw curves for overlay display.
	likelihoodDisplay, err := inference.Normalize(likelihood)
	if err != nil {
		return nil, err
	}
	priorDisplay, err := inference.Normalize(prior)
	if err != nil {
		return nil, err
	}

	summary := summarizeSample(sample)
	runtimeMs := time.Since(startTime).Milliseconds()

	s.logger.Info("run %s completed: n=%d grid=%d posterior_mean=%.6f (%dms)",
		runID.String(), len(sample), grid.Len(), mean, runtimeMs)

	return &inference.RunResult{
		Config: cfg,
		Manifest: inference.RunManifest{
			RunID:      runID,
			Seed:       cfg.Seed,
			SampleSize: len(sample),
			GridPoints: grid.Len(),
			RuntimeMs:  runtimeMs,
			CreatedAt:  core.Now(),
		},
		Sample:            sample,
		Summary:           summary,
		Grid:              grid,
		Likelihood:        likelihood,
		Prior:             prior,
		LikelihoodDisplay: likelihoodDisplay,
		PriorDisplay:      priorDisplay,
		Unnormalized:      unnormalized,
		Posterior:         posterior,
		PosteriorMean:     mean,
	}, nil
}

// resolveSample either wraps explicit observations or draws a fresh sample
// from a seeded stream named after the operation.
func (s *InferenceService) resolveSample(ctx context.Context, cfg inference.RunConfig) (inference.Sample, error) {
	if len(cfg.Observations) > 0 {
		return inference.NewSample(cfg.Observations)
	}

	r, err := s.rngPort.SeededStream(ctx, "sample_generation", cfg.Seed)
	if err != nil {
		return nil, err
	}
	return inference.GenerateSample(r, cfg.SampleSize, cfg.PopulationMean, cfg.PopulationSpread)
}

func summarizeSample(sample inference.Sample) inference.SampleSummary {
	data := []float64(sample)

	mean, _ := stats.Mean(data)
	min, _ := stats.Min(data)
	max, _ := stats.Max(data)
	median, _ := stats.Median(data)

	stdDev, _ := stats.StandardDeviation(data)

	return inference.SampleSummary{
		Mean:   mean,
		StdDev: stdDev,
		Min:    min,
		Max:    max,
		Median: median,
	}
}
