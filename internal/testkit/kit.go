package testkit

import (
	"context"

	"gridbayes/adapters/rng"
	"gridbayes/app"
	"gridbayes/domain/inference"
)

// TestKit provides the canonical demo scenario shared by the web UI default
// view and integration tests: a single observation at 3.1 with population
// spread 0.8, a 500-point grid over [-10, 10], and a Normal(2.3, 0.5) prior.
type TestKit struct {
	service *app.InferenceService
}

// NewTestKit creates a test kit around a fully wired inference service
func NewTestKit() *TestKit {
	return &TestKit{
		service: app.NewInferenceService(rng.NewSeededAdapter(), 1),
	}
}

// Service exposes the wired inference service
func (k *TestKit) Service() *app.InferenceService {
	return k.service
}

// DemoConfig returns the canonical single-observation configuration. The
// observation is pinned so the posterior mean is stable across runs.
func (k *TestKit) DemoConfig() inference.RunConfig {
	cfg := inference.DefaultRunConfig()
	cfg.Observations = []float64{3.1}
	return cfg
}

// DemoRun executes the canonical scenario
func (k *TestKit) DemoRun(ctx context.Context) (*inference.RunResult, error) {
	return k.service.Run(ctx, k.DemoConfig())
}
