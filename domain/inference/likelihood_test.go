package inference

import (
	"math"
	"testing"

	"gridbayes/domain/core"
)

func normalDensity(x, mean, sd float64) float64 {
	return math.Exp(-(x-mean)*(x-mean)/(2*sd*sd)) / (sd * math.Sqrt(2*math.Pi))
}

func TestEvaluateLikelihood_SingleObservationMatchesDensity(t *testing.T) {
	grid, err := BuildGrid(-10, 10, 101)
	if err != nil {
		t.Fatalf("BuildGrid failed: %v", err)
	}

	curve, err := EvaluateLikelihood(Sample{3.1}, grid, 0.8)
	if err != nil {
		t.Fatalf("EvaluateLikelihood failed: %v", err)
	}

	if len(curve) != grid.Len() {
		t.Fatalf("Curve length %d, want %d", len(curve), grid.Len())
	}
	for i, theta := range grid.Points {
		want := normalDensity(3.1, theta, 0.8)
		if math.Abs(curve[i]-want) > 1e-12 {
			t.Errorf("At theta=%v: got %v, want %v", theta, curve[i], want)
		}
	}
}

// The evaluator sums per-observation densities across the sample instead of
// multiplying them. That is the reference behavior of this pipeline and this
// test pins it down.
func TestEvaluateLikelihood_SumsAcrossSample(t *testing.T) {
	grid, err := BuildGrid(-5, 5, 51)
	if err != nil {
		t.Fatalf("BuildGrid failed: %v", err)
	}

	sample := Sample{1.0, 2.5}
	curve, err := EvaluateLikelihood(sample, grid, 1.2)
	if err != nil {
		t.Fatalf("EvaluateLikelihood failed: %v", err)
	}

	for i, theta := range grid.Points {
		want := normalDensity(1.0, theta, 1.2) + normalDensity(2.5, theta, 1.2)
		if math.Abs(curve[i]-want) > 1e-12 {
			t.Errorf("At theta=%v: got %v, want sum of densities %v", theta, curve[i], want)
		}
	}
}

func TestEvaluateLikelihood_NonNegative(t *testing.T) {
	grid, _ := BuildGrid(-20, 20, 400)
	curve, err := EvaluateLikelihood(Sample{0.5, -3.2, 7.7}, grid, 2.0)
	if err != nil {
		t.Fatalf("EvaluateLikelihood failed: %v", err)
	}
	for i, v := range curve {
		if v < 0 {
			t.Errorf("Negative likelihood at %d: %v", i, v)
		}
	}
}

func TestEvaluateLikelihood_InvalidSpread(t *testing.T) {
	grid, _ := BuildGrid(-10, 10, 100)
	for _, spread := range []float64{0, -0.8} {
		_, err := EvaluateLikelihood(Sample{3.1}, grid, spread)
		if err == nil {
			t.Fatalf("Expected error for spread %v, got nil", spread)
		}
		if !core.IsInvalidParameter(err) {
			t.Errorf("Expected InvalidParameter for spread %v, got %v", spread, err)
		}
	}
}

func TestEvaluatePrior_MatchesDensityAndNonNegative(t *testing.T) {
	grid, _ := BuildGrid(-10, 10, 200)
	curve, err := EvaluatePrior(grid, 2.3, 0.5)
	if err != nil {
		t.Fatalf("EvaluatePrior failed: %v", err)
	}

	if len(curve) != grid.Len() {
		t.Fatalf("Curve length %d, want %d", len(curve), grid.Len())
	}
	for i, theta := range grid.Points {
		want := normalDensity(theta, 2.3, 0.5)
		if math.Abs(curve[i]-want) > 1e-12 {
			t.Errorf("At theta=%v: got %v, want %v", theta, curve[i], want)
		}
		if curve[i] < 0 {
			t.Errorf("Negative prior density at %d: %v", i, curve[i])
		}
	}
}

func TestEvaluatePrior_InvalidSpread(t *testing.T) {
	grid, _ := BuildGrid(-10, 10, 100)
	_, err := EvaluatePrior(grid, 2.3, 0)
	if !core.IsInvalidParameter(err) {
		t.Errorf("Expected InvalidParameter, got %v", err)
	}
}
