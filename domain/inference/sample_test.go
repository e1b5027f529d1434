package inference

import (
	"math/rand"
	"testing"

	"gridbayes/domain/core"
)

func TestGenerateSample_Deterministic(t *testing.T) {
	first, err := GenerateSample(rand.New(rand.NewSource(42)), 25, 3.1, 0.8)
	if err != nil {
		t.Fatalf("GenerateSample failed: %v", err)
	}
	second, err := GenerateSample(rand.New(rand.NewSource(42)), 25, 3.1, 0.8)
	if err != nil {
		t.Fatalf("GenerateSample failed: %v", err)
	}

	if len(first) != 25 {
		t.Errorf("Expected 25 observations, got %d", len(first))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("Seeded samples diverge at %d: %v vs %v", i, first[i], second[i])
		}
	}
}

func TestGenerateSample_InvalidParameters(t *testing.T) {
	r := rand.New(rand.NewSource(1))

	if _, err := GenerateSample(r, 0, 0, 1); !core.IsInvalidParameter(err) {
		t.Errorf("Expected InvalidParameter for n=0, got %v", err)
	}
	if _, err := GenerateSample(r, 10, 0, 0); !core.IsInvalidParameter(err) {
		t.Errorf("Expected InvalidParameter for spread=0, got %v", err)
	}
	if _, err := GenerateSample(r, 10, 0, -1); !core.IsInvalidParameter(err) {
		t.Errorf("Expected InvalidParameter for negative spread, got %v", err)
	}
}

func TestNewSample_RejectsEmpty(t *testing.T) {
	if _, err := NewSample(nil); !core.IsInvalidParameter(err) {
		t.Errorf("Expected InvalidParameter for empty sample, got %v", err)
	}

	s, err := NewSample([]float64{3.1})
	if err != nil {
		t.Fatalf("NewSample failed: %v", err)
	}
	if len(s) != 1 || s[0] != 3.1 {
		t.Errorf("Unexpected sample contents: %v", s)
	}
}
