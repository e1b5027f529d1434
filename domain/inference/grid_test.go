package inference

import (
	"math"
	"testing"

	"gridbayes/domain/core"
)

func TestBuildGrid_ShapeAndSpacing(t *testing.T) {
	grid, err := BuildGrid(-10, 10, 500)
	if err != nil {
		t.Fatalf("BuildGrid failed: %v", err)
	}

	if grid.Len() != 500 {
		t.Errorf("Expected 500 points, got %d", grid.Len())
	}
	if grid.Points[0] != -10 {
		t.Errorf("Expected first point -10, got %v", grid.Points[0])
	}
	if grid.Points[grid.Len()-1] != 10 {
		t.Errorf("Expected last point 10, got %v", grid.Points[grid.Len()-1])
	}

	wantSpacing := 20.0 / 499.0
	if math.Abs(grid.Spacing-wantSpacing) > 1e-12 {
		t.Errorf("Expected spacing %v, got %v", wantSpacing, grid.Spacing)
	}

	// Strictly increasing with uniform spacing
	for i := 1; i < grid.Len(); i++ {
		step := grid.Points[i] - grid.Points[i-1]
		if step <= 0 {
			t.Fatalf("Grid not strictly increasing at %d: step %v", i, step)
		}
		if math.Abs(step-wantSpacing) > 1e-9 {
			t.Errorf("Non-uniform spacing at %d: got %v, want %v", i, step, wantSpacing)
		}
	}
}

func TestBuildGrid_InvalidParameters(t *testing.T) {
	cases := []struct {
		name  string
		lower float64
		upper float64
		count int
	}{
		{"inverted bounds", 10, -10, 500},
		{"equal bounds", 3, 3, 500},
		{"count below two", -10, 10, 1},
		{"zero count", -10, 10, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := BuildGrid(tc.lower, tc.upper, tc.count)
			if err == nil {
				t.Fatal("Expected error, got nil")
			}
			if !core.IsInvalidParameter(err) {
				t.Errorf("Expected InvalidParameter, got %v", err)
			}
		})
	}
}
