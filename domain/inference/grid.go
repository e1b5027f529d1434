package inference

import (
	"gridbayes/domain/core"
)

// BuildGrid produces Count evenly spaced values from Lower to Upper
// inclusive. Deterministic and pure.
func BuildGrid(lower, upper float64, count int) (Grid, error) {
	if count < 2 {
		return Grid{}, core.NewInvalidParameterError("grid point count", "must be >= 2")
	}
	if upper <= lower {
		return Grid{}, core.NewInvalidParameterError("grid bounds", "upper must be greater than lower")
	}

	spacing := (upper - lower) / float64(count-1)
	points := make([]float64, count)
	for i := range points {
		points[i] = lower + float64(i)*spacing
	}
	// Pin the last point to the exact upper bound so accumulated rounding
	// never leaks past the configured range.
	points[count-1] = upper

	return Grid{
		Lower:   lower,
		Upper:   upper,
		Count:   count,
		Spacing: spacing,
		Points:  points,
	}, nil
}
