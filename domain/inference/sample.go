package inference

import (
	"math/rand"

	"gridbayes/domain/core"
)

// GenerateSample draws n independent normal deviates with the given mean and
// spread (standard deviation) from the supplied seeded source. The caller
// owns the source; identical sources produce identical samples.
func GenerateSample(r *rand.Rand, n int, mean, spread float64) (Sample, error) {
	if n < 1 {
		return nil, core.NewInvalidParameterError("sample size", "must be >= 1")
	}
	if spread <= 0 {
		return nil, core.NewInvalidParameterError("population spread", "must be > 0")
	}

	sample := make(Sample, n)
	for i := range sample {
		sample[i] = r.NormFloat64()*spread + mean
	}
	return sample, nil
}
