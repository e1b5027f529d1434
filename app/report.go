package app

import (
	"fmt"
	"strings"

	"gridbayes/domain/inference"
)

// BuildReport renders a run as a markdown document: configuration, sample
// summary, and the posterior estimate. Consumed by the CLI (verbatim) and by
// the web UI (rendered to HTML).
func BuildReport(result *inference.RunResult) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Inference Run %s\n\n", result.Manifest.RunID.String())

	fmt.Fprintf(&b, "## Configuration\n\n")
	fmt.Fprintf(&b, "- Sample size: %d (seed %d)\n", result.Manifest.SampleSize, result.Manifest.Seed)
	fmt.Fprintf(&b, "- Population model: spread %.4f\n", result.Config.PopulationSpread)
	fmt.Fprintf(&b, "- Grid: %d points over [%.4f, %.4f], spacing %.6f\n",
		result.Grid.Count, result.Grid.Lower, result.Grid.Upper, result.Grid.Spacing)
	fmt.Fprintf(&b, "- Prior: Normal(%.4f, %.4f)\n\n", result.Config.PriorMean, result.Config.PriorSpread)

	fmt.Fprintf(&b, "## Sample\n\n")
	fmt.Fprintf(&b, "- Mean: %.6f\n", result.Summary.Mean)
	fmt.Fprintf(&b, "- Std dev: %.6f\n", result.Summary.StdDev)
	fmt.Fprintf(&b, "- Median: %.6f\n", result.Summary.Median)
	fmt.Fprintf(&b, "- Range: [%.6f, %.6f]\n\n", result.Summary.Min, result.Summary.Max)

	fmt.Fprintf(&b, "## Posterior\n\n")
	fmt.Fprintf(&b, "- **Posterior mean: %.6f**\n", result.PosteriorMean)
	fmt.Fprintf(&b, "- Mass at grid edges: %.3e / %.3e\n",
		result.Posterior[0], result.Posterior[len(result.Posterior)-1])
	fmt.Fprintf(&b, "- Runtime: %dms\n", result.Manifest.RuntimeMs)

	return b.String()
}
