package excel

import (
	"context"

	"github.com/xuri/excelize/v2"

	"gridbayes/domain/inference"
	"gridbayes/internal/errors"
)

const (
	curvesSheet  = "Curves"
	summarySheet = "Summary"
)

// WorkbookExporter writes a completed run to an .xlsx workbook: one sheet of
// grid/likelihood/prior/posterior columns and one summary sheet. Implements
// ports.WorkbookExporterPort.
type WorkbookExporter struct{}

// NewWorkbookExporter creates a new workbook exporter
func NewWorkbookExporter() *WorkbookExporter {
	return &WorkbookExporter{}
}

// Export writes the run result to path
func (e *WorkbookExporter) Export(ctx context.Context, result *inference.RunResult, path string) error {
	f := excelize.NewFile()

	idx, err := f.NewSheet(curvesSheet)
	if err != nil {
		return errors.Wrap(err, "failed to create curves sheet")
	}
	f.SetActiveSheet(idx)

	headers := []string{"theta", "likelihood", "prior", "posterior"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(curvesSheet, cell, h); err != nil {
			return errors.Wrap(err, "failed to write header row")
		}
	}

	for r := 0; r < result.Grid.Len(); r++ {
		rowIdx := r + 2
		values := []float64{
			result.Grid.Points[r],
			result.LikelihoodDisplay[r],
			result.PriorDisplay[r],
			result.Posterior[r],
		}
		for c, v := range values {
			cell, _ := excelize.CoordinatesToCellName(c+1, rowIdx)
			if err := f.SetCellValue(curvesSheet, cell, v); err != nil {
				return errors.Wrap(err, "failed to write curve row")
			}
		}
	}

	if err := e.writeSummary(f, result); err != nil {
		return err
	}

	if err := f.DeleteSheet("Sheet1"); err != nil {
		return errors.Wrap(err, "failed to drop default sheet")
	}

	if err := f.SaveAs(path); err != nil {
		return errors.WithCode(errors.CodeExportFailed, err)
	}
	return nil
}

func (e *WorkbookExporter) writeSummary(f *excelize.File, result *inference.RunResult) error {
	if _, err := f.NewSheet(summarySheet); err != nil {
		return errors.Wrap(err, "failed to create summary sheet")
	}

	rows := [][]interface{}{
		{"run_id", result.Manifest.RunID.String()},
		{"seed", result.Manifest.Seed},
		{"sample_size", result.Manifest.SampleSize},
		{"grid_points", result.Manifest.GridPoints},
		{"runtime_ms", result.Manifest.RuntimeMs},
		{"posterior_mean", result.PosteriorMean},
		{"sample_mean", result.Summary.Mean},
		{"sample_std_dev", result.Summary.StdDev},
		{"sample_min", result.Summary.Min},
		{"sample_max", result.Summary.Max},
		{"sample_median", result.Summary.Median},
		{"prior_mean", result.Config.PriorMean},
		{"prior_spread", result.Config.PriorSpread},
		{"population_spread", result.Config.PopulationSpread},
	}

	for r, row := range rows {
		for c, v := range row {
			cell, _ := excelize.CoordinatesToCellName(c+1, r+1)
			if err := f.SetCellValue(summarySheet, cell, v); err != nil {
				return errors.Wrap(err, "failed to write summary row")
			}
		}
	}
	return nil
}
