package ports

import (
	"context"

	"gridbayes/domain/inference"
)

// WorkbookExporterPort writes a completed run as a spreadsheet workbook
// (grid plus curves on one sheet, summary on another). Presentation-only
// collaborator; the numerical core never depends on it.
type WorkbookExporterPort interface {
	Export(ctx context.Context, result *inference.RunResult, path string) error
}
