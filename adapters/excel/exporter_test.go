package excel

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"gridbayes/internal/testkit"
)

func TestWorkbookExporter_Export(t *testing.T) {
	kit := testkit.NewTestKit()
	result, err := kit.DemoRun(context.Background())
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "run.xlsx")
	exporter := NewWorkbookExporter()
	require.NoError(t, exporter.Export(context.Background(), result, path))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	header, err := f.GetCellValue(curvesSheet, "A1")
	require.NoError(t, err)
	assert.Equal(t, "theta", header)

	rows, err := f.GetRows(curvesSheet)
	require.NoError(t, err)
	assert.Len(t, rows, result.Grid.Len()+1, "header plus one row per grid point")

	runID, err := f.GetCellValue(summarySheet, "B1")
	require.NoError(t, err)
	assert.Equal(t, result.Manifest.RunID.String(), runID)
}
