package report

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestExportXLSX(t *testing.T) {
	sc := buildScoreCard(t)
	path := filepath.Join(t.TempDir(), "scorecard.xlsx")

	require.NoError(t, ExportXLSX(path, sc))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	name, err := f.GetCellValue(sheetName, "B1")
	require.NoError(t, err)
	assert.Equal(t, "Village Green", name)

	header, err := f.GetCellValue(sheetName, "A8")
	require.NoError(t, err)
	assert.Equal(t, "Hole", header)

	firstHole, err := f.GetCellValue(sheetName, "A9")
	require.NoError(t, err)
	assert.Equal(t, "1", firstHole)

	firstScore, err := f.GetCellValue(sheetName, "E9")
	require.NoError(t, err)
	assert.Equal(t, "5", firstScore)
}
