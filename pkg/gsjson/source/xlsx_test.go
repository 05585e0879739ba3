package source

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/ukaji3/gsjson-go/pkg/gsjson"
	"github.com/ukaji3/gsjson-go/pkg/gsjson/models"
)

func writeWorkbook(t *testing.T) string {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Sheet1"
	f.SetCellValue(sheetName, "A1", "Name")
	f.SetCellValue(sheetName, "B1", "Year")
	f.SetCellValue(sheetName, "C1", "Seen")
	f.SetCellValue(sheetName, "D1", "Code")
	f.SetCellValue(sheetName, "A2", "Forrest Gump")
	f.SetCellValue(sheetName, "B2", 1994)
	f.SetCellValue(sheetName, "C2", true)
	f.SetCellValue(sheetName, "D2", "007")
	f.SetCellValue(sheetName, "A4", "Matrix")
	f.SetCellValue(sheetName, "B4", 1999.5)

	if _, err := f.NewSheet("Empty"); err != nil {
		t.Fatalf("Failed to add sheet: %v", err)
	}

	tmpFile := filepath.Join(t.TempDir(), "films.xlsx")
	if err := f.SaveAs(tmpFile); err != nil {
		t.Fatalf("Failed to save test file: %v", err)
	}
	return tmpFile
}

func TestXLSXWorksheets(t *testing.T) {
	x, err := OpenXLSX(writeWorkbook(t))
	require.NoError(t, err)
	defer x.Close()

	sheets, err := x.Worksheets(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []models.Worksheet{{Index: 0, Title: "Sheet1"}, {Index: 1, Title: "Empty"}}, sheets)
}

func TestXLSXCells(t *testing.T) {
	x, err := OpenXLSX(writeWorkbook(t))
	require.NoError(t, err)
	defer x.Close()

	cells, err := x.Cells(context.Background(), models.Worksheet{Title: "Sheet1"})
	require.NoError(t, err)
	require.Len(t, cells, 10)

	byName := make(map[string]models.Cell)
	for _, c := range cells {
		name, err := excelize.CoordinatesToCellName(c.Col, c.Row)
		require.NoError(t, err)
		byName[name] = c
	}

	assert.Equal(t, "Forrest Gump", byName["A2"].Value)
	assert.Nil(t, byName["A2"].NumericValue)
	require.NotNil(t, byName["B2"].NumericValue)
	assert.Equal(t, 1994.0, *byName["B2"].NumericValue)
	assert.Equal(t, "TRUE", byName["C2"].Value)
	assert.Nil(t, byName["C2"].NumericValue)
	assert.Equal(t, "007", byName["D2"].Value)
	assert.Nil(t, byName["D2"].NumericValue, "numeric-looking text stays text")
	assert.Equal(t, 4, byName["A4"].Row)
}

func TestXLSXEndToEnd(t *testing.T) {
	x, err := OpenXLSX(writeWorkbook(t))
	require.NoError(t, err)
	defer x.Close()

	opts := gsjson.DefaultOptions()
	opts.AllWorksheets = true
	out, err := gsjson.SpreadsheetToJSON(context.Background(), x, opts)
	require.NoError(t, err)

	b, err := out.MarshalJSON()
	require.NoError(t, err)
	assert.JSONEq(t, `[
		[
			{"name":"Forrest Gump","year":1994,"seen":true,"code":"007"},
			{"name":"Matrix","year":1999.5}
		],
		[]
	]`, string(b))
}

func TestXLSXMissingSheet(t *testing.T) {
	x, err := OpenXLSX(writeWorkbook(t))
	require.NoError(t, err)
	defer x.Close()

	_, err = x.Cells(context.Background(), models.Worksheet{Title: "Nope"})
	assert.Error(t, err)
}

func TestOpenXLSXMissingFile(t *testing.T) {
	_, err := OpenXLSX(filepath.Join(t.TempDir(), "missing.xlsx"))
	assert.Error(t, err)
}

func TestIsWorkbookPath(t *testing.T) {
	assert.True(t, IsWorkbookPath("films.xlsx"))
	assert.True(t, IsWorkbookPath("/tmp/Report.XLSM"))
	assert.False(t, IsWorkbookPath("1G2_YLuQeKXCtpOWshqIBazzUeefuOMDZ5q10F2u9MHw"))
}
