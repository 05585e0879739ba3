package source

import (
	"context"
	"strconv"
	"sync"

	"github.com/rs/zerolog"
	"github.com/xuri/excelize/v2"

	"github.com/ukaji3/gsjson-go/pkg/gsjson/models"
)

// XLSX reads cells from a local workbook.
type XLSX struct {
	mu sync.Mutex
	f  *excelize.File
}

// OpenXLSX opens the workbook at path.
func OpenXLSX(path string) (*XLSX, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	return &XLSX{f: f}, nil
}

// NewXLSX wraps an already opened workbook.
func NewXLSX(f *excelize.File) *XLSX {
	return &XLSX{f: f}
}

// Close closes the workbook.
func (x *XLSX) Close() error {
	return x.f.Close()
}

// Worksheets lists the workbook's sheets in tab order.
func (x *XLSX) Worksheets(ctx context.Context) ([]models.Worksheet, error) {
	x.mu.Lock()
	defer x.mu.Unlock()

	var sheets []models.Worksheet
	for i, name := range x.f.GetSheetList() {
		sheets = append(sheets, models.Worksheet{Index: i, Title: name})
	}
	return sheets, nil
}

// Cells extracts the non-empty cells of a sheet. Numeric cells carry their
// raw number next to the formatted text.
func (x *XLSX) Cells(ctx context.Context, ws models.Worksheet) ([]models.Cell, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	x.mu.Lock()
	defer x.mu.Unlock()

	rows, err := x.f.GetRows(ws.Title)
	if err != nil {
		return nil, err
	}

	var cells []models.Cell
	for rowIdx, row := range rows {
		for colIdx, cellValue := range row {
			if cellValue == "" {
				continue
			}
			cell := models.Cell{
				Row:   rowIdx + 1,
				Col:   colIdx + 1,
				Value: cellValue,
			}
			cellName, err := excelize.CoordinatesToCellName(colIdx+1, rowIdx+1)
			if err != nil {
				return nil, err
			}
			cell.NumericValue = x.numericValue(ws.Title, cellName)
			cells = append(cells, cell)
		}
	}

	zerolog.Ctx(ctx).Debug().
		Str("sheet", ws.Title).
		Int("rows", len(rows)).
		Int("cells", len(cells)).
		Msg("xlsx cells extracted")
	return cells, nil
}

// numericValue returns the raw number of a numeric cell, or nil.
func (x *XLSX) numericValue(sheet, cellName string) *float64 {
	typ, err := x.f.GetCellType(sheet, cellName)
	if err != nil || (typ != excelize.CellTypeNumber && typ != excelize.CellTypeUnset) {
		return nil
	}
	raw, err := x.f.GetCellValue(sheet, cellName, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil
	}
	return &f
}
