package gsjson

import (
	"context"
	"time"

	json "github.com/goccy/go-json"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/ukaji3/gsjson-go/pkg/gsjson/models"
	"github.com/ukaji3/gsjson-go/pkg/gsjson/transform"
)

// SheetSource supplies the worksheets of one spreadsheet and their cells.
// Authentication and transport are the source's concern; its errors are
// passed through to the caller.
type SheetSource interface {
	// Worksheets lists the worksheets in workbook order.
	Worksheets(ctx context.Context) ([]models.Worksheet, error)
	// Cells returns the cells of a worksheet.
	Cells(ctx context.Context, ws models.Worksheet) ([]models.Cell, error)
}

// Output holds the converted worksheets of one spreadsheet.
type Output struct {
	// Worksheets lists the converted worksheets in selection order.
	Worksheets []models.Worksheet
	// Results holds one result per entry of Worksheets.
	Results []models.Result
	// Multiple reports whether the output is an array of worksheet results.
	Multiple bool
}

// MarshalJSON implements json.Marshaler. A single-worksheet output encodes
// as that worksheet's result.
func (o *Output) MarshalJSON() ([]byte, error) {
	if o.Multiple {
		if o.Results == nil {
			return []byte("[]"), nil
		}
		return json.Marshal(o.Results)
	}
	if len(o.Results) == 0 {
		return []byte("[]"), nil
	}
	return o.Results[0].MarshalJSON()
}

// CellsToJSON converts the cells of one worksheet.
func CellsToJSON(cells []models.Cell, opts Options) (models.Result, error) {
	cfg, err := opts.Resolve()
	if err != nil {
		return models.Result{}, err
	}
	return transform.Transform(cells, cfg), nil
}

// SelectWorksheets returns the worksheets chosen by opts, in workbook order.
// Worksheets match by index or by title. Unless several results are
// expected, only the first match is kept.
func SelectWorksheets(worksheets []models.Worksheet, opts Options) ([]models.Worksheet, error) {
	if opts.AllWorksheets {
		return worksheets, nil
	}

	indices, titles := opts.worksheetIDs()
	var selected []models.Worksheet
	for _, ws := range worksheets {
		if containsInt(indices, ws.Index) || containsString(titles, ws.Title) {
			selected = append(selected, ws)
		}
	}

	if !opts.ExpectMultiple() && len(selected) > 1 {
		selected = selected[:1]
	}
	if len(selected) == 0 {
		return nil, ErrNoWorksheetFound
	}
	return selected, nil
}

// SpreadsheetToJSON fetches the selected worksheets from src and converts
// them. Worksheets are fetched concurrently; results keep selection order.
//
// Errors from src are returned inside a *WorksheetError naming the worksheet
// and operation. The source error itself is kept as is in its Err field, so
// errors.Is and errors.As see the original transport or auth error.
func SpreadsheetToJSON(ctx context.Context, src SheetSource, opts Options) (*Output, error) {
	cfg, err := opts.Resolve()
	if err != nil {
		return nil, err
	}
	log := zerolog.Ctx(ctx)

	all, err := src.Worksheets(ctx)
	if err != nil {
		return nil, NewWorksheetError("", "list", err)
	}

	selected, err := SelectWorksheets(all, opts)
	if err != nil {
		return nil, err
	}

	results := make([]models.Result, len(selected))
	g, gctx := errgroup.WithContext(ctx)
	for i, ws := range selected {
		g.Go(func() error {
			start := time.Now()
			cells, err := src.Cells(gctx, ws)
			if err != nil {
				return NewWorksheetError(ws.Title, "cells", err)
			}
			results[i] = transform.Transform(cells, cfg)
			log.Debug().
				Str("worksheet", ws.Title).
				Int("cells", len(cells)).
				Int("records", results[i].Len()).
				Dur("elapsed", time.Since(start)).
				Msg("worksheet converted")
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &Output{
		Worksheets: selected,
		Results:    results,
		Multiple:   opts.ExpectMultiple(),
	}, nil
}

func containsInt(list []int, n int) bool {
	for _, v := range list {
		if v == n {
			return true
		}
	}
	return false
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
