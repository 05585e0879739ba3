// Package gsjson converts spreadsheet worksheets into JSON-ready records.
package gsjson

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ukaji3/gsjson-go/pkg/gsjson/transform"
)

// Options configures a conversion.
type Options struct {
	// Vertical uses the first column as header instead of the first row.
	Vertical bool
	// ListOnly ignores header names and lists the values of each row in arrays.
	ListOnly bool
	// IncludeHeader keeps the header rows as values in list-only mode.
	IncludeHeader bool
	// Hash keys the final JSON by the value of this property.
	Hash string
	// PropertyMode selects how header text becomes property names.
	PropertyMode transform.PropertyMode
	// PropertyFunc, when set, overrides PropertyMode.
	PropertyFunc transform.PropertyFunc
	// HeaderStart is the row number (digits or letters) where the header begins.
	// Empty picks the first non-empty row.
	HeaderStart string
	// HeaderSize is the number of header rows.
	HeaderSize int
	// IgnoreRow lists sheet row numbers to skip.
	IgnoreRow []int
	// IgnoreCol lists sheet columns to skip, as numbers or letters.
	IgnoreCol []string
	// Worksheet selects worksheets by index or title.
	Worksheet []string
	// MultipleWorksheets returns an array of results even for one selected worksheet.
	// It is implied by AllWorksheets and by selecting more than one worksheet.
	MultipleWorksheets bool
	// AllWorksheets converts every worksheet, ignoring Worksheet.
	AllWorksheets bool
}

// DefaultOptions returns default conversion options.
func DefaultOptions() Options {
	return Options{
		PropertyMode: transform.PropertyCamel,
		HeaderSize:   1,
		Worksheet:    []string{"0"},
	}
}

// ExpectMultiple returns whether the conversion yields one result per worksheet.
func (o Options) ExpectMultiple() bool {
	return o.AllWorksheets || o.MultipleWorksheets || len(o.Worksheet) > 1
}

// Resolve validates o and returns the engine configuration.
func (o Options) Resolve() (transform.Config, error) {
	cfg := transform.Config{
		Vertical:      o.Vertical,
		ListOnly:      o.ListOnly,
		IncludeHeader: o.IncludeHeader,
		Hash:          o.Hash,
		PropertyFunc:  o.PropertyFunc,
		HeaderSize:    o.HeaderSize,
		IgnoreRows:    append([]int(nil), o.IgnoreRow...),
	}
	if cfg.HeaderSize < 1 {
		cfg.HeaderSize = 1
	}

	mode, err := transform.ParsePropertyMode(string(o.PropertyMode))
	if err != nil {
		return transform.Config{}, err
	}
	cfg.PropertyMode = mode

	if strings.TrimSpace(o.HeaderStart) != "" {
		if cfg.HeaderStart, err = transform.ParseColumn(o.HeaderStart); err != nil {
			return transform.Config{}, fmt.Errorf("header start: %w", err)
		}
	}

	for _, id := range o.IgnoreCol {
		col, err := transform.ParseColumn(id)
		if err != nil {
			return transform.Config{}, fmt.Errorf("ignored column: %w", err)
		}
		cfg.IgnoreCols = append(cfg.IgnoreCols, col)
	}
	return cfg, nil
}

// worksheetIDs returns the selection with digit-only identifiers read as indices.
func (o Options) worksheetIDs() (indices []int, titles []string) {
	ids := o.Worksheet
	if len(ids) == 0 {
		ids = DefaultOptions().Worksheet
	}
	for _, id := range ids {
		if id != "" && strings.Trim(id, "0123456789") == "" {
			if n, err := strconv.Atoi(id); err == nil {
				indices = append(indices, n)
				continue
			}
		}
		titles = append(titles, id)
	}
	return indices, titles
}
