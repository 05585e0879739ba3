// Package models defines the data structures shared by the gsjson engine,
// its sheet sources and its output layer.
package models

// Cell is a single spreadsheet cell fact.
type Cell struct {
	// Row is the row index (1-based).
	Row int `json:"row"`
	// Col is the column index (1-based).
	Col int `json:"col"`
	// Value is the formatted cell value as displayed by the sheet.
	Value string `json:"value"`
	// NumericValue is the underlying number for numeric cells (nil otherwise).
	NumericValue *float64 `json:"numericValue,omitempty"`
}

// IsEmpty reports whether the cell carries neither text nor a number.
func (c Cell) IsEmpty() bool {
	return c.Value == "" && c.NumericValue == nil
}

// Coord returns the cell's coordinate along the row axis and the cross axis.
// With vertical set, columns play the role of rows.
func (c Cell) Coord(vertical bool) (rowAxis, crossAxis int) {
	if vertical {
		return c.Col, c.Row
	}
	return c.Row, c.Col
}

// Number is a helper for building numeric cells.
func Number(f float64) *float64 {
	return &f
}
