package transform

import (
	"sort"

	"github.com/ukaji3/gsjson-go/pkg/gsjson/models"
)

// Header locates the header block of a grid and the property path of every
// named column.
type Header struct {
	// FirstRow is the grid slot where the header block starts. It equals
	// len(grid.Rows) when no header row was found.
	FirstRow int
	// DataRow is the first grid slot below the header block.
	DataRow int
	// Properties maps a cross-axis coordinate to its property path. It is nil
	// in list-only mode; columns without an entry are ignored.
	Properties map[int][]string
}

// ResolveHeader finds the header block and, unless cfg.ListOnly is set,
// derives the property path of each column.
func ResolveHeader(g *Grid, cfg Config) Header {
	first := findHeaderStart(g, cfg.HeaderStart)
	h := Header{FirstRow: first, DataRow: g.blockEnd(first, cfg.headerSize())}
	if cfg.ListOnly {
		return h
	}

	format := cfg.propertyFunc()
	headerRows := g.headerRows(h.FirstRow, h.DataRow)
	h.Properties = make(map[int][]string)

	for _, col := range g.headerColumns(headerRows) {
		var names []string
		for _, raw := range g.columnHeader(headerRows, col) {
			if name := format(raw); name != "" {
				names = append(names, name)
			}
		}
		if len(names) > 0 {
			h.Properties[col] = names
		}
	}
	return h
}

// findHeaderStart returns the slot of the first row, or of the row numbered
// start when start is set.
func findHeaderStart(g *Grid, start int) int {
	if start == 0 {
		return 0
	}
	for i := range g.Rows {
		if g.rowAt(i) == start {
			return i
		}
	}
	return len(g.Rows)
}

// headerRows returns the rows of slots first up to end, bottom row first.
func (g *Grid) headerRows(first, end int) [][]models.Cell {
	var rows [][]models.Cell
	for i := end - 1; i >= first; i-- {
		rows = append(rows, g.Rows[i])
	}
	return rows
}

// headerColumns returns the sorted cross-axis coordinates holding header text.
// Only these columns can anchor a property path.
func (g *Grid) headerColumns(rows [][]models.Cell) []int {
	seen := make(map[int]bool)
	var cols []int
	for _, row := range rows {
		for _, cell := range row {
			if n := g.cross(cell); hasText(cell) && !seen[n] {
				seen[n] = true
				cols = append(cols, n)
			}
		}
	}
	sort.Ints(cols)
	return cols
}

// columnHeader collects the raw header text for column col, top row first.
//
// The scan runs bottom-up. The first row holding text in this column anchors
// the column. Above the anchor, a row without text in this column inherits the
// nearest text to its left, but only when the row below has text under that
// cell too, meaning the left cell is a merged header spanning this column.
func (g *Grid) columnHeader(bottomUp [][]models.Cell, col int) []string {
	var texts []string
	anchored := false

	for i, row := range bottomUp {
		cell, ok := g.cellAt(row, col)
		ok = ok && hasText(cell)

		if !anchored {
			if ok {
				anchored = true
				texts = append(texts, cell.Value)
			}
			continue
		}
		if ok {
			texts = append(texts, cell.Value)
			continue
		}

		left, found := g.nearestLeft(row, col)
		if !found {
			continue
		}
		if below, ok := g.cellAt(bottomUp[i-1], g.cross(left)); ok && hasText(below) {
			texts = append(texts, left.Value)
		}
	}

	for i, j := 0, len(texts)-1; i < j; i, j = i+1, j-1 {
		texts[i], texts[j] = texts[j], texts[i]
	}
	return texts
}
