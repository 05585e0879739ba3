package transform

import (
	"sort"

	"github.com/ukaji3/gsjson-go/pkg/gsjson/models"
)

// Coordinate limits of a Google spreadsheet: the last three-letter column
// (zzz) and the ten million cell cap. Cells beyond them are dropped.
const (
	MaxColumn = 18278
	MaxRow    = 10000000
)

// Grid is the cell set grouped into rows. Under vertical orientation the
// rows are the sheet's columns.
type Grid struct {
	// Rows holds the rows that have cells, ordered by row-axis coordinate.
	// Rows without cells are absent.
	Rows [][]models.Cell
	// Vertical reports whether columns play the role of rows.
	Vertical bool
}

// BuildGrid groups cells into rows sorted along the cross axis. Cells on an
// ignored sheet row or column, and cells outside the sheet limits, are
// dropped. The input slice is not modified.
func BuildGrid(cells []models.Cell, vertical bool, ignoreRows, ignoreCols []int) *Grid {
	g := &Grid{Vertical: vertical}
	skipRow := toSet(ignoreRows)
	skipCol := toSet(ignoreCols)

	byRow := make(map[int][]models.Cell)
	for _, cell := range cells {
		if !inBounds(cell) || skipRow[cell.Row] || skipCol[cell.Col] {
			continue
		}
		rowAxis, _ := cell.Coord(vertical)
		byRow[rowAxis] = append(byRow[rowAxis], cell)
	}

	numbers := make([]int, 0, len(byRow))
	for n := range byRow {
		numbers = append(numbers, n)
	}
	sort.Ints(numbers)

	for _, n := range numbers {
		row := byRow[n]
		sort.SliceStable(row, func(i, j int) bool {
			return g.cross(row[i]) < g.cross(row[j])
		})
		g.Rows = append(g.Rows, row)
	}
	return g
}

func inBounds(c models.Cell) bool {
	return c.Row >= 1 && c.Row <= MaxRow && c.Col >= 1 && c.Col <= MaxColumn
}

// rowNumber returns the row-axis coordinate of a cell.
func (g *Grid) rowNumber(c models.Cell) int {
	n, _ := c.Coord(g.Vertical)
	return n
}

// cross returns the cross-axis coordinate of a cell.
func (g *Grid) cross(c models.Cell) int {
	_, n := c.Coord(g.Vertical)
	return n
}

// rowAt returns the row-axis coordinate of slot i.
func (g *Grid) rowAt(i int) int {
	return g.rowNumber(g.Rows[i][0])
}

// blockEnd returns the first slot at or below size rows from slot first.
// Absent rows count towards size.
func (g *Grid) blockEnd(first, size int) int {
	if first >= len(g.Rows) {
		return len(g.Rows)
	}
	top := g.rowAt(first)
	end := first
	for end < len(g.Rows) && g.rowAt(end)-top < size {
		end++
	}
	return end
}

// cellAt finds the cell of row at cross-axis coordinate n.
func (g *Grid) cellAt(row []models.Cell, n int) (models.Cell, bool) {
	i := sort.Search(len(row), func(i int) bool { return g.cross(row[i]) >= n })
	if i < len(row) && g.cross(row[i]) == n {
		return row[i], true
	}
	return models.Cell{}, false
}

// nearestLeft finds the closest cell of row with text before cross-axis coordinate n.
func (g *Grid) nearestLeft(row []models.Cell, n int) (models.Cell, bool) {
	for i := len(row) - 1; i >= 0; i-- {
		if g.cross(row[i]) < n && hasText(row[i]) {
			return row[i], true
		}
	}
	return models.Cell{}, false
}

func hasText(c models.Cell) bool {
	return c.Value != ""
}

func toSet(nums []int) map[int]bool {
	set := make(map[int]bool, len(nums))
	for _, n := range nums {
		set[n] = true
	}
	return set
}
