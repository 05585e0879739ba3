package transform

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ukaji3/gsjson-go/pkg/gsjson/models"
)

func TestResolveHeaderSingleRow(t *testing.T) {
	g := BuildGrid(filmCells(), false, nil, nil)

	h := ResolveHeader(g, Config{})

	assert.Equal(t, 0, h.FirstRow)
	assert.Equal(t, map[int][]string{1: {"name"}, 2: {"year"}}, h.Properties)
}

func TestResolveHeaderSkipsLeadingEmptyRows(t *testing.T) {
	cells := []models.Cell{
		text(3, 1, "Title"),
		text(3, 3, "Rating"),
		text(4, 1, "Heat"),
	}
	g := BuildGrid(cells, false, nil, nil)

	h := ResolveHeader(g, Config{})

	assert.Equal(t, 0, h.FirstRow)
	assert.Equal(t, 1, h.DataRow)
	assert.Equal(t, map[int][]string{1: {"title"}, 3: {"rating"}}, h.Properties)
}

func TestResolveHeaderStart(t *testing.T) {
	cells := []models.Cell{
		text(1, 1, "Report"),
		text(2, 1, "Name"),
		text(2, 2, "Age"),
		text(3, 1, "Ann"),
	}
	g := BuildGrid(cells, false, nil, nil)

	h := ResolveHeader(g, Config{HeaderStart: 2})

	assert.Equal(t, 1, h.FirstRow)
	assert.Equal(t, map[int][]string{1: {"name"}, 2: {"age"}}, h.Properties)
}

func TestResolveHeaderStartNotFound(t *testing.T) {
	g := BuildGrid(filmCells(), false, nil, nil)

	h := ResolveHeader(g, Config{HeaderStart: 9})

	assert.Equal(t, len(g.Rows), h.FirstRow)
	assert.Equal(t, len(g.Rows), h.DataRow)
	assert.Empty(t, h.Properties)
}

// mergedHeaderCells has "Address" spanning the City and Zip Code columns.
func mergedHeaderCells() []models.Cell {
	return []models.Cell{
		text(1, 1, "Name"),
		text(1, 2, "Address"),
		text(1, 4, "Notes"),
		text(2, 2, "City"),
		text(2, 3, "Zip Code"),
		text(3, 1, "Ann"),
		text(3, 2, "Lisbon"),
		number(3, 3, 1000, "1000"),
		text(3, 4, "vip"),
	}
}

func TestResolveHeaderMerged(t *testing.T) {
	g := BuildGrid(mergedHeaderCells(), false, nil, nil)

	h := ResolveHeader(g, Config{HeaderSize: 2})

	assert.Equal(t, map[int][]string{
		1: {"name"},
		2: {"address", "city"},
		3: {"address", "zipCode"},
		4: {"notes"},
	}, h.Properties)
	assert.Equal(t, 2, h.DataRow)
}

func TestResolveHeaderSizePastLastRow(t *testing.T) {
	g := BuildGrid(mergedHeaderCells(), false, nil, nil)

	h := ResolveHeader(g, Config{HeaderSize: math.MaxInt})

	assert.Equal(t, len(g.Rows), h.DataRow)
	assert.Equal(t, []string{"name", "ann"}, h.Properties[1])
}

func TestResolveHeaderLeftCellWithoutSupportBelow(t *testing.T) {
	cells := []models.Cell{
		text(1, 1, "Title"),
		text(2, 2, "Score"),
	}
	g := BuildGrid(cells, false, nil, nil)

	h := ResolveHeader(g, Config{HeaderSize: 2})

	assert.Equal(t, map[int][]string{1: {"title"}, 2: {"score"}}, h.Properties)
}

func TestResolveHeaderGapInBlock(t *testing.T) {
	cells := []models.Cell{
		text(1, 1, "Group"),
		text(3, 1, "Item"),
		text(3, 2, "Price"),
	}
	g := BuildGrid(cells, false, nil, nil)

	h := ResolveHeader(g, Config{HeaderSize: 3})

	assert.Equal(t, map[int][]string{
		1: {"group", "item"},
		2: {"group", "price"},
	}, h.Properties)
}

func TestResolveHeaderOmitsBlankNames(t *testing.T) {
	cells := []models.Cell{
		text(1, 1, "Name"),
		text(1, 2, ""),
		text(1, 3, " - "),
	}
	g := BuildGrid(cells, false, nil, nil)

	h := ResolveHeader(g, Config{})

	assert.Equal(t, map[int][]string{1: {"name"}}, h.Properties)
}

func TestResolveHeaderListOnly(t *testing.T) {
	g := BuildGrid(filmCells(), false, nil, nil)

	h := ResolveHeader(g, Config{ListOnly: true})

	assert.Equal(t, 0, h.FirstRow)
	assert.Nil(t, h.Properties)
}

func TestResolveHeaderCustomFormatter(t *testing.T) {
	g := BuildGrid(filmCells(), false, nil, nil)

	h := ResolveHeader(g, Config{
		PropertyMode: PropertyPascal,
		PropertyFunc: func(raw string) string { return "col_" + raw },
	})

	assert.Equal(t, map[int][]string{1: {"col_name"}, 2: {"col_year"}}, h.Properties)
}
