package transform

import (
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/require"

	"github.com/ukaji3/gsjson-go/pkg/gsjson/models"
)

func text(row, col int, value string) models.Cell {
	return models.Cell{Row: row, Col: col, Value: value}
}

func number(row, col int, f float64, value string) models.Cell {
	return models.Cell{Row: row, Col: col, Value: value, NumericValue: models.Number(f)}
}

// filmCells is a 2-column sheet: a name/year header and two films.
func filmCells() []models.Cell {
	return []models.Cell{
		text(1, 1, "name"),
		text(1, 2, "year"),
		text(2, 1, "Forrest Gump"),
		number(2, 2, 1994, "1994"),
		text(3, 1, "Matrix"),
		number(3, 2, 1999, "1999"),
	}
}

func toJSON(t *testing.T, v interface{}) string {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return string(b)
}
