package output

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ukaji3/gsjson-go/pkg/gsjson"
	"github.com/ukaji3/gsjson-go/pkg/gsjson/models"
)

func filmResult(t *testing.T) models.Result {
	t.Helper()
	result, err := gsjson.CellsToJSON([]models.Cell{
		{Row: 1, Col: 1, Value: "name"},
		{Row: 1, Col: 2, Value: "year"},
		{Row: 2, Col: 1, Value: "Matrix"},
		{Row: 2, Col: 2, Value: "1999", NumericValue: models.Number(1999)},
	}, gsjson.DefaultOptions())
	require.NoError(t, err)
	return result
}

func TestToJSON(t *testing.T) {
	compact, err := ToJSON(filmResult(t), false)
	require.NoError(t, err)
	assert.Equal(t, `[{"name":"Matrix","year":1999}]`, string(compact))

	pretty, err := ToJSON(filmResult(t), true)
	require.NoError(t, err)
	assert.Equal(t, "[\n    {\n        \"name\": \"Matrix\",\n        \"year\": 1999\n    }\n]", string(pretty))
}

func TestWrite(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, filmResult(t), false))
	assert.Equal(t, "[{\"name\":\"Matrix\",\"year\":1999}]\n", buf.String())
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "films.json")
	require.NoError(t, WriteFile(path, filmResult(t), false))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, `[{"name":"Matrix","year":1999}]`, string(data))
}
