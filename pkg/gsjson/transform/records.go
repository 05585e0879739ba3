package transform

import (
	"sort"

	"github.com/ukaji3/gsjson-go/pkg/gsjson/models"
)

// BuildRecords converts the data rows of g into records. Rows in which no
// cell carries a value are dropped.
func BuildRecords(g *Grid, h Header, cfg Config) []models.Record {
	start := h.DataRow
	if cfg.ListOnly && cfg.IncludeHeader {
		start = 0
	}

	var slots []int
	if cfg.ListOnly {
		slots = descending(cfg.ignoredSlots())
	}

	var records []models.Record
	for i := start; i < len(g.Rows); i++ {
		row := g.Rows[i]
		if len(row) == 0 {
			continue
		}

		var rec models.Record
		var ok bool
		if cfg.ListOnly {
			rec, ok = g.listRecord(row, slots)
		} else {
			rec, ok = g.objectRecord(row, h.Properties)
		}
		if ok {
			records = append(records, rec)
		}
	}
	return records
}

func (g *Grid) objectRecord(row []models.Cell, props map[int][]string) (models.Record, bool) {
	obj := models.NewObject()
	hasValues := false

	for _, cell := range row {
		path, ok := props[g.cross(cell)]
		if !ok {
			continue
		}
		val := models.ValueOf(cell)
		if !val.IsAbsent() {
			hasValues = true
		}
		obj.SetPath(path, val)
	}
	return models.Record{Object: obj}, hasValues
}

func (g *Grid) listRecord(row []models.Cell, ignored []int) (models.Record, bool) {
	var list []models.Value
	hasValues := false

	for _, cell := range row {
		slot := g.cross(cell) - 1
		for len(list) <= slot {
			list = append(list, models.Value{})
		}
		val := models.ValueOf(cell)
		if !val.IsAbsent() {
			hasValues = true
		}
		list[slot] = val
	}
	if !hasValues {
		return models.Record{}, false
	}

	// descending order keeps the remaining targets in place
	for _, n := range ignored {
		if n >= 1 && n <= len(list) {
			list = append(list[:n-1], list[n:]...)
		}
	}
	if list == nil {
		list = []models.Value{}
	}
	return models.Record{List: list}, true
}

func descending(nums []int) []int {
	out := append([]int(nil), nums...)
	sort.Sort(sort.Reverse(sort.IntSlice(out)))
	return out
}
