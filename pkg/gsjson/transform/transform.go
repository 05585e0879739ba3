package transform

import "github.com/ukaji3/gsjson-go/pkg/gsjson/models"

// Transform converts the cells of one worksheet into its result.
func Transform(cells []models.Cell, cfg Config) models.Result {
	g := BuildGrid(cells, cfg.Vertical, cfg.IgnoreRows, cfg.IgnoreCols)
	h := ResolveHeader(g, cfg)
	return Aggregate(BuildRecords(g, h, cfg), cfg)
}
