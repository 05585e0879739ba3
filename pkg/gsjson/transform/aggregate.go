package transform

import (
	json "github.com/goccy/go-json"

	"github.com/ukaji3/gsjson-go/pkg/gsjson/models"
)

// Aggregate collects records into the result of one worksheet. With a hash
// property the records are keyed by that property's value; a later record
// with the same key replaces an earlier one.
func Aggregate(records []models.Record, cfg Config) models.Result {
	if !cfg.hashed() {
		if records == nil {
			records = []models.Record{}
		}
		return models.Result{Records: records}
	}

	index := models.NewObject()
	for _, rec := range records {
		index.Set(hashKey(rec.Field(cfg.Hash)), rec)
	}
	return models.Result{Hash: index}
}

func hashKey(field interface{}) string {
	switch v := field.(type) {
	case models.Value:
		return v.Key()
	case *models.Object:
		b, err := json.Marshal(v)
		if err != nil {
			return ""
		}
		return string(b)
	}
	return ""
}
