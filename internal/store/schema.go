package store

import (
	"github.com/kubev2v/filter-clauses/pkg/filter"
)

// recordColumns maps the identifiers clients may use to columns of the records table.
var recordColumns = map[string]string{
	"id":       "id",
	"name":     "name",
	"category": "category",
	"status":   "status",
	"owner":    "owner",
	"region":   "region",
	"country":  "country",
	"size":     "size_mb",
	"size_mb":  "size_mb",
	"archived": "archived",
	"created":  "created_at",
}

var recordSelect = []string{
	"id", "name", "category", "status", "owner", "region", "country", "size_mb", "archived", "created_at",
}

// RecordSchema resolves identifiers against the records table. Unknown identifiers are rejected.
func RecordSchema() filter.Schema {
	return filter.NewSchema(recordColumns).Strict()
}
