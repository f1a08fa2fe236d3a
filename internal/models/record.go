package models

import "time"

// Record is one row of the dataset clauses are evaluated against.
type Record struct {
	ID        string    `db:"id"`
	Name      string    `db:"name"`
	Category  string    `db:"category"`
	Status    string    `db:"status"`
	Owner     string    `db:"owner"`
	Region    string    `db:"region"`
	Country   string    `db:"country"`
	SizeMB    float64   `db:"size_mb"`
	Archived  bool      `db:"archived"`
	CreatedAt time.Time `db:"created_at"`
}

// RecordGroup is one row of a grouped query. Keys holds the value of every grouping column.
type RecordGroup struct {
	Keys        map[string]string
	Count       int
	TotalSizeMB float64
}
