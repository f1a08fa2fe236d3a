package store

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"

	"github.com/kubev2v/filter-clauses/internal/models"
)

type RecordStore struct {
	db QueryInterceptor
}

func NewRecordStore(db QueryInterceptor) *RecordStore {
	return &RecordStore{db: db}
}

// Insert writes the records in a single statement.
func (s *RecordStore) Insert(ctx context.Context, records ...models.Record) error {
	if len(records) == 0 {
		return nil
	}

	builder := sq.Insert("records").Columns(recordSelect...)
	for _, r := range records {
		createdAt := r.CreatedAt
		if createdAt.IsZero() {
			createdAt = time.Now().UTC()
		}
		builder = builder.Values(r.ID, r.Name, r.Category, r.Status, r.Owner, r.Region, r.Country, r.SizeMB, r.Archived, createdAt)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return err
	}
	_, err = s.db.ExecContext(ctx, query, args...)
	return err
}

// List returns the records matching the options.
func (s *RecordStore) List(ctx context.Context, opts ...ListOption) ([]models.Record, error) {
	builder := sq.Select(recordSelect...).From("records")
	for _, opt := range opts {
		builder = opt(builder)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := []models.Record{}
	if err := sqlx.StructScan(rows, &records); err != nil {
		return nil, fmt.Errorf("scanning records: %w", err)
	}
	return records, nil
}

// Count returns the number of records matching the options. Pass filtering options only.
func (s *RecordStore) Count(ctx context.Context, opts ...ListOption) (int, error) {
	builder := sq.Select("COUNT(*)").From("records")
	for _, opt := range opts {
		builder = opt(builder)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return 0, err
	}

	var count int
	err = s.db.QueryRowContext(ctx, query, args...).Scan(&count)
	return count, err
}

// Aggregate counts records and sums their size per distinct combination of columns.
func (s *RecordStore) Aggregate(ctx context.Context, columns []string, opts ...ListOption) ([]models.RecordGroup, error) {
	if len(columns) == 0 {
		return nil, fmt.Errorf("aggregate needs at least one column")
	}

	selected := append(append([]string{}, columns...),
		"COUNT(*) AS record_count",
		"COALESCE(SUM(size_mb), 0) AS total_size_mb",
	)
	builder := sq.Select(selected...).From("records")
	for _, opt := range opts {
		builder = opt(builder)
	}
	builder = builder.GroupBy(columns...).OrderBy(columns...)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	groups := []models.RecordGroup{}
	for rows.Next() {
		row := make(map[string]any)
		if err := sqlx.MapScan(rows, row); err != nil {
			return nil, fmt.Errorf("scanning group: %w", err)
		}

		group := models.RecordGroup{Keys: make(map[string]string, len(columns))}
		for _, c := range columns {
			group.Keys[c] = keyString(row[c])
		}
		group.Count = int(toFloat(row["record_count"]))
		group.TotalSizeMB = toFloat(row["total_size_mb"])
		groups = append(groups, group)
	}

	return groups, rows.Err()
}

func keyString(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case []byte:
		return string(t)
	case time.Time:
		return t.Format(time.RFC3339)
	default:
		return fmt.Sprint(t)
	}
}

func toFloat(v any) float64 {
	switch t := v.(type) {
	case int64:
		return float64(t)
	case int32:
		return float64(t)
	case int:
		return float64(t)
	case uint64:
		return float64(t)
	case float64:
		return t
	case float32:
		return float64(t)
	default:
		return 0
	}
}
