package store

import (
	"context"
	"database/sql"
	"errors"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/kubev2v/filter-clauses/internal/models"
	srvErrors "github.com/kubev2v/filter-clauses/pkg/errors"
)

var savedFilterColumns = []string{"id", "name", "expression", "created_at"}

type SavedFilterStore struct {
	db QueryInterceptor
}

func NewSavedFilterStore(db QueryInterceptor) *SavedFilterStore {
	return &SavedFilterStore{db: db}
}

// Create stores the filter under a new id and returns the stored value. Names are unique.
func (s *SavedFilterStore) Create(ctx context.Context, f models.SavedFilter) (*models.SavedFilter, error) {
	query, args, err := sq.Select("COUNT(*)").From("saved_filters").Where(sq.Eq{"name": f.Name}).ToSql()
	if err != nil {
		return nil, err
	}
	var existing int
	if err := s.db.QueryRowContext(ctx, query, args...).Scan(&existing); err != nil {
		return nil, err
	}
	if existing > 0 {
		return nil, srvErrors.NewSavedFilterExistsError(f.Name)
	}

	f.ID = uuid.NewString()
	f.CreatedAt = time.Now().UTC()

	query, args, err = sq.Insert("saved_filters").
		Columns(savedFilterColumns...).
		Values(f.ID, f.Name, f.Expression, f.CreatedAt).
		ToSql()
	if err != nil {
		return nil, err
	}
	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		return nil, err
	}
	return &f, nil
}

func (s *SavedFilterStore) Get(ctx context.Context, id string) (*models.SavedFilter, error) {
	query, args, err := sq.Select(savedFilterColumns...).
		From("saved_filters").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, err
	}

	var f models.SavedFilter
	err = s.db.QueryRowContext(ctx, query, args...).Scan(&f.ID, &f.Name, &f.Expression, &f.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, srvErrors.NewSavedFilterNotFoundError(id)
	}
	if err != nil {
		return nil, err
	}
	return &f, nil
}

// List returns every saved filter ordered by name.
func (s *SavedFilterStore) List(ctx context.Context) ([]models.SavedFilter, error) {
	query, args, err := sq.Select(savedFilterColumns...).
		From("saved_filters").
		OrderBy("name").
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	filters := []models.SavedFilter{}
	if err := sqlx.StructScan(rows, &filters); err != nil {
		return nil, err
	}
	return filters, nil
}

func (s *SavedFilterStore) Delete(ctx context.Context, id string) error {
	query, args, err := sq.Delete("saved_filters").Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return err
	}

	res, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return srvErrors.NewSavedFilterNotFoundError(id)
	}
	return nil
}
