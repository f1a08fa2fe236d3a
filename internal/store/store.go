package store

import (
	"context"
	"database/sql"

	"github.com/kubev2v/filter-clauses/internal/store/migrations"
)

// Store provides access to all storage repositories.
type Store struct {
	db           *sql.DB
	records      *RecordStore
	savedFilters *SavedFilterStore
}

func NewStore(db *sql.DB) *Store {
	qi := newTracingInterceptor(db)
	return &Store{
		db:           db,
		records:      NewRecordStore(qi),
		savedFilters: NewSavedFilterStore(qi),
	}
}

// Migrate brings the schema to the latest version.
func (s *Store) Migrate(ctx context.Context) error {
	return migrations.Run(ctx, s.db)
}

func (s *Store) Records() *RecordStore {
	return s.records
}

func (s *Store) SavedFilters() *SavedFilterStore {
	return s.savedFilters
}

func (s *Store) Close() error {
	return s.db.Close()
}
