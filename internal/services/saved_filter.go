package services

import (
	"context"

	"github.com/kubev2v/filter-clauses/internal/models"
	"github.com/kubev2v/filter-clauses/internal/store"
	srvErrors "github.com/kubev2v/filter-clauses/pkg/errors"
	"github.com/kubev2v/filter-clauses/pkg/filter"
)

type SavedFilterService struct {
	store  *store.Store
	schema filter.Schema
}

func NewSavedFilterService(st *store.Store) *SavedFilterService {
	return &SavedFilterService{store: st, schema: store.RecordSchema()}
}

// Create validates the expression against the records schema before saving it.
func (s *SavedFilterService) Create(ctx context.Context, name, expression string) (*models.SavedFilter, error) {
	if _, err := filter.Parse([]byte(expression), s.schema); err != nil {
		return nil, srvErrors.NewInvalidFilterError(expression, err.Error())
	}
	return s.store.SavedFilters().Create(ctx, models.SavedFilter{Name: name, Expression: expression})
}

func (s *SavedFilterService) Get(ctx context.Context, id string) (*models.SavedFilter, error) {
	return s.store.SavedFilters().Get(ctx, id)
}

func (s *SavedFilterService) List(ctx context.Context) ([]models.SavedFilter, error) {
	return s.store.SavedFilters().List(ctx)
}

func (s *SavedFilterService) Delete(ctx context.Context, id string) error {
	return s.store.SavedFilters().Delete(ctx, id)
}
