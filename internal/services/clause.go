package services

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/kubev2v/filter-clauses/internal/models"
	"github.com/kubev2v/filter-clauses/internal/store"
	"github.com/kubev2v/filter-clauses/pkg/clause"
	srvErrors "github.com/kubev2v/filter-clauses/pkg/errors"
	"github.com/kubev2v/filter-clauses/pkg/filter"
)

// ClauseService turns client requests into where and group by clauses and runs them
// against the records table.
type ClauseService struct {
	store   *store.Store
	clauses *clause.WhereClause
	schema  filter.Schema
	logger  *zap.SugaredLogger
}

func NewClauseService(st *store.Store) *ClauseService {
	return &ClauseService{
		store:   st,
		clauses: clause.NewDefaultWhereClause(),
		schema:  store.RecordSchema(),
		logger:  zap.S().Named("clause_service"),
	}
}

// Build returns the where clause for the request and, when requested, its group by clause.
// The group by command is nil when grouping was not asked for.
func (s *ClauseService) Build(ctx context.Context, req models.ClauseRequest) (*clause.WhereClauseCommand, *clause.GroupByClauseCommand, error) {
	filters, err := s.resolve(req.Filters)
	if err != nil {
		return nil, nil, err
	}

	extra, err := s.sections(ctx, req)
	if err != nil {
		return nil, nil, err
	}

	items := make([]clause.Filter, 0, len(filters))
	for _, f := range filters {
		items = append(items, f)
	}

	where, err := s.clauses.Create(req.Kind, req.Operator, items, extra...)
	if err != nil {
		return nil, nil, err
	}

	if !req.GroupBy {
		return where, nil, nil
	}

	groupables := make([]clause.Groupable, 0, len(filters))
	for _, f := range filters {
		groupables = append(groupables, f)
	}
	return where, clause.CreateGroupByClause(groupables, req.OnlyPrimary), nil
}

// Preview renders the request without touching the records.
func (s *ClauseService) Preview(ctx context.Context, req models.ClauseRequest) (*models.ClausePreview, error) {
	where, groupBy, err := s.Build(ctx, req)
	if err != nil {
		return nil, err
	}

	preview := &models.ClausePreview{
		Where:  where.CreateCommand(),
		Valid:  where.IsValid(),
		Issues: where.InvalidCommandMessage(),
	}
	if groupBy != nil {
		preview.GroupBy = groupBy.Columns()
	}
	return preview, nil
}

// Query returns a page of matching records and the total number of matches.
func (s *ClauseService) Query(ctx context.Context, req models.ClauseRequest) ([]models.Record, int, error) {
	where, _, err := s.Build(ctx, req)
	if err != nil {
		return nil, 0, err
	}
	if err := checkRenderable(where); err != nil {
		return nil, 0, err
	}

	records, err := s.store.Records().List(ctx,
		store.WithClause(where),
		store.WithDefaultSort(),
		store.WithLimit(req.Limit),
		store.WithOffset(req.Offset),
	)
	if err != nil {
		return nil, 0, fmt.Errorf("listing records: %w", err)
	}

	total, err := s.store.Records().Count(ctx, store.WithClause(where))
	if err != nil {
		return nil, 0, fmt.Errorf("counting records: %w", err)
	}

	s.logger.Debugw("records queried", "where", where.CreateCommand(), "returned", len(records), "total", total)
	return records, total, nil
}

// Aggregate groups matching records by the group by columns of the request.
func (s *ClauseService) Aggregate(ctx context.Context, req models.ClauseRequest) ([]models.RecordGroup, []string, error) {
	req.GroupBy = true
	where, groupBy, err := s.Build(ctx, req)
	if err != nil {
		return nil, nil, err
	}
	if err := checkRenderable(where); err != nil {
		return nil, nil, err
	}
	if groupBy == nil || !groupBy.IsValid() {
		return nil, nil, srvErrors.NewInvalidCommandError("group by clause has no columns")
	}

	groups, err := s.store.Records().Aggregate(ctx, groupBy.Columns(), store.WithClause(where))
	if err != nil {
		return nil, nil, fmt.Errorf("aggregating records: %w", err)
	}
	return groups, groupBy.Columns(), nil
}

// resolve maps client column names to record columns.
func (s *ClauseService) resolve(items []models.FilterItem) ([]models.FilterItem, error) {
	resolved := make([]models.FilterItem, 0, len(items))
	for _, item := range items {
		column, ok := s.schema.Column(item.Column)
		if !ok {
			return nil, srvErrors.NewInvalidFilterError(item.Column, "unknown column")
		}

		var defs []clause.ColumnDefinition
		for _, d := range item.Columns {
			field, ok := s.schema.Column(d.FieldName)
			if !ok {
				return nil, srvErrors.NewInvalidFilterError(d.FieldName, "unknown column")
			}
			defs = append(defs, clause.ColumnDefinition{FieldName: field, Visible: d.Visible})
		}

		item.Column = column
		item.Columns = defs
		resolved = append(resolved, item)
	}
	return resolved, nil
}

// sections parses the inline expressions and the saved filters into section
// organizers, one per expression.
func (s *ClauseService) sections(ctx context.Context, req models.ClauseRequest) ([]clause.Organizer, error) {
	var organizers []clause.Organizer

	for _, expression := range req.Expressions {
		if strings.TrimSpace(expression) == "" {
			continue
		}
		section, err := s.parse(expression)
		if err != nil {
			return nil, err
		}
		organizers = append(organizers, clause.SectionOrganizer{Section: section, Type: clause.DefaultSection})
	}

	for _, id := range req.SavedFilterIDs {
		saved, err := s.store.SavedFilters().Get(ctx, id)
		if err != nil {
			return nil, err
		}
		section, err := s.parse(saved.Expression)
		if err != nil {
			return nil, err
		}
		organizers = append(organizers, clause.SectionOrganizer{Section: section, Type: clause.DefaultSection})
	}

	return organizers, nil
}

func (s *ClauseService) parse(expression string) (*clause.Section, error) {
	section, err := filter.Parse([]byte(expression), s.schema)
	if err != nil {
		return nil, srvErrors.NewInvalidFilterError(expression, err.Error())
	}
	return section, nil
}

// checkRenderable rejects commands holding invalid sections. An empty command matches everything.
func checkRenderable(cmd *clause.WhereClauseCommand) error {
	if !cmd.HasAny() {
		return nil
	}
	_, err := cmd.Render()
	return err
}
