package v1

import (
	"fmt"

	"github.com/kubev2v/filter-clauses/internal/models"
	"github.com/kubev2v/filter-clauses/pkg/clause"
)

// ToModel converts the request. Pagination is left to the caller.
func (r ClauseRequest) ToModel() (models.ClauseRequest, error) {
	var m models.ClauseRequest

	if r.Kind != nil {
		kind, ok := clause.ParseBuilderKind(string(*r.Kind))
		if !ok {
			return m, fmt.Errorf("unknown clause kind %q", *r.Kind)
		}
		m.Kind = kind
	}

	if r.Operator != nil {
		op, ok := clause.ParseOperator(string(*r.Operator))
		if !ok {
			return m, fmt.Errorf("unknown operator %q", *r.Operator)
		}
		m.Operator = op
	}

	for _, f := range r.Filters {
		m.Filters = append(m.Filters, f.ToModel())
	}

	if r.Expression != nil {
		m.Expressions = []string{*r.Expression}
	}
	m.SavedFilterIDs = r.SavedFilters
	m.GroupBy = deref(r.GroupBy)
	m.OnlyPrimary = deref(r.OnlyPrimary)

	return m, nil
}

func (f FilterItem) ToModel() models.FilterItem {
	item := models.FilterItem{
		Column:       f.Column,
		Values:       f.Values,
		LastSelected: deref(f.LastSelected),
		Primary:      deref(f.Primary),
		Groupable:    deref(f.Groupable),
	}
	if f.Columns != nil {
		for _, c := range *f.Columns {
			item.Columns = append(item.Columns, clause.ColumnDefinition{FieldName: c.FieldName, Visible: c.Visible})
		}
	}
	return item
}

func (r RecordInput) ToModel() models.Record {
	record := models.Record{
		Name:     r.Name,
		Category: r.Category,
		Status:   r.Status,
		Owner:    r.Owner,
		Region:   r.Region,
		Country:  r.Country,
		SizeMB:   r.SizeMb,
		Archived: r.Archived,
	}
	if r.Id != nil {
		record.ID = *r.Id
	}
	return record
}

func NewClausePreview(p models.ClausePreview) ClausePreview {
	preview := ClausePreview{
		Where:   p.Where,
		GroupBy: p.GroupBy,
		Valid:   p.Valid,
	}
	if p.Issues != "" {
		issues := p.Issues
		preview.Issues = &issues
	}
	return preview
}

func NewRecord(r models.Record) Record {
	return Record{
		Id:        r.ID,
		Name:      r.Name,
		Category:  r.Category,
		Status:    r.Status,
		Owner:     r.Owner,
		Region:    r.Region,
		Country:   r.Country,
		SizeMb:    r.SizeMB,
		Archived:  r.Archived,
		CreatedAt: r.CreatedAt,
	}
}

func NewRecordGroup(g models.RecordGroup) RecordGroup {
	return RecordGroup{
		Keys:        g.Keys,
		Count:       g.Count,
		TotalSizeMb: g.TotalSizeMB,
	}
}

func NewSavedFilter(f models.SavedFilter) SavedFilter {
	return SavedFilter{
		Id:         f.ID,
		Name:       f.Name,
		Expression: f.Expression,
		CreatedAt:  f.CreatedAt,
	}
}

func deref(b *bool) bool {
	return b != nil && *b
}
