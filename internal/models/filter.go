package models

import (
	"time"

	"github.com/kubev2v/filter-clauses/pkg/clause"
)

// FilterItem is a column selection sent by a client. It feeds both the where clause
// (column and selected values) and the group by clause (primary and groupable flags).
type FilterItem struct {
	Column       string
	Values       []string
	LastSelected bool
	Primary      bool
	Groupable    bool
	Columns      []clause.ColumnDefinition
}

func (f FilterItem) ColumnName() string {
	return f.Column
}

func (f FilterItem) SelectedValues() []string {
	return f.Values
}

func (f FilterItem) IsLastSelected() bool {
	return f.LastSelected
}

func (f FilterItem) IsPrimaryColumn() bool {
	return f.Primary
}

func (f FilterItem) IsGroupable() bool {
	return f.Groupable
}

// ColumnDefinitions returns the explicit definitions, or the item column as a visible primary.
func (f FilterItem) ColumnDefinitions() []clause.ColumnDefinition {
	if len(f.Columns) == 0 {
		return []clause.ColumnDefinition{{FieldName: f.Column, Visible: true}}
	}
	return f.Columns
}

// SavedFilter is a named filter expression kept in the store.
type SavedFilter struct {
	ID         string    `db:"id"`
	Name       string    `db:"name"`
	Expression string    `db:"expression"`
	CreatedAt  time.Time `db:"created_at"`
}

// ClauseRequest describes the clause a caller wants built.
type ClauseRequest struct {
	Kind           clause.BuilderKind
	Operator       clause.Operator
	Filters        []FilterItem
	Expressions    []string // each becomes its own section
	SavedFilterIDs []string
	GroupBy        bool
	OnlyPrimary    bool
	Limit          uint64
	Offset         uint64
}

// ClausePreview is the rendered form of a request.
type ClausePreview struct {
	Where   string
	GroupBy []string
	Valid   bool
	Issues  string
}
