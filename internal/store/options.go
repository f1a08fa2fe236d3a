package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/kubev2v/filter-clauses/pkg/clause"
)

// ListOption modifies a SELECT query for filtering, sorting and pagination.
type ListOption func(sq.SelectBuilder) sq.SelectBuilder

// WithClause adds a rendered where clause command. Empty commands are ignored.
func WithClause(cmd *clause.WhereClauseCommand) ListOption {
	return func(b sq.SelectBuilder) sq.SelectBuilder {
		if cmd == nil || !cmd.HasAny() {
			return b
		}
		return b.Where(cmd)
	}
}

// ByIDs restricts the query to the given record ids.
func ByIDs(ids ...string) ListOption {
	return func(b sq.SelectBuilder) sq.SelectBuilder {
		if len(ids) == 0 {
			return b
		}
		return b.Where(sq.Eq{"id": ids})
	}
}

func WithLimit(limit uint64) ListOption {
	return func(b sq.SelectBuilder) sq.SelectBuilder {
		if limit == 0 {
			return b
		}
		return b.Limit(limit)
	}
}

func WithOffset(offset uint64) ListOption {
	return func(b sq.SelectBuilder) sq.SelectBuilder {
		if offset == 0 {
			return b
		}
		return b.Offset(offset)
	}
}

// WithDefaultSort orders by id so pagination is stable.
func WithDefaultSort() ListOption {
	return func(b sq.SelectBuilder) sq.SelectBuilder {
		return b.OrderBy("id")
	}
}
