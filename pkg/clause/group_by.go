package clause

import "strings"

// ColumnDefinition is one column a groupable filter can group by.
type ColumnDefinition struct {
	FieldName string
	Visible   bool
}

// Groupable is a filter eligible for GROUP BY. ColumnDefinitions returns the
// primary column first, followed by the columns derived from it.
type Groupable interface {
	IsPrimaryColumn() bool
	IsGroupable() bool
	ColumnDefinitions() []ColumnDefinition
}

// GroupByClauseCommand holds the ordered GROUP BY column list.
type GroupByClauseCommand struct {
	columns []string
}

// CreateGroupByClause builds the GROUP BY column list from the primary,
// groupable entries. It returns nil when groupables is empty.
//
// With onlyPrimaryColumn set, each entry contributes its primary column if
// visible. Otherwise every visible column definition is included.
func CreateGroupByClause(groupables []Groupable, onlyPrimaryColumn bool) *GroupByClauseCommand {
	if len(groupables) == 0 {
		return nil
	}

	cmd := &GroupByClauseCommand{columns: make([]string, 0, len(groupables))}
	for _, g := range groupables {
		if g == nil || !g.IsPrimaryColumn() || !g.IsGroupable() {
			continue
		}

		defs := g.ColumnDefinitions()
		if onlyPrimaryColumn {
			if len(defs) > 0 && defs[0].Visible {
				cmd.columns = append(cmd.columns, defs[0].FieldName)
			}
			continue
		}

		for _, def := range defs {
			if def.Visible {
				cmd.columns = append(cmd.columns, def.FieldName)
			}
		}
	}

	return cmd
}

func (g *GroupByClauseCommand) Columns() []string {
	return g.columns
}

func (g *GroupByClauseCommand) IsValid() bool {
	return len(g.columns) > 0
}

// CreateCommand returns "GROUP BY col1, col2", or "" with no columns.
func (g *GroupByClauseCommand) CreateCommand() string {
	if len(g.columns) == 0 {
		return ""
	}
	return "GROUP BY " + strings.Join(g.columns, ", ")
}
