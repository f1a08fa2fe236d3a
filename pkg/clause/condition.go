package clause

import (
	"fmt"
	"strings"
)

// FilterCondition is one atomic comparison such as Category IN ('a','b').
type FilterCondition struct {
	Column     string
	Comparison Comparison
	Values     []Value
}

func NewFilterCondition(column string, cmp Comparison, values ...Value) *FilterCondition {
	return &FilterCondition{
		Column:     column,
		Comparison: cmp,
		Values:     values,
	}
}

// NewInCondition builds "column IN (values...)" over string values.
func NewInCondition(column string, values ...string) *FilterCondition {
	return NewFilterCondition(column, In, StringValues(values...)...)
}

func (c *FilterCondition) IsValid() bool {
	return len(c.Issues()) == 0
}

// Issues lists everything that prevents the condition from rendering valid SQL.
func (c *FilterCondition) Issues() []string {
	var issues []string

	if strings.TrimSpace(c.Column) == "" {
		issues = append(issues, "filter condition has no column")
	}

	if !c.Comparison.IsDefined() {
		issues = append(issues, fmt.Sprintf("filter condition on %q has undefined comparison %s", c.Column, c.Comparison))
		return issues
	}

	switch {
	case len(c.Values) == 0:
		issues = append(issues, fmt.Sprintf("filter condition on %q has no values", c.Column))
	case !c.Comparison.IsList() && len(c.Values) > 1:
		issues = append(issues, fmt.Sprintf("filter condition on %q expects one value for %s, got %d", c.Column, c.Comparison, len(c.Values)))
	}

	for _, v := range c.Values {
		if v == nil {
			issues = append(issues, fmt.Sprintf("filter condition on %q has a nil value", c.Column))
			break
		}
	}

	return issues
}

func (c *FilterCondition) String() string {
	values := make([]string, 0, len(c.Values))
	for _, v := range c.Values {
		if v != nil {
			values = append(values, v.String())
		}
	}
	return fmt.Sprintf("(%s %s [%s])", c.Column, c.Comparison, strings.Join(values, " "))
}

func (c *FilterCondition) Sql() string {
	values := make([]string, 0, len(c.Values))
	for _, v := range c.Values {
		if v != nil {
			values = append(values, v.Sql())
		}
	}

	switch c.Comparison {
	case In, NotIn:
		return fmt.Sprintf("%s %s (%s)", c.Column, c.Comparison.Sql(), strings.Join(values, ","))
	case Match:
		return fmt.Sprintf("regexp_matches(%s, %s)", c.Column, firstOrEmpty(values))
	case NotMatch:
		return fmt.Sprintf("NOT regexp_matches(%s, %s)", c.Column, firstOrEmpty(values))
	default:
		return fmt.Sprintf("%s %s %s", c.Column, c.Comparison.Sql(), firstOrEmpty(values))
	}
}

// Clone returns a copy that shares nothing mutable with c.
func (c *FilterCondition) Clone() *FilterCondition {
	if c == nil {
		return nil
	}
	values := make([]Value, len(c.Values))
	copy(values, c.Values)
	return &FilterCondition{
		Column:     c.Column,
		Comparison: c.Comparison,
		Values:     values,
	}
}

func firstOrEmpty(values []string) string {
	if len(values) == 0 {
		return ""
	}
	return values[0]
}
