package clause

import (
	"fmt"
	"strings"
)

// Operator joins two sections of a clause.
type Operator int

const (
	And Operator = iota
	Or
)

var operatorSql = map[Operator]string{
	And: "AND",
	Or:  "OR",
}

func (o Operator) String() string {
	if sql, ok := operatorSql[o]; ok {
		return sql
	}
	return fmt.Sprintf("Operator(%d)", int(o))
}

func (o Operator) IsDefined() bool {
	_, ok := operatorSql[o]
	return ok
}

// ParseOperator accepts "and"/"or" in any case.
func ParseOperator(s string) (Operator, bool) {
	switch strings.ToLower(s) {
	case "and":
		return And, true
	case "or":
		return Or, true
	default:
		return And, false
	}
}

// Comparison is the operator of a single filter condition.
type Comparison int

const (
	In Comparison = iota
	NotIn
	Equal
	NotEqual
	Less
	LessOrEqual
	Greater
	GreaterOrEqual
	Match
	NotMatch
)

var comparisonNames = map[Comparison]string{
	In:             "in",
	NotIn:          "notIn",
	Equal:          "equal",
	NotEqual:       "notEqual",
	Less:           "less",
	LessOrEqual:    "lte",
	Greater:        "greater",
	GreaterOrEqual: "gte",
	Match:          "like",
	NotMatch:       "notLike",
}

var comparisonSql = map[Comparison]string{
	In:             "IN",
	NotIn:          "NOT IN",
	Equal:          "=",
	NotEqual:       "!=",
	Less:           "<",
	LessOrEqual:    "<=",
	Greater:        ">",
	GreaterOrEqual: ">=",
	Match:          "",    // translated to regexp_matches(...)
	NotMatch:       "NOT", // translated to NOT regexp_matches(...)
}

func (c Comparison) String() string {
	if name, ok := comparisonNames[c]; ok {
		return name
	}
	return fmt.Sprintf("Comparison(%d)", int(c))
}

func (c Comparison) Sql() string {
	return comparisonSql[c]
}

func (c Comparison) IsDefined() bool {
	_, ok := comparisonNames[c]
	return ok
}

// IsList reports whether the comparison takes a list of values.
func (c Comparison) IsList() bool {
	return c == In || c == NotIn
}

// SectionType tags a WhereClauseSection. LastSelected sections render before Default ones.
type SectionType int

const (
	DefaultSection SectionType = iota
	LastSelectedSection
)

var sectionTypeNames = map[SectionType]string{
	DefaultSection:      "default",
	LastSelectedSection: "lastSelected",
}

func (t SectionType) String() string {
	if name, ok := sectionTypeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("SectionType(%d)", int(t))
}

func (t SectionType) IsDefined() bool {
	_, ok := sectionTypeNames[t]
	return ok
}

// BuilderKind selects the where clause builder variant.
type BuilderKind int

const (
	// DataBuilder joins every condition in a single section.
	DataBuilder BuilderKind = iota
	// GlobalFiltersBuilder renders the last selected filter ahead of the others.
	GlobalFiltersBuilder
)

var builderKindNames = map[BuilderKind]string{
	DataBuilder:          "data",
	GlobalFiltersBuilder: "globalFilters",
}

func (k BuilderKind) String() string {
	if name, ok := builderKindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("BuilderKind(%d)", int(k))
}

func (k BuilderKind) IsDefined() bool {
	_, ok := builderKindNames[k]
	return ok
}

// ParseBuilderKind maps "data" and "globalFilters" to their kind.
func ParseBuilderKind(s string) (BuilderKind, bool) {
	for k, name := range builderKindNames {
		if name == s {
			return k, true
		}
	}
	return DataBuilder, false
}
