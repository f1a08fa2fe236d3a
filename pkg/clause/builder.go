package clause

import (
	srvErrors "github.com/kubev2v/filter-clauses/pkg/errors"
)

// WhereClauseBuilder accumulates sections and produces a WhereClauseCommand.
// A builder is meant for one clause construction and is not safe for concurrent use.
type WhereClauseBuilder interface {
	Kind() BuilderKind
	AddFilterCondition(section *Section, sectionType SectionType) error
	CreateWhereClause() *WhereClauseCommand
}

// NewWhereClauseBuilder returns the builder variant for kind.
func NewWhereClauseBuilder(kind BuilderKind, op Operator) (WhereClauseBuilder, error) {
	switch kind {
	case DataBuilder:
		return NewGenericWhereClauseBuilder(op), nil
	case GlobalFiltersBuilder:
		return NewPriorityWhereClauseBuilder(op), nil
	default:
		return nil, srvErrors.NewNoSuchWhereClauseBuilderError(
			srvErrors.ErrorContext{Operation: "NewWhereClauseBuilder", Parameter: "kind"},
			kind.String(),
		)
	}
}

// GenericWhereClauseBuilder owns a single default section.
type GenericWhereClauseBuilder struct {
	section *WhereClauseSection
}

func NewGenericWhereClauseBuilder(op Operator) *GenericWhereClauseBuilder {
	return &GenericWhereClauseBuilder{
		section: NewWhereClauseSection(DefaultSection, op),
	}
}

func (b *GenericWhereClauseBuilder) Kind() BuilderKind {
	return DataBuilder
}

func (b *GenericWhereClauseBuilder) AddFilterCondition(section *Section, sectionType SectionType) error {
	if !sectionType.IsDefined() || sectionType != b.section.Type {
		return noSuchSectionType(sectionType)
	}
	b.section.AddFilterCondition(section)
	return nil
}

func (b *GenericWhereClauseBuilder) CreateWhereClause() *WhereClauseCommand {
	return newCommandFromSections(b.section)
}

// PriorityWhereClauseBuilder renders the last selected section ahead of the default one.
type PriorityWhereClauseBuilder struct {
	sections []*WhereClauseSection
}

func NewPriorityWhereClauseBuilder(op Operator) *PriorityWhereClauseBuilder {
	return &PriorityWhereClauseBuilder{
		sections: []*WhereClauseSection{
			NewWhereClauseSection(LastSelectedSection, op),
			NewWhereClauseSection(DefaultSection, op),
		},
	}
}

func (b *PriorityWhereClauseBuilder) Kind() BuilderKind {
	return GlobalFiltersBuilder
}

func (b *PriorityWhereClauseBuilder) AddFilterCondition(section *Section, sectionType SectionType) error {
	if !sectionType.IsDefined() {
		return noSuchSectionType(sectionType)
	}
	for _, s := range b.sections {
		if s.Type == sectionType {
			s.AddFilterCondition(section)
			return nil
		}
	}
	return noSuchSectionType(sectionType)
}

func (b *PriorityWhereClauseBuilder) CreateWhereClause() *WhereClauseCommand {
	return newCommandFromSections(b.sections...)
}

func newCommandFromSections(sections ...*WhereClauseSection) *WhereClauseCommand {
	cmd := NewWhereClauseCommand()
	for _, s := range sections {
		if s.HasAny() {
			cmd.AddSection(s)
		}
	}
	return cmd
}

func noSuchSectionType(t SectionType) error {
	return srvErrors.NewNoSuchFilterConditionSectionTypeError(
		srvErrors.ErrorContext{Operation: "AddFilterCondition", Parameter: "sectionType"},
		t.String(),
	)
}
