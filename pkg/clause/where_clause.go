package clause

import (
	srvErrors "github.com/kubev2v/filter-clauses/pkg/errors"
)

// Filter is a named column with its selected values.
type Filter interface {
	ColumnName() string
	SelectedValues() []string
	IsLastSelected() bool
}

// Organizer turns filters into sections on a builder.
type Organizer interface {
	Organize(filters []Filter, builder WhereClauseBuilder) error
}

// OrganizerFunc adapts a function to Organizer.
type OrganizerFunc func(filters []Filter, builder WhereClauseBuilder) error

func (f OrganizerFunc) Organize(filters []Filter, builder WhereClauseBuilder) error {
	return f(filters, builder)
}

// InOrganizer adds one "column IN (values...)" section per filter with selected values.
// With PrioritizeLastSelected set, the last selected filter goes to the LastSelected section.
type InOrganizer struct {
	PrioritizeLastSelected bool
}

func (o InOrganizer) Organize(filters []Filter, builder WhereClauseBuilder) error {
	for _, f := range filters {
		if f == nil || len(f.SelectedValues()) == 0 {
			continue
		}

		sectionType := DefaultSection
		if o.PrioritizeLastSelected && f.IsLastSelected() {
			sectionType = LastSelectedSection
		}

		section := NewSection(NewInCondition(f.ColumnName(), f.SelectedValues()...))
		if err := builder.AddFilterCondition(section, sectionType); err != nil {
			return err
		}
	}
	return nil
}

// SectionOrganizer adds a prepared section, e.g. one parsed from a filter expression.
// The section is cloned so the template can be reused.
type SectionOrganizer struct {
	Section *Section
	Type    SectionType
}

func (o SectionOrganizer) Organize(_ []Filter, builder WhereClauseBuilder) error {
	if o.Section == nil {
		return nil
	}
	return builder.AddFilterCondition(o.Section.Clone(), o.Type)
}

// WhereClause runs the organizers registered for a builder kind and returns the command.
type WhereClause struct {
	organizers map[BuilderKind][]Organizer
}

func NewWhereClause() *WhereClause {
	return &WhereClause{organizers: make(map[BuilderKind][]Organizer)}
}

// NewDefaultWhereClause registers InOrganizer for both builder kinds.
func NewDefaultWhereClause() *WhereClause {
	w := NewWhereClause()
	w.organizers[DataBuilder] = []Organizer{InOrganizer{}}
	w.organizers[GlobalFiltersBuilder] = []Organizer{InOrganizer{PrioritizeLastSelected: true}}
	return w
}

func (w *WhereClause) Register(kind BuilderKind, organizers ...Organizer) error {
	if !kind.IsDefined() {
		return srvErrors.NewNoSuchWhereClauseBuilderError(
			srvErrors.ErrorContext{Operation: "Register", Parameter: "kind"},
			kind.String(),
		)
	}
	w.organizers[kind] = append(w.organizers[kind], organizers...)
	return nil
}

// Create builds the where clause for kind. Extra organizers run after the registered ones.
func (w *WhereClause) Create(kind BuilderKind, op Operator, filters []Filter, extra ...Organizer) (*WhereClauseCommand, error) {
	builder, err := NewWhereClauseBuilder(kind, op)
	if err != nil {
		return nil, err
	}

	organizers := w.organizers[kind]
	if len(organizers) == 0 && len(extra) == 0 {
		return nil, srvErrors.NewNoSuchWhereClauseError(
			srvErrors.ErrorContext{Operation: "Create", Parameter: "kind"},
			kind.String(),
		)
	}

	for _, o := range append(append([]Organizer{}, organizers...), extra...) {
		if err := o.Organize(filters, builder); err != nil {
			return nil, err
		}
	}

	return builder.CreateWhereClause(), nil
}
