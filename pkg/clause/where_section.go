package clause

import (
	"fmt"
	"strings"
)

// WhereClauseSection bundles sections joined by a single operator.
type WhereClauseSection struct {
	Type     SectionType
	Operator Operator

	sections []*Section
}

func NewWhereClauseSection(sectionType SectionType, op Operator) *WhereClauseSection {
	return &WhereClauseSection{
		Type:     sectionType,
		Operator: op,
		sections: make([]*Section, 0),
	}
}

func (w *WhereClauseSection) AddFilterCondition(section *Section) {
	w.sections = append(w.sections, section)
}

func (w *WhereClauseSection) Sections() []*Section {
	return w.sections
}

// HasAny reports whether at least one section would be rendered.
// Invalid sections are never rendered.
func (w *WhereClauseSection) HasAny() bool {
	return len(w.renderable()) > 0
}

// CreateWhereClauseSectionString renders the valid sections joined by the
// section operator. Unless isFirst is set the text is prefixed with the operator.
func (w *WhereClauseSection) CreateWhereClauseSectionString(isFirst bool) string {
	return w.render(isFirst, false)
}

// render optionally parenthesizes a multi-section body so that it keeps its
// meaning when joined with other where clause sections.
func (w *WhereClauseSection) render(isFirst, wrap bool) string {
	sections := w.renderable()
	if len(sections) == 0 {
		return ""
	}

	parts := make([]string, 0, len(sections))
	for i, s := range sections {
		if i == 0 {
			parts = append(parts, s.CreateFilterClauseString(true))
			continue
		}
		parts = append(parts, w.Operator.String()+" "+s.CreateFilterClauseString(true))
	}

	body := strings.Join(parts, " ")
	if wrap && len(sections) > 1 {
		body = "(" + body + ")"
	}
	if isFirst {
		return body
	}
	return w.Operator.String() + " " + body
}

func (w *WhereClauseSection) renderable() []*Section {
	out := make([]*Section, 0, len(w.sections))
	for _, s := range w.sections {
		if s != nil && s.IsValid() {
			out = append(out, s)
		}
	}
	return out
}

func (w *WhereClauseSection) IsValid() bool {
	return len(w.Issues()) == 0
}

// Issues lists the problems of every held section, prefixed by the section type.
func (w *WhereClauseSection) Issues() []string {
	var issues []string
	if !w.Type.IsDefined() {
		issues = append(issues, fmt.Sprintf("where clause section has undefined type %s", w.Type))
	}
	if !w.Operator.IsDefined() {
		issues = append(issues, fmt.Sprintf("%s section has undefined operator %s", w.Type, w.Operator))
	}
	for i, s := range w.sections {
		if s == nil {
			issues = append(issues, fmt.Sprintf("%s section #%d is nil", w.Type, i))
			continue
		}
		for _, issue := range s.Issues() {
			issues = append(issues, fmt.Sprintf("%s section #%d: %s", w.Type, i, issue))
		}
	}
	return issues
}
