package clause

import "strings"

// Section is one node of the WHERE boolean tree: a condition followed by child
// sections, each child carrying the operator that joins it to what precedes it.
//
// A group section has no condition of its own. Its first child is rendered
// without a leading operator.
type Section struct {
	Condition *FilterCondition
	Operator  Operator

	children []*Section
	group    bool
}

func NewSection(cond *FilterCondition) *Section {
	return &Section{Condition: cond, Operator: And}
}

// NewGroupSection returns a section that only parenthesizes its children.
func NewGroupSection(children ...*Section) *Section {
	s := &Section{Operator: And, group: true}
	s.children = append(s.children, children...)
	return s
}

// AddSection appends child joined by op.
func (s *Section) AddSection(op Operator, child *Section) *Section {
	if child != nil {
		child.Operator = op
	}
	s.children = append(s.children, child)
	return s
}

func (s *Section) And(child *Section) *Section {
	return s.AddSection(And, child)
}

func (s *Section) Or(child *Section) *Section {
	return s.AddSection(Or, child)
}

func (s *Section) Children() []*Section {
	return s.children
}

func (s *Section) IsGroup() bool {
	return s.group
}

// CreateFilterClauseString renders the section. Unless isFirstInClause is set
// the text is prefixed with the section's operator.
func (s *Section) CreateFilterClauseString(isFirstInClause bool) string {
	body := s.body()
	if isFirstInClause {
		return body
	}
	return s.Operator.String() + " " + body
}

func (s *Section) body() string {
	if len(s.children) == 0 {
		if s.Condition == nil {
			return ""
		}
		return s.Condition.Sql()
	}

	parts := make([]string, 0, len(s.children)+1)
	if !s.group && s.Condition != nil {
		parts = append(parts, s.Condition.Sql())
	}
	for _, child := range s.children {
		if child == nil {
			continue
		}
		// nothing precedes the first element of a group, so it carries no operator
		parts = append(parts, child.CreateFilterClauseString(len(parts) == 0))
	}

	return "(" + strings.Join(parts, " ") + ")"
}

func (s *Section) IsValid() bool {
	return len(s.Issues()) == 0
}

// Issues walks the whole subtree and collects every problem found.
func (s *Section) Issues() []string {
	var issues []string

	switch {
	case s.group:
		if len(s.children) == 0 {
			issues = append(issues, "group section has no children")
		}
	case s.Condition == nil:
		issues = append(issues, "section has no filter condition")
	default:
		issues = append(issues, s.Condition.Issues()...)
	}

	if !s.Operator.IsDefined() {
		issues = append(issues, "section has undefined operator "+s.Operator.String())
	}

	for _, child := range s.children {
		if child == nil {
			issues = append(issues, "section has a nil child")
			continue
		}
		issues = append(issues, child.Issues()...)
	}

	return issues
}

// Clone deep-copies the condition and every child.
func (s *Section) Clone() *Section {
	if s == nil {
		return nil
	}
	c := &Section{
		Condition: s.Condition.Clone(),
		Operator:  s.Operator,
		group:     s.group,
	}
	if len(s.children) > 0 {
		c.children = make([]*Section, 0, len(s.children))
		for _, child := range s.children {
			c.children = append(c.children, child.Clone())
		}
	}
	return c
}

// String renders the tree without SQL translation. Used for debugging and logs.
func (s *Section) String() string {
	var b strings.Builder
	if s.group {
		b.WriteString("group")
	} else if s.Condition != nil {
		b.WriteString(s.Condition.String())
	}
	for _, child := range s.children {
		if child == nil {
			continue
		}
		b.WriteString(" ")
		b.WriteString(child.Operator.String())
		b.WriteString(" ")
		b.WriteString(child.String())
	}
	if len(s.children) > 0 {
		return "[" + b.String() + "]"
	}
	return b.String()
}
