package clause

import (
	"fmt"
	"strings"

	srvErrors "github.com/kubev2v/filter-clauses/pkg/errors"
)

const noSectionsMessage = "where clause has no sections"

// WhereClauseCommand is the renderable result of a WhereClauseBuilder.
type WhereClauseCommand struct {
	sections []*WhereClauseSection
}

func NewWhereClauseCommand(sections ...*WhereClauseSection) *WhereClauseCommand {
	c := &WhereClauseCommand{sections: make([]*WhereClauseSection, 0, len(sections))}
	for _, s := range sections {
		c.AddSection(s)
	}
	return c
}

func (c *WhereClauseCommand) AddSection(section *WhereClauseSection) *WhereClauseCommand {
	c.sections = append(c.sections, section)
	return c
}

func (c *WhereClauseCommand) Sections() []*WhereClauseSection {
	return c.sections
}

// HasAny reports whether the command renders any text.
func (c *WhereClauseCommand) HasAny() bool {
	for _, s := range c.sections {
		if s != nil && s.HasAny() {
			return true
		}
	}
	return false
}

// GetCommandValue concatenates the rendered sections in insertion order.
// Only the first rendered section omits its leading operator.
func (c *WhereClauseCommand) GetCommandValue() string {
	rendered := make([]*WhereClauseSection, 0, len(c.sections))
	for _, s := range c.sections {
		if s != nil && s.HasAny() {
			rendered = append(rendered, s)
		}
	}

	wrap := len(rendered) > 1
	parts := make([]string, 0, len(rendered))
	for i, s := range rendered {
		parts = append(parts, s.render(i == 0, wrap))
	}
	return strings.Join(parts, " ")
}

// CreateCommand returns "WHERE <value>", or "" when nothing renders.
func (c *WhereClauseCommand) CreateCommand() string {
	value := c.GetCommandValue()
	if value == "" {
		return ""
	}
	return "WHERE " + value
}

func (c *WhereClauseCommand) IsValid() bool {
	return len(c.issues()) == 0
}

// InvalidCommandMessage explains why the command is invalid, or returns "" if it is valid.
func (c *WhereClauseCommand) InvalidCommandMessage() string {
	issues := c.issues()
	if len(issues) == 0 {
		return ""
	}
	if len(issues) == 1 && issues[0] == noSectionsMessage {
		return noSectionsMessage
	}
	return fmt.Sprintf("where clause has invalid sections:\n  - %s", strings.Join(issues, "\n  - "))
}

// Render returns the WHERE command together with its validation outcome, so
// that text and validity always come from the same pass.
func (c *WhereClauseCommand) Render() (string, error) {
	if issues := c.issues(); len(issues) > 0 {
		return "", srvErrors.NewInvalidCommandError(issues...)
	}
	return c.CreateCommand(), nil
}

// matchAll is what squirrel renders for an empty sq.And.
const matchAll = "(1=1)"

// ToSql implements squirrel's Sqlizer. The value is parenthesized so it can be
// combined with other predicates. A command whose sections render nothing
// matches every row.
func (c *WhereClauseCommand) ToSql() (string, []any, error) {
	if issues := c.issues(); len(issues) > 0 {
		return "", nil, srvErrors.NewInvalidCommandError(issues...)
	}
	if !c.HasAny() {
		return matchAll, nil, nil
	}
	return "(" + c.GetCommandValue() + ")", nil, nil
}

func (c *WhereClauseCommand) issues() []string {
	if len(c.sections) == 0 {
		return []string{noSectionsMessage}
	}
	var issues []string
	for i, s := range c.sections {
		if s == nil {
			issues = append(issues, fmt.Sprintf("where clause section #%d is nil", i))
			continue
		}
		issues = append(issues, s.Issues()...)
	}
	return issues
}
