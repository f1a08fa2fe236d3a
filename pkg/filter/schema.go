package filter

import (
	"fmt"
	"strings"
)

// Schema resolves filter identifiers to SQL column references.
//
// Lookups are case-insensitive. In strict mode an unmapped identifier is a
// parse error; otherwise it falls back to a quoted column whose underscores
// are replaced by spaces ("vm_id" becomes "vm id").
type Schema struct {
	columns map[string]string
	strict  bool
}

// NewSchema builds a schema from identifier to column mappings.
func NewSchema(columns map[string]string) Schema {
	s := Schema{columns: make(map[string]string, len(columns))}
	for name, column := range columns {
		s.columns[strings.ToLower(name)] = column
	}
	return s
}

// Strict returns a copy of the schema that rejects unmapped identifiers.
func (s Schema) Strict() Schema {
	s.strict = true
	return s
}

// Identifiers lists the mapped identifiers.
func (s Schema) Identifiers() []string {
	names := make([]string, 0, len(s.columns))
	for name := range s.columns {
		names = append(names, name)
	}
	return names
}

// Column returns the column for name and whether it was mapped.
func (s Schema) Column(name string) (string, bool) {
	if col, ok := s.columns[strings.ToLower(name)]; ok {
		return col, true
	}
	if s.strict {
		return "", false
	}
	return fmt.Sprintf(`"%s"`, strings.ReplaceAll(name, "_", " ")), true
}
