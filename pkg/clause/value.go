package clause

import (
	"fmt"
	"strconv"
	"strings"
)

// Value is a literal on the right-hand side of a filter condition.
type Value interface {
	String() string
	Sql() string
}

// StringValue is a literal string like 'foo'.
type StringValue string

func (v StringValue) String() string {
	return strconv.Quote(string(v))
}

func (v StringValue) Sql() string {
	return quote(string(v))
}

// NumberValue is a numeric literal.
type NumberValue float64

func (v NumberValue) String() string {
	return strconv.FormatFloat(float64(v), 'f', -1, 64)
}

func (v NumberValue) Sql() string {
	return strconv.FormatFloat(float64(v), 'f', -1, 64)
}

// BoolValue is a boolean literal (true or false).
type BoolValue bool

func (v BoolValue) String() string {
	return strconv.FormatBool(bool(v))
}

func (v BoolValue) Sql() string {
	if v {
		return "TRUE"
	}
	return "FALSE"
}

// RegexValue is a regex pattern used by Match and NotMatch.
type RegexValue string

func (v RegexValue) String() string {
	return fmt.Sprintf("/%s/", string(v))
}

func (v RegexValue) Sql() string {
	return quote(string(v))
}

// StringValues wraps plain strings into values.
func StringValues(values ...string) []Value {
	out := make([]Value, 0, len(values))
	for _, v := range values {
		out = append(out, StringValue(v))
	}
	return out
}

func quote(s string) string {
	return fmt.Sprintf("'%s'", strings.ReplaceAll(s, "'", "''"))
}
