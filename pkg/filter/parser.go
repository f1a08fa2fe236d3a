package filter

import (
	"fmt"
	"slices"

	"github.com/kubev2v/filter-clauses/pkg/clause"
)

// ParseError is the type of error returned by parse.
type ParseError struct {
	// Source column position where the error occurred.
	Position int
	// Error message.
	Message string
}

// Error returns a formatted version of the error, including the position.
func (e ParseError) Error() string {
	return fmt.Sprintf("parse error at %d: %s", e.Position, e.Message)
}

type parser struct {
	lexer  *lexer
	schema Schema
	pos    int          // position of last token (tok)
	tok    Token        // last lexed token
	val    string       // text of last token (or "")
	lit    clause.Value // value of the last literal token
}

// Parse uses panic/recover internally so recursive-descent methods can
// signal errors without threading (*clause.Section, error) through every call.
// ParseError panics are caught here and returned as normal errors;
// any other panic (bug) is re-raised.
func Parse(src []byte, schema Schema) (section *clause.Section, err error) {
	defer func() {
		if r := recover(); r != nil {
			if pe, ok := r.(ParseError); ok {
				section = nil
				err = pe
			} else {
				panic(r)
			}
		}
	}()

	p := parser{lexer: newLexer(src), schema: schema}
	p.next()

	section = p.expression()
	p.expect(eol)

	return section, err
}

// expression parses a flat sequence of factors joined by logical operators.
// Precedence is left to SQL: the sequence renders as one parenthesized list.
//
// factor ( ( "and" | "or" ) factor )*
func (p *parser) expression() *clause.Section {
	first := p.factor()

	type joined struct {
		op      clause.Operator
		section *clause.Section
	}
	var rest []joined
	for p.matches(and, or) {
		op, _ := p.tok.Operator()
		p.next()
		rest = append(rest, joined{op: op, section: p.factor()})
	}

	if len(rest) == 0 {
		return first
	}

	// a leaf can head the list; anything wider has to stay parenthesized
	root := first
	if len(first.Children()) > 0 || first.IsGroup() {
		root = clause.NewGroupSection(first)
	}
	for _, j := range rest {
		root.AddSection(j.op, j.section)
	}
	return root
}

// factor parses a single comparison or grouped expression.
//
// comparison | "(" expression ")"
func (p *parser) factor() *clause.Section {
	if p.matches(lbracket) {
		p.next()
		section := p.expression()
		p.expect(rbracket)
		p.next()
		return section
	}

	return clause.NewSection(p.comparison())
}

// comparison parses a single condition.
//
// IDENTIFIER ( "=" | "!=" | "<" | "<=" | ">" | ">=" ) value
// IDENTIFIER ( "~" | "!~" ) REGEX_LITERAL
// IDENTIFIER ( "in" | "not in" ) "(" value ( "," value )* ")"
func (p *parser) comparison() *clause.FilterCondition {
	p.expect(identifier)
	column, ok := p.schema.Column(p.val)
	if !ok {
		panic(p.errorf("unknown identifier %q", p.val))
	}
	p.next()

	switch p.tok {
	case notIn:
		p.next()
		return clause.NewFilterCondition(column, clause.NotIn, p.list()...)
	case in:
		p.next()
		return clause.NewFilterCondition(column, clause.In, p.list()...)
	case like, notLike:
		cmp, _ := p.tok.Comparison()
		p.next()
		p.expect(regexLit)
		value := p.lit
		p.next()
		return clause.NewFilterCondition(column, cmp, value)
	case equal, notEqual, greater, gte, less, lte:
		cmp, _ := p.tok.Comparison()
		p.next()
		return clause.NewFilterCondition(column, cmp, p.value())
	default:
		panic(p.errorf("expected operator instead of %s", p.tok))
	}
}

// list parses a bracketed, comma separated list of values.
func (p *parser) list() []clause.Value {
	p.expect(lbracket)
	p.next()

	values := []clause.Value{p.value()}
	for p.matches(comma) {
		p.next()
		values = append(values, p.value())
	}

	p.expect(rbracket)
	p.next()
	return values
}

// value returns the literal the lexer already converted (string, quantity or boolean).
func (p *parser) value() clause.Value {
	switch p.tok {
	case stringLit, quantity, boolean:
		v := p.lit
		p.next()
		return v
	case regexLit:
		panic(p.errorf("regex is only allowed after ~ or !~"))
	default:
		panic(p.errorf("expected value instead of %s", p.tok))
	}
}

// next parses the next token into p.tok.
func (p *parser) next() {
	it := p.lexer.Scan()
	p.pos, p.tok, p.val, p.lit = it.pos, it.tok, it.text, it.value
	if p.tok == illegal {
		panic(p.errorf("%s", p.val))
	}
}

// matches returns true if current token matches one of the given tokens.
func (p *parser) matches(tokens ...Token) bool {
	return slices.Contains(tokens, p.tok)
}

// expect panics if current token is not the expected token.
func (p *parser) expect(tok Token) {
	if p.tok != tok {
		panic(p.errorf("expected %s instead of %s", tok, p.tok))
	}
}

// errorf formats an error with the current position.
func (p *parser) errorf(format string, args ...any) error {
	message := fmt.Sprintf(format, args...)
	return ParseError{p.pos, message}
}
