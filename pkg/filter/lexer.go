package filter

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/kubev2v/filter-clauses/pkg/clause"
)

// item is one lexical unit. Literals carry the clause value they stand for,
// so the parser never converts text itself.
type item struct {
	pos   int
	tok   Token
	text  string
	value clause.Value
}

// lexer splits an expression into items. "not in" comes out as a single
// notIn item, quantities are normalized to MB and regex literals are compiled
// before they are handed over.
type lexer struct {
	src string
	pos int
}

var keywords = map[string]Token{
	"and":   and,
	"or":    or,
	"in":    in,
	"true":  boolean,
	"false": boolean,
}

// longest match first
var symbols = []struct {
	text string
	tok  Token
}{
	{"!=", notEqual},
	{"!~", notLike},
	{"<=", lte},
	{">=", gte},
	{"=", equal},
	{"~", like},
	{"<", less},
	{">", greater},
	{"(", lbracket},
	{")", rbracket},
	{",", comma},
}

// sizes are stored in MB
var quantityUnits = map[string]float64{
	"kb": 1.0 / 1024,
	"mb": 1,
	"gb": 1024,
	"tb": 1024 * 1024,
}

func newLexer(src []byte) *lexer {
	return &lexer{src: string(src)}
}

func (l *lexer) Scan() item {
	l.skipSpace()
	start := l.pos
	if l.pos >= len(l.src) {
		return item{pos: start, tok: eol}
	}

	switch ch := l.src[l.pos]; {
	case isIdentifierStart(ch):
		return l.word()
	case isDigit(ch):
		return l.quantity()
	case ch == '\'' || ch == '"':
		return l.quoted(ch)
	case ch == '/':
		return l.regex()
	}

	rest := l.src[l.pos:]
	for _, s := range symbols {
		if strings.HasPrefix(rest, s.text) {
			l.pos += len(s.text)
			return item{pos: start, tok: s.tok, text: s.text}
		}
	}
	l.pos++
	return illegalItem(start, "unexpected char %q", rest[0])
}

func (l *lexer) word() item {
	start := l.pos
	text := l.takeWhile(isIdentifierChar)
	if strings.Contains(text, "..") || strings.HasSuffix(text, ".") {
		return illegalItem(start, "malformed identifier %q", text)
	}

	lower := strings.ToLower(text)
	if lower == "not" {
		return l.notIn(start)
	}

	tok, ok := keywords[lower]
	switch {
	case !ok:
		return item{pos: start, tok: identifier, text: text}
	case tok == boolean:
		return item{pos: start, tok: boolean, text: text, value: clause.BoolValue(lower == "true")}
	default:
		return item{pos: start, tok: tok, text: text}
	}
}

// notIn consumes the "in" that has to follow "not".
func (l *lexer) notIn(start int) item {
	l.skipSpace()
	if next := l.takeWhile(isIdentifierChar); !strings.EqualFold(next, "in") {
		return illegalItem(start, `"not" must be followed by "in"`)
	}
	return item{pos: start, tok: notIn, text: l.src[start:l.pos]}
}

func (l *lexer) quantity() item {
	start := l.pos
	number := l.takeWhile(isDigit)
	if l.peek() == '.' {
		l.pos++
		fraction := l.takeWhile(isDigit)
		if fraction == "" {
			return illegalItem(start, "malformed number %q", l.src[start:l.pos])
		}
		number += "." + fraction
	}

	n, err := strconv.ParseFloat(number, 64)
	if err != nil {
		return illegalItem(start, "malformed number %q", number)
	}

	if unit := l.takeWhile(isIdentifierChar); unit != "" {
		factor, ok := quantityUnits[strings.ToLower(unit)]
		if !ok {
			return illegalItem(start, "unknown quantity unit %q", unit)
		}
		n *= factor
	}

	return item{pos: start, tok: quantity, text: l.src[start:l.pos], value: clause.NumberValue(n)}
}

// quoted reads a string literal. A doubled quote stands for the quote itself.
func (l *lexer) quoted(quote byte) item {
	start := l.pos
	l.pos++

	var sb strings.Builder
	for {
		if l.pos >= len(l.src) {
			return illegalItem(start, "unclosed string")
		}
		ch := l.src[l.pos]
		l.pos++
		if ch != quote {
			sb.WriteByte(ch)
			continue
		}
		if l.peek() != quote {
			break
		}
		sb.WriteByte(quote)
		l.pos++
	}

	if sb.Len() == 0 {
		return illegalItem(start, "empty string")
	}
	text := sb.String()
	return item{pos: start, tok: stringLit, text: text, value: clause.StringValue(text)}
}

// regex reads /pattern/, where \/ is a literal slash.
func (l *lexer) regex() item {
	start := l.pos
	l.pos++

	var sb strings.Builder
	for closed := false; !closed; {
		if l.pos >= len(l.src) {
			return illegalItem(start, "unclosed regex")
		}
		ch := l.src[l.pos]
		l.pos++
		switch {
		case ch == '/':
			closed = true
		case ch == '\\' && l.peek() == '/':
			sb.WriteByte('/')
			l.pos++
		default:
			sb.WriteByte(ch)
		}
	}

	pattern := sb.String()
	if _, err := regexp.Compile(pattern); err != nil {
		return illegalItem(start, "invalid regex: %s", err)
	}
	return item{pos: start, tok: regexLit, text: pattern, value: clause.RegexValue(pattern)}
}

func (l *lexer) skipSpace() {
	for l.pos < len(l.src) && strings.IndexByte(" \t\r\n", l.src[l.pos]) >= 0 {
		l.pos++
	}
}

func (l *lexer) takeWhile(accept func(byte) bool) string {
	start := l.pos
	for l.pos < len(l.src) && accept(l.src[l.pos]) {
		l.pos++
	}
	return l.src[start:l.pos]
}

func (l *lexer) peek() byte {
	if l.pos < len(l.src) {
		return l.src[l.pos]
	}
	return 0
}

func illegalItem(pos int, format string, args ...any) item {
	return item{pos: pos, tok: illegal, text: fmt.Sprintf(format, args...)}
}

func isIdentifierStart(ch byte) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z') || ch == '_'
}

func isIdentifierChar(ch byte) bool {
	return isIdentifierStart(ch) || isDigit(ch) || ch == '.'
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}
