package filter

import "github.com/kubev2v/filter-clauses/pkg/clause"

type Token int

const (
	illegal Token = iota
	eol
	and
	or
	notIn
	in
	equal
	gte
	greater
	lte
	less
	notEqual
	like
	notLike
	lbracket
	rbracket
	comma
	stringLit
	regexLit
	quantity
	identifier
	boolean
)

var tokenNames = map[Token]string{
	illegal:    "illegal",
	eol:        "eol",
	and:        "and",
	or:         "or",
	notIn:      "notIn",
	in:         "in",
	equal:      "equal",
	gte:        "gte",
	greater:    "greater",
	lte:        "lte",
	less:       "less",
	notEqual:   "notEqual",
	like:       "like",
	notLike:    "notLike",
	lbracket:   "lbracket",
	rbracket:   "rbracket",
	comma:      "comma",
	stringLit:  "stringLit",
	regexLit:   "regexLit",
	quantity:   "quantity",
	identifier: "identifier",
	boolean:    "boolean",
}

func (t Token) String() string {
	return tokenNames[t]
}

var tokenComparisons = map[Token]clause.Comparison{
	equal:    clause.Equal,
	notEqual: clause.NotEqual,
	greater:  clause.Greater,
	gte:      clause.GreaterOrEqual,
	less:     clause.Less,
	lte:      clause.LessOrEqual,
	like:     clause.Match,
	notLike:  clause.NotMatch,
}

// Comparison returns the clause comparison for a comparison token.
func (t Token) Comparison() (clause.Comparison, bool) {
	c, ok := tokenComparisons[t]
	return c, ok
}

var tokenOperators = map[Token]clause.Operator{
	and: clause.And,
	or:  clause.Or,
}

// Operator returns the clause operator for a logical token.
func (t Token) Operator() (clause.Operator, bool) {
	op, ok := tokenOperators[t]
	return op, ok
}
