// Package filter parses the filter expression language into clause sections.
//
// Grammar
//
// --- PARSER RULES ---
//
// expression  : factor ( ( "and" | "or" ) factor )* ;
//
// factor      : comparison
//             | "(" expression ")" ;
//
// // Regex gets its own distinct rule based on the operator used
// comparison  : IDENTIFIER ( "=" | "!=" | "<" | "<=" | ">" | ">=" ) value
//             | IDENTIFIER ( "~" | "!~" ) REGEX_LITERAL
//             | IDENTIFIER ( "in" | "not" "in" ) "(" value ( "," value )* ")" ;
//
// value       : STRING | QUANTITY | BOOLEAN ;
//
// --- LEXER RULES ---
//
// Keywords are case-insensitive. "not" is only valid in front of "in" and
// the pair is scanned as one token. Literals are converted to clause values
// by the lexer.
//
// IDENTIFIER    : [a-zA-Z_][a-zA-Z0-9_.]* ;   // no ".." and no trailing "."
//
// // AWK-style regex: /pattern/, compiled before it is accepted
// REGEX_LITERAL : '/' ( '\\/' | . )*? '/' ;
//
// // non-empty, a doubled quote stands for the quote itself
// STRING        : "'" ( "''" | . )+? "'" | "\"" ( "\"\"" | . )+? "\"" ;
// BOOLEAN       : "true" | "false" ;
//
// // Numeric value with optional unit suffix, normalized to MB
// QUANTITY      : [0-9]+(\.[0-9]+)? ( 'KB' | 'MB' | 'GB' | 'TB' )? ;  // unit case-insensitive
//
// A sequence of factors becomes one section whose children carry the
// operators, so "a = 1 or b = 2 and c = 3" renders as
// (a = 1 OR b = 2 AND c = 3) and SQL applies AND before OR. Parentheses
// become nested sections. When the first factor is itself parenthesized the
// sequence is wrapped in a group section:
//
//	(a = 1 or b = 2) and c = 3  ->  ((a = 1 OR b = 2) AND c = 3)
//
// Identifiers are resolved through a Schema before they reach SQL.
package filter
