// Package clause assembles SQL WHERE and GROUP BY fragments from an in-memory filter model.
//
// Structure
//
//	FilterCondition       Category IN ('a','b')
//	Section               condition + children, each child joined by AND/OR
//	WhereClauseSection    sections joined by one operator, tagged default | lastSelected
//	WhereClauseBuilder    data (single section) | globalFilters (lastSelected first)
//	WhereClauseCommand    "WHERE ..." text and validation
//	GroupByClauseCommand  "GROUP BY a, b"
//
// Rendering
//
//	leaf section                      Status IN ('open')
//	section with children             (Status IN ('open') AND Owner IN ('me') OR Prio IN ('high'))
//	group section                     ((a) OR b)   first child has no leading operator
//	non-first section                 OR <section>
//
// Within a parenthesized group, AND binds tighter than OR, as in SQL.
//
// When more than one where clause section renders, a section holding several
// conditions is wrapped in parentheses so its operator stays inside it. This
// differs from joining the section texts as they are:
//
//	OR section {a, b}, AND section {c, d}    (a OR b) AND (c AND d)
//
// A single rendered section is emitted bare. A command that renders nothing
// yields "" from CreateCommand and (1=1) from ToSql.
//
// Nothing here escapes identifiers or binds parameters: column names are
// emitted as given and string literals only have their single quotes doubled.
// Callers are expected to resolve column names against a known schema.
//
// Errors
//
// Unknown builder kinds and section types fail immediately with the typed
// errors in pkg/errors. Missing or malformed conditions do not: invalid sections
// are skipped while rendering and reported by WhereClauseCommand.Render,
// IsValid and InvalidCommandMessage.
//
// Builders and commands hold no locks; build one per query.
package clause
