// Package errors provides custom error types for filter-clauses.
//
// Each error type includes a constructor, Error() method, and a type-checking
// helper using errors.As for proper error unwrapping.
//
// # Error Types Overview
//
//	┌───────────────────────────────────────┬────────┬──────────────────────────────────────┐
//	│ Error Type                            │ HTTP   │ Description                          │
//	├───────────────────────────────────────┼────────┼──────────────────────────────────────┤
//	│ NoSuchFilterConditionSectionTypeError │ 400    │ Section type unknown to the builder  │
//	│ NoSuchWhereClauseBuilderError         │ 400    │ Undefined builder kind               │
//	│ NoSuchWhereClauseError                │ 400    │ No organizer produced the clause     │
//	│ InvalidCommandError                   │ 422    │ Clause rendered with invalid parts   │
//	│ InvalidFilterError                    │ 400    │ Filter expression cannot be parsed   │
//	│ ResourceNotFoundError                 │ 404    │ Requested resource doesn't exist     │
//	│ ResourceConflictError                 │ 409    │ Name already taken                   │
//	└───────────────────────────────────────┴────────┴──────────────────────────────────────┘
//
// # Configuration errors
//
// NoSuchFilterConditionSectionTypeError, NoSuchWhereClauseBuilderError and
// NoSuchWhereClauseError are returned at the point of misuse. They carry an
// ErrorContext naming the operation and the offending parameter:
//
//	err := errors.NewNoSuchWhereClauseBuilderError(
//	    errors.ErrorContext{Operation: "NewWhereClauseBuilder", Parameter: "kind"}, "99")
//	err.Error() // "NewWhereClauseBuilder(kind): no such where clause builder: 99"
//
// # Validity errors
//
// InvalidCommandError is not returned while a clause is assembled. It is
// produced by WhereClauseCommand.Render once every section has been added,
// and lists each issue found in the tree.
//
// # Type Checking Pattern
//
// All error types provide Is* helper functions that use errors.As
// for proper error chain unwrapping:
//
//	wrapped := fmt.Errorf("preview failed: %w", errors.NewInvalidCommandError("no sections"))
//	errors.IsInvalidCommandError(wrapped) // returns true
//
// # Handler Error Mapping
//
// Handlers map errors to HTTP status codes:
//
//	switch {
//	case errors.IsResourceNotFoundError(err):
//	    c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
//	case errors.IsInvalidCommandError(err):
//	    c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
//	default:
//	    c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
//	}
package errors
