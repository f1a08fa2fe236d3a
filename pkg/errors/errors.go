package errors

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorContext names the operation and the parameter that triggered a configuration error.
type ErrorContext struct {
	Operation string
	Parameter string
}

func (c ErrorContext) String() string {
	switch {
	case c.Operation == "" && c.Parameter == "":
		return ""
	case c.Parameter == "":
		return c.Operation
	default:
		return fmt.Sprintf("%s(%s)", c.Operation, c.Parameter)
	}
}

func withContext(ctx ErrorContext, msg string) string {
	if h := ctx.String(); h != "" {
		return fmt.Sprintf("%s: %s", h, msg)
	}
	return msg
}

// NoSuchFilterConditionSectionTypeError indicates a section type the builder does not own.
type NoSuchFilterConditionSectionTypeError struct {
	Context     ErrorContext
	SectionType string
}

func NewNoSuchFilterConditionSectionTypeError(ctx ErrorContext, sectionType string) *NoSuchFilterConditionSectionTypeError {
	return &NoSuchFilterConditionSectionTypeError{Context: ctx, SectionType: sectionType}
}

func (e *NoSuchFilterConditionSectionTypeError) Error() string {
	return withContext(e.Context, fmt.Sprintf("no such filter condition section type: %s", e.SectionType))
}

func IsNoSuchFilterConditionSectionTypeError(err error) bool {
	var e *NoSuchFilterConditionSectionTypeError
	return errors.As(err, &e)
}

// NoSuchWhereClauseBuilderError indicates an undefined builder kind.
type NoSuchWhereClauseBuilderError struct {
	Context ErrorContext
	Kind    string
}

func NewNoSuchWhereClauseBuilderError(ctx ErrorContext, kind string) *NoSuchWhereClauseBuilderError {
	return &NoSuchWhereClauseBuilderError{Context: ctx, Kind: kind}
}

func (e *NoSuchWhereClauseBuilderError) Error() string {
	return withContext(e.Context, fmt.Sprintf("no such where clause builder: %s", e.Kind))
}

func IsNoSuchWhereClauseBuilderError(err error) bool {
	var e *NoSuchWhereClauseBuilderError
	return errors.As(err, &e)
}

// NoSuchWhereClauseError indicates that no organizer could produce the requested clause.
type NoSuchWhereClauseError struct {
	Context ErrorContext
	Clause  string
}

func NewNoSuchWhereClauseError(ctx ErrorContext, clause string) *NoSuchWhereClauseError {
	return &NoSuchWhereClauseError{Context: ctx, Clause: clause}
}

func (e *NoSuchWhereClauseError) Error() string {
	return withContext(e.Context, fmt.Sprintf("no such where clause: %s", e.Clause))
}

func IsNoSuchWhereClauseError(err error) bool {
	var e *NoSuchWhereClauseError
	return errors.As(err, &e)
}

// InvalidCommandError carries the validation issues found while rendering a clause command.
type InvalidCommandError struct {
	Issues []string
}

func NewInvalidCommandError(issues ...string) *InvalidCommandError {
	return &InvalidCommandError{Issues: issues}
}

func (e *InvalidCommandError) Error() string {
	if len(e.Issues) == 0 {
		return "invalid command"
	}
	return fmt.Sprintf("invalid command: %s", strings.Join(e.Issues, "; "))
}

func IsInvalidCommandError(err error) bool {
	var e *InvalidCommandError
	return errors.As(err, &e)
}

// InvalidFilterError indicates a filter expression that cannot be turned into a clause.
type InvalidFilterError struct {
	Expression string
	Reason     string
}

func NewInvalidFilterError(expression, reason string) *InvalidFilterError {
	return &InvalidFilterError{Expression: expression, Reason: reason}
}

func (e *InvalidFilterError) Error() string {
	return fmt.Sprintf("invalid filter %q: %s", e.Expression, e.Reason)
}

func IsInvalidFilterError(err error) bool {
	var e *InvalidFilterError
	return errors.As(err, &e)
}

// InvalidWorkbookError indicates an uploaded workbook that cannot be read as records.
type InvalidWorkbookError struct {
	Reason string
	Err    error
}

func NewInvalidWorkbookError(reason string, err error) *InvalidWorkbookError {
	return &InvalidWorkbookError{Reason: reason, Err: err}
}

func (e *InvalidWorkbookError) Error() string {
	return fmt.Sprintf("invalid workbook: %s: %v", e.Reason, e.Err)
}

func (e *InvalidWorkbookError) Unwrap() error {
	return e.Err
}

func IsInvalidWorkbookError(err error) bool {
	var e *InvalidWorkbookError
	return errors.As(err, &e)
}

// ResourceNotFoundError indicates a resource was not found.
type ResourceNotFoundError struct {
	Kind string
	ID   string
}

func NewResourceNotFoundError(kind, id string) *ResourceNotFoundError {
	return &ResourceNotFoundError{Kind: kind, ID: id}
}

func NewSavedFilterNotFoundError(id string) *ResourceNotFoundError {
	return NewResourceNotFoundError("saved filter", id)
}

func (e *ResourceNotFoundError) Error() string {
	if e.ID == "" {
		return fmt.Sprintf("%s not found", e.Kind)
	}
	return fmt.Sprintf("%s %s not found", e.Kind, e.ID)
}

func IsResourceNotFoundError(err error) bool {
	var e *ResourceNotFoundError
	return errors.As(err, &e)
}

// ResourceConflictError indicates a resource that clashes with an existing one.
type ResourceConflictError struct {
	Kind string
	Name string
}

func NewSavedFilterExistsError(name string) *ResourceConflictError {
	return &ResourceConflictError{Kind: "saved filter", Name: name}
}

func (e *ResourceConflictError) Error() string {
	return fmt.Sprintf("%s %q already exists", e.Kind, e.Name)
}

func IsResourceConflictError(err error) bool {
	var e *ResourceConflictError
	return errors.As(err, &e)
}
