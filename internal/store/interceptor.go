package store

import (
	"context"
	"database/sql"
	"time"

	"go.uber.org/zap"
)

// QueryInterceptor is the subset of *sql.DB the stores run their statements through.
type QueryInterceptor interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// tracingInterceptor logs every statement with its arguments and duration at debug level.
type tracingInterceptor struct {
	db     *sql.DB
	logger *zap.SugaredLogger
}

func newTracingInterceptor(db *sql.DB) *tracingInterceptor {
	return &tracingInterceptor{
		db:     db,
		logger: zap.S().Named("store"),
	}
}

func (t *tracingInterceptor) trace(kind, query string, args []any) func() {
	start := time.Now()
	return func() {
		t.logger.Debugw(kind, "query", query, "args", args, "duration", time.Since(start))
	}
}

func (t *tracingInterceptor) QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row {
	defer t.trace("query_row", query, args)()
	return t.db.QueryRowContext(ctx, query, args...)
}

func (t *tracingInterceptor) QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	defer t.trace("query", query, args)()
	return t.db.QueryContext(ctx, query, args...)
}

func (t *tracingInterceptor) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	defer t.trace("exec", query, args)()
	return t.db.ExecContext(ctx, query, args...)
}
