package db

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"magazine-catalog/internal/observability/metrics"
	"magazine-catalog/internal/observability/tracing"
)

// Operation names one gateway call for spans and metrics.
type Operation struct {
	System     Dialect
	Repository string
	Name       string
}

func (op Operation) spanName() string {
	return op.Repository + "." + op.Name
}

// Run executes fn on a scoped connection inside a span and records the
// operation's duration and outcome. Errors are prefixed with op.Name.
func Run(ctx context.Context, c Connector, op Operation, fn func(ctx context.Context, conn *sql.Conn) error) (err error) {
	ctx, span := tracing.StartDBSpan(ctx, string(op.System), op.spanName())
	start := time.Now()
	defer func() {
		metrics.RecordDBOperation(op.Repository, op.Name, time.Since(start), err)
		tracing.EndDBSpan(span, err)
	}()

	err = WithConn(ctx, c, func(conn *sql.Conn) error {
		return fn(ctx, conn)
	})
	if err != nil {
		return fmt.Errorf("%s: %w", op.Name, err)
	}
	return nil
}
