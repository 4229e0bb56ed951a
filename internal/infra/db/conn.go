package db

import (
	"context"
	"database/sql"
	"fmt"
)

// Connector hands out dedicated connections. *sql.DB satisfies it, as does the
// circuit breaker wrapper in internal/resilience/circuitbreaker.
type Connector interface {
	Conn(ctx context.Context) (*sql.Conn, error)
}

// WithConn acquires one connection, runs fn on it and releases the connection on
// every exit path, including when fn fails or panics. A release error is reported
// only when fn itself succeeded.
func WithConn(ctx context.Context, c Connector, fn func(conn *sql.Conn) error) (err error) {
	conn, err := c.Conn(ctx)
	if err != nil {
		return fmt.Errorf("acquire connection: %w", err)
	}
	defer func() {
		if closeErr := conn.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("release connection: %w", closeErr)
		}
	}()
	return fn(conn)
}
