// Package db opens the relational store, bootstraps its schema and hands out
// scoped connections to the persistence gateways.
package db

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"strings"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"
)

// ConnectionConfig holds database connection pool configuration.
type ConnectionConfig struct {
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
}

// DefaultConnectionConfig returns the default connection pool configuration.
func DefaultConnectionConfig() ConnectionConfig {
	return ConnectionConfig{
		MaxOpenConns:    25,               // Maximum number of open connections
		MaxIdleConns:    10,               // Maximum number of idle connections
		ConnMaxLifetime: 1 * time.Hour,    // Maximum lifetime of a connection
		ConnMaxIdleTime: 30 * time.Minute, // Maximum idle time of a connection
	}
}

// Options selects the store and how the pool is sized.
type Options struct {
	Dialect Dialect
	DSN     string
	Pool    ConnectionConfig
}

// pingTimeout bounds the connectivity check performed by Open.
const pingTimeout = 5 * time.Second

// Open creates and configures a new connection pool and verifies it with a ping.
// SQLite pools are reduced to one connection that is never recycled (see poolConfig).
func Open(ctx context.Context, opts Options) (*sql.DB, error) {
	if opts.DSN == "" {
		return nil, fmt.Errorf("open %s: empty DSN", opts.Dialect)
	}

	dsn := opts.DSN
	if opts.Dialect == DialectSQLite {
		dsn = SQLiteDSN(dsn)
	}

	db, err := sql.Open(opts.Dialect.DriverName(), dsn)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", opts.Dialect, err)
	}

	cfg := poolConfig(opts.Dialect, opts.Pool)
	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	db.SetConnMaxIdleTime(cfg.ConnMaxIdleTime)

	slog.Info("database connection pool configured",
		slog.String("driver", string(opts.Dialect)),
		slog.Int("max_open_conns", cfg.MaxOpenConns),
		slog.Int("max_idle_conns", cfg.MaxIdleConns),
		slog.Duration("conn_max_lifetime", cfg.ConnMaxLifetime),
		slog.Duration("conn_max_idle_time", cfg.ConnMaxIdleTime))

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		if closeErr := db.Close(); closeErr != nil {
			slog.Error("error closing db", slog.Any("error", closeErr))
		}
		return nil, fmt.Errorf("ping %s: %w", opts.Dialect, err)
	}

	slog.Info("database connection established successfully")
	return db, nil
}

// poolConfig adjusts the requested pool to the dialect. SQLite has a single writer and
// an in-memory database lives only as long as its connection, so the pool holds one
// connection with no lifetime or idle limit: recycling it would drop a ":memory:" store.
func poolConfig(dialect Dialect, cfg ConnectionConfig) ConnectionConfig {
	if dialect != DialectSQLite {
		return cfg
	}
	cfg.MaxOpenConns = 1
	cfg.MaxIdleConns = 1
	cfg.ConnMaxLifetime = 0
	cfg.ConnMaxIdleTime = 0
	return cfg
}

// SQLiteDSN turns a file path (or ":memory:") into a DSN with foreign key
// enforcement enabled on every connection. A DSN that already sets the
// foreign_keys pragma is returned unchanged.
func SQLiteDSN(path string) string {
	if strings.Contains(path, "foreign_keys") {
		return path
	}
	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}
	return path + sep + "_pragma=foreign_keys(1)"
}
