// Package circuitbreaker provides circuit breaker implementations for database operations.
// This file implements a database-specific wrapper that protects connection acquisition from cascading failures.
package circuitbreaker

import (
	"context"
	"database/sql"
	"time"

	"github.com/sony/gobreaker"
)

// DBCircuitBreaker wraps a connection pool with circuit breaker protection.
// Only connection acquisition and pings pass through the breaker, so an unreachable
// store trips it while constraint violations raised by individual statements do not.
// It satisfies db.Connector and can be handed to the persistence gateways in place of *sql.DB.
type DBCircuitBreaker struct {
	cb *CircuitBreaker
	db *sql.DB

	// conn acquires a connection; it defaults to db.Conn.
	conn func(ctx context.Context) (*sql.Conn, error)
}

// DBConfig returns configuration optimized for database circuit breakers.
// Opens after 5 consecutive failures, 30 second timeout.
func DBConfig() Config {
	return Config{
		Name:             "database",
		MaxRequests:      3, // Allow 3 test requests in half-open state
		Interval:         time.Minute,
		Timeout:          30 * time.Second,
		FailureThreshold: 1.0, // Open on 100% failure (5+ consecutive failures)
		MinRequests:      5,   // Require 5 failures before tripping
	}
}

// NewDBCircuitBreaker creates a new database circuit breaker.
// It wraps the provided connection pool with circuit breaker protection.
func NewDBCircuitBreaker(db *sql.DB) *DBCircuitBreaker {
	return NewDBCircuitBreakerWithConfig(db, DBConfig())
}

// NewDBCircuitBreakerWithConfig creates a new database circuit breaker with custom configuration.
func NewDBCircuitBreakerWithConfig(db *sql.DB, cfg Config) *DBCircuitBreaker {
	return &DBCircuitBreaker{
		cb:   New(cfg),
		db:   db,
		conn: db.Conn,
	}
}

// Conn acquires a dedicated connection with circuit breaker protection.
// If the circuit is open, it returns ErrOpenState immediately without touching the pool.
// The caller must Close the returned connection.
func (dcb *DBCircuitBreaker) Conn(ctx context.Context) (*sql.Conn, error) {
	result, err := dcb.cb.Execute(func() (interface{}, error) {
		return dcb.conn(ctx)
	})

	if err != nil {
		return nil, err
	}

	return result.(*sql.Conn), nil
}

// PingContext verifies connectivity with circuit breaker protection.
func (dcb *DBCircuitBreaker) PingContext(ctx context.Context) error {
	_, err := dcb.cb.Execute(func() (interface{}, error) {
		return nil, dcb.db.PingContext(ctx)
	})
	return err
}

// State returns the current state of the circuit breaker.
func (dcb *DBCircuitBreaker) State() gobreaker.State {
	return dcb.cb.State()
}

// IsOpen returns true if the circuit breaker is in the open state.
func (dcb *DBCircuitBreaker) IsOpen() bool {
	return dcb.cb.IsOpen()
}
