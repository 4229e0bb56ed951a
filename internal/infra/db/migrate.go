package db

import (
	"context"
	"database/sql"
	"fmt"
)

var sqliteSchema = []string{
	`
CREATE TABLE IF NOT EXISTS authors (
    id   INTEGER PRIMARY KEY,
    name TEXT NOT NULL
)`,
	`
CREATE TABLE IF NOT EXISTS magazines (
    id       INTEGER PRIMARY KEY,
    name     TEXT NOT NULL,
    category TEXT NOT NULL
)`,
	`
CREATE TABLE IF NOT EXISTS articles (
    id          INTEGER PRIMARY KEY,
    title       TEXT NOT NULL,
    content     TEXT,
    author_id   INTEGER REFERENCES authors(id),
    magazine_id INTEGER REFERENCES magazines(id)
)`,
}

var postgresSchema = []string{
	`
CREATE TABLE IF NOT EXISTS authors (
    id   SERIAL PRIMARY KEY,
    name TEXT NOT NULL
)`,
	`
CREATE TABLE IF NOT EXISTS magazines (
    id       SERIAL PRIMARY KEY,
    name     TEXT NOT NULL,
    category TEXT NOT NULL
)`,
	`
CREATE TABLE IF NOT EXISTS articles (
    id          SERIAL PRIMARY KEY,
    title       TEXT NOT NULL,
    content     TEXT,
    author_id   INTEGER REFERENCES authors(id),
    magazine_id INTEGER REFERENCES magazines(id)
)`,
}

// 関連クエリ用インデックス(両方言で同じ構文)
var indexes = []string{
	`CREATE INDEX IF NOT EXISTS idx_articles_author_id ON articles(author_id)`,
	`CREATE INDEX IF NOT EXISTS idx_articles_magazine_id ON articles(magazine_id)`,
}

// MigrateUp creates the authors, magazines and articles tables if they are absent.
// It is idempotent.
func MigrateUp(ctx context.Context, db *sql.DB, dialect Dialect) error {
	schema := sqliteSchema
	if dialect == DialectPostgres {
		schema = postgresSchema
	}

	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("MigrateUp: create table: %w", err)
		}
	}
	for _, idx := range indexes {
		if _, err := db.ExecContext(ctx, idx); err != nil {
			return fmt.Errorf("MigrateUp: create index: %w", err)
		}
	}
	return nil
}
