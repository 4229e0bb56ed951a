// Package sqlite provides SQLite implementations of the catalog repositories.
// Every operation runs exactly one statement on a connection scoped to the call.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"magazine-catalog/internal/domain/entity"
	"magazine-catalog/internal/infra/db"
	"magazine-catalog/internal/repository"
)

// AuthorRepo implements the AuthorRepository interface using SQLite.
type AuthorRepo struct{ db db.Connector }

// NewAuthorRepo creates a new SQLite-backed author repository.
// c is usually a *sql.DB or a circuit-breaker wrapper around one.
func NewAuthorRepo(c db.Connector) repository.AuthorRepository {
	return &AuthorRepo{db: c}
}

func authorOp(name string) db.Operation {
	return db.Operation{System: db.DialectSQLite, Repository: "AuthorRepo", Name: name}
}

// Create validates the name, inserts the author and returns it with its generated id.
func (repo *AuthorRepo) Create(ctx context.Context, name string) (*entity.Author, error) {
	if err := entity.ValidateAuthorName(name); err != nil {
		return nil, fmt.Errorf("Create: %w", err)
	}

	const query = `INSERT INTO authors (name) VALUES (?)`
	var id int64
	err := db.Run(ctx, repo.db, authorOp("Create"), func(ctx context.Context, conn *sql.Conn) error {
		res, err := conn.ExecContext(ctx, query, name)
		if err != nil {
			return fmt.Errorf("ExecContext: %w", err)
		}
		id, err = res.LastInsertId()
		if err != nil {
			return fmt.Errorf("LastInsertId: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return entity.NewAuthor(id, name)
}

// Get returns the author with the given id, or (nil, nil) if there is none.
func (repo *AuthorRepo) Get(ctx context.Context, id int64) (*entity.Author, error) {
	const query = `
SELECT id, name
FROM authors
WHERE id = ?
LIMIT 1`

	var (
		authorID int64
		name     string
		found    bool
	)
	err := db.Run(ctx, repo.db, authorOp("Get"), func(ctx context.Context, conn *sql.Conn) error {
		err := conn.QueryRowContext(ctx, query, id).Scan(&authorID, &name)
		if errors.Is(err, sql.ErrNoRows) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("QueryRowContext: %w", err)
		}
		found = true
		return nil
	})
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}
	return entity.NewAuthor(authorID, name)
}

// Articles lists the articles written by the author, ordered by id.
func (repo *AuthorRepo) Articles(ctx context.Context, authorID int64) ([]repository.ArticleRecord, error) {
	const query = `
SELECT id, title, COALESCE(content, ''), author_id, magazine_id
FROM articles
WHERE author_id = ?
ORDER BY id ASC`

	var records []repository.ArticleRecord
	err := db.Run(ctx, repo.db, authorOp("Articles"), func(ctx context.Context, conn *sql.Conn) error {
		rows, err := conn.QueryContext(ctx, query, authorID)
		if err != nil {
			return fmt.Errorf("QueryContext: %w", err)
		}
		defer func() { _ = rows.Close() }()

		records, err = scanArticleRecords(rows)
		if err != nil {
			return fmt.Errorf("Scan: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return records, nil
}

// Magazines lists the distinct magazines the author has written for, in creation order.
func (repo *AuthorRepo) Magazines(ctx context.Context, authorID int64) ([]repository.MagazineRecord, error) {
	const query = `
SELECT DISTINCT m.id, m.name, m.category
FROM magazines m
INNER JOIN articles a ON a.magazine_id = m.id
WHERE a.author_id = ?
ORDER BY m.id ASC`

	var records []repository.MagazineRecord
	err := db.Run(ctx, repo.db, authorOp("Magazines"), func(ctx context.Context, conn *sql.Conn) error {
		rows, err := conn.QueryContext(ctx, query, authorID)
		if err != nil {
			return fmt.Errorf("QueryContext: %w", err)
		}
		defer func() { _ = rows.Close() }()

		records, err = scanMagazineRecords(rows)
		if err != nil {
			return fmt.Errorf("Scan: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return records, nil
}
