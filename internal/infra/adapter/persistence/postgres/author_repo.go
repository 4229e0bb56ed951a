package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"magazine-catalog/internal/domain/entity"
	"magazine-catalog/internal/infra/db"
	"magazine-catalog/internal/repository"
)

type AuthorRepo struct{ db db.Connector }

func NewAuthorRepo(c db.Connector) repository.AuthorRepository {
	return &AuthorRepo{db: c}
}

func authorOp(name string) db.Operation {
	return db.Operation{System: db.DialectPostgres, Repository: "AuthorRepo", Name: name}
}

func (repo *AuthorRepo) Create(ctx context.Context, name string) (*entity.Author, error) {
	if err := entity.ValidateAuthorName(name); err != nil {
		return nil, fmt.Errorf("Create: %w", err)
	}
	q, err := insertAuthorQuery(name)
	if err != nil {
		return nil, fmt.Errorf("Create: ToSQL: %w", err)
	}

	var id int64
	err = db.Run(ctx, repo.db, authorOp("Create"), func(ctx context.Context, conn *sql.Conn) error {
		var err error
		id, err = insertReturningID(ctx, conn, q)
		return err
	})
	if err != nil {
		return nil, err
	}
	return entity.NewAuthor(id, name)
}

func (repo *AuthorRepo) Get(ctx context.Context, id int64) (*entity.Author, error) {
	q, err := selectAuthorQuery(id)
	if err != nil {
		return nil, fmt.Errorf("Get: ToSQL: %w", err)
	}

	var (
		rec   repository.AuthorRecord
		found bool
	)
	err = db.Run(ctx, repo.db, authorOp("Get"), func(ctx context.Context, conn *sql.Conn) error {
		err := conn.QueryRowContext(ctx, q.sql, q.args...).Scan(&rec.ID, &rec.Name)
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
	return entity.NewAuthor(rec.ID, rec.Name)
}

func (repo *AuthorRepo) Articles(ctx context.Context, authorID int64) ([]repository.ArticleRecord, error) {
	q, err := selectArticlesQuery(colAuthorID, authorID)
	if err != nil {
		return nil, fmt.Errorf("Articles: ToSQL: %w", err)
	}

	var records []repository.ArticleRecord
	err = db.Run(ctx, repo.db, authorOp("Articles"), func(ctx context.Context, conn *sql.Conn) error {
		var err error
		records, err = queryRecords(ctx, conn, q, scanArticleRecords)
		return err
	})
	if err != nil {
		return nil, err
	}
	return records, nil
}

func (repo *AuthorRepo) Magazines(ctx context.Context, authorID int64) ([]repository.MagazineRecord, error) {
	q, err := selectAuthorMagazinesQuery(authorID)
	if err != nil {
		return nil, fmt.Errorf("Magazines: ToSQL: %w", err)
	}

	var records []repository.MagazineRecord
	err = db.Run(ctx, repo.db, authorOp("Magazines"), func(ctx context.Context, conn *sql.Conn) error {
		var err error
		records, err = queryRecords(ctx, conn, q, scanMagazineRecords)
		return err
	})
	if err != nil {
		return nil, err
	}
	return records, nil
}
