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

type ArticleRepo struct{ db db.Connector }

func NewArticleRepo(c db.Connector) repository.ArticleRepository {
	return &ArticleRepo{db: c}
}

func articleOp(name string) db.Operation {
	return db.Operation{System: db.DialectPostgres, Repository: "ArticleRepo", Name: name}
}

// Create inserts the article after validating it. Foreign key violations from the
// store are returned wrapped.
func (repo *ArticleRepo) Create(ctx context.Context, author *entity.Author, magazine *entity.Magazine, title, content string) (*entity.Article, error) {
	if _, err := entity.NewArticle(0, author, magazine, title, content); err != nil {
		return nil, fmt.Errorf("Create: %w", err)
	}
	q, err := insertArticleQuery(title, content, author.ID(), magazine.ID())
	if err != nil {
		return nil, fmt.Errorf("Create: ToSQL: %w", err)
	}

	var id int64
	err = db.Run(ctx, repo.db, articleOp("Create"), func(ctx context.Context, conn *sql.Conn) error {
		var err error
		id, err = insertReturningID(ctx, conn, q)
		return err
	})
	if err != nil {
		return nil, err
	}
	return entity.NewArticle(id, author, magazine, title, content)
}

func (repo *ArticleRepo) Get(ctx context.Context, id int64) (*entity.Article, error) {
	q, err := selectArticleWithRelationsQuery(id)
	if err != nil {
		return nil, fmt.Errorf("Get: ToSQL: %w", err)
	}

	var (
		art     repository.ArticleRecord
		content sql.NullString
		au      repository.AuthorRecord
		mag     repository.MagazineRecord
		found   bool
	)
	err = db.Run(ctx, repo.db, articleOp("Get"), func(ctx context.Context, conn *sql.Conn) error {
		err := conn.QueryRowContext(ctx, q.sql, q.args...).Scan(
			&art.ID, &art.Title, &content,
			&au.ID, &au.Name,
			&mag.ID, &mag.Name, &mag.Category,
		)
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

	author, err := entity.NewAuthor(au.ID, au.Name)
	if err != nil {
		return nil, fmt.Errorf("Get: author: %w", err)
	}
	magazine, err := entity.NewMagazine(mag.ID, mag.Name, mag.Category)
	if err != nil {
		return nil, fmt.Errorf("Get: magazine: %w", err)
	}
	return entity.NewArticle(art.ID, author, magazine, art.Title, content.String)
}
