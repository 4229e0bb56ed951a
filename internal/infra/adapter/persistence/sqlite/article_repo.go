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

// ArticleRepo implements the ArticleRepository interface using SQLite.
type ArticleRepo struct{ db db.Connector }

// NewArticleRepo creates a new SQLite-backed article repository.
func NewArticleRepo(c db.Connector) repository.ArticleRepository {
	return &ArticleRepo{db: c}
}

func articleOp(name string) db.Operation {
	return db.Operation{System: db.DialectSQLite, Repository: "ArticleRepo", Name: name}
}

// Create validates the article, inserts it with the author and magazine ids and
// returns it with its generated id. A dangling author or magazine id surfaces as
// the store's foreign key error.
func (repo *ArticleRepo) Create(ctx context.Context, author *entity.Author, magazine *entity.Magazine, title, content string) (*entity.Article, error) {
	if _, err := entity.NewArticle(0, author, magazine, title, content); err != nil {
		return nil, fmt.Errorf("Create: %w", err)
	}

	const query = `
INSERT INTO articles (title, content, author_id, magazine_id)
VALUES (?, ?, ?, ?)`
	var id int64
	err := db.Run(ctx, repo.db, articleOp("Create"), func(ctx context.Context, conn *sql.Conn) error {
		res, err := conn.ExecContext(ctx, query, title, content, author.ID(), magazine.ID())
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
	return entity.NewArticle(id, author, magazine, title, content)
}

// Get loads the article with its author and magazine in one joined query.
// Returns (nil, nil) if the article is not found.
func (repo *ArticleRepo) Get(ctx context.Context, id int64) (*entity.Article, error) {
	const query = `
SELECT a.id, a.title, COALESCE(a.content, ''),
       au.id, au.name,
       m.id, m.name, m.category
FROM articles a
INNER JOIN authors au ON au.id = a.author_id
INNER JOIN magazines m ON m.id = a.magazine_id
WHERE a.id = ?
LIMIT 1`

	var (
		art   repository.ArticleRecord
		au    repository.AuthorRecord
		mag   repository.MagazineRecord
		found bool
	)
	err := db.Run(ctx, repo.db, articleOp("Get"), func(ctx context.Context, conn *sql.Conn) error {
		err := conn.QueryRowContext(ctx, query, id).Scan(
			&art.ID, &art.Title, &art.Content,
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
	return hydrateArticle(art, au, mag)
}

func hydrateArticle(art repository.ArticleRecord, au repository.AuthorRecord, mag repository.MagazineRecord) (*entity.Article, error) {
	author, err := entity.NewAuthor(au.ID, au.Name)
	if err != nil {
		return nil, fmt.Errorf("Get: author: %w", err)
	}
	magazine, err := entity.NewMagazine(mag.ID, mag.Name, mag.Category)
	if err != nil {
		return nil, fmt.Errorf("Get: magazine: %w", err)
	}
	article, err := entity.NewArticle(art.ID, author, magazine, art.Title, art.Content)
	if err != nil {
		return nil, fmt.Errorf("Get: %w", err)
	}
	return article, nil
}
