package repository

import (
	"context"

	"magazine-catalog/internal/domain/entity"
)

// ArticleRecord is one row of the articles table as returned by relationship queries.
type ArticleRecord struct {
	ID         int64
	Title      string
	Content    string
	AuthorID   int64
	MagazineID int64
}

type ArticleRepository interface {
	// Create validates the article through entity.NewArticle, inserts it with both
	// foreign keys and returns it with the generated id.
	Create(ctx context.Context, author *entity.Author, magazine *entity.Magazine, title, content string) (*entity.Article, error)
	// Get loads an article together with its author and magazine in one query.
	// Returns (nil, nil) if the article is not found, and a *entity.ValidationError
	// if the stored article, author or magazine row breaks the entity rules.
	Get(ctx context.Context, id int64) (*entity.Article, error)
}
