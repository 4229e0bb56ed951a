package repository

import (
	"context"

	"magazine-catalog/internal/domain/entity"
)

// MagazineRecord is an (id, name, category) row for a magazine.
type MagazineRecord struct {
	ID       int64
	Name     string
	Category string
}

// ContributingAuthorThreshold is the article count an author must exceed in a magazine
// to be listed by ContributingAuthors.
const ContributingAuthorThreshold = 2

type MagazineRepository interface {
	Create(ctx context.Context, name, category string) (*entity.Magazine, error)
	// Get returns (nil, nil) if the magazine is not found. Like AuthorRepository.Get,
	// a stored row that breaks the entity rules yields a *entity.ValidationError.
	Get(ctx context.Context, id int64) (*entity.Magazine, error)
	// Articles lists the magazine's articles. Empty, never nil, when there are none.
	Articles(ctx context.Context, magazineID int64) ([]ArticleRecord, error)
	// Contributors lists the author of every article in the magazine, one row per article.
	Contributors(ctx context.Context, magazineID int64) ([]AuthorRecord, error)
	// ArticleTitles returns nil, not an empty slice, when the magazine has no articles.
	ArticleTitles(ctx context.Context, magazineID int64) ([]string, error)
	// ContributingAuthors lists authors with more than ContributingAuthorThreshold
	// articles in the magazine.
	ContributingAuthors(ctx context.Context, magazineID int64) ([]AuthorRecord, error)
}
