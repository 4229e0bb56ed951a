// Package repository declares the persistence gateways for the catalog entities
// and the row records returned by relationship queries.
package repository

import (
	"context"

	"magazine-catalog/internal/domain/entity"
)

// AuthorRecord is an (id, name) pair for an author.
type AuthorRecord struct {
	ID   int64
	Name string
}

type AuthorRepository interface {
	Create(ctx context.Context, name string) (*entity.Author, error)
	// Get returns (nil, nil) if the author is not found. The row is rebuilt through
	// entity.NewAuthor, so a stored name outside the length bounds (written by another
	// client) yields a *entity.ValidationError rather than an invalid Author.
	Get(ctx context.Context, id int64) (*entity.Author, error)
	// Articles lists the articles written by the author, ordered by id.
	Articles(ctx context.Context, authorID int64) ([]ArticleRecord, error)
	// Magazines lists the distinct magazines the author has written for, in creation order.
	Magazines(ctx context.Context, authorID int64) ([]MagazineRecord, error)
}
