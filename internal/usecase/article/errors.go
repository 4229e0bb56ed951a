// Package article provides use cases for writing and loading articles.
package article

import (
	"errors"
	"fmt"

	"magazine-catalog/internal/domain/entity"
)

// Sentinel errors for article use case operations.
var (
	// ErrInvalidArticleID indicates that the provided article ID is invalid.
	// Article IDs must be positive integers.
	ErrInvalidArticleID = errors.New("invalid article ID")

	// ErrAuthorNotFound indicates that CreateByIDs referenced an author that does not exist.
	// It matches entity.ErrNotFound.
	ErrAuthorNotFound = fmt.Errorf("author: %w", entity.ErrNotFound)

	// ErrMagazineNotFound indicates that CreateByIDs referenced a magazine that does not exist.
	// It matches entity.ErrNotFound.
	ErrMagazineNotFound = fmt.Errorf("magazine: %w", entity.ErrNotFound)
)
