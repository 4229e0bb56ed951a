package author

import (
	"context"
	"fmt"
	"log/slog"

	"magazine-catalog/internal/domain/entity"
	"magazine-catalog/internal/observability/logging"
	"magazine-catalog/internal/observability/metrics"
	"magazine-catalog/internal/repository"
)

// Service provides author use cases.
// It validates input before delegating persistence to the repository.
type Service struct {
	Repo repository.AuthorRepository
}

// Create validates the name and stores a new author.
// Returns a *entity.ValidationError if the name is not 2 to 16 characters long.
func (s *Service) Create(ctx context.Context, name string) (*entity.Author, error) {
	logger := logging.FromContext(ctx)

	if err := entity.ValidateAuthorName(name); err != nil {
		metrics.RecordValidationError(err)
		return nil, err
	}

	author, err := s.Repo.Create(ctx, name)
	if err != nil {
		logger.Error("failed to create author",
			slog.String("name", name),
			slog.Any("error", err))
		return nil, fmt.Errorf("create author: %w", err)
	}

	metrics.RecordEntityCreated("author")
	logging.WithEntity(logger, "author", author.ID()).Info("author created",
		slog.String("name", author.Name()))
	return author, nil
}

// Get returns the author with the given id, or (nil, nil) if there is none.
func (s *Service) Get(ctx context.Context, id int64) (*entity.Author, error) {
	if id <= 0 {
		return nil, ErrInvalidAuthorID
	}
	author, err := s.Repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get author: %w", err)
	}
	return author, nil
}

// Articles lists the articles written by the author.
func (s *Service) Articles(ctx context.Context, id int64) ([]repository.ArticleRecord, error) {
	if id <= 0 {
		return nil, ErrInvalidAuthorID
	}
	articles, err := s.Repo.Articles(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("list author articles: %w", err)
	}
	return articles, nil
}

// Magazines lists the distinct magazines the author has written for.
func (s *Service) Magazines(ctx context.Context, id int64) ([]repository.MagazineRecord, error) {
	if id <= 0 {
		return nil, ErrInvalidAuthorID
	}
	magazines, err := s.Repo.Magazines(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("list author magazines: %w", err)
	}
	return magazines, nil
}

