package magazine

import (
	"context"
	"fmt"
	"log/slog"

	"magazine-catalog/internal/domain/entity"
	"magazine-catalog/internal/observability/logging"
	"magazine-catalog/internal/observability/metrics"
	"magazine-catalog/internal/repository"
)

// CreateInput represents the input parameters for creating a new magazine.
type CreateInput struct {
	Name     string
	Category string
}

// Service provides magazine use cases.
type Service struct {
	Repo repository.MagazineRepository
}

// Create validates the input and stores a new magazine.
// Returns a *entity.ValidationError if the name or category is invalid.
func (s *Service) Create(ctx context.Context, in CreateInput) (*entity.Magazine, error) {
	logger := logging.FromContext(ctx)

	if err := entity.ValidateMagazineName(in.Name); err != nil {
		metrics.RecordValidationError(err)
		return nil, err
	}
	if err := entity.ValidateMagazineCategory(in.Category); err != nil {
		metrics.RecordValidationError(err)
		return nil, err
	}

	magazine, err := s.Repo.Create(ctx, in.Name, in.Category)
	if err != nil {
		logger.Error("failed to create magazine",
			slog.String("name", in.Name),
			slog.String("category", in.Category),
			slog.Any("error", err))
		return nil, fmt.Errorf("create magazine: %w", err)
	}

	metrics.RecordEntityCreated("magazine")
	logging.WithEntity(logger, "magazine", magazine.ID()).Info("magazine created",
		slog.String("name", magazine.Name()),
		slog.String("category", magazine.Category()))
	return magazine, nil
}

// Get returns the magazine with the given id, or (nil, nil) if there is none.
func (s *Service) Get(ctx context.Context, id int64) (*entity.Magazine, error) {
	if id <= 0 {
		return nil, ErrInvalidMagazineID
	}
	magazine, err := s.Repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get magazine: %w", err)
	}
	return magazine, nil
}

func (s *Service) Articles(ctx context.Context, id int64) ([]repository.ArticleRecord, error) {
	if id <= 0 {
		return nil, ErrInvalidMagazineID
	}
	articles, err := s.Repo.Articles(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("list magazine articles: %w", err)
	}
	return articles, nil
}

func (s *Service) Contributors(ctx context.Context, id int64) ([]repository.AuthorRecord, error) {
	if id <= 0 {
		return nil, ErrInvalidMagazineID
	}
	authors, err := s.Repo.Contributors(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("list magazine contributors: %w", err)
	}
	return authors, nil
}

// ArticleTitles returns nil when the magazine has no articles.
func (s *Service) ArticleTitles(ctx context.Context, id int64) ([]string, error) {
	if id <= 0 {
		return nil, ErrInvalidMagazineID
	}
	titles, err := s.Repo.ArticleTitles(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("list magazine article titles: %w", err)
	}
	return titles, nil
}

// ContributingAuthors lists the authors with more than
// repository.ContributingAuthorThreshold articles in the magazine.
func (s *Service) ContributingAuthors(ctx context.Context, id int64) ([]repository.AuthorRecord, error) {
	if id <= 0 {
		return nil, ErrInvalidMagazineID
	}
	authors, err := s.Repo.ContributingAuthors(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("list contributing authors: %w", err)
	}
	return authors, nil
}
