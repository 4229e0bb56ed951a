package article

import (
	"context"
	"fmt"
	"log/slog"

	"magazine-catalog/internal/domain/entity"
	"magazine-catalog/internal/observability/logging"
	"magazine-catalog/internal/observability/metrics"
	"magazine-catalog/internal/repository"
)

// CreateInput represents the input parameters for creating a new article.
type CreateInput struct {
	Author   *entity.Author
	Magazine *entity.Magazine
	Title    string
	Content  string
}

// CreateByIDsInput identifies the author and magazine by id instead of by entity.
type CreateByIDsInput struct {
	AuthorID   int64
	MagazineID int64
	Title      string
	Content    string
}

// Service provides article use cases.
// Authors and Magazines are only needed by CreateByIDs.
type Service struct {
	Repo      repository.ArticleRepository
	Authors   repository.AuthorRepository
	Magazines repository.MagazineRepository
}

// Create validates the article and stores it.
// Returns a *entity.ValidationError if the title is not 5 to 50 characters long
// or if the author or magazine is missing.
func (s *Service) Create(ctx context.Context, in CreateInput) (*entity.Article, error) {
	logger := logging.FromContext(ctx)

	if _, err := entity.NewArticle(0, in.Author, in.Magazine, in.Title, in.Content); err != nil {
		metrics.RecordValidationError(err)
		return nil, err
	}

	article, err := s.Repo.Create(ctx, in.Author, in.Magazine, in.Title, in.Content)
	if err != nil {
		logger.Error("failed to create article",
			slog.String("title", in.Title),
			slog.Int64("author_id", in.Author.ID()),
			slog.Int64("magazine_id", in.Magazine.ID()),
			slog.Any("error", err))
		return nil, fmt.Errorf("create article: %w", err)
	}

	metrics.RecordEntityCreated("article")
	logging.WithEntity(logger, "article", article.ID()).Info("article created",
		slog.String("title", article.Title()),
		slog.Int64("author_id", in.Author.ID()),
		slog.Int64("magazine_id", in.Magazine.ID()))
	return article, nil
}

// CreateByIDs loads the author and magazine, then creates the article.
// Returns ErrAuthorNotFound or ErrMagazineNotFound if either row is missing.
func (s *Service) CreateByIDs(ctx context.Context, in CreateByIDsInput) (*entity.Article, error) {
	author, err := s.Authors.Get(ctx, in.AuthorID)
	if err != nil {
		return nil, fmt.Errorf("get author: %w", err)
	}
	if author == nil {
		return nil, ErrAuthorNotFound
	}

	magazine, err := s.Magazines.Get(ctx, in.MagazineID)
	if err != nil {
		return nil, fmt.Errorf("get magazine: %w", err)
	}
	if magazine == nil {
		return nil, ErrMagazineNotFound
	}

	return s.Create(ctx, CreateInput{
		Author:   author,
		Magazine: magazine,
		Title:    in.Title,
		Content:  in.Content,
	})
}

// Get returns the article with its author and magazine, or (nil, nil) if there is none.
func (s *Service) Get(ctx context.Context, id int64) (*entity.Article, error) {
	if id <= 0 {
		return nil, ErrInvalidArticleID
	}
	article, err := s.Repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get article: %w", err)
	}
	return article, nil
}
