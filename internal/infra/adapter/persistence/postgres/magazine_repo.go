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

type MagazineRepo struct{ db db.Connector }

func NewMagazineRepo(c db.Connector) repository.MagazineRepository {
	return &MagazineRepo{db: c}
}

func magazineOp(name string) db.Operation {
	return db.Operation{System: db.DialectPostgres, Repository: "MagazineRepo", Name: name}
}

func (repo *MagazineRepo) Create(ctx context.Context, name, category string) (*entity.Magazine, error) {
	if err := entity.ValidateMagazineName(name); err != nil {
		return nil, fmt.Errorf("Create: %w", err)
	}
	if err := entity.ValidateMagazineCategory(category); err != nil {
		return nil, fmt.Errorf("Create: %w", err)
	}
	q, err := insertMagazineQuery(name, category)
	if err != nil {
		return nil, fmt.Errorf("Create: ToSQL: %w", err)
	}

	var id int64
	err = db.Run(ctx, repo.db, magazineOp("Create"), func(ctx context.Context, conn *sql.Conn) error {
		var err error
		id, err = insertReturningID(ctx, conn, q)
		return err
	})
	if err != nil {
		return nil, err
	}
	return entity.NewMagazine(id, name, category)
}

func (repo *MagazineRepo) Get(ctx context.Context, id int64) (*entity.Magazine, error) {
	q, err := selectMagazineQuery(id)
	if err != nil {
		return nil, fmt.Errorf("Get: ToSQL: %w", err)
	}

	var (
		rec   repository.MagazineRecord
		found bool
	)
	err = db.Run(ctx, repo.db, magazineOp("Get"), func(ctx context.Context, conn *sql.Conn) error {
		err := conn.QueryRowContext(ctx, q.sql, q.args...).Scan(&rec.ID, &rec.Name, &rec.Category)
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
	return entity.NewMagazine(rec.ID, rec.Name, rec.Category)
}

func (repo *MagazineRepo) Articles(ctx context.Context, magazineID int64) ([]repository.ArticleRecord, error) {
	q, err := selectArticlesQuery(colMagazineID, magazineID)
	if err != nil {
		return nil, fmt.Errorf("Articles: ToSQL: %w", err)
	}

	var records []repository.ArticleRecord
	err = db.Run(ctx, repo.db, magazineOp("Articles"), func(ctx context.Context, conn *sql.Conn) error {
		var err error
		records, err = queryRecords(ctx, conn, q, scanArticleRecords)
		return err
	})
	if err != nil {
		return nil, err
	}
	return records, nil
}

// Contributors returns one author row per article in the magazine.
func (repo *MagazineRepo) Contributors(ctx context.Context, magazineID int64) ([]repository.AuthorRecord, error) {
	q, err := selectContributorsQuery(magazineID)
	if err != nil {
		return nil, fmt.Errorf("Contributors: ToSQL: %w", err)
	}

	var records []repository.AuthorRecord
	err = db.Run(ctx, repo.db, magazineOp("Contributors"), func(ctx context.Context, conn *sql.Conn) error {
		var err error
		records, err = queryRecords(ctx, conn, q, scanAuthorRecords)
		return err
	})
	if err != nil {
		return nil, err
	}
	return records, nil
}

// ArticleTitles returns nil when the magazine has no articles.
func (repo *MagazineRepo) ArticleTitles(ctx context.Context, magazineID int64) ([]string, error) {
	q, err := selectArticleTitlesQuery(magazineID)
	if err != nil {
		return nil, fmt.Errorf("ArticleTitles: ToSQL: %w", err)
	}

	var titles []string
	err = db.Run(ctx, repo.db, magazineOp("ArticleTitles"), func(ctx context.Context, conn *sql.Conn) error {
		rows, err := conn.QueryContext(ctx, q.sql, q.args...)
		if err != nil {
			return fmt.Errorf("QueryContext: %w", err)
		}
		defer func() { _ = rows.Close() }()

		for rows.Next() {
			var title string
			if err := rows.Scan(&title); err != nil {
				return fmt.Errorf("Scan: %w", err)
			}
			titles = append(titles, title)
		}
		if err := rows.Err(); err != nil {
			return fmt.Errorf("rows.Err: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return titles, nil
}

func (repo *MagazineRepo) ContributingAuthors(ctx context.Context, magazineID int64) ([]repository.AuthorRecord, error) {
	q, err := selectContributingAuthorsQuery(magazineID)
	if err != nil {
		return nil, fmt.Errorf("ContributingAuthors: ToSQL: %w", err)
	}

	var records []repository.AuthorRecord
	err = db.Run(ctx, repo.db, magazineOp("ContributingAuthors"), func(ctx context.Context, conn *sql.Conn) error {
		var err error
		records, err = queryRecords(ctx, conn, q, scanAuthorRecords)
		return err
	})
	if err != nil {
		return nil, err
	}
	return records, nil
}
