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

// MagazineRepo implements the MagazineRepository interface using SQLite.
type MagazineRepo struct{ db db.Connector }

// NewMagazineRepo creates a new SQLite-backed magazine repository.
func NewMagazineRepo(c db.Connector) repository.MagazineRepository {
	return &MagazineRepo{db: c}
}

func magazineOp(name string) db.Operation {
	return db.Operation{System: db.DialectSQLite, Repository: "MagazineRepo", Name: name}
}

func (repo *MagazineRepo) Create(ctx context.Context, name, category string) (*entity.Magazine, error) {
	if err := entity.ValidateMagazineName(name); err != nil {
		return nil, fmt.Errorf("Create: %w", err)
	}
	if err := entity.ValidateMagazineCategory(category); err != nil {
		return nil, fmt.Errorf("Create: %w", err)
	}

	const query = `INSERT INTO magazines (name, category) VALUES (?, ?)`
	var id int64
	err := db.Run(ctx, repo.db, magazineOp("Create"), func(ctx context.Context, conn *sql.Conn) error {
		res, err := conn.ExecContext(ctx, query, name, category)
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
	return entity.NewMagazine(id, name, category)
}

func (repo *MagazineRepo) Get(ctx context.Context, id int64) (*entity.Magazine, error) {
	const query = `
SELECT id, name, category
FROM magazines
WHERE id = ?
LIMIT 1`

	var (
		rec   repository.MagazineRecord
		found bool
	)
	err := db.Run(ctx, repo.db, magazineOp("Get"), func(ctx context.Context, conn *sql.Conn) error {
		err := conn.QueryRowContext(ctx, query, id).Scan(&rec.ID, &rec.Name, &rec.Category)
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
	const query = `
SELECT id, title, COALESCE(content, ''), author_id, magazine_id
FROM articles
WHERE magazine_id = ?
ORDER BY id ASC`

	var records []repository.ArticleRecord
	err := db.Run(ctx, repo.db, magazineOp("Articles"), func(ctx context.Context, conn *sql.Conn) error {
		rows, err := conn.QueryContext(ctx, query, magazineID)
		if err != nil {
			return fmt.Errorf("QueryContext: %w", err)
		}
		defer func() { _ = rows.Close() }()

		records, err = scanArticleRecords(rows)
		if err != nil {
			return fmt.Errorf("Scan: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return records, nil
}

// Contributors returns the author of each article in the magazine. An author with
// several articles appears once per article.
func (repo *MagazineRepo) Contributors(ctx context.Context, magazineID int64) ([]repository.AuthorRecord, error) {
	const query = `
SELECT au.id, au.name
FROM authors au
INNER JOIN articles a ON a.author_id = au.id
WHERE a.magazine_id = ?
ORDER BY a.id ASC`

	var records []repository.AuthorRecord
	err := db.Run(ctx, repo.db, magazineOp("Contributors"), func(ctx context.Context, conn *sql.Conn) error {
		rows, err := conn.QueryContext(ctx, query, magazineID)
		if err != nil {
			return fmt.Errorf("QueryContext: %w", err)
		}
		defer func() { _ = rows.Close() }()

		records, err = scanAuthorRecords(rows)
		if err != nil {
			return fmt.Errorf("Scan: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return records, nil
}

// ArticleTitles returns the titles in id order, or nil when the magazine has no articles.
func (repo *MagazineRepo) ArticleTitles(ctx context.Context, magazineID int64) ([]string, error) {
	const query = `
SELECT title
FROM articles
WHERE magazine_id = ?
ORDER BY id ASC`

	var titles []string
	err := db.Run(ctx, repo.db, magazineOp("ArticleTitles"), func(ctx context.Context, conn *sql.Conn) error {
		rows, err := conn.QueryContext(ctx, query, magazineID)
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

// ContributingAuthors lists the authors with more than
// repository.ContributingAuthorThreshold articles in the magazine.
func (repo *MagazineRepo) ContributingAuthors(ctx context.Context, magazineID int64) ([]repository.AuthorRecord, error) {
	const query = `
SELECT au.id, au.name
FROM authors au
INNER JOIN articles a ON a.author_id = au.id
WHERE a.magazine_id = ?
GROUP BY au.id, au.name
HAVING COUNT(*) > ?
ORDER BY au.id ASC`

	var records []repository.AuthorRecord
	err := db.Run(ctx, repo.db, magazineOp("ContributingAuthors"), func(ctx context.Context, conn *sql.Conn) error {
		rows, err := conn.QueryContext(ctx, query, magazineID, repository.ContributingAuthorThreshold)
		if err != nil {
			return fmt.Errorf("QueryContext: %w", err)
		}
		defer func() { _ = rows.Close() }()

		records, err = scanAuthorRecords(rows)
		if err != nil {
			return fmt.Errorf("Scan: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return records, nil
}
