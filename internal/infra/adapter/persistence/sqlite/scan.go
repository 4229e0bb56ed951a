package sqlite

import (
	"database/sql"

	"magazine-catalog/internal/repository"
)

func scanArticleRecords(rows *sql.Rows) ([]repository.ArticleRecord, error) {
	records := make([]repository.ArticleRecord, 0, 16)
	for rows.Next() {
		var rec repository.ArticleRecord
		if err := rows.Scan(&rec.ID, &rec.Title, &rec.Content, &rec.AuthorID, &rec.MagazineID); err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

func scanAuthorRecords(rows *sql.Rows) ([]repository.AuthorRecord, error) {
	records := make([]repository.AuthorRecord, 0, 16)
	for rows.Next() {
		var rec repository.AuthorRecord
		if err := rows.Scan(&rec.ID, &rec.Name); err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

func scanMagazineRecords(rows *sql.Rows) ([]repository.MagazineRecord, error) {
	records := make([]repository.MagazineRecord, 0, 16)
	for rows.Next() {
		var rec repository.MagazineRecord
		if err := rows.Scan(&rec.ID, &rec.Name, &rec.Category); err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}
