package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"magazine-catalog/internal/repository"
)

// content is nullable in the schema; a NULL reads back as "".
func scanArticleRecords(rows *sql.Rows) ([]repository.ArticleRecord, error) {
	records := make([]repository.ArticleRecord, 0, 16)
	for rows.Next() {
		var (
			rec     repository.ArticleRecord
			content sql.NullString
		)
		if err := rows.Scan(&rec.ID, &rec.Title, &content, &rec.AuthorID, &rec.MagazineID); err != nil {
			return nil, err
		}
		rec.Content = content.String
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

// queryRecords runs q on conn and scans every row with scan.
func queryRecords[T any](ctx context.Context, conn *sql.Conn, q query, scan func(*sql.Rows) ([]T, error)) ([]T, error) {
	rows, err := conn.QueryContext(ctx, q.sql, q.args...)
	if err != nil {
		return nil, fmt.Errorf("QueryContext: %w", err)
	}
	defer func() { _ = rows.Close() }()

	records, err := scan(rows)
	if err != nil {
		return nil, fmt.Errorf("Scan: %w", err)
	}
	return records, nil
}

// insertReturningID runs an INSERT ... RETURNING id statement.
func insertReturningID(ctx context.Context, conn *sql.Conn, q query) (int64, error) {
	var id int64
	if err := conn.QueryRowContext(ctx, q.sql, q.args...).Scan(&id); err != nil {
		return 0, fmt.Errorf("QueryRowContext: %w", err)
	}
	return id, nil
}
