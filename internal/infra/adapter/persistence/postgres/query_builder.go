// Package postgres provides PostgreSQL implementations of the catalog repositories.
// Statements are built with goqu in prepared mode, so every value travels as a
// $N placeholder argument.
package postgres

import (
	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres" // dialect registration

	"magazine-catalog/internal/repository"
)

const (
	dialectPostgres = "postgres"
	tableAuthors    = "authors"
	tableMagazines  = "magazines"
	tableArticles   = "articles"
	colID           = "id"
	colName         = "name"
	colCategory     = "category"
	colTitle        = "title"
	colContent      = "content"
	colAuthorID     = "author_id"
	colMagazineID   = "magazine_id"
)

var builder = goqu.Dialect(dialectPostgres)

// query is a rendered statement and its placeholder arguments.
type query struct {
	sql  string
	args []interface{}
}

func render(sql string, args []interface{}, err error) (query, error) {
	return query{sql: sql, args: args}, err
}

func insertAuthorQuery(name string) (query, error) {
	return render(builder.Insert(tableAuthors).
		Prepared(true).
		Rows(goqu.Record{colName: name}).
		Returning(colID).
		ToSQL())
}

func selectAuthorQuery(id int64) (query, error) {
	return render(builder.From(tableAuthors).
		Prepared(true).
		Select(colID, colName).
		Where(goqu.C(colID).Eq(id)).
		ToSQL())
}

func insertMagazineQuery(name, category string) (query, error) {
	return render(builder.Insert(tableMagazines).
		Prepared(true).
		Rows(goqu.Record{colName: name, colCategory: category}).
		Returning(colID).
		ToSQL())
}

func selectMagazineQuery(id int64) (query, error) {
	return render(builder.From(tableMagazines).
		Prepared(true).
		Select(colID, colName, colCategory).
		Where(goqu.C(colID).Eq(id)).
		ToSQL())
}

func insertArticleQuery(title, content string, authorID, magazineID int64) (query, error) {
	return render(builder.Insert(tableArticles).
		Prepared(true).
		Rows(goqu.Record{
			colTitle:      title,
			colContent:    content,
			colAuthorID:   authorID,
			colMagazineID: magazineID,
		}).
		Returning(colID).
		ToSQL())
}

// selectArticlesQuery lists articles filtered on one foreign key column, by id.
func selectArticlesQuery(fkCol string, fkID int64) (query, error) {
	return render(builder.From(tableArticles).
		Prepared(true).
		Select(colID, colTitle, colContent, colAuthorID, colMagazineID).
		Where(goqu.C(fkCol).Eq(fkID)).
		Order(goqu.C(colID).Asc()).
		ToSQL())
}

func selectArticleTitlesQuery(magazineID int64) (query, error) {
	return render(builder.From(tableArticles).
		Prepared(true).
		Select(colTitle).
		Where(goqu.C(colMagazineID).Eq(magazineID)).
		Order(goqu.C(colID).Asc()).
		ToSQL())
}

func selectAuthorMagazinesQuery(authorID int64) (query, error) {
	return render(builder.From(goqu.T(tableMagazines).As("m")).
		Prepared(true).
		Select(goqu.I("m.id"), goqu.I("m.name"), goqu.I("m.category")).
		Distinct().
		InnerJoin(goqu.T(tableArticles).As("a"), goqu.On(goqu.I("a.magazine_id").Eq(goqu.I("m.id")))).
		Where(goqu.I("a.author_id").Eq(authorID)).
		Order(goqu.I("m.id").Asc()).
		ToSQL())
}

func selectContributorsQuery(magazineID int64) (query, error) {
	return render(builder.From(goqu.T(tableAuthors).As("au")).
		Prepared(true).
		Select(goqu.I("au.id"), goqu.I("au.name")).
		InnerJoin(goqu.T(tableArticles).As("a"), goqu.On(goqu.I("a.author_id").Eq(goqu.I("au.id")))).
		Where(goqu.I("a.magazine_id").Eq(magazineID)).
		Order(goqu.I("a.id").Asc()).
		ToSQL())
}

func selectContributingAuthorsQuery(magazineID int64) (query, error) {
	return render(builder.From(goqu.T(tableAuthors).As("au")).
		Prepared(true).
		Select(goqu.I("au.id"), goqu.I("au.name")).
		InnerJoin(goqu.T(tableArticles).As("a"), goqu.On(goqu.I("a.author_id").Eq(goqu.I("au.id")))).
		Where(goqu.I("a.magazine_id").Eq(magazineID)).
		GroupBy(goqu.I("au.id"), goqu.I("au.name")).
		Having(goqu.COUNT(goqu.Star()).Gt(repository.ContributingAuthorThreshold)).
		Order(goqu.I("au.id").Asc()).
		ToSQL())
}

func selectArticleWithRelationsQuery(id int64) (query, error) {
	return render(builder.From(goqu.T(tableArticles).As("a")).
		Prepared(true).
		Select(
			goqu.I("a.id"), goqu.I("a.title"), goqu.I("a.content"),
			goqu.I("au.id"), goqu.I("au.name"),
			goqu.I("m.id"), goqu.I("m.name"), goqu.I("m.category"),
		).
		InnerJoin(goqu.T(tableAuthors).As("au"), goqu.On(goqu.I("au.id").Eq(goqu.I("a.author_id")))).
		InnerJoin(goqu.T(tableMagazines).As("m"), goqu.On(goqu.I("m.id").Eq(goqu.I("a.magazine_id")))).
		Where(goqu.I("a.id").Eq(id)).
		ToSQL())
}
