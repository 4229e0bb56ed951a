package main

import (
	"context"
	"fmt"
	"io"
	"strings"

	"magazine-catalog/internal/domain/entity"
	"magazine-catalog/internal/observability/logging"
	articleUC "magazine-catalog/internal/usecase/article"
	authorUC "magazine-catalog/internal/usecase/author"
	magazineUC "magazine-catalog/internal/usecase/magazine"
)

type seedArticle struct {
	author   int // index into seedAuthors
	magazine int // index into seedMagazines
	title    string
	content  string
}

var (
	seedAuthors   = []string{"Jane Doe", "John Roe"}
	seedMagazines = []magazineUC.CreateInput{
		{Name: "Gopher Weekly", Category: "Technology"},
		{Name: "Data Monthly", Category: "Science"},
	}
	seedArticles = []seedArticle{
		{author: 0, magazine: 0, title: "Go Concurrency Patterns", content: "Channels, select and worker pools."},
		{author: 0, magazine: 0, title: "Error Wrapping in Practice", content: "fmt.Errorf with %w and errors.Is."},
		{author: 0, magazine: 0, title: "Profiling with pprof", content: "CPU and heap profiles."},
		{author: 1, magazine: 0, title: "Table Driven Tests", content: "One loop, many cases."},
		{author: 0, magazine: 1, title: "Columnar Storage Basics", content: "Why analytics stores pivot rows."},
	}
)

// seed inserts the demo data set through the use case services and prints a
// summary of the relationship queries over it.
func seed(ctx context.Context, repos repositories, out io.Writer) error {
	authors := authorUC.Service{Repo: repos.authors}
	magazines := magazineUC.Service{Repo: repos.magazines}
	articles := articleUC.Service{Repo: repos.articles}

	createdAuthors := make([]*entity.Author, 0, len(seedAuthors))
	for _, name := range seedAuthors {
		a, err := authors.Create(ctx, name)
		if err != nil {
			return fmt.Errorf("seed: %w", err)
		}
		createdAuthors = append(createdAuthors, a)
	}

	createdMagazines := make([]*entity.Magazine, 0, len(seedMagazines))
	for _, in := range seedMagazines {
		m, err := magazines.Create(ctx, in)
		if err != nil {
			return fmt.Errorf("seed: %w", err)
		}
		createdMagazines = append(createdMagazines, m)
	}

	for _, sa := range seedArticles {
		_, err := articles.Create(ctx, articleUC.CreateInput{
			Author:   createdAuthors[sa.author],
			Magazine: createdMagazines[sa.magazine],
			Title:    sa.title,
			Content:  sa.content,
		})
		if err != nil {
			return fmt.Errorf("seed: %w", err)
		}
	}

	logging.WithFields(logging.FromContext(ctx), map[string]interface{}{
		"authors":   len(createdAuthors),
		"magazines": len(createdMagazines),
		"articles":  len(seedArticles),
	}).Info("demo data loaded")

	for _, m := range createdMagazines {
		titles, err := magazines.ArticleTitles(ctx, m.ID())
		if err != nil {
			return fmt.Errorf("seed: %w", err)
		}
		contributing, err := magazines.ContributingAuthors(ctx, m.ID())
		if err != nil {
			return fmt.Errorf("seed: %w", err)
		}
		names := make([]string, 0, len(contributing))
		for _, rec := range contributing {
			names = append(names, rec.Name)
		}
		_, _ = fmt.Fprintf(out, "%s: %d articles, contributing authors: [%s]\n",
			m, len(titles), strings.Join(names, ", "))
	}
	return nil
}
