// Package entity defines the core domain entities and validation logic for the catalog.
// It contains Author, Magazine and Article, the field rules they enforce,
// and the domain-specific errors returned when a rule is broken.
package entity

import "fmt"

// Article is a piece of writing attributed to one author in one magazine.
// The article references its author and magazine but does not own them.
// The title is write-once: it is validated at construction and cannot be reassigned.
type Article struct {
	id       int64
	author   *Author
	magazine *Magazine
	title    string
	content  string
}

// NewArticle validates and builds an Article.
// It returns a *ValidationError if the title is not 5 to 50 characters long
// or if the author or magazine is missing.
func NewArticle(id int64, author *Author, magazine *Magazine, title, content string) (*Article, error) {
	if err := validateID("article", id); err != nil {
		return nil, err
	}
	if author == nil {
		return nil, &ValidationError{Entity: "article", Field: "author", Message: "is required"}
	}
	if magazine == nil {
		return nil, &ValidationError{Entity: "article", Field: "magazine", Message: "is required"}
	}
	if err := ValidateArticleTitle(title); err != nil {
		return nil, err
	}
	return &Article{
		id:       id,
		author:   author,
		magazine: magazine,
		title:    title,
		content:  content,
	}, nil
}

func (a *Article) ID() int64 { return a.id }

func (a *Article) Author() *Author { return a.author }

func (a *Article) Magazine() *Magazine { return a.magazine }

func (a *Article) Title() string { return a.title }

func (a *Article) Content() string { return a.content }

// SetTitle always fails: the title of a constructed article cannot change.
func (a *Article) SetTitle(string) error {
	return &FieldError{Entity: "article", Field: "title", Err: ErrImmutableField}
}

func (a *Article) SetContent(content string) {
	a.content = content
}

func (a *Article) String() string {
	return fmt.Sprintf("<Article %s>", a.title)
}
