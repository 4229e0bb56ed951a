package entity

import "fmt"

// Author is a writer who contributes articles to magazines.
// Both fields are fixed at construction.
type Author struct {
	id   int64
	name string
}

// NewAuthor validates and builds an Author. An id of 0 marks an author that has not been persisted.
func NewAuthor(id int64, name string) (*Author, error) {
	if err := validateID("author", id); err != nil {
		return nil, err
	}
	if err := ValidateAuthorName(name); err != nil {
		return nil, err
	}
	return &Author{id: id, name: name}, nil
}

func (a *Author) ID() int64 { return a.id }

func (a *Author) Name() string { return a.name }

// SetName never changes the name of a constructed author and always reports false.
func (a *Author) SetName(string) bool {
	return false
}

func (a *Author) String() string {
	return fmt.Sprintf("<Author %s>", a.name)
}
