package entity

import "fmt"

// Magazine is a publication that articles are attributed to.
// Name and category stay mutable; every assignment is re-validated.
type Magazine struct {
	id       int64
	name     string
	category string
}

// NewMagazine validates and builds a Magazine.
func NewMagazine(id int64, name, category string) (*Magazine, error) {
	if err := validateID("magazine", id); err != nil {
		return nil, err
	}
	if err := ValidateMagazineName(name); err != nil {
		return nil, err
	}
	if err := ValidateMagazineCategory(category); err != nil {
		return nil, err
	}
	return &Magazine{id: id, name: name, category: category}, nil
}

func (m *Magazine) ID() int64 { return m.id }

func (m *Magazine) Name() string { return m.name }

func (m *Magazine) Category() string { return m.category }

// SetID assigns a new identifier. Negative ids are ignored.
func (m *Magazine) SetID(id int64) bool {
	if validateID("magazine", id) != nil {
		return false
	}
	m.id = id
	return true
}

// SetName assigns the name if it is 2 to 16 characters long.
// An invalid name is ignored and the previous one is kept.
func (m *Magazine) SetName(name string) bool {
	if ValidateMagazineName(name) != nil {
		return false
	}
	m.name = name
	return true
}

// SetCategory assigns a non-empty category. An empty category is ignored.
func (m *Magazine) SetCategory(category string) bool {
	if ValidateMagazineCategory(category) != nil {
		return false
	}
	m.category = category
	return true
}

func (m *Magazine) String() string {
	return fmt.Sprintf("<Magazine %s>", m.name)
}
