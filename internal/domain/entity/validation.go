package entity

import (
	"fmt"

	"magazine-catalog/internal/utils/text"
)

// Length bounds for validated string fields, inclusive, counted in characters.
const (
	MinAuthorNameLength   = 2
	MaxAuthorNameLength   = 16
	MinMagazineNameLength = 2
	MaxMagazineNameLength = 16
	MinArticleTitleLength = 5
	MaxArticleTitleLength = 50
)

// validateLength returns a ValidationError when value falls outside [minLen, maxLen].
func validateLength(entity, field, value string, minLen, maxLen int) error {
	if !text.LengthBetween(value, minLen, maxLen) {
		return &ValidationError{
			Entity:  entity,
			Field:   field,
			Message: fmt.Sprintf("must be between %d and %d characters, got %d", minLen, maxLen, text.CountRunes(value)),
		}
	}
	return nil
}

// validateNotEmpty returns a ValidationError for an empty value.
func validateNotEmpty(entity, field, value string) error {
	if value == "" {
		return &ValidationError{Entity: entity, Field: field, Message: "must not be empty"}
	}
	return nil
}

// validateID rejects negative identifiers. Zero marks an entity that was never persisted.
func validateID(entity string, id int64) error {
	if id < 0 {
		return &ValidationError{Entity: entity, Field: "id", Message: "must not be negative"}
	}
	return nil
}

// ValidateAuthorName checks an author name against the length bounds.
func ValidateAuthorName(name string) error {
	return validateLength("author", "name", name, MinAuthorNameLength, MaxAuthorNameLength)
}

// ValidateMagazineName checks a magazine name against the length bounds.
func ValidateMagazineName(name string) error {
	return validateLength("magazine", "name", name, MinMagazineNameLength, MaxMagazineNameLength)
}

// ValidateMagazineCategory checks that a category is present.
func ValidateMagazineCategory(category string) error {
	return validateNotEmpty("magazine", "category", category)
}

// ValidateArticleTitle checks an article title against the length bounds.
func ValidateArticleTitle(title string) error {
	return validateLength("article", "title", title, MinArticleTitleLength, MaxArticleTitleLength)
}
