// Package author provides use cases for managing authors and querying
// the articles and magazines they are linked to.
package author

import "errors"

// Sentinel errors for author use case operations.
var (
	// ErrInvalidAuthorID indicates that the provided author ID is invalid.
	// Author IDs must be positive integers.
	ErrInvalidAuthorID = errors.New("invalid author ID")
)
