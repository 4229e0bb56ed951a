// Package magazine provides use cases for managing magazines and the
// relationship queries over their articles and contributors.
package magazine

import "errors"

// Sentinel errors for magazine use case operations.
var (
	// ErrInvalidMagazineID indicates that the provided magazine ID is invalid.
	// Magazine IDs must be positive integers.
	ErrInvalidMagazineID = errors.New("invalid magazine ID")
)
