package indexing

import "errors"

var (
	ErrListingNotFound = errors.New("listing file does not exist")
	ErrListingEmpty    = errors.New("listing path cannot be empty")
)
