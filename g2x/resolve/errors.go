package resolve

import "errors"

var ErrInvalidStrategy = errors.New("invalid fuzzy strategy type")
