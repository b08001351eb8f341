package errors

import "errors"

// ErrInvalidFilter marks a filter value the store refused to compare.
var ErrInvalidFilter = errors.New("invalid filter value")
