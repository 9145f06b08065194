package db

import "errors"

// Domain-level database error sentinels.
var (
	ErrOutcomeNotFound = errors.New("answer outcome not found")
)
