package workspace

import "errors"

var (
	ErrNotFound    = errors.New("no such workspace")
	ErrInvalidSize = errors.New("workspace size must be positive")
)
