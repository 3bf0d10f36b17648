package repository

import "errors"

// ErrNotFound is returned when an operation references an id that does
// not exist in the store. It is the only domain error; callers match it
// with errors.Is.
var ErrNotFound = errors.New("not found")
