package record

import "errors"

// Sentinel errors for loading a record collection.
var (
	ErrDataNotFound = errors.New("record data not found")
	ErrInvalidData  = errors.New("invalid record data")
)
