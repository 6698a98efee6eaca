package server

import "errors"

// Sentinel errors for consistent error handling.
var (
	ErrToolNotFound   = errors.New("tool not found")
	ErrInvalidRequest = errors.New("invalid request")
	ErrDuplicateTool  = errors.New("tool already registered")
	ErrEngineRequired = errors.New("query engine required")
)
