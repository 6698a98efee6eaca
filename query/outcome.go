package query

// Outcome is the result of a lookup.
type Outcome[T any] struct {
	Success bool   `json:"success"`
	Data    []T    `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
}

// Found builds a successful Outcome.
func Found[T any](data []T) Outcome[T] {
	return Outcome[T]{Success: true, Data: data}
}

// NotFound builds an Outcome reporting that nothing matched.
func NotFound[T any](message string) Outcome[T] {
	return Outcome[T]{Message: message}
}
