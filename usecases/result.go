package usecases

// Result is the outcome of a manager operation: either the persisted
// value or the accumulated validation errors, never both. Infrastructure
// failures (database down, hashing failure) travel separately as Go
// errors; validation failures are data, not errors.
type Result[T any] struct {
	Value  T
	Errors []string
}

// Ok reports whether validation passed.
func (r Result[T]) Ok() bool {
	return len(r.Errors) == 0
}

func succeed[T any](value T) Result[T] {
	return Result[T]{Value: value}
}

func fail[T any](errs []string) Result[T] {
	return Result[T]{Errors: errs}
}

// Invalidator drops cached derived data for a user after a write.
type Invalidator interface {
	Invalidate(userID string)
}
