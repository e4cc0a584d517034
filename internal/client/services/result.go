package services

type Status int

const (
	StatusOK Status = iota
	StatusEmpty
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusEmpty:
		return "empty"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Result is the outcome of a load. Err is set only when Status is
// StatusFailed.
type Result[T any] struct {
	Status Status
	Value  T
	Err    error
}

func OK[T any](v T) Result[T] {
	return Result[T]{Status: StatusOK, Value: v}
}

func Empty[T any](v T) Result[T] {
	return Result[T]{Status: StatusEmpty, Value: v}
}

func Failed[T any](err error) Result[T] {
	return Result[T]{Status: StatusFailed, Err: err}
}

// Items returns the value, or the zero value on failure.
func (r Result[T]) Items() T {
	return r.Value
}

func (r Result[T]) Failed() bool {
	return r.Status == StatusFailed
}
