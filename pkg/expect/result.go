package expect

import (
	"fmt"
	"strconv"
)

// Result holds either a success value (Ok) or an error (Err).
type Result[T any] struct {
	value T
	err   error
	ok    bool
}

// Ok returns a successful Result holding v.
func Ok[T any](v T) Result[T] {
	return Result[T]{value: v, ok: true}
}

// Err returns a failed Result holding err.
func Err[T any](err error) Result[T] {
	return Result[T]{err: err}
}

// ResultOf converts the usual (value, error) return pair.
func ResultOf[T any](v T, err error) Result[T] {
	if err != nil {
		return Err[T](err)
	}
	return Ok(v)
}

// Get returns the value and error held by the Result.
func (r Result[T]) Get() (T, error) {
	return r.value, r.err
}

// IsOk reports whether the Result is a success.
func (r Result[T]) IsOk() bool { return r.ok }

// IsErr reports whether the Result is a failure.
func (r Result[T]) IsErr() bool { return !r.ok }

// GoString renders Ok(<value>) or Err(<message>).
func (r Result[T]) GoString() string {
	if r.ok {
		return "Ok(" + renderFull(r.value) + ")"
	}
	if r.err == nil {
		return "Err(nil)"
	}
	return "Err(" + strconv.Quote(r.err.Error()) + ")"
}

// BeOk expects a successful Result.
func BeOk[T any]() Checker[Result[T]] {
	return CheckFunc(
		func(actual Result[T]) bool { return actual.IsOk() },
		func(expression string, _ Result[T]) string {
			return fmt.Sprintf("Expected Result %s\n  to be Ok(..).", expression)
		},
	)
}

// BeErr expects a failed Result.
func BeErr[T any]() Checker[Result[T]] {
	return CheckFunc(
		func(actual Result[T]) bool { return actual.IsErr() },
		func(expression string, _ Result[T]) string {
			return fmt.Sprintf("Expected Result %s\n  to be Err(..).", expression)
		},
	)
}

// BeOkWith expects a successful Result whose value equals
// expected.
func BeOkWith[T any](expected T) Checker[Result[T]] {
	return CheckFunc(
		func(actual Result[T]) bool {
			return actual.IsOk() && equal(expected, actual.value)
		},
		func(expression string, actual Result[T]) string {
			if actual.IsErr() {
				return fmt.Sprintf(
					"Expected Result %s\n  to be Ok(%s)\n  but was Err",
					expression, render(expected),
				)
			}
			return fmt.Sprintf(
				"Expected Result %s\n  to be Ok(%s)\n  but was Ok(%s)",
				expression, render(expected), render(actual.value),
			)
		},
	)
}
