package expect

import "fmt"

// Optional holds either a value (Some) or nothing (None).
type Optional[T any] struct {
	value T
	ok    bool
}

// Some returns an Optional holding v.
func Some[T any](v T) Optional[T] {
	return Optional[T]{value: v, ok: true}
}

// None returns an empty Optional.
func None[T any]() Optional[T] {
	return Optional[T]{}
}

// OptionalOf converts a pointer: nil is None, anything else is
// Some of the pointed-to value.
func OptionalOf[T any](p *T) Optional[T] {
	if p == nil {
		return None[T]()
	}
	return Some(*p)
}

// Get returns the held value and whether there is one.
func (o Optional[T]) Get() (T, bool) {
	return o.value, o.ok
}

// IsSome reports whether a value is held.
func (o Optional[T]) IsSome() bool { return o.ok }

// IsNone reports whether the Optional is empty.
func (o Optional[T]) IsNone() bool { return !o.ok }

// GoString renders Some(<value>) or None.
func (o Optional[T]) GoString() string {
	if !o.ok {
		return "None"
	}
	return "Some(" + renderFull(o.value) + ")"
}

// BeSome expects an Optional to hold a value.
func BeSome[T any]() Checker[Optional[T]] {
	return CheckFunc(
		func(actual Optional[T]) bool { return actual.IsSome() },
		func(expression string, _ Optional[T]) string {
			return fmt.Sprintf("Expected Optional %s\n  to be Some(..).", expression)
		},
	)
}

// BeNone expects an Optional to be empty.
func BeNone[T any]() Checker[Optional[T]] {
	return CheckFunc(
		func(actual Optional[T]) bool { return actual.IsNone() },
		func(expression string, _ Optional[T]) string {
			return fmt.Sprintf("Expected Optional %s\n  to be None.", expression)
		},
	)
}

// HoldValue expects an Optional to hold a value equal to
// expected.
func HoldValue[T any](expected T) Checker[Optional[T]] {
	return CheckFunc(
		func(actual Optional[T]) bool {
			v, ok := actual.Get()
			return ok && equal(expected, v)
		},
		func(expression string, actual Optional[T]) string {
			return fmt.Sprintf(
				"Expected Optional %s\n  to contain %s\n  but held %s",
				expression, render(expected), render(actual),
			)
		},
	)
}
