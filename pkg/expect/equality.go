package expect

import (
	"fmt"
	"strings"
)

// Equal expects the actual value to be structurally equal to
// expected, unexported fields included.
func Equal[T any](expected T) Checker[T] {
	return equality[T]{expected: expected}
}

// NotEqual expects the actual value to differ from expected.
func NotEqual[T any](expected T) Checker[T] {
	return equality[T]{expected: expected, inverse: true}
}

type equality[T any] struct {
	expected T
	inverse  bool
}

func (e equality[T]) Test(actual T) bool {
	return equal(e.expected, actual) != e.inverse
}

func (e equality[T]) Message(expression string, actual T) string {
	want, got := render(e.expected), render(actual)

	verb := "to be"
	if e.inverse {
		verb = "to NOT be"
	}
	msg := fmt.Sprintf(
		"Expected %s\n  %s %s\n  but was %s",
		expression, verb, want, got,
	)

	if !e.inverse && multiline(want, got) {
		d := strings.TrimRight(diff(e.expected, actual), "\n")
		msg += "\n  diff (-expected +actual):\n" +
			strings.TrimSuffix(indented("    ", d), "\n")
	}
	return msg
}
