package expect

import (
	"fmt"
	"sync/atomic"
)

// Satisfy expects fn to hold for the actual value. fn runs at
// most once; a second evaluation panics with
// ErrPredicateReused. message completes the sentence
// "Expected <expression> to ...".
func Satisfy[T any](message string, fn func(actual T) bool) Checker[T] {
	return &predicate[T]{message: message, fn: fn}
}

type predicate[T any] struct {
	used    atomic.Uint32
	message string
	fn      func(T) bool
}

func (p *predicate[T]) Test(actual T) bool {
	if p.used.Add(1) != 1 {
		panic(ErrPredicateReused)
	}
	return p.fn(actual)
}

func (p *predicate[T]) Message(expression string, _ T) string {
	return fmt.Sprintf("Expected %s to\n  %s", expression, p.message)
}
