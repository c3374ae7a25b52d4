package expect

import (
	"fmt"
	"strings"
)

// AllOf combines checkers into one that holds when every one of
// them holds. An empty AllOf always holds.
func AllOf[T any](checkers ...Checker[T]) Checker[T] {
	return &composite[T]{checkers: checkers, all: true}
}

// AnyOf combines checkers into one that holds when at least one
// of them holds. An empty AnyOf never holds.
func AnyOf[T any](checkers ...Checker[T]) Checker[T] {
	return &composite[T]{checkers: checkers}
}

// composite remembers which children held and which failed
// during the last Test so that Message never evaluates a child
// twice.
type composite[T any] struct {
	checkers []Checker[T]
	all      bool
	held     []int
	failed   []int
	result   bool
}

func (c *composite[T]) Test(actual T) bool {
	c.held = c.held[:0]
	c.failed = c.failed[:0]
	c.result = c.all
	for i, checker := range c.checkers {
		if !checker.Test(actual) {
			c.failed = append(c.failed, i)
			continue
		}
		c.held = append(c.held, i)
		if !c.all {
			c.result = true
			return true
		}
	}
	c.result = c.result && len(c.failed) == 0
	return c.result
}

func (c *composite[T]) Message(expression string, actual T) string {
	header := "all of"
	if !c.all {
		header = "at least one of"
	}

	// A composite that held is only reported under negation;
	// the children to blame are then the ones that held.
	indexes := c.failed
	if c.result {
		indexes = c.held
	}

	parts := make([]string, 0, len(indexes))
	for _, i := range indexes {
		parts = append(parts, strings.TrimSuffix(
			indented("  ", c.checkers[i].Message(expression, actual)), "\n",
		))
	}

	return fmt.Sprintf(
		"Expected %s to satisfy %s:\n%s",
		expression, header, strings.Join(parts, "\n"),
	)
}
