package expect

import "fmt"

// HaveLength expects a slice to hold exactly n elements.
func HaveLength[E any](n int) Checker[[]E] {
	return CheckFunc(
		func(actual []E) bool { return len(actual) == n },
		func(expression string, actual []E) string {
			return fmt.Sprintf(
				"Expected slice %s\n  to have length %d\n  but was of length %d",
				expression, n, len(actual),
			)
		},
	)
}

// BeEmpty expects a slice without elements.
func BeEmpty[E any]() Checker[[]E] {
	return CheckFunc(
		func(actual []E) bool { return len(actual) == 0 },
		func(expression string, actual []E) string {
			return fmt.Sprintf(
				"Expected slice %s\n  to be empty\n  but was of length %d",
				expression, len(actual),
			)
		},
	)
}

// BeNonEmpty expects a slice with at least one element.
func BeNonEmpty[E any]() Checker[[]E] {
	return CheckFunc(
		func(actual []E) bool { return len(actual) > 0 },
		func(expression string, actual []E) string {
			return fmt.Sprintf(
				"Expected slice %s\n  to be non-empty\n  but was of length %d",
				expression, len(actual),
			)
		},
	)
}

// Contain expects a slice to hold an element equal to item.
func Contain[E any](item E) Checker[[]E] {
	return CheckFunc(
		func(actual []E) bool {
			for _, e := range actual {
				if equal(item, e) {
					return true
				}
			}
			return false
		},
		func(expression string, _ []E) string {
			return fmt.Sprintf(
				"Expected slice %s\n  to contain %s",
				expression, render(item),
			)
		},
	)
}
