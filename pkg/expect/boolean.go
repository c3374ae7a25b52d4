package expect

import "fmt"

// BeTrue expects a bool to be true.
func BeTrue() Checker[bool] {
	return CheckFunc(
		func(actual bool) bool { return actual },
		func(expression string, _ bool) string {
			return fmt.Sprintf("Expected %s\n  to be true.", expression)
		},
	)
}

// BeFalse expects a bool to be false.
func BeFalse() Checker[bool] {
	return CheckFunc(
		func(actual bool) bool { return !actual },
		func(expression string, _ bool) string {
			return fmt.Sprintf("Expected %s\n  to be false.", expression)
		},
	)
}
