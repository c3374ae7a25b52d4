package expect

// Checker is a single check that a chain can run against its
// actual value.
type Checker[T any] interface {
	// Test reports whether the check holds for actual.
	Test(actual T) bool

	// Message describes the check for a diagnostic. expression
	// is the literal source text of the value under test.
	Message(expression string, actual T) string
}

// CheckFunc adapts a pair of plain functions into a Checker.
func CheckFunc[T any](
	test func(actual T) bool,
	message func(expression string, actual T) string,
) Checker[T] {
	return funcChecker[T]{test: test, message: message}
}

type funcChecker[T any] struct {
	test    func(T) bool
	message func(string, T) string
}

func (f funcChecker[T]) Test(actual T) bool {
	return f.test(actual)
}

func (f funcChecker[T]) Message(expression string, actual T) string {
	return f.message(expression, actual)
}
