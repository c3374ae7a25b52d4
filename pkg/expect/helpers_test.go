package expect

import (
	"github.com/stretchr/testify/mock"
)

var testLocation = SourceLocation{File: "values_test.go", Line: 12, Column: 5}

func chainOver[T any](actual T, text string, opts ...Option) *Chain[T] {
	return From(Expression[T]{
		Actual:   actual,
		Text:     text,
		Location: testLocation,
	}, opts...)
}

type mockT struct {
	mock.Mock
}

func (m *mockT) Helper() {}

func (m *mockT) Fatal(args ...any) {
	m.Called(args...)
}

// counting is a checker that records how often it ran.
type counting[T any] struct {
	result bool
	label  string
	calls  int
}

func (c *counting[T]) Test(T) bool {
	c.calls++
	return c.result
}

func (c *counting[T]) Message(expression string, _ T) string {
	return c.label + " " + expression
}
