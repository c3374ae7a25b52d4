package expect

import "fmt"

// MatchFailure returns a check that never holds and reports
// message verbatim. It turns a failed shape match into an
// ordinary chain failure.
func MatchFailure[T any](message string) Checker[T] {
	return matchFailure[T]{message: message}
}

type matchFailure[T any] struct {
	message string
}

func (matchFailure[T]) Test(T) bool { return false }

func (m matchFailure[T]) Message(string, T) string {
	return m.message
}

// Matches starts a chain that holds when match accepts actual.
// pattern describes the accepted shapes and explanation, if any,
// is appended to the failure. match runs exactly once, here.
//
//	expect.Matches(t, tok, "Ident | Keyword", func(k Token) bool {
//		return k.Kind == Ident || k.Kind == Keyword
//	}).Conclude()
func Matches[T any](
	t TestingT,
	actual T,
	pattern string,
	match func(actual T) bool,
	explanation ...string,
) *Chain[T] {
	if t != nil {
		t.Helper()
	}
	expr := capture(actual, 1, "Matches")
	c := MatchExpression(expr, pattern, match(actual), explanation...)
	c.t = t
	return c
}

// MatchExpression starts a chain from an already evaluated
// match: no checks when matched, otherwise a single
// MatchFailure naming the expression, the pattern and the
// actual value.
func MatchExpression[T any](
	expr Expression[T],
	pattern string,
	matched bool,
	explanation ...string,
) *Chain[T] {
	c := From(expr)
	if matched {
		return c
	}
	return c.Failure(matchMessage(expr.Text, pattern, expr.Actual, explanation))
}

func matchMessage(
	expression, pattern string, actual any, explanation []string,
) string {
	msg := fmt.Sprintf(
		"Expected %s\n  to match %s\n  but was %s",
		expression, pattern, render(actual),
	)
	for _, line := range explanation {
		if line != "" {
			msg += "\n  " + line
		}
	}
	return msg
}
