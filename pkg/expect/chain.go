package expect

import (
	"errors"
	"fmt"

	"digital.vasic.expect/internal/source"
	"digital.vasic.expect/pkg/logging"
)

// unknownExpression stands in for source text that could not be
// recovered from the caller's file.
const unknownExpression = "<unknown expression>"

type registration[T any] struct {
	checker Checker[T]
	negated bool
}

// Chain accumulates checks against one captured value. Builder
// methods mutate the chain and return it; a chain must not be
// shared or reused once ConcludeResult or Conclude has run.
type Chain[T any] struct {
	expr      Expression[T]
	checks    []registration[T]
	negate    bool
	soft      bool
	concluded bool
	t         TestingT
	settings  settings
}

// From starts a chain over an already captured expression.
func From[T any](expr Expression[T], opts ...Option) *Chain[T] {
	s := currentSettings()
	for _, opt := range opts {
		opt(&s)
	}
	return &Chain[T]{
		expr:     expr,
		soft:     s.soft,
		settings: s,
	}
}

// That starts a chain over actual, capturing the literal text
// and location of the argument at the call site. When the chain
// fails, Conclude aborts t.
func That[T any](t TestingT, actual T, opts ...Option) *Chain[T] {
	if t != nil {
		t.Helper()
	}
	c := From(capture(actual, 1, "That"), opts...)
	c.t = t
	return c
}

// capture builds an Expression for the call to name found skip
// frames above capture's caller. actual must be the second
// argument of that call. The location is where the call starts.
// Two such calls on one line cannot be told apart and both fall
// back to unknownExpression.
func capture[T any](actual T, skip int, name string) Expression[T] {
	expr := Expression[T]{Actual: actual, Text: unknownExpression}

	file, line, ok := source.CallSite(skip + 1)
	if !ok {
		return expr
	}
	expr.Location = SourceLocation{File: file, Line: line}

	text, callLine, column, err := source.ArgExpr(file, line, 1, name)
	if err != nil {
		currentSettings().logger.Debug(
			"expression text unavailable",
			logging.StringField("location", expr.Location.String()),
			logging.ErrorField(err),
		)
		return expr
	}
	expr.Text = text
	expr.Location.Line = callLine
	expr.Location.Column = column
	return expr
}

func (c *Chain[T]) open() {
	if c.concluded {
		panic(ErrChainConcluded)
	}
}

// Not negates the next registered check. Two calls in a row
// cancel out.
func (c *Chain[T]) Not() *Chain[T] {
	c.open()
	c.negate = !c.negate
	return c
}

// And does nothing; it exists for readability.
func (c *Chain[T]) And() *Chain[T] {
	c.open()
	return c
}

// Soft switches the chain to collect every failure instead of
// stopping at the first.
func (c *Chain[T]) Soft() *Chain[T] {
	c.open()
	c.soft = true
	return c
}

// Expecting registers a check, consuming any pending negation.
func (c *Chain[T]) Expecting(checker Checker[T]) *Chain[T] {
	c.open()
	c.checks = append(c.checks, registration[T]{
		checker: checker,
		negated: c.negate,
	})
	c.negate = false
	return c
}

// Failure registers a check that never holds and reports
// message verbatim.
func (c *Chain[T]) Failure(message string) *Chain[T] {
	return c.Expecting(MatchFailure[T](message))
}

// ToEqual expects the actual value to equal expected.
func (c *Chain[T]) ToEqual(expected T) *Chain[T] {
	return c.Expecting(Equal(expected))
}

// ToBe is an alias of ToEqual.
func (c *Chain[T]) ToBe(expected T) *Chain[T] {
	return c.ToEqual(expected)
}

// ToNotEqual expects the actual value to differ from expected.
func (c *Chain[T]) ToNotEqual(expected T) *Chain[T] {
	return c.Expecting(NotEqual(expected))
}

// ToNotBe is an alias of ToNotEqual.
func (c *Chain[T]) ToNotBe(expected T) *Chain[T] {
	return c.ToNotEqual(expected)
}

// To expects fn to hold for the actual value; message completes
// the sentence "Expected <expression> to ...".
func (c *Chain[T]) To(message string, fn func(actual T) bool) *Chain[T] {
	return c.Expecting(Satisfy(message, fn))
}

// ConcludeResult runs the registered checks and returns nil when
// all hold, or a *Failure describing the unsatisfied ones.
func (c *Chain[T]) ConcludeResult() error {
	c.open()
	c.concluded = true

	var blocks []string
	for _, r := range c.checks {
		if r.negated != r.checker.Test(c.expr.Actual) {
			continue
		}

		msg := r.checker.Message(c.expr.Text, c.expr.Actual)
		if r.negated {
			msg = "NOT " + msg
		}
		blocks = append(blocks, msg)

		if !c.soft {
			break
		}
	}

	c.settings.logger.Debug(
		"expectation concluded",
		logging.StringField("location", c.expr.Location.String()),
		logging.StringField("expression", c.expr.Text),
		logging.IntField("checks", len(c.checks)),
		logging.IntField("failures", len(blocks)),
		logging.BoolField("soft", c.soft),
	)

	if len(blocks) == 0 {
		return nil
	}
	return &Failure{
		Location:   c.expr.Location,
		Expression: c.expr.Text,
		Blocks:     blocks,
	}
}

// Conclude runs the checks and, on failure, aborts the current
// test through t.Fatal. Chains without a TestingT write the
// diagnostic to the configured output and panic with the
// *Failure.
func (c *Chain[T]) Conclude() {
	if c.t != nil {
		c.t.Helper()
	}

	err := c.ConcludeResult()
	if err == nil {
		return
	}

	var failure *Failure
	if !errors.As(err, &failure) {
		panic(err)
	}

	c.settings.logger.Error(
		"expectation failed",
		logging.StringField("location", failure.Location.String()),
		logging.StringField("expression", failure.Expression),
		logging.StringsField("failures", failure.Blocks),
		logging.BoolField("soft", c.soft),
	)

	if c.t != nil {
		c.t.Fatal(failure.Error())
		return
	}

	fmt.Fprintln(c.settings.output, failure.Error())
	panic(failure)
}
