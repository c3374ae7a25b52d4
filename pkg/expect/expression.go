package expect

import "fmt"

// SourceLocation identifies an assertion call site.
type SourceLocation struct {
	File   string `json:"file"`
	Line   int    `json:"line"`
	Column int    `json:"column"`
}

// String renders the location as file:line:column.
func (l SourceLocation) String() string {
	return fmt.Sprintf("%s:%d:%d", l.File, l.Line, l.Column)
}

// Expression is the captured value under test together with the
// literal text and location of the expression that produced it.
// Slices, maps and pointers are shared with the caller, never
// deep-copied; checkers must not mutate them.
type Expression[T any] struct {
	Actual   T
	Text     string
	Location SourceLocation
}
