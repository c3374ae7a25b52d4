package expect

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnsatisfied is the sentinel every *Failure unwraps to.
var ErrUnsatisfied = errors.New("expectation unsatisfied")

// Programming defects; both are used as panic values.
var (
	// ErrChainConcluded is raised when a chain is used after
	// ConcludeResult or Conclude.
	ErrChainConcluded = errors.New("expect: chain used after conclusion")

	// ErrPredicateReused is raised when a one-shot predicate
	// registered with Satisfy or To runs a second time.
	ErrPredicateReused = errors.New("expect: predicate evaluated twice")
)

// Failure is the diagnostic of a chain that concluded with at
// least one unsatisfied check.
type Failure struct {
	// Location is the assertion call site.
	Location SourceLocation

	// Expression is the literal text of the value under test.
	Expression string

	// Blocks holds one message per unsatisfied check, in
	// evaluation order, prefixed with "NOT " when negated.
	Blocks []string
}

// Error renders the full multi-line diagnostic.
func (f *Failure) Error() string {
	var b strings.Builder
	fmt.Fprintf(
		&b, "%s\nwhen testing expression\n\n    %s\n\n",
		f.Location, f.Expression,
	)
	for _, block := range f.Blocks {
		b.WriteString(indented("  ", block))
	}
	return b.String()
}

// Unwrap returns ErrUnsatisfied for errors.Is.
func (f *Failure) Unwrap() error {
	return ErrUnsatisfied
}

// indented prefixes every line of s and terminates the result
// with a newline.
func indented(prefix, s string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = prefix + line
	}
	return strings.Join(lines, "\n") + "\n"
}
