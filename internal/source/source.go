// Package source recovers the literal text of a call argument
// from the Go source file of the caller.
package source

import (
	"errors"
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"os"
	"runtime"
	"sync"
)

// ErrNotFound is returned when no matching call expression
// covers the requested line.
var ErrNotFound = errors.New("call expression not found")

// ErrAmbiguous is returned when more than one matching call sits
// on the requested line, so the argument cannot be attributed.
var ErrAmbiguous = errors.New("ambiguous call expression")

type parsedFile struct {
	fset *token.FileSet
	file *ast.File
	src  []byte
}

var (
	cacheMu sync.Mutex
	cache   = map[string]*parsedFile{}
)

// CallSite reports the file and line of the function skip
// frames above the caller of CallSite.
func CallSite(skip int) (file string, line int, ok bool) {
	_, file, line, ok = runtime.Caller(skip + 1)
	return file, line, ok
}

// ArgExpr finds the call to one of names that spans line in
// file and returns the source text of its argument at argIndex,
// together with the line and column where the call starts. When
// calls are nested the innermost one wins; two separate calls on
// the same line are reported as ErrAmbiguous.
func ArgExpr(
	file string, line, argIndex int, names ...string,
) (text string, callLine, callColumn int, err error) {
	pf, err := parse(file)
	if err != nil {
		return "", 0, 0, err
	}

	var matches []*ast.CallExpr
	ast.Inspect(pf.file, func(n ast.Node) bool {
		call, ok := n.(*ast.CallExpr)
		if !ok || !calls(call, names) {
			return true
		}
		start := pf.fset.Position(call.Pos()).Line
		end := pf.fset.Position(call.End()).Line
		if line >= start && line <= end {
			matches = append(matches, call)
		}
		return true
	})

	innermost := innermostCalls(matches)
	switch len(innermost) {
	case 0:
		return "", 0, 0, fmt.Errorf("%s:%d: %w", file, line, ErrNotFound)
	case 1:
	default:
		return "", 0, 0, fmt.Errorf(
			"%s:%d: %d calls: %w", file, line, len(innermost), ErrAmbiguous,
		)
	}

	call := innermost[0]
	if argIndex < 0 || argIndex >= len(call.Args) {
		return "", 0, 0, fmt.Errorf(
			"%s:%d: call has %d arguments, want index %d",
			file, line, len(call.Args), argIndex,
		)
	}

	arg := call.Args[argIndex]
	from := pf.fset.Position(arg.Pos())
	to := pf.fset.Position(arg.End())
	at := pf.fset.Position(call.Pos())
	return string(pf.src[from.Offset:to.Offset]), at.Line, at.Column, nil
}

// innermostCalls drops every call that encloses another one.
func innermostCalls(calls []*ast.CallExpr) []*ast.CallExpr {
	var result []*ast.CallExpr
	for _, outer := range calls {
		enclosing := false
		for _, inner := range calls {
			if inner != outer &&
				inner.Pos() >= outer.Pos() && inner.End() <= outer.End() {
				enclosing = true
				break
			}
		}
		if !enclosing {
			result = append(result, outer)
		}
	}
	return result
}

// calls reports whether the call's function is named one of
// names, looking through package selectors and explicit type
// instantiation.
func calls(call *ast.CallExpr, names []string) bool {
	fun := call.Fun
	switch f := fun.(type) {
	case *ast.IndexExpr:
		fun = f.X
	case *ast.IndexListExpr:
		fun = f.X
	}

	var name string
	switch f := fun.(type) {
	case *ast.Ident:
		name = f.Name
	case *ast.SelectorExpr:
		name = f.Sel.Name
	default:
		return false
	}

	for _, n := range names {
		if n == name {
			return true
		}
	}
	return false
}

func parse(path string) (*parsedFile, error) {
	cacheMu.Lock()
	defer cacheMu.Unlock()

	if pf, ok := cache[path]; ok {
		return pf, nil
	}

	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read source %s: %w", path, err)
	}

	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, path, src, 0)
	if err != nil {
		return nil, fmt.Errorf("parse source %s: %w", path, err)
	}

	pf := &parsedFile{fset: fset, file: file, src: src}
	cache[path] = pf
	return pf, nil
}
