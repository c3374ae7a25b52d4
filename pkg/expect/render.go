package expect

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/google/go-cmp/cmp"
	"github.com/kr/pretty"
)

// exportAll lets go-cmp look into unexported struct fields.
var exportAll = cmp.Exporter(func(reflect.Type) bool { return true })

// equal reports structural equality of two values.
func equal[T any](a, b T) bool {
	return cmp.Equal(a, b, exportAll)
}

// diff returns a go-cmp diff (-expected +actual).
func diff[T any](expected, actual T) string {
	return cmp.Diff(expected, actual, exportAll)
}

// render formats a value for a diagnostic in Go-syntax style.
// Messages are rendered when a chain concludes, so the length
// limit is the one configured at that moment, not when the chain
// was built.
func render(v any) string {
	return truncate(renderFull(v), currentValueLimit())
}

func renderFull(v any) string {
	if v == nil {
		return "nil"
	}
	if gs, ok := v.(fmt.GoStringer); ok {
		return gs.GoString()
	}
	if err, ok := v.(error); ok {
		return fmt.Sprintf("error(%s)", strconv.Quote(err.Error()))
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.String:
		return strconv.Quote(rv.String())
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64, reflect.Complex64, reflect.Complex128:
		return fmt.Sprintf("%v", v)
	default:
		return pretty.Sprint(v)
	}
}

// truncate shortens s to at most limit bytes, cutting on a rune
// boundary. Zero disables it.
func truncate(s string, limit int) string {
	if limit <= 0 || len(s) <= limit {
		return s
	}
	for limit > 0 && !utf8.RuneStart(s[limit]) {
		limit--
	}
	cut := utf8.RuneCountInString(s[limit:])
	return s[:limit] + "... (truncated " + strconv.Itoa(cut) + " chars)"
}

// multiline reports whether either rendering spans lines.
func multiline(a, b string) bool {
	return strings.Contains(a, "\n") || strings.Contains(b, "\n")
}
