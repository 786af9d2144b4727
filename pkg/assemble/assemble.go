// Package assemble interleaves literal template segments with resolved
// interpolation values.
package assemble

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
)

// ErrShape reports a template whose segment and value counts do not line up.
var ErrShape = errors.New("assemble: invalid template shape")

// Template is the tagged-template invocation shape: literal segments with the
// interpolated values that sit between them.
type Template struct {
	Strings []string
	Values  []any
}

// Tag builds a Template from literal segments and values.
func Tag(segments []string, values ...any) Template {
	return Template{Strings: segments, Values: values}
}

// Validate checks that there is exactly one more segment than values. A
// template without values may carry any number of segments.
func (t Template) Validate() error {
	if len(t.Values) == 0 {
		return nil
	}
	if len(t.Strings) != len(t.Values)+1 {
		return fmt.Errorf("%w: %d segments for %d values", ErrShape, len(t.Strings), len(t.Values))
	}
	return nil
}

// Join concatenates segments and values left to right. Values must already be
// resolved; each one is converted with Text.
func Join(t Template) (string, error) {
	if err := t.Validate(); err != nil {
		return "", err
	}

	var sb strings.Builder
	for i, segment := range t.Strings {
		sb.WriteString(segment)
		if i < len(t.Values) {
			sb.WriteString(Text(t.Values[i]))
		}
	}
	return sb.String(), nil
}

// Text returns the textual representation used when a value is interpolated.
// nil and nil pointers render as the empty string, byte slices as UTF-8,
// Stringers and errors through their methods, named string types by their
// underlying value, and everything else through fmt.Sprint.
func Text(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case []byte:
		return string(v)
	}

	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return ""
		}
	}

	switch v := value.(type) {
	case fmt.Stringer:
		return v.String()
	case error:
		return v.Error()
	}
	if rv.Kind() == reflect.String {
		return rv.String()
	}
	return fmt.Sprint(value)
}
