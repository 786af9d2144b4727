package parse

import (
	"errors"
	"fmt"
	"strings"
)

// Mode selects how assembled text is parsed.
type Mode string

const (
	// ModeHTML parses the text as a full document. A doctype is prepended and
	// the serialised output carries the html/head/body wrapper.
	ModeHTML Mode = "html"
	// ModeFragment parses the text as a fragment without an implicit wrapper.
	ModeFragment Mode = "fragment"
)

// DefaultDirective is used by the pipeline when callers leave the parse
// directive unset.
const DefaultDirective = "fragment"

// ErrInvalidParseOption reports a parse directive outside the accepted set.
var ErrInvalidParseOption = errors.New("parse: invalid parse option")

// InvalidOptionError carries the rejected directive.
type InvalidOptionError struct {
	Value any
}

func (e *InvalidOptionError) Error() string {
	return fmt.Sprintf("parse: invalid parse option (%s). Only allows ['html', 'fragment', true, false]", describe(e.Value))
}

// Is matches ErrInvalidParseOption.
func (e *InvalidOptionError) Is(target error) bool {
	return target == ErrInvalidParseOption
}

// Valid reports whether m is one of the known modes.
func (m Mode) Valid() bool {
	return m == ModeHTML || m == ModeFragment
}

func (m Mode) String() string {
	return string(m)
}

// ResolveMode maps a parse directive onto a Mode. Accepted directives are the
// strings "html" and "fragment" (compared case-insensitively), the booleans
// true (html) and false (fragment), and valid Mode values. Anything else,
// including nil, fails with an *InvalidOptionError.
func ResolveMode(directive any) (Mode, error) {
	switch v := directive.(type) {
	case Mode:
		if v.Valid() {
			return v, nil
		}
	case string:
		switch {
		case strings.EqualFold(v, string(ModeHTML)):
			return ModeHTML, nil
		case strings.EqualFold(v, string(ModeFragment)):
			return ModeFragment, nil
		}
	case bool:
		if v {
			return ModeHTML, nil
		}
		return ModeFragment, nil
	}
	return "", &InvalidOptionError{Value: directive}
}

func describe(value any) string {
	switch v := value.(type) {
	case nil:
		return "null"
	case string:
		return fmt.Sprintf("%q", v)
	case Mode:
		return fmt.Sprintf("%q", string(v))
	default:
		return fmt.Sprintf("%v", v)
	}
}
