package parse

import (
	"context"
	"errors"
)

// ErrParse wraps failures reported by a Parser implementation.
var ErrParse = errors.New("parse: parse failure")

// Parser parses text in the given mode and serialises the resulting tree back
// to text. Implementations must be safe for concurrent use.
type Parser interface {
	Parse(ctx context.Context, content string, mode Mode) (string, error)
}

// ParserFunc adapts a function to the Parser interface.
type ParserFunc func(ctx context.Context, content string, mode Mode) (string, error)

// Parse calls f.
func (f ParserFunc) Parse(ctx context.Context, content string, mode Mode) (string, error) {
	return f(ctx, content, mode)
}

// Run resolves directive and delegates to parser. Directive errors surface
// before the parser is touched.
func Run(ctx context.Context, parser Parser, content string, directive any) (string, error) {
	if parser == nil {
		return "", errors.New("parse: parser is nil")
	}
	mode, err := ResolveMode(directive)
	if err != nil {
		return "", err
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return parser.Parse(ctx, content, mode)
}
