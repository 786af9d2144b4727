package ntml

import (
	"github.com/goliatone/go-ntml/internal/htmlparse"
	"github.com/goliatone/go-ntml/internal/minifier"
	"github.com/goliatone/go-ntml/pkg/minify"
	"github.com/goliatone/go-ntml/pkg/parse"
	"github.com/goliatone/go-ntml/pkg/pipeline"
)

// NewParser returns the built-in x/net/html parser while keeping the concrete
// type hidden from consumers. Wrap it to decorate parsing and pass the result
// to WithParser.
func NewParser() parse.Parser {
	return htmlparse.New()
}

// NewMinifier returns the built-in tdewolff/minify engine.
func NewMinifier() minify.Engine {
	return minifier.New()
}

// WithParser injects a parser.
func WithParser(parser parse.Parser) Option {
	return pipeline.WithParser(parser)
}

// WithMinifier injects a minify engine.
func WithMinifier(engine minify.Engine) Option {
	return pipeline.WithMinifier(engine)
}
