package pipeline

import (
	"log/slog"

	"github.com/goliatone/go-ntml/pkg/minify"
	"github.com/goliatone/go-ntml/pkg/parse"
	"github.com/goliatone/go-ntml/pkg/sanitize"
)

// Config captures the behaviour of a Pipeline. It is copied on construction
// and never changes afterwards.
type Config struct {
	// Minify runs the minify stage after parsing.
	Minify bool

	// Parse is the parse directive: "html", "fragment" (any case), true, false
	// or a parse.Mode. Nil selects "fragment".
	Parse any

	// MinifyOptions replaces the default minify options wholesale when set.
	MinifyOptions *minify.Options
}

// Option customises the pipeline configuration.
type Option func(*Pipeline)

// WithConfig replaces the whole configuration.
func WithConfig(cfg Config) Option {
	return func(p *Pipeline) {
		p.cfg = cfg
	}
}

// WithMinify toggles the minify stage.
func WithMinify(enabled bool) Option {
	return func(p *Pipeline) {
		p.cfg.Minify = enabled
	}
}

// WithParse sets the parse directive.
func WithParse(directive any) Option {
	return func(p *Pipeline) {
		p.cfg.Parse = directive
	}
}

// WithMinifyOptions sets the option record handed to the minifier. Passing nil
// restores the defaults.
func WithMinifyOptions(opts *minify.Options) Option {
	return func(p *Pipeline) {
		p.cfg.MinifyOptions = opts
	}
}

// WithParser injects a custom parser.
func WithParser(parser parse.Parser) Option {
	return func(p *Pipeline) {
		p.parser = parser
	}
}

// WithMinifier injects a custom minify engine.
func WithMinifier(engine minify.Engine) Option {
	return func(p *Pipeline) {
		p.minifier = engine
	}
}

// WithSanitizer cleans resolved values before they are spliced into the
// template. Literal segments are never sanitised.
func WithSanitizer(s sanitize.Sanitizer) Option {
	return func(p *Pipeline) {
		p.sanitizer = s
	}
}

// WithLogger routes stage diagnostics to logger.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Pipeline) {
		p.logger = logger
	}
}
