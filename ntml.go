package ntml

import (
	"context"
	"log/slog"

	"github.com/goliatone/go-ntml/pkg/assemble"
	"github.com/goliatone/go-ntml/pkg/minify"
	"github.com/goliatone/go-ntml/pkg/pipeline"
	"github.com/goliatone/go-ntml/pkg/render/template"
	"github.com/goliatone/go-ntml/pkg/sanitize"
)

// Config aliases pipeline.Config so callers can configure the helper from the
// root package.
type Config = pipeline.Config

// Option aliases pipeline.Option.
type Option = pipeline.Option

// TemplateFunc aliases pipeline.TemplateFunc.
type TemplateFunc = pipeline.TemplateFunc

// MinifyOptions aliases minify.Options.
type MinifyOptions = minify.Options

// Template aliases assemble.Template.
type Template = assemble.Template

// New returns a template-tag handler. With no options it resolves values,
// parses the result as a fragment and skips minification.
//
//	html := ntml.New(ntml.WithMinify(true))
//	out, err := html(ctx, []string{"<p>", "</p>"}, func() string { return "hi" })
func New(options ...Option) TemplateFunc {
	return pipeline.New(options...).Func()
}

// NewPipeline exposes the pipeline constructor for callers that need the
// individual stages or template rendering.
func NewPipeline(options ...Option) *pipeline.Pipeline {
	return pipeline.New(options...)
}

// Tag builds a Template from literal segments and values.
func Tag(segments []string, values ...any) Template {
	return assemble.Tag(segments, values...)
}

// Parser parses content with the given directive and serialises it back to
// text. A nil directive is rejected; use "fragment" or "html" explicitly.
func Parser(ctx context.Context, content string, directive any) (string, error) {
	return pipeline.New().Parse(ctx, content, directive)
}

// Minifier minifies content. Nil options select DefaultMinifyOptions; any
// other value replaces them entirely.
func Minifier(ctx context.Context, content string, opts *MinifyOptions) (string, error) {
	return pipeline.New().Minify(ctx, content, opts)
}

// DefaultMinifyOptions returns a copy of the default minify option set.
func DefaultMinifyOptions() MinifyOptions {
	return minify.DefaultOptions()
}

// Render renders a template with renderer and runs the output through the
// parse and minify stages configured by options.
func Render(ctx context.Context, renderer template.TemplateRenderer, name string, data any, options ...Option) (string, error) {
	return pipeline.New(options...).Render(ctx, renderer, name, data)
}

// WithMinify toggles minification.
func WithMinify(enabled bool) Option {
	return pipeline.WithMinify(enabled)
}

// WithParse sets the parse directive ("html", "fragment", true or false).
func WithParse(directive any) Option {
	return pipeline.WithParse(directive)
}

// WithMinifyOptions replaces the default minify options.
func WithMinifyOptions(opts *MinifyOptions) Option {
	return pipeline.WithMinifyOptions(opts)
}

// WithConfig applies a full configuration.
func WithConfig(cfg Config) Option {
	return pipeline.WithConfig(cfg)
}

// WithSanitizer sanitises interpolated values with s.
func WithSanitizer(s sanitize.Sanitizer) Option {
	return pipeline.WithSanitizer(s)
}

// WithLogger routes stage diagnostics to logger.
func WithLogger(logger *slog.Logger) Option {
	return pipeline.WithLogger(logger)
}
