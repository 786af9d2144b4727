package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/goliatone/go-ntml/internal/htmlparse"
	"github.com/goliatone/go-ntml/internal/logging"
	"github.com/goliatone/go-ntml/internal/minifier"
	"github.com/goliatone/go-ntml/pkg/assemble"
	"github.com/goliatone/go-ntml/pkg/minify"
	"github.com/goliatone/go-ntml/pkg/parse"
	"github.com/goliatone/go-ntml/pkg/render/template"
	"github.com/goliatone/go-ntml/pkg/resolve"
	"github.com/goliatone/go-ntml/pkg/sanitize"
)

// TemplateFunc is the template-tag handler returned by Pipeline.Func. strings
// holds the literal segments and values the interpolations between them.
type TemplateFunc func(ctx context.Context, strings []string, values ...any) (string, error)

// Pipeline wires resolve → assemble → parse → minify. It holds no per-call
// state, so one Pipeline may serve any number of concurrent invocations.
type Pipeline struct {
	cfg       Config
	parser    parse.Parser
	minifier  minify.Engine
	sanitizer sanitize.Sanitizer
	logger    *slog.Logger
}

// New constructs a Pipeline. Missing collaborators fall back to the
// x/net/html parser, the tdewolff minifier and a discarding logger.
func New(options ...Option) *Pipeline {
	p := &Pipeline{}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(p)
	}
	p.applyDefaults()
	return p
}

func (p *Pipeline) applyDefaults() {
	if p.parser == nil {
		p.parser = htmlparse.New()
	}
	if p.minifier == nil {
		p.minifier = minifier.New()
	}
	if p.logger == nil {
		p.logger = logging.NewNop()
	}
	if p.cfg.MinifyOptions != nil {
		opts := *p.cfg.MinifyOptions
		p.cfg.MinifyOptions = &opts
	}
}

// Config returns a copy of the configuration.
func (p *Pipeline) Config() Config {
	cfg := p.cfg
	if cfg.MinifyOptions != nil {
		opts := *cfg.MinifyOptions
		cfg.MinifyOptions = &opts
	}
	return cfg
}

// Func returns the pipeline as a template-tag handler.
func (p *Pipeline) Func() TemplateFunc {
	return func(ctx context.Context, strings []string, values ...any) (string, error) {
		return p.Execute(ctx, assemble.Tag(strings, values...))
	}
}

// Execute runs every stage for one template invocation.
func (p *Pipeline) Execute(ctx context.Context, tpl assemble.Template) (string, error) {
	text, err := p.Assemble(ctx, tpl)
	if err != nil {
		return "", err
	}
	return p.Finish(ctx, text)
}

// Assemble resolves the template values and joins them with the literal
// segments, stopping before the parse stage.
func (p *Pipeline) Assemble(ctx context.Context, tpl assemble.Template) (string, error) {
	if ctx == nil {
		return "", errors.New("pipeline: context is required")
	}
	if err := tpl.Validate(); err != nil {
		return "", err
	}

	start := time.Now()
	values, err := resolve.All(ctx, tpl.Values)
	if err != nil {
		p.logger.Debug("resolve failed", "error", err)
		return "", fmt.Errorf("pipeline: resolve values: %w", err)
	}
	p.logger.Debug("resolved values", "count", len(values), "elapsed", time.Since(start))

	values = sanitize.Values(p.sanitizer, values, assemble.Text)

	return assemble.Join(assemble.Template{Strings: tpl.Strings, Values: values})
}

// Finish parses assembled text with the configured directive and minifies it
// when enabled.
func (p *Pipeline) Finish(ctx context.Context, text string) (string, error) {
	if ctx == nil {
		return "", errors.New("pipeline: context is required")
	}

	directive := p.cfg.Parse
	if directive == nil {
		directive = parse.DefaultDirective
	}

	start := time.Now()
	parsed, err := p.Parse(ctx, text, directive)
	if err != nil {
		p.logger.Debug("parse failed", "error", err)
		return "", err
	}
	p.logger.Debug("parsed", "directive", directive, "bytes", len(parsed), "elapsed", time.Since(start))

	if !p.cfg.Minify {
		return parsed, nil
	}

	start = time.Now()
	out, err := p.Minify(ctx, parsed, p.cfg.MinifyOptions)
	if err != nil {
		p.logger.Debug("minify failed", "error", err)
		return "", err
	}
	p.logger.Debug("minified", "bytes", len(out), "elapsed", time.Since(start))
	return out, nil
}

// Parse runs the parse stage on its own. Unlike Finish, a nil directive is
// rejected rather than defaulted.
func (p *Pipeline) Parse(ctx context.Context, content string, directive any) (string, error) {
	return parse.Run(ctx, p.parser, content, directive)
}

// Minify runs the minify stage on its own. Nil options select the defaults;
// anything else is used verbatim.
func (p *Pipeline) Minify(ctx context.Context, content string, opts *minify.Options) (string, error) {
	return minify.Run(ctx, p.minifier, content, opts)
}

// Render renders a template through renderer and sends the output through
// the parse and minify stages.
func (p *Pipeline) Render(ctx context.Context, renderer template.TemplateRenderer, name string, data any) (string, error) {
	if renderer == nil {
		return "", errors.New("pipeline: template renderer is nil")
	}
	if ctx == nil {
		return "", errors.New("pipeline: context is required")
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	rendered, err := renderer.Render(name, data)
	if err != nil {
		return "", fmt.Errorf("pipeline: render template: %w", err)
	}
	return p.Finish(ctx, rendered)
}
