package minifier

import (
	"context"
	"fmt"
	"regexp"
	"sync"

	tdminify "github.com/tdewolff/minify/v2"
	"github.com/tdewolff/minify/v2/css"
	tdhtml "github.com/tdewolff/minify/v2/html"
	"github.com/tdewolff/minify/v2/js"

	"github.com/goliatone/go-ntml/pkg/minify"
)

const htmlMimetype = "text/html"

var jsMimetypes = regexp.MustCompile(`^(application|text)/(x-)?(java|ecma)script$`)

// Engine implements minify.Engine with tdewolff/minify. A configured
// *tdminify.M is cached per distinct option set.
type Engine struct {
	cache sync.Map // minify.Options -> *tdminify.M
}

var _ minify.Engine = (*Engine)(nil)

// New returns an Engine with an empty cache.
func New() *Engine {
	return &Engine{}
}

// Minify runs the attribute ordering pass (when requested) and then the
// tdewolff HTML minifier configured from opts.
func (e *Engine) Minify(ctx context.Context, content string, opts minify.Options) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	if opts.SortAttributes || opts.SortClassName {
		sorted, err := sortAttributes(content, opts.SortAttributes, opts.SortClassName)
		if err != nil {
			return "", fmt.Errorf("%w: sort attributes: %v", minify.ErrMinify, err)
		}
		content = sorted
	}

	out, err := e.minifierFor(opts).String(htmlMimetype, content)
	if err != nil {
		return "", fmt.Errorf("%w: %v", minify.ErrMinify, err)
	}
	return out, nil
}

func (e *Engine) minifierFor(opts minify.Options) *tdminify.M {
	if cached, ok := e.cache.Load(opts); ok {
		return cached.(*tdminify.M)
	}
	m := build(opts)
	actual, _ := e.cache.LoadOrStore(opts, m)
	return actual.(*tdminify.M)
}

func build(opts minify.Options) *tdminify.M {
	m := tdminify.New()
	m.Add(htmlMimetype, htmlMinifier(opts))
	if opts.MinifyCSS {
		m.AddFunc("text/css", css.Minify)
	}
	if opts.MinifyJS {
		m.AddFuncRegexp(jsMimetypes, js.Minify)
	}
	return m
}

// htmlMinifier maps the option record onto the tdewolff knobs. Options without
// a tdewolff counterpart (boolean attribute collapsing, conditional comment
// handling, quote character, custom fragments) follow the library's fixed
// behaviour.
func htmlMinifier(opts minify.Options) *tdhtml.Minifier {
	removeDefaults := opts.RemoveRedundantAttributes ||
		opts.RemoveScriptTypeAttributes ||
		opts.RemoveStyleLinkTypeAttributes

	return &tdhtml.Minifier{
		KeepComments:        !opts.RemoveComments,
		KeepWhitespace:      !opts.CollapseWhitespace,
		KeepEndTags:         !opts.RemoveOptionalTags,
		KeepDocumentTags:    !opts.RemoveOptionalTags,
		KeepDefaultAttrVals: !removeDefaults,
		KeepQuotes:          !opts.RemoveAttributeQuotes,
	}
}
