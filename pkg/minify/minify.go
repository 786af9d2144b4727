// Package minify exposes the minify stage contract: the option record, the
// process-wide default options, and the Engine interface. The
// tdewolff/minify backed engine lives under internal/minifier.
package minify

import (
	"context"
	"errors"
)

// ErrMinify wraps failures reported by an Engine.
var ErrMinify = errors.New("minify: minify failure")

// Engine minifies HTML text with an explicit option set. Implementations must
// be safe for concurrent use.
type Engine interface {
	Minify(ctx context.Context, content string, opts Options) (string, error)
}

// EngineFunc adapts a function to the Engine interface.
type EngineFunc func(ctx context.Context, content string, opts Options) (string, error)

// Minify calls f.
func (f EngineFunc) Minify(ctx context.Context, content string, opts Options) (string, error) {
	return f(ctx, content, opts)
}

// Run minifies content with engine using Effective(opts).
func Run(ctx context.Context, engine Engine, content string, opts *Options) (string, error) {
	if engine == nil {
		return "", errors.New("minify: engine is nil")
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return engine.Minify(ctx, content, Effective(opts))
}
