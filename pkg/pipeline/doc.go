// Package pipeline wires the resolve → assemble → parse → minify stages behind
// a single constructor. New returns a Pipeline whose Func method yields the
// template-tag handler; collaborators (parser, minify engine, sanitiser,
// logger) can be injected with options.
package pipeline
