package testsupport

import (
	"context"
	"sync"

	"github.com/goliatone/go-ntml/pkg/minify"
	"github.com/goliatone/go-ntml/pkg/parse"
)

// MinifyCall captures one invocation of a RecordingMinifier.
type MinifyCall struct {
	Content string
	Options minify.Options
}

// RecordingMinifier is a minify.Engine that records every call and returns
// the content unchanged, or Output when set.
type RecordingMinifier struct {
	mu     sync.Mutex
	calls  []MinifyCall
	Output string
	Err    error
}

var _ minify.Engine = (*RecordingMinifier)(nil)

// Minify records the call.
func (r *RecordingMinifier) Minify(_ context.Context, content string, opts minify.Options) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, MinifyCall{Content: content, Options: opts})
	if r.Err != nil {
		return "", r.Err
	}
	if r.Output != "" {
		return r.Output, nil
	}
	return content, nil
}

// Calls returns a copy of the recorded calls.
func (r *RecordingMinifier) Calls() []MinifyCall {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]MinifyCall(nil), r.calls...)
}

// ParseCall captures one invocation of a RecordingParser.
type ParseCall struct {
	Content string
	Mode    parse.Mode
}

// RecordingParser wraps a parser and records the inputs it receives.
type RecordingParser struct {
	mu    sync.Mutex
	calls []ParseCall
	Next  parse.Parser
}

var _ parse.Parser = (*RecordingParser)(nil)

// Parse records the call and delegates to Next, echoing content when Next is
// nil.
func (r *RecordingParser) Parse(ctx context.Context, content string, mode parse.Mode) (string, error) {
	r.mu.Lock()
	r.calls = append(r.calls, ParseCall{Content: content, Mode: mode})
	next := r.Next
	r.mu.Unlock()
	if next == nil {
		return content, nil
	}
	return next.Parse(ctx, content, mode)
}

// Calls returns a copy of the recorded calls.
func (r *RecordingParser) Calls() []ParseCall {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]ParseCall(nil), r.calls...)
}
