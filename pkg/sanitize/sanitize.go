// Package sanitize cleans interpolated values before they are spliced into a
// template. Literal template segments are trusted and never pass through a
// Sanitizer; only resolved values do.
package sanitize

import (
	"fmt"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

// Sanitizer rewrites a single interpolated value.
type Sanitizer interface {
	Sanitize(value string) string
}

// Func adapts a function to the Sanitizer interface.
type Func func(string) string

// Sanitize calls f.
func (f Func) Sanitize(value string) string {
	return f(value)
}

// Policy names a built-in bluemonday policy.
type Policy string

const (
	// PolicyNone disables sanitising.
	PolicyNone Policy = ""
	// PolicyStrict strips every tag, leaving escaped text.
	PolicyStrict Policy = "strict"
	// PolicyUGC allows the user generated content subset (links, formatting,
	// lists, tables, images).
	PolicyUGC Policy = "ugc"
	// PolicyInline allows inline formatting elements only.
	PolicyInline Policy = "inline"
)

var (
	policiesOnce sync.Once
	policies     map[Policy]*bluemonday.Policy
)

// ForPolicy returns the shared sanitizer for a named policy. PolicyNone yields
// nil so callers can skip the stage.
func ForPolicy(name Policy) (Sanitizer, error) {
	key := Policy(strings.ToLower(strings.TrimSpace(string(name))))
	if key == PolicyNone {
		return nil, nil
	}
	policiesOnce.Do(buildPolicies)
	policy, ok := policies[key]
	if !ok {
		return nil, fmt.Errorf("sanitize: unknown policy %q", name)
	}
	return policy, nil
}

// FromBluemonday wraps a caller configured bluemonday policy.
func FromBluemonday(policy *bluemonday.Policy) Sanitizer {
	if policy == nil {
		return nil
	}
	return policy
}

func buildPolicies() {
	inline := bluemonday.NewPolicy()
	inline.AllowElements("b", "i", "em", "strong", "small", "code", "kbd", "mark", "s", "sub", "sup", "u", "br", "span")
	inline.AllowAttrs("class").OnElements("span", "code", "mark")

	policies = map[Policy]*bluemonday.Policy{
		PolicyStrict: bluemonday.StrictPolicy(),
		PolicyUGC:    bluemonday.UGCPolicy(),
		PolicyInline: inline,
	}
}

// Values sanitises every non-nil value, returning a new slice in the same
// order. Values are converted with the supplied text function first so
// numbers and Stringers are covered too.
func Values(s Sanitizer, values []any, text func(any) string) []any {
	if s == nil || len(values) == 0 {
		return values
	}
	out := make([]any, len(values))
	for i, value := range values {
		if value == nil {
			continue
		}
		out[i] = s.Sanitize(text(value))
	}
	return out
}
