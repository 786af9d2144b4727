package minify

// Options mirrors the html-minifier option record. Field tags use the
// upstream camelCase keys so option files written for that tool load as-is.
type Options struct {
	CollapseBooleanAttributes     bool   `json:"collapseBooleanAttributes" yaml:"collapseBooleanAttributes"`
	CollapseInlineTagWhitespace   bool   `json:"collapseInlineTagWhitespace" yaml:"collapseInlineTagWhitespace"`
	CollapseWhitespace            bool   `json:"collapseWhitespace" yaml:"collapseWhitespace"`
	MinifyCSS                     bool   `json:"minifyCSS" yaml:"minifyCSS"`
	MinifyJS                      bool   `json:"minifyJS" yaml:"minifyJS"`
	ProcessConditionalComments    bool   `json:"processConditionalComments" yaml:"processConditionalComments"`
	QuoteCharacter                string `json:"quoteCharacter,omitempty" yaml:"quoteCharacter,omitempty"`
	RemoveAttributeQuotes         bool   `json:"removeAttributeQuotes" yaml:"removeAttributeQuotes"`
	RemoveComments                bool   `json:"removeComments" yaml:"removeComments"`
	RemoveOptionalTags            bool   `json:"removeOptionalTags" yaml:"removeOptionalTags"`
	RemoveRedundantAttributes     bool   `json:"removeRedundantAttributes" yaml:"removeRedundantAttributes"`
	RemoveScriptTypeAttributes    bool   `json:"removeScriptTypeAttributes" yaml:"removeScriptTypeAttributes"`
	RemoveStyleLinkTypeAttributes bool   `json:"removeStyleLinkTypeAttributes" yaml:"removeStyleLinkTypeAttributes"`
	SortAttributes                bool   `json:"sortAttributes" yaml:"sortAttributes"`
	SortClassName                 bool   `json:"sortClassName" yaml:"sortClassName"`
	TrimCustomFragments           bool   `json:"trimCustomFragments" yaml:"trimCustomFragments"`
}

var defaultOptions = Options{
	CollapseBooleanAttributes:     true,
	CollapseInlineTagWhitespace:   true,
	CollapseWhitespace:            true,
	MinifyCSS:                     true,
	MinifyJS:                      true,
	ProcessConditionalComments:    true,
	QuoteCharacter:                `"`,
	RemoveComments:                true,
	RemoveOptionalTags:            true,
	RemoveRedundantAttributes:     true,
	RemoveScriptTypeAttributes:    true,
	RemoveStyleLinkTypeAttributes: true,
	SortAttributes:                true,
	SortClassName:                 true,
	TrimCustomFragments:           true,
}

// DefaultOptions returns a copy of the option set used when callers supply
// none.
func DefaultOptions() Options {
	return defaultOptions
}

// Effective picks the option set for a run: the defaults when opts is nil,
// otherwise *opts verbatim. Supplied options are never merged with the
// defaults.
func Effective(opts *Options) Options {
	if opts == nil {
		return defaultOptions
	}
	return *opts
}
