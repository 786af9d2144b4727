// Package ntml is a tagged-template helper for HTML. A template invocation
// (literal segments plus interpolated values) is resolved, assembled, parsed
// as a document or fragment to canonicalise the markup, and optionally
// minified.
//
// Interpolated values that are funcs taking no arguments (or a single
// context.Context) and returning a value, optionally followed by an error,
// are invoked concurrently before assembly. Other func signatures are
// rejected. Everything else is interpolated as-is.
//
// A nil value, or a nil pointer, interpolates as the empty string rather than
// "null". Byte slices are read as UTF-8, Stringers and errors use their
// methods, and other values are formatted with fmt.Sprint.
package ntml
