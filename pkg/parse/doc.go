// Package parse exposes the public contracts for the parse stage: the closed
// set of parse modes, the directive resolver that maps caller input onto a
// mode, and the Parser interface. The golang.org/x/net/html backed
// implementation lives under internal/htmlparse so the dependency stays hidden
// from consumers.
package parse
