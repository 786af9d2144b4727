// Package template defines the template engine seam used to produce markup
// before it enters the parse/minify pipeline. The pongo2 backed adapter lives
// in the gotemplate subpackage.
package template
