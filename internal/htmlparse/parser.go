package htmlparse

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/goliatone/go-ntml/pkg/parse"
)

const doctype = "<!doctype html>"

// Parser implements parse.Parser on top of golang.org/x/net/html.
type Parser struct{}

var _ parse.Parser = Parser{}

// New returns the x/net/html backed parser.
func New() Parser {
	return Parser{}
}

// Parse parses content in the requested mode and renders the tree back to
// text. Documents get a doctype prepended before parsing; fragments are parsed
// inside a <template> context so no html/head/body wrapper is synthesised and
// table parts survive at the top level.
func (Parser) Parse(ctx context.Context, content string, mode parse.Mode) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	switch mode {
	case parse.ModeHTML:
		return parseDocument(content)
	case parse.ModeFragment:
		return parseFragment(content)
	default:
		return "", &parse.InvalidOptionError{Value: mode}
	}
}

func parseDocument(content string) (string, error) {
	doc, err := html.Parse(strings.NewReader(doctype + content))
	if err != nil {
		return "", fmt.Errorf("%w: document: %v", parse.ErrParse, err)
	}

	var sb strings.Builder
	if err := html.Render(&sb, doc); err != nil {
		return "", fmt.Errorf("%w: render document: %v", parse.ErrParse, err)
	}
	return sb.String(), nil
}

func parseFragment(content string) (string, error) {
	nodes, err := html.ParseFragment(strings.NewReader(content), fragmentContext())
	if err != nil {
		return "", fmt.Errorf("%w: fragment: %v", parse.ErrParse, err)
	}

	var sb strings.Builder
	for _, node := range nodes {
		if err := html.Render(&sb, node); err != nil {
			return "", fmt.Errorf("%w: render fragment: %v", parse.ErrParse, err)
		}
	}
	return sb.String(), nil
}

func fragmentContext() *html.Node {
	return &html.Node{
		Type:     html.ElementNode,
		DataAtom: atom.Template,
		Data:     atom.Template.String(),
	}
}
