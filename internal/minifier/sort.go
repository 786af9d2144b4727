package minifier

import (
	"errors"
	"io"
	"sort"
	"strings"

	"golang.org/x/net/html"
)

// sortAttributes rewrites start tags so attributes (and the tokens of class
// attributes) appear in lexicographic order. Everything that is not a start
// tag is copied through byte for byte.
func sortAttributes(content string, attrs, classes bool) (string, error) {
	z := html.NewTokenizer(strings.NewReader(content))

	var sb strings.Builder
	sb.Grow(len(content))
	for {
		tt := z.Next()
		if tt == html.ErrorToken {
			if err := z.Err(); !errors.Is(err, io.EOF) {
				return "", err
			}
			return sb.String(), nil
		}

		if tt != html.StartTagToken && tt != html.SelfClosingTagToken {
			sb.Write(z.Raw())
			continue
		}

		tok := z.Token()
		if len(tok.Attr) == 0 {
			sb.WriteString(tok.String())
			continue
		}
		if classes {
			for i := range tok.Attr {
				if tok.Attr[i].Namespace == "" && tok.Attr[i].Key == "class" {
					tok.Attr[i].Val = sortClassNames(tok.Attr[i].Val)
				}
			}
		}
		if attrs {
			sort.SliceStable(tok.Attr, func(i, j int) bool {
				if tok.Attr[i].Namespace != tok.Attr[j].Namespace {
					return tok.Attr[i].Namespace < tok.Attr[j].Namespace
				}
				return tok.Attr[i].Key < tok.Attr[j].Key
			})
		}
		sb.WriteString(tok.String())
	}
}

func sortClassNames(value string) string {
	names := strings.Fields(value)
	if len(names) < 2 {
		return strings.Join(names, " ")
	}
	sort.Strings(names)
	return strings.Join(names, " ")
}
