package htmlparse_test

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-ntml/internal/htmlparse"
	"github.com/goliatone/go-ntml/pkg/parse"
	"github.com/goliatone/go-ntml/pkg/testsupport"
)

func TestParser_Fragment(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string
	}{
		{name: "paragraph", input: "<p>hi</p>", want: "<p>hi</p>"},
		{name: "uppercase tags", input: "<P CLASS='x'>hi</P>", want: `<p class="x">hi</p>`},
		{name: "unclosed", input: "<ul><li>a<li>b</ul>", want: "<ul><li>a</li><li>b</li></ul>"},
		{name: "text only", input: "plain & simple", want: "plain &amp; simple"},
		{name: "table row", input: "<tr><td>1</td></tr>", want: "<tr><td>1</td></tr>"},
		{name: "empty", input: "", want: ""},
	}

	parser := htmlparse.New()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := parser.Parse(context.Background(), tc.input, parse.ModeFragment)
			if err != nil {
				t.Fatalf("parse: %v", err)
			}
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Fatalf("fragment mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParser_Document(t *testing.T) {
	got, err := htmlparse.New().Parse(context.Background(), "<P CLASS='x'>hi</P>", parse.ModeHTML)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	want := `<!DOCTYPE html><html><head></head><body><p class="x">hi</p></body></html>`
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("document mismatch (-want +got):\n%s", diff)
	}
}

func TestParser_RoundTripIsStable(t *testing.T) {
	inputs := []string{
		"<p>hi</p>",
		"<div id=a><span>x</div>",
		"<P CLASS='x'>hi</P>",
		"<!-- note --><b>bold</b>",
		"<title>t</title><p>body",
	}

	parser := htmlparse.New()
	ctx := context.Background()
	for _, mode := range []parse.Mode{parse.ModeFragment, parse.ModeHTML} {
		for _, input := range inputs {
			first, err := parser.Parse(ctx, input, mode)
			if err != nil {
				t.Fatalf("%s first parse: %v", mode, err)
			}
			second, err := parser.Parse(ctx, first, mode)
			if err != nil {
				t.Fatalf("%s second parse: %v", mode, err)
			}
			if diff := cmp.Diff(first, second); diff != "" {
				t.Fatalf("%s round trip for %q not stable (-first +second):\n%s", mode, input, diff)
			}
		}
	}
}

func TestParser_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := htmlparse.New().Parse(ctx, "<p>", parse.ModeFragment); err == nil {
		t.Fatal("expected context error")
	}
}

func TestParser_DocumentGolden(t *testing.T) {
	input := "<title>Report</title><h1 class=title>Q3</h1><table><tr><td>1</td></tr></table>"

	got, err := htmlparse.New().Parse(testsupport.Context(), input, parse.ModeHTML)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	testsupport.AssertGolden(t, "testdata/document.golden.html", got)
}
