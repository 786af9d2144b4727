package ntml_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	ntml "github.com/goliatone/go-ntml"
	"github.com/goliatone/go-ntml/pkg/parse"
	"github.com/goliatone/go-ntml/pkg/render/template/gotemplate"
	"github.com/goliatone/go-ntml/pkg/sanitize"
)

func TestNew_Defaults(t *testing.T) {
	html := ntml.New()

	got, err := html(context.Background(), []string{"<P>", "</P>"}, func() string { return "hi" })
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if diff := cmp.Diff("<p>hi</p>", got); diff != "" {
		t.Fatalf("output mismatch (-want +got):\n%s", diff)
	}
}

func TestParser_Modes(t *testing.T) {
	ctx := context.Background()

	doc, err := ntml.Parser(ctx, "<P CLASS='x'>hi</P>", "HTML")
	if err != nil {
		t.Fatalf("parse html: %v", err)
	}
	if want := `<!DOCTYPE html><html><head></head><body><p class="x">hi</p></body></html>`; doc != want {
		t.Fatalf("document mismatch\nwant: %q\n got: %q", want, doc)
	}

	frag, err := ntml.Parser(ctx, "<P CLASS='x'>hi</P>", false)
	if err != nil {
		t.Fatalf("parse fragment: %v", err)
	}
	if want := `<p class="x">hi</p>`; frag != want {
		t.Fatalf("fragment mismatch\nwant: %q\n got: %q", want, frag)
	}

	if _, err := ntml.Parser(ctx, "<p>", "doc"); !errors.Is(err, parse.ErrInvalidParseOption) {
		t.Fatalf("expected ErrInvalidParseOption, got %v", err)
	}
}

func TestMinifier_Defaults(t *testing.T) {
	got, err := ntml.Minifier(context.Background(), "<div>\n  <!-- c -->\n  <b>x</b>\n</div>", nil)
	if err != nil {
		t.Fatalf("minify: %v", err)
	}
	if strings.Contains(got, "<!--") || strings.Contains(got, "\n") {
		t.Fatalf("output not minified: %q", got)
	}
}

func TestRender_WithPongoTemplate(t *testing.T) {
	engine, err := gotemplate.New()
	if err != nil {
		t.Fatalf("engine: %v", err)
	}

	got, err := ntml.Render(context.Background(), engine,
		"<UL>{% for item in items %}<LI>{{ item }}{% endfor %}</UL>",
		map[string]any{"items": []string{"a", "b"}},
	)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if diff := cmp.Diff("<ul><li>a</li><li>b</li></ul>", got); diff != "" {
		t.Fatalf("render mismatch (-want +got):\n%s", diff)
	}
}

func TestDefaultMinifyOptions(t *testing.T) {
	opts := ntml.DefaultMinifyOptions()
	if !opts.CollapseWhitespace || opts.QuoteCharacter != `"` {
		t.Fatalf("unexpected defaults: %+v", opts)
	}
}

func TestNewPipeline_WithBuiltInEngines(t *testing.T) {
	parser := ntml.NewParser()
	var parsed []parse.Mode
	counting := parse.ParserFunc(func(ctx context.Context, content string, mode parse.Mode) (string, error) {
		parsed = append(parsed, mode)
		return parser.Parse(ctx, content, mode)
	})

	p := ntml.NewPipeline(
		ntml.WithParser(counting),
		ntml.WithMinifier(ntml.NewMinifier()),
		ntml.WithMinify(true),
		ntml.WithSanitizer(sanitize.Func(strings.ToUpper)),
	)

	got, err := p.Func()(context.Background(), []string{"<div>\n  <b>", "</b>\n</div>"}, "x")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if !strings.Contains(got, "<b>X</b>") || strings.Contains(got, "\n") {
		t.Fatalf("unexpected output %q", got)
	}
	if diff := cmp.Diff([]parse.Mode{parse.ModeFragment}, parsed); diff != "" {
		t.Fatalf("parse calls mismatch (-want +got):\n%s", diff)
	}
	if !p.Config().Minify {
		t.Fatal("expected minify enabled in pipeline config")
	}
}
