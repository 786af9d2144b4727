package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

type stubPrompt struct {
	answer bool
	asked  int
}

func (s *stubPrompt) Confirm(context.Context, ConfirmConfig) (bool, error) {
	s.asked++
	return s.answer, nil
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestRun_StdinToStdout(t *testing.T) {
	var stdout bytes.Buffer
	opts := parseFlags([]string{"-parse", "html"})

	err := run(context.Background(), opts, strings.NewReader("<P>hi</P>"), &stdout, nil)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	want := "<!DOCTYPE html><html><head></head><body><p>hi</p></body></html>\n"
	if stdout.String() != want {
		t.Fatalf("stdout mismatch\nwant: %q\n got: %q", want, stdout.String())
	}
}

func TestRun_TemplateWithData(t *testing.T) {
	dir := t.TempDir()
	input := writeFile(t, dir, "page.html", "<UL>{% for n in names %}<LI>{{ n }}{% endfor %}</UL>")
	data := writeFile(t, dir, "data.yaml", "names:\n  - ada\n  - bob\n")

	var stdout bytes.Buffer
	opts := parseFlags([]string{"-input", input, "-data", data})
	if err := run(context.Background(), opts, nil, &stdout, nil); err != nil {
		t.Fatalf("run: %v", err)
	}
	if got := strings.TrimSpace(stdout.String()); got != "<ul><li>ada</li><li>bob</li></ul>" {
		t.Fatalf("unexpected output %q", got)
	}
}

func TestRun_ConfigFileWithFlagOverride(t *testing.T) {
	dir := t.TempDir()
	cfg := writeFile(t, dir, "ntml.yaml", "parse: html\nsanitize: strict\n")

	var stdout bytes.Buffer
	opts := parseFlags([]string{"-config", cfg, "-parse", "fragment"})
	if err := run(context.Background(), opts, strings.NewReader("<p>x</p>"), &stdout, nil); err != nil {
		t.Fatalf("run: %v", err)
	}
	if got := strings.TrimSpace(stdout.String()); got != "<p>x</p>" {
		t.Fatalf("flag did not override config: %q", got)
	}
}

func TestRun_InvalidParseFlag(t *testing.T) {
	opts := parseFlags([]string{"-parse", "doc"})
	err := run(context.Background(), opts, strings.NewReader("<p>"), &bytes.Buffer{}, nil)
	if err == nil || !strings.Contains(err.Error(), `"doc"`) {
		t.Fatalf("expected invalid parse option error, got %v", err)
	}
}

func TestRun_OverwritePrompt(t *testing.T) {
	dir := t.TempDir()
	output := writeFile(t, dir, "out.html", "old")

	declined := &stubPrompt{answer: false}
	opts := parseFlags([]string{"-output", output})
	err := run(context.Background(), opts, strings.NewReader("<b>new</b>"), &bytes.Buffer{}, declined)
	if !errors.Is(err, errAborted) {
		t.Fatalf("expected errAborted, got %v", err)
	}
	if declined.asked != 1 {
		t.Fatalf("expected one prompt, got %d", declined.asked)
	}
	if data, _ := os.ReadFile(output); string(data) != "old" {
		t.Fatalf("file overwritten after decline: %q", data)
	}

	accepted := &stubPrompt{answer: true}
	if err := run(context.Background(), opts, strings.NewReader("<b>new</b>"), &bytes.Buffer{}, accepted); err != nil {
		t.Fatalf("run: %v", err)
	}
	if data, _ := os.ReadFile(output); string(data) != "<b>new</b>" {
		t.Fatalf("unexpected file content %q", data)
	}
}

func TestRun_ForceSkipsPrompt(t *testing.T) {
	dir := t.TempDir()
	output := writeFile(t, dir, "out.html", "old")

	prompt := &stubPrompt{}
	opts := parseFlags([]string{"-output", output, "-force", "-minify"})
	if err := run(context.Background(), opts, strings.NewReader("<div>\n  <b>x</b>\n</div>"), &bytes.Buffer{}, prompt); err != nil {
		t.Fatalf("run: %v", err)
	}
	if prompt.asked != 0 {
		t.Fatal("prompt shown despite -force")
	}
	data, err := os.ReadFile(output)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if strings.Contains(string(data), "\n") {
		t.Fatalf("output not minified: %q", data)
	}
}
