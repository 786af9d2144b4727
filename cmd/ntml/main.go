package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-ntml/internal/logging"
	"github.com/goliatone/go-ntml/pkg/assemble"
	"github.com/goliatone/go-ntml/pkg/config"
	"github.com/goliatone/go-ntml/pkg/pipeline"
	"github.com/goliatone/go-ntml/pkg/render/template/gotemplate"
)

type cliOptions struct {
	input   string
	output  string
	data    string
	config  string
	parse   string
	minify  bool
	force   bool
	verbose bool

	// set records which flags were given explicitly so they can override the
	// config file.
	set map[string]bool
}

func main() {
	opts := parseFlags(os.Args[1:])
	if err := run(context.Background(), opts, os.Stdin, os.Stdout, surveyDriver{}); err != nil {
		log.Fatalf("ntml: %v", err)
	}
}

func parseFlags(args []string) cliOptions {
	fs := flag.NewFlagSet("ntml", flag.ExitOnError)
	opts := cliOptions{}
	fs.StringVar(&opts.input, "input", "", "HTML or template file (stdin if empty)")
	fs.StringVar(&opts.output, "output", "", "output file (stdout if empty)")
	fs.StringVar(&opts.data, "data", "", "JSON/YAML data file; renders the input as a pongo2 template")
	fs.StringVar(&opts.config, "config", "", "JSON/YAML configuration file")
	fs.StringVar(&opts.parse, "parse", "", `parse directive: "html" or "fragment"`)
	fs.BoolVar(&opts.minify, "minify", false, "minify the parsed output")
	fs.BoolVar(&opts.force, "force", false, "overwrite the output file without asking")
	fs.BoolVar(&opts.verbose, "verbose", false, "log pipeline stages to stderr")
	_ = fs.Parse(args)

	opts.set = make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { opts.set[f.Name] = true })
	return opts
}

func run(ctx context.Context, opts cliOptions, stdin io.Reader, stdout io.Writer, prompt PromptDriver) error {
	logger := logging.NewNop()
	if opts.verbose {
		logger = logging.New(slog.LevelDebug)
	}

	options, err := pipelineOptions(opts)
	if err != nil {
		return err
	}
	p := pipeline.New(append(options, pipeline.WithLogger(logger))...)

	out, err := process(ctx, p, opts, stdin)
	if err != nil {
		return err
	}

	if opts.output == "" {
		_, err := fmt.Fprintln(stdout, out)
		return err
	}

	if !opts.force {
		ok, err := confirmOverwrite(ctx, prompt, opts.output)
		if err != nil {
			return err
		}
		if !ok {
			return errAborted
		}
	}
	if err := os.WriteFile(opts.output, []byte(out), 0o644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	logger.Debug("output written", "path", opts.output, "bytes", len(out))
	return nil
}

func pipelineOptions(opts cliOptions) ([]pipeline.Option, error) {
	file := config.File{}
	if opts.config != "" {
		loaded, err := config.Load(opts.config)
		if err != nil {
			return nil, err
		}
		file = loaded
	}
	if opts.set["parse"] {
		file.Parse = opts.parse
	}
	if opts.set["minify"] {
		file.Minify = opts.minify
	}
	if err := file.Validate(); err != nil {
		return nil, err
	}
	return file.Options()
}

func process(ctx context.Context, p *pipeline.Pipeline, opts cliOptions, stdin io.Reader) (string, error) {
	content, err := readInput(opts.input, stdin)
	if err != nil {
		return "", err
	}

	if opts.data == "" {
		return p.Execute(ctx, assemble.Tag([]string{content}))
	}

	data, err := loadData(opts.data)
	if err != nil {
		return "", err
	}

	ext := filepath.Ext(opts.input)
	if ext == "" {
		engine, err := gotemplate.New()
		if err != nil {
			return "", err
		}
		rendered, err := engine.RenderString(content, data)
		if err != nil {
			return "", err
		}
		return p.Finish(ctx, rendered)
	}

	engine, err := gotemplate.New(
		gotemplate.WithBaseDir(filepath.Dir(opts.input)),
		gotemplate.WithExtension(ext),
	)
	if err != nil {
		return "", err
	}
	return p.Render(ctx, engine, strings.TrimSuffix(filepath.Base(opts.input), ext), data)
}

func readInput(path string, stdin io.Reader) (string, error) {
	if path == "" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read input: %w", err)
	}
	return string(data), nil
}

func loadData(path string) (map[string]any, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read data: %w", err)
	}
	data := map[string]any{}
	if err := json.Unmarshal(raw, &data); err == nil {
		return data, nil
	}
	data = map[string]any{}
	if err := yaml.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("parse data %s: invalid JSON or YAML", path)
	}
	return data, nil
}

func confirmOverwrite(ctx context.Context, prompt PromptDriver, path string) (bool, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return true, nil
		}
		return false, err
	}
	if prompt == nil {
		return false, fmt.Errorf("%s exists; pass -force to overwrite", path)
	}
	return prompt.Confirm(ctx, ConfirmConfig{
		Message: fmt.Sprintf("%s exists. Overwrite?", path),
		Help:    "Pass -force to skip this prompt.",
	})
}
