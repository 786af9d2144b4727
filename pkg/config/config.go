// Package config loads pipeline configuration from JSON or YAML documents.
//
// A configuration file looks like:
//
//	minify: true
//	parse: html
//	sanitize: ugc
//	minifyOptions:
//	  collapseWhitespace: true
//	  removeComments: true
//
// The parse key accepts the same directives as the pipeline ("html",
// "fragment", true, false). When minifyOptions is present it replaces the
// default option set entirely.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-ntml/pkg/minify"
	"github.com/goliatone/go-ntml/pkg/parse"
	"github.com/goliatone/go-ntml/pkg/pipeline"
	"github.com/goliatone/go-ntml/pkg/sanitize"
)

// ErrConfig wraps every configuration loading failure.
var ErrConfig = errors.New("config: invalid configuration")

// File is the on-disk configuration shape.
type File struct {
	Minify        bool            `json:"minify" yaml:"minify"`
	Parse         any             `json:"parse,omitempty" yaml:"parse,omitempty"`
	Sanitize      string          `json:"sanitize,omitempty" yaml:"sanitize,omitempty"`
	MinifyOptions *minify.Options `json:"minifyOptions,omitempty" yaml:"minifyOptions,omitempty"`
}

// Load reads a configuration file from disk.
func Load(path string) (File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return File{}, fmt.Errorf("%w: read %s: %v", ErrConfig, path, err)
	}
	return Parse(data, path)
}

// LoadFS reads a configuration file from fsys.
func LoadFS(fsys fs.FS, path string) (File, error) {
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return File{}, fmt.Errorf("%w: read %s: %v", ErrConfig, path, err)
	}
	return Parse(data, path)
}

// Parse decodes JSON, falling back to YAML, and validates the result. source
// only labels error messages.
func Parse(data []byte, source string) (File, error) {
	if len(strings.TrimSpace(string(data))) == 0 {
		return File{}, fmt.Errorf("%w: file %s is empty", ErrConfig, source)
	}

	var file File
	if err := json.Unmarshal(data, &file); err != nil {
		file = File{}
		if yerr := yaml.Unmarshal(data, &file); yerr != nil {
			return File{}, fmt.Errorf("%w: parse %s: invalid JSON or YAML", ErrConfig, source)
		}
	}

	if err := file.Validate(); err != nil {
		return File{}, fmt.Errorf("%w: %s: %v", ErrConfig, source, err)
	}
	return file, nil
}

// Validate checks the parse directive and sanitiser policy.
func (f File) Validate() error {
	if f.Parse != nil {
		if _, err := parse.ResolveMode(f.Parse); err != nil {
			return err
		}
	}
	if _, err := sanitize.ForPolicy(sanitize.Policy(f.Sanitize)); err != nil {
		return err
	}
	return nil
}

// PipelineConfig converts the file into a pipeline.Config.
func (f File) PipelineConfig() pipeline.Config {
	cfg := pipeline.Config{
		Minify: f.Minify,
		Parse:  f.Parse,
	}
	if f.MinifyOptions != nil {
		opts := *f.MinifyOptions
		cfg.MinifyOptions = &opts
	}
	return cfg
}

// Options converts the file into pipeline options, including the sanitiser
// when a policy is named.
func (f File) Options() ([]pipeline.Option, error) {
	options := []pipeline.Option{pipeline.WithConfig(f.PipelineConfig())}

	s, err := sanitize.ForPolicy(sanitize.Policy(f.Sanitize))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfig, err)
	}
	if s != nil {
		options = append(options, pipeline.WithSanitizer(s))
	}
	return options, nil
}
