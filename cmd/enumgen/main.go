// Copyright 2020-2025 Buf Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// enumgen generates extended enums for use with package enumx.
//
// To generate enums for a given package, use
//
//	//go:generate go run github.com/bufbuild/enumx/cmd/enumgen colors.yaml
//
// Each argument is a YAML file (or a doublestar glob matching YAML files)
// containing an array of the Enum type defined in this package. The output for
// foo.yaml is written to foo.go, in the package named by $GOPACKAGE, which
// go generate sets. Pass -package to override it.
//
// With -check, nothing is written; instead, enumgen fails if any output file
// is missing or out of date, and prints a diff.
package main

import (
	"bytes"
	"context"
	"debug/buildinfo"
	_ "embed"
	"errors"
	"flag"
	"fmt"
	"go/token"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"text/template"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/pmezard/go-difflib/difflib"
	"golang.org/x/sync/errgroup"
	"golang.org/x/tools/imports"
	"gopkg.in/yaml.v3"
)

const enumxImport = "github.com/bufbuild/enumx"

// defaultBinary is used in the generated header when the running binary's
// build info is unavailable.
const defaultBinary = "github.com/bufbuild/enumx/cmd/enumgen"

// errStale is returned by -check for output files that need regenerating.
var errStale = errors.New("generated file is out of date")

//go:embed enum.go.tmpl
var tmplText string

var tmpl = template.Must(template.New("enum.go.tmpl").Funcs(template.FuncMap{
	"makeDocs": makeDocs,
}).Parse(tmplText))

// Options configures a generator run.
type Options struct {
	Package string // The package of the generated files.
	Binary  string // The tool named in the "Code generated" header.
	Check   bool   // Whether to diff against existing outputs instead of writing.
	Jobs    int    // Maximum number of files to process at once.
}

// makeDocs converts a data into doc comments.
func makeDocs(data, indent string) string {
	if data == "" {
		return ""
	}

	var out strings.Builder
	for _, line := range strings.Split(strings.TrimSpace(data), "\n") {
		out.WriteString(indent)
		if line == "" {
			out.WriteString("//\n")
			continue
		}
		out.WriteString("// ")
		out.WriteString(line)
		out.WriteString("\n")
	}
	return out.String()
}

// Render parses the given config and returns the path of the file it
// generates, along with that file's formatted contents.
func Render(config string, opts Options) (path string, src []byte, err error) {
	if filepath.Ext(config) != ".yaml" {
		return "", nil, errors.New("file argument must end in .yaml")
	}
	if !token.IsIdentifier(opts.Package) {
		return "", nil, fmt.Errorf("invalid package name %q; set $GOPACKAGE or pass -package", opts.Package)
	}

	input := struct {
		Binary, Package, Path, Config string
		StdImports, Imports           []string
		YAML                          []*Enum
	}{
		Binary:  opts.Binary,
		Package: opts.Package,
		Path:    strings.TrimSuffix(config, ".yaml") + ".go",
		Config:  filepath.Base(config),
	}
	if input.Binary == "" {
		input.Binary = defaultBinary
	}

	text, err := os.ReadFile(config)
	if err != nil {
		return "", nil, err
	}
	dec := yaml.NewDecoder(bytes.NewReader(text))
	dec.KnownFields(true)
	if err := dec.Decode(&input.YAML); err != nil {
		if errors.Is(err, io.EOF) {
			return "", nil, errors.New("config contains no enums")
		}
		return "", nil, err
	}
	if len(input.YAML) == 0 {
		return "", nil, errors.New("config contains no enums")
	}

	for _, e := range input.YAML {
		for _, m := range e.Methods {
			input.Imports = append(input.Imports, enumxImport)
			if m.Kind == MethodAll {
				input.StdImports = append(input.StdImports, "iter")
			}
		}
	}
	input.Imports = slices.Compact(input.Imports)
	input.StdImports = slices.Compact(input.StdImports)

	// Every enum shares the package block, and the file block with the
	// imports.
	imported := make(map[string]bool)
	for _, imp := range slices.Concat(input.StdImports, input.Imports) {
		imported[imp[strings.LastIndexByte(imp, '/')+1:]] = true
	}
	names := make(map[string]bool)
	var errs []error
	for _, e := range input.YAML {
		if err := e.Validate(); err != nil {
			errs = append(errs, err)
		}
		declared := e.Declared()
		slices.Sort(declared)
		for _, name := range slices.Compact(declared) {
			switch {
			case imported[name]:
				errs = append(errs, fmt.Errorf("%s: %q conflicts with an imported package", e.Name, name))
			case names[name]:
				errs = append(errs, fmt.Errorf("%s: %q is declared by more than one enum", e.Name, name))
			}
			names[name] = true
		}
	}
	if err := errors.Join(errs...); err != nil {
		return "", nil, err
	}

	var out bytes.Buffer
	if err := tmpl.Execute(&out, input); err != nil {
		return "", nil, err
	}
	src, err = imports.Process(input.Path, out.Bytes(), &imports.Options{
		Comments:   true,
		TabIndent:  true,
		TabWidth:   8,
		FormatOnly: true,
	})
	if err != nil {
		return "", nil, fmt.Errorf("formatting generated code: %w", err)
	}
	return input.Path, src, nil
}

// generate renders a single config and writes or checks its output.
func generate(logger *slog.Logger, config string, opts Options) error {
	path, src, err := Render(config, opts)
	if err != nil {
		return err
	}

	if !opts.Check {
		if err := os.WriteFile(path, src, 0o644); err != nil {
			return err
		}
		logger.Debug("wrote enums", slog.String("config", config), slog.String("output", path))
		return nil
	}

	old, err := os.ReadFile(path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	if bytes.Equal(old, src) {
		logger.Debug("enums up to date", slog.String("output", path))
		return nil
	}

	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(string(old)),
		B:        difflib.SplitLines(string(src)),
		FromFile: path,
		ToFile:   path + " (generated)",
		Context:  3,
	})
	if err != nil {
		return err
	}
	return fmt.Errorf("%w: %s\n%s", errStale, path, diff)
}

// expand resolves the command-line arguments into a sorted, deduplicated list
// of config files.
func expand(args []string) ([]string, error) {
	var configs []string
	for _, arg := range args {
		if !strings.ContainsAny(arg, "*?[{") {
			configs = append(configs, arg)
			continue
		}

		matches, err := doublestar.FilepathGlob(arg, doublestar.WithFilesOnly())
		if err != nil {
			return nil, fmt.Errorf("%s: %w", arg, err)
		}
		if len(matches) == 0 {
			return nil, fmt.Errorf("%s: pattern matched no files", arg)
		}
		configs = append(configs, matches...)
	}
	slices.Sort(configs)
	return slices.Compact(configs), nil
}

// Run generates every config in configs, and returns every failure, joined.
func Run(ctx context.Context, logger *slog.Logger, configs []string, opts Options) error {
	errs := make([]error, len(configs))

	g, ctx := errgroup.WithContext(ctx)
	if opts.Jobs > 0 {
		g.SetLimit(opts.Jobs)
	}
	for i, config := range configs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				errs[i] = fmt.Errorf("%s: %w", config, err)
				return nil
			}
			if err := generate(logger, config, opts); err != nil {
				logger.Error("enum generation failed", slog.String("config", config), slog.Any("error", err))
				errs[i] = fmt.Errorf("%s: %w", config, err)
			}
			return nil
		})
	}
	_ = g.Wait()

	return errors.Join(errs...)
}

// run is main, with its environment made explicit. Returns the exit code.
func run(ctx context.Context, args []string, stderr io.Writer, getenv func(string) string) int {
	flags := flag.NewFlagSet("enumgen", flag.ContinueOnError)
	flags.SetOutput(stderr)

	opts := Options{Package: getenv("GOPACKAGE")}
	flags.StringVar(&opts.Package, "package", opts.Package, "package name for generated files (default $GOPACKAGE)")
	flags.BoolVar(&opts.Check, "check", false, "fail if generated files are out of date, instead of writing them")
	flags.IntVar(&opts.Jobs, "j", 4, "maximum number of configs to process in parallel")
	verbose := flags.Bool("v", false, "enable debug logging")
	if err := flags.Parse(args); err != nil {
		return 2
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	if flags.NArg() == 0 {
		fmt.Fprintln(stderr, "usage: enumgen [flags] config.yaml...")
		flags.PrintDefaults()
		return 2
	}

	if info, err := buildinfo.ReadFile(os.Args[0]); err == nil {
		opts.Binary = info.Path
	}

	configs, err := expand(flags.Args())
	if err != nil {
		logger.Error("invalid arguments", slog.Any("error", err))
		return 2
	}
	logger.Debug("generating enums", slog.Int("configs", len(configs)), slog.Bool("check", opts.Check))

	if err := Run(ctx, logger, configs, opts); err != nil {
		return 1
	}
	return 0
}

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stderr, os.Getenv))
}
