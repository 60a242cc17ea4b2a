// Copyright 2025-2026 Oliver Eikemeier. All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

package run

import (
	"context"
	"errors"
	"fmt"
	"go/ast"
	"iter"
	"log/slog"
	"runtime/trace"
	"slices"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"

	"fillmore-labs.com/inclusivecode/internal/astutil"
	"fillmore-labs.com/inclusivecode/internal/candidate"
	"fillmore-labs.com/inclusivecode/internal/config"
	"fillmore-labs.com/inclusivecode/internal/report"
	"fillmore-labs.com/inclusivecode/internal/terms"
)

// ErrResultMissing is returned when a required analyzer result is missing.
// This typically indicates a configuration error where the analyzer's
// Requires field is not properly set.
var ErrResultMissing = errors.New("analyzer result missing")

// fileCheck checks the candidates of a single file.
type fileCheck func(ctx context.Context, file fileInfo) error

// fileInfo holds everything needed to check one file.
type fileInfo struct {
	current  astutil.CurrentFile
	cursor   inspector.Cursor
	matcher  terms.Matcher
	reporter report.Reporter
}

// check matches the candidates against the flagged terms and reports violations.
func (f fileInfo) check(candidates iter.Seq[candidate.Candidate]) error {
	for c := range candidates {
		v, found, err := f.matcher.Check(c.Text)
		if err != nil {
			return err
		}

		if found {
			f.reporter.Report(c, v)
		}
	}

	return nil
}

// RunCode executes the code analyzer, checking names, documentation and string literals.
func (r *Options) RunCode(p *analysis.Pass) (any, error) {
	fileNames := r.Behavior.Enabled(config.CheckFileNames)

	return r.run(p, "InclusiveCode", func(ctx context.Context, f fileInfo) error {
		defer trace.StartRegion(ctx, "CheckCode").End()

		if fileNames {
			name := candidate.File(f.current.Name(), f.cursor.Node().(*ast.File))
			if err := f.check(slices.Values([]candidate.Candidate{name})); err != nil {
				return err
			}
		}

		return f.check(candidate.Code(f.cursor))
	})
}

// RunComments executes the comments analyzer, checking every word of every comment.
//
// Function documentation is checked as a whole by the code analyzer, when it is disabled
// the words of documentation comments are checked here.
func (r *Options) RunComments(p *analysis.Pass) (any, error) {
	funcDocs := !r.Analyzers.Enabled(config.CodeAnalyzer)

	return r.run(p, "InclusiveComments", func(ctx context.Context, f fileInfo) error {
		defer trace.StartRegion(ctx, "CheckComments").End()

		return f.check(candidate.Comments(p.Fset, f.cursor.Node().(*ast.File), funcDocs))
	})
}

// run loads the flagged terms and calls check for every file of the package that is not excluded.
func (r *Options) run(p *analysis.Pass, task string, check fileCheck) (any, error) {
	// Retrieves the [inspector.Inspector] from the pass results.
	in, ok := p.ResultOf[inspect.Analyzer].(*inspector.Inspector)
	if !ok {
		return nil, fmt.Errorf("%s: %s %w", p.Analyzer.Name, inspect.Analyzer.Name, ErrResultMissing)
	}

	cfg, err := r.loader.Load()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", p.Analyzer.Name, err)
	}

	ctx := context.Background()

	ctx, t := trace.NewTask(ctx, task)
	defer t.End()

	trace.Log(ctx, "package", p.Pkg.Path())

	slog.LogAttrs(ctx, slog.LevelDebug, "Running analyzer",
		slog.String("analyzer", p.Analyzer.Name), slog.String("package", p.Pkg.Path()), slog.Any("options", r))

	fix := r.Behavior.Enabled(config.SuggestFixes)

	// Loop over all files
	for f := range in.Root().Children() {
		file := f.Node().(*ast.File)

		currentFile := astutil.NewCurrentFile(p.Fset, file)
		if !currentFile.Valid() {
			astutil.InternalError(p, file, "File %s without valid info", file.Name.Name)

			continue
		}

		// Skip generated files
		if currentFile.Generated() && !r.Behavior.Enabled(config.IncludeGenerated) {
			continue
		}

		// Skip files with nolint comment
		if currentFile.NoLint() {
			continue
		}

		matcher := cfg.Matcher(currentFile.Name())
		if matcher.Len() == 0 {
			continue
		}

		info := fileInfo{
			current:  currentFile,
			cursor:   f,
			matcher:  matcher,
			reporter: report.New(p, currentFile, fix),
		}

		if err := check(ctx, info); err != nil {
			return nil, fmt.Errorf("%s: %w", p.Analyzer.Name, err)
		}
	}

	return nil, nil
}
