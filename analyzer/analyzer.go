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

package analyzer

import (
	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"

	"fillmore-labs.com/inclusivecode/internal/config"
	"fillmore-labs.com/inclusivecode/internal/run"
)

// Public API constants for the inclusivecode analyzers.
const (
	codeName = "inclusivecode"
	codeDoc  = `inclusivecode reports non-inclusive terms in names, function documentation and string literals`

	commentsName = "inclusivecomments"
	commentsDoc  = `inclusivecomments reports non-inclusive terms in comments`

	url = "https://pkg.go.dev/fillmore-labs.com/inclusivecode"
)

// NewCode creates a new instance of the code analyzer, checking names of types, functions,
// variables and fields, function documentation and string literals.
// It allows for programmatic configuration using [Option], which is useful
// for integrating the analyzer into other tools. For command-line use, the
// pre-configured [Analyzer] variable is typically sufficient.
func NewCode(opts ...Option) *analysis.Analyzer {
	return newCode(makeOptions(opts))
}

func newCode(r *run.Options) *analysis.Analyzer {
	a := &analysis.Analyzer{
		Name:     codeName,
		Doc:      codeDoc,
		URL:      url,
		Run:      r.RunCode,
		Requires: []*analysis.Analyzer{inspect.Analyzer},
	}

	registerFlags(&a.Flags, r, false)

	return a
}

// NewComments creates a new instance of the comments analyzer, checking every word of every comment
// except function documentation, which is checked by the code analyzer unless disabled by [WithCode].
func NewComments(opts ...Option) *analysis.Analyzer {
	return newComments(makeOptions(opts))
}

func newComments(r *run.Options) *analysis.Analyzer {
	a := &analysis.Analyzer{
		Name:     commentsName,
		Doc:      commentsDoc,
		URL:      url,
		Run:      r.RunComments,
		Requires: []*analysis.Analyzer{inspect.Analyzer},
	}

	registerFlags(&a.Flags, r, true)

	return a
}

// New creates the enabled analyzers, by default both the code and the comments analyzer.
// The analyzers share their options, so the flagged terms configuration is loaded once
// and setting the -config flag of either analyzer applies to both.
func New(opts ...Option) []*analysis.Analyzer {
	r := makeOptions(opts)

	analyzers := make([]*analysis.Analyzer, 0, 2)

	if r.Analyzers.Enabled(config.CodeAnalyzer) {
		analyzers = append(analyzers, newCode(r))
	}

	if r.Analyzers.Enabled(config.CommentsAnalyzer) {
		analyzers = append(analyzers, newComments(r))
	}

	return analyzers
}

// makeOptions returns default [run.Options] with overriding [Options] applied.
func makeOptions(opts Options) *run.Options {
	r := run.DefaultOptions()
	opts.apply(r)

	return r
}

var (
	// Analyzer is a pre-configured *[analysis.Analyzer] reporting non-inclusive terms in code.
	Analyzer = NewCode()

	// CommentsAnalyzer is a pre-configured *[analysis.Analyzer] reporting non-inclusive terms in comments.
	CommentsAnalyzer = NewComments()
)
