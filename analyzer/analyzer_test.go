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

package analyzer_test

import (
	"path/filepath"
	"slices"
	"testing"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/analysistest"

	. "fillmore-labs.com/inclusivecode/analyzer"
)

func TestAnalyzer(t *testing.T) {
	t.Parallel()

	testdata := analysistest.TestData()
	terms := WithConfigPath(filepath.Join(testdata, "inclusive_code_flagged_terms.yml"))

	tests := []struct {
		name     string
		dir      string
		comments bool
		options  Option
		fix      bool
	}{
		{
			name:    "Code",
			dir:     "./code",
			options: terms,
		},
		{
			name:    "Generated",
			dir:     "./generated",
			options: Options{terms, WithGenerated(true)},
		},
		{
			name:    "FileNames",
			dir:     "./filenames",
			options: Options{terms, WithFileNames(true)},
		},
		{
			name:    "Legacy",
			dir:     "./legacy",
			options: terms,
		},
		{
			name:     "Comments",
			dir:      "./comments",
			comments: true,
			options:  terms,
			fix:      true,
		},
		{
			name:     "CommentsNoFix",
			dir:      "./comments",
			comments: true,
			options:  Options{terms, WithFix(false)},
		},
		{
			name:     "CommentsFuncDocs",
			dir:      "./funcdocs",
			comments: true,
			options:  Options{terms, WithCode(false)},
		},
		{
			name:     "LegacyComments",
			dir:      "./legacy/comments",
			comments: true,
			options:  terms,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var a *analysis.Analyzer
			if tt.comments {
				a = NewComments(tt.options)
			} else {
				a = NewCode(tt.options)
			}

			if tt.fix {
				analysistest.RunWithSuggestedFixes(t, testdata, a, tt.dir)
			} else {
				analysistest.Run(t, testdata, a, tt.dir)
			}
		})
	}
}

func TestNew(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		options Option
		want    []string
	}{
		{"default", nil, []string{"inclusivecode", "inclusivecomments"}},
		{"code", WithComments(false), []string{"inclusivecode"}},
		{"comments", WithCode(false), []string{"inclusivecomments"}},
		{"none", Options{WithCode(false), WithComments(false)}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var names []string
			for _, a := range New(tt.options) {
				names = append(names, a.Name)
			}

			if !slices.Equal(names, tt.want) {
				t.Errorf("Got analyzers %q, want %q", names, tt.want)
			}
		})
	}
}

func TestNewSharedConfig(t *testing.T) {
	t.Parallel()

	as := New()
	if len(as) != 2 {
		t.Fatalf("Got %d analyzers, want 2", len(as))
	}

	const path = "terms.yml"
	if err := as[0].Flags.Set("config", path); err != nil {
		t.Fatalf("Can't set config flag: %v", err)
	}

	if got := as[1].Flags.Lookup("config").Value.String(); got != path {
		t.Errorf("Got config %q for %s, want %q", got, as[1].Name, path)
	}
}

func TestDefaultDictionary(t *testing.T) {
	t.Parallel()

	// The built-in dictionary flags the same terms in the code package
	analysistest.Run(t, analysistest.TestData(), NewCode(WithConfigPath("")), "./builtin")
}
