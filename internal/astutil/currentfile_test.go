// Copyright 2026 Oliver Eikemeier. All Rights Reserved.
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

package astutil_test

import (
	"go/ast"
	"go/token"
	"testing"

	. "fillmore-labs.com/inclusivecode/internal/astutil"
	"fillmore-labs.com/inclusivecode/internal/testsource"
)

func TestCommentHasNoLint(t *testing.T) {
	t.Parallel()

	tests := []struct {
		text string
		want bool
	}{
		{"//nolint:inclusivecode", true},
		{"// nolint:inclusivecode", true},
		{"//nolint:errcheck,InclusiveCode // reason", true},
		{"//nolint:all", true},
		{"//nolint:errcheck", false},
		{"// the nolint:inclusivecode directive", false},
		{"/* nolint:inclusivecode */", false},
	}

	for _, tt := range tests {
		if got := CommentHasNoLint(&ast.Comment{Text: tt.text}); got != tt.want {
			t.Errorf("CommentHasNoLint(%q) = %v, want %v", tt.text, got, tt.want)
		}
	}
}

func TestCurrentFile(t *testing.T) {
	t.Parallel()

	const src = `// Code generated by test. DO NOT EDIT.

//nolint:inclusivecode
package test

var a = 1 //nolint:inclusivecode
var b = 2
`

	fset, f, _ := testsource.Parse(t, src)

	c := NewCurrentFile(fset, f)

	if !c.Valid() || !c.Generated() || !c.NoLint() {
		t.Errorf("Got valid %v, generated %v, nolint %v, want all true", c.Valid(), c.Generated(), c.NoLint())
	}

	if got := c.Name(); got != testsource.Filename {
		t.Errorf("Got name %q, want %q", got, testsource.Filename)
	}

	lines := map[int]bool{3: true, 6: true, 7: false}
	for line, want := range lines {
		pos := fset.File(f.FileStart).LineStart(line)
		if got := c.NoLintComment(pos); got != want {
			t.Errorf("NoLintComment(line %d) = %v, want %v", line, got, want)
		}
	}
}

func TestCurrentFileInvalid(t *testing.T) {
	t.Parallel()

	if c := NewCurrentFile(token.NewFileSet(), nil); c.Valid() || c.Name() != "" || c.NoLintComment(token.NoPos) {
		t.Error("Expected invalid file")
	}
}
