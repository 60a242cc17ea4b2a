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

package astutil

import (
	"go/ast"
	"go/token"
	"regexp"
	"strings"
)

// inclusivecode is the name of the linter.
const inclusivecode = "inclusivecode"

// CurrentFile holds file information for analysis.
type CurrentFile struct {
	file      *ast.File
	handle    *token.File
	generated bool
	nolint    map[int]struct{}
}

// NewCurrentFile creates a new [CurrentFile] from a [token.FileSet] and an *[ast.File].
func NewCurrentFile(fset *token.FileSet, file *ast.File) CurrentFile {
	if file == nil {
		return CurrentFile{}
	}

	handle := fset.File(file.FileStart)
	if handle == nil {
		return CurrentFile{}
	}

	generated := ast.IsGenerated(file)

	c := CurrentFile{file: file, handle: handle, generated: generated}
	c.nolint = c.noLintLines()

	return c
}

// Valid returns true if the [CurrentFile] is valid.
func (c CurrentFile) Valid() bool {
	return c.handle != nil
}

// Generated returns true if the file is a generated file.
func (c CurrentFile) Generated() bool {
	return c.generated
}

// Name returns the file name.
func (c CurrentFile) Name() string {
	if c.handle == nil {
		return ""
	}

	return c.handle.Name()
}

// Line returns the line number of pos.
func (c CurrentFile) Line(pos token.Pos) int {
	return c.handle.PositionFor(pos, false).Line
}

// NoLint reports whether the file is excluded by a //nolint:inclusivecode comment
// ending the package documentation.
func (c CurrentFile) NoLint() bool {
	if c.file == nil || c.file.Doc == nil {
		return false
	}

	return CommentHasNoLint(c.file.Doc.List[len(c.file.Doc.List)-1])
}

// NoLintComment reports whether the line of pos has a //nolint:inclusivecode comment.
func (c CurrentFile) NoLintComment(pos token.Pos) bool {
	if len(c.nolint) == 0 {
		return false
	}

	_, ok := c.nolint[c.Line(pos)]

	return ok
}

// noLintLines collects the lines carrying a nolint comment for this linter.
func (c CurrentFile) noLintLines() map[int]struct{} {
	var lines map[int]struct{}

	for _, group := range c.file.Comments {
		for _, comment := range group.List {
			if !CommentHasNoLint(comment) {
				continue
			}

			if lines == nil {
				lines = make(map[int]struct{})
			}

			lines[c.Line(comment.Pos())] = struct{}{}
		}
	}

	return lines
}

var nolintPattern = regexp.MustCompile(`^//\s*nolint:([a-zA-Z0-9,_-]+)`)

// CommentHasNoLint checks if a comment is a //nolint:inclusivecode or //nolint:all directive.
func CommentHasNoLint(comment *ast.Comment) bool {
	matches := nolintPattern.FindStringSubmatch(comment.Text)
	if matches == nil {
		return false
	}

	// Parse comma-separated linter list
	for linter := range strings.SplitSeq(matches[1], ",") {
		if l := strings.ToLower(strings.TrimSpace(linter)); l == inclusivecode || l == "all" {
			return true
		}
	}

	return false
}
