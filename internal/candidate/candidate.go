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

// Package candidate extracts the texts checked for flagged terms from Go source files.
package candidate

import (
	"go/ast"
	"go/token"
	"path/filepath"
)

// Candidate is a text found in a source file, with its kind and location.
type Candidate struct {
	// Text is the candidate text, verbatim.
	Text string

	// Kind is the syntactic origin of the text.
	Kind Kind

	pos, end token.Pos
}

// New creates a [Candidate] spanning pos to end.
func New(text string, kind Kind, pos, end token.Pos) Candidate {
	return Candidate{Text: text, Kind: kind, pos: pos, end: end}
}

// Pos returns the start position of the candidate.
func (c Candidate) Pos() token.Pos { return c.pos }

// End returns the end position of the candidate.
func (c Candidate) End() token.Pos { return c.end }

// File returns the base name of filename as a candidate spanning the package clause of file.
func File(filename string, file *ast.File) Candidate {
	return New(filepath.Base(filename), FileName, file.Package, file.Name.End())
}
