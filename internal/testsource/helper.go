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

// Package testsource provides utilities for parsing Go source code in tests.
//
// It is designed to simplify testing of the inclusivecode candidate extraction by handling common
// boilerplate code for parsing Go source fragments.
package testsource

import (
	"go/ast"
	"go/parser"
	"go/token"
	"strings"
	"testing"

	"golang.org/x/tools/go/ast/inspector"
)

const (
	testpkg  = "test"
	Filename = "test.go"
)

// Parse parses a Go source file into an AST, including comments.
// A source `src` without a package clause is prefixed by `package test`.
//
// Returns:
//   - *token.FileSet: The file set containing the single source file.
//   - *ast.File: The parsed AST of the source file.
//   - inspector.Cursor: A cursor positioned at the file.
func Parse(tb testing.TB, src string) (fset *token.FileSet, f *ast.File, file inspector.Cursor) {
	tb.Helper()

	fset = token.NewFileSet()

	f, err := parser.ParseFile(fset, Filename, wrapSource(src), parser.ParseComments|parser.SkipObjectResolution)
	if err != nil {
		tb.Fatalf("Failed to parse source %q: %v", src, err)
	}

	for c := range inspector.New([]*ast.File{f}).Root().Children() {
		return fset, f, c
	}

	tb.Fatal("Can't find file")

	return nil, nil, inspector.Cursor{}
}

// Text returns the source text between pos and end.
func Text(tb testing.TB, fset *token.FileSet, src string, pos, end token.Pos) string {
	tb.Helper()

	src = wrapSource(src)

	start, stop := fset.Position(pos).Offset, fset.Position(end).Offset
	if start < 0 || stop > len(src) || start > stop {
		tb.Fatalf("Invalid range %d-%d for source of length %d", start, stop, len(src))
	}

	return src[start:stop]
}

func wrapSource(src string) string {
	const header = "package " + testpkg + "\n\n"

	if strings.HasPrefix(src, "package ") || strings.Contains(src, "\npackage ") {
		return src
	}

	var srcFile strings.Builder
	srcFile.Grow(len(header) + len(src))

	srcFile.WriteString(header) // ignore error
	srcFile.WriteString(src)    // ignore error

	return srcFile.String()
}
