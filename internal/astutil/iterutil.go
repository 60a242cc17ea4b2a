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
	"iter"
)

// AssignTargets yields the targets of an assignment, skipping blank identifiers.
// Targets are identifiers and selector expressions; index expressions and other
// forms are skipped.
func AssignTargets(lhs []ast.Expr) iter.Seq[ast.Expr] {
	return func(yield func(ast.Expr) bool) {
		for _, expr := range lhs {
			switch e := ast.Unparen(expr).(type) {
			case *ast.Ident:
				if IsBlank(e) {
					continue // blank identifier
				}

			case *ast.SelectorExpr:

			default:
				continue
			}

			if !yield(expr) {
				return
			}
		}
	}
}

// DeclaredNames yields all non-blank identifiers of a field or value list.
func DeclaredNames(names []*ast.Ident) iter.Seq[*ast.Ident] {
	return func(yield func(*ast.Ident) bool) {
		for _, id := range names {
			if IsBlank(id) {
				continue // blank identifier
			}

			if !yield(id) {
				return
			}
		}
	}
}

// IsBlank reports whether id is missing or the blank identifier.
func IsBlank(id *ast.Ident) bool {
	return id == nil || id.Name == "_"
}
