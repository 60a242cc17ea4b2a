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

package candidate

import (
	"go/ast"
	"go/token"
	"iter"
	"strconv"
	"strings"

	"golang.org/x/tools/go/ast/edge"
	"golang.org/x/tools/go/ast/inspector"

	"fillmore-labs.com/inclusivecode/internal/astutil"
)

// codeNodes are the node types carrying code candidates.
var codeNodes = []ast.Node{
	(*ast.TypeSpec)(nil),
	(*ast.FuncDecl)(nil),
	(*ast.AssignStmt)(nil),
	(*ast.ValueSpec)(nil),
	(*ast.RangeStmt)(nil),
	(*ast.Field)(nil),
	(*ast.BasicLit)(nil),
}

// Code yields the candidates of the code structure below root, usually a file cursor.
//
// Definitions of types, functions and variables yield their names, functions their
// documentation and string literals their values. Blank identifiers, type parameters
// and import paths are skipped.
func Code(root inspector.Cursor) iter.Seq[Candidate] {
	return func(yield func(Candidate) bool) {
		for c := range root.Preorder(codeNodes...) {
			if !visit(c, yield) {
				return
			}
		}
	}
}

// visit yields the candidates of a single node, returning false when yield stopped the iteration.
func visit(c inspector.Cursor, yield func(Candidate) bool) bool {
	switch n := c.Node().(type) {
	case *ast.TypeSpec:
		return yieldIdent(n.Name, TypeName, yield)

	case *ast.FuncDecl:
		if !yieldIdent(n.Name, FuncName, yield) {
			return false
		}

		if n.Doc == nil {
			return true
		}

		// Documentation is reported at the function name
		doc := strings.TrimSpace(n.Doc.Text())
		if doc == "" {
			return true
		}

		return yield(New(doc, FuncDoc, n.Name.Pos(), n.Name.End()))

	case *ast.AssignStmt:
		if n.Tok != token.ASSIGN && n.Tok != token.DEFINE {
			return true // op-assignments modify existing variables
		}

		return yieldTargets(n.Lhs, yield)

	case *ast.RangeStmt:
		if n.Tok == token.ILLEGAL {
			return true // for range x
		}

		var lhs []ast.Expr
		for _, e := range [...]ast.Expr{n.Key, n.Value} {
			if e != nil {
				lhs = append(lhs, e)
			}
		}

		return yieldTargets(lhs, yield)

	case *ast.ValueSpec:
		return yieldNames(n.Names, AssignName, yield)

	case *ast.Field:
		kind, ok := fieldKind(c)
		if !ok {
			return true
		}

		return yieldNames(n.Names, kind, yield)

	case *ast.BasicLit:
		if n.Kind != token.STRING {
			return true
		}

		if k, _ := c.ParentEdge(); k == edge.ImportSpec_Path {
			return true
		}

		value, err := strconv.Unquote(n.Value)
		if err != nil || value == "" {
			return true
		}

		return yield(New(value, StringLit, n.Pos(), n.End()))

	default:
		return true
	}
}

// fieldKind classifies a field by the list it belongs to.
// Type parameters are not candidates.
func fieldKind(c inspector.Cursor) (Kind, bool) {
	list := c.Parent() // *ast.FieldList

	switch k, _ := list.ParentEdge(); k {
	case edge.FuncType_Params, edge.FuncType_Results, edge.FuncDecl_Recv:
		return AssignName, true

	case edge.StructType_Fields:
		return AssignAttr, true

	case edge.InterfaceType_Methods:
		return FuncName, true

	default:
		return 0, false
	}
}

func yieldIdent(id *ast.Ident, kind Kind, yield func(Candidate) bool) bool {
	if astutil.IsBlank(id) {
		return true
	}

	return yield(New(id.Name, kind, id.Pos(), id.End()))
}

func yieldNames(names []*ast.Ident, kind Kind, yield func(Candidate) bool) bool {
	for id := range astutil.DeclaredNames(names) {
		if !yield(New(id.Name, kind, id.Pos(), id.End())) {
			return false
		}
	}

	return true
}

// yieldTargets yields assigned identifiers as names and assigned selectors as fields.
func yieldTargets(lhs []ast.Expr, yield func(Candidate) bool) bool {
	for target := range astutil.AssignTargets(lhs) {
		var c Candidate

		switch t := ast.Unparen(target).(type) {
		case *ast.Ident:
			c = New(t.Name, AssignName, t.Pos(), t.End())

		case *ast.SelectorExpr:
			c = New(t.Sel.Name, AssignAttr, t.Sel.Pos(), t.Sel.End())

		default:
			continue
		}

		if !yield(c) {
			return false
		}
	}

	return true
}
