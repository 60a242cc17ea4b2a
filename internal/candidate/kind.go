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

// Kind classifies where a candidate text was found.
type Kind uint8

//go:generate go tool stringer -type Kind -linecomment
const (
	// TypeName is the name of a type declaration.
	TypeName Kind = iota // type

	// FuncName is the name of a function, method or interface method.
	FuncName // function

	// FuncDoc is the documentation comment of a function, checked as a whole.
	FuncDoc // doc comment

	// AssignName is an assigned or declared name: assignment and range targets,
	// var and const names, parameters, results and receivers.
	AssignName // name

	// AssignAttr is an assigned field: a selector on the left side of an assignment
	// or a struct field name.
	AssignAttr // field

	// StringLit is the value of a string literal. Import paths are not candidates.
	StringLit // string

	// CommentWord is a single space separated word of a comment.
	CommentWord // comment

	// FileName is the base name of a source file.
	FileName // file name
)
