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
	"strings"
)

// Comments yields every word of the comments in file.
//
// Documentation comments of functions are skipped unless funcDocs is set, by
// default they are checked as a whole by [Code].
func Comments(fset *token.FileSet, file *ast.File, funcDocs bool) iter.Seq[Candidate] {
	tf := fset.File(file.FileStart)
	if tf == nil {
		return func(func(Candidate) bool) {}
	}

	var docs map[*ast.CommentGroup]struct{}
	if !funcDocs {
		docs = docComments(file)
	}

	return func(yield func(Candidate) bool) {
		for _, group := range file.Comments {
			if _, ok := docs[group]; ok {
				continue
			}

			for _, comment := range group.List {
				for w := range Words(tf, comment) {
					if !yield(w) {
						return
					}
				}
			}
		}
	}
}

// Words yields the words of a single comment.
//
// The comment markers are removed, the remaining text is split into lines and each
// line at space characters. Every non-empty word is a candidate spanning its own
// position in the source.
//
// The scanner removes carriage returns from comment text, so lines after the first
// are positioned by the line table of tf instead of their offset in the text.
func Words(tf *token.File, comment *ast.Comment) iter.Seq[Candidate] {
	text, offset := commentBody(comment.Text)
	first := tf.PositionFor(comment.Slash, false).Line

	return func(yield func(Candidate) bool) {
		lineStart := comment.Slash + token.Pos(offset)

		for i, line := range enumerate(strings.SplitSeq(text, "\n")) {
			if i > 0 {
				if first+i > tf.LineCount() {
					return
				}

				lineStart = tf.LineStart(first + i)
			}

			start := lineStart

			for word := range strings.SplitSeq(line, " ") {
				if word != "" {
					if !yield(New(word, CommentWord, start, start+token.Pos(len(word)))) {
						return
					}
				}

				start += token.Pos(len(word) + 1)
			}
		}
	}
}

// enumerate pairs the elements of seq with their index.
func enumerate[T any](seq iter.Seq[T]) iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		i := 0
		for v := range seq {
			if !yield(i, v) {
				return
			}
			i++
		}
	}
}

// commentBody strips the comment markers, returning the text and its offset in the comment.
func commentBody(text string) (string, int) {
	switch {
	case strings.HasPrefix(text, "//"):
		return text[2:], 2

	case strings.HasPrefix(text, "/*"):
		return strings.TrimSuffix(text[2:], "*/"), 2

	default:
		return text, 0
	}
}

// docComments collects the documentation comments of all function declarations in file.
func docComments(file *ast.File) map[*ast.CommentGroup]struct{} {
	docs := make(map[*ast.CommentGroup]struct{})

	for _, decl := range file.Decls {
		if fn, ok := decl.(*ast.FuncDecl); ok && fn.Doc != nil {
			docs[fn.Doc] = struct{}{}
		}
	}

	return docs
}
