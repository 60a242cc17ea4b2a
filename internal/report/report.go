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

// Package report turns flagged term violations into analysis diagnostics.
package report

import (
	"fmt"

	"golang.org/x/tools/go/analysis"

	"fillmore-labs.com/inclusivecode/internal/astutil"
	"fillmore-labs.com/inclusivecode/internal/candidate"
	"fillmore-labs.com/inclusivecode/internal/terms"
)

// Rule identifiers, reported as the diagnostic category.
const (
	// CodeRule is the rule of violations in identifiers, documentation, string literals and file names.
	CodeRule = "inclusive-code-violation"

	// CommentsRule is the rule of violations in comments.
	CommentsRule = "inclusive-comments-violation"
)

// Reporter reports violations found in a single file.
type Reporter struct {
	pass *analysis.Pass
	file astutil.CurrentFile
	fix  bool
}

// New creates a [Reporter] for violations in file.
// Suggested fixes are added to comment violations when fix is set and the file is not generated.
func New(p *analysis.Pass, file astutil.CurrentFile, fix bool) Reporter {
	return Reporter{pass: p, file: file, fix: fix && !file.Generated()}
}

// Report emits the diagnostic for a violation found in c.
// Violations on lines with a //nolint:inclusivecode comment are dropped.
// It returns whether a diagnostic was reported.
func (r Reporter) Report(c candidate.Candidate, v terms.Violation) bool {
	if r.file.NoLintComment(c.Pos()) {
		return false
	}

	diagnostic := analysis.Diagnostic{
		Pos: c.Pos(),
		End: c.End(),
	}

	switch c.Kind {
	case candidate.CommentWord:
		diagnostic.Category = CommentsRule
		diagnostic.Message = Message(v, true)

		if r.fix {
			diagnostic.SuggestedFixes = createFix(c, v)
		}

	default:
		diagnostic.Category = CodeRule
		diagnostic.Message = Message(v, false)
	}

	r.pass.Report(diagnostic)

	return true
}

// Message formats the diagnostic message of a violation.
func Message(v terms.Violation, comment bool) string {
	format := "Use of non-inclusive word '%s' detected"
	if comment {
		format = "Use of non-inclusive word '%s' in comments detected"
	}

	msg := fmt.Appendf(nil, format, v.Candidate)

	if phrase := v.Phrase(); phrase != "" {
		msg = fmt.Appendf(msg, ". Try %s", phrase)
	}

	return string(msg)
}
