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

package report

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/tools/go/analysis"

	"fillmore-labs.com/inclusivecode/internal/candidate"
	"fillmore-labs.com/inclusivecode/internal/pattern"
	"fillmore-labs.com/inclusivecode/internal/terms"
)

// createFix creates a suggested fix replacing the flagged term in a comment word by the first suggestion.
func createFix(c candidate.Candidate, v terms.Violation) []analysis.SuggestedFix {
	replaced, ok := Replace(c.Text, v)
	if !ok {
		return nil
	}

	return []analysis.SuggestedFix{{
		Message:   fmt.Sprintf("Replace '%s' with '%s'", c.Text, replaced),
		TextEdits: []analysis.TextEdit{{Pos: c.Pos(), End: c.End(), NewText: []byte(replaced)}},
	}}
}

// Replace replaces every occurrence of the violated term in word by its first suggestion.
//
// The replacement takes the surface form of the occurrence, so "MAN_HOURS" becomes "WORK_HOURS"
// and "manHours" becomes "workHours". Upper case and capitalized occurrences are preserved.
// It reports false when the term has no suggestions or nothing was replaced.
func Replace(word string, v terms.Violation) (string, bool) {
	suggestions := v.Term.Suggestions()
	if len(suggestions) == 0 || suggestions[0] == "" {
		return word, false
	}

	var (
		forms        = pattern.SurfaceForms(v.Term.Name())
		replacements = pattern.SurfaceForms(suggestions[0])
	)

	replaced := v.Term.Pattern().ReplaceAllStringFunc(word, func(match string) string {
		replacement := suggestions[0]

		for i, form := range forms {
			if strings.EqualFold(match, form) {
				replacement = replacements[i]

				break
			}
		}

		return matchCase(match, replacement)
	})

	return replaced, replaced != word
}

// matchCase adapts the case of replacement to an upper case or capitalized match.
func matchCase(match, replacement string) string {
	upper := cases.Upper(language.Und)

	if upper.String(match) == match && cases.Lower(language.Und).String(match) != match {
		return upper.String(replacement)
	}

	if r, _ := utf8.DecodeRuneInString(match); !unicode.IsUpper(r) {
		return replacement
	}

	_, size := utf8.DecodeRuneInString(replacement)

	return upper.String(replacement[:size]) + replacement[size:]
}
