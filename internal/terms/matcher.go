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

package terms

import "strings"

// Matcher checks candidate texts against an ordered list of terms.
type Matcher struct {
	terms []*Term
}

// Violation is a flagged term found in a candidate text.
type Violation struct {
	// Candidate is the checked text, verbatim.
	Candidate string

	// Term is the first matching term not suppressed by its allow-list.
	Term *Term
}

// Phrase returns the term's suggestions, joined for display.
func (v Violation) Phrase() string {
	return strings.Join(v.Term.Suggestions(), ", ")
}

// Check reports the first term found in candidate that is not suppressed by an allowed exception.
//
// Terms are tried in configuration order. A term suppressed by its allow-list does not stop
// the search, but the first unsuppressed match does, so at most one violation is reported.
// An error is returned when a matching term misses required fields.
func (m Matcher) Check(candidate string) (Violation, bool, error) {
	for _, t := range m.terms {
		if !t.Matches(candidate) {
			continue
		}

		if err := t.Validate(); err != nil {
			return Violation{}, false, err
		}

		if t.Allowed(candidate) {
			continue
		}

		return Violation{Candidate: candidate, Term: t}, true, nil
	}

	return Violation{}, false, nil
}

// Len returns the number of terms checked.
func (m Matcher) Len() int { return len(m.terms) }
