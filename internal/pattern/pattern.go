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

// Package pattern derives case-insensitive patterns matching the lexical surface forms of words.
package pattern

import (
	"regexp"
	"strings"
)

// Pattern is a case-insensitive alternation of literal surface forms.
//
// A nil Pattern and a Pattern derived from no words never match.
type Pattern struct {
	re    *regexp.Regexp
	forms []string
}

// Derive returns a [Pattern] matching any surface form of any of the given words.
//
// Every word contributes itself, its underscore variant and the camel case form of
// the underscore variant (see [SurfaceForms]). Matching is substring based, there is no
// word boundary anchoring.
func Derive(words []string) *Pattern {
	var forms []string

	seen := make(map[string]struct{}, 3*len(words))

	for _, word := range words {
		for _, form := range SurfaceForms(word) {
			if _, ok := seen[form]; ok {
				continue
			}

			seen[form] = struct{}{}
			forms = append(forms, form)
		}
	}

	if len(forms) == 0 {
		return &Pattern{}
	}

	quoted := make([]string, len(forms))
	for i, form := range forms {
		quoted[i] = regexp.QuoteMeta(form)
	}

	re := regexp.MustCompile("(?i)" + strings.Join(quoted, "|"))

	return &Pattern{re: re, forms: forms}
}

// SurfaceForms returns the verbatim word, the word with spaces replaced by underscores and
// the camel case form of the underscore variant, in this order.
// An empty word has no surface forms.
func SurfaceForms(word string) []string {
	if word == "" {
		return nil
	}

	underscored := strings.ReplaceAll(word, " ", "_")

	return []string{word, underscored, CamelCase(underscored)}
}

// MatchString reports whether s contains any surface form, ignoring case.
func (p *Pattern) MatchString(s string) bool {
	if p == nil || p.re == nil {
		return false
	}

	return p.re.MatchString(s)
}

// ReplaceAllStringFunc replaces every surface form found in s with the result of repl
// applied to the matched text.
func (p *Pattern) ReplaceAllStringFunc(s string, repl func(string) string) string {
	if p == nil || p.re == nil {
		return s
	}

	return p.re.ReplaceAllStringFunc(s, repl)
}

// Forms returns the distinct surface forms in derivation order.
func (p *Pattern) Forms() []string {
	if p == nil {
		return nil
	}

	return p.forms
}

// String returns the regular expression source, or an empty string for a pattern that never matches.
func (p *Pattern) String() string {
	if p == nil || p.re == nil {
		return ""
	}

	return p.re.String()
}
