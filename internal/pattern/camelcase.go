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

package pattern

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const separators = "_-"

func isSeparator(r rune) bool { return strings.ContainsRune(separators, r) }

// CamelCase converts an underscore separated word to camel case.
//
// The first segment is lower case, subsequent segments are capitalized and the separators
// between segments are dropped. Leading and trailing separators are kept, so "_master_key"
// becomes "_masterKey".
func CamelCase(s string) string {
	trimmed := strings.TrimLeft(s, separators)
	prefix := s[:len(s)-len(trimmed)]

	body := strings.TrimRight(trimmed, separators)
	suffix := trimmed[len(body):]

	segments := strings.FieldsFunc(body, isSeparator)
	if len(segments) == 0 {
		return s
	}

	// Casers are stateful, don't share them
	lower, title := cases.Lower(language.Und), cases.Title(language.Und)

	var b strings.Builder
	b.Grow(len(s))

	b.WriteString(prefix) // ignore error

	for i, segment := range segments {
		if i == 0 {
			b.WriteString(lower.String(segment)) // ignore error
		} else {
			b.WriteString(title.String(segment)) // ignore error
		}
	}

	b.WriteString(suffix) // ignore error

	return b.String()
}
