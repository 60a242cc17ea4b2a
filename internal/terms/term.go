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

import (
	"errors"
	"fmt"
	"path"
	"path/filepath"
	"reflect"
	"strings"
	"sync"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/go-playground/validator/v10"

	"fillmore-labs.com/inclusivecode/internal/pattern"
)

// Rule is the policy entry of a single flagged term.
type Rule struct {
	// Allowed lists exception phrases suppressing a violation when found in the same text.
	Allowed []string `yaml:"allowed" validate:"required"`

	// Suggestions lists replacement words, in order of preference.
	Suggestions []string `yaml:"suggestions" validate:"required"`

	// AllowedFiles lists glob patterns of files where the term is not checked.
	AllowedFiles []string `yaml:"allowed_files"`
}

// ruleValidate checks that [Rule] fields are present.
var ruleValidate = newRuleValidate()

func newRuleValidate() *validator.Validate {
	v := validator.New()

	// Report fields by their configuration key
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("yaml"), ",")

		return name
	})

	return v
}

// Term is a flagged term with its derived patterns.
type Term struct {
	name    string
	rule    Rule
	pattern *pattern.Pattern
	allowed *pattern.Pattern
	shape   func() error
}

// NewTerm creates a [Term] for the given name and rule.
func NewTerm(name string, rule Rule) *Term {
	t := &Term{
		name:    name,
		rule:    rule,
		pattern: pattern.Derive([]string{name}),
		allowed: pattern.Derive(rule.Allowed),
	}

	t.shape = sync.OnceValue(t.validateShape)

	return t
}

// Name returns the term as configured.
func (t *Term) Name() string { return t.name }

// Suggestions returns the configured replacement words.
func (t *Term) Suggestions() []string { return t.rule.Suggestions }

// Pattern returns the pattern matching the term's surface forms.
func (t *Term) Pattern() *pattern.Pattern { return t.pattern }

// Matches reports whether candidate contains the term.
func (t *Term) Matches(candidate string) bool { return t.pattern.MatchString(candidate) }

// Allowed reports whether candidate contains an allowed exception.
func (t *Term) Allowed(candidate string) bool { return t.allowed.MatchString(candidate) }

// Validate returns a [*ShapeError] when required fields are missing.
// The check runs once, subsequent calls return the same result.
func (t *Term) Validate() error { return t.shape() }

func (t *Term) validateShape() error {
	err := ruleValidate.Struct(&t.rule)

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	missing := make([]string, 0, len(verrs))
	for _, verr := range verrs {
		missing = append(missing, verr.Field())
	}

	return &ShapeError{Term: t.name, Missing: missing}
}

// ExcludedFor reports whether filename matches one of the term's allowed files.
// Relative patterns match at any directory level.
func (t *Term) ExcludedFor(filename string) bool {
	if filename == "" || len(t.rule.AllowedFiles) == 0 {
		return false
	}

	name := filepath.ToSlash(filename)

	for _, glob := range t.rule.AllowedFiles {
		name := name
		if !path.IsAbs(glob) {
			glob, name = "**/"+glob, strings.TrimPrefix(name, "/")
		}

		if ok, _ := doublestar.Match(glob, name); ok {
			return true
		}
	}

	return false
}

// validateFiles checks the syntax of the allowed files patterns.
func (t *Term) validateFiles() error {
	for _, glob := range t.rule.AllowedFiles {
		if !doublestar.ValidatePattern(glob) {
			return &invalidGlobError{term: t.name, glob: glob}
		}
	}

	return nil
}

type invalidGlobError struct{ term, glob string }

func (e *invalidGlobError) Error() string {
	return fmt.Sprintf("term %q: %v %q", e.term, doublestar.ErrBadPattern, e.glob)
}

func (e *invalidGlobError) Unwrap() error { return doublestar.ErrBadPattern }
