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
	"strings"
)

var (
	// ErrConfigLoad is wrapped by all errors reading or decoding the flagged terms configuration.
	ErrConfigLoad = errors.New("can't load flagged terms")

	// ErrConfigShape is wrapped by errors about flagged terms missing a required field.
	ErrConfigShape = errors.New("malformed flagged term")

	errNoFlaggedTerms = errors.New("missing flagged_terms")
	errNotMapping     = errors.New("flagged_terms is not a mapping")
	errDuplicateTerm  = errors.New("duplicate flagged term")
	errEmptyTerm      = errors.New("empty flagged term")
)

// LoadError reports a flagged terms configuration that can't be read or decoded.
type LoadError struct {
	// Path is the configuration file, empty for the built-in dictionary.
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("%v (built-in): %v", ErrConfigLoad, e.Err)
	}

	return fmt.Sprintf("%v from %q: %v", ErrConfigLoad, e.Path, e.Err)
}

func (e *LoadError) Unwrap() []error { return []error{ErrConfigLoad, e.Err} }

// ShapeError reports a flagged term without its required fields.
type ShapeError struct {
	Term    string
	Missing []string
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("%v %q: missing %s", ErrConfigShape, e.Term, strings.Join(e.Missing, ", "))
}

func (e *ShapeError) Unwrap() error { return ErrConfigShape }
