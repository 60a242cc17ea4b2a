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

package config

// AnalyzerFlags represents specific analyzers.
type AnalyzerFlags uint8

const (
	// CodeAnalyzer enables checks of identifiers, docstrings and string literals.
	CodeAnalyzer AnalyzerFlags = 1 << iota

	// CommentsAnalyzer enables checks of comment words.
	CommentsAnalyzer
)

// Analyzers is the set of enabled analyzers.
type Analyzers = BitMask[AnalyzerFlags]

// DefaultAnalyzers returns the analyzers enabled by default.
func DefaultAnalyzers() Analyzers {
	return NewBitMask(CodeAnalyzer, CommentsAnalyzer)
}

// BehaviorFlags represents behavioral options.
type BehaviorFlags uint8

const (
	// IncludeGenerated specifies whether to include analysis of generated files.
	IncludeGenerated BehaviorFlags = 1 << iota

	// SuggestFixes enables suggested replacements for comment words.
	SuggestFixes

	// CheckFileNames enables checks of file names.
	CheckFileNames
)

// Behavior holds behavioral options.
type Behavior = BitMask[BehaviorFlags]

// DefaultBehavior returns the default behavioral options.
func DefaultBehavior() Behavior {
	return NewBitMask(SuggestFixes)
}
