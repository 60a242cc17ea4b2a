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

// Package analyzer implements the inclusivecode static analysis passes.
//
// # Overview
//
// inclusivecode reports non-inclusive terms in Go source code and suggests replacements.
// It consists of two analyzers:
//
//   - inclusivecode checks names of types, functions, methods, variables, parameters and
//     fields, function documentation, string literals and optionally file names.
//   - inclusivecomments checks every word of every other comment and suggests a fix
//     replacing the term by its first suggestion.
//
// Function documentation is checked by inclusivecomments word by word only when the code
// analyzer is disabled with [WithCode]. Disabling inclusivecode on the command line of a
// multichecker does not change this, since both analyzers are already created.
//
// # Configuration
//
// Flagged terms are read from a YAML file, with a built-in dictionary as the default.
// Analyzers created together by [New] share their configuration and load it once:
//
//	flagged_terms:
//	  master:
//	    allowed: ["bill", "degree"]
//	    suggestions: ["leader", "primary", "parent"]
//	    allowed_files: ["legacy/**"]
//
// A term matches when it is contained in the checked text, ignoring case, as written,
// with spaces replaced by underscores or in camel case ("man hours", "man_hours", "manHours").
// A match is suppressed when an allowed phrase is contained in the same text, so "MasterDegree"
// is accepted. Terms are checked in configuration order and the first unsuppressed match is reported.
//
// # Example
//
//	type MasterClass struct{} // Use of non-inclusive word 'MasterClass' detected. Try leader, primary, parent
//
// Diagnostics are suppressed on lines with a //nolint:inclusivecode comment.
package analyzer
