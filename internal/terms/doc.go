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

/*
Package terms loads flagged terms configurations and matches them against candidate texts.

# Configuration

A configuration is a YAML document with a top level flagged_terms mapping:

	flagged_terms:
	  master:
	    allowed: ["bill", "degree"]
	    suggestions: ["leader", "primary", "parent"]
	    allowed_files: ["legacy/**"]

allowed and suggestions are required, but may be empty. allowed_files is optional.

# Matching

A term matches a candidate when any of its surface forms is contained in the candidate,
ignoring case. The match is suppressed when any surface form of an allowed phrase is
contained in the same candidate. Terms are checked in document order and the first
unsuppressed match is reported.
*/
package terms
