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

package comments

// The Master node talks to the slave. // want "'Ma.ter' in comments detected. Try leader, primary, parent" "'sl.ve.' in comments detected. Try follower, replica"
var node int

/* the MAN_HOURS total */ // want "'MAN.HOURS' in comments detected. Try work hours"
var total = node

// doSanityCheck has no suggestions. // want "'doSanity.heck' in comments detected$"
var checked = total

// masterFunction has a master doc comment, checked as a whole by the code analyzer.
func masterFunction() int {
	// Followed by a WHITELIST comment. // want "'WHITEL.ST' in comments detected. Try allowlist"
	return checked
}

var ignored = 1 /* the master copy */ //nolint:inclusivecode
