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

package report_test

import (
	"testing"

	. "fillmore-labs.com/inclusivecode/internal/report"
	"fillmore-labs.com/inclusivecode/internal/terms"
)

const testTerms = `
flagged_terms:
  master:
    allowed: ["bill", "degree"]
    suggestions: ["leader", "primary", "parent"]
  man hours:
    allowed: []
    suggestions: ["work hours"]
  sanity check:
    allowed: []
    suggestions: []
`

func mustParse(tb testing.TB) *terms.Config {
	tb.Helper()

	c, err := terms.Parse([]byte(testTerms))
	if err != nil {
		tb.Fatalf("Can't parse terms: %v", err)
	}

	return c
}

func TestReplace(t *testing.T) {
	t.Parallel()

	c := mustParse(t)

	tests := []struct {
		word string
		want string // empty for no replacement
	}{
		{"master", "leader"},
		{"Master", "Leader"},
		{"MASTER", "LEADER"},
		{"masters,", "leaders,"},
		{"master/slave", "leader/slave"},
		{"masterMaster", "leaderLeader"},
		{"man_hours", "work_hours"},
		{"MAN_HOURS", "WORK_HOURS"},
		{"manHours", "workHours"},
		{"ManHours", "WorkHours"},
		{"doSanityCheck", ""},
	}

	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			t.Parallel()

			v, found, err := c.Check(tt.word)
			if err != nil || !found {
				t.Fatalf("Check(%q) = %v, %v, want violation", tt.word, found, err)
			}

			got, ok := Replace(tt.word, v)

			if tt.want == "" {
				if ok {
					t.Errorf("Replace(%q) = %q, want no replacement", tt.word, got)
				}

				return
			}

			if !ok || got != tt.want {
				t.Errorf("Replace(%q) = %q, %v, want %q", tt.word, got, ok, tt.want)
			}
		})
	}
}

func TestMessage(t *testing.T) {
	t.Parallel()

	c := mustParse(t)

	tests := []struct {
		candidate string
		comment   bool
		want      string
	}{
		{"MasterClass", false, "Use of non-inclusive word 'MasterClass' detected. Try leader, primary, parent"},
		{"master", true, "Use of non-inclusive word 'master' in comments detected. Try leader, primary, parent"},
		{"sanity_check", false, "Use of non-inclusive word 'sanity_check' detected"},
	}

	for _, tt := range tests {
		v, found, err := c.Check(tt.candidate)
		if err != nil || !found {
			t.Fatalf("Check(%q) = %v, %v, want violation", tt.candidate, found, err)
		}

		if got := Message(v, tt.comment); got != tt.want {
			t.Errorf("Message(%q) = %q, want %q", tt.candidate, got, tt.want)
		}
	}
}
