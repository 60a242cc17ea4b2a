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

package analyzer

import (
	"flag"

	"fillmore-labs.com/inclusivecode/internal/config"
	"fillmore-labs.com/inclusivecode/internal/run"
)

// registerFlags binds the [run.Options] values to command line flag values.
// A nil flag set value defaults to the program's command line.
func registerFlags(flags *flag.FlagSet, r *run.Options, comments bool) {
	if flags == nil {
		flags = flag.CommandLine
	}

	flags.StringVar(&r.ConfigPath, "config", r.ConfigPath, "flagged terms YAML file (default: built-in dictionary)")
	flags.Var(newBehaviorValue(&r.Behavior, config.IncludeGenerated), "generated", "check generated files")

	if comments {
		flags.Var(newBehaviorValue(&r.Behavior, config.SuggestFixes), "fix-comments", "suggest replacements for comment words")
	} else {
		flags.Var(newBehaviorValue(&r.Behavior, config.CheckFileNames), "filenames", "check file names")
	}
}

// newBehaviorValue returns a boolean [flag.Value] setting a behavior flag.
func newBehaviorValue(flags *config.Behavior, value config.BehaviorFlags) boolValue[config.BehaviorFlags, *config.Behavior] {
	return boolValue[config.BehaviorFlags, *config.Behavior]{flags: flags, value: value}
}
