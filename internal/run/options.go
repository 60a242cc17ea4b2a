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

package run

import (
	"log/slog"

	"fillmore-labs.com/inclusivecode/internal/config"
	"fillmore-labs.com/inclusivecode/internal/terms"
)

// Options represent configuration options for the inclusivecode analyzers.
type Options struct {
	// ConfigPath is the flagged terms configuration file, empty for the built-in dictionary.
	// It is read on the first run, so it can be set after the analyzer is created.
	ConfigPath string

	// Analyzers represent the analyzers to be enabled.
	Analyzers config.Analyzers

	// Behavior holds behavioral options.
	Behavior config.Behavior

	loader *terms.Loader
}

// DefaultOptions initializes and returns a new Options instance with default values.
func DefaultOptions() *Options {
	o := &Options{
		Analyzers: config.DefaultAnalyzers(),
		Behavior:  config.DefaultBehavior(),
	}

	o.loader = terms.NewLoader(func() string { return o.ConfigPath })

	return o
}

// LogValue implements [slog.LogValuer].
func (r *Options) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("config", r.ConfigPath),
		slog.Bool("code", r.Analyzers.Enabled(config.CodeAnalyzer)),
		slog.Bool("comments", r.Analyzers.Enabled(config.CommentsAnalyzer)),
		slog.Bool("generated", r.Behavior.Enabled(config.IncludeGenerated)),
		slog.Bool("fix", r.Behavior.Enabled(config.SuggestFixes)),
		slog.Bool("filenames", r.Behavior.Enabled(config.CheckFileNames)),
	)
}
