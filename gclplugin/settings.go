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

package gclplugin

import inclusivecode "fillmore-labs.com/inclusivecode/analyzer"

// Settings represents the configuration options for an instance of the [Plugin].
type Settings struct {
	// ConfigPath is the flagged terms YAML file. The built-in dictionary is used when unset.
	ConfigPath *string `json:"config-path,omitzero"`
	// Code enables checks of names, function documentation and string literals.
	Code *bool `json:"code,omitzero"`
	// Comments enables checks of comments.
	Comments *bool `json:"comments,omitzero"`
	// Fix enables suggested replacements in comments.
	Fix *bool `json:"fix,omitzero"`
	// FileNames enables checks of file names.
	FileNames *bool `json:"file-names,omitzero"`
	// Generated enables checks of generated files.
	Generated *bool `json:"generated,omitzero"`
}

// Options converts [Settings] into a list of [inclusivecode.Option] for the inclusivecode analyzers.
// It processes settings and applies them only when explicitly set (non-nil).
func (s Settings) Options() []inclusivecode.Option {
	var opts []inclusivecode.Option

	opts = appendOption(opts, s.ConfigPath, inclusivecode.WithConfigPath)
	opts = appendOption(opts, s.Code, inclusivecode.WithCode)
	opts = appendOption(opts, s.Comments, inclusivecode.WithComments)
	opts = appendOption(opts, s.Fix, inclusivecode.WithFix)
	opts = appendOption(opts, s.FileNames, inclusivecode.WithFileNames)
	opts = appendOption(opts, s.Generated, inclusivecode.WithGenerated)

	return opts
}

// appendOption appends a non-nil setting to a [inclusivecode.Option] list.
func appendOption[T any](opts []inclusivecode.Option, value *T, constructor func(T) inclusivecode.Option) []inclusivecode.Option {
	if value == nil {
		return opts
	}

	return append(opts, constructor(*value))
}
