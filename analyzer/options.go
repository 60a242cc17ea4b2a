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
	"log/slog"

	"fillmore-labs.com/inclusivecode/internal/config"
	"fillmore-labs.com/inclusivecode/internal/run"
)

// Option configures specific behavior of the inclusivecode analyzers.
type Option interface {
	apply(r *run.Options)
	LogAttr() slog.Attr
}

// Options is a list of [Option] values that itself satisfies the [Option] interface.
type Options []Option

// LogValue implements [slog.LogValuer].
func (o Options) LogValue() slog.Value {
	as := make([]slog.Attr, 0, len(o))
	as = appendOptions(as, o)

	return slog.GroupValue(as...)
}

func appendOptions(as []slog.Attr, o Options) []slog.Attr {
	for _, opt := range o {
		switch opt := opt.(type) {
		case nil:
			as = append(as, slog.String("nil", "<nil>"))

		case Options:
			as = appendOptions(as, opt)

		default:
			as = append(as, opt.LogAttr())
		}
	}

	return as
}

func (o Options) apply(r *run.Options) {
	for _, opt := range o {
		if opt == nil {
			continue
		}

		opt.apply(r)
	}
}

// LogAttr is for logging with [slog.Logger.LogAttrs].
func (o Options) LogAttr() slog.Attr {
	return slog.Any("options", o)
}

// WithConfigPath is an [Option] to read flagged terms from a YAML file instead of the built-in dictionary.
func WithConfigPath(path string) Option { return configPathOption{path: path} }

type configPathOption struct{ path string }

func (o configPathOption) apply(r *run.Options) {
	r.ConfigPath = o.path
}

func (o configPathOption) LogAttr() slog.Attr {
	return slog.String("config", o.path)
}

// WithGenerated is an [Option] to configure diagnostics in generated files.
func WithGenerated(generated bool) Option { return generatedOption{generated: generated} }

type generatedOption struct{ generated bool }

func (o generatedOption) apply(r *run.Options) {
	r.Behavior.Set(config.IncludeGenerated, o.generated)
}

func (o generatedOption) LogAttr() slog.Attr {
	return slog.Bool("generated", o.generated)
}

// WithFix is an [Option] to configure suggested replacements for non-inclusive words in comments.
func WithFix(fix bool) Option { return fixOption{fix: fix} }

type fixOption struct{ fix bool }

func (o fixOption) apply(r *run.Options) {
	r.Behavior.Set(config.SuggestFixes, o.fix)
}

func (o fixOption) LogAttr() slog.Attr {
	return slog.Bool("fix", o.fix)
}

// WithFileNames is an [Option] to configure checks of source file names.
func WithFileNames(fileNames bool) Option { return fileNamesOption{fileNames: fileNames} }

type fileNamesOption struct{ fileNames bool }

func (o fileNamesOption) apply(r *run.Options) {
	r.Behavior.Set(config.CheckFileNames, o.fileNames)
}

func (o fileNamesOption) LogAttr() slog.Attr {
	return slog.Bool("file-names", o.fileNames)
}

// WithCode is an [Option] to configure whether [New] includes the code analyzer.
func WithCode(code bool) Option { return codeOption{code: code} }

type codeOption struct{ code bool }

func (o codeOption) apply(r *run.Options) {
	r.Analyzers.Set(config.CodeAnalyzer, o.code)
}

func (o codeOption) LogAttr() slog.Attr {
	return slog.Bool("code", o.code)
}

// WithComments is an [Option] to configure whether [New] includes the comments analyzer.
func WithComments(comments bool) Option { return commentsOption{comments: comments} }

type commentsOption struct{ comments bool }

func (o commentsOption) apply(r *run.Options) {
	r.Analyzers.Set(config.CommentsAnalyzer, o.comments)
}

func (o commentsOption) LogAttr() slog.Attr {
	return slog.Bool("comments", o.comments)
}
