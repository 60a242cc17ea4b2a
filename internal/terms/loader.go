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
	_ "embed"
	"log/slog"
	"os"
	"sync"
)

// defaultTerms is the dictionary used when no configuration path is set.
//
//go:embed default_terms.yaml
var defaultTerms []byte

// Loader loads a flagged terms configuration on first use.
//
// The configuration is read at most once, also when [Loader.Load] is called concurrently.
// A failed load is not retried, every call returns the same error.
type Loader struct {
	path func() string
	load func() (*Config, error)
}

// NewLoader creates a [Loader] reading the file named by path when first used.
// path is called once, during the first [Loader.Load], so it may refer to a value set by flags.
// An empty path selects the built-in dictionary.
func NewLoader(path func() string) *Loader {
	l := &Loader{path: path}
	l.load = sync.OnceValues(l.read)

	return l
}

// Load returns the configuration, reading it on first use.
func (l *Loader) Load() (*Config, error) { return l.load() }

func (l *Loader) read() (*Config, error) {
	var path string
	if l.path != nil {
		path = l.path()
	}

	data := defaultTerms

	if path != "" {
		var err error
		if data, err = os.ReadFile(path); err != nil {
			return nil, &LoadError{Path: path, Err: err}
		}
	}

	c, err := Parse(data)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}

	slog.Debug("Loaded flagged terms", slog.String("path", path), slog.Any("config", c))

	return c, nil
}
