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
	"fmt"
	"log/slog"

	"gopkg.in/yaml.v3"
)

// Config is a loaded flagged terms configuration.
// It is immutable and safe for concurrent use.
type Config struct {
	terms []*Term
}

// document is the top level of a configuration file.
type document struct {
	// FlaggedTerms is kept as a node to preserve the order of terms.
	FlaggedTerms yaml.Node `yaml:"flagged_terms"`
}

// Parse decodes a YAML flagged terms configuration.
//
// Terms keep their document order. Rules are decoded eagerly, but the presence of their
// required fields is only checked when a term is first used, see [Term.Validate].
func Parse(data []byte) (*Config, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}

	node := &doc.FlaggedTerms

	switch node.Kind {
	case 0:
		return nil, errNoFlaggedTerms

	case yaml.MappingNode:

	default:
		return nil, fmt.Errorf("line %d: %w", node.Line, errNotMapping)
	}

	terms := make([]*Term, 0, len(node.Content)/2)
	seen := make(map[string]int, len(node.Content)/2)

	for i := 0; i+1 < len(node.Content); i += 2 {
		key, value := node.Content[i], node.Content[i+1]

		var name string
		if err := key.Decode(&name); err != nil {
			return nil, err
		}

		if name == "" {
			return nil, fmt.Errorf("line %d: %w", key.Line, errEmptyTerm)
		}

		if line, ok := seen[name]; ok {
			return nil, fmt.Errorf("line %d: %w %q, first defined on line %d", key.Line, errDuplicateTerm, name, line)
		}

		seen[name] = key.Line

		var rule Rule
		if err := value.Decode(&rule); err != nil {
			return nil, fmt.Errorf("term %q: %w", name, err)
		}

		term := NewTerm(name, rule)
		if err := term.validateFiles(); err != nil {
			return nil, err
		}

		terms = append(terms, term)
	}

	return &Config{terms: terms}, nil
}

// Terms returns the flagged terms in configuration order.
func (c *Config) Terms() []*Term { return c.terms }

// LogValue implements [slog.LogValuer].
func (c *Config) LogValue() slog.Value {
	names := make([]string, len(c.terms))
	for i, t := range c.terms {
		names[i] = t.name
	}

	return slog.GroupValue(slog.Int("count", len(c.terms)), slog.Any("terms", names))
}

// Matcher returns a [Matcher] for candidates found in filename.
// Terms whose allowed files match filename are left out, an empty filename keeps all terms.
func (c *Config) Matcher(filename string) Matcher {
	if filename == "" {
		return Matcher{terms: c.terms}
	}

	terms := make([]*Term, 0, len(c.terms))

	for _, t := range c.terms {
		if !t.ExcludedFor(filename) {
			terms = append(terms, t)
		}
	}

	return Matcher{terms: terms}
}

// Check reports the first violation in candidate, considering all terms.
func (c *Config) Check(candidate string) (Violation, bool, error) {
	return Matcher{terms: c.terms}.Check(candidate)
}
