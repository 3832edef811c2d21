// SPDX-License-Identifier: MPL-2.0

// Package pattern filters alias and property names against glob patterns.
//
// A filter is built from a comma-separated pattern list ('*' and '?'
// wildcards, case-sensitive literals otherwise); a name passes when any
// pattern matches. The absence of a filter means "match everything".
package pattern

import (
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// Filter matches names against a list of glob patterns with OR semantics.
// The zero value (no patterns) matches every name.
type Filter struct {
	patterns []string
}

// New builds a Filter from a comma-separated pattern list. Empty segments
// and surrounding whitespace are dropped; an empty or all-blank spec yields
// a match-everything filter.
func New(spec string) *Filter {
	var patterns []string
	for _, p := range strings.Split(spec, ",") {
		if p = strings.TrimSpace(p); p != "" {
			patterns = append(patterns, p)
		}
	}
	return &Filter{patterns: patterns}
}

// Empty reports whether the filter matches everything.
func (f *Filter) Empty() bool {
	return f == nil || len(f.patterns) == 0
}

// Match reports whether name matches at least one pattern, or whether the
// filter is empty. Patterns that fail to compile match nothing.
func (f *Filter) Match(name string) bool {
	if f.Empty() {
		return true
	}
	for _, p := range f.patterns {
		if ok, err := doublestar.Match(p, name); err == nil && ok {
			return true
		}
	}
	return false
}

// Names returns the subset of names that match, preserving input order. An
// empty result is not an error; the report layer renders it explicitly.
func (f *Filter) Names(names []string) []string {
	if f.Empty() {
		return names
	}
	var kept []string
	for _, n := range names {
		if f.Match(n) {
			kept = append(kept, n)
		}
	}
	return kept
}
