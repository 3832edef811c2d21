// SPDX-License-Identifier: MPL-2.0

// Package report renders already-resolved audit data as grouped text, JSON,
// or CSV.
//
// Renderers are thin, deterministic transformations: every grouping sorts its
// keys ascending, so equal inputs always produce byte-identical output and
// collection order never leaks through. Empty inputs render an explicit
// "no results" form per format instead of failing.
package report
