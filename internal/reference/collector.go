// SPDX-License-Identifier: MPL-2.0

package reference

import (
	"regexp"

	"github.com/charmbracelet/log"

	"fcaudit-cli/internal/fcstd"
)

// Reference is the resolved fact "alias Alias, declared in spreadsheet
// Spreadsheet, is used in expression Expression of object ObjectName in file
// Filename". It is immutable once constructed; every output format consumes
// these records unchanged.
type Reference struct {
	Filename    string `json:"filename"`
	ObjectName  string `json:"object_name"`
	Expression  string `json:"expression"`
	Spreadsheet string `json:"spreadsheet"`
	Alias       string `json:"alias"`
}

// usagePattern matches the two alias-usage shapes:
//
//	<<SpreadsheetName>>.AliasName
//	<<DocumentAlias>>#<<SpreadsheetName>>.AliasName
//
// Group 1 is the optional document alias, group 2 the spreadsheet name,
// group 3 the alias identifier. Expressions are never evaluated, so a full
// parser is unnecessary; only the qualifiers and the trailing identifier are
// extracted. The document-alias token is informational: it is not validated
// against the loaded set, so usages are reported even when the referenced
// document was not supplied.
var usagePattern = regexp.MustCompile(`(?:<<([^<>#]+)>>#)?<<([^<>#]+)>>\.([A-Za-z_][A-Za-z0-9_]*)`)

// Collect scans every expression of every object in every document against
// the merged alias set and returns the flat sequence of Reference records.
//
// Order follows document input order, then object order, then expression
// order, then match order within an expression; reports re-sort this
// deterministically, so collection order never leaks into output. Names
// inside <<...>> syntax that match no known alias are silently excluded.
func Collect(docs []*fcstd.Document, known AliasSet) []Reference {
	var refs []Reference

	for _, doc := range docs {
		before := len(refs)
		for _, obj := range doc.Objects {
			for _, expr := range obj.Expressions {
				refs = appendUsages(refs, doc.Filename, obj.Name, expr.Value, known)
			}
			// Literal-valued properties can carry expression syntax too.
			for _, prop := range obj.Properties {
				refs = appendUsages(refs, doc.Filename, obj.Name, prop.Value, known)
			}
		}
		log.Debug("collected references", "file", doc.Filename, "count", len(refs)-before)
	}

	return refs
}

// appendUsages emits one Reference per known-alias usage in expr. A single
// expression may use several aliases; each usage yields its own record
// sharing the full expression string, since each grouping is keyed by alias.
func appendUsages(refs []Reference, filename, objectName, expr string, known AliasSet) []Reference {
	if expr == "" {
		return refs
	}
	for _, m := range usagePattern.FindAllStringSubmatch(expr, -1) {
		alias := m[3]
		if !known.Contains(alias) {
			continue
		}
		refs = append(refs, Reference{
			Alias:       alias,
			Filename:    filename,
			ObjectName:  objectName,
			Expression:  expr,
			Spreadsheet: m[2],
		})
	}
	return refs
}
