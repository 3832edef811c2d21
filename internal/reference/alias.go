// SPDX-License-Identifier: MPL-2.0

package reference

import (
	"github.com/charmbracelet/log"

	"fcaudit-cli/internal/fcstd"
)

type (
	// AliasDecl records one alias declaration for provenance: the name, the
	// spreadsheet that declares it, and the file the spreadsheet lives in.
	// Two documents may declare the same alias name; both declarations are
	// kept as distinct entries.
	AliasDecl struct {
		Name        string
		Spreadsheet string
		Filename    string
	}

	// AliasSet holds alias presence by bare name. Matching in the collector
	// is by name only: any document declaring a name makes it eligible in
	// every other document's expressions, since cross-document references
	// name an alias without knowing which file declared it.
	AliasSet map[string]struct{}
)

// Contains reports whether name is declared anywhere in the input set.
func (s AliasSet) Contains(name string) bool {
	_, ok := s[name]
	return ok
}

// Names returns the set's alias names in unspecified order.
func (s AliasSet) Names() []string {
	names := make([]string, 0, len(s))
	for name := range s {
		names = append(names, name)
	}
	return names
}

// ExtractAliases walks every spreadsheet cell of every document and returns
// the union of alias declarations plus the bare-name set used for matching.
func ExtractAliases(docs []*fcstd.Document) ([]AliasDecl, AliasSet) {
	var decls []AliasDecl
	set := make(AliasSet)

	for _, doc := range docs {
		for _, sheet := range doc.Spreadsheets() {
			for _, cell := range sheet.Cells {
				if cell.Alias == "" {
					continue
				}
				decls = append(decls, AliasDecl{
					Name:        cell.Alias,
					Spreadsheet: sheet.Name,
					Filename:    doc.Filename,
				})
				set[cell.Alias] = struct{}{}
			}
		}
		log.Debug("extracted aliases", "file", doc.Filename, "total", len(set))
	}

	return decls, set
}
