// SPDX-License-Identifier: MPL-2.0

package report

import (
	"fmt"
	"io"

	"golang.org/x/exp/slices"

	"fcaudit-cli/internal/reference"
)

const noAliasesMsg = "No aliases found"

// WriteAliasesText renders the distinct alias names, one per line, sorted.
func WriteAliasesText(w io.Writer, decls []reference.AliasDecl) error {
	names := distinctAliasNames(decls)
	if len(names) == 0 {
		_, err := fmt.Fprintln(w, noAliasesMsg)
		return err
	}
	for _, name := range names {
		if _, err := fmt.Fprintln(w, name); err != nil {
			return err
		}
	}
	return nil
}

// WriteAliasesByFile renders alias declarations grouped by filename. A name
// declared in several files appears under each of them.
func WriteAliasesByFile(w io.Writer, decls []reference.AliasDecl) error {
	if len(decls) == 0 {
		_, err := fmt.Fprintln(w, noAliasesMsg)
		return err
	}

	byFile := make(map[string]map[string]struct{})
	for _, d := range decls {
		names, ok := byFile[d.Filename]
		if !ok {
			names = make(map[string]struct{})
			byFile[d.Filename] = names
		}
		names[d.Name] = struct{}{}
	}

	for _, filename := range sortedKeys(byFile) {
		if _, err := fmt.Fprintf(w, "\nFile: %s\n", filename); err != nil {
			return err
		}
		for _, name := range sortedKeys(byFile[filename]) {
			fmt.Fprintf(w, "  Alias: %s\n", name)
		}
	}
	return nil
}

// WriteAliasesByObject renders alias declarations grouped by the spreadsheet
// object that declares them, then by file.
func WriteAliasesByObject(w io.Writer, decls []reference.AliasDecl) error {
	if len(decls) == 0 {
		_, err := fmt.Fprintln(w, noAliasesMsg)
		return err
	}

	bySheet := make(map[string]map[string]map[string]struct{})
	for _, d := range decls {
		files, ok := bySheet[d.Spreadsheet]
		if !ok {
			files = make(map[string]map[string]struct{})
			bySheet[d.Spreadsheet] = files
		}
		names, ok := files[d.Filename]
		if !ok {
			names = make(map[string]struct{})
			files[d.Filename] = names
		}
		names[d.Name] = struct{}{}
	}

	for _, sheet := range sortedKeys(bySheet) {
		if _, err := fmt.Fprintf(w, "\nObject: %s\n", sheet); err != nil {
			return err
		}
		files := bySheet[sheet]
		for _, filename := range sortedKeys(files) {
			fmt.Fprintf(w, "  File: %s\n", filename)
			for _, name := range sortedKeys(files[filename]) {
				fmt.Fprintf(w, "    Alias: %s\n", name)
			}
		}
	}
	return nil
}

// WriteAliasesJSON renders the distinct alias names as a sorted JSON array
// under an "aliases" key.
func WriteAliasesJSON(w io.Writer, decls []reference.AliasDecl) error {
	names := distinctAliasNames(decls)
	if len(names) == 0 {
		return writeJSON(w, map[string]string{"message": noAliasesMsg})
	}
	return writeJSON(w, map[string][]string{"aliases": names})
}

// WriteAliasesCSV renders one sorted alias name per row under an "Alias"
// header. An empty set yields the header only.
func WriteAliasesCSV(w io.Writer, decls []reference.AliasDecl) error {
	if err := writeCSVRow(w, "Alias"); err != nil {
		return err
	}
	for _, name := range distinctAliasNames(decls) {
		if err := writeCSVRow(w, name); err != nil {
			return err
		}
	}
	return nil
}

func distinctAliasNames(decls []reference.AliasDecl) []string {
	seen := make(map[string]struct{}, len(decls))
	var names []string
	for _, d := range decls {
		if _, ok := seen[d.Name]; ok {
			continue
		}
		seen[d.Name] = struct{}{}
		names = append(names, d.Name)
	}
	slices.Sort(names)
	return names
}
