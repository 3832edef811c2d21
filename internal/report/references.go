// SPDX-License-Identifier: MPL-2.0

package report

import (
	"encoding/json"
	"fmt"
	"io"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"fcaudit-cli/internal/reference"
)

// noReferencesMsg is the explicit empty-result form for reference reports.
const noReferencesMsg = "No alias references found"

// WriteReferencesByAlias renders references grouped alias > file > object,
// each level sorted ascending. Expressions within an (alias, file, object)
// leaf keep first-seen order, de-duplicated.
func WriteReferencesByAlias(w io.Writer, refs []reference.Reference) error {
	if len(refs) == 0 {
		_, err := fmt.Fprintln(w, noReferencesMsg)
		return err
	}

	byAlias := make(map[string]map[string]map[string][]string)
	for _, ref := range refs {
		files, ok := byAlias[ref.Alias]
		if !ok {
			files = make(map[string]map[string][]string)
			byAlias[ref.Alias] = files
		}
		objs, ok := files[ref.Filename]
		if !ok {
			objs = make(map[string][]string)
			files[ref.Filename] = objs
		}
		objs[ref.ObjectName] = appendUnique(objs[ref.ObjectName], ref.Expression)
	}

	for _, alias := range sortedKeys(byAlias) {
		if _, err := fmt.Fprintf(w, "\nAlias: %s\n", alias); err != nil {
			return err
		}
		files := byAlias[alias]
		for _, filename := range sortedKeys(files) {
			fmt.Fprintf(w, "  File: %s\n", filename)
			objs := files[filename]
			for _, objName := range sortedKeys(objs) {
				fmt.Fprintf(w, "    Object: %s\n", objName)
				for _, expr := range objs[objName] {
					fmt.Fprintf(w, "      Expression: %s\n", expr)
				}
			}
		}
	}
	return nil
}

// WriteReferencesByFile renders references grouped file > alias > object.
func WriteReferencesByFile(w io.Writer, refs []reference.Reference) error {
	if len(refs) == 0 {
		_, err := fmt.Fprintln(w, noReferencesMsg)
		return err
	}

	byFile := make(map[string]map[string]map[string][]string)
	for _, ref := range refs {
		aliases, ok := byFile[ref.Filename]
		if !ok {
			aliases = make(map[string]map[string][]string)
			byFile[ref.Filename] = aliases
		}
		objs, ok := aliases[ref.Alias]
		if !ok {
			objs = make(map[string][]string)
			aliases[ref.Alias] = objs
		}
		objs[ref.ObjectName] = appendUnique(objs[ref.ObjectName], ref.Expression)
	}

	for _, filename := range sortedKeys(byFile) {
		if _, err := fmt.Fprintf(w, "\nFile: %s\n", filename); err != nil {
			return err
		}
		aliases := byFile[filename]
		for _, alias := range sortedKeys(aliases) {
			fmt.Fprintf(w, "  Alias: %s\n", alias)
			objs := aliases[alias]
			for _, objName := range sortedKeys(objs) {
				fmt.Fprintf(w, "    Object: %s\n", objName)
				for _, expr := range objs[objName] {
					fmt.Fprintf(w, "      Expression: %s\n", expr)
				}
			}
		}
	}
	return nil
}

// WriteReferencesByObject renders references grouped object > file > alias.
func WriteReferencesByObject(w io.Writer, refs []reference.Reference) error {
	if len(refs) == 0 {
		_, err := fmt.Fprintln(w, noReferencesMsg)
		return err
	}

	byObject := make(map[string]map[string]map[string][]string)
	for _, ref := range refs {
		files, ok := byObject[ref.ObjectName]
		if !ok {
			files = make(map[string]map[string][]string)
			byObject[ref.ObjectName] = files
		}
		aliases, ok := files[ref.Filename]
		if !ok {
			aliases = make(map[string][]string)
			files[ref.Filename] = aliases
		}
		aliases[ref.Alias] = appendUnique(aliases[ref.Alias], ref.Expression)
	}

	for _, objName := range sortedKeys(byObject) {
		if _, err := fmt.Fprintf(w, "\nObject: %s\n", objName); err != nil {
			return err
		}
		files := byObject[objName]
		for _, filename := range sortedKeys(files) {
			fmt.Fprintf(w, "  File: %s\n", filename)
			aliases := files[filename]
			for _, alias := range sortedKeys(aliases) {
				fmt.Fprintf(w, "    Alias: %s\n", alias)
				for _, expr := range aliases[alias] {
					fmt.Fprintf(w, "      Expression: %s\n", expr)
				}
			}
		}
	}
	return nil
}

// WriteReferencesJSON renders the references as a mapping from alias name to
// an ordered list of records. Records within an alias sort by filename, then
// object name, keeping first-seen order beyond that.
func WriteReferencesJSON(w io.Writer, refs []reference.Reference) error {
	if len(refs) == 0 {
		return writeJSON(w, map[string]string{"message": noReferencesMsg})
	}

	grouped := make(map[string][]reference.Reference)
	for _, ref := range refs {
		grouped[ref.Alias] = append(grouped[ref.Alias], ref)
	}
	for alias := range grouped {
		slices.SortStableFunc(grouped[alias], func(a, b reference.Reference) int {
			if a.Filename != b.Filename {
				if a.Filename < b.Filename {
					return -1
				}
				return 1
			}
			if a.ObjectName != b.ObjectName {
				if a.ObjectName < b.ObjectName {
					return -1
				}
				return 1
			}
			return 0
		})
	}
	return writeJSON(w, grouped)
}

// WriteReferencesCSV renders one data row per Reference record, sorted by
// alias, filename, then object name, with every value double-quoted.
func WriteReferencesCSV(w io.Writer, refs []reference.Reference) error {
	if len(refs) == 0 {
		_, err := fmt.Fprintln(w, noReferencesMsg)
		return err
	}

	if err := writeCSVRow(w, "alias", "filename", "object_name", "expression"); err != nil {
		return err
	}

	rows := make([]reference.Reference, len(refs))
	copy(rows, refs)
	slices.SortStableFunc(rows, func(a, b reference.Reference) int {
		for _, pair := range [][2]string{
			{a.Alias, b.Alias},
			{a.Filename, b.Filename},
			{a.ObjectName, b.ObjectName},
		} {
			if pair[0] != pair[1] {
				if pair[0] < pair[1] {
					return -1
				}
				return 1
			}
		}
		return 0
	})
	for _, ref := range rows {
		if err := writeCSVRow(w, ref.Alias, ref.Filename, ref.ObjectName, ref.Expression); err != nil {
			return err
		}
	}
	return nil
}

// UnreferencedFiles returns the processed files that contributed no
// references, sorted ascending. Reported as a diagnostic, never an error.
func UnreferencedFiles(processed []string, refs []reference.Reference) []string {
	withRefs := make(map[string]struct{}, len(refs))
	for _, ref := range refs {
		withRefs[ref.Filename] = struct{}{}
	}
	var empty []string
	for _, f := range processed {
		if _, ok := withRefs[f]; !ok {
			empty = append(empty, f)
		}
	}
	slices.Sort(empty)
	return empty
}

func sortedKeys[V any](m map[string]V) []string {
	keys := maps.Keys(m)
	slices.Sort(keys)
	return keys
}

func appendUnique(list []string, s string) []string {
	if slices.Contains(list, s) {
		return list
	}
	return append(list, s)
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}
