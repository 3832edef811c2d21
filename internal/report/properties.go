// SPDX-License-Identifier: MPL-2.0

package report

import (
	"fmt"
	"io"

	"golang.org/x/exp/slices"

	"fcaudit-cli/internal/fcstd"
)

const noPropertiesMsg = "No properties found"

// DocumentObjectName is the pseudo-object used for properties declared at
// document level, outside any object.
const DocumentObjectName = "Document"

// PropertyRecord is one (file, object, property) fact from a loaded document.
type PropertyRecord struct {
	File     string
	Object   string
	Property string
}

// CollectProperties flattens the property names of every document, including
// document-level properties, into records the renderers consume.
func CollectProperties(docs []*fcstd.Document) []PropertyRecord {
	var records []PropertyRecord
	for _, doc := range docs {
		for _, prop := range doc.Properties {
			records = append(records, PropertyRecord{File: doc.Filename, Object: DocumentObjectName, Property: prop.Name})
		}
		for _, obj := range doc.Objects {
			for _, prop := range obj.Properties {
				records = append(records, PropertyRecord{File: doc.Filename, Object: obj.Name, Property: prop.Name})
			}
		}
	}
	return records
}

type propertyMatcher interface {
	Match(name string) bool
}

// FilterProperties returns the records whose property name matches.
func FilterProperties(records []PropertyRecord, m propertyMatcher) []PropertyRecord {
	var kept []PropertyRecord
	for _, r := range records {
		if m.Match(r.Property) {
			kept = append(kept, r)
		}
	}
	return kept
}

// WritePropertiesText renders the distinct property names, sorted, one per
// line.
func WritePropertiesText(w io.Writer, records []PropertyRecord) error {
	names := distinctPropertyNames(records)
	if len(names) == 0 {
		_, err := fmt.Fprintln(w, noPropertiesMsg)
		return err
	}
	for _, name := range names {
		if _, err := fmt.Fprintln(w, name); err != nil {
			return err
		}
	}
	return nil
}

// WritePropertiesByFile renders distinct property names grouped by filename.
func WritePropertiesByFile(w io.Writer, records []PropertyRecord) error {
	if len(records) == 0 {
		_, err := fmt.Fprintln(w, noPropertiesMsg)
		return err
	}

	byFile := make(map[string]map[string]struct{})
	for _, r := range records {
		names, ok := byFile[r.File]
		if !ok {
			names = make(map[string]struct{})
			byFile[r.File] = names
		}
		names[r.Property] = struct{}{}
	}

	for _, filename := range sortedKeys(byFile) {
		if _, err := fmt.Fprintf(w, "\nFile: %s\n", filename); err != nil {
			return err
		}
		for _, name := range sortedKeys(byFile[filename]) {
			fmt.Fprintf(w, "  Property: %s\n", name)
		}
	}
	return nil
}

// WritePropertiesByObject renders property names grouped file > object.
func WritePropertiesByObject(w io.Writer, records []PropertyRecord) error {
	if len(records) == 0 {
		_, err := fmt.Fprintln(w, noPropertiesMsg)
		return err
	}

	byFile := make(map[string]map[string]map[string]struct{})
	for _, r := range records {
		objs, ok := byFile[r.File]
		if !ok {
			objs = make(map[string]map[string]struct{})
			byFile[r.File] = objs
		}
		names, ok := objs[r.Object]
		if !ok {
			names = make(map[string]struct{})
			objs[r.Object] = names
		}
		names[r.Property] = struct{}{}
	}

	for _, filename := range sortedKeys(byFile) {
		if _, err := fmt.Fprintf(w, "\nFile: %s\n", filename); err != nil {
			return err
		}
		objs := byFile[filename]
		for _, objName := range sortedKeys(objs) {
			fmt.Fprintf(w, "  Object: %s\n", objName)
			for _, name := range sortedKeys(objs[objName]) {
				fmt.Fprintf(w, "    Property: %s\n", name)
			}
		}
	}
	return nil
}

// propertiesFileJSON is the per-file element of the JSON properties report.
type propertiesFileJSON struct {
	File       string             `json:"file"`
	Properties []propertyNameJSON `json:"properties"`
}

type propertyNameJSON struct {
	Name   string `json:"name"`
	Object string `json:"object"`
}

// WritePropertiesJSON renders a per-file listing of (name, object) pairs,
// files and pairs both sorted.
func WritePropertiesJSON(w io.Writer, records []PropertyRecord) error {
	if len(records) == 0 {
		return writeJSON(w, map[string]string{"message": noPropertiesMsg})
	}

	byFile := make(map[string][]propertyNameJSON)
	for _, r := range records {
		byFile[r.File] = append(byFile[r.File], propertyNameJSON{Name: r.Property, Object: r.Object})
	}

	out := make([]propertiesFileJSON, 0, len(byFile))
	for _, filename := range sortedKeys(byFile) {
		props := byFile[filename]
		slices.SortStableFunc(props, func(a, b propertyNameJSON) int {
			if a.Name != b.Name {
				if a.Name < b.Name {
					return -1
				}
				return 1
			}
			if a.Object != b.Object {
				if a.Object < b.Object {
					return -1
				}
				return 1
			}
			return 0
		})
		out = append(out, propertiesFileJSON{File: filename, Properties: props})
	}
	return writeJSON(w, out)
}

// WritePropertiesCSV renders one row per record sorted by file, object, then
// property, with every value double-quoted.
func WritePropertiesCSV(w io.Writer, records []PropertyRecord) error {
	if err := writeCSVRow(w, "file", "object", "property"); err != nil {
		return err
	}

	rows := make([]PropertyRecord, len(records))
	copy(rows, records)
	slices.SortStableFunc(rows, func(a, b PropertyRecord) int {
		for _, pair := range [][2]string{
			{a.File, b.File},
			{a.Object, b.Object},
			{a.Property, b.Property},
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
	for _, r := range rows {
		if err := writeCSVRow(w, r.File, r.Object, r.Property); err != nil {
			return err
		}
	}
	return nil
}

func distinctPropertyNames(records []PropertyRecord) []string {
	seen := make(map[string]struct{}, len(records))
	var names []string
	for _, r := range records {
		if _, ok := seen[r.Property]; ok {
			continue
		}
		seen[r.Property] = struct{}{}
		names = append(names, r.Property)
	}
	slices.Sort(names)
	return names
}
