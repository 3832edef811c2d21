// SPDX-License-Identifier: MPL-2.0

package fcstd

import (
	"reflect"
	"testing"
)

func TestObjectAccessors(t *testing.T) {
	t.Parallel()

	sheet := &Object{
		Name: "params",
		Cells: []Cell{
			{Address: "A1", Alias: "Width", Content: "100"},
			{Address: "A2", Content: "40"},
			{Address: "A3", Alias: "Height", Content: "20"},
		},
		Properties: []Property{{Name: "cells"}, {Name: "Label"}},
	}
	plain := &Object{Name: "Pad"}

	if !sheet.IsSpreadsheet() {
		t.Error("IsSpreadsheet() = false for object with cells")
	}
	if plain.IsSpreadsheet() {
		t.Error("IsSpreadsheet() = true for object without cells")
	}

	if got := sheet.Aliases(); !reflect.DeepEqual(got, []string{"Width", "Height"}) {
		t.Errorf("Aliases() = %v", got)
	}
	if got := plain.Aliases(); len(got) != 0 {
		t.Errorf("Aliases() = %v, want empty", got)
	}

	if got := sheet.PropertyNames(); !reflect.DeepEqual(got, []string{"cells", "Label"}) {
		t.Errorf("PropertyNames() = %v", got)
	}
}

func TestDocumentAccessors(t *testing.T) {
	t.Parallel()

	sheet := &Object{Name: "params", Cells: []Cell{{Address: "A1", Alias: "W"}}}
	pad := &Object{Name: "Pad"}
	doc := &Document{Filename: "a.FCStd", Objects: []*Object{pad, sheet}}

	sheets := doc.Spreadsheets()
	if len(sheets) != 1 || sheets[0] != sheet {
		t.Errorf("Spreadsheets() = %v", sheets)
	}

	if doc.Object("Pad") != pad {
		t.Error("Object(Pad) did not return the Pad object")
	}
	if doc.Object("nope") != nil {
		t.Error("Object(nope) != nil")
	}
}
