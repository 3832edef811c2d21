// SPDX-License-Identifier: MPL-2.0

package report

import (
	"bytes"
	"sort"
	"strings"
	"testing"

	"fcaudit-cli/internal/reference"
)

func sampleRefs() []reference.Reference {
	return []reference.Reference{
		{Alias: "Width", Filename: "b.FCStd", ObjectName: "Pad", Expression: "<<params>>.Width * 2", Spreadsheet: "params"},
		{Alias: "Height", Filename: "a.FCStd", ObjectName: "Sketch", Expression: "<<params>>.Height", Spreadsheet: "params"},
		{Alias: "Height", Filename: "b.FCStd", ObjectName: "Pad", Expression: "<<a>>#<<params>>.Height + 1", Spreadsheet: "params"},
		{Alias: "Height", Filename: "a.FCStd", ObjectName: "Pad", Expression: "<<params>>.Height - 5", Spreadsheet: "params"},
	}
}

func render(t *testing.T, fn func(w *bytes.Buffer)) string {
	t.Helper()
	var buf bytes.Buffer
	fn(&buf)
	return buf.String()
}

func TestWriteReferencesByAlias(t *testing.T) {
	t.Parallel()

	got := render(t, func(w *bytes.Buffer) {
		if err := WriteReferencesByAlias(w, sampleRefs()); err != nil {
			t.Fatal(err)
		}
	})

	want := `
Alias: Height
  File: a.FCStd
    Object: Pad
      Expression: <<params>>.Height - 5
    Object: Sketch
      Expression: <<params>>.Height
  File: b.FCStd
    Object: Pad
      Expression: <<a>>#<<params>>.Height + 1

Alias: Width
  File: b.FCStd
    Object: Pad
      Expression: <<params>>.Width * 2
`
	if got != want {
		t.Errorf("by-alias output = %q, want %q", got, want)
	}
}

func TestWriteReferencesByFile(t *testing.T) {
	t.Parallel()

	got := render(t, func(w *bytes.Buffer) {
		if err := WriteReferencesByFile(w, sampleRefs()); err != nil {
			t.Fatal(err)
		}
	})

	want := `
File: a.FCStd
  Alias: Height
    Object: Pad
      Expression: <<params>>.Height - 5
    Object: Sketch
      Expression: <<params>>.Height

File: b.FCStd
  Alias: Height
    Object: Pad
      Expression: <<a>>#<<params>>.Height + 1
  Alias: Width
    Object: Pad
      Expression: <<params>>.Width * 2
`
	if got != want {
		t.Errorf("by-file output = %q, want %q", got, want)
	}
}

func TestWriteReferencesByObject(t *testing.T) {
	t.Parallel()

	got := render(t, func(w *bytes.Buffer) {
		if err := WriteReferencesByObject(w, sampleRefs()); err != nil {
			t.Fatal(err)
		}
	})

	want := `
Object: Pad
  File: a.FCStd
    Alias: Height
      Expression: <<params>>.Height - 5
  File: b.FCStd
    Alias: Height
      Expression: <<a>>#<<params>>.Height + 1
    Alias: Width
      Expression: <<params>>.Width * 2

Object: Sketch
  File: a.FCStd
    Alias: Height
      Expression: <<params>>.Height
`
	if got != want {
		t.Errorf("by-object output = %q, want %q", got, want)
	}
}

// Every grouping must carry the same multiset of facts; only nesting and
// ordering differ.
func TestGroupingEquivalence(t *testing.T) {
	t.Parallel()

	refs := sampleRefs()

	counts := func(out string) map[string]int {
		c := make(map[string]int)
		for _, line := range strings.Split(out, "\n") {
			line = strings.TrimSpace(line)
			if line != "" {
				c[line]++
			}
		}
		return c
	}

	byAlias := render(t, func(w *bytes.Buffer) { _ = WriteReferencesByAlias(w, refs) })
	byFile := render(t, func(w *bytes.Buffer) { _ = WriteReferencesByFile(w, refs) })
	byObject := render(t, func(w *bytes.Buffer) { _ = WriteReferencesByObject(w, refs) })

	for _, prefix := range []string{"Expression: "} {
		a, f, o := 0, 0, 0
		for line, n := range counts(byAlias) {
			if strings.HasPrefix(line, prefix) {
				a += n
			}
		}
		for line, n := range counts(byFile) {
			if strings.HasPrefix(line, prefix) {
				f += n
			}
		}
		for line, n := range counts(byObject) {
			if strings.HasPrefix(line, prefix) {
				o += n
			}
		}
		if a != f || f != o {
			t.Errorf("expression line counts differ: by-alias=%d by-file=%d by-object=%d", a, f, o)
		}
	}
}

func TestWriteReferencesDeterministic(t *testing.T) {
	t.Parallel()

	refs := sampleRefs()

	// Shuffle the input; sorted groupings must not notice.
	shuffled := make([]reference.Reference, len(refs))
	copy(shuffled, refs)
	sort.Slice(shuffled, func(i, j int) bool { return shuffled[i].Expression > shuffled[j].Expression })

	first := render(t, func(w *bytes.Buffer) { _ = WriteReferencesByAlias(w, refs) })
	second := render(t, func(w *bytes.Buffer) { _ = WriteReferencesByAlias(w, shuffled) })
	if first != second {
		t.Errorf("by-alias output depends on input order:\n%q\nvs\n%q", first, second)
	}
}

func TestWriteReferencesJSON(t *testing.T) {
	t.Parallel()

	refs := []reference.Reference{{
		Alias:       "HullWidth",
		Filename:    "Hull.FCStd",
		ObjectName:  "Sketch",
		Expression:  "<<params>>.HullWidth",
		Spreadsheet: "params",
	}}

	got := render(t, func(w *bytes.Buffer) {
		if err := WriteReferencesJSON(w, refs); err != nil {
			t.Fatal(err)
		}
	})

	want := `{
  "HullWidth": [
    {
      "filename": "Hull.FCStd",
      "object_name": "Sketch",
      "expression": "<<params>>.HullWidth",
      "spreadsheet": "params",
      "alias": "HullWidth"
    }
  ]
}
`
	if got != want {
		t.Errorf("JSON output = %q, want %q", got, want)
	}
}

func TestWriteReferencesCSV(t *testing.T) {
	t.Parallel()

	got := render(t, func(w *bytes.Buffer) {
		if err := WriteReferencesCSV(w, sampleRefs()); err != nil {
			t.Fatal(err)
		}
	})

	want := `"alias","filename","object_name","expression"
"Height","a.FCStd","Pad","<<params>>.Height - 5"
"Height","a.FCStd","Sketch","<<params>>.Height"
"Height","b.FCStd","Pad","<<a>>#<<params>>.Height + 1"
"Width","b.FCStd","Pad","<<params>>.Width * 2"
`
	if got != want {
		t.Errorf("CSV output = %q, want %q", got, want)
	}
}

func TestWriteReferencesCSVQuotesEmbeddedQuotes(t *testing.T) {
	t.Parallel()

	refs := []reference.Reference{{
		Alias:      "X",
		Filename:   "a.FCStd",
		ObjectName: "Pad",
		Expression: `say "hi" <<params>>.X`,
	}}

	got := render(t, func(w *bytes.Buffer) {
		if err := WriteReferencesCSV(w, refs); err != nil {
			t.Fatal(err)
		}
	})
	if !strings.Contains(got, `"say ""hi"" <<params>>.X"`) {
		t.Errorf("CSV output does not escape quotes: %q", got)
	}
}

func TestWriteReferencesEmpty(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		fn   func(w *bytes.Buffer) error
		want string
	}{
		{"by-alias", func(w *bytes.Buffer) error { return WriteReferencesByAlias(w, nil) }, "No alias references found\n"},
		{"by-file", func(w *bytes.Buffer) error { return WriteReferencesByFile(w, nil) }, "No alias references found\n"},
		{"by-object", func(w *bytes.Buffer) error { return WriteReferencesByObject(w, nil) }, "No alias references found\n"},
		{"csv", func(w *bytes.Buffer) error { return WriteReferencesCSV(w, nil) }, "No alias references found\n"},
		{"json", func(w *bytes.Buffer) error { return WriteReferencesJSON(w, nil) }, "{\n  \"message\": \"No alias references found\"\n}\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			if err := tt.fn(&buf); err != nil {
				t.Fatal(err)
			}
			if buf.String() != tt.want {
				t.Errorf("empty output = %q, want %q", buf.String(), tt.want)
			}
		})
	}
}

func TestUnreferencedFiles(t *testing.T) {
	t.Parallel()

	refs := []reference.Reference{{Alias: "H", Filename: "a.FCStd", ObjectName: "Pad", Expression: "x"}}
	got := UnreferencedFiles([]string{"c.FCStd", "a.FCStd", "b.FCStd"}, refs)
	if len(got) != 2 || got[0] != "b.FCStd" || got[1] != "c.FCStd" {
		t.Errorf("UnreferencedFiles() = %v, want [b.FCStd c.FCStd]", got)
	}
}
