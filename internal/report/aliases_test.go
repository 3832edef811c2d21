// SPDX-License-Identifier: MPL-2.0

package report

import (
	"bytes"
	"testing"

	"fcaudit-cli/internal/reference"
)

func sampleDecls() []reference.AliasDecl {
	return []reference.AliasDecl{
		{Name: "Width", Spreadsheet: "params", Filename: "b.FCStd"},
		{Name: "Height", Spreadsheet: "params", Filename: "a.FCStd"},
		{Name: "Height", Spreadsheet: "globals", Filename: "b.FCStd"},
	}
}

func TestWriteAliasesText(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	if err := WriteAliasesText(&buf, sampleDecls()); err != nil {
		t.Fatal(err)
	}
	want := "Height\nWidth\n"
	if buf.String() != want {
		t.Errorf("text output = %q, want %q", buf.String(), want)
	}
}

func TestWriteAliasesByFile(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	if err := WriteAliasesByFile(&buf, sampleDecls()); err != nil {
		t.Fatal(err)
	}
	want := `
File: a.FCStd
  Alias: Height

File: b.FCStd
  Alias: Height
  Alias: Width
`
	if buf.String() != want {
		t.Errorf("by-file output = %q, want %q", buf.String(), want)
	}
}

func TestWriteAliasesByObject(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	if err := WriteAliasesByObject(&buf, sampleDecls()); err != nil {
		t.Fatal(err)
	}
	want := `
Object: globals
  File: b.FCStd
    Alias: Height

Object: params
  File: a.FCStd
    Alias: Height
  File: b.FCStd
    Alias: Width
`
	if buf.String() != want {
		t.Errorf("by-object output = %q, want %q", buf.String(), want)
	}
}

func TestWriteAliasesJSON(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	if err := WriteAliasesJSON(&buf, sampleDecls()); err != nil {
		t.Fatal(err)
	}
	want := `{
  "aliases": [
    "Height",
    "Width"
  ]
}
`
	if buf.String() != want {
		t.Errorf("JSON output = %q, want %q", buf.String(), want)
	}
}

func TestWriteAliasesCSV(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	if err := WriteAliasesCSV(&buf, sampleDecls()); err != nil {
		t.Fatal(err)
	}
	want := "\"Alias\"\n\"Height\"\n\"Width\"\n"
	if buf.String() != want {
		t.Errorf("CSV output = %q, want %q", buf.String(), want)
	}
}

func TestWriteAliasesEmpty(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	if err := WriteAliasesText(&buf, nil); err != nil {
		t.Fatal(err)
	}
	if buf.String() != "No aliases found\n" {
		t.Errorf("empty text output = %q", buf.String())
	}

	buf.Reset()
	if err := WriteAliasesJSON(&buf, nil); err != nil {
		t.Fatal(err)
	}
	if buf.String() != "{\n  \"message\": \"No aliases found\"\n}\n" {
		t.Errorf("empty JSON output = %q", buf.String())
	}

	buf.Reset()
	if err := WriteAliasesCSV(&buf, nil); err != nil {
		t.Fatal(err)
	}
	if buf.String() != "\"Alias\"\n" {
		t.Errorf("empty CSV output = %q", buf.String())
	}
}
