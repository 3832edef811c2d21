// SPDX-License-Identifier: MPL-2.0

package fcstd

type (
	// Document is one parsed FCStd archive. It is created once per run and
	// never mutated after loading.
	Document struct {
		// Filename is the base name of the archive, used as the document's
		// identity in reports.
		Filename string

		// Objects holds the document's objects in first-seen order.
		Objects []*Object

		// Properties holds document-level properties declared outside any
		// object.
		Properties []Property
	}

	// Object is a named entity inside a document. Names are unique within a
	// document; the loader merges repeated declarations of the same name
	// (FreeCAD lists objects once in the index and again with their data).
	Object struct {
		Name string

		// Properties in declaration order.
		Properties []Property

		// Cells carries spreadsheet cell entries; non-spreadsheet objects
		// have none.
		Cells []Cell

		// Expressions holds the object's raw expression strings, already
		// XML-unescaped, in declaration order.
		Expressions []Expression
	}

	// Property is a named property of an object. Value is the literal value
	// when the document provides one inline; it may be empty.
	Property struct {
		Name  string
		Type  string
		Value string
	}

	// Cell is a spreadsheet cell entry. A cell declares an alias when its
	// Alias attribute is non-empty.
	Cell struct {
		Address string
		Alias   string
		Content string
	}

	// Expression is a raw expression string attached to an object, with the
	// property path it binds to when the document records one.
	Expression struct {
		Path  string
		Value string
	}
)

// IsSpreadsheet reports whether the object carries spreadsheet cells.
func (o *Object) IsSpreadsheet() bool {
	return len(o.Cells) > 0
}

// Aliases returns the non-empty cell aliases declared by this object, in
// declaration order.
func (o *Object) Aliases() []string {
	var aliases []string
	for _, c := range o.Cells {
		if c.Alias != "" {
			aliases = append(aliases, c.Alias)
		}
	}
	return aliases
}

// PropertyNames returns the object's property names in declaration order.
func (o *Object) PropertyNames() []string {
	names := make([]string, 0, len(o.Properties))
	for _, p := range o.Properties {
		names = append(names, p.Name)
	}
	return names
}

// Spreadsheets returns the document's spreadsheet objects in first-seen order.
func (d *Document) Spreadsheets() []*Object {
	var sheets []*Object
	for _, obj := range d.Objects {
		if obj.IsSpreadsheet() {
			sheets = append(sheets, obj)
		}
	}
	return sheets
}

// Object returns the named object, or nil if the document has none.
func (d *Document) Object(name string) *Object {
	for _, obj := range d.Objects {
		if obj.Name == name {
			return obj
		}
	}
	return nil
}
