// SPDX-License-Identifier: MPL-2.0

package fcstd

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/klauspost/compress/zip"
)

// DocumentEntry is the archive entry holding the document description.
const DocumentEntry = "Document.xml"

// maxElementDepth bounds XML nesting so a hostile document cannot exhaust the
// stack. Real documents nest a handful of levels deep.
const maxElementDepth = 256

// IsDocumentFile reports whether path is a readable FCStd archive, i.e. a zip
// file containing a Document.xml entry. It never returns an error; any
// failure to open or read the file yields false.
func IsDocumentFile(path string) bool {
	zr, err := zip.OpenReader(path)
	if err != nil {
		log.Debug("not a zip archive", "path", path, "error", err)
		return false
	}
	defer zr.Close()

	for _, f := range zr.File {
		if f.Name == DocumentEntry {
			return true
		}
	}
	log.Debug("archive has no document entry", "path", path)
	return false
}

// Load opens the archive at path and parses its Document.xml into a Document.
// The archive is closed before Load returns; no file handle outlives the
// call. Failures are reported as *LoadError with a Kind matching one of the
// package's sentinel categories.
func Load(path string) (*Document, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, &LoadError{Path: path, Kind: ErrInvalidInput, Err: err}
	}
	if info.IsDir() {
		return nil, &LoadError{Path: path, Kind: ErrInvalidInput, Err: fmt.Errorf("%s is a directory", path)}
	}

	zr, err := zip.OpenReader(path)
	if err != nil {
		return nil, &LoadError{Path: path, Kind: ErrNotArchive, Err: err}
	}
	defer zr.Close()

	var entry *zip.File
	for _, f := range zr.File {
		if f.Name == DocumentEntry {
			entry = f
			break
		}
	}
	if entry == nil {
		return nil, &LoadError{Path: path, Kind: ErrMissingEntry}
	}

	rc, err := entry.Open()
	if err != nil {
		return nil, &LoadError{Path: path, Kind: ErrNotArchive, Err: err}
	}
	defer rc.Close()

	doc, err := parseDocument(rc)
	if err != nil {
		var le *LoadError
		if errors.As(err, &le) {
			le.Path = path
			return nil, le
		}
		return nil, &LoadError{Path: path, Kind: ErrMalformedXML, Err: err}
	}

	doc.Filename = filepath.Base(path)
	log.Debug("loaded document", "path", path, "objects", len(doc.Objects))
	return doc, nil
}

// parseDocument walks Document.xml token by token. Objects may appear at any
// depth and may be declared more than once (FreeCAD writes an object index
// followed by the object data); declarations with the same name merge into
// one record. Properties and cells attach to the innermost enclosing object;
// properties outside any object belong to the document itself.
func parseDocument(r io.Reader) (*Document, error) {
	dec := xml.NewDecoder(r)
	doc := &Document{}
	byName := make(map[string]*Object)

	// objStack tracks enclosing Object elements; propObj/propIdx track the
	// innermost open Property so inline values can be captured.
	var objStack []*Object
	depth := 0
	propIdx := -1
	var propObj *Object
	docProp := -1

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, &LoadError{Kind: ErrMalformedXML, Err: err}
		}

		switch t := tok.(type) {
		case xml.StartElement:
			depth++
			if depth > maxElementDepth {
				return nil, &LoadError{Kind: ErrMalformedXML, Err: fmt.Errorf("element nesting exceeds %d levels", maxElementDepth)}
			}

			switch t.Name.Local {
			case "Object":
				name, ok := attrValue(t, "name")
				if !ok || name == "" {
					return nil, &LoadError{Kind: ErrMissingAttribute, Err: fmt.Errorf("Object element has no name attribute")}
				}
				obj := byName[name]
				if obj == nil {
					obj = &Object{Name: name}
					byName[name] = obj
					doc.Objects = append(doc.Objects, obj)
				}
				objStack = append(objStack, obj)

			case "Property":
				name, ok := attrValue(t, "name")
				if !ok || name == "" {
					return nil, &LoadError{Kind: ErrMissingAttribute, Err: fmt.Errorf("Property element has no name attribute")}
				}
				typ, _ := attrValue(t, "type")
				prop := Property{Name: name, Type: typ}
				if cur := current(objStack); cur != nil {
					cur.Properties = append(cur.Properties, prop)
					propObj = cur
					propIdx = len(cur.Properties) - 1
				} else {
					doc.Properties = append(doc.Properties, prop)
					docProp = len(doc.Properties) - 1
				}

			case "Expression":
				expr, ok := attrValue(t, "expression")
				if !ok {
					return nil, &LoadError{Kind: ErrMissingAttribute, Err: fmt.Errorf("Expression element has no expression attribute")}
				}
				path, _ := attrValue(t, "path")
				if cur := current(objStack); cur != nil {
					cur.Expressions = append(cur.Expressions, Expression{Path: path, Value: expr})
				}

			case "Cell":
				if cur := current(objStack); cur != nil {
					addr, _ := attrValue(t, "address")
					alias, _ := attrValue(t, "alias")
					content, _ := attrValue(t, "content")
					cur.Cells = append(cur.Cells, Cell{Address: addr, Alias: alias, Content: content})
				}

			default:
				// Inline property values live on child elements such as
				// <String value="..."/> or <Double value="..."/>.
				if v, ok := attrValue(t, "value"); ok {
					if propObj != nil && propIdx >= 0 && propObj.Properties[propIdx].Value == "" {
						propObj.Properties[propIdx].Value = v
					} else if propObj == nil && docProp >= 0 && doc.Properties[docProp].Value == "" {
						doc.Properties[docProp].Value = v
					}
				}
			}

		case xml.EndElement:
			depth--
			switch t.Name.Local {
			case "Object":
				if len(objStack) > 0 {
					objStack = objStack[:len(objStack)-1]
				}
			case "Property":
				propObj = nil
				propIdx = -1
				docProp = -1
			}
		}
	}

	return doc, nil
}

func current(stack []*Object) *Object {
	if len(stack) == 0 {
		return nil
	}
	return stack[len(stack)-1]
}

func attrValue(el xml.StartElement, name string) (string, bool) {
	for _, a := range el.Attr {
		if a.Name.Local == name {
			return a.Value, true
		}
	}
	return "", false
}
