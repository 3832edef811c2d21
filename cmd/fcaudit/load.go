// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"fmt"
	"os"

	"fcaudit-cli/internal/fcstd"
	"fcaudit-cli/internal/issue"
)

// loadDocuments loads every input path, in order. The first failure aborts
// the whole run: alias resolution is a cross-file operation, so a partial
// document set could silently change which references resolve.
func loadDocuments(paths []string) ([]*fcstd.Document, error) {
	docs := make([]*fcstd.Document, 0, len(paths))
	for _, path := range paths {
		doc, err := fcstd.Load(path)
		if err != nil {
			return nil, loadFailure(path, err)
		}
		docs = append(docs, doc)
	}
	return docs, nil
}

// loadFailure turns a loader error into an actionable one, rendering the
// matching issue card in verbose mode.
func loadFailure(path string, err error) error {
	id, suggestion := classifyLoadError(err)

	if verbose {
		if iss := issue.Get(id); iss != nil {
			if rendered, rerr := iss.Render("dark"); rerr == nil {
				fmt.Fprint(os.Stderr, rendered)
			}
		}
	}

	return issue.NewErrorContext().
		WithOperation("load document").
		WithResource(path).
		WithSuggestion(suggestion).
		Wrap(err).
		BuildError()
}

func classifyLoadError(err error) (issue.Id, string) {
	switch {
	case errors.Is(err, fcstd.ErrInvalidInput):
		return issue.InvalidInputId, "Check that the path exists and is a regular file"
	case errors.Is(err, fcstd.ErrNotArchive):
		return issue.NotArchiveId, "Check that the file is a FreeCAD .FCStd document"
	case errors.Is(err, fcstd.ErrMissingEntry):
		return issue.MissingEntryId, "Re-save the document from FreeCAD; its Document.xml entry is missing"
	case errors.Is(err, fcstd.ErrMissingAttribute):
		return issue.MissingAttributeId, "Re-save the document from FreeCAD to normalize its structure"
	default:
		return issue.MalformedXMLId, "Restore the document from a backup; its XML is not well-formed"
	}
}
