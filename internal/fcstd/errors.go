// SPDX-License-Identifier: MPL-2.0

package fcstd

import (
	"errors"
	"fmt"
)

// Failure categories for document loading. Any of these aborts the whole run:
// alias resolution is a cross-file operation, and a missing document could
// silently change which references resolve.
var (
	// ErrInvalidInput means the path does not exist or is not a regular file.
	ErrInvalidInput = errors.New("invalid input file")

	// ErrNotArchive means the file exists but is not a readable zip archive.
	ErrNotArchive = errors.New("not an FCStd archive")

	// ErrMissingEntry means the archive has no Document.xml entry.
	ErrMissingEntry = errors.New("archive has no Document.xml entry")

	// ErrMalformedXML means Document.xml is not well-formed XML.
	ErrMalformedXML = errors.New("malformed Document.xml")

	// ErrMissingAttribute means a structural attribute the pipeline requires
	// (an object's name, a property's name, an Expression's expression) is
	// absent on an otherwise well-formed node.
	ErrMissingAttribute = errors.New("missing required attribute")
)

// LoadError describes why a document failed to load. Kind is always one of
// the sentinel errors above, so callers can classify with errors.Is.
type LoadError struct {
	Path string
	Kind error
	Err  error
}

// Error implements the error interface.
func (e *LoadError) Error() string {
	msg := fmt.Sprintf("%s: %s", e.Path, e.Kind)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Is reports whether the error matches one of the sentinel categories.
func (e *LoadError) Is(target error) bool {
	return errors.Is(e.Kind, target)
}

// Unwrap returns the underlying cause, if any.
func (e *LoadError) Unwrap() error {
	return e.Err
}
