// SPDX-License-Identifier: MPL-2.0

// Package fcstd loads FreeCAD document archives (.FCStd files).
//
// An FCStd file is a zip archive whose Document.xml entry describes the
// document's objects, their properties and expressions, and any spreadsheet
// cells. The loader produces a read-only Document snapshot; it never writes
// back to the archive.
package fcstd
