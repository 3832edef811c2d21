// SPDX-License-Identifier: MPL-2.0

// Package reference resolves spreadsheet cell aliases across a set of loaded
// FreeCAD documents.
//
// The extractor computes the union of alias declarations over all documents;
// the collector then rescans every document's expressions against that merged
// set, producing one Reference record per alias usage. Usages may point into
// a different document than the one being scanned.
package reference
