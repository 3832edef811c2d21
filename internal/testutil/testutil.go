// SPDX-License-Identifier: MPL-2.0

package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/klauspost/compress/zip"
)

// MustWriteFile writes data to path, creating parent directories as needed.
// The test fails immediately if the operation fails.
func MustWriteFile(t testing.TB, path string, data []byte) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("failed to create directory for %s: %v", path, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
}

// WriteDocumentArchive creates an FCStd-shaped zip archive named name in
// dir, with the given XML as its Document.xml entry, and returns its path.
func WriteDocumentArchive(t testing.TB, dir, name, documentXML string) string {
	t.Helper()
	return WriteArchive(t, dir, name, map[string]string{"Document.xml": documentXML})
}

// WriteArchive creates a zip archive with the given entries and returns its
// path. Entries are written in map iteration order; tests that care about
// entry order should pass a single entry.
func WriteArchive(t testing.TB, dir, name string, entries map[string]string) string {
	t.Helper()
	path := filepath.Join(dir, name)

	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("failed to create archive %s: %v", path, err)
	}
	defer func() {
		if err := f.Close(); err != nil {
			t.Fatalf("failed to close archive %s: %v", path, err)
		}
	}()

	zw := zip.NewWriter(f)
	for entryName, content := range entries {
		w, err := zw.Create(entryName)
		if err != nil {
			t.Fatalf("failed to create entry %s: %v", entryName, err)
		}
		if _, err := w.Write([]byte(content)); err != nil {
			t.Fatalf("failed to write entry %s: %v", entryName, err)
		}
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("failed to finalize archive %s: %v", path, err)
	}

	return path
}
