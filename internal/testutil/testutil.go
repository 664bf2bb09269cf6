// Package testutil holds helpers shared by the package tests. Workspace
// trees are described as txtar archives so fixtures stay readable inline.
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/tools/txtar"
)

// WriteTree materializes a txtar archive under dir, creating parent
// directories as needed, and fails the test on any I/O error
func WriteTree(t *testing.T, dir, archive string) {
	t.Helper()
	for _, file := range txtar.Parse([]byte(archive)).Files {
		path := filepath.Join(dir, filepath.FromSlash(file.Name))
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatalf("creating %s: %v", filepath.Dir(path), err)
		}
		if err := os.WriteFile(path, file.Data, 0644); err != nil {
			t.Fatalf("writing %s: %v", path, err)
		}
	}
}
