package pipeline

import (
	"path/filepath"

	"github.com/toyz/strata/internal/models"
	"github.com/toyz/strata/internal/utils/fileops"
)

// FileMaterializer writes synthesized content to disk at most once per
// target path. An existing path is never truncated or replaced; the caller
// logs a warning instead of failing. Underlying I/O errors propagate as
// hard failures because the operator explicitly asked for file creation.
type FileMaterializer struct {
	files *fileops.FileOps
}

// NewFileMaterializer creates a new materializer
func NewFileMaterializer(files *fileops.FileOps) *FileMaterializer {
	return &FileMaterializer{files: files}
}

// Materialize attempts to write the file and records the outcome on it
func (m *FileMaterializer) Materialize(f *models.GeneratedFile) error {
	created, err := m.Write(f.Path, f.Content)
	f.Created = created
	return err
}

// Write creates targetPath with the given content. Returns false without
// touching the filesystem content when the path already exists.
func (m *FileMaterializer) Write(targetPath, content string) (bool, error) {
	if m.files.Exists(targetPath) {
		return false, nil
	}
	if err := m.files.EnsureDirectory(filepath.Dir(targetPath)); err != nil {
		return false, err
	}
	return m.files.WriteNewFile(targetPath, []byte(content), 0644)
}
