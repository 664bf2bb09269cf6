package pipeline

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/toyz/strata/internal/models"
	"github.com/toyz/strata/internal/utils/fileops"
)

func TestFileMaterializer_Write(t *testing.T) {
	materializer := NewFileMaterializer(fileops.NewFileOps())

	t.Run("CreatesFileAndParents", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "src", "components", "header", "header.component.tsx")

		created, err := materializer.Write(path, "export const Header = 1;\n")
		require.NoError(t, err)
		assert.True(t, created)

		content, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "export const Header = 1;\n", string(content))
	})

	t.Run("MaterializeRecordsTheOutcome", func(t *testing.T) {
		dir := t.TempDir()

		fresh := models.GeneratedFile{
			Path:    filepath.Join(dir, "checkout.route.ts"),
			Content: "export const checkoutRoute = {};\n",
		}
		require.NoError(t, materializer.Materialize(&fresh))
		assert.True(t, fresh.Created)

		blocked := models.GeneratedFile{Path: fresh.Path, Content: "other"}
		require.NoError(t, materializer.Materialize(&blocked))
		assert.False(t, blocked.Created)

		content, err := os.ReadFile(fresh.Path)
		require.NoError(t, err)
		assert.Equal(t, fresh.Content, string(content))
	})

	t.Run("NeverOverwrites", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "file.ts")
		require.NoError(t, os.WriteFile(path, []byte("original"), 0644))

		created, err := materializer.Write(path, "replacement")
		require.NoError(t, err)
		assert.False(t, created)

		content, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "original", string(content))
	})
}
