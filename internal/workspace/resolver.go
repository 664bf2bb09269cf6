package workspace

import (
	"path/filepath"

	"github.com/toyz/strata/internal/errors"
	"github.com/toyz/strata/internal/models"
	"github.com/toyz/strata/internal/utils/fileops"
)

// ModuleResolver resolves the module owning any given path by walking the
// directory chain upward until a manifest is found. Resolution is read-only
// and deterministic; results are never cached across invocations.
type ModuleResolver struct {
	files   *fileops.FileOps
	options models.Options
}

// NewModuleResolver creates a new module resolver
func NewModuleResolver(files *fileops.FileOps, options models.Options) *ModuleResolver {
	return &ModuleResolver{
		files:   files,
		options: options,
	}
}

// Resolve returns the module containing the given path. The path may point
// at any file or directory inside the module.
func (r *ModuleResolver) Resolve(anyPath string) (models.Module, error) {
	absPath, err := r.files.PathValidator().GetAbsolutePath(anyPath)
	if err != nil {
		return models.Module{}, err
	}

	dir := absPath
	if r.files.IsFile(dir) {
		dir = filepath.Dir(dir)
	}

	for {
		manifestPath := filepath.Join(dir, r.options.ManifestName)
		if r.files.IsFile(manifestPath) {
			manifest, err := LoadManifest(r.files, manifestPath)
			if err != nil {
				return models.Module{}, err
			}
			return models.Module{
				Root:  dir,
				Name:  manifest.Name,
				Type:  manifest.Type,
				Alias: manifest.Alias,
			}, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break // reached the filesystem root
		}
		dir = parent
	}

	return models.Module{}, errors.NewModuleNotFoundError(anyPath, r.options.ManifestName)
}
