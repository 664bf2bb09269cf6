package workspace

import (
	"path/filepath"
	"sort"

	"github.com/toyz/strata/internal/errors"
	"github.com/toyz/strata/internal/models"
	"github.com/toyz/strata/internal/utils/fileops"
)

// ResourceLocator finds the module that defines a resource. Without a hint
// it walks the candidate chain reachable from the target module: at each
// directory level above the target root, the level itself is probed first,
// then its module subdirectories in lexicographic order. The first candidate
// defining the resource wins.
type ResourceLocator struct {
	resolver *ModuleResolver
	files    *fileops.FileOps
	options  models.Options
}

// NewResourceLocator creates a new resource locator
func NewResourceLocator(resolver *ModuleResolver, files *fileops.FileOps, options models.Options) *ResourceLocator {
	return &ResourceLocator{
		resolver: resolver,
		files:    files,
		options:  options,
	}
}

// Locate finds the nearest module defining the named resource. When
// sourceHint is non-empty, the search is constrained to the module at that
// path. Returns the source module and the resource with its deterministic
// file list.
func (l *ResourceLocator) Locate(t models.ResourceType, name string, targetModule models.Module, sourceHint string) (models.Module, models.Resource, error) {
	if sourceHint != "" {
		source, err := l.resolver.Resolve(sourceHint)
		if err != nil {
			return models.Module{}, models.Resource{}, err
		}
		if resource, ok := l.resourceIn(source, t, name); ok {
			return source, resource, nil
		}
		return models.Module{}, models.Resource{}, errors.NewResourceNotFoundError(t.String(), name).
			WithContext("source_hint", sourceHint)
	}

	for _, root := range l.candidateRoots(targetModule.Root) {
		module, err := l.moduleAt(root)
		if err != nil {
			continue // unreadable manifest, try the next candidate
		}
		if resource, ok := l.resourceIn(module, t, name); ok {
			return module, resource, nil
		}
	}

	return models.Module{}, models.Resource{}, errors.NewResourceNotFoundError(t.String(), name).
		WithContext("target_module", targetModule.Name)
}

// ListResources enumerates the resource names of the given type defined by
// the target module and every candidate module reachable from it, sorted
// and deduplicated.
func (l *ResourceLocator) ListResources(t models.ResourceType, targetModule models.Module) []string {
	seen := make(map[string]bool)
	roots := append([]string{targetModule.Root}, l.candidateRoots(targetModule.Root)...)
	for _, root := range roots {
		typeDir := filepath.Join(root, "src", t.DirName())
		entries, err := l.files.ReadDir(typeDir)
		if err != nil {
			continue
		}
		for _, entry := range entries {
			if !entry.IsDir() {
				continue
			}
			if l.hasSourceFiles(filepath.Join(typeDir, entry.Name())) {
				seen[entry.Name()] = true
			}
		}
	}

	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// candidateRoots returns the module roots considered for resolution, in
// precedence order: nearest levels first, at each level the ancestor
// directory before its sibling modules.
func (l *ResourceLocator) candidateRoots(targetRoot string) []string {
	var roots []string
	seen := map[string]bool{targetRoot: true}

	level := filepath.Dir(targetRoot)
	for {
		if l.isModuleRoot(level) && !seen[level] {
			roots = append(roots, level)
			seen[level] = true
		}

		entries, err := l.files.ReadDir(level)
		if err == nil {
			var siblings []string
			for _, entry := range entries {
				if !entry.IsDir() {
					continue
				}
				child := filepath.Join(level, entry.Name())
				if !seen[child] && l.isModuleRoot(child) {
					siblings = append(siblings, child)
				}
			}
			sort.Strings(siblings)
			for _, sibling := range siblings {
				roots = append(roots, sibling)
				seen[sibling] = true
			}
		}

		parent := filepath.Dir(level)
		if parent == level {
			break
		}
		level = parent
	}

	return roots
}

// moduleAt resolves the module rooted exactly at the given directory
func (l *ResourceLocator) moduleAt(root string) (models.Module, error) {
	manifest, err := LoadManifest(l.files, filepath.Join(root, l.options.ManifestName))
	if err != nil {
		return models.Module{}, err
	}
	return models.Module{
		Root:  root,
		Name:  manifest.Name,
		Type:  manifest.Type,
		Alias: manifest.Alias,
	}, nil
}

// isModuleRoot reports whether dir directly contains a manifest
func (l *ResourceLocator) isModuleRoot(dir string) bool {
	return l.files.IsFile(filepath.Join(dir, l.options.ManifestName))
}

// resourceIn probes a module for the resource and, when present, builds its
// deterministic file list (source files only, sorted lexicographically)
func (l *ResourceLocator) resourceIn(m models.Module, t models.ResourceType, name string) (models.Resource, bool) {
	dir := filepath.Join(m.Root, ResourceDir(t, name))
	files := l.sourceFiles(dir)
	if len(files) == 0 {
		return models.Resource{}, false
	}
	return models.Resource{
		Type:      t,
		Name:      name,
		SourceDir: dir,
		Files:     files,
	}, true
}

// hasSourceFiles reports whether dir contains at least one code file
func (l *ResourceLocator) hasSourceFiles(dir string) bool {
	return len(l.sourceFiles(dir)) > 0
}

func (l *ResourceLocator) sourceFiles(dir string) []string {
	entries, err := l.files.ReadDir(dir)
	if err != nil {
		return nil
	}
	var files []string
	for _, entry := range entries {
		if !entry.IsDir() && IsSourceFile(entry.Name()) {
			files = append(files, entry.Name())
		}
	}
	sort.Strings(files)
	return files
}
