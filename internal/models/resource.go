package models

import "fmt"

// ResourceType identifies the kind of resource a module defines. The set is
// closed: every switch over it must handle all three values.
type ResourceType int

const (
	ResourceComponent ResourceType = iota
	ResourceRoute
	ResourceQuery
)

// String returns the canonical lowercase name of the resource type
func (t ResourceType) String() string {
	switch t {
	case ResourceComponent:
		return "component"
	case ResourceRoute:
		return "route"
	case ResourceQuery:
		return "query"
	default:
		return "unknown"
	}
}

// DirName returns the directory name that groups resources of this type
// under a module's src/ tree
func (t ResourceType) DirName() string {
	switch t {
	case ResourceComponent:
		return "components"
	case ResourceRoute:
		return "routes"
	case ResourceQuery:
		return "queries"
	default:
		return ""
	}
}

// Suffix returns the file-name suffix marking the primary file of a resource,
// e.g. "component" in header.component.tsx
func (t ResourceType) Suffix() string {
	return t.String()
}

// HasStyles reports whether resources of this type may carry a style file
func (t ResourceType) HasStyles() bool {
	return t == ResourceComponent || t == ResourceRoute
}

// ParseResourceType converts a user-supplied type name into a ResourceType
func ParseResourceType(s string) (ResourceType, error) {
	switch s {
	case "component":
		return ResourceComponent, nil
	case "route":
		return ResourceRoute, nil
	case "query":
		return ResourceQuery, nil
	default:
		return 0, fmt.Errorf("unknown resource type %q (expected component, route, or query)", s)
	}
}

// Resource describes a located source resource: where it lives and which
// files make it up. Files holds base names relative to SourceDir, sorted
// lexicographically so the processing order is reproducible across runs.
type Resource struct {
	Type      ResourceType
	Name      string
	SourceDir string
	Files     []string
}

// ExportRecord describes one exported symbol of a resource file. Start and
// End are byte offsets into the original source text; slicing the original
// with them yields the declaration exactly as the author wrote it.
type ExportRecord struct {
	Name      string
	Start     int
	End       int
	IsDefault bool
	// Kind is the declaration keyword (const, function, class, ...) when
	// known; empty for re-export lists and default exports.
	Kind string
}

// ExportMap is the result of analyzing one source file: the default-export
// span if present, and all named exports in source order.
type ExportMap struct {
	Default *ExportRecord
	Named   []ExportRecord
}

// NamedNames returns the names of all named exports in source order
func (m ExportMap) NamedNames() []string {
	names := make([]string, len(m.Named))
	for i, rec := range m.Named {
		names[i] = rec.Name
	}
	return names
}

// ExtensionChoice is the subset of named exports the user picked for one
// file. An empty choice skips generation for that file.
type ExtensionChoice struct {
	Chosen []ExportRecord
}

// Contains reports whether the export with the given name was chosen
func (c ExtensionChoice) Contains(name string) bool {
	for _, rec := range c.Chosen {
		if rec.Name == name {
			return true
		}
	}
	return false
}

// IsEmpty reports whether the user declined every candidate
func (c ExtensionChoice) IsEmpty() bool {
	return len(c.Chosen) == 0
}

// GeneratedFile is one materialization attempt, created and consumed within
// a single per-file iteration. Created is false when the target path already
// existed and was left untouched.
type GeneratedFile struct {
	Path    string
	Content string
	Created bool
}

// StyleOption is the user's choice for the accompanying style artifact
type StyleOption string

const (
	// StyleKeep creates no style file
	StyleKeep StyleOption = "keep"
	// StyleEmpty creates a blank stylesheet
	StyleEmpty StyleOption = "empty"
	// StyleCopy copies the source resource's stylesheet content
	StyleCopy StyleOption = "copy"
)
