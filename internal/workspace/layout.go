package workspace

import (
	"path/filepath"
	"strings"
	"unicode"

	"github.com/toyz/strata/internal/models"
)

// Source file extensions recognized as resource code, in both dialects
var sourceExtensions = map[string]bool{
	".ts":  true,
	".tsx": true,
	".js":  true,
	".jsx": true,
}

// Kebab converts a resource name (PascalCase, camelCase, snake_case, or
// space-separated) into the kebab-case form used for directory and file
// names: "ProductList" -> "product-list".
func Kebab(name string) string {
	var b strings.Builder
	prevLower := false
	for _, r := range name {
		switch {
		case r == '_' || r == ' ' || r == '-':
			if b.Len() > 0 && !strings.HasSuffix(b.String(), "-") {
				b.WriteByte('-')
			}
			prevLower = false
		case unicode.IsUpper(r):
			if prevLower {
				b.WriteByte('-')
			}
			b.WriteRune(unicode.ToLower(r))
			prevLower = false
		default:
			b.WriteRune(r)
			prevLower = true
		}
	}
	return strings.Trim(b.String(), "-")
}

// ResourceDir returns the override anchor: the module-relative directory of
// a resource. It depends only on the resource name and type, so the path is
// identical in the source and target modules and the target's build system
// can discover the override.
func ResourceDir(t models.ResourceType, name string) string {
	return filepath.Join("src", t.DirName(), Kebab(name))
}

// PrimaryFileBase returns the extension-less base name of a resource's
// primary file, e.g. "header.component" for the Header component
func PrimaryFileBase(t models.ResourceType, name string) string {
	return Kebab(name) + "." + t.Suffix()
}

// IsPrimaryFile reports whether fileName is the resource's primary file
func IsPrimaryFile(t models.ResourceType, name, fileName string) bool {
	return ImportBase(fileName) == PrimaryFileBase(t, name)
}

// IsSourceFile reports whether fileName is a code file the pipeline
// processes (stylesheets and assets are not)
func IsSourceFile(fileName string) bool {
	return sourceExtensions[filepath.Ext(fileName)]
}

// IsTypeOnly reports whether fileName marks a type-only declaration file,
// which the untyped dialect excludes entirely
func IsTypeOnly(fileName string) bool {
	return strings.HasSuffix(fileName, ".d.ts") || strings.HasSuffix(fileName, ".types.ts")
}

// TargetFileName maps a source file name to the name generated for the
// selected dialect: .ts -> .js and .tsx -> .jsx under the untyped dialect
func TargetFileName(fileName string, dialect models.Dialect) string {
	if dialect != models.DialectJavaScript {
		return fileName
	}
	switch filepath.Ext(fileName) {
	case ".tsx":
		return strings.TrimSuffix(fileName, ".tsx") + ".jsx"
	case ".ts":
		return strings.TrimSuffix(fileName, ".ts") + ".js"
	default:
		return fileName
	}
}

// StyleFileName returns the stylesheet sibling name for a code file:
// "header.component.tsx" with ext "scss" -> "header.component.scss"
func StyleFileName(fileName, styleExt string) string {
	return ImportBase(fileName) + "." + styleExt
}

// ImportBase strips the source extension from a file name, yielding the
// form used in import specifiers
func ImportBase(fileName string) string {
	return strings.TrimSuffix(fileName, filepath.Ext(fileName))
}

// ImportSpecifier builds the module specifier through which the target file
// imports the original resource file from the source module. The module's
// alias maps to its src/ tree; importing by name addresses the module root.
func ImportSpecifier(m models.Module, t models.ResourceType, name, fileName string) string {
	relDir := ResourceDir(t, name)
	base := ImportBase(fileName)
	if m.Alias != "" {
		rel := strings.TrimPrefix(filepath.ToSlash(relDir), "src/")
		return m.Alias + "/" + rel + "/" + base
	}
	return m.Name + "/" + filepath.ToSlash(relDir) + "/" + base
}
