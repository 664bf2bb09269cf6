package models

// Dialect selects the output language of generated files
type Dialect int

const (
	// DialectTypeScript emits .ts/.tsx files with type annotations intact
	DialectTypeScript Dialect = iota
	// DialectJavaScript emits .js/.jsx files and excludes type-only sources
	DialectJavaScript
)

// String returns a short name for the dialect
func (d Dialect) String() string {
	if d == DialectJavaScript {
		return "javascript"
	}
	return "typescript"
}

// Options is the immutable configuration value constructed once at pipeline
// entry and threaded explicitly through every resolution and synthesis call.
// There is no process-wide configuration state.
type Options struct {
	// ManifestName is the module boundary marker file name
	ManifestName string
	// Dialect selects typed or untyped output
	Dialect Dialect
	// StyleExt is the stylesheet extension used for generated style files
	StyleExt string
	// SkipLintFix disables the best-effort lint post-pass
	SkipLintFix bool
}

// DefaultOptions returns the options used when the caller overrides nothing
func DefaultOptions() Options {
	return Options{
		ManifestName: "strata.json",
		Dialect:      DialectTypeScript,
		StyleExt:     "scss",
	}
}
