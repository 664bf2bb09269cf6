package models

// Module describes one module of a layered workspace, resolved by walking up
// from any contained path to the nearest strata.json manifest. Instances are
// resolved fresh per invocation and never cached across calls.
type Module struct {
	// Root is the absolute path of the directory holding the manifest
	Root string
	// Name is the module name declared in the manifest
	Name string
	// Type is the declared module type (base, feature, app)
	Type string
	// Alias is the bundler import alias mapped to the module's src/ tree;
	// empty when the module is imported by name
	Alias string
}

// ImportPrefix returns the specifier prefix used when importing from this
// module: the alias when one is declared, the module name otherwise
func (m Module) ImportPrefix() string {
	if m.Alias != "" {
		return m.Alias
	}
	return m.Name
}
