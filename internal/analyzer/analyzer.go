// Package analyzer enumerates the exported symbols of a resource source
// file. It never rebuilds source text from a parse tree: every record
// carries byte offsets into the original text, and downstream synthesis
// splices verbatim substrings so the author's formatting and comments
// survive untouched.
package analyzer

import (
	"fmt"

	"github.com/alecthomas/participle/v2"

	"github.com/toyz/strata/internal/models"
)

// Analyzer parses resource source text into an export map
type Analyzer struct {
	parser *participle.Parser[exportClause]
}

// New creates a new analyzer
func New() *Analyzer {
	return &Analyzer{parser: buildHeaderParser()}
}

// Analyze performs a single pass over the source text and returns the
// default-export span (if any) and all named exports in source order.
// Duplicate names (function overload signatures) are collapsed into the
// first occurrence.
func (a *Analyzer) Analyze(source string) (models.ExportMap, error) {
	var result models.ExportMap
	seen := make(map[string]bool)

	for _, stmt := range scanExportStatements(source) {
		clause, err := a.parser.ParseString("", stmt.header)
		if err != nil {
			return models.ExportMap{}, fmt.Errorf("invalid export statement at offset %d: %w", stmt.start, err)
		}

		switch {
		case clause.Default != nil:
			if result.Default == nil {
				result.Default = &models.ExportRecord{
					Name:      "default",
					Start:     stmt.start,
					End:       stmt.end,
					IsDefault: true,
				}
			}

		case clause.List != nil:
			for _, item := range clause.List.Items {
				name := item.exportedName()
				if name == "default" || seen[name] {
					continue
				}
				seen[name] = true
				result.Named = append(result.Named, models.ExportRecord{
					Name:  name,
					Start: stmt.start,
					End:   stmt.end,
				})
			}

		case clause.Star != nil:
			// `export * from` exposes no selectable names; the namespace
			// form `export * as ns from` exposes exactly one
			if clause.Star.As != "" && !seen[clause.Star.As] {
				seen[clause.Star.As] = true
				result.Named = append(result.Named, models.ExportRecord{
					Name:  clause.Star.As,
					Start: stmt.start,
					End:   stmt.end,
				})
			}

		case clause.Decl != nil:
			if seen[clause.Decl.Name] {
				continue
			}
			seen[clause.Decl.Name] = true
			result.Named = append(result.Named, models.ExportRecord{
				Name:  clause.Decl.Name,
				Start: stmt.start,
				End:   stmt.end,
				Kind:  clause.Decl.Kind,
			})
		}
	}

	return result, nil
}
