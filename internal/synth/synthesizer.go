// Package synth produces the text of override files. Untouched exports are
// re-exposed by reference to the source module; chosen exports get an
// extension scaffold; the default-export block is spliced verbatim from the
// original source so formatting and comments survive. No formatting pass
// happens here.
package synth

import (
	"fmt"
	"strings"

	"github.com/toyz/strata/internal/models"
	"github.com/toyz/strata/internal/workspace"
)

// Context bundles everything one file synthesis needs
type Context struct {
	ResourceType models.ResourceType
	ResourceName string
	FileName     string
	SourceModule models.Module
	SourceText   string
	Exports      models.ExportMap
	Choice       models.ExtensionChoice
	StyleOption  models.StyleOption
	StyleFile    string
	Dialect      models.Dialect
}

// Synthesizer generates override file content
type Synthesizer struct{}

// NewSynthesizer creates a new synthesizer
func NewSynthesizer() *Synthesizer {
	return &Synthesizer{}
}

// Synthesize produces the full text of the override file. Passthroughs and
// extensions together cover every named export exactly once.
func (s *Synthesizer) Synthesize(ctx Context) (string, error) {
	if len(ctx.Exports.Named) == 0 {
		return "", fmt.Errorf("file %s has no named exports to extend", ctx.FileName)
	}

	specifier := workspace.ImportSpecifier(ctx.SourceModule, ctx.ResourceType, ctx.ResourceName, ctx.FileName)

	var b strings.Builder
	b.WriteString(fmt.Sprintf("// Generated by strata. Extends %s from %s.\n", ctx.ResourceName, ctx.SourceModule.Name))

	if len(ctx.Choice.Chosen) > 0 {
		b.WriteString("import { ")
		for i, rec := range ctx.Choice.Chosen {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(fmt.Sprintf("%s as Base%s", rec.Name, rec.Name))
		}
		b.WriteString(fmt.Sprintf(" } from '%s';\n", specifier))
	}

	if ctx.StyleFile != "" && ctx.StyleOption != models.StyleKeep {
		b.WriteString(fmt.Sprintf("import './%s';\n", ctx.StyleFile))
	}

	if passthroughs := s.passthroughNames(ctx); len(passthroughs) > 0 {
		b.WriteString(fmt.Sprintf("\nexport { %s } from '%s';\n", strings.Join(passthroughs, ", "), specifier))
	}

	for _, rec := range ctx.Choice.Chosen {
		b.WriteString("\n")
		b.WriteString(s.extensionScaffold(ctx, rec))
	}

	if ctx.Exports.Default != nil {
		block := ctx.SourceText[ctx.Exports.Default.Start:ctx.Exports.Default.End]
		if ctx.Dialect == models.DialectJavaScript {
			block = StripTypeNarrowing(block)
		}
		b.WriteString("\n")
		b.WriteString(block)
		b.WriteString("\n")
	}

	return b.String(), nil
}

// passthroughNames returns the named exports the user left untouched, in
// source order
func (s *Synthesizer) passthroughNames(ctx Context) []string {
	var names []string
	for _, rec := range ctx.Exports.Named {
		if !ctx.Choice.Contains(rec.Name) {
			names = append(names, rec.Name)
		}
	}
	return names
}

// extensionScaffold emits the extension for one chosen export. The
// composition strategy dispatches on the declaration kind first, then the
// resource type: classes are subclassed, interfaces and type aliases get
// type-level extensions, routes are merged, queries and function components
// are wrapped. Every strategy keeps the original symbol's external contract,
// a type-level export in particular stays a type.
func (s *Synthesizer) extensionScaffold(ctx Context, rec models.ExportRecord) string {
	switch rec.Kind {
	case "class":
		return fmt.Sprintf("export class %s extends Base%s {\n}\n", rec.Name, rec.Name)
	case "interface":
		return fmt.Sprintf("export interface %s extends Base%s {\n}\n", rec.Name, rec.Name)
	case "type":
		return fmt.Sprintf("export type %s = Base%s;\n", rec.Name, rec.Name)
	}

	switch ctx.ResourceType {
	case models.ResourceRoute:
		return fmt.Sprintf("export const %s = {\n  ...Base%s,\n};\n", rec.Name, rec.Name)
	default:
		return fmt.Sprintf("export const %s = (%s) => Base%s(...args);\n",
			rec.Name, s.restParams(ctx.Dialect, rec.Name), rec.Name)
	}
}

// restParams emits the wrapper parameter list, typed against the original
// symbol in the TypeScript dialect
func (s *Synthesizer) restParams(dialect models.Dialect, name string) string {
	if dialect == models.DialectTypeScript {
		return fmt.Sprintf("...args: Parameters<typeof Base%s>", name)
	}
	return "...args"
}
