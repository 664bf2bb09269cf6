package analyzer

import (
	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// The grammar covers export statement headers only, never whole files. The
// surrounding scanner slices the header out of the raw source; declaration
// bodies and initializer expressions stay untouched text.

var headerLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "String", Pattern: `'(\\'|[^'\n])*'|"(\\"|[^"\n])*"`},
	{Name: "Ident", Pattern: `[A-Za-z_$][A-Za-z0-9_$]*`},
	{Name: "Number", Pattern: `[0-9]+(\.[0-9]+)?`},
	{Name: "Punct", Pattern: `[^\sA-Za-z0-9_$]`},
	{Name: "Whitespace", Pattern: `\s+`},
})

// exportClause is the root of an export statement header
type exportClause struct {
	Default *defaultClause `parser:"'export' ( @@"`
	List    *listClause    `parser:"| @@"`
	Star    *starClause    `parser:"| @@"`
	Decl    *declClause    `parser:"| @@ )"`
}

// defaultClause matches `export default`
type defaultClause struct {
	Keyword bool `parser:"@'default'"`
}

// listClause matches `export { A, B as C } from '...'`
type listClause struct {
	Items []listItem `parser:"'{' @@ (',' @@)* ','? '}'"`
	From  string     `parser:"('from' @String)?"`
	Semi  bool       `parser:"';'?"`
}

type listItem struct {
	Name  string `parser:"@Ident"`
	Alias string `parser:"('as' @Ident)?"`
}

// exportedName returns the name under which the item is visible outside
func (i listItem) exportedName() string {
	if i.Alias != "" {
		return i.Alias
	}
	return i.Name
}

// starClause matches `export * from '...'` and `export * as ns from '...'`
type starClause struct {
	Star bool   `parser:"@'*'"`
	As   string `parser:"('as' @Ident)?"`
	From string `parser:"'from' @String"`
	Semi bool   `parser:"';'?"`
}

// declClause matches declaration headers like `export const name` or
// `export abstract class Name extends Base`; Rest absorbs whatever follows
// the name (extends clauses, generics) without interpreting it
type declClause struct {
	Modifiers []string `parser:"@('declare' | 'abstract' | 'async')*"`
	Kind      string   `parser:"@('const' | 'let' | 'var' | 'function' | 'class' | 'interface' | 'type' | 'enum')"`
	Generator bool     `parser:"@'*'?"`
	Name      string   `parser:"@Ident"`
	Rest      []string `parser:"(@Ident | @String | @Number | @Punct)*"`
}

func buildHeaderParser() *participle.Parser[exportClause] {
	return participle.MustBuild[exportClause](
		participle.Lexer(headerLexer),
		participle.Elide("Whitespace"),
		participle.UseLookahead(2),
	)
}
