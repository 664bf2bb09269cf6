package analyzer

import "strings"

// exportStatement is one top-level export occurrence located in the raw
// source. start/end are byte offsets; header is the slice handed to the
// grammar (declaration bodies and initializers never reach the grammar).
type exportStatement struct {
	start  int
	end    int
	header string
}

// scanExportStatements walks the source once, tracking strings, template
// literals, comments, and bracket depth, and returns every top-level export
// statement with its exact span in the original text.
func scanExportStatements(src string) []exportStatement {
	var stmts []exportStatement
	depth := 0
	var lastSig byte
	i := 0
	for i < len(src) {
		if j, ok := skipNonCode(src, i, lastSig); ok {
			lastSig = nonCodeSig(src, i, lastSig)
			i = j
			continue
		}
		c := src[i]
		switch c {
		case '{', '(', '[':
			depth++
		case '}', ')', ']':
			if depth > 0 {
				depth--
			}
		case 'e':
			if depth == 0 && isWordAt(src, i, "export") {
				stmt := sliceStatement(src, i)
				stmts = append(stmts, stmt)
				i = stmt.end
				lastSig = ';'
				continue
			}
		}
		if c != ' ' && c != '\t' && c != '\r' && c != '\n' {
			lastSig = c
		}
		i++
	}
	return stmts
}

// sliceStatement classifies the export statement starting at `start` and
// computes its end offset and grammar header.
func sliceStatement(src string, start int) exportStatement {
	i := skipSpaces(src, start+len("export"))

	if i < len(src) && (src[i] == '{' || src[i] == '*') {
		// re-export list or star re-export: the whole statement is
		// grammar-safe, hand it over verbatim
		end := expressionEnd(src, start)
		return exportStatement{start: start, end: end, header: strings.TrimSpace(src[start:end])}
	}

	word, j := readWord(src, i)
	if word == "default" {
		next, _ := readWord(src, skipSpaces(src, j))
		end := expressionEnd(src, start)
		if next == "class" || next == "function" || next == "abstract" || next == "async" {
			end = blockEnd(src, start)
		}
		return exportStatement{start: start, end: end, header: "export default"}
	}

	// declaration: skip modifiers to find the declaration kind, which
	// decides whether the statement ends with a block or an expression
	kind, k := word, j
	for kind == "declare" || kind == "abstract" || kind == "async" {
		kind, k = readWord(src, skipSpaces(src, k))
	}

	var end int
	switch kind {
	case "function", "class", "interface", "enum":
		end = blockEnd(src, start)
	default:
		end = expressionEnd(src, start)
	}

	return exportStatement{start: start, end: end, header: src[start:headerCut(src, start, end)]}
}

// headerCut returns the offset where the declaration header stops: before
// the body brace, initializer, parameter list, or end of line
func headerCut(src string, start, end int) int {
	for i := start; i < end; i++ {
		switch src[i] {
		case '{', '=', '(', ';', '\n', '<':
			return i
		}
	}
	return end
}

// blockEnd finds the end of a statement terminated by a braced body
// (class, function, interface, enum): the matching close of the first
// top-level brace, plus an optional trailing semicolon.
func blockEnd(src string, start int) int {
	depth := 0
	entered := false
	var lastSig byte
	i := start
	for i < len(src) {
		if j, ok := skipNonCode(src, i, lastSig); ok {
			lastSig = nonCodeSig(src, i, lastSig)
			i = j
			continue
		}
		if c := src[i]; c != ' ' && c != '\t' && c != '\r' && c != '\n' {
			lastSig = c
		}
		switch src[i] {
		case '{':
			if depth == 0 {
				entered = true
			}
			depth++
		case '(', '[':
			depth++
		case '}', ')', ']':
			if depth > 0 {
				depth--
			}
			if src[i] == '}' && depth == 0 && entered {
				j := skipSpaces(src, i+1)
				if j < len(src) && src[j] == ';' {
					return j + 1
				}
				return i + 1
			}
		case ';':
			// ambient declarations end without a body
			if depth == 0 {
				return i + 1
			}
		}
		i++
	}
	return len(src)
}

// expressionEnd finds the end of a statement terminated by an expression:
// the first semicolon at depth zero, or a line break once the expression is
// balanced and not visibly continued.
func expressionEnd(src string, start int) int {
	depth := 0
	var lastSig byte
	i := start
	for i < len(src) {
		if j, ok := skipNonCode(src, i, lastSig); ok {
			lastSig = nonCodeSig(src, i, lastSig)
			i = j
			continue
		}
		c := src[i]
		switch c {
		case '{', '(', '[':
			depth++
		case '}', ')', ']':
			if depth > 0 {
				depth--
			}
		case ';':
			if depth == 0 {
				return i + 1
			}
		case '\n':
			if depth == 0 && terminatesExpression(lastSig) {
				return i
			}
			i++
			continue
		}
		if c != ' ' && c != '\t' && c != '\r' {
			lastSig = c
		}
		i++
	}
	return len(src)
}

// terminatesExpression reports whether an expression ending in the given
// significant character is complete at a line break
func terminatesExpression(last byte) bool {
	switch last {
	case 0, '=', '+', '-', '*', '/', ',', '(', '[', '{', ':', '<', '>', '|', '&', '?', '.':
		return false
	}
	return true
}

// skipNonCode advances past a comment, string, template literal, or regex
// literal starting at i. Returns (i, false) when i does not start one.
// lastSig is the previous significant character, needed to tell a regex
// opener from a division operator. Line comments stop at the newline so
// callers still observe line breaks.
func skipNonCode(src string, i int, lastSig byte) (int, bool) {
	switch src[i] {
	case '/':
		if i+1 < len(src) {
			if src[i+1] == '/' {
				for i < len(src) && src[i] != '\n' {
					i++
				}
				return i, true
			}
			if src[i+1] == '*' {
				i += 2
				for i+1 < len(src) && !(src[i] == '*' && src[i+1] == '/') {
					i++
				}
				if i+1 < len(src) {
					return i + 2, true
				}
				return len(src), true
			}
			if regexCanFollow(lastSig) {
				return skipRegexLiteral(src, i), true
			}
		}
	case '\'', '"':
		return skipStringLiteral(src, i), true
	case '`':
		return skipTemplate(src, i), true
	}
	return i, false
}

// nonCodeSig returns the significant-character state after the non-code
// region starting at i: the closing quote for string forms, a value marker
// for a regex literal, unchanged for comments
func nonCodeSig(src string, i int, prev byte) byte {
	switch src[i] {
	case '\'', '"', '`':
		return src[i]
	case '/':
		if i+1 < len(src) && (src[i+1] == '/' || src[i+1] == '*') {
			return prev
		}
		return ')'
	}
	return prev
}

// regexCanFollow reports whether a '/' after the given significant character
// opens a regex literal. Division follows a value (identifier, number,
// closing bracket, string); a regex follows an operator, an opener, or the
// start of a statement.
func regexCanFollow(last byte) bool {
	switch {
	case last == 0:
		return true
	case isIdentChar(last):
		return false
	case last == ')' || last == ']' || last == '\'' || last == '"' || last == '`':
		return false
	}
	return true
}

// skipRegexLiteral advances past a regex literal and its flags. A '/' inside
// a character class does not close the literal. Regexes cannot span lines,
// so an unterminated one stops at the newline.
func skipRegexLiteral(src string, i int) int {
	i++ // opening slash
	inClass := false
	for i < len(src) {
		switch src[i] {
		case '\\':
			i += 2
			continue
		case '[':
			inClass = true
		case ']':
			inClass = false
		case '/':
			if !inClass {
				i++
				for i < len(src) && isIdentChar(src[i]) {
					i++ // flags
				}
				return i
			}
		case '\n':
			return i
		}
		i++
	}
	return len(src)
}

// skipStringLiteral advances past a single- or double-quoted string
func skipStringLiteral(src string, i int) int {
	quote := src[i]
	i++
	for i < len(src) {
		switch src[i] {
		case '\\':
			i += 2
			continue
		case quote:
			return i + 1
		case '\n':
			return i // unterminated, don't swallow the line break
		}
		i++
	}
	return len(src)
}

// skipTemplate advances past a template literal, descending into ${...}
// interpolations which may themselves contain nested templates
func skipTemplate(src string, i int) int {
	i++ // opening backtick
	for i < len(src) {
		switch src[i] {
		case '\\':
			i += 2
			continue
		case '`':
			return i + 1
		case '$':
			if i+1 < len(src) && src[i+1] == '{' {
				i = skipInterpolation(src, i+2)
				continue
			}
		}
		i++
	}
	return len(src)
}

// skipInterpolation advances past the code inside ${...}, i starting just
// after the opening brace
func skipInterpolation(src string, i int) int {
	depth := 1
	var lastSig byte
	for i < len(src) {
		if j, ok := skipNonCode(src, i, lastSig); ok {
			lastSig = nonCodeSig(src, i, lastSig)
			i = j
			continue
		}
		if c := src[i]; c != ' ' && c != '\t' && c != '\r' && c != '\n' {
			lastSig = c
		}
		switch src[i] {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return i + 1
			}
		}
		i++
	}
	return len(src)
}

// isWordAt reports whether the identifier word appears at offset i with
// word boundaries on both sides
func isWordAt(src string, i int, word string) bool {
	if !strings.HasPrefix(src[i:], word) {
		return false
	}
	if i > 0 && isIdentChar(src[i-1]) {
		return false
	}
	end := i + len(word)
	return end >= len(src) || !isIdentChar(src[end])
}

// readWord reads the identifier starting at i, returning it and the offset
// one past its end
func readWord(src string, i int) (string, int) {
	start := i
	for i < len(src) && isIdentChar(src[i]) {
		i++
	}
	return src[start:i], i
}

// skipSpaces advances past spaces and tabs (not line breaks)
func skipSpaces(src string, i int) int {
	for i < len(src) && (src[i] == ' ' || src[i] == '\t') {
		i++
	}
	return i
}

func isIdentChar(c byte) bool {
	return c == '_' || c == '$' ||
		(c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
}
