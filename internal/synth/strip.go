package synth

// StripTypeNarrowing removes `as T` assertions and `satisfies T` clauses
// from a spliced source block for the untyped output dialect. Strings,
// template literals, and comments are left untouched. Only the first type
// atom after the keyword is consumed; everything else stays verbatim.
func StripTypeNarrowing(src string) string {
	var b []byte
	i := 0
	for i < len(src) {
		if j := skipOpaque(src, i); j > i {
			b = append(b, src[i:j]...)
			i = j
			continue
		}

		if kw := matchNarrowingKeyword(src, i); kw > 0 {
			// drop the whitespace already emitted before the keyword
			for len(b) > 0 && (b[len(b)-1] == ' ' || b[len(b)-1] == '\t') {
				b = b[:len(b)-1]
			}
			i = skipTypeAtom(src, i+kw)
			continue
		}

		b = append(b, src[i])
		i++
	}
	return string(b)
}

// matchNarrowingKeyword returns the keyword length when `as` or `satisfies`
// starts at i with word boundaries, otherwise 0
func matchNarrowingKeyword(src string, i int) int {
	if i > 0 && !isSpaceByte(src[i-1]) {
		return 0
	}
	for _, kw := range []string{"satisfies", "as"} {
		if len(src)-i > len(kw) && src[i:i+len(kw)] == kw && !isWordByte(src[i+len(kw)]) {
			// require a type atom to follow, not an operator
			j := i + len(kw)
			for j < len(src) && isSpaceByte(src[j]) {
				j++
			}
			if j < len(src) && (isWordByte(src[j]) || src[j] == '{' || src[j] == '(') {
				return len(kw)
			}
		}
	}
	return 0
}

// skipTypeAtom consumes one type expression: a dotted identifier path with
// optional balanced generics and array suffixes, or a braced/parenthesized
// type literal
func skipTypeAtom(src string, i int) int {
	for i < len(src) && isSpaceByte(src[i]) {
		i++
	}
	switch {
	case i < len(src) && (src[i] == '{' || src[i] == '('):
		return skipBalanced(src, i)
	default:
		for i < len(src) {
			switch {
			case isWordByte(src[i]) || src[i] == '.':
				i++
			case src[i] == '<':
				i = skipBalanced(src, i)
			case src[i] == '[' && i+1 < len(src) && src[i+1] == ']':
				i += 2
			default:
				return i
			}
		}
		return i
	}
}

// skipBalanced consumes a bracketed region starting at i, matching the
// opener against its closer
func skipBalanced(src string, i int) int {
	openers := map[byte]byte{'{': '}', '(': ')', '<': '>'}
	closer, ok := openers[src[i]]
	if !ok {
		return i + 1
	}
	opener := src[i]
	depth := 0
	for i < len(src) {
		switch src[i] {
		case opener:
			depth++
		case closer:
			depth--
			if depth == 0 {
				return i + 1
			}
		}
		i++
	}
	return i
}

// skipOpaque returns the end of a string, template, or comment starting at
// i, or i when none starts there
func skipOpaque(src string, i int) int {
	switch src[i] {
	case '\'', '"', '`':
		quote := src[i]
		j := i + 1
		for j < len(src) {
			if src[j] == '\\' {
				j += 2
				continue
			}
			if src[j] == quote {
				return j + 1
			}
			if quote != '`' && src[j] == '\n' {
				return j
			}
			j++
		}
		return len(src)
	case '/':
		if i+1 < len(src) && src[i+1] == '/' {
			j := i
			for j < len(src) && src[j] != '\n' {
				j++
			}
			return j
		}
		if i+1 < len(src) && src[i+1] == '*' {
			j := i + 2
			for j+1 < len(src) && !(src[j] == '*' && src[j+1] == '/') {
				j++
			}
			if j+1 < len(src) {
				return j + 2
			}
			return len(src)
		}
	}
	return i
}

func isSpaceByte(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

func isWordByte(c byte) bool {
	return c == '_' || c == '$' ||
		(c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
}
