package scanner

// blank replaces every `//` line comment and `/* */` block comment in src
// with spaces, and every carriage return with a space, in place. Newlines
// inside comments are preserved so that row tracking downstream is
// unaffected — only the comment text itself disappears, exactly as if the
// author had typed that many spaces instead (spec §4.2: "comments are
// blanked, not removed, so that every surviving glyph keeps its original
// position").
func blank(src []rune) {
	n := len(src)
	for i := 0; i < n; i++ {
		switch {
		case src[i] == '\r':
			src[i] = ' '
		case src[i] == '"':
			i = skipString(src, i)
		case src[i] == '/' && i+1 < n && src[i+1] == '/':
			j := i
			for j < n && src[j] != '\n' {
				src[j] = ' '
				j++
			}
			i = j - 1
		case src[i] == '/' && i+1 < n && src[i+1] == '*':
			j := i
			src[j] = ' '
			src[j+1] = ' '
			j += 2
			for j < n && !(src[j] == '*' && j+1 < n && src[j+1] == '/') {
				if src[j] != '\n' {
					src[j] = ' '
				}
				j++
			}
			if j < n {
				src[j] = ' '
				if j+1 < n {
					src[j+1] = ' '
				}
				j++
			}
			i = j
		}
	}
}

// skipString returns the index of the closing quote of the string literal
// starting at src[start] (which must be '"'), so that blank never mistakes
// a `//` or `/*` inside a string literal's text for a comment. Escaped
// quotes are honored; an unterminated string is left to the scanner proper
// to report.
func skipString(src []rune, start int) int {
	n := len(src)
	i := start + 1
	for i < n && src[i] != '"' {
		if src[i] == '\\' && i+1 < n {
			i += 2
			continue
		}
		if src[i] == '\n' {
			return i - 1
		}
		i++
	}
	return i
}
