package jsonrepair

import "strings"

// The repair passes below walk the input byte by byte, tracking string
// literal state, so content inside quoted strings is never rewritten.

// StripTrailingCommas drops commas that sit directly before a closing
// brace or bracket: `{"a":1,}` becomes `{"a":1}`.
func StripTrailingCommas(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	inString := false
	escaped := false

	for i := 0; i < len(s); i++ {
		c := s[i]

		if inString {
			b.WriteByte(c)
			if escaped {
				escaped = false
			} else if c == '\\' {
				escaped = true
			} else if c == '"' {
				inString = false
			}
			continue
		}

		if c == '"' {
			inString = true
			b.WriteByte(c)
			continue
		}

		if c == ',' {
			j := i + 1
			for j < len(s) && isSpace(s[j]) {
				j++
			}
			if j < len(s) && (s[j] == '}' || s[j] == ']') {
				continue
			}
		}

		b.WriteByte(c)
	}
	return b.String()
}

// QuoteBareKeys wraps unquoted object keys in double quotes:
// `{days: []}` becomes `{"days": []}`.
func QuoteBareKeys(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	inString := false
	escaped := false

	for i := 0; i < len(s); i++ {
		c := s[i]

		if inString {
			b.WriteByte(c)
			if escaped {
				escaped = false
			} else if c == '\\' {
				escaped = true
			} else if c == '"' {
				inString = false
			}
			continue
		}

		if c == '"' {
			inString = true
			b.WriteByte(c)
			continue
		}

		if isIdentStart(c) {
			end := i
			for end < len(s) && isIdentChar(s[end]) {
				end++
			}
			j := end
			for j < len(s) && isSpace(s[j]) {
				j++
			}
			if j < len(s) && s[j] == ':' {
				b.WriteByte('"')
				b.WriteString(s[i:end])
				b.WriteByte('"')
				i = end - 1
				continue
			}
			b.WriteString(s[i:end])
			i = end - 1
			continue
		}

		b.WriteByte(c)
	}
	return b.String()
}

// QuoteBareValues wraps unquoted scalar values in double quotes, leaving the
// JSON literals true/false/null and anything numeric alone:
// `{"mood": happy}` becomes `{"mood": "happy"}`. An e/E directly after a
// number is an exponent suffix (`1e5`, `1E+21`), never a bare word.
func QuoteBareValues(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	inString := false
	escaped := false
	var prev byte // last non-space byte seen outside string literals

	for i := 0; i < len(s); i++ {
		c := s[i]

		if inString {
			b.WriteByte(c)
			if escaped {
				escaped = false
			} else if c == '\\' {
				escaped = true
			} else if c == '"' {
				inString = false
			}
			continue
		}

		if c == '"' {
			inString = true
			prev = c
			b.WriteByte(c)
			continue
		}

		if isIdentStart(c) {
			if (c == 'e' || c == 'E') && (isDigit(prev) || prev == '.') {
				b.WriteByte(c)
				j := i + 1
				if j < len(s) && (s[j] == '+' || s[j] == '-') {
					b.WriteByte(s[j])
					j++
				}
				for j < len(s) && isDigit(s[j]) {
					b.WriteByte(s[j])
					j++
				}
				prev = s[j-1]
				i = j - 1
				continue
			}

			end := i
			for end < len(s) && isIdentChar(s[end]) {
				end++
			}
			word := s[i:end]

			j := end
			for j < len(s) && isSpace(s[j]) {
				j++
			}

			isKey := j < len(s) && s[j] == ':'
			isLiteral := word == "true" || word == "false" || word == "null"

			if !isKey && !isLiteral {
				b.WriteByte('"')
				b.WriteString(word)
				b.WriteByte('"')
				prev = '"'
			} else {
				b.WriteString(word)
				prev = word[len(word)-1]
			}
			i = end - 1
			continue
		}

		if !isSpace(c) {
			prev = c
		}
		b.WriteByte(c)
	}
	return b.String()
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isIdentStart(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c == '_'
}

func isIdentChar(c byte) bool {
	return isIdentStart(c) || c >= '0' && c <= '9' || c == '-'
}
