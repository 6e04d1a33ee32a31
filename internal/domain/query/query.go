package query

import "strings"

var parenEscaper = strings.NewReplacer("(", `\(`, ")", `\)`)

// Sanitize removes ASCII control characters (0x00-0x1F and 0x7F),
// normalizes curly quotes to their ASCII equivalents and trims
// surrounding whitespace. It is pure, total and idempotent.
func Sanitize(raw string) string {
	cleaned := strings.Map(func(r rune) rune {
		switch {
		case r < 0x20 || r == 0x7F:
			return -1
		case r == '‘' || r == '’':
			return '\''
		case r == '“' || r == '”':
			return '"'
		default:
			return r
		}
	}, raw)
	return strings.TrimSpace(cleaned)
}

// IsBalanced reports whether every parenthesis in s closes in order.
// A closing paren without an open partner fails immediately; all other
// characters are ignored.
func IsBalanced(s string) bool {
	depth := 0
	for _, r := range s {
		switch r {
		case '(':
			depth++
		case ')':
			depth--
			if depth < 0 {
				return false
			}
		}
	}
	return depth == 0
}

// ProcessTerm returns term unchanged when its parentheses balance.
// Otherwise it returns the term with every parenthesis prefixed by a
// backslash. The parenthesis count is preserved either way.
func ProcessTerm(term string) string {
	if IsBalanced(term) {
		return term
	}
	return parenEscaper.Replace(term)
}
