package cybersearch

import "github.com/enotkrutoy/CyberSearch/internal/domain/query"

// Sanitize strips control characters from raw, normalizes curly quotes
// to their ASCII forms and trims surrounding whitespace. It is pure and
// idempotent.
func Sanitize(raw string) string {
	return query.Sanitize(raw)
}

// IsBalanced reports whether every ( in s closes in order.
func IsBalanced(s string) bool {
	return query.IsBalanced(s)
}

// ProcessTerm escapes all parentheses in term with backslashes when
// they are unbalanced; balanced terms pass through unchanged.
func ProcessTerm(term string) string {
	return query.ProcessTerm(term)
}
