package vector

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// Endpoint is the search engine all vectors target.
const Endpoint = "https://www.google.com/search"

// Build generates exactly p.Vectors() vectors for the prepared term.
// The iteration budget starts at p.Density() and decays per vector by a
// factor derived from the term's word count, flooring at one iteration.
// Build is total: every input yields a full batch.
func Build(term string, p Params) []Vector {
	decay := decayFactor(term)
	out := make([]Vector, 0, p.Vectors())
	for i := 0; i < p.Vectors(); i++ {
		iterations := p.Density() - i*decay
		if iterations < 1 {
			iterations = 1
		}
		q := "(" + term + ") (" + buildClause(iterations) + ")"
		u := fmt.Sprintf("%s?q=%s&start=%d", Endpoint, url.QueryEscape(q), p.Page()*10)
		out = append(out, Vector{index: i, url: u, iterations: iterations})
	}
	return out
}

// decayFactor is max(32 - words, 1), where words counts segments of the
// term split on the single space byte. Runs of spaces produce empty
// segments that still count.
func decayFactor(term string) int {
	words := len(strings.Split(term, " "))
	f := 32 - words
	if f < 1 {
		f = 1
	}
	return f
}

// buildClause folds iterations site fragments into one OR group, then
// drops exactly one trailing character: the final "|" goes, the space
// before it stays.
func buildClause(iterations int) string {
	var b strings.Builder
	b.Grow(iterations * len("site:*.*.00.* |"))
	for ii := 0; ii < iterations; ii++ {
		b.WriteString("site:*.*.")
		b.WriteString(strconv.Itoa(ii))
		b.WriteString(".* |")
	}
	clause := b.String()
	if clause == "" {
		panic("vector: empty clause, iteration floor violated")
	}
	return clause[:len(clause)-1]
}
