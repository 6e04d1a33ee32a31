package cybersearch

import (
	"time"

	"github.com/enotkrutoy/CyberSearch/internal/domain"
	"github.com/enotkrutoy/CyberSearch/internal/usecase/generate"
)

// ErrEmptyTerm is returned when the phrase is empty after sanitization.
// The batch is refused before any vector is built.
var ErrEmptyTerm = domain.ErrEmptyTerm

// Kind classifies a generation diagnostic.
type Kind string

// Diagnostic kind constants.
const (
	KindSanitized        Kind = "sanitized"
	KindUnbalancedSyntax Kind = "unbalanced-syntax"
	KindDensityRisk      Kind = "density-risk"
	KindPopupBlocked     Kind = "popup-blocked"
)

// Vector is one generated search URL.
type Vector struct {
	Index      int
	URL        string
	Iterations int
}

// Diagnostic is an advisory note attached to a batch. Diagnostics never
// invalidate the batch.
type Diagnostic struct {
	Kind Kind
	Text string
	At   time.Time
}

// Result is one generated batch.
type Result struct {
	ID          string
	Term        string
	Vectors     []Vector
	Diagnostics []Diagnostic
	Elapsed     time.Duration
}

// toResult converts the internal result to the public shape.
func toResult(r generate.Result) Result {
	out := Result{
		ID:      r.ID,
		Term:    r.Term,
		Vectors: make([]Vector, 0, len(r.Vectors)),
		Elapsed: r.Elapsed,
	}
	for _, v := range r.Vectors {
		out.Vectors = append(out.Vectors, Vector{
			Index:      v.Index(),
			URL:        v.URL(),
			Iterations: v.Iterations(),
		})
	}
	for _, d := range r.Diagnostics {
		out.Diagnostics = append(out.Diagnostics, Diagnostic{
			Kind: Kind(d.Kind()),
			Text: d.Text(),
			At:   d.At(),
		})
	}
	return out
}
