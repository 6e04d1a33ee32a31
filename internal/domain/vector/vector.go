package vector

// Vector is one generated search probe. Index 0 is the primary vector,
// the one frontends open automatically.
type Vector struct {
	index      int
	url        string
	iterations int
}

// Index returns the position in the batch.
func (v *Vector) Index() int { return v.index }

// URL returns the fully encoded search URL.
func (v *Vector) URL() string { return v.url }

// Iterations returns the number of site fragments folded into the clause.
func (v *Vector) Iterations() int { return v.iterations }
