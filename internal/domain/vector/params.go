package vector

// Generation parameter bounds.
const (
	MinVectors     = 1
	MaxVectors     = 20
	DefaultVectors = 10

	MinDensity     = 128
	MaxDensity     = 1024
	DefaultDensity = 257

	MinPage     = 0
	MaxPage     = 9
	DefaultPage = 0
)

// Params is a normalized set of generation parameters.
type Params struct {
	vectors int
	density int
	page    int
}

// NewParams normalizes generation parameters.
// Non-positive vectors/density select the defaults; out-of-range values
// clamp to the documented bounds.
func NewParams(vectors, density, page int) Params {
	if vectors <= 0 {
		vectors = DefaultVectors
	}
	if vectors > MaxVectors {
		vectors = MaxVectors
	}
	if density <= 0 {
		density = DefaultDensity
	}
	if density < MinDensity {
		density = MinDensity
	}
	if density > MaxDensity {
		density = MaxDensity
	}
	if page < MinPage {
		page = MinPage
	}
	if page > MaxPage {
		page = MaxPage
	}
	return Params{vectors: vectors, density: density, page: page}
}

// Vectors returns the number of vectors to generate.
func (p *Params) Vectors() int { return p.vectors }

// Density returns the iteration budget of the first vector.
func (p *Params) Density() int { return p.density }

// Page returns the result page offset.
func (p *Params) Page() int { return p.page }
