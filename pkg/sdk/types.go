package cybersearch

import "time"

// GenerateRequest is the body of POST /api/v1/vectors. Zero-valued
// parameters fall back to the server's profile defaults.
type GenerateRequest struct {
	Term    string `json:"term"`
	Vectors int    `json:"vectors,omitempty"`
	Density int    `json:"density,omitempty"`
	Page    int    `json:"page,omitempty"`
}

// Vector is one generated search URL.
type Vector struct {
	Index      int    `json:"index"`
	URL        string `json:"url"`
	Iterations int    `json:"iterations"`
}

// Diagnostic is an advisory note attached to a batch.
type Diagnostic struct {
	Kind string    `json:"kind"`
	Text string    `json:"text"`
	At   time.Time `json:"at"`
}

// Params echoes the effective parameters after clamping.
type Params struct {
	Vectors int `json:"vectors"`
	Density int `json:"density"`
	Page    int `json:"page"`
}

// GenerateResponse is one generated batch.
type GenerateResponse struct {
	ID          string       `json:"id"`
	Term        string       `json:"term"`
	Params      Params       `json:"params"`
	Vectors     []Vector     `json:"vectors"`
	Diagnostics []Diagnostic `json:"diagnostics,omitempty"`
}

// VersionInfo is the server build metadata.
type VersionInfo struct {
	Version string `json:"version"`
	Commit  string `json:"commit"`
	Date    string `json:"date"`
}

type healthResponse struct {
	Status string `json:"status"`
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
