package diagnostic

import "time"

// Kind classifies an advisory notice.
type Kind string

// Diagnostic kind constants.
const (
	// Sanitized signals that sanitization removed or replaced characters.
	Sanitized Kind = "sanitized"
	// UnbalancedSyntax signals that the raw term failed the balance check
	// and its parentheses were escaped.
	UnbalancedSyntax Kind = "unbalanced-syntax"
	// DensityRisk signals a density above the advisory threshold.
	DensityRisk Kind = "density-risk"
	// PopupBlocked signals that the host refused to open a vector URL.
	PopupBlocked Kind = "popup-blocked"
)

// DensityRiskThreshold is the density above which a DensityRisk notice
// is emitted. Generation proceeds regardless.
const DensityRiskThreshold = 600

// IsValid checks if the kind is one of the supported values.
func (k Kind) IsValid() bool {
	return k == Sanitized || k == UnbalancedSyntax || k == DensityRisk || k == PopupBlocked
}

// Diagnostic is an advisory notice emitted alongside generation.
// Notices never abort generation; they are collected and surfaced by the
// presentation layer.
type Diagnostic struct {
	kind Kind
	text string
	at   time.Time
}

// New creates a diagnostic stamped with the current time.
func New(kind Kind, text string) Diagnostic {
	return Diagnostic{kind: kind, text: text, at: time.Now()}
}

// Kind returns the notice classification.
func (d *Diagnostic) Kind() Kind { return d.kind }

// Text returns the human-readable message.
func (d *Diagnostic) Text() string { return d.text }

// At returns the creation timestamp.
func (d *Diagnostic) At() time.Time { return d.at }
