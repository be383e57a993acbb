// Package reaction provides the reaction-side domain model: the textual
// reaction encoding, the dataset record stream, and the pattern-based
// reaction-type classifier that routes every recommendation request.
package reaction

import (
	"regexp"
	"strings"

	"github.com/reactwise/condrec/pkg/errors"
)

// ─────────────────────────────────────────────────────────────────────────────
// Reaction Encoding
// ─────────────────────────────────────────────────────────────────────────────

// Delimiter separates the reactant side from the product side in a reaction
// encoding.
const Delimiter = ">>"

var (
	// plausibleSMILES is the allowed character set for molecular notation.
	// This is a shallow check; full validation requires a structure parser.
	plausibleSMILES = regexp.MustCompile(`^[A-Za-z0-9@+\-\[\]()=#/\\%.*:]+$`)

	whitespace = regexp.MustCompile(`\s+`)
)

// Encoding is a parsed reaction encoding.  Products is empty when the input
// carried only a single molecule side (no delimiter); such encodings still
// flow through the similarity fallback, they just cannot be classified.
type Encoding struct {
	Raw       string
	Reactants string
	Products  string
}

// ParseEncoding splits a raw reaction encoding on the first reaction
// delimiter.  Whitespace is stripped throughout.  Only empty input is an
// error; syntactically dubious notation is preserved so downstream stages can
// degrade gracefully instead of refusing the request.
func ParseEncoding(raw string) (Encoding, error) {
	cleaned := whitespace.ReplaceAllString(strings.TrimSpace(raw), "")
	if cleaned == "" {
		return Encoding{}, errors.New(errors.ErrCodeReactionEmptyInput, "empty reaction encoding")
	}

	enc := Encoding{Raw: cleaned}
	if idx := strings.Index(cleaned, Delimiter); idx >= 0 {
		enc.Reactants = cleaned[:idx]
		enc.Products = cleaned[idx+len(Delimiter):]
	} else {
		enc.Reactants = cleaned
	}
	return enc, nil
}

// Complete reports whether both reaction sides are present and non-empty.
func (e Encoding) Complete() bool {
	return e.Reactants != "" && e.Products != ""
}

// Plausible reports whether both sides contain only molecular-notation
// characters.
func (e Encoding) Plausible() bool {
	if e.Reactants == "" {
		return false
	}
	if !plausibleSMILES.MatchString(e.Reactants) {
		return false
	}
	return e.Products == "" || plausibleSMILES.MatchString(e.Products)
}

// ReactantMolecules returns the dot-separated molecules on the reactant side.
func (e Encoding) ReactantMolecules() []string { return splitMolecules(e.Reactants) }

// ProductMolecules returns the dot-separated molecules on the product side.
func (e Encoding) ProductMolecules() []string { return splitMolecules(e.Products) }

func splitMolecules(side string) []string {
	if side == "" {
		return nil
	}
	parts := strings.Split(side, ".")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

// Normalized returns the canonical cache-key form of the encoding.
func (e Encoding) Normalized() string { return e.Raw }
