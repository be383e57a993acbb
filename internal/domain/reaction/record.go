package reaction

import (
	"strings"
	"unicode"

	rtypes "github.com/reactwise/condrec/pkg/types/reaction"
)

// ─────────────────────────────────────────────────────────────────────────────
// Dataset Records
// ─────────────────────────────────────────────────────────────────────────────

// Record is one normalized literature/dataset entry.  Role fields hold zero
// or more observed reagent names; a missing observation is an empty slice,
// never a sentinel value.  Numeric condition fields stay raw here: the
// evidence aggregator parses them defensively so that unparseable values can
// be counted rather than silently zeroed.
type Record struct {
	ID        string
	RawType   string
	Reactants string
	Products  string

	Catalysts []string
	Ligands   []string
	Solvents  []string
	Bases     []string

	TemperatureRaw string
	TimeRaw        string
	YieldRaw       string

	Reference string
}

// Type maps the record's raw reaction-type label to a tag, or unknown.
func (r Record) Type() rtypes.Type {
	return rtypes.ParseType(r.RawType)
}

// MatchesTag reports whether the record belongs to the given reaction-type
// tag.  Matching is tolerant of dataset label noise: tags compare by
// canonicalized token, and sub-variant names match on containment so that
// labels like "Ullmann Ether Synthesis" select the Ullmann partition.
func (r Record) MatchesTag(tag rtypes.Type) bool {
	raw := canonToken(r.RawType)
	if raw == "" {
		return false
	}
	want := canonToken(string(tag))
	if raw == want {
		return true
	}
	if strings.Contains(raw, want) {
		return true
	}
	return r.Type() == tag
}

// Encoding assembles the record's reaction encoding for similarity scoring.
func (r Record) Encoding() Encoding {
	return Encoding{
		Raw:       r.Reactants + Delimiter + r.Products,
		Reactants: r.Reactants,
		Products:  r.Products,
	}
}

// canonToken lowercases and strips everything but letters and digits.
func canonToken(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(s) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// SplitListField breaks a dataset cell that may hold a JSON-ish list
// ("['CuI', 'phen']") or a plain comma-separated string into trimmed tokens.
func SplitListField(cell string) []string {
	s := strings.TrimSpace(cell)
	s = strings.Trim(s, "[]")
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		p = strings.Trim(p, `"'`)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
