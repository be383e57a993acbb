// Package evidence implements the literature-evidence pipeline: reagent name
// normalization, the offline aggregator that turns dataset records into
// per-reaction-type frequency summaries, and the versioned stores those
// summaries are persisted in.
package evidence

import (
	"regexp"
	"strconv"
	"strings"

	rtypes "github.com/reactwise/condrec/pkg/types/reaction"
)

// ─────────────────────────────────────────────────────────────────────────────
// Canonicalization and Synonyms
// ─────────────────────────────────────────────────────────────────────────────

var nonAlnum = regexp.MustCompile(`[^a-z0-9]+`)

// Canonicalize lowercases a token, collapses every non-alphanumeric run, and
// removes the remaining spaces, so "Cs₂CO₃ (anhydrous)" and "cs2co3anhydrous"
// compare equal modulo the unicode subscripts handled by the synonym tables.
func Canonicalize(token string) string {
	s := strings.ToLower(strings.TrimSpace(token))
	s = strings.ReplaceAll(s, "µ", "u")
	s = nonAlnum.ReplaceAllString(s, " ")
	return strings.Join(strings.Fields(s), "")
}

// Synonym tables resolve the common literature spellings to one canonical
// key.  Kept in-module: they are part of the reproducibility contract of the
// aggregation manifest.
var baseSynonyms = map[string][]string{
	"k2co3":  {"potassium carbonate", "k_2co_3", "potassium carbonate (k2co3)", "potassiumcarbonate"},
	"cs2co3": {"cesium carbonate", "cesium carbonate (cs2co3)", "caesium carbonate"},
	"na2co3": {"sodium carbonate", "sodium carbonate (na2co3)"},
	"kotbu":  {"potassium tert-butoxide", "potassium t-butoxide", "t-buok", "buok", "tbuok"},
	"naotbu": {"sodium tert-butoxide", "sodium t-butoxide"},
	"k3po4":  {"tripotassium phosphate", "potassium phosphate", "kpo4", "tripotassiumphosphate"},
	"koac":   {"potassium acetate", "k acetate"},
	"naome":  {"sodium methoxide", "na ome"},
	"koh":    {"potassium hydroxide"},
	"naoh":   {"sodium hydroxide"},
	"tea":    {"triethylamine", "et3n"},
	"dipea":  {"diisopropylethylamine", "hunig's base"},
}

var solventSynonyms = map[string][]string{
	"dmf":     {"n,n-dimethylformamide", "dimethylformamide"},
	"dmso":    {"dimethyl sulfoxide", "dms o", "dm s o", "dimethylsulfoxide", "dimethyl sulphoxide"},
	"toluene": {"phme"},
	"meoh":    {"methanol"},
	"etoh":    {"ethanol"},
	"acn":     {"acetonitrile", "me cn", "mecn", "me-c n"},
	"nmp":     {"n-methyl-2-pyrrolidone", "n-methylpyrrolidone"},
}

var ligandSynonyms = map[string][]string{
	"l-proline": {"l proline", "proline"},
	"phen":      {"1,10-phenanthroline", "o-phenanthroline", "phenanthroline"},
	"bipy":      {"2,2'-bipyridine", "bipyridine"},
	"pph3":      {"triphenylphosphine", "p(ph)3", "p ph3"},
	"xphos":     {"x-phos"},
}

var metalSynonyms = map[string][]string{
	"cu": {"copper", "cui", "cu(i)", "cu(ii)", "cuprous iodide", "cupric acetate"},
	"pd": {"palladium"},
	"ni": {"nickel"},
}

// reverse lookup maps built once at init, keyed by canonical synonym.
var (
	baseLookup    = buildLookup(baseSynonyms)
	solventLookup = buildLookup(solventSynonyms)
	ligandLookup  = buildLookup(ligandSynonyms)
	metalLookup   = buildLookup(metalSynonyms)
)

func buildLookup(table map[string][]string) map[string]string {
	out := make(map[string]string, len(table)*3)
	for key, vals := range table {
		out[Canonicalize(key)] = key
		for _, v := range vals {
			out[Canonicalize(v)] = key
		}
	}
	return out
}

func synonymLookup(token string, lookup map[string]string) string {
	c := Canonicalize(token)
	if key, ok := lookup[c]; ok {
		return key
	}
	return c
}

// MapBase resolves a base name to its canonical key.
func MapBase(name string) string { return synonymLookup(name, baseLookup) }

// MapSolvent resolves a solvent name to its canonical key.
func MapSolvent(name string) string {
	// Fix a recurring OCR-style spacing artifact before lookup.
	name = strings.ReplaceAll(name, "DMS O", "DMSO")
	return synonymLookup(name, solventLookup)
}

// MapLigand resolves a ligand name to its canonical key.
func MapLigand(name string) string { return synonymLookup(name, ligandLookup) }

// MapMetal resolves a catalyst metal name to its canonical key.
func MapMetal(name string) string { return synonymLookup(name, metalLookup) }

// MapForRole returns the synonym resolver for a reagent role.
func MapForRole(role rtypes.Role) func(string) string {
	switch role {
	case rtypes.RoleBase:
		return MapBase
	case rtypes.RoleSolvent:
		return MapSolvent
	case rtypes.RoleLigand:
		return MapLigand
	case rtypes.RoleCatalyst:
		return MapMetal
	default:
		return Canonicalize
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Mixture and List Splitting
// ─────────────────────────────────────────────────────────────────────────────

var mixtureSeparators = regexp.MustCompile(`[\/:,;+\\]|\s+and\s+`)

// NormalizeMixture splits composite fields like "DMF/THF" or "toluene:MeCN"
// into canonicalized tokens.
func NormalizeMixture(text string) []string {
	if strings.TrimSpace(text) == "" {
		return nil
	}
	parts := mixtureSeparators.Split(text, -1)
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if strings.TrimSpace(p) == "" {
			continue
		}
		out = append(out, Canonicalize(p))
	}
	return out
}

// NormalizeField resolves every token in a possibly list-like dataset cell
// through the role's synonym table and deduplicates, preserving first-seen
// order.
func NormalizeField(tokens []string, role rtypes.Role) []string {
	mapFn := MapForRole(role)
	seen := make(map[string]struct{}, len(tokens))
	out := make([]string, 0, len(tokens))
	for _, t := range tokens {
		n := mapFn(t)
		if n == "" {
			continue
		}
		if _, dup := seen[n]; dup {
			continue
		}
		seen[n] = struct{}{}
		out = append(out, n)
	}
	return out
}

// ─────────────────────────────────────────────────────────────────────────────
// Defensive Numeric Parsing
// ─────────────────────────────────────────────────────────────────────────────

var numberPattern = regexp.MustCompile(`[-+]?[0-9]*\.?[0-9]+`)

// ParseNumeric extracts the first numeric value from a free-form condition
// cell ("110 C", "12 h", "85%").  The boolean is false when no number is
// present; callers count such cells instead of substituting zero.
func ParseNumeric(text string) (float64, bool) {
	s := strings.TrimSpace(text)
	if s == "" {
		return 0, false
	}
	s = strings.ReplaceAll(s, ",", ".")
	m := numberPattern.FindString(s)
	if m == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(m, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// ─────────────────────────────────────────────────────────────────────────────
// Prior-Matching Keys
// ─────────────────────────────────────────────────────────────────────────────
//
// The booster matches catalog reagent names against summary prior names with
// lighter-weight keys than full canonicalization: these mirror how the top
// lists were written, not how raw dataset cells were cleaned.

// PriorKeyLigand matches ligand names case-insensitively.
func PriorKeyLigand(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// PriorKeySolvent lowercases and strips spaces.  DMSO's historical "dms o"
// canonical spelling is folded onto one key.
func PriorKeySolvent(name string) string {
	s := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), " ", "")
	if s == "dmso" || s == "dimethylsulfoxide" {
		return "dmso"
	}
	return s
}

// PriorKeyBase favors a formula written in trailing parentheses, e.g.
// "Potassium carbonate (K2CO3)" keys as "k2co3".
func PriorKeyBase(name string) string {
	s := strings.TrimSpace(name)
	if open := strings.LastIndex(s, "("); open >= 0 {
		if end := strings.LastIndex(s, ")"); end > open {
			if inner := strings.TrimSpace(s[open+1 : end]); inner != "" {
				s = inner
			}
		}
	}
	return strings.ReplaceAll(strings.ToLower(s), " ", "")
}
