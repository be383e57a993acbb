package scoring

import (
	"github.com/reactwise/condrec/internal/domain/catalog"
	rtypes "github.com/reactwise/condrec/pkg/types/reaction"
)

// ─────────────────────────────────────────────────────────────────────────────
// Property-Preference Queries
// ─────────────────────────────────────────────────────────────────────────────

// Property queries pull a wider candidate pool at a raised compatibility bar,
// filter on attribute bounds, and keep a short shortlist.  The alternatives
// block of the recommendation payload (budget ligands, low-boiling solvents,
// green solvents) is built from these.
const (
	propertyMinCompat = 0.4
	propertyPool      = 10
	propertyKeep      = 5
)

// LigandPreferences bounds ligand attributes.  Nil fields are unconstrained.
type LigandPreferences struct {
	ConeAngleMax *float64
	PriceMax     *float64
	Denticity    *int
}

// SolventPreferences bounds solvent attributes.
type SolventPreferences struct {
	BoilingPointMax *float64
	BoilingPointMin *float64
	PolarityMax     *float64
	PolarityMin     *float64
	Protic          *bool
}

// BasePreferences bounds base attributes.
type BasePreferences struct {
	PKaHMin *float64
	TypeIn  []string
}

// LigandsMatching returns the top ligands for rt that satisfy prefs.  A nil
// prefs returns the unfiltered pool.
func (s *Scorer) LigandsMatching(rt rtypes.Type, prefs *LigandPreferences) []Candidate {
	pool := capCandidates(s.scoreLigands(rt, "", propertyMinCompat), propertyPool)
	if prefs == nil {
		return pool
	}
	var kept []Candidate
	for _, c := range pool {
		l, err := s.cat.Ligand(c.Name)
		if err != nil {
			continue
		}
		if prefs.ConeAngleMax != nil && l.ConeAngle > *prefs.ConeAngleMax {
			continue
		}
		if prefs.PriceMax != nil && l.Price > *prefs.PriceMax {
			continue
		}
		if prefs.Denticity != nil && l.Denticity != *prefs.Denticity {
			continue
		}
		kept = append(kept, c)
	}
	return capCandidates(kept, propertyKeep)
}

// SolventsMatching returns the top solvents for rt that satisfy prefs.
func (s *Scorer) SolventsMatching(rt rtypes.Type, prefs *SolventPreferences) []Candidate {
	pool := capCandidates(s.scoreSolvents(rt, "", propertyMinCompat), propertyPool)
	if prefs == nil {
		return pool
	}
	var kept []Candidate
	for _, c := range pool {
		sv, err := s.cat.Solvent(c.Name)
		if err != nil {
			continue
		}
		if prefs.BoilingPointMax != nil && sv.BoilingPoint > *prefs.BoilingPointMax {
			continue
		}
		if prefs.BoilingPointMin != nil && sv.BoilingPoint < *prefs.BoilingPointMin {
			continue
		}
		if prefs.PolarityMax != nil && sv.Polarity > *prefs.PolarityMax {
			continue
		}
		if prefs.PolarityMin != nil && sv.Polarity < *prefs.PolarityMin {
			continue
		}
		if prefs.Protic != nil && (sv.HBD > 0.5) != *prefs.Protic {
			continue
		}
		kept = append(kept, c)
	}
	return capCandidates(kept, propertyKeep)
}

// BasesMatching returns the top bases for rt that satisfy prefs.
func (s *Scorer) BasesMatching(rt rtypes.Type, prefs *BasePreferences) []Candidate {
	pool := capCandidates(s.scoreBases(rt, "", propertyMinCompat), propertyPool)
	if prefs == nil {
		return pool
	}
	var kept []Candidate
	for _, c := range pool {
		b, err := s.cat.Base(c.Name)
		if err != nil {
			continue
		}
		if prefs.PKaHMin != nil && b.PKaH < *prefs.PKaHMin {
			continue
		}
		if len(prefs.TypeIn) > 0 && !containsString(prefs.TypeIn, b.Type) {
			continue
		}
		kept = append(kept, c)
	}
	return capCandidates(kept, propertyKeep)
}

// Catalog exposes the underlying reagent tables for callers that need
// attribute detail when presenting candidates.
func (s *Scorer) Catalog() *catalog.Catalog { return s.cat }

func capCandidates(cands []Candidate, n int) []Candidate {
	if len(cands) > n {
		return cands[:n]
	}
	return cands
}

func containsString(list []string, want string) bool {
	for _, v := range list {
		if v == want {
			return true
		}
	}
	return false
}
