package recommend

import (
	"fmt"
	"sort"

	"github.com/reactwise/condrec/internal/domain/catalog"
	"github.com/reactwise/condrec/internal/domain/evidence"
	"github.com/reactwise/condrec/internal/domain/scoring"
	rtypes "github.com/reactwise/condrec/pkg/types/reaction"
)

// ─────────────────────────────────────────────────────────────────────────────
// Combiner / Ranker
// ─────────────────────────────────────────────────────────────────────────────

const (
	combineTopPerRole = 3
	combineKeep       = 5
)

// combineConditions cross-joins the top ligands and solvents into ranked
// condition candidates.  Combined score is the mean of the pair's scores plus
// the static synergy bonus for the reaction type, clamped to [0,1].
func combineConditions(rt rtypes.Type, cat *catalog.Catalog, ligands, solvents []scoring.Candidate, suggestedBase string, sum *evidence.Summary) []CombinedCondition {
	topL := ligands
	if len(topL) > combineTopPerRole {
		topL = topL[:combineTopPerRole]
	}
	topS := solvents
	if len(topS) > combineTopPerRole {
		topS = topS[:combineTopPerRole]
	}

	conditions := conditionsForTag(rt, sum)

	out := make([]CombinedCondition, 0, len(topL)*len(topS))
	for _, l := range topL {
		for _, s := range topS {
			bonus := catalog.SynergyBonus(rt, l.Name, s.Name)
			score := clampUnit((l.Score+s.Score)/2 + bonus)
			cc := CombinedCondition{
				Ligand:               l.Name,
				LigandCompatibility:  round3(l.Score),
				Solvent:              s.Name,
				SolventCompatibility: round3(s.Score),
				CombinedScore:        round3(score),
				SynergyBonus:         round3(bonus),
				Confidence:           combinedConfidence(score),
				TypicalConditions:    conditions,
				SuggestedBase:        suggestedBase,
			}
			if sv, err := cat.Solvent(s.Name); err == nil {
				cc.SolventAbbreviation = sv.Abbrev
			}
			out = append(out, cc)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CombinedScore > out[j].CombinedScore
	})
	if len(out) > combineKeep {
		out = out[:combineKeep]
	}
	for i := range out {
		out[i].Rank = i + 1
	}
	return out
}

// combinedConfidence grades a combined condition score.
func combinedConfidence(score float64) string {
	switch {
	case score > 0.8:
		return "High"
	case score > 0.6:
		return "Medium"
	default:
		return "Low"
	}
}

// conditionsForTag prefers dataset statistics over the static defaults table:
// when the evidence summary carries temperature/time quartiles, those replace
// the canned ranges.
func conditionsForTag(rt rtypes.Type, sum *evidence.Summary) catalog.Conditions {
	cond := catalog.ConditionsFor(rt)
	if sum == nil {
		return cond
	}
	if t, ok := sum.NumericStats["temperature_c"]; ok && t.P25 != nil && t.P75 != nil {
		cond.Temperature = fmt.Sprintf("%s°C (dataset, n=%d)", formatRange(*t.P25, *t.P75), t.N)
	}
	if h, ok := sum.NumericStats["time_h"]; ok && h.P25 != nil && h.P75 != nil {
		cond.Time = fmt.Sprintf("%s hours (dataset, n=%d)", formatRange(*h.P25, *h.P75), h.N)
	}
	return cond
}

func formatRange(lo, hi float64) string {
	if lo == hi {
		return trimFloat(lo)
	}
	return trimFloat(lo) + "-" + trimFloat(hi)
}

func trimFloat(v float64) string {
	return fmt.Sprintf("%g", v)
}

// topConditionSets renders the leading combined conditions into complete
// chemical lists: starting materials, a default metal precursor for the
// reaction family, ligand, base, and solvent.
func topConditionSets(rxnSMILES string, reactants []string, rt rtypes.Type, cat *catalog.Catalog, combined []CombinedCondition) []TopCondition {
	out := make([]TopCondition, 0, combineTopPerRole)
	for i, cc := range combined {
		if i == combineTopPerRole {
			break
		}
		chemicals := make([]Chemical, 0, len(reactants)+4)
		for _, smi := range reactants {
			chemicals = append(chemicals, Chemical{SMILES: smi, Role: "starting_material"})
		}
		chemicals = append(chemicals, metalPrecursor(rt))
		chemicals = append(chemicals, Chemical{Name: cc.Ligand, Role: "ligand"})

		baseName := cc.SuggestedBase
		if baseName == "" {
			baseName = cc.TypicalConditions.Base
		}
		if baseName != "" {
			eq := 2.0
			chemicals = append(chemicals, Chemical{Name: baseName, Equivalents: &eq, Role: "base"})
		}

		solvent := Chemical{Name: cc.Solvent, Abbreviation: cc.SolventAbbreviation, Role: "solvent"}
		if sv, err := cat.Solvent(cc.Solvent); err == nil {
			solvent.CAS = sv.CAS
		}
		chemicals = append(chemicals, solvent)

		out = append(out, TopCondition{
			Reaction:  ReactionRef{SMILES: rxnSMILES},
			Chemicals: chemicals,
			Conditions: ConditionsSummary{
				Temperature: cc.TypicalConditions.Temperature,
				Time:        cc.TypicalConditions.Time,
				Atmosphere:  cc.TypicalConditions.Atmosphere,
			},
		})
	}
	return out
}

// metalPrecursor picks the stock metal source for a reaction family: copper
// for Ullmann chemistry, palladium acetate otherwise.
func metalPrecursor(rt rtypes.Type) Chemical {
	if isUllmann(rt) {
		return Chemical{Name: "CuI", CAS: "7681-65-4", Role: "metal_precursor"}
	}
	return Chemical{Name: "Pd(OAc)2", CAS: "3375-31-3", Role: "metal_precursor"}
}

func isUllmann(rt rtypes.Type) bool {
	return rt == rtypes.TypeUllmann
}

func clampUnit(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
