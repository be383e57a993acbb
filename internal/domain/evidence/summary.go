package evidence

import (
	rtypes "github.com/reactwise/condrec/pkg/types/reaction"
)

// ─────────────────────────────────────────────────────────────────────────────
// Evidence Summary Artifact
// ─────────────────────────────────────────────────────────────────────────────

// TopItem is one ranked frequency entry: how many analyzed rows mention the
// reagent and which share of the partition that is.
type TopItem struct {
	Name  string  `json:"name"`
	Count int     `json:"count"`
	Pct   float64 `json:"pct"`
}

// CoItem is one pairwise co-occurrence entry.
type CoItem struct {
	A     string  `json:"a"`
	B     string  `json:"b"`
	Count int     `json:"count"`
	Pct   float64 `json:"pct"`
}

// NumericStat holds robust statistics for one numeric condition field.
// Quartiles are nil when no value parsed, never zero.
type NumericStat struct {
	Median *float64 `json:"median"`
	P25    *float64 `json:"p25"`
	P75    *float64 `json:"p75"`
	N      int      `json:"n"`
}

// TopLists groups the ranked frequency lists per reagent role.
type TopLists struct {
	Metals    []TopItem `json:"metals"`
	Ligands   []TopItem `json:"ligands"`
	Bases     []TopItem `json:"bases"`
	Solvents  []TopItem `json:"solvents"`
	Additives []TopItem `json:"additives"`
}

// Cooccurrence groups the pairwise counters the aggregator tracks.
type Cooccurrence struct {
	LigandSolvent  []CoItem `json:"ligand_solvent"`
	BaseSolvent    []CoItem `json:"base_solvent"`
	CatalystLigand []CoItem `json:"catalyst_ligand"`
}

// Meta records provenance for one summary generation.  Fingerprint is a
// content hash of the analyzed input rows; a consumer holding a summary whose
// fingerprint no longer matches the current dataset knows it is stale.
type Meta struct {
	Tag          string `json:"tag"`
	TotalRows    int    `json:"total_rows"`
	AnalyzedRows int    `json:"analyzed_rows"`
	GeneratedAt  string `json:"generated_at"`
	Fingerprint  string `json:"content_fingerprint"`
}

// Manifest makes every aggregation auditable: how many rows came in, how many
// numeric cells were dropped as unparseable per field, and which
// normalizations ran.  It is a pure function of the input records and the
// in-module synonym tables.
type Manifest struct {
	InputRows      int            `json:"input_rows"`
	MatchedRows    int            `json:"matched_rows"`
	SkippedNumeric map[string]int `json:"skipped_numeric"`
	Normalizations []string       `json:"normalizations_applied"`
}

// Summary is the persisted evidence artifact for one reaction-type tag.
type Summary struct {
	Meta         Meta                   `json:"summary"`
	Top          TopLists               `json:"top"`
	Cooccurrence Cooccurrence           `json:"cooccurrence"`
	NumericStats map[string]NumericStat `json:"numeric_stats"`
	Notes        Manifest               `json:"notes"`
}

// RoleTop returns the ranked top list for a reagent role.  Every role is
// always present in the artifact (possibly empty), so the zero slice here
// means "no evidence", not "missing key".
func (s *Summary) RoleTop(role rtypes.Role) []TopItem {
	switch role {
	case rtypes.RoleLigand:
		return s.Top.Ligands
	case rtypes.RoleSolvent:
		return s.Top.Solvents
	case rtypes.RoleBase:
		return s.Top.Bases
	case rtypes.RoleCatalyst:
		return s.Top.Metals
	default:
		return nil
	}
}

// Priors converts a role's top list into a canonical-key → pct map for the
// booster, using the role's prior key function.  Entries with non-positive
// pct are dropped.
func (s *Summary) Priors(role rtypes.Role) map[string]float64 {
	top := s.RoleTop(role)
	if len(top) == 0 {
		return nil
	}
	key := priorKeyForRole(role)
	out := make(map[string]float64, len(top))
	for _, item := range top {
		if item.Name == "" || item.Pct <= 0 {
			continue
		}
		out[key(item.Name)] = item.Pct
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

func priorKeyForRole(role rtypes.Role) func(string) string {
	switch role {
	case rtypes.RoleSolvent:
		return PriorKeySolvent
	case rtypes.RoleBase:
		return PriorKeyBase
	default:
		return PriorKeyLigand
	}
}

// SupportCount returns the evidence count for a reagent name under a role,
// matched via the role's prior key.
func (s *Summary) SupportCount(role rtypes.Role, name string) int {
	key := priorKeyForRole(role)
	want := key(name)
	for _, item := range s.RoleTop(role) {
		if key(item.Name) == want {
			return item.Count
		}
	}
	return 0
}
