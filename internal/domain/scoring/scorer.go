// Package scoring ranks catalog reagents for a resolved reaction type.  The
// base score of a candidate is its compatibility entry for the reaction's
// scoring family, optionally blended with a weighted attribute similarity to a
// caller-supplied reference reagent.  The Booster then adjusts base scores
// with dataset evidence priors.
package scoring

import (
	"math"
	"sort"
	"strings"

	"github.com/reactwise/condrec/internal/config"
	"github.com/reactwise/condrec/internal/domain/catalog"
	"github.com/reactwise/condrec/internal/infrastructure/monitoring/logging"
	rtypes "github.com/reactwise/condrec/pkg/types/reaction"
)

// ─────────────────────────────────────────────────────────────────────────────
// Candidate
// ─────────────────────────────────────────────────────────────────────────────

// Candidate is one scored reagent.  Score starts as the compatibility/
// similarity blend and is later adjusted in place by the evidence booster.
type Candidate struct {
	Name          string
	Role          rtypes.Role
	Compatibility float64
	Similarity    float64
	HasSimilarity bool
	Score         float64
	Support       int
	Applications  string
	BaseType      string // bases only: Inorganic / Organic / Superbase
	Curated       bool   // true for fallback entries not backed by the catalog
}

// ─────────────────────────────────────────────────────────────────────────────
// Scorer
// ─────────────────────────────────────────────────────────────────────────────

// Scorer ranks catalog reagents against a reaction type.  A Scorer is
// immutable after construction and safe for concurrent use.
type Scorer struct {
	cat          *catalog.Catalog
	compatWeight float64
	minCompat    float64
	log          logging.Logger
}

// NewScorer builds a Scorer over the given catalog.  Zero-valued config
// fields fall back to the engine defaults.
func NewScorer(cat *catalog.Catalog, cfg config.ScoringConfig, log logging.Logger) *Scorer {
	if log == nil {
		log = logging.NewNopLogger()
	}
	alpha := cfg.CompatWeight
	if alpha <= 0 || alpha > 1 {
		alpha = config.DefaultCompatWeight
	}
	minCompat := cfg.MinCompatibility
	if minCompat <= 0 {
		minCompat = config.DefaultMinCompatibility
	}
	return &Scorer{
		cat:          cat,
		compatWeight: alpha,
		minCompat:    minCompat,
		log:          log.Named("scorer"),
	}
}

// ScoreLigands ranks every catalog ligand compatible with rt.  When reference
// names a catalog ligand, candidates are re-ranked by the compatibility/
// similarity blend and the reference itself is dropped from the result.
func (s *Scorer) ScoreLigands(rt rtypes.Type, reference string) []Candidate {
	return s.scoreLigands(rt, reference, s.minCompat)
}

// ScoreLigandsWithFloor ranks ligands against an explicit compatibility floor
// instead of the configured one.
func (s *Scorer) ScoreLigandsWithFloor(rt rtypes.Type, reference string, floor float64) []Candidate {
	return s.scoreLigands(rt, reference, floor)
}

func (s *Scorer) scoreLigands(rt rtypes.Type, reference string, minCompat float64) []Candidate {
	weights := ligandWeightVec(catalog.LigandWeightsFor(rt))
	features := normalizeColumns(ligandFeatures(s.cat.Ligands))

	refIdx := -1
	if reference != "" {
		refIdx = findLigand(s.cat.Ligands, reference)
		if refIdx < 0 {
			s.log.Debug("reference ligand not in catalog, skipping similarity blend",
				logging.String("reference", reference))
		}
	}

	var out []Candidate
	for i, l := range s.cat.Ligands {
		compat := l.CompatFor(rt)
		if compat < minCompat || i == refIdx {
			continue
		}
		c := Candidate{
			Name:          l.Name,
			Role:          rtypes.RoleLigand,
			Compatibility: compat,
			Score:         compat,
			Applications:  l.Applications,
		}
		if refIdx >= 0 {
			c.Similarity = weightedSimilarity(features[refIdx], features[i], weights)
			c.HasSimilarity = true
			c.Score = s.blend(compat, c.Similarity)
		}
		out = append(out, c)
	}
	sortByScore(out)
	return out
}

// ScoreSolvents ranks every catalog solvent compatible with rt, optionally
// blended against a reference solvent.
func (s *Scorer) ScoreSolvents(rt rtypes.Type, reference string) []Candidate {
	return s.scoreSolvents(rt, reference, s.minCompat)
}

// ScoreSolventsWithFloor ranks solvents against an explicit compatibility floor.
func (s *Scorer) ScoreSolventsWithFloor(rt rtypes.Type, reference string, floor float64) []Candidate {
	return s.scoreSolvents(rt, reference, floor)
}

func (s *Scorer) scoreSolvents(rt rtypes.Type, reference string, minCompat float64) []Candidate {
	weights := solventWeightVec(catalog.SolventWeightsFor(rt))
	features := normalizeColumns(solventFeatures(s.cat.Solvents))

	refIdx := -1
	if reference != "" {
		refIdx = findSolvent(s.cat.Solvents, reference)
		if refIdx < 0 {
			s.log.Debug("reference solvent not in catalog, skipping similarity blend",
				logging.String("reference", reference))
		}
	}

	var out []Candidate
	for i, sv := range s.cat.Solvents {
		compat := sv.CompatFor(rt)
		if compat < minCompat || i == refIdx {
			continue
		}
		c := Candidate{
			Name:          sv.Name,
			Role:          rtypes.RoleSolvent,
			Compatibility: compat,
			Score:         compat,
			Applications:  sv.Applications,
		}
		if refIdx >= 0 {
			c.Similarity = weightedSimilarity(features[refIdx], features[i], weights)
			c.HasSimilarity = true
			c.Score = s.blend(compat, c.Similarity)
		}
		out = append(out, c)
	}
	sortByScore(out)
	return out
}

// ScoreBases ranks every catalog base compatible with rt.  Ullmann-type
// reactions favor carbonate/phosphate/alkoxide bases: those entries get a
// +0.2 compatibility adjustment (clamped to 1) before ranking.  When the
// catalog yields no base at all for an Ullmann reaction, the curated fallback
// list is returned instead.
func (s *Scorer) ScoreBases(rt rtypes.Type, reference string) []Candidate {
	return s.scoreBases(rt, reference, s.minCompat)
}

// ScoreBasesWithFloor ranks bases against an explicit compatibility floor.
func (s *Scorer) ScoreBasesWithFloor(rt rtypes.Type, reference string, floor float64) []Candidate {
	return s.scoreBases(rt, reference, floor)
}

func (s *Scorer) scoreBases(rt rtypes.Type, reference string, minCompat float64) []Candidate {
	weights := baseWeightVec(catalog.BaseWeightsFor(rt))
	features := normalizeColumns(baseFeatures(s.cat.Bases))
	ullmann := isUllmannType(rt)

	refIdx := -1
	if reference != "" {
		refIdx = findBase(s.cat.Bases, reference)
		if refIdx < 0 {
			s.log.Debug("reference base not in catalog, skipping similarity blend",
				logging.String("reference", reference))
		}
	}

	var out []Candidate
	for i, b := range s.cat.Bases {
		compat := b.CompatFor(rt)
		if compat < minCompat || i == refIdx {
			continue
		}
		if ullmann && catalog.IsUllmannFavoredBase(b.Name) {
			compat = clamp01(compat + 0.2)
		}
		c := Candidate{
			Name:          b.Name,
			Role:          rtypes.RoleBase,
			Compatibility: compat,
			Score:         compat,
			Applications:  b.Applications,
			BaseType:      b.Type,
		}
		if refIdx >= 0 {
			c.Similarity = weightedSimilarity(features[refIdx], features[i], weights)
			c.HasSimilarity = true
			c.Score = s.blend(compat, c.Similarity)
		}
		out = append(out, c)
	}
	if len(out) == 0 && ullmann {
		return ullmannFallback()
	}
	sortByScore(out)
	return out
}

func (s *Scorer) blend(compat, similarity float64) float64 {
	return s.compatWeight*compat + (1-s.compatWeight)*similarity
}

func ullmannFallback() []Candidate {
	out := make([]Candidate, 0, len(catalog.UllmannFallbackBases))
	for _, fb := range catalog.UllmannFallbackBases {
		out = append(out, Candidate{
			Name:          fb.Name,
			Role:          rtypes.RoleBase,
			Compatibility: fb.Score,
			Score:         fb.Score,
			Applications:  "Ullmann Cu-catalyzed",
			Curated:       true,
		})
	}
	return out
}

func isUllmannType(rt rtypes.Type) bool {
	return strings.Contains(strings.ToLower(rt.String()), "ullmann")
}

// ─────────────────────────────────────────────────────────────────────────────
// Weighted attribute similarity
// ─────────────────────────────────────────────────────────────────────────────

// weightedSimilarity sums weight·(1 − |a−b|) over min-max normalized feature
// pairs.  With all features scaled to [0,1] the per-feature difference is
// already the normalized distance.
func weightedSimilarity(a, b, weights []float64) float64 {
	sim := 0.0
	for i, w := range weights {
		sim += w * (1 - math.Abs(a[i]-b[i]))
	}
	return sim
}

// normalizeColumns min-max scales each column of the feature matrix to [0,1].
// Constant columns scale to 0.
func normalizeColumns(rows [][]float64) [][]float64 {
	if len(rows) == 0 {
		return rows
	}
	cols := len(rows[0])
	mins := make([]float64, cols)
	maxs := make([]float64, cols)
	for j := 0; j < cols; j++ {
		mins[j] = rows[0][j]
		maxs[j] = rows[0][j]
	}
	for _, row := range rows[1:] {
		for j, v := range row {
			if v < mins[j] {
				mins[j] = v
			}
			if v > maxs[j] {
				maxs[j] = v
			}
		}
	}
	out := make([][]float64, len(rows))
	for i, row := range rows {
		scaled := make([]float64, cols)
		for j, v := range row {
			if span := maxs[j] - mins[j]; span > 0 {
				scaled[j] = (v - mins[j]) / span
			}
		}
		out[i] = scaled
	}
	return out
}

func ligandFeatures(ligands []catalog.Ligand) [][]float64 {
	rows := make([][]float64, len(ligands))
	for i, l := range ligands {
		rows[i] = []float64{l.ConeAngle, l.Electronic, l.BiteAngle, l.StericBulk, l.Donor, l.Price, float64(l.Denticity)}
	}
	return rows
}

func solventFeatures(solvents []catalog.Solvent) [][]float64 {
	rows := make([][]float64, len(solvents))
	for i, sv := range solvents {
		rows[i] = []float64{sv.Dielectric, sv.Polarity, sv.BoilingPoint, sv.Density, sv.DipoleMoment, sv.DonorNumber, sv.HBD}
	}
	return rows
}

func baseFeatures(bases []catalog.Base) [][]float64 {
	rows := make([][]float64, len(bases))
	for i, b := range bases {
		rows[i] = []float64{b.PKaH, b.Nucleophilicity}
	}
	return rows
}

func ligandWeightVec(w catalog.LigandWeights) []float64 {
	return []float64{w.ConeAngle, w.Electronic, w.BiteAngle, w.StericBulk, w.Donor, w.Price, w.Denticity}
}

func solventWeightVec(w catalog.SolventWeights) []float64 {
	return []float64{w.Dielectric, w.Polarity, w.BoilingPoint, w.Density, w.DipoleMoment, w.DonorNumber, w.HBD}
}

func baseWeightVec(w catalog.BaseWeights) []float64 {
	return []float64{w.PKaH, w.Nucleophilicity}
}

func findLigand(ligands []catalog.Ligand, name string) int {
	for i, l := range ligands {
		if strings.EqualFold(strings.TrimSpace(name), l.Name) {
			return i
		}
	}
	return -1
}

func findSolvent(solvents []catalog.Solvent, name string) int {
	want := strings.TrimSpace(name)
	for i, sv := range solvents {
		if strings.EqualFold(want, sv.Name) || (sv.Abbrev != "" && strings.EqualFold(want, sv.Abbrev)) {
			return i
		}
	}
	return -1
}

func findBase(bases []catalog.Base, name string) int {
	want := strings.TrimSpace(name)
	for i, b := range bases {
		if strings.EqualFold(want, b.Name) || (b.Formula != "" && strings.EqualFold(want, b.Formula)) {
			return i
		}
	}
	return -1
}

// sortByScore orders candidates by descending score.  The stable sort keeps
// catalog declaration order on ties, so ranked output is deterministic.
func sortByScore(cands []Candidate) {
	sort.SliceStable(cands, func(i, j int) bool {
		return cands[i].Score > cands[j].Score
	})
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
