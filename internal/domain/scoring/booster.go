package scoring

import (
	"math"

	"github.com/reactwise/condrec/internal/config"
	"github.com/reactwise/condrec/internal/domain/evidence"
	"github.com/reactwise/condrec/internal/infrastructure/monitoring/logging"
	rtypes "github.com/reactwise/condrec/pkg/types/reaction"
)

// ─────────────────────────────────────────────────────────────────────────────
// Evidence Booster
// ─────────────────────────────────────────────────────────────────────────────

// Booster adjusts candidate scores with dataset evidence priors.  A candidate
// whose canonical name holds at least MinSupportPct of the observed rows gets
// boosted = min(1, score·(1 + w·sqrt(pct))); one below the threshold is
// soft-penalized by a per-role factor unless the penalty is disabled.
// Candidates absent from the summary keep their score through the penalty
// path, so ranking degrades gracefully on thin evidence.
type Booster struct {
	freqWeight    map[rtypes.Role]float64
	penaltyFactor map[rtypes.Role]float64
	softPenalty   bool
	minSupportPct float64
	log           logging.Logger
}

// NewBooster builds a Booster from the scoring and evidence config sections.
// Zero-valued fields fall back to the engine defaults.
func NewBooster(cfg config.ScoringConfig, minSupportPct float64, log logging.Logger) *Booster {
	if log == nil {
		log = logging.NewNopLogger()
	}
	if minSupportPct <= 0 {
		minSupportPct = config.DefaultMinSupportPct
	}
	return &Booster{
		freqWeight: map[rtypes.Role]float64{
			rtypes.RoleLigand:  orDefault(cfg.FreqWeightLigands, config.DefaultFreqWeightLigands),
			rtypes.RoleSolvent: orDefault(cfg.FreqWeightSolvents, config.DefaultFreqWeightSolvents),
			rtypes.RoleBase:    orDefault(cfg.FreqWeightBases, config.DefaultFreqWeightBases),
		},
		penaltyFactor: map[rtypes.Role]float64{
			rtypes.RoleLigand:  orDefault(cfg.PenaltyFactorLigands, config.DefaultPenaltyFactorLigands),
			rtypes.RoleSolvent: orDefault(cfg.PenaltyFactorSolvents, config.DefaultPenaltyFactorSolvents),
			rtypes.RoleBase:    orDefault(cfg.PenaltyFactorBases, config.DefaultPenaltyFactorBases),
		},
		softPenalty:   !cfg.DisableSoftPenalty,
		minSupportPct: minSupportPct,
		log:           log.Named("booster"),
	}
}

// Apply re-scores and re-ranks cands against the evidence summary.  A nil
// summary, an empty prior table, or a role without a frequency weight
// (catalysts) leaves the slice untouched.  Scores of zero are never boosted
// or penalized.
func (b *Booster) Apply(role rtypes.Role, cands []Candidate, sum *evidence.Summary) []Candidate {
	if sum == nil {
		return cands
	}
	w, ok := b.freqWeight[role]
	if !ok {
		return cands
	}
	priors := sum.Priors(role)
	if len(priors) == 0 {
		return cands
	}
	key := priorKey(role)
	penalty := b.penaltyFactor[role]

	boosted, penalized := 0, 0
	for i := range cands {
		if cands[i].Score <= 0 {
			continue
		}
		pct := priors[key(cands[i].Name)]
		if pct >= b.minSupportPct {
			cands[i].Score = math.Min(1, cands[i].Score*(1+w*math.Sqrt(pct)))
			cands[i].Support = sum.SupportCount(role, cands[i].Name)
			boosted++
		} else if b.softPenalty {
			cands[i].Score = math.Max(0, cands[i].Score*penalty)
			penalized++
		}
	}
	sortByScore(cands)
	b.log.Debug("applied evidence priors",
		logging.String("role", role.String()),
		logging.String("tag", sum.Meta.Tag),
		logging.Int("boosted", boosted),
		logging.Int("penalized", penalized))
	return cands
}

func priorKey(role rtypes.Role) func(string) string {
	switch role {
	case rtypes.RoleSolvent:
		return evidence.PriorKeySolvent
	case rtypes.RoleBase:
		return evidence.PriorKeyBase
	default:
		return evidence.PriorKeyLigand
	}
}

func orDefault(v, def float64) float64 {
	if v <= 0 {
		return def
	}
	return v
}
