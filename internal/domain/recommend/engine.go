package recommend

import (
	"context"
	"fmt"
	"time"

	"github.com/reactwise/condrec/internal/config"
	"github.com/reactwise/condrec/internal/domain/catalog"
	"github.com/reactwise/condrec/internal/domain/evidence"
	"github.com/reactwise/condrec/internal/domain/fingerprint"
	"github.com/reactwise/condrec/internal/domain/reaction"
	"github.com/reactwise/condrec/internal/domain/scoring"
	"github.com/reactwise/condrec/internal/infrastructure/monitoring/logging"
	"github.com/reactwise/condrec/pkg/errors"
	rtypes "github.com/reactwise/condrec/pkg/types/reaction"
)

// ─────────────────────────────────────────────────────────────────────────────
// Recommendation Engine
// ─────────────────────────────────────────────────────────────────────────────

const (
	// recommendFloor is the compatibility floor for the ranked per-role
	// lists.  It is stricter than the scorer's library default.
	recommendFloor = 0.4
	// alternativesKeep caps each alternatives shortlist.
	alternativesKeep = 3
)

// Request is one recommendation query.  ReactionType is an optional selector
// that overrides auto-detection; Reference* name reagents whose feature
// similarity is blended into the ranking.
type Request struct {
	ReactionSMILES   string
	ReactionType     string
	ReferenceLigand  string
	ReferenceSolvent string
	ReferenceBase    string
	TopN             int
}

// ResultCache memoizes finished exports.  Keys embed the evidence generation
// fingerprint, so a summary republish naturally invalidates stale entries.
// Implementations must be safe for concurrent use; Set is best-effort.
type ResultCache interface {
	Get(ctx context.Context, key string) (*Export, bool)
	Set(ctx context.Context, key string, ex *Export)
}

// Options wires an Engine.  Catalog is required; everything else degrades
// gracefully when absent (no records means no related reactions, no summary
// store means evidence is harvested on demand, no cache means no memoization).
type Options struct {
	Catalog     *catalog.Catalog
	Records     reaction.RecordSource
	Summaries   evidence.SummaryStore
	Cache       ResultCache
	Scoring     config.ScoringConfig
	Evidence    config.EvidenceConfig
	Fingerprint config.FingerprintConfig
	Concurrency int
	Logger      logging.Logger
}

// Engine answers recommendation requests.  It is immutable after construction
// and safe for concurrent use.
type Engine struct {
	cat        *catalog.Catalog
	classifier *reaction.Classifier
	scorer     *scoring.Scorer
	booster    *scoring.Booster
	aggregator *evidence.Aggregator
	sim        *SimilarityEngine
	records    reaction.RecordSource
	summaries  evidence.SummaryStore
	cache      ResultCache
	topN       int
	log        logging.Logger
}

// NewEngine builds an Engine from opts.
func NewEngine(opts Options) (*Engine, error) {
	if opts.Catalog == nil {
		return nil, errors.New(errors.ErrCodeRecommendationFailed, "recommendation engine requires a catalog")
	}
	log := opts.Logger
	if log == nil {
		log = logging.NewNopLogger()
	}
	log = log.Named("recommend")

	bits := opts.Fingerprint.NumBits
	if bits == 0 {
		bits = fingerprint.DefaultNumBits
	}
	radius := opts.Fingerprint.Radius
	if radius == 0 {
		radius = fingerprint.DefaultRadius
	}
	gen, err := fingerprint.NewGenerator(bits, radius)
	if err != nil {
		return nil, err
	}

	topN := opts.Scoring.TopN
	if topN < 1 {
		topN = config.DefaultTopN
	}
	minSupport := opts.Evidence.MinSupportPct
	if minSupport <= 0 {
		minSupport = config.DefaultMinSupportPct
	}

	return &Engine{
		cat:        opts.Catalog,
		classifier: reaction.NewClassifier(log),
		scorer:     scoring.NewScorer(opts.Catalog, opts.Scoring, log),
		booster:    scoring.NewBooster(opts.Scoring, minSupport, log),
		aggregator: evidence.NewAggregator(log, opts.Evidence.WinsorizePct),
		sim:        NewSimilarityEngine(gen, opts.Concurrency, log),
		records:    opts.Records,
		summaries:  opts.Summaries,
		cache:      opts.Cache,
		topN:       topN,
		log:        log,
	}, nil
}

// Recommend resolves the reaction type and assembles the full export payload.
// It never fails on bad chemistry input: an unparseable or unclassifiable
// encoding produces a similarity-fallback payload instead of an error.
func (e *Engine) Recommend(ctx context.Context, req Request) (*Export, error) {
	topN := req.TopN
	if topN < 1 {
		topN = e.topN
	}

	enc, encErr := reaction.ParseEncoding(req.ReactionSMILES)
	rt := rtypes.TypeUnknown
	if encErr == nil {
		rt = e.classifier.Resolve(enc, req.ReactionType)
	} else {
		e.log.Warn("reaction input unparseable, using generic fallback",
			logging.Err(encErr))
	}

	sum, persisted := e.loadSummary(ctx, rt)

	key := cacheKey(enc, rt, req, topN, sum)
	if e.cache != nil {
		if hit, ok := e.cache.Get(ctx, key); ok {
			e.log.Debug("recommendation cache hit",
				logging.String("reaction_type", rt.String()))
			return hit, nil
		}
	}

	var ex *Export
	if rt.IsKnown() {
		ex = e.enhanced(ctx, req, enc, rt, sum, persisted, topN)
	} else {
		ex = e.fallback(ctx, req, enc)
	}
	if e.cache != nil {
		e.cache.Set(ctx, key, ex)
	}
	return ex, nil
}

// loadSummary fetches the stored evidence summary for rt, harvesting one from
// the record source when the store has none.  The bool reports whether the
// summary came from the store (a persisted generation) rather than an
// on-demand harvest.
func (e *Engine) loadSummary(ctx context.Context, rt rtypes.Type) (*evidence.Summary, bool) {
	if !rt.IsKnown() {
		return nil, false
	}
	if e.summaries != nil {
		sum, err := e.summaries.Load(ctx, rt)
		if err == nil {
			return sum, true
		}
		if !errors.IsNotFound(err) {
			e.log.Warn("evidence summary load failed",
				logging.String("reaction_type", rt.String()),
				logging.Err(err))
		}
	}
	if e.records == nil {
		return nil, false
	}
	sum, err := e.aggregator.Aggregate(ctx, e.records, rt)
	if err != nil {
		e.log.Warn("on-demand evidence harvest failed",
			logging.String("reaction_type", rt.String()),
			logging.Err(err))
		return nil, false
	}
	if sum.Meta.AnalyzedRows == 0 {
		return nil, false
	}
	e.log.Info("evidence harvested on demand",
		logging.String("reaction_type", rt.String()),
		logging.Int("analyzed_rows", sum.Meta.AnalyzedRows))
	return sum, false
}

func (e *Engine) enhanced(ctx context.Context, req Request, enc reaction.Encoding, rt rtypes.Type, sum *evidence.Summary, persisted bool, topN int) *Export {
	ligands := e.booster.Apply(rtypes.RoleLigand,
		e.scorer.ScoreLigandsWithFloor(rt, req.ReferenceLigand, recommendFloor), sum)
	solvents := e.booster.Apply(rtypes.RoleSolvent,
		e.scorer.ScoreSolventsWithFloor(rt, req.ReferenceSolvent, recommendFloor), sum)
	bases := e.booster.Apply(rtypes.RoleBase,
		e.scorer.ScoreBasesWithFloor(rt, req.ReferenceBase, recommendFloor), sum)

	suggestedBase := ""
	if len(bases) > 0 {
		suggestedBase = bases[0].Name
	}
	combined := combineConditions(rt, e.cat, ligands, solvents, suggestedBase, sum)

	ex := &Export{
		Meta:      e.meta("enhanced"),
		Input:     inputEcho(req),
		Detection: Detection{ReactionType: rt.String()},
		Dataset:   e.datasetInfo(sum, persisted),
		Recommendations: Recommendations{
			Combined:     combined,
			Ligands:      e.reagentRecs(ligands, rt, topN),
			Solvents:     e.reagentRecs(solvents, rt, topN),
			Bases:        e.reagentRecs(bases, rt, topN),
			Alternatives: e.alternatives(rt),
			Notes:        catalog.NotesFor(rt),
		},
		TopConditions:    topConditionSets(req.ReactionSMILES, enc.ReactantMolecules(), rt, e.cat, combined),
		RelatedReactions: []RelatedReaction{},
		Analytics:        snippetFromSummary(sum),
	}

	if e.records != nil && enc.Reactants != "" {
		neighbors, err := e.sim.Search(ctx, filteredSource{src: e.records, tag: rt}, enc, relatedCap)
		if err != nil {
			e.log.Warn("related-reaction search failed",
				logging.String("reaction_type", rt.String()),
				logging.Err(err))
		} else {
			ex.RelatedReactions = relatedFromNeighbors(neighbors)
		}
	}
	return ex
}

func (e *Engine) fallback(ctx context.Context, req Request, enc reaction.Encoding) *Export {
	var neighbors []Neighbor
	if e.records != nil && enc.Reactants != "" {
		ns, err := e.sim.Search(ctx, e.records, enc, relatedCap)
		if err != nil {
			e.log.Warn("similarity fallback search failed", logging.Err(err))
		} else {
			neighbors = ns
		}
	}
	return &Export{
		Meta:      e.meta("similarity_fallback"),
		Input:     inputEcho(req),
		Detection: Detection{ReactionType: rtypes.TypeUnknown.String()},
		Dataset:   e.datasetInfo(nil, false),
		Recommendations: Recommendations{
			Combined: []CombinedCondition{},
			Ligands:  []ReagentRec{},
			Solvents: []ReagentRec{},
			Bases:    []ReagentRec{},
			Alternatives: Alternatives{
				BudgetFriendlyLigands: []ReagentRec{},
				LowBoilingSolvents:    []ReagentRec{},
				GreenSolvents:         []ReagentRec{},
			},
			Notes: catalog.NotesFor(rtypes.TypeUnknown),
		},
		TopConditions:      []TopCondition{},
		RelatedReactions:   relatedFromNeighbors(neighbors),
		GenericSuggestions: Suggestions(neighbors),
	}
}

func (e *Engine) alternatives(rt rtypes.Type) Alternatives {
	price := 3.0
	lowBP := 100.0
	greenBP := 150.0
	greenPol := 3.0
	return Alternatives{
		BudgetFriendlyLigands: e.reagentRecs(
			e.scorer.LigandsMatching(rt, &scoring.LigandPreferences{PriceMax: &price}),
			rt, alternativesKeep),
		LowBoilingSolvents: e.reagentRecs(
			e.scorer.SolventsMatching(rt, &scoring.SolventPreferences{BoilingPointMax: &lowBP}),
			rt, alternativesKeep),
		GreenSolvents: e.reagentRecs(
			e.scorer.SolventsMatching(rt, &scoring.SolventPreferences{PolarityMin: &greenPol, BoilingPointMax: &greenBP}),
			rt, alternativesKeep),
	}
}

// reagentRecs converts scored candidates into ranked export entries, at most
// limit of them.  The result is never nil.
func (e *Engine) reagentRecs(cands []scoring.Candidate, rt rtypes.Type, limit int) []ReagentRec {
	n := len(cands)
	if n > limit {
		n = limit
	}
	out := make([]ReagentRec, 0, n)
	for i := 0; i < n; i++ {
		c := cands[i]
		rec := ReagentRec{
			Rank:            i + 1,
			Name:            c.Name,
			Score:           round3(c.Score),
			Applications:    c.Applications,
			Suitability:     rt.String(),
			EvidenceSupport: c.Support,
			Confidence:      string(rtypes.ConfidenceForScore(c.Score)),
			Curated:         c.Curated,
		}
		if c.Role == rtypes.RoleSolvent {
			if sol, err := e.cat.Solvent(c.Name); err == nil {
				rec.Abbreviation = sol.Abbrev
			}
		}
		out = append(out, rec)
	}
	return out
}

func (e *Engine) datasetInfo(sum *evidence.Summary, persisted bool) DatasetInfo {
	info := DatasetInfo{
		LigandsAvailable:       len(e.cat.Ligands),
		SolventsAvailable:      len(e.cat.Solvents),
		BasesAvailable:         len(e.cat.Bases),
		ReactionTypesSupported: supportedTypes(),
		AnalyticsLoaded:        persisted,
	}
	if sum != nil {
		info.AnalyticsGeneration = sum.Meta.Fingerprint
	}
	return info
}

func (e *Engine) meta(analysisType string) Meta {
	return Meta{
		GeneratedAt:  time.Now().UTC().Format(time.RFC3339),
		AnalysisType: analysisType,
		Status:       "success",
	}
}

func inputEcho(req Request) Input {
	selected := req.ReactionType
	if selected == "" {
		selected = "Auto-detect"
	}
	return Input{ReactionSMILES: req.ReactionSMILES, SelectedReactionType: selected}
}

func supportedTypes() []string {
	out := make([]string, 0, len(rtypes.KnownTypes))
	for _, t := range rtypes.KnownTypes {
		out = append(out, t.String())
	}
	return out
}

// cacheKey binds a memoized export to everything that shaped it, including
// the evidence generation fingerprint.
func cacheKey(enc reaction.Encoding, rt rtypes.Type, req Request, topN int, sum *evidence.Summary) string {
	gen := "none"
	if sum != nil {
		gen = sum.Meta.Fingerprint
	}
	return fmt.Sprintf("rec|%s|%s|%s|%s|%s|%d|%s",
		enc.Normalized(), rt, req.ReferenceLigand, req.ReferenceSolvent, req.ReferenceBase, topN, gen)
}

// snippetFromSummary condenses the evidence summary into the payload's
// analytics block: top-3 priors per role plus the strongest co-occurrence
// pairs.
func snippetFromSummary(sum *evidence.Summary) *AnalyticsSnippet {
	if sum == nil {
		return nil
	}
	snip := &AnalyticsSnippet{
		Source: sum.Meta.Tag,
		Top: AnalyticsTop{
			Ligands:  analyticsItems(sum.Top.Ligands, 3),
			Solvents: analyticsItems(sum.Top.Solvents, 3),
			Bases:    analyticsItems(sum.Top.Bases, 3),
		},
	}
	if len(sum.Cooccurrence.LigandSolvent) > 0 {
		snip.Cooccurrence.BestLigandSolvent = analyticsPair(sum.Cooccurrence.LigandSolvent[0])
	}
	if len(sum.Cooccurrence.BaseSolvent) > 0 {
		snip.Cooccurrence.BestBaseSolvent = analyticsPair(sum.Cooccurrence.BaseSolvent[0])
	}
	return snip
}

func analyticsItems(top []evidence.TopItem, n int) []AnalyticsItem {
	if len(top) < n {
		n = len(top)
	}
	out := make([]AnalyticsItem, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, AnalyticsItem{
			Name:  top[i].Name,
			Pct:   round3(top[i].Pct),
			Count: top[i].Count,
		})
	}
	return out
}

func analyticsPair(c evidence.CoItem) *AnalyticsPair {
	return &AnalyticsPair{A: c.A, B: c.B, Pct: round3(c.Pct), Count: c.Count}
}
