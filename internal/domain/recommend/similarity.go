package recommend

import (
	"context"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/reactwise/condrec/internal/domain/fingerprint"
	"github.com/reactwise/condrec/internal/domain/reaction"
	"github.com/reactwise/condrec/internal/infrastructure/monitoring/logging"
	"github.com/reactwise/condrec/pkg/errors"
	rtypes "github.com/reactwise/condrec/pkg/types/reaction"
)

// ─────────────────────────────────────────────────────────────────────────────
// Cross-Dataset Similarity Engine
// ─────────────────────────────────────────────────────────────────────────────

// relatedCap bounds the neighbor list in the export payload.
const relatedCap = 10

// Neighbor is one dataset record scored against the input reaction.
type Neighbor struct {
	Record     reaction.Record
	Similarity float64
}

// SimilarityEngine finds the dataset reactions closest to an input encoding.
// It prefers the primary (circular) fingerprint generator and falls back to
// the token-hash generator when the primary cannot fingerprint the input, so
// garbage input degrades ranking quality but never the output shape.
type SimilarityEngine struct {
	primary     fingerprint.Generator
	fallback    fingerprint.Generator
	concurrency int
	log         logging.Logger
}

// NewSimilarityEngine builds a SimilarityEngine around a primary generator.
func NewSimilarityEngine(primary fingerprint.Generator, concurrency int, log logging.Logger) *SimilarityEngine {
	if log == nil {
		log = logging.NewNopLogger()
	}
	if concurrency < 1 {
		concurrency = 4
	}
	return &SimilarityEngine{
		primary:     primary,
		fallback:    fingerprint.NewTokenHash(fingerprint.DefaultNumBits),
		concurrency: concurrency,
		log:         log.Named("similarity"),
	}
}

// Search scores every record in src against enc and returns the limit most
// similar, descending.  Ties keep dataset declaration order.  Records that
// cannot be fingerprinted are skipped.
func (e *SimilarityEngine) Search(ctx context.Context, src reaction.RecordSource, enc reaction.Encoding, limit int) ([]Neighbor, error) {
	if src == nil {
		return nil, nil
	}
	if limit < 1 {
		limit = relatedCap
	}

	// A product-less encoding is matched on the reactant side alone.
	gen := e.primary
	reacFP, err1 := gen.Generate(enc.Reactants)
	var prodFP *fingerprint.Fingerprint
	var err2 error
	if enc.Products != "" {
		prodFP, err2 = gen.Generate(enc.Products)
	}
	if err1 != nil || err2 != nil {
		gen = e.fallback
		e.log.Warn("primary fingerprint failed, degrading to token hash",
			logging.String("generator", e.primary.Name()))
		if reacFP, err1 = gen.Generate(enc.Reactants); err1 != nil {
			return nil, errors.Wrap(err1, errors.ErrCodeSimilarityFailed, "fingerprint input reactants")
		}
		prodFP = nil
		if enc.Products != "" {
			if prodFP, err2 = gen.Generate(enc.Products); err2 != nil {
				return nil, errors.Wrap(err2, errors.ErrCodeSimilarityFailed, "fingerprint input products")
			}
		}
	}

	var records []reaction.Record
	err := src.Stream(ctx, func(rec reaction.Record) error {
		if rec.Reactants == "" || rec.Products == "" {
			return nil
		}
		records = append(records, rec)
		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeSimilarityFailed, "stream dataset records")
	}
	if len(records) == 0 {
		return nil, nil
	}

	sims := make([]float64, len(records))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.concurrency)
	for i := range records {
		i := i
		g.Go(func() error {
			if gctx.Err() != nil {
				return gctx.Err()
			}
			sims[i] = -1
			rFP, err := gen.Generate(records[i].Reactants)
			if err != nil {
				return nil
			}
			pFP, err := gen.Generate(records[i].Products)
			if err != nil {
				return nil
			}
			rSim, err := fingerprint.Tanimoto(reacFP, rFP)
			if err != nil {
				return nil
			}
			if prodFP == nil {
				sims[i] = rSim
				return nil
			}
			pSim, err := fingerprint.Tanimoto(prodFP, pFP)
			if err != nil {
				return nil
			}
			sims[i] = (rSim + pSim) / 2
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeSimilarityFailed, "score dataset records")
	}

	neighbors := make([]Neighbor, 0, len(records))
	for i, rec := range records {
		if sims[i] < 0 {
			continue
		}
		neighbors = append(neighbors, Neighbor{Record: rec, Similarity: sims[i]})
	}
	sort.SliceStable(neighbors, func(i, j int) bool {
		return neighbors[i].Similarity > neighbors[j].Similarity
	})
	if len(neighbors) > limit {
		neighbors = neighbors[:limit]
	}
	return neighbors, nil
}

// Suggestions aggregates the reagents observed in the neighbor set into
// ranked per-role suggestions.  Each reagent scores the similarity of its
// best neighbor, normalized by the best similarity in the set, so the top
// suggestion is always 1.0.
func Suggestions(neighbors []Neighbor) *GenericSuggestions {
	out := &GenericSuggestions{
		Catalysts: []Suggestion{},
		Ligands:   []Suggestion{},
		Solvents:  []Suggestion{},
		Bases:     []Suggestion{},
	}
	if len(neighbors) == 0 {
		return out
	}
	maxSim := neighbors[0].Similarity
	for _, n := range neighbors {
		if n.Similarity > maxSim {
			maxSim = n.Similarity
		}
	}
	if maxSim <= 0 {
		return out
	}

	out.Catalysts = roleSuggestions(neighbors, maxSim, func(r reaction.Record) []string { return r.Catalysts })
	out.Ligands = roleSuggestions(neighbors, maxSim, func(r reaction.Record) []string { return r.Ligands })
	out.Solvents = roleSuggestions(neighbors, maxSim, func(r reaction.Record) []string { return r.Solvents })
	out.Bases = roleSuggestions(neighbors, maxSim, func(r reaction.Record) []string { return r.Bases })
	return out
}

func roleSuggestions(neighbors []Neighbor, maxSim float64, pick func(reaction.Record) []string) []Suggestion {
	best := map[string]float64{}
	for _, n := range neighbors {
		for _, name := range pick(n.Record) {
			name = strings.TrimSpace(name)
			if name == "" {
				continue
			}
			if n.Similarity > best[name] {
				best[name] = n.Similarity
			}
		}
	}
	out := make([]Suggestion, 0, len(best))
	for name, sim := range best {
		out = append(out, Suggestion{Name: name, Score: round3(sim / maxSim)})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Score != out[j].Score {
			return out[i].Score > out[j].Score
		}
		return out[i].Name < out[j].Name
	})
	return out
}

// relatedFromNeighbors renders neighbors into export entries.
func relatedFromNeighbors(neighbors []Neighbor) []RelatedReaction {
	out := make([]RelatedReaction, 0, len(neighbors))
	for _, n := range neighbors {
		rec := n.Record
		out = append(out, RelatedReaction{
			ReactionSMILES: rec.Reactants + reaction.Delimiter + rec.Products,
			Similarity:     round3(n.Similarity),
			Yield:          rec.YieldRaw,
			Catalyst:       strings.Join(rec.Catalysts, ", "),
			Ligand:         strings.Join(rec.Ligands, ", "),
			Solvent:        strings.Join(rec.Solvents, ", "),
			Temperature:    rec.TemperatureRaw,
			Time:           rec.TimeRaw,
			Reference:      rec.Reference,
			ReactionID:     rec.ID,
		})
	}
	return out
}

// filteredSource narrows a RecordSource to records matching a tag.  A zero
// tag passes everything through.
type filteredSource struct {
	src reaction.RecordSource
	tag rtypes.Type
}

func (f filteredSource) Stream(ctx context.Context, fn func(reaction.Record) error) error {
	return f.src.Stream(ctx, func(rec reaction.Record) error {
		if f.tag != "" && !rec.MatchesTag(f.tag) {
			return nil
		}
		return fn(rec)
	})
}
