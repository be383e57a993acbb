package evidence

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/reactwise/condrec/internal/domain/reaction"
	"github.com/reactwise/condrec/internal/infrastructure/monitoring/logging"
	"github.com/reactwise/condrec/pkg/errors"
	rtypes "github.com/reactwise/condrec/pkg/types/reaction"
)

// ─────────────────────────────────────────────────────────────────────────────
// Evidence Aggregator
// ─────────────────────────────────────────────────────────────────────────────

// Aggregator turns a stream of dataset records into one EvidenceSummary per
// reaction-type tag.  Aggregation is wholesale: every generation is computed
// from scratch over the full stream, never patched incrementally.
type Aggregator struct {
	log       logging.Logger
	winsorize float64 // tail fraction clamped on each side, e.g. 0.01
}

// NewAggregator constructs an Aggregator.  winsorizePct outside [0, 0.5) is
// replaced with the 0.01 default (p01/p99 trimming).
func NewAggregator(log logging.Logger, winsorizePct float64) *Aggregator {
	if log == nil {
		log = logging.NewNopLogger()
	}
	if winsorizePct < 0 || winsorizePct >= 0.5 {
		winsorizePct = 0.01
	}
	return &Aggregator{log: log.Named("aggregator"), winsorize: winsorizePct}
}

// Aggregate consumes the record stream and produces the summary for tag.
// Records not matching the tag are counted but otherwise ignored; matched
// records with unparseable numeric cells contribute their reagent counts and
// have the bad cells tallied in the manifest.
func (a *Aggregator) Aggregate(ctx context.Context, src reaction.RecordSource, tag rtypes.Type) (*Summary, error) {
	counts := map[rtypes.Role]map[string]int{
		rtypes.RoleCatalyst: {},
		rtypes.RoleLigand:   {},
		rtypes.RoleSolvent:  {},
		rtypes.RoleBase:     {},
	}
	coLigSol := map[[2]string]int{}
	coBaseSol := map[[2]string]int{}
	coCatLig := map[[2]string]int{}

	var temps, times, yields []float64
	skipped := map[string]int{}
	hasher := sha256.New()

	input, matched := 0, 0
	err := src.Stream(ctx, func(rec reaction.Record) error {
		input++
		if !rec.MatchesTag(tag) {
			return nil
		}
		matched++
		fmt.Fprintf(hasher, "%s|%s|%s|%s\n", rec.ID, rec.RawType, rec.Reactants, rec.Products)

		metals := NormalizeField(rec.Catalysts, rtypes.RoleCatalyst)
		ligands := NormalizeField(rec.Ligands, rtypes.RoleLigand)
		solvents := NormalizeField(splitAll(rec.Solvents), rtypes.RoleSolvent)
		bases := NormalizeField(rec.Bases, rtypes.RoleBase)

		bump(counts[rtypes.RoleCatalyst], metals)
		bump(counts[rtypes.RoleLigand], ligands)
		bump(counts[rtypes.RoleSolvent], solvents)
		bump(counts[rtypes.RoleBase], bases)

		cross(coLigSol, ligands, solvents)
		cross(coBaseSol, bases, solvents)
		cross(coCatLig, metals, ligands)

		collect(&temps, rec.TemperatureRaw, "temperature_c", skipped)
		collect(&times, rec.TimeRaw, "time_h", skipped)
		collect(&yields, rec.YieldRaw, "yield_pct", skipped)
		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeAggregationFailed, "aggregate evidence").
			WithDetail("tag=" + string(tag))
	}

	a.log.Info("evidence aggregation complete",
		logging.String("tag", string(tag)),
		logging.Int("input_rows", input),
		logging.Int("matched_rows", matched))

	s := &Summary{
		Meta: Meta{
			Tag:          string(tag),
			TotalRows:    matched,
			AnalyzedRows: matched,
			GeneratedAt:  time.Now().UTC().Format(time.RFC3339),
			Fingerprint:  hex.EncodeToString(hasher.Sum(nil)),
		},
		Top: TopLists{
			Metals:    topList(counts[rtypes.RoleCatalyst], matched),
			Ligands:   topList(counts[rtypes.RoleLigand], matched),
			Bases:     topList(counts[rtypes.RoleBase], matched),
			Solvents:  topList(counts[rtypes.RoleSolvent], matched),
			Additives: []TopItem{},
		},
		Cooccurrence: Cooccurrence{
			LigandSolvent:  coList(coLigSol, matched),
			BaseSolvent:    coList(coBaseSol, matched),
			CatalystLigand: coList(coCatLig, matched),
		},
		NumericStats: map[string]NumericStat{
			"temperature_c": a.numericStat(temps),
			"time_h":        a.numericStat(times),
			"yield_pct":     a.numericStat(yields),
		},
		Notes: Manifest{
			InputRows:      input,
			MatchedRows:    matched,
			SkippedNumeric: skipped,
			Normalizations: []string{
				"canonicalize tokens",
				"synonym maps (in-module)",
				"split list-like and mixture fields",
			},
		},
	}
	return s, nil
}

// splitAll expands mixture notation inside already-split cells, so that a
// cell like "DMF/THF" yields two tokens.
func splitAll(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if parts := NormalizeMixture(v); len(parts) > 1 {
			out = append(out, parts...)
			continue
		}
		out = append(out, v)
	}
	return out
}

func bump(counter map[string]int, tokens []string) {
	for _, t := range tokens {
		counter[t]++
	}
}

func cross(counter map[[2]string]int, as, bs []string) {
	for _, a := range as {
		for _, b := range bs {
			counter[[2]string{a, b}]++
		}
	}
}

func collect(dst *[]float64, raw, field string, skipped map[string]int) {
	if strings.TrimSpace(raw) == "" {
		return
	}
	v, ok := ParseNumeric(raw)
	if !ok {
		skipped[field]++
		return
	}
	*dst = append(*dst, v)
}

// topList ranks a counter by count descending, name ascending on ties, with
// pct relative to the matched row total.
func topList(counter map[string]int, total int) []TopItem {
	items := make([]TopItem, 0, len(counter))
	if total <= 0 {
		return items
	}
	for name, count := range counter {
		items = append(items, TopItem{
			Name:  name,
			Count: count,
			Pct:   round4(float64(count) / float64(total)),
		})
	}
	sort.Slice(items, func(i, j int) bool {
		if items[i].Count != items[j].Count {
			return items[i].Count > items[j].Count
		}
		return items[i].Name < items[j].Name
	})
	return items
}

func coList(counter map[[2]string]int, total int) []CoItem {
	items := make([]CoItem, 0, len(counter))
	if total <= 0 {
		return items
	}
	for key, count := range counter {
		items = append(items, CoItem{
			A:     key[0],
			B:     key[1],
			Count: count,
			Pct:   round4(float64(count) / float64(total)),
		})
	}
	sort.Slice(items, func(i, j int) bool {
		if items[i].Count != items[j].Count {
			return items[i].Count > items[j].Count
		}
		if items[i].A != items[j].A {
			return items[i].A < items[j].A
		}
		return items[i].B < items[j].B
	})
	return items
}

func round4(v float64) float64 {
	return float64(int(v*10000+0.5)) / 10000
}

// ─────────────────────────────────────────────────────────────────────────────
// Robust Statistics
// ─────────────────────────────────────────────────────────────────────────────

func (a *Aggregator) numericStat(values []float64) NumericStat {
	n := len(values)
	if n == 0 {
		return NumericStat{N: 0}
	}
	w := winsorized(values, a.winsorize)
	return NumericStat{
		Median: ptr(percentile(w, 0.5)),
		P25:    ptr(percentile(w, 0.25)),
		P75:    ptr(percentile(w, 0.75)),
		N:      n,
	}
}

// percentile returns the value at quantile q of an ascending-sorted slice
// using nearest-rank indexing.
func percentile(sorted []float64, q float64) float64 {
	idx := int(float64(len(sorted)-1) * q)
	return sorted[idx]
}

// winsorized returns an ascending-sorted copy of values with both tails
// clamped to the pct/(1-pct) quantile values.
func winsorized(values []float64, pct float64) []float64 {
	s := append([]float64(nil), values...)
	sort.Float64s(s)
	lo := percentile(s, pct)
	hi := percentile(s, 1-pct)
	for i, v := range s {
		if v < lo {
			s[i] = lo
		} else if v > hi {
			s[i] = hi
		}
	}
	return s
}

func ptr(v float64) *float64 { return &v }
