package evidence

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reactwise/condrec/internal/domain/reaction"
	"github.com/reactwise/condrec/internal/testutil"
	rtypes "github.com/reactwise/condrec/pkg/types/reaction"
)

func ullmannFixture() reaction.SliceSource {
	return reaction.SliceSource{
		{
			ID: "rx-1", RawType: "Ullmann",
			Catalysts: []string{"CuI"}, Ligands: []string{"1,10-Phenanthroline"},
			Solvents: []string{"DMSO"}, Bases: []string{"K2CO3"},
			TemperatureRaw: "120", TimeRaw: "12", YieldRaw: "85",
		},
		{
			ID: "rx-2", RawType: "Ullmann Ether Synthesis",
			Catalysts: []string{"copper"}, Ligands: []string{"phenanthroline"},
			Solvents: []string{"DMSO"}, Bases: []string{"Potassium Carbonate"},
			TemperatureRaw: "100 C", TimeRaw: "24 h", YieldRaw: "N/A",
		},
		{
			ID: "rx-3", RawType: "Ullmann",
			Catalysts: []string{"CuI"}, Ligands: []string{"L-Proline"},
			Solvents: []string{"DMF/THF"}, Bases: []string{"Cs2CO3"},
			TemperatureRaw: "140", TimeRaw: "6", YieldRaw: "62",
		},
		{
			// Different partition, must not leak into Ullmann counts.
			ID: "rx-4", RawType: "Hydrogenation",
			Ligands: []string{"BINAP"}, Solvents: []string{"Ethanol"},
			TemperatureRaw: "25", TimeRaw: "2", YieldRaw: "95",
		},
	}
}

func TestAggregate(t *testing.T) {
	t.Parallel()

	agg := NewAggregator(nil, 0.05)
	s, err := agg.Aggregate(context.Background(), ullmannFixture(), rtypes.TypeUllmann)
	require.NoError(t, err)

	assert.Equal(t, "Ullmann", s.Meta.Tag)
	assert.Equal(t, 3, s.Meta.AnalyzedRows)
	assert.NotEmpty(t, s.Meta.Fingerprint)
	assert.Equal(t, 4, s.Notes.InputRows)
	assert.Equal(t, 3, s.Notes.MatchedRows)

	// Synonyms collapse: CuI and copper are both "cu".
	require.NotEmpty(t, s.Top.Metals)
	assert.Equal(t, TopItem{Name: "cu", Count: 3, Pct: 1.0}, s.Top.Metals[0])

	// phen appears twice via two spellings; l-proline once.
	require.Len(t, s.Top.Ligands, 2)
	assert.Equal(t, "phen", s.Top.Ligands[0].Name)
	assert.Equal(t, 2, s.Top.Ligands[0].Count)
	assert.InDelta(t, 0.6667, s.Top.Ligands[0].Pct, 1e-4)

	// Mixture split: DMF/THF lands as two solvent tokens.
	solventNames := map[string]int{}
	for _, item := range s.Top.Solvents {
		solventNames[item.Name] = item.Count
	}
	assert.Equal(t, 2, solventNames["dmso"])
	assert.Equal(t, 1, solventNames["dmf"])
	assert.Equal(t, 1, solventNames["thf"])

	// Bases: k2co3 twice (synonym), cs2co3 once.
	require.NotEmpty(t, s.Top.Bases)
	assert.Equal(t, "k2co3", s.Top.Bases[0].Name)
	assert.Equal(t, 2, s.Top.Bases[0].Count)

	// Co-occurrence tracks the canonical pairs.
	require.NotEmpty(t, s.Cooccurrence.LigandSolvent)
	assert.Equal(t, "phen", s.Cooccurrence.LigandSolvent[0].A)
	assert.Equal(t, "dmso", s.Cooccurrence.LigandSolvent[0].B)
	assert.Equal(t, 2, s.Cooccurrence.LigandSolvent[0].Count)

	// The unparsable yield is counted, not zeroed.
	assert.Equal(t, 1, s.Notes.SkippedNumeric["yield_pct"])
	yield := s.NumericStats["yield_pct"]
	assert.Equal(t, 2, yield.N)
	require.NotNil(t, yield.Median)

	temp := s.NumericStats["temperature_c"]
	assert.Equal(t, 3, temp.N)
	require.NotNil(t, temp.Median)
	assert.InDelta(t, 120, *temp.Median, 1e-9)
	require.NotNil(t, temp.P25)
	assert.InDelta(t, 100, *temp.P25, 1e-9)

	// Empty-evidence roles are explicit empty lists.
	assert.NotNil(t, s.Top.Additives)
	assert.Empty(t, s.Top.Additives)
}

func TestAggregateReproducibleFingerprint(t *testing.T) {
	t.Parallel()

	agg := NewAggregator(nil, 0.05)
	s1, err := agg.Aggregate(context.Background(), ullmannFixture(), rtypes.TypeUllmann)
	require.NoError(t, err)
	s2, err := agg.Aggregate(context.Background(), ullmannFixture(), rtypes.TypeUllmann)
	require.NoError(t, err)

	assert.Equal(t, s1.Meta.Fingerprint, s2.Meta.Fingerprint)
	assert.Equal(t, s1.Top, s2.Top)
	assert.Equal(t, s1.Notes, s2.Notes)
}

func TestAggregateEmptyPartition(t *testing.T) {
	t.Parallel()

	agg := NewAggregator(nil, 0.05)
	s, err := agg.Aggregate(context.Background(), ullmannFixture(), rtypes.TypeMetathesis)
	require.NoError(t, err)

	assert.Equal(t, 0, s.Meta.AnalyzedRows)
	assert.Empty(t, s.Top.Ligands)
	assert.Equal(t, 0, s.NumericStats["yield_pct"].N)
	assert.Nil(t, s.NumericStats["yield_pct"].Median)
}

func TestSummaryPriorsAndSupport(t *testing.T) {
	t.Parallel()

	agg := NewAggregator(nil, 0.05)
	s, err := agg.Aggregate(context.Background(), ullmannFixture(), rtypes.TypeUllmann)
	require.NoError(t, err)

	priors := s.Priors(rtypes.RoleLigand)
	require.NotNil(t, priors)
	assert.InDelta(t, 0.6667, priors["phen"], 1e-4)

	assert.Equal(t, 2, s.SupportCount(rtypes.RoleBase, "K2CO3"))
	assert.Equal(t, 0, s.SupportCount(rtypes.RoleBase, "DBU"))
}

func TestAggregateLogsCompletion(t *testing.T) {
	t.Parallel()

	log := testutil.NewMockLogger()
	agg := NewAggregator(log, 0.05)
	_, err := agg.Aggregate(context.Background(), ullmannFixture(), rtypes.TypeUllmann)
	require.NoError(t, err)

	assert.True(t, log.HasMessage("info", "evidence aggregation complete"))
}
