package recommend

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reactwise/condrec/internal/domain/catalog"
	"github.com/reactwise/condrec/internal/domain/evidence"
	"github.com/reactwise/condrec/internal/domain/scoring"
	rtypes "github.com/reactwise/condrec/pkg/types/reaction"
)

func fixtureCatalog() *catalog.Catalog {
	ligands := []catalog.Ligand{
		{Name: "XPhos", Compat: [5]float64{0.9, 0.5, 0.2, 0.5, 0.6}},
		{Name: "SPhos", Compat: [5]float64{0.8, 0.5, 0.2, 0.5, 0.6}},
		{Name: "PPh3", Compat: [5]float64{0.7, 0.5, 0.2, 0.5, 0.6}},
	}
	solvents := []catalog.Solvent{
		{Name: "Tetrahydrofuran", Abbrev: "THF", CAS: "109-99-9", Compat: [5]float64{0.9, 0.6, 0.2, 0.7, 0.8}},
		{Name: "DMF", CAS: "68-12-2", Compat: [5]float64{0.8, 0.6, 0.3, 0.7, 0.7}},
		{Name: "Toluene", CAS: "108-88-3", Compat: [5]float64{0.7, 0.5, 0.2, 0.8, 0.7}},
	}
	bases := []catalog.Base{
		{Name: "K2CO3", Formula: "K2CO3", Type: "Inorganic", PKaH: 10.3, Compat: [5]float64{0.7, 0.4, 0.3, 0.8, 0.8}},
	}
	return catalog.New(ligands, solvents, bases)
}

func cand(name string, role rtypes.Role, score float64) scoring.Candidate {
	return scoring.Candidate{Name: name, Role: role, Score: score}
}

func TestCombineConditionsRanksAndCapsPairs(t *testing.T) {
	t.Parallel()

	cat := fixtureCatalog()
	ligands := []scoring.Candidate{
		cand("XPhos", rtypes.RoleLigand, 0.9),
		cand("SPhos", rtypes.RoleLigand, 0.8),
		cand("PPh3", rtypes.RoleLigand, 0.7),
		cand("NeverUsed", rtypes.RoleLigand, 0.6),
	}
	solvents := []scoring.Candidate{
		cand("THF", rtypes.RoleSolvent, 0.9),
		cand("DMF", rtypes.RoleSolvent, 0.8),
		cand("Toluene", rtypes.RoleSolvent, 0.7),
	}

	got := combineConditions(rtypes.TypeSuzuki, cat, ligands, solvents, "K2CO3", nil)

	require.Len(t, got, 5, "3x3 grid trimmed to the top five")

	// XPhos/THF carries the family synergy bonus: (0.9+0.9)/2 + 0.10 = 1.0.
	assert.Equal(t, 1, got[0].Rank)
	assert.Equal(t, "XPhos", got[0].Ligand)
	assert.Equal(t, "THF", got[0].Solvent)
	assert.InDelta(t, 1.0, got[0].CombinedScore, 1e-9)
	assert.InDelta(t, 0.10, got[0].SynergyBonus, 1e-9)
	assert.Equal(t, "High", got[0].Confidence)

	// SPhos/DMF: (0.8+0.8)/2 + 0.10 = 0.9.
	assert.Equal(t, "SPhos", got[1].Ligand)
	assert.Equal(t, "DMF", got[1].Solvent)
	assert.InDelta(t, 0.9, got[1].CombinedScore, 1e-9)

	// The 0.85 three-way tie keeps cross-join order.
	assert.Equal(t, [2]string{got[2].Ligand, got[2].Solvent}, [2]string{"XPhos", "DMF"})
	assert.Equal(t, [2]string{got[3].Ligand, got[3].Solvent}, [2]string{"SPhos", "THF"})
	assert.Equal(t, [2]string{got[4].Ligand, got[4].Solvent}, [2]string{"PPh3", "THF"})

	for i, cc := range got {
		assert.Equal(t, i+1, cc.Rank)
		assert.Equal(t, "K2CO3", cc.SuggestedBase)
		assert.LessOrEqual(t, cc.CombinedScore, 1.0)
		assert.GreaterOrEqual(t, cc.CombinedScore, 0.0)
	}
}

func TestCombineConditionsClampsAtOne(t *testing.T) {
	t.Parallel()

	got := combineConditions(rtypes.TypeSuzuki, fixtureCatalog(),
		[]scoring.Candidate{cand("XPhos", rtypes.RoleLigand, 0.97)},
		[]scoring.Candidate{cand("THF", rtypes.RoleSolvent, 0.97)},
		"", nil)

	require.Len(t, got, 1)
	// (0.97+0.97)/2 + 0.10 would exceed the unit interval.
	assert.InDelta(t, 1.0, got[0].CombinedScore, 1e-9)
	assert.InDelta(t, 0.10, got[0].SynergyBonus, 1e-9)
}

func TestCombineConditionsResolvesSolventAbbreviation(t *testing.T) {
	t.Parallel()

	got := combineConditions(rtypes.TypeSuzuki, fixtureCatalog(),
		[]scoring.Candidate{cand("XPhos", rtypes.RoleLigand, 0.9)},
		[]scoring.Candidate{cand("Tetrahydrofuran", rtypes.RoleSolvent, 0.9)},
		"", nil)

	require.Len(t, got, 1)
	assert.Equal(t, "THF", got[0].SolventAbbreviation)
}

func TestCombinedConfidenceBuckets(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "High", combinedConfidence(0.81))
	assert.Equal(t, "Medium", combinedConfidence(0.8))
	assert.Equal(t, "Medium", combinedConfidence(0.61))
	assert.Equal(t, "Low", combinedConfidence(0.6))
	assert.Equal(t, "Low", combinedConfidence(0.1))
}

func TestConditionsForTagPrefersDatasetStatistics(t *testing.T) {
	t.Parallel()

	f := func(v float64) *float64 { return &v }
	sum := &evidence.Summary{
		NumericStats: map[string]evidence.NumericStat{
			"temperature_c": {P25: f(80), P75: f(120), N: 42},
		},
	}

	cond := conditionsForTag(rtypes.TypeSuzuki, sum)
	assert.Equal(t, "80-120°C (dataset, n=42)", cond.Temperature)
	// No time quartiles in the summary: the curated window stays.
	assert.Equal(t, catalog.ConditionsFor(rtypes.TypeSuzuki).Time, cond.Time)
}

func TestConditionsForTagWithoutSummary(t *testing.T) {
	t.Parallel()

	cond := conditionsForTag(rtypes.TypeSuzuki, nil)
	assert.Equal(t, catalog.ConditionsFor(rtypes.TypeSuzuki), cond)
}

func TestTopConditionSetsAssemblesChemicals(t *testing.T) {
	t.Parallel()

	cat := fixtureCatalog()
	combined := combineConditions(rtypes.TypeSuzuki, cat,
		[]scoring.Candidate{cand("XPhos", rtypes.RoleLigand, 0.9)},
		[]scoring.Candidate{cand("Toluene", rtypes.RoleSolvent, 0.8)},
		"K2CO3", nil)
	require.Len(t, combined, 1)

	const rxn = "Brc1ccccc1.OB(O)c1ccccc1>>c1ccc(-c2ccccc2)cc1"
	got := topConditionSets(rxn, []string{"Brc1ccccc1", "OB(O)c1ccccc1"}, rtypes.TypeSuzuki, cat, combined)

	require.Len(t, got, 1)
	tc := got[0]
	assert.Equal(t, rxn, tc.Reaction.SMILES)

	roles := make([]string, 0, len(tc.Chemicals))
	for _, ch := range tc.Chemicals {
		roles = append(roles, ch.Role)
	}
	assert.Equal(t, []string{
		"starting_material", "starting_material",
		"metal_precursor", "ligand", "base", "solvent",
	}, roles)

	assert.Equal(t, "Pd(OAc)2", tc.Chemicals[2].Name)
	assert.Equal(t, "3375-31-3", tc.Chemicals[2].CAS)
	assert.Equal(t, "XPhos", tc.Chemicals[3].Name)
	assert.Equal(t, "K2CO3", tc.Chemicals[4].Name)
	require.NotNil(t, tc.Chemicals[4].Equivalents)
	assert.InDelta(t, 2.0, *tc.Chemicals[4].Equivalents, 1e-9)
	assert.Equal(t, "Toluene", tc.Chemicals[5].Name)
	assert.Equal(t, "108-88-3", tc.Chemicals[5].CAS)

	assert.NotEmpty(t, tc.Conditions.Temperature)
	assert.NotEmpty(t, tc.Conditions.Atmosphere)
}

func TestTopConditionSetsUllmannUsesCopper(t *testing.T) {
	t.Parallel()

	cat := fixtureCatalog()
	combined := combineConditions(rtypes.TypeUllmann, cat,
		[]scoring.Candidate{cand("L-Proline", rtypes.RoleLigand, 0.8)},
		[]scoring.Candidate{cand("DMSO", rtypes.RoleSolvent, 0.8)},
		"Cs2CO3", nil)
	require.Len(t, combined, 1)
	// The Ullmann synergy table applies: (0.8+0.8)/2 + 0.08.
	assert.InDelta(t, 0.88, combined[0].CombinedScore, 1e-9)

	got := topConditionSets("Brc1ccccc1.Oc1ccccc1>>c1ccc(Oc2ccccc2)cc1",
		[]string{"Brc1ccccc1", "Oc1ccccc1"}, rtypes.TypeUllmann, cat, combined)
	require.Len(t, got, 1)
	assert.Equal(t, "CuI", got[0].Chemicals[2].Name)
	assert.Equal(t, "7681-65-4", got[0].Chemicals[2].CAS)
}

func TestTopConditionSetsFallsBackToTypicalBase(t *testing.T) {
	t.Parallel()

	cat := fixtureCatalog()
	combined := combineConditions(rtypes.TypeCarbonylation, cat,
		[]scoring.Candidate{cand("PPh3", rtypes.RoleLigand, 0.7)},
		[]scoring.Candidate{cand("DMF", rtypes.RoleSolvent, 0.7)},
		"", nil)
	require.Len(t, combined, 1)

	got := topConditionSets("CCBr>>CCC(=O)O", []string{"CCBr"}, rtypes.TypeCarbonylation, cat, combined)
	require.Len(t, got, 1)

	var base *Chemical
	for i := range got[0].Chemicals {
		if got[0].Chemicals[i].Role == "base" {
			base = &got[0].Chemicals[i]
		}
	}
	require.NotNil(t, base, "typical-conditions base fills in when no base was suggested")
	assert.Equal(t, catalog.ConditionsFor(rtypes.TypeCarbonylation).Base, base.Name)
}
