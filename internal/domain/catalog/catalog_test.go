package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reactwise/condrec/pkg/errors"
	"github.com/reactwise/condrec/pkg/types/reaction"
)

func TestNewBuiltinLookups(t *testing.T) {
	t.Parallel()

	c := NewBuiltin()
	require.NotEmpty(t, c.Ligands)
	require.NotEmpty(t, c.Solvents)
	require.NotEmpty(t, c.Bases)

	lig, err := c.Ligand("pph3")
	require.NoError(t, err)
	assert.Equal(t, "PPh3", lig.Name)
	assert.InDelta(t, 145.0, lig.ConeAngle, 1e-9)

	// Solvent resolves by abbreviation too.
	sol, err := c.Solvent("AcOH")
	require.NoError(t, err)
	assert.Equal(t, "Acetic Acid", sol.Name)

	base, err := c.Base("K2CO3")
	require.NoError(t, err)
	assert.Equal(t, "Inorganic", base.Type)

	_, err = c.Ligand("unobtainium")
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrCodeReagentUnknown))
}

func TestCompatFor(t *testing.T) {
	t.Parallel()

	l := Ligand{Compat: [5]float64{0.1, 0.2, 0.3, 0.4, 0.5}}
	assert.InDelta(t, 0.1, l.CompatFor(reaction.TypeCrossCoupling), 1e-9)
	assert.InDelta(t, 0.2, l.CompatFor(reaction.TypeHydrogenation), 1e-9)
	assert.InDelta(t, 0.5, l.CompatFor(reaction.TypeCarbonylation), 1e-9)

	// Sub-variants score through their family column.
	assert.InDelta(t, 0.1, l.CompatFor(reaction.TypeSuzuki), 1e-9)
	assert.InDelta(t, 0.1, l.CompatFor(reaction.TypeUllmann), 1e-9)

	// Unknown types get the neutral score.
	assert.InDelta(t, 0.5, l.CompatFor(reaction.TypeUnknown), 1e-9)
}

func TestWeightTablesNormalized(t *testing.T) {
	t.Parallel()

	for _, fam := range reaction.ScoringFamilies {
		lw := LigandWeightsFor(fam)
		sum := lw.ConeAngle + lw.Electronic + lw.BiteAngle + lw.StericBulk + lw.Donor + lw.Price + lw.Denticity
		assert.InDelta(t, 1.0, sum, 1e-9, "ligand weights for %s", fam)

		sw := SolventWeightsFor(fam)
		sum = sw.Dielectric + sw.Polarity + sw.BoilingPoint + sw.Density + sw.DipoleMoment + sw.DonorNumber + sw.HBD
		assert.InDelta(t, 1.0, sum, 1e-9, "solvent weights for %s", fam)
	}

	// Sub-variants inherit the family profile; unknown falls back.
	assert.Equal(t, LigandWeightsFor(reaction.TypeCrossCoupling), LigandWeightsFor(reaction.TypeSuzuki))
	assert.Equal(t, LigandWeightsFor(reaction.TypeCrossCoupling), LigandWeightsFor(reaction.TypeUnknown))
	assert.Equal(t, BaseWeightsFor(reaction.TypeCrossCoupling), BaseWeightsFor(reaction.TypeUnknown))
}

func TestSynergyBonus(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		rt      reaction.Type
		ligand  string
		solvent string
		want    float64
	}{
		{"known cross-coupling pair", reaction.TypeCrossCoupling, "SPhos", "DMF", 0.10},
		{"suzuki uses family table", reaction.TypeSuzuki, "XPhos", "THF", 0.10},
		{"ullmann has its own table", reaction.TypeUllmann, "L-Proline", "DMSO", 0.08},
		{"ullmann does not inherit pd pairs", reaction.TypeUllmann, "SPhos", "DMF", 0},
		{"hydrogenation pair", reaction.TypeHydrogenation, "BINAP", "Ethanol", 0.15},
		{"unlisted pair", reaction.TypeMetathesis, "PPh3", "DMF", 0},
		{"unknown type", reaction.TypeUnknown, "SPhos", "DMF", 0},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.InDelta(t, tt.want, SynergyBonus(tt.rt, tt.ligand, tt.solvent), 1e-9)
		})
	}
}

func TestConditionsFor(t *testing.T) {
	t.Parallel()

	cc := ConditionsFor(reaction.TypeCrossCoupling)
	assert.Equal(t, "80-120°C", cc.Temperature)

	// Ullmann overrides its family.
	ull := ConditionsFor(reaction.TypeUllmann)
	assert.Equal(t, "5-20 mol% Cu", ull.CatalystLoading)

	// Other sub-variants inherit the family window.
	assert.Equal(t, cc, ConditionsFor(reaction.TypeHeck))

	// Unknown gets the generic window.
	assert.Equal(t, defaultConditions, ConditionsFor(reaction.TypeUnknown))
}

func TestIsUllmannFavoredBase(t *testing.T) {
	t.Parallel()

	assert.True(t, IsUllmannFavoredBase("K2CO3"))
	assert.True(t, IsUllmannFavoredBase("Cesium Carbonate"))
	assert.True(t, IsUllmannFavoredBase("NaOtBu"))
	assert.False(t, IsUllmannFavoredBase("Et3N"))
	assert.False(t, IsUllmannFavoredBase("Pyridine"))
}

func TestApplyOverlayDir(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	// Replace an existing ligand (array compat) and append a new one
	// (map compat).
	ligJSON := `[
	  {"name": "PPh3", "cone_angle": 150, "electronic_parameter": 2070,
	   "price_category": 1, "coordination_mode": 1,
	   "reaction_compatibility": [0.9, 0.9, 0.1, 0.5, 0.7]},
	  {"name": "TestPhos", "cone_angle": 200, "electronic_parameter": 2050,
	   "price_category": 4, "coordination_mode": 1,
	   "reaction_compatibility": {"Cross-Coupling": 0.95}}
	]`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "ligands.json"), []byte(ligJSON), 0o644))

	// Wrapped form with a comma-string compat.
	baseJSON := `{"bases": [
	  {"name": "TMG", "formula": "C5H13N3", "type": "Superbase",
	   "basicity_pkah": 13.6, "nucleophilicity_index": 4.0,
	   "price_category": 2, "reaction_compatibility": "0.6,0.4,0.3,0.5,0.6"}
	]}`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "bases.json"), []byte(baseJSON), 0o644))

	c := NewBuiltin()
	before := len(c.Ligands)
	require.NoError(t, c.ApplyOverlayDir(dir))

	assert.Len(t, c.Ligands, before+1)

	lig, err := c.Ligand("PPh3")
	require.NoError(t, err)
	assert.InDelta(t, 150.0, lig.ConeAngle, 1e-9)
	assert.InDelta(t, 0.9, lig.CompatFor(reaction.TypeCrossCoupling), 1e-9)

	added, err := c.Ligand("TestPhos")
	require.NoError(t, err)
	assert.InDelta(t, 0.95, added.CompatFor(reaction.TypeCrossCoupling), 1e-9)
	// Unspecified families default to neutral.
	assert.InDelta(t, 0.5, added.CompatFor(reaction.TypeMetathesis), 1e-9)

	tmg, err := c.Base("TMG")
	require.NoError(t, err)
	assert.InDelta(t, 13.6, tmg.PKaH, 1e-9)
	assert.InDelta(t, 0.4, tmg.CompatFor(reaction.TypeHydrogenation), 1e-9)
}

func TestApplyOverlayDirErrors(t *testing.T) {
	t.Parallel()

	c := NewBuiltin()

	// Missing directory is fine.
	require.NoError(t, c.ApplyOverlayDir(filepath.Join(t.TempDir(), "nope")))

	// Malformed JSON is not.
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "solvents.json"), []byte("{not json"), 0o644))
	err := c.ApplyOverlayDir(dir)
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrCodeOverlayInvalid))
}
