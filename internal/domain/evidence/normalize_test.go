package evidence

import (
	"testing"

	"github.com/stretchr/testify/assert"

	rtypes "github.com/reactwise/condrec/pkg/types/reaction"
)

func TestCanonicalize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{"  K2CO3 ", "k2co3"},
		{"Potassium Carbonate", "potassiumcarbonate"},
		{"Cs2CO3 (anhydrous)", "cs2co3anhydrous"},
		{"1,10-Phenanthroline", "110phenanthroline"},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Canonicalize(tt.in), "input %q", tt.in)
	}
}

func TestSynonymMaps(t *testing.T) {
	t.Parallel()

	// Base synonyms collapse onto the formula key.
	assert.Equal(t, "k2co3", MapBase("Potassium Carbonate"))
	assert.Equal(t, "k2co3", MapBase("potassium carbonate (k2co3)"))
	assert.Equal(t, "cs2co3", MapBase("Caesium Carbonate"))
	assert.Equal(t, "kotbu", MapBase("t-BuOK"))

	// Solvents, including the spacing artifact fix.
	assert.Equal(t, "dmso", MapSolvent("Dimethyl Sulfoxide"))
	assert.Equal(t, "dmso", MapSolvent("DMS O"))
	assert.Equal(t, "dmf", MapSolvent("N,N-Dimethylformamide"))
	assert.Equal(t, "toluene", MapSolvent("PhMe"))

	// Ligands and metals.
	assert.Equal(t, "phen", MapLigand("1,10-Phenanthroline"))
	assert.Equal(t, "l-proline", MapLigand("Proline"))
	assert.Equal(t, "cu", MapMetal("CuI"))
	assert.Equal(t, "pd", MapMetal("Palladium"))

	// Unknown tokens pass through canonicalized.
	assert.Equal(t, "sphos", MapLigand("SPhos"))
}

func TestNormalizeMixture(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{"dmf", "thf"}, NormalizeMixture("DMF/THF"))
	assert.Equal(t, []string{"toluene", "mecn"}, NormalizeMixture("toluene:MeCN"))
	assert.Equal(t, []string{"dmso", "water"}, NormalizeMixture("DMSO and water"))
	assert.Nil(t, NormalizeMixture("   "))
}

func TestNormalizeFieldDedupes(t *testing.T) {
	t.Parallel()

	got := NormalizeField([]string{"K2CO3", "potassium carbonate", "Cs2CO3"}, rtypes.RoleBase)
	assert.Equal(t, []string{"k2co3", "cs2co3"}, got)
}

func TestParseNumeric(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want float64
		ok   bool
	}{
		{"110", 110, true},
		{"110 C", 110, true},
		{"12 h", 12, true},
		{"85%", 85, true},
		{"-20 °C", -20, true},
		{"1,5 h", 1.5, true},
		{"N/A", 0, false},
		{"", 0, false},
		{"reflux", 0, false},
	}
	for _, tt := range tests {
		got, ok := ParseNumeric(tt.in)
		assert.Equal(t, tt.ok, ok, "input %q", tt.in)
		if tt.ok {
			assert.InDelta(t, tt.want, got, 1e-9, "input %q", tt.in)
		}
	}
}

func TestPriorKeys(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "sphos", PriorKeyLigand(" SPhos "))
	assert.Equal(t, "dmso", PriorKeySolvent("Dimethyl Sulfoxide"))
	assert.Equal(t, "dmso", PriorKeySolvent("DMSO"))
	assert.Equal(t, "dmf", PriorKeySolvent(" DMF "))
	assert.Equal(t, "k2co3", PriorKeyBase("Potassium carbonate (K2CO3)"))
	assert.Equal(t, "cs2co3", PriorKeyBase("Cs2CO3"))
}
