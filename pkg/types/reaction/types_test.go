package reaction_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/reactwise/condrec/pkg/types/reaction"
)

func TestScoringFamily(t *testing.T) {
	t.Parallel()

	cases := []struct {
		tag  reaction.Type
		want reaction.Type
	}{
		{reaction.TypeSuzuki, reaction.TypeCrossCoupling},
		{reaction.TypeBuchwaldHartwig, reaction.TypeCrossCoupling},
		{reaction.TypeUllmann, reaction.TypeCrossCoupling},
		{reaction.TypeHydrogenation, reaction.TypeHydrogenation},
		{reaction.TypeMetathesis, reaction.TypeMetathesis},
		{reaction.Type("garbage"), reaction.TypeUnknown},
		{reaction.TypeUnknown, reaction.TypeUnknown},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, tc.tag.ScoringFamily(), string(tc.tag))
	}
}

func TestFamilyIndex_MatchesVectorOrder(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0, reaction.TypeSuzuki.FamilyIndex())
	assert.Equal(t, 1, reaction.TypeHydrogenation.FamilyIndex())
	assert.Equal(t, 2, reaction.TypeMetathesis.FamilyIndex())
	assert.Equal(t, 3, reaction.TypeCHActivation.FamilyIndex())
	assert.Equal(t, 4, reaction.TypeCarbonylation.FamilyIndex())
	assert.Equal(t, -1, reaction.TypeUnknown.FamilyIndex())
}

func TestParseType(t *testing.T) {
	t.Parallel()

	cases := []struct {
		label string
		want  reaction.Type
	}{
		{"Suzuki", reaction.TypeSuzuki},
		{"C-C Coupling - Suzuki-Miyaura (Pd)", reaction.TypeSuzuki},
		{"C-N Coupling - Buchwald-Hartwig (Pd)", reaction.TypeBuchwaldHartwig},
		{"C-N Coupling - Ullmann (Cu)", reaction.TypeUllmann},
		{"Ring-Closing Metathesis (RCM)", reaction.TypeMetathesis},
		{"Cross-Metathesis (CM)", reaction.TypeMetathesis},
		{"Ring-Opening Metathesis (ROM)", reaction.TypeMetathesis},
		{"Hydrogenation", reaction.TypeHydrogenation},
		{"  Cross-Coupling  ", reaction.TypeCrossCoupling},
		{"", reaction.TypeUnknown},
		{"Auto-detect", reaction.TypeUnknown},
		{"SN2 - Nucleophilic Substitution (2nd order)", reaction.TypeUnknown},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, reaction.ParseType(tc.label), tc.label)
	}
}

func TestRoleValid(t *testing.T) {
	t.Parallel()

	for _, r := range reaction.Roles {
		assert.True(t, r.Valid(), string(r))
	}
	assert.False(t, reaction.Role("additive").Valid())
}

func TestConfidenceForScore(t *testing.T) {
	t.Parallel()

	assert.Equal(t, reaction.ConfidenceHigh, reaction.ConfidenceForScore(0.8))
	assert.Equal(t, reaction.ConfidenceHigh, reaction.ConfidenceForScore(0.75))
	assert.Equal(t, reaction.ConfidenceMedium, reaction.ConfidenceForScore(0.6))
	assert.Equal(t, reaction.ConfidenceLow, reaction.ConfidenceForScore(0.49))
}
