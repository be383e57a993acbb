package catalog

import (
	"strings"

	"github.com/reactwise/condrec/pkg/types/reaction"
)

// ─────────────────────────────────────────────────────────────────────────────
// Attribute Weight Tables
// ─────────────────────────────────────────────────────────────────────────────

// LigandWeights assigns a relative importance to each ligand descriptor when
// computing weighted similarity for a reaction family.  Weights sum to 1.
type LigandWeights struct {
	ConeAngle  float64
	Electronic float64
	BiteAngle  float64
	StericBulk float64
	Donor      float64
	Price      float64
	Denticity  float64
}

// SolventWeights assigns a relative importance to each solvent descriptor.
type SolventWeights struct {
	Dielectric   float64
	Polarity     float64
	BoilingPoint float64
	Density      float64
	DipoleMoment float64
	DonorNumber  float64
	HBD          float64
}

// BaseWeights covers the two descriptors base scoring uses.
type BaseWeights struct {
	PKaH            float64
	Nucleophilicity float64
}

var ligandWeights = map[reaction.Type]LigandWeights{
	reaction.TypeCrossCoupling: {ConeAngle: 0.25, Electronic: 0.20, BiteAngle: 0.15, StericBulk: 0.15, Donor: 0.10, Price: 0.05, Denticity: 0.10},
	reaction.TypeHydrogenation: {ConeAngle: 0.15, Electronic: 0.30, BiteAngle: 0.15, StericBulk: 0.10, Donor: 0.15, Price: 0.05, Denticity: 0.10},
	reaction.TypeMetathesis:    {ConeAngle: 0.20, Electronic: 0.25, BiteAngle: 0.10, StericBulk: 0.15, Donor: 0.05, Price: 0.10, Denticity: 0.15},
	reaction.TypeCHActivation:  {ConeAngle: 0.20, Electronic: 0.25, BiteAngle: 0.10, StericBulk: 0.10, Donor: 0.15, Price: 0.05, Denticity: 0.15},
	reaction.TypeCarbonylation: {ConeAngle: 0.20, Electronic: 0.20, BiteAngle: 0.15, StericBulk: 0.15, Donor: 0.15, Price: 0.05, Denticity: 0.10},
}

var solventWeights = map[reaction.Type]SolventWeights{
	reaction.TypeCrossCoupling: {Dielectric: 0.15, Polarity: 0.20, BoilingPoint: 0.10, Density: 0.05, DipoleMoment: 0.15, DonorNumber: 0.25, HBD: 0.10},
	reaction.TypeHydrogenation: {Dielectric: 0.10, Polarity: 0.15, BoilingPoint: 0.15, Density: 0.05, DipoleMoment: 0.10, DonorNumber: 0.35, HBD: 0.10},
	reaction.TypeMetathesis:    {Dielectric: 0.20, Polarity: 0.25, BoilingPoint: 0.15, Density: 0.05, DipoleMoment: 0.10, DonorNumber: 0.05, HBD: 0.20},
	reaction.TypeCHActivation:  {Dielectric: 0.15, Polarity: 0.25, BoilingPoint: 0.20, Density: 0.05, DipoleMoment: 0.15, DonorNumber: 0.10, HBD: 0.10},
	reaction.TypeCarbonylation: {Dielectric: 0.15, Polarity: 0.20, BoilingPoint: 0.10, Density: 0.05, DipoleMoment: 0.20, DonorNumber: 0.20, HBD: 0.10},
}

var baseWeights = map[reaction.Type]BaseWeights{
	reaction.TypeCrossCoupling: {PKaH: 0.35, Nucleophilicity: 0.25},
	reaction.TypeHydrogenation: {PKaH: 0.10, Nucleophilicity: 0.10},
	reaction.TypeMetathesis:    {PKaH: 0.15, Nucleophilicity: 0.10},
	reaction.TypeCHActivation:  {PKaH: 0.25, Nucleophilicity: 0.20},
	reaction.TypeCarbonylation: {PKaH: 0.20, Nucleophilicity: 0.15},
}

// LigandWeightsFor returns the ligand weight profile for the scoring family of
// rt, falling back to the Cross-Coupling profile for types without a family.
func LigandWeightsFor(rt reaction.Type) LigandWeights {
	if w, ok := ligandWeights[rt.ScoringFamily()]; ok {
		return w
	}
	return ligandWeights[reaction.TypeCrossCoupling]
}

// SolventWeightsFor returns the solvent weight profile for the scoring family.
func SolventWeightsFor(rt reaction.Type) SolventWeights {
	if w, ok := solventWeights[rt.ScoringFamily()]; ok {
		return w
	}
	return solventWeights[reaction.TypeCrossCoupling]
}

// BaseWeightsFor returns the base weight profile for the scoring family.
func BaseWeightsFor(rt reaction.Type) BaseWeights {
	if w, ok := baseWeights[rt.ScoringFamily()]; ok {
		return w
	}
	return baseWeights[reaction.TypeCrossCoupling]
}

// ─────────────────────────────────────────────────────────────────────────────
// Ligand/Solvent Synergies
// ─────────────────────────────────────────────────────────────────────────────

type pair struct{ ligand, solvent string }

// synergies lists literature-known ligand/solvent combinations that perform
// above what the individual scores suggest.  Ullmann keeps its own table
// because Cu-catalyzed couplings favor entirely different ligand classes than
// the Pd systems in the Cross-Coupling family.
var synergies = map[reaction.Type]map[pair]float64{
	reaction.TypeCrossCoupling: {
		{"SPhos", "DMF"}:     0.10,
		{"XPhos", "THF"}:     0.10,
		{"RuPhos", "DMF"}:    0.08,
		{"BINAP", "Toluene"}: 0.05,
		{"PPh3", "THF"}:      0.05,
	},
	reaction.TypeUllmann: {
		{"1,10-Phenanthroline", "DMSO"}: 0.10,
		{"2,2'-Bipyridine", "DMSO"}:     0.10,
		{"L-Proline", "DMSO"}:           0.08,
		{"Ethylenediamine", "DMF"}:      0.08,
		{"DMEDA", "Toluene"}:            0.06,
	},
	reaction.TypeHydrogenation: {
		{"BINAP", "Ethanol"}:      0.15,
		{"Tol-BINAP", "Methanol"}: 0.15,
		{"PPh3", "Ethanol"}:       0.08,
		{"DPPF", "Ethanol"}:       0.08,
	},
	reaction.TypeMetathesis: {
		{"IPr", "Dichloromethane"}:  0.12,
		{"IMes", "Dichloromethane"}: 0.12,
		{"SIPr", "Toluene"}:         0.10,
	},
}

// SynergyBonus returns the additive bonus for a ligand/solvent pair under the
// given reaction type.  Ullmann is looked up verbatim before falling back to
// the scoring family, so its Cu-specific table wins over the Pd one.
func SynergyBonus(rt reaction.Type, ligand, solvent string) float64 {
	if tbl, ok := synergies[rt]; ok {
		if b, ok := tbl[pair{ligand, solvent}]; ok {
			return b
		}
		return 0
	}
	if tbl, ok := synergies[rt.ScoringFamily()]; ok {
		if b, ok := tbl[pair{ligand, solvent}]; ok {
			return b
		}
	}
	return 0
}

// ─────────────────────────────────────────────────────────────────────────────
// Typical Conditions
// ─────────────────────────────────────────────────────────────────────────────

// Conditions summarizes the practical operating window for a reaction type.
type Conditions struct {
	Temperature     string `json:"temperature"`
	Time            string `json:"time"`
	Atmosphere      string `json:"atmosphere"`
	Base            string `json:"base,omitempty"`
	CatalystLoading string `json:"catalyst_loading"`
	Additives       string `json:"additives,omitempty"`
}

var typicalConditions = map[reaction.Type]Conditions{
	reaction.TypeCrossCoupling: {
		Temperature:     "80-120°C",
		Time:            "4-24 hours",
		Atmosphere:      "Inert (N₂ or Ar)",
		Base:            "K₂CO₃ or Cs₂CO₃",
		CatalystLoading: "1-5 mol%",
	},
	reaction.TypeUllmann: {
		Temperature:     "80-140°C",
		Time:            "6-24 hours",
		Atmosphere:      "Inert (N₂ or Ar)",
		Base:            "K₂CO₃, Cs₂CO₃, K₃PO₄ or KOtBu",
		CatalystLoading: "5-20 mol% Cu",
		Additives:       "Ligands: phen, bipy, L-proline, diamines",
	},
	reaction.TypeHydrogenation: {
		Temperature:     "20-80°C",
		Time:            "2-16 hours",
		Atmosphere:      "H₂ (1-50 atm)",
		CatalystLoading: "0.1-2 mol%",
		Additives:       "May require acid",
	},
	reaction.TypeMetathesis: {
		Temperature:     "20-60°C",
		Time:            "1-8 hours",
		Atmosphere:      "Inert (N₂ or Ar)",
		CatalystLoading: "1-5 mol%",
		Additives:       "Avoid moisture",
	},
	reaction.TypeCHActivation: {
		Temperature:     "100-160°C",
		Time:            "6-48 hours",
		Atmosphere:      "Inert or air",
		CatalystLoading: "5-10 mol%",
		Additives:       "May require oxidant",
	},
	reaction.TypeCarbonylation: {
		Temperature:     "60-140°C",
		Time:            "4-24 hours",
		Atmosphere:      "CO (1-20 atm)",
		Base:            "Organic base (Et₃N)",
		CatalystLoading: "1-5 mol%",
	},
}

// defaultConditions covers reaction types with no curated profile.
var defaultConditions = Conditions{
	Temperature:     "20-100°C",
	Time:            "1-24 hours",
	Atmosphere:      "Inert",
	CatalystLoading: "1-5 mol%",
}

// ConditionsFor returns the typical operating window for a reaction type,
// checking the exact type before its scoring family.
func ConditionsFor(rt reaction.Type) Conditions {
	if c, ok := typicalConditions[rt]; ok {
		return c
	}
	if c, ok := typicalConditions[rt.ScoringFamily()]; ok {
		return c
	}
	return defaultConditions
}

// ─────────────────────────────────────────────────────────────────────────────
// Guidance Notes
// ─────────────────────────────────────────────────────────────────────────────

var reactionNotes = map[reaction.Type]string{
	reaction.TypeCrossCoupling: `Cross-Coupling optimization tips:
- Use bulky phosphines (XPhos, SPhos) for challenging substrates
- Polar aprotic solvents (DMF, NMP) often give best results
- Consider base choice: K₂CO₃ for most substrates, Cs₂CO₃ for difficult cases
- Temperature typically 80-120°C depending on substrate reactivity
- Degassing is critical: use Schlenk techniques or a glovebox`,
	reaction.TypeUllmann: `Ullmann coupling optimization tips:
- Copper sources: CuI, CuBr, Cu(OAc)₂, Cu₂O; often with simple ligands
- Ligands: diamines (e.g. ethylenediamine), amino acids (e.g. L-proline), phenanthroline
- Bases: K₂CO₃, Cs₂CO₃, K₃PO₄, KOtBu; water sometimes beneficial
- Solvents: DMSO, DMF, toluene, dioxane; 80-140°C typical
- For C-O/C-N: substrate electronics impact rates; consider a stronger base for aryl chlorides`,
	reaction.TypeHydrogenation: `Hydrogenation optimization tips:
- Bidentate ligands (BINAP, DuPhos) excellent for asymmetric reductions
- Protic solvents (alcohols) often enhance reactivity
- Start with low pressure (1-5 atm H₂) and increase if needed
- Temperature usually mild (20-80°C) to avoid over-reduction
- Check for catalyst poisoning from sulfur/nitrogen compounds`,
	reaction.TypeMetathesis: `Metathesis optimization tips:
- NHC ligands (IPr, IMes) provide high activity and stability
- Non-coordinating solvents (DCM, toluene) are preferred
- Strict exclusion of moisture and oxygen is essential
- Low catalyst loadings (1-5 mol%) usually sufficient
- Consider ring-closing vs cross-metathesis selectivity`,
	reaction.TypeCHActivation: `C-H activation optimization tips:
- High temperatures (100-160°C) often required
- Polar solvents (DMSO, DMF) can facilitate C-H cleavage
- Consider directing groups for regioselectivity
- Oxidants may be required for catalytic turnover
- Screen different bases for optimal reactivity`,
	reaction.TypeCarbonylation: `Carbonylation optimization tips:
- CO pressure critical for good conversion (1-20 atm)
- Polar solvents (DMF, NMP) enhance CO solubility
- Phosphine ligands (PPh3, DPPF) commonly effective
- Base helps remove HX byproducts
- Monitor for catalyst degradation at high CO pressure`,
}

// NotesFor returns curated guidance prose for a reaction type, or an empty
// string when none exists.
func NotesFor(rt reaction.Type) string {
	if n, ok := reactionNotes[rt]; ok {
		return n
	}
	return reactionNotes[rt.ScoringFamily()]
}

// ─────────────────────────────────────────────────────────────────────────────
// Ullmann Base Preferences
// ─────────────────────────────────────────────────────────────────────────────

// ullmannBaseTokens marks bases with a strong Cu-coupling track record.
var ullmannBaseTokens = []string{
	"k2co3", "cs2co3", "k3po4", "kotbu", "naotbu",
	"potassium carbonate", "cesium carbonate", "potassium phosphate",
}

// IsUllmannFavoredBase reports whether a base name matches a token on the
// Cu-coupling shortlist.
func IsUllmannFavoredBase(name string) bool {
	low := strings.ToLower(name)
	for _, tok := range ullmannBaseTokens {
		if strings.Contains(low, tok) {
			return true
		}
	}
	return false
}

// UllmannFallbackBase is a curated base suggestion used when no dataset
// evidence is available for an Ullmann query.
type UllmannFallbackBase struct {
	Name  string
	Score float64
}

// UllmannFallbackBases lists the curated fallback ranking.
var UllmannFallbackBases = []UllmannFallbackBase{
	{Name: "K2CO3", Score: 0.80},
	{Name: "Cs2CO3", Score: 0.78},
	{Name: "K3PO4", Score: 0.75},
	{Name: "KOtBu", Score: 0.72},
}
