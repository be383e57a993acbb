package recommend

import (
	"math"

	"github.com/reactwise/condrec/internal/domain/catalog"
)

// ─────────────────────────────────────────────────────────────────────────────
// Export Payload
// ─────────────────────────────────────────────────────────────────────────────
//
// Export is the structured output contract consumed by the HTTP and CLI
// surfaces.  Every evidence-bearing field is an explicit (possibly empty)
// list, never a missing key, so consumers can distinguish "no evidence" from
// "engine error".  All scores are in [0,1].

// Export is the full recommendation payload for one request.
type Export struct {
	Meta               Meta                `json:"meta"`
	Input              Input               `json:"input"`
	Detection          Detection           `json:"detection"`
	Dataset            DatasetInfo         `json:"dataset"`
	Recommendations    Recommendations     `json:"recommendations"`
	TopConditions      []TopCondition      `json:"top_conditions"`
	RelatedReactions   []RelatedReaction   `json:"related_reactions"`
	GenericSuggestions *GenericSuggestions `json:"generic_suggestions,omitempty"`
	Analytics          *AnalyticsSnippet   `json:"analytics,omitempty"`
}

// Meta records request provenance.
type Meta struct {
	GeneratedAt  string `json:"generated_at"`
	AnalysisType string `json:"analysis_type"` // "enhanced" | "similarity_fallback"
	Status       string `json:"status"`
}

// Input echoes the caller's request.
type Input struct {
	ReactionSMILES       string `json:"reaction_smiles"`
	SelectedReactionType string `json:"selected_reaction_type"`
}

// Detection reports the resolved reaction type.
type Detection struct {
	ReactionType string `json:"reaction_type"`
}

// DatasetInfo describes the knowledge backing this response.
type DatasetInfo struct {
	LigandsAvailable       int      `json:"ligands_available"`
	SolventsAvailable      int      `json:"solvents_available"`
	BasesAvailable         int      `json:"bases_available"`
	ReactionTypesSupported []string `json:"reaction_types_supported"`
	AnalyticsLoaded        bool     `json:"analytics_loaded"`
	AnalyticsGeneration    string   `json:"analytics_generation,omitempty"`
}

// Recommendations groups the ranked per-role lists and derived blocks.
type Recommendations struct {
	Combined     []CombinedCondition `json:"combined"`
	Ligands      []ReagentRec        `json:"ligands"`
	Solvents     []ReagentRec        `json:"solvents"`
	Bases        []ReagentRec        `json:"bases"`
	Alternatives Alternatives        `json:"alternatives"`
	Notes        string              `json:"reaction_specific_notes"`
}

// ReagentRec is one ranked reagent entry.
type ReagentRec struct {
	Rank            int     `json:"rank"`
	Name            string  `json:"name"`
	Abbreviation    string  `json:"abbreviation,omitempty"`
	Score           float64 `json:"compatibility_score"`
	Applications    string  `json:"applications,omitempty"`
	Suitability     string  `json:"reaction_suitability"`
	EvidenceSupport int     `json:"evidence_support,omitempty"`
	Confidence      string  `json:"confidence"`
	Curated         bool    `json:"curated,omitempty"`
}

// CombinedCondition is one ligand/solvent pairing with its synergy-adjusted
// combined score and representative conditions.
type CombinedCondition struct {
	Rank                 int                `json:"rank"`
	Ligand               string             `json:"ligand"`
	LigandCompatibility  float64            `json:"ligand_compatibility"`
	Solvent              string             `json:"solvent"`
	SolventAbbreviation  string             `json:"solvent_abbreviation,omitempty"`
	SolventCompatibility float64            `json:"solvent_compatibility"`
	CombinedScore        float64            `json:"combined_score"`
	SynergyBonus         float64            `json:"synergy_bonus"`
	Confidence           string             `json:"recommendation_confidence"`
	TypicalConditions    catalog.Conditions `json:"typical_conditions"`
	SuggestedBase        string             `json:"suggested_base,omitempty"`
}

// Alternatives carries the property-filtered shortlists.
type Alternatives struct {
	BudgetFriendlyLigands []ReagentRec `json:"budget_friendly_ligands"`
	LowBoilingSolvents    []ReagentRec `json:"low_boiling_solvents"`
	GreenSolvents         []ReagentRec `json:"green_solvents"`
}

// TopCondition is one fully assembled condition set: every chemical needed to
// run the reaction plus time/temperature, for the top-ranked combinations.
type TopCondition struct {
	Reaction   ReactionRef       `json:"reaction"`
	Chemicals  []Chemical        `json:"chemicals"`
	Conditions ConditionsSummary `json:"conditions"`
}

// ReactionRef points back at the input reaction.
type ReactionRef struct {
	SMILES string `json:"smiles"`
}

// Chemical is one component of a condition set.
type Chemical struct {
	Name         string   `json:"name,omitempty"`
	Abbreviation string   `json:"abbreviation,omitempty"`
	CAS          string   `json:"cas,omitempty"`
	SMILES       string   `json:"smiles,omitempty"`
	Equivalents  *float64 `json:"equivalents,omitempty"`
	Role         string   `json:"role"`
}

// ConditionsSummary is the numeric-ish condition block of a TopCondition.
type ConditionsSummary struct {
	Temperature string `json:"temperature,omitempty"`
	Time        string `json:"time,omitempty"`
	Atmosphere  string `json:"atmosphere,omitempty"`
}

// RelatedReaction is one dataset neighbor of the input reaction.
type RelatedReaction struct {
	ReactionSMILES string  `json:"reaction_smiles"`
	Similarity     float64 `json:"similarity"`
	Yield          string  `json:"yield,omitempty"`
	Catalyst       string  `json:"catalyst,omitempty"`
	Ligand         string  `json:"ligand,omitempty"`
	Solvent        string  `json:"solvent,omitempty"`
	Temperature    string  `json:"temperature,omitempty"`
	Time           string  `json:"time,omitempty"`
	Reference      string  `json:"reference,omitempty"`
	ReactionID     string  `json:"reaction_id,omitempty"`
}

// GenericSuggestions is the similarity-fallback block emitted when the
// classifier returns the unknown sentinel.
type GenericSuggestions struct {
	Catalysts []Suggestion `json:"catalysts"`
	Ligands   []Suggestion `json:"ligands"`
	Solvents  []Suggestion `json:"solvents"`
	Bases     []Suggestion `json:"bases"`
}

// Suggestion is one neighbor-derived reagent suggestion.
type Suggestion struct {
	Name  string  `json:"name"`
	Score float64 `json:"score"`
}

// AnalyticsSnippet is a compact view of the evidence summary backing the
// response: the strongest priors and the best co-occurrence pairs.
type AnalyticsSnippet struct {
	Source       string           `json:"source"`
	Top          AnalyticsTop     `json:"top"`
	Cooccurrence AnalyticsCoPairs `json:"cooccurrence"`
}

// AnalyticsTop holds the leading priors per role.
type AnalyticsTop struct {
	Ligands  []AnalyticsItem `json:"ligands"`
	Solvents []AnalyticsItem `json:"solvents"`
	Bases    []AnalyticsItem `json:"bases"`
}

// AnalyticsItem is one prior entry.
type AnalyticsItem struct {
	Name  string  `json:"name"`
	Pct   float64 `json:"pct"`
	Count int     `json:"count"`
}

// AnalyticsCoPairs holds the best pairings seen in the evidence.
type AnalyticsCoPairs struct {
	BestLigandSolvent *AnalyticsPair `json:"best_ligand_solvent"`
	BestBaseSolvent   *AnalyticsPair `json:"best_base_solvent"`
}

// AnalyticsPair is one co-occurrence entry.
type AnalyticsPair struct {
	A     string  `json:"a"`
	B     string  `json:"b"`
	Pct   float64 `json:"pct"`
	Count int     `json:"count"`
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
